package cli

import (
	"path/filepath"
	"testing"

	"github.com/retracehq/retrace/internal/adapters/driven/storage/memory"
	"github.com/retracehq/retrace/internal/core/services"
)

// setupTestServices wires the command tree to seeded in-memory stores and
// returns a cleanup restoring the previous wiring. The config flag points
// at a missing file so defaults load.
func setupTestServices(t *testing.T) func() {
	t.Helper()

	prevSearch := searchService
	prevActions := actionService
	prevDomains := domainService
	prevTabs := tabStore
	prevConfig := flagConfig

	flagConfig = filepath.Join(t.TempDir(), "config.toml")

	history := memory.NewHistoryStore()
	seedDemoHistory(history)
	bookmarks := memory.NewBookmarkStore()
	seedDemoBookmarks(bookmarks)
	tabs := memory.NewTabStore()
	seedDemoTabs(tabs)

	favicons := fakeFavicons{}
	engine := services.NewOrchestrator(
		services.NewTabAdapter(tabs, favicons),
		services.NewHistoryAdapter(history, favicons),
		services.NewBookmarkAdapter(bookmarks, favicons),
	)

	searchService = services.NewQuerySession(engine)
	actionService = services.NewResultActionService(history, bookmarks, tabs)
	domainService = services.NewDomainSuggestionService(history)
	tabStore = tabs

	return func() {
		searchService = prevSearch
		actionService = prevActions
		domainService = prevDomains
		tabStore = prevTabs
		flagConfig = prevConfig
	}
}

type fakeFavicons struct{}

func (fakeFavicons) URLFor(pageURL string, size int) string { return "" }
