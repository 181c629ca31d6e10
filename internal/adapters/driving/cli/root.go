// Package cli implements the retrace command-line interface.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/retracehq/retrace/internal/adapters/driven/browser/chromium"
	"github.com/retracehq/retrace/internal/adapters/driven/browser/devtools"
	"github.com/retracehq/retrace/internal/adapters/driven/config/file"
	"github.com/retracehq/retrace/internal/adapters/driven/storage/memory"
	"github.com/retracehq/retrace/internal/core/ports/driven"
	"github.com/retracehq/retrace/internal/core/ports/driving"
	"github.com/retracehq/retrace/internal/core/services"
	"github.com/retracehq/retrace/internal/logger"
)

// version is the build version, overridable via ldflags.
var version = "0.1.0-dev"

var (
	flagVerbose bool
	flagConfig  string
	flagDemo    bool
)

// Wired services. Populated by PersistentPreRunE; tests inject fakes
// directly.
var (
	cfg           file.Config
	searchService driving.SearchService
	actionService driving.ResultActionService
	domainService driving.DomainSuggestionService
	tabStore      driven.TabStore
	searchEngine  *services.Orchestrator
)

var rootCmd = &cobra.Command{
	Use:   "retrace",
	Short: "Search browsing history, bookmarks, and open tabs from one place",
	Long: `Retrace runs one query across your browsing history, bookmarks, and
currently open tabs, with domain and time filters, and can open or
delete the results in bulk.

History and bookmarks are read from a Chromium-family profile on disk.
Open tabs require the browser to be started with --remote-debugging-port.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default ~/.retrace/config.toml)")
	rootCmd.PersistentFlags().BoolVar(&flagDemo, "demo", false, "use in-memory demo data instead of a browser profile")
}

// setup loads configuration and wires the service graph. Commands that
// need no services still pass through here; wiring failures surface per
// store, not up front.
func setup(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(flagVerbose)

	path := flagConfig
	if path == "" {
		var err error
		if path, err = file.DefaultPath(); err != nil {
			return err
		}
	}

	var err error
	if cfg, err = file.Load(path); err != nil {
		return err
	}

	// Tests pre-wire their own services.
	if searchService != nil {
		return nil
	}

	history, bookmarks, tabs := buildStores()
	tabStore = tabs
	favicons := chromium.NewFavicons()

	searchEngine = services.NewOrchestrator(
		services.NewTabAdapter(tabs, favicons),
		services.NewHistoryAdapter(history, favicons),
		services.NewBookmarkAdapter(bookmarks, favicons),
	)
	searchEngine.SetFetchLimit(cfg.Search.FetchLimit)

	searchService = services.NewQuerySession(searchEngine)
	actionService = services.NewResultActionService(history, bookmarks, tabs)
	domainService = services.NewDomainSuggestionService(history)
	return nil
}

// buildStores connects the three driven stores. A store that cannot be
// reached wires as nil; searches against it fail with a clear error while
// the rest keep working.
func buildStores() (driven.HistoryStore, driven.BookmarkStore, driven.TabStore) {
	if flagDemo {
		return demoStores()
	}

	var history driven.HistoryStore
	if h, err := chromium.NewHistoryStore(cfg.Profile.HistoryPath); err != nil {
		logger.Warn("History unavailable: %v", err)
	} else {
		history = h
	}

	var bookmarks driven.BookmarkStore
	if b, err := chromium.NewBookmarkStore(cfg.Profile.BookmarksPath); err != nil {
		logger.Warn("Bookmarks unavailable: %v", err)
	} else {
		bookmarks = b
	}

	return history, bookmarks, devtools.NewTabStore(cfg.DevTools.URL)
}

// demoStores seeds in-memory stores so every command can be exercised
// without a browser profile.
func demoStores() (driven.HistoryStore, driven.BookmarkStore, driven.TabStore) {
	history := memory.NewHistoryStore()
	seedDemoHistory(history)

	bookmarks := memory.NewBookmarkStore()
	seedDemoBookmarks(bookmarks)

	tabs := memory.NewTabStore()
	seedDemoTabs(tabs)

	logger.Info("Demo mode: using in-memory stores")
	return history, bookmarks, tabs
}
