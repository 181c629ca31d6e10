package services

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"

	"github.com/retracehq/retrace/internal/core/domain"
	"github.com/retracehq/retrace/internal/core/ports/driven"
	"github.com/retracehq/retrace/internal/core/ports/driving"
	"github.com/retracehq/retrace/internal/logger"
)

// Operating system identifiers.
const (
	osDarwin  = "darwin"
	osLinux   = "linux"
	osWindows = "windows"
)

// Ensure ResultActionService implements the interface.
var _ driving.ResultActionService = (*ResultActionService)(nil)

// ResultActionService dispatches open/delete/close actions to the source
// owning each result.
type ResultActionService struct {
	history   driven.HistoryStore
	bookmarks driven.BookmarkStore
	tabs      driven.TabStore

	// openFallback opens a URL in the OS default browser when no tab
	// store is connected. Overridable for tests.
	openFallback func(url string) error
}

// NewResultActionService creates a result action service. Any store may be
// nil; actions needing a missing store fail with domain.ErrStoreUnavailable.
func NewResultActionService(
	history driven.HistoryStore,
	bookmarks driven.BookmarkStore,
	tabs driven.TabStore,
) *ResultActionService {
	return &ResultActionService{
		history:      history,
		bookmarks:    bookmarks,
		tabs:         tabs,
		openFallback: openInOSBrowser,
	}
}

// Open activates the exact tab instance for tab results; everything else
// opens in a new tab, or in the OS browser when no tab store is connected.
func (s *ResultActionService) Open(ctx context.Context, item domain.ResultItem) error {
	if item.Kind == domain.KindTab && item.TabID != "" && s.tabs != nil {
		if err := s.tabs.Activate(ctx, item.TabID); err != nil {
			return fmt.Errorf("activate tab: %w", err)
		}
		if item.WindowID != 0 {
			if err := s.tabs.FocusWindow(ctx, item.WindowID); err != nil {
				return fmt.Errorf("focus window: %w", err)
			}
		}
		return nil
	}
	return s.OpenURL(ctx, item.URL)
}

// OpenURL opens a raw URL in a new tab, falling back to the OS browser.
func (s *ResultActionService) OpenURL(ctx context.Context, url string) error {
	if url == "" {
		return fmt.Errorf("%w: empty url", domain.ErrInvalidInput)
	}
	if s.tabs != nil {
		err := s.tabs.Create(ctx, url)
		if err == nil {
			return nil
		}
		logger.Warn("Open: tab store create failed, falling back to OS browser: %v", err)
	}
	return s.openFallback(url)
}

// Delete performs one bulk mutation. Tab closes are issued first, then
// history deletions, then bookmark deletions; the first failure aborts the
// cycle without partial application beyond the steps already confirmed.
// Callers re-query afterwards - the in-memory result list is never patched.
func (s *ResultActionService) Delete(ctx context.Context, items []domain.ResultItem) error {
	var (
		tabIDs      []string
		historyURLs []string
		bookmarkIDs []string
	)

	for _, item := range items {
		kind, native, err := domain.SplitResultID(item.ID)
		if err != nil {
			return err
		}
		switch kind {
		case domain.KindTab:
			id := item.TabID
			if id == "" {
				id = native
			}
			tabIDs = append(tabIDs, id)
		case domain.KindHistory:
			// The history store deletes by URL, not by native id.
			if item.URL == "" {
				return fmt.Errorf("%w: history result %s has no url", domain.ErrInvalidInput, item.ID)
			}
			historyURLs = append(historyURLs, item.URL)
		case domain.KindBookmark:
			bookmarkIDs = append(bookmarkIDs, native)
		}
	}

	logger.Debug("Delete: %d tabs, %d history urls, %d bookmarks",
		len(tabIDs), len(historyURLs), len(bookmarkIDs))

	if len(tabIDs) > 0 {
		if s.tabs == nil {
			return fmt.Errorf("close tabs: %w", domain.ErrStoreUnavailable)
		}
		if err := s.tabs.CloseMany(ctx, tabIDs); err != nil {
			return fmt.Errorf("close tabs: %w", err)
		}
	}
	if len(historyURLs) > 0 {
		if s.history == nil {
			return fmt.Errorf("delete history: %w", domain.ErrStoreUnavailable)
		}
		if err := s.history.DeleteURLs(ctx, historyURLs); err != nil {
			return fmt.Errorf("delete history: %w", err)
		}
	}
	if len(bookmarkIDs) > 0 {
		if s.bookmarks == nil {
			return fmt.Errorf("delete bookmarks: %w", domain.ErrStoreUnavailable)
		}
		if err := s.bookmarks.DeleteByIDs(ctx, bookmarkIDs); err != nil {
			return fmt.Errorf("delete bookmarks: %w", err)
		}
	}
	return nil
}

// openInOSBrowser opens a URL using OS-specific commands.
func openInOSBrowser(url string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case osDarwin:
		cmd = exec.Command("open", url)
	case osLinux:
		cmd = exec.Command("xdg-open", url)
	case osWindows:
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}

	return cmd.Start()
}
