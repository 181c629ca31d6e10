package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/retracehq/retrace/internal/core/domain"
	"github.com/retracehq/retrace/internal/core/ports/driven"
	"github.com/retracehq/retrace/internal/logger"
)

// Ensure TabAdapter implements the interface.
var _ SourceAdapter = (*TabAdapter)(nil)

// TabAdapter searches currently open tabs. Tabs have no native query
// support and no time dimension: the full list is enumerated, then
// post-filtered by domain and query text.
type TabAdapter struct {
	store    driven.TabStore
	favicons driven.Favicons
}

// NewTabAdapter creates an open-tab source adapter.
func NewTabAdapter(store driven.TabStore, favicons driven.Favicons) *TabAdapter {
	return &TabAdapter{store: store, favicons: favicons}
}

// Kind returns domain.KindTab.
func (a *TabAdapter) Kind() domain.ResultKind {
	return domain.KindTab
}

// Search lists all open tabs, preserving enumeration order, and applies the
// domain rule and (if the query is non-empty) a case-insensitive substring
// match against title or URL.
func (a *TabAdapter) Search(ctx context.Context, filters domain.FilterState) ([]domain.ResultItem, error) {
	if a.store == nil {
		return nil, fmt.Errorf("tabs: %w", domain.ErrStoreUnavailable)
	}

	tabs, err := a.store.QueryAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("tab query: %w", err)
	}
	logger.Debug("Tab search: %d open tabs", len(tabs))

	query := strings.ToLower(strings.TrimSpace(filters.Query))
	domainFilter := strings.TrimSpace(filters.Domain)

	results := make([]domain.ResultItem, 0, len(tabs))
	for _, tab := range tabs {
		if tab.URL == "" {
			continue
		}

		hostname := domain.Hostname(tab.URL)
		if domainFilter != "" && !domain.MatchesDomain(hostname, domainFilter) {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(tab.Title), query) &&
			!strings.Contains(strings.ToLower(tab.URL), query) {
			continue
		}

		nativeID := tab.ID
		if nativeID == "" {
			nativeID = tab.URL
		}

		title := strings.TrimSpace(tab.Title)
		if title == "" {
			title = tab.URL
		}

		// Prefer the tab's own reported icon.
		favicon := tab.FavIconURL
		if favicon == "" && a.favicons != nil {
			favicon = a.favicons.URLFor(tab.URL, 16)
		}

		results = append(results, domain.ResultItem{
			ID:         domain.ResultID(domain.KindTab, nativeID),
			Kind:       domain.KindTab,
			Title:      title,
			URL:        tab.URL,
			Hostname:   hostname,
			FaviconURL: favicon,
			MetaLine:   "Open tab",
			TabID:      tab.ID,
			WindowID:   tab.WindowID,
		})
	}

	if len(results) > filters.Limit {
		results = results[:filters.Limit]
	}
	logger.Debug("Tab search: %d results", len(results))
	return results, nil
}
