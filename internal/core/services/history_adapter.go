package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/retracehq/retrace/internal/core/domain"
	"github.com/retracehq/retrace/internal/core/ports/driven"
	"github.com/retracehq/retrace/internal/logger"
)

// Ensure HistoryAdapter implements the interface.
var _ SourceAdapter = (*HistoryAdapter)(nil)

// historyOverFetchFloor is the minimum over-fetch request: the native
// search has no domain concept, so extra headroom is left for the domain
// post-filter.
const historyOverFetchFloor = 200

// lastVisitLayout formats the "Last visit" meta line.
const lastVisitLayout = "2 Jan 2006 15:04"

// HistoryAdapter searches the browsing history store.
type HistoryAdapter struct {
	store    driven.HistoryStore
	favicons driven.Favicons
	now      func() time.Time
}

// NewHistoryAdapter creates a history source adapter.
func NewHistoryAdapter(store driven.HistoryStore, favicons driven.Favicons) *HistoryAdapter {
	return &HistoryAdapter{
		store:    store,
		favicons: favicons,
		now:      time.Now,
	}
}

// Kind returns domain.KindHistory.
func (a *HistoryAdapter) Kind() domain.ResultKind {
	return domain.KindHistory
}

// Search delegates text/time filtering to the store's native search, then
// post-filters by domain, normalizes, orders newest-first, and truncates.
func (a *HistoryAdapter) Search(ctx context.Context, filters domain.FilterState) ([]domain.ResultItem, error) {
	if a.store == nil {
		return nil, fmt.Errorf("history: %w", domain.ErrStoreUnavailable)
	}

	query := strings.TrimSpace(filters.Query)
	window := domain.ResolveWindow(filters.TimeRange, a.now())

	// Over-fetch at least 3x the requested limit to leave headroom for
	// the domain post-filter.
	fetch := filters.Limit * 3
	if fetch < historyOverFetchFloor {
		fetch = historyOverFetchFloor
	}

	logger.Debug("History search: query=%q window=[%d,%d) fetch=%d", query, window.Start, window.End, fetch)

	entries, err := a.store.Search(ctx, query, window.Start, window.End, fetch)
	if err != nil {
		return nil, fmt.Errorf("history search: %w", err)
	}
	logger.Debug("History search: %d raw entries", len(entries))

	domainFilter := strings.TrimSpace(filters.Domain)

	results := make([]domain.ResultItem, 0, len(entries))
	for _, e := range entries {
		if e.URL == "" {
			continue
		}
		hostname := domain.Hostname(e.URL)
		if domainFilter != "" && !domain.MatchesDomain(hostname, domainFilter) {
			continue
		}

		nativeID := e.ID
		if nativeID == "" {
			nativeID = e.URL
		}

		title := strings.TrimSpace(e.Title)
		if title == "" {
			title = e.URL
		}

		item := domain.ResultItem{
			ID:            domain.ResultID(domain.KindHistory, nativeID),
			Kind:          domain.KindHistory,
			Title:         title,
			URL:           e.URL,
			Hostname:      hostname,
			LastVisitTime: e.LastVisitTime,
		}
		if a.favicons != nil {
			item.FaviconURL = a.favicons.URLFor(e.URL, 16)
		}
		if e.LastVisitTime > 0 {
			item.MetaLine = "Last visit: " + time.UnixMilli(e.LastVisitTime).Format(lastVisitLayout)
		}
		results = append(results, item)
	}

	// Newest first; entries without a timestamp sort as oldest.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].LastVisitTime > results[j].LastVisitTime
	})

	if len(results) > filters.Limit {
		results = results[:filters.Limit]
	}
	logger.Debug("History search: %d results after filtering", len(results))
	return results, nil
}
