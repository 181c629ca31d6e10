package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/retracehq/retrace/internal/core/domain"
	"github.com/retracehq/retrace/internal/logger"
)

// defaultFetchLimit is the internally widened per-source limit. It is
// independent of the user-facing limit so that no single source is
// truncated before the merge; the user limit is applied as a final slice.
const defaultFetchLimit = 200

// Orchestrator fans a query out to the adapter subset implied by the
// scope, merges the outputs in a fixed priority order, and applies the
// final display limit.
type Orchestrator struct {
	tabs       SourceAdapter
	history    SourceAdapter
	bookmarks  SourceAdapter
	fetchLimit int
}

// NewOrchestrator creates the merge orchestrator. Any adapter may be nil;
// a scope selecting a nil adapter surfaces domain.ErrStoreUnavailable.
func NewOrchestrator(tabs, history, bookmarks SourceAdapter) *Orchestrator {
	return &Orchestrator{
		tabs:       tabs,
		history:    history,
		bookmarks:  bookmarks,
		fetchLimit: defaultFetchLimit,
	}
}

// SetFetchLimit overrides the internal per-source fetch limit.
func (o *Orchestrator) SetFetchLimit(n int) {
	if n > 0 {
		o.fetchLimit = n
	}
}

// adaptersFor returns the active adapters for a scope in merge priority
// order: open tabs first (a currently open tab is the most actionable
// match), then history, then bookmarks.
func (o *Orchestrator) adaptersFor(scope domain.Scope) []SourceAdapter {
	switch scope {
	case domain.ScopeTabs:
		return []SourceAdapter{o.tabs}
	case domain.ScopeHistory:
		return []SourceAdapter{o.history}
	case domain.ScopeBookmarks:
		return []SourceAdapter{o.bookmarks}
	case domain.ScopeAll:
		return []SourceAdapter{o.tabs, o.history, o.bookmarks}
	default:
		return nil
	}
}

// Search validates the filter, fetches the merged base results, and slices
// to the user-requested limit.
func (o *Orchestrator) Search(ctx context.Context, filters domain.FilterState) ([]domain.ResultItem, error) {
	base, err := o.fetch(ctx, filters)
	if err != nil {
		return nil, err
	}
	return sliceLimit(base, filters.Limit), nil
}

// fetch runs the adapter fan-out with the internally widened limit and
// returns the merged, unsliced result list.
//
// Guard: when the query is empty and no domain filter is set, no source is
// queried and the result is empty. Never show "everything" with zero
// signal.
func (o *Orchestrator) fetch(ctx context.Context, filters domain.FilterState) ([]domain.ResultItem, error) {
	if err := filters.Validate(); err != nil {
		return nil, err
	}

	if !filters.HasSignal() {
		logger.Debug("Search: no query and no domain filter, skipping all sources")
		return []domain.ResultItem{}, nil
	}

	adapters := o.adaptersFor(filters.Scope)

	widened := filters
	widened.Limit = o.fetchLimit

	logger.Section("Search Execution")
	logger.Debug("Query: %q scope=%s domain=%q range=%s limit=%d (fetch %d)",
		filters.Query, filters.Scope, filters.Domain, filters.TimeRange, filters.Limit, o.fetchLimit)

	// Fire-and-await-all: the per-source calls are independent and
	// side-effect-free on the stores.
	parts := make([][]domain.ResultItem, len(adapters))
	errs := make([]error, len(adapters))

	var wg sync.WaitGroup
	for i, adapter := range adapters {
		if adapter == nil {
			errs[i] = domain.ErrStoreUnavailable
			continue
		}
		wg.Add(1)
		go func(i int, adapter SourceAdapter) {
			defer wg.Done()
			parts[i], errs[i] = adapter.Search(ctx, widened)
		}(i, adapter)
	}
	wg.Wait()

	// Fail fast: the first error in priority order aborts the cycle and
	// no partial merge is returned. Checking in priority order keeps the
	// surfaced error deterministic regardless of which call finished last.
	for i, err := range errs {
		if err != nil {
			logger.Warn("Search: adapter %d failed: %v", i, err)
			return nil, fmt.Errorf("search: %w", err)
		}
	}

	// Deterministic merge: concatenation follows the fixed priority list,
	// independent of which adapter's I/O resolved first. A single-source
	// scope trivially preserves that source's own ordering.
	var total int
	for _, p := range parts {
		total += len(p)
	}
	merged := make([]domain.ResultItem, 0, total)
	for _, p := range parts {
		merged = append(merged, p...)
	}

	logger.Debug("Search: %d merged results", len(merged))
	return merged, nil
}

func sliceLimit(items []domain.ResultItem, limit int) []domain.ResultItem {
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	// Callers own the returned slice; never alias the cached base.
	out := make([]domain.ResultItem, len(items))
	copy(out, items)
	return out
}
