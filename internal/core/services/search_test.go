package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retracehq/retrace/internal/core/domain"
)

func newOrchestratorFixture() (*stubAdapter, *stubAdapter, *stubAdapter, *Orchestrator) {
	tabs := &stubAdapter{
		kind:    domain.KindTab,
		results: []domain.ResultItem{item(domain.KindTab, "t1", "https://tab.example/")},
	}
	history := &stubAdapter{
		kind:    domain.KindHistory,
		results: []domain.ResultItem{item(domain.KindHistory, "h1", "https://hist.example/")},
	}
	bookmarks := &stubAdapter{
		kind:    domain.KindBookmark,
		results: []domain.ResultItem{item(domain.KindBookmark, "b1", "https://book.example/")},
	}
	return tabs, history, bookmarks, NewOrchestrator(tabs, history, bookmarks)
}

func TestOrchestratorEmptySignalGate(t *testing.T) {
	tabs, history, bookmarks, o := newOrchestratorFixture()

	for _, scope := range []domain.Scope{domain.ScopeAll, domain.ScopeTabs, domain.ScopeHistory, domain.ScopeBookmarks} {
		filters := domain.DefaultFilters()
		filters.Scope = scope

		got, err := o.Search(context.Background(), filters)
		require.NoError(t, err)
		assert.Empty(t, got)
	}

	assert.Zero(t, tabs.calls.Load(), "no adapter may be invoked without signal")
	assert.Zero(t, history.calls.Load())
	assert.Zero(t, bookmarks.calls.Load())
}

func TestOrchestratorMergePriorityOrder(t *testing.T) {
	_, _, _, o := newOrchestratorFixture()

	filters := domain.DefaultFilters()
	filters.Query = "example"

	got, err := o.Search(context.Background(), filters)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, domain.KindTab, got[0].Kind)
	assert.Equal(t, domain.KindHistory, got[1].Kind)
	assert.Equal(t, domain.KindBookmark, got[2].Kind)
}

func TestOrchestratorScopeSelectsAdapterSubset(t *testing.T) {
	tabs, history, bookmarks, o := newOrchestratorFixture()

	filters := domain.DefaultFilters()
	filters.Query = "example"
	filters.Scope = domain.ScopeHistory

	got, err := o.Search(context.Background(), filters)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, domain.KindHistory, got[0].Kind)

	assert.Zero(t, tabs.calls.Load())
	assert.EqualValues(t, 1, history.calls.Load())
	assert.Zero(t, bookmarks.calls.Load())
}

func TestOrchestratorSingleSourceOrderPreserved(t *testing.T) {
	history := &stubAdapter{
		kind: domain.KindHistory,
		results: []domain.ResultItem{
			item(domain.KindHistory, "newest", "https://a.example/"),
			item(domain.KindHistory, "older", "https://b.example/"),
			item(domain.KindHistory, "oldest", "https://c.example/"),
		},
	}
	o := NewOrchestrator(nil, history, nil)

	filters := domain.DefaultFilters()
	filters.Query = "example"
	filters.Scope = domain.ScopeHistory

	got, err := o.Search(context.Background(), filters)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "h:newest", got[0].ID)
	assert.Equal(t, "h:older", got[1].ID)
	assert.Equal(t, "h:oldest", got[2].ID)
}

func TestOrchestratorFailFast(t *testing.T) {
	boom := errors.New("history store exploded")
	tabs := &stubAdapter{kind: domain.KindTab, results: []domain.ResultItem{item(domain.KindTab, "t1", "https://t.example/")}}
	history := &stubAdapter{kind: domain.KindHistory, err: boom}
	bookmarks := &stubAdapter{kind: domain.KindBookmark}
	o := NewOrchestrator(tabs, history, bookmarks)

	filters := domain.DefaultFilters()
	filters.Query = "example"

	got, err := o.Search(context.Background(), filters)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, got, "no partial merged results on failure")
}

func TestOrchestratorWidensAdapterLimit(t *testing.T) {
	var seenLimit int
	history := &adapterFunc{kind: domain.KindHistory, fn: func(_ context.Context, f domain.FilterState) ([]domain.ResultItem, error) {
		seenLimit = f.Limit
		return nil, nil
	}}
	o := NewOrchestrator(nil, history, nil)

	filters := domain.DefaultFilters()
	filters.Query = "example"
	filters.Scope = domain.ScopeHistory
	filters.Limit = 5

	_, err := o.Search(context.Background(), filters)
	require.NoError(t, err)
	assert.Equal(t, defaultFetchLimit, seenLimit, "adapters see the widened fetch limit, not the display limit")
}

func TestOrchestratorValidatesFilters(t *testing.T) {
	_, _, _, o := newOrchestratorFixture()

	filters := domain.DefaultFilters()
	filters.Query = "x"
	filters.Limit = 0

	_, err := o.Search(context.Background(), filters)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestOrchestratorNilAdapterInScope(t *testing.T) {
	o := NewOrchestrator(nil, nil, nil)

	filters := domain.DefaultFilters()
	filters.Query = "x"
	filters.Scope = domain.ScopeTabs

	_, err := o.Search(context.Background(), filters)
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}

// adapterFunc adapts a function into a SourceAdapter.
type adapterFunc struct {
	kind domain.ResultKind
	fn   func(ctx context.Context, filters domain.FilterState) ([]domain.ResultItem, error)
}

func (a *adapterFunc) Kind() domain.ResultKind {
	return a.kind
}

func (a *adapterFunc) Search(ctx context.Context, filters domain.FilterState) ([]domain.ResultItem, error) {
	return a.fn(ctx, filters)
}
