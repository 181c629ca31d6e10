package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retracehq/retrace/internal/adapters/driven/storage/memory"
	"github.com/retracehq/retrace/internal/core/domain"
	"github.com/retracehq/retrace/internal/core/ports/driven"
)

func newHistoryFixture() (*memory.HistoryStore, *HistoryAdapter) {
	store := memory.NewHistoryStore()
	adapter := NewHistoryAdapter(store, fakeFavicons{})
	adapter.now = func() time.Time { return testNow }
	return store, adapter
}

func TestHistoryAdapterNormalizesAndOrders(t *testing.T) {
	store, adapter := newHistoryFixture()
	store.Add(driven.HistoryEntry{ID: "1", URL: "https://go.dev/doc", Title: "Go docs", LastVisitTime: millisAgo(2 * time.Hour)})
	store.Add(driven.HistoryEntry{ID: "2", URL: "https://go.dev/blog", Title: "Go blog", LastVisitTime: millisAgo(1 * time.Hour)})
	store.Add(driven.HistoryEntry{ID: "3", URL: "", Title: "no url", LastVisitTime: millisAgo(1 * time.Hour)})

	filters := domain.DefaultFilters()
	filters.Query = "go"
	filters.Scope = domain.ScopeHistory

	got, err := adapter.Search(context.Background(), filters)
	require.NoError(t, err)
	require.Len(t, got, 2, "URL-less entries are dropped")

	// Newest first.
	assert.Equal(t, "h:2", got[0].ID)
	assert.Equal(t, "h:1", got[1].ID)

	assert.Equal(t, domain.KindHistory, got[0].Kind)
	assert.Equal(t, "go.dev", got[0].Hostname)
	assert.Contains(t, got[0].MetaLine, "Last visit: ")
	assert.NotEmpty(t, got[0].FaviconURL)
}

func TestHistoryAdapterDomainPostFilter(t *testing.T) {
	store, adapter := newHistoryFixture()
	store.Add(driven.HistoryEntry{ID: "1", URL: "https://m.github.com/x", Title: "mobile", LastVisitTime: millisAgo(time.Hour)})
	store.Add(driven.HistoryEntry{ID: "2", URL: "https://notgithub.com/x", Title: "imposter", LastVisitTime: millisAgo(time.Hour)})

	filters := domain.DefaultFilters()
	filters.Scope = domain.ScopeHistory
	filters.Domain = "github.com"

	got, err := adapter.Search(context.Background(), filters)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "h:1", got[0].ID)
}

func TestHistoryAdapterTimeWindow(t *testing.T) {
	store, adapter := newHistoryFixture()
	store.Add(driven.HistoryEntry{ID: "today", URL: "https://a.example/", LastVisitTime: millisAgo(3 * time.Hour)})
	store.Add(driven.HistoryEntry{ID: "lastweek", URL: "https://a.example/old", LastVisitTime: millisAgo(8 * 24 * time.Hour)})

	filters := domain.DefaultFilters()
	filters.Scope = domain.ScopeHistory
	filters.Domain = "a.example"
	filters.TimeRange = domain.Today()

	got, err := adapter.Search(context.Background(), filters)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "h:today", got[0].ID)

	filters.TimeRange = domain.PastWeeks(2)
	got, err = adapter.Search(context.Background(), filters)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestHistoryAdapterTitleFallbackAndID(t *testing.T) {
	store, adapter := newHistoryFixture()
	store.Add(driven.HistoryEntry{URL: "https://untitled.example/", Title: "  ", LastVisitTime: millisAgo(time.Hour)})

	filters := domain.DefaultFilters()
	filters.Scope = domain.ScopeHistory
	filters.Domain = "untitled.example"

	got, err := adapter.Search(context.Background(), filters)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "https://untitled.example/", got[0].Title, "blank title falls back to URL")
	// The memory store assigns ids, so the synthetic id carries it.
	kind, _, err := domain.SplitResultID(got[0].ID)
	require.NoError(t, err)
	assert.Equal(t, domain.KindHistory, kind)
}

func TestHistoryAdapterTruncatesToLimit(t *testing.T) {
	store, adapter := newHistoryFixture()
	for i := 0; i < 10; i++ {
		store.Add(driven.HistoryEntry{
			URL:           "https://many.example/" + string(rune('a'+i)),
			LastVisitTime: millisAgo(time.Duration(i+1) * time.Minute),
		})
	}

	filters := domain.DefaultFilters()
	filters.Scope = domain.ScopeHistory
	filters.Domain = "many.example"
	filters.Limit = 3

	got, err := adapter.Search(context.Background(), filters)
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestHistoryAdapterUnavailableStore(t *testing.T) {
	adapter := NewHistoryAdapter(nil, fakeFavicons{})

	filters := domain.DefaultFilters()
	filters.Query = "x"
	filters.Scope = domain.ScopeHistory

	_, err := adapter.Search(context.Background(), filters)
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}
