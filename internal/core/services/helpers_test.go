package services

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/retracehq/retrace/internal/core/domain"
)

// --- Shared test doubles ---

// fakeFavicons derives a recognisable icon URL without any I/O.
type fakeFavicons struct{}

func (fakeFavicons) URLFor(pageURL string, size int) string {
	return fmt.Sprintf("favicon://%d/%s", size, pageURL)
}

// stubAdapter is a scriptable SourceAdapter that counts invocations.
type stubAdapter struct {
	kind    domain.ResultKind
	results []domain.ResultItem
	err     error
	calls   atomic.Int64
}

func (a *stubAdapter) Kind() domain.ResultKind {
	return a.kind
}

func (a *stubAdapter) Search(_ context.Context, _ domain.FilterState) ([]domain.ResultItem, error) {
	a.calls.Add(1)
	if a.err != nil {
		return nil, a.err
	}
	return a.results, nil
}

func item(kind domain.ResultKind, nativeID, url string) domain.ResultItem {
	return domain.ResultItem{
		ID:       domain.ResultID(kind, nativeID),
		Kind:     kind,
		Title:    nativeID,
		URL:      url,
		Hostname: domain.Hostname(url),
	}
}

// testNow is Wednesday 2024-01-10 15:00 local time.
var testNow = time.Date(2024, time.January, 10, 15, 0, 0, 0, time.Local)

func millisAgo(d time.Duration) int64 {
	return testNow.Add(-d).UnixMilli()
}
