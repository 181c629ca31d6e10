package driving

import (
	"context"

	"github.com/retracehq/retrace/internal/core/domain"
)

// ResultActionService dispatches open/delete/close actions back to the
// source owning each result.
type ResultActionService interface {
	// Open activates the exact tab instance for tab results, and opens a
	// new tab (or the OS browser as a fallback) for everything else.
	Open(ctx context.Context, item domain.ResultItem) error

	// OpenURL opens a raw URL in a new tab, falling back to the OS browser.
	OpenURL(ctx context.Context, url string) error

	// Delete performs one bulk mutation over the given results: tab
	// closes are issued first, then history deletions, then bookmark
	// deletions. The first failure aborts the cycle; nothing is removed
	// optimistically. Callers re-query afterwards rather than patching
	// their result lists.
	Delete(ctx context.Context, items []domain.ResultItem) error
}
