package driving

import (
	"context"

	"github.com/retracehq/retrace/internal/core/domain"
)

// SearchService runs one unified query across the sources selected by the
// filter's scope.
type SearchService interface {
	// Search returns the merged, source-tagged, limited result list for
	// the filter state. An empty query with no domain filter yields an
	// empty list without touching any source. A call started after this
	// one supersedes it: superseded calls fail with domain.ErrSuperseded
	// and their results must not be applied.
	Search(ctx context.Context, filters domain.FilterState) ([]domain.ResultItem, error)

	// Invalidate drops any cached base results, forcing the next Search
	// to hit the sources again. Called after mutations.
	Invalidate()
}
