package services

import (
	"context"

	"github.com/retracehq/retrace/internal/core/domain"
)

// SourceAdapter is the one capability every search source implements. The
// orchestrator treats adapters polymorphically, so new sources plug in
// without changing merge logic.
type SourceAdapter interface {
	// Kind identifies the source this adapter searches.
	Kind() domain.ResultKind

	// Search applies the unified filter state to this source and returns
	// normalized result items in the source's own order, truncated to the
	// filter's limit.
	Search(ctx context.Context, filters domain.FilterState) ([]domain.ResultItem, error)
}
