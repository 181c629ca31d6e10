package driving

import (
	"context"

	"github.com/retracehq/retrace/internal/core/domain"
)

// DomainSuggestionService summarizes recent history into ranked candidate
// domains for filter population. Independent of the main query pipeline.
type DomainSuggestionService interface {
	// TopDomains returns a frequency-ranked, deduplicated list of
	// normalized hostnames with visit counts, capped to opts.MaxDomains.
	TopDomains(ctx context.Context, opts domain.DomainSuggestionOptions) ([]domain.DomainOption, error)
}
