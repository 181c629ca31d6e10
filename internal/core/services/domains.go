package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/retracehq/retrace/internal/core/domain"
	"github.com/retracehq/retrace/internal/core/ports/driven"
	"github.com/retracehq/retrace/internal/core/ports/driving"
	"github.com/retracehq/retrace/internal/logger"
)

// Ensure DomainSuggestionService implements the interface.
var _ driving.DomainSuggestionService = (*DomainSuggestionService)(nil)

// DomainSuggestionService summarizes recent history into a ranked list of
// candidate domains for filter population. Independent of the main query
// pipeline.
type DomainSuggestionService struct {
	store driven.HistoryStore
	now   func() time.Time
}

// NewDomainSuggestionService creates a domain suggestion service.
func NewDomainSuggestionService(store driven.HistoryStore) *DomainSuggestionService {
	return &DomainSuggestionService{store: store, now: time.Now}
}

// TopDomains scans recent history and returns frequency-ranked,
// deduplicated normalized hostnames with visit counts.
func (s *DomainSuggestionService) TopDomains(
	ctx context.Context, opts domain.DomainSuggestionOptions,
) ([]domain.DomainOption, error) {
	if s.store == nil {
		return nil, fmt.Errorf("domain suggestions: %w", domain.ErrStoreUnavailable)
	}

	opts = opts.WithDefaults()
	now := s.now()
	start := now.Add(-opts.Lookback).UnixMilli()

	entries, err := s.store.Search(ctx, "", start, now.UnixMilli(), opts.MaxHistoryItems)
	if err != nil {
		return nil, fmt.Errorf("domain suggestions: %w", err)
	}
	logger.Debug("Domain suggestions: scanned %d history entries", len(entries))

	counts := make(map[string]int)
	for _, e := range entries {
		if e.URL == "" {
			continue
		}
		host := domain.NormalizeHostname(domain.Hostname(e.URL))
		if host == "" {
			continue
		}
		counts[host]++
	}

	options := make([]domain.DomainOption, 0, len(counts))
	for host, count := range counts {
		options = append(options, domain.DomainOption{Hostname: host, Count: count})
	}

	// Rank by count, hostname as a deterministic tiebreak.
	sort.Slice(options, func(i, j int) bool {
		if options[i].Count != options[j].Count {
			return options[i].Count > options[j].Count
		}
		return options[i].Hostname < options[j].Hostname
	})

	if len(options) > opts.MaxDomains {
		options = options[:opts.MaxDomains]
	}
	return options, nil
}
