package cli

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/retracehq/retrace/internal/core/domain"
)

// filterFlags holds the filter-related flag values shared by the search
// and rm commands.
type filterFlags struct {
	scope     string
	domain    string
	timeRange string
	weeks     int
	limit     int
}

func (f *filterFlags) register(flags *pflag.FlagSet, defaultLimit int) {
	flags.StringVarP(&f.scope, "scope", "s", string(domain.ScopeAll), "source to search: history, bookmarks, tabs, all")
	flags.StringVarP(&f.domain, "domain", "d", "", "restrict to a hostname and its subdomains")
	flags.StringVarP(&f.timeRange, "range", "r", "today", "time window: today, week, weeks")
	flags.IntVar(&f.weeks, "weeks", 1, "number of weeks for --range weeks")
	flags.IntVarP(&f.limit, "limit", "n", defaultLimit, "maximum number of results")
}

// toFilterState validates the flags into a filter state. The query may be
// empty when a domain filter is present.
func (f *filterFlags) toFilterState(query string) (domain.FilterState, error) {
	filters := domain.FilterState{
		Query:  query,
		Scope:  domain.Scope(f.scope),
		Domain: f.domain,
		Limit:  f.limit,
	}
	if filters.Limit <= 0 {
		filters.Limit = cfg.Search.DefaultLimit
	}

	switch f.timeRange {
	case "today":
		filters.TimeRange = domain.Today()
	case "week":
		filters.TimeRange = domain.ThisWeek()
	case "weeks":
		filters.TimeRange = domain.PastWeeks(f.weeks)
	default:
		return domain.FilterState{}, fmt.Errorf("unknown --range %q (want today, week, or weeks)", f.timeRange)
	}

	if err := filters.Validate(); err != nil {
		return domain.FilterState{}, err
	}
	return filters, nil
}
