package domain

import (
	"fmt"
	"strings"
)

// Scope selects which sources a query runs against.
type Scope string

const (
	// ScopeHistory searches browsing history only.
	ScopeHistory Scope = "history"

	// ScopeBookmarks searches bookmarks only.
	ScopeBookmarks Scope = "bookmarks"

	// ScopeTabs searches currently open tabs only.
	ScopeTabs Scope = "tabs"

	// ScopeAll searches every source.
	ScopeAll Scope = "all"
)

// Valid reports whether the scope is one of the known values.
func (s Scope) Valid() bool {
	switch s {
	case ScopeHistory, ScopeBookmarks, ScopeTabs, ScopeAll:
		return true
	default:
		return false
	}
}

// TimeRangeKind identifies a symbolic time range.
type TimeRangeKind string

const (
	// RangeToday covers local midnight of "now" until "now".
	RangeToday TimeRangeKind = "today"

	// RangeThisWeek covers the most recent Monday 00:00 until "now".
	RangeThisWeek TimeRangeKind = "thisWeek"

	// RangePastWeeks covers N-1 full weeks before the most recent Monday.
	// N=1 behaves identically to RangeThisWeek.
	RangePastWeeks TimeRangeKind = "pastWeeks"
)

// TimeRange is a symbolic time window selection. Weeks is only meaningful
// for RangePastWeeks.
type TimeRange struct {
	Kind  TimeRangeKind
	Weeks int
}

// Today returns the "today" time range.
func Today() TimeRange {
	return TimeRange{Kind: RangeToday}
}

// ThisWeek returns the "this week" time range.
func ThisWeek() TimeRange {
	return TimeRange{Kind: RangeThisWeek}
}

// PastWeeks returns a range covering the past n weeks, Monday-anchored.
func PastWeeks(n int) TimeRange {
	return TimeRange{Kind: RangePastWeeks, Weeks: n}
}

// String returns a human-readable label for the range.
func (r TimeRange) String() string {
	switch r.Kind {
	case RangeToday:
		return "today"
	case RangeThisWeek:
		return "this week"
	case RangePastWeeks:
		return fmt.Sprintf("past %d weeks", r.Weeks)
	default:
		return string(r.Kind)
	}
}

// FilterState is the unified filter input for one query cycle.
// It is passed by value; the core never retains a reference past the call.
type FilterState struct {
	// Query is the free-text query. Matching is case-insensitive substring.
	Query string

	// Scope selects the sources to search.
	Scope Scope

	// Domain is an optional hostname constraint like "github.com".
	// Empty means no constraint. Matching is subdomain-inclusive.
	Domain string

	// TimeRange bounds history results. Bookmarks and tabs have no time
	// dimension and ignore it.
	TimeRange TimeRange

	// Limit caps the number of returned items. Must be positive.
	Limit int
}

// DefaultFilters returns the initial filter state.
func DefaultFilters() FilterState {
	return FilterState{
		Scope:     ScopeAll,
		TimeRange: Today(),
		Limit:     50,
	}
}

// Validate checks the FilterState invariants.
func (f FilterState) Validate() error {
	if f.Limit <= 0 {
		return fmt.Errorf("%w: limit must be positive, got %d", ErrInvalidInput, f.Limit)
	}
	if !f.Scope.Valid() {
		return fmt.Errorf("%w: unknown scope %q", ErrInvalidInput, f.Scope)
	}
	if f.TimeRange.Kind == RangePastWeeks && f.TimeRange.Weeks < 1 {
		return fmt.Errorf("%w: pastWeeks requires at least 1 week, got %d", ErrInvalidInput, f.TimeRange.Weeks)
	}
	return nil
}

// HasSignal reports whether the filter carries enough signal to query at
// all. An empty query with no domain constraint would return "everything",
// which is deliberately never shown.
func (f FilterState) HasSignal() bool {
	return strings.TrimSpace(f.Query) != "" || strings.TrimSpace(f.Domain) != ""
}

// FetchKey identifies the fetch-relevant portion of the filter state:
// everything except Limit. Two filters with equal fetch keys can share one
// fetched result set and differ only in how much of it is shown.
func (f FilterState) FetchKey() string {
	return fmt.Sprintf("%s\x00%s\x00%s\x00%s\x00%d",
		strings.TrimSpace(f.Query), f.Scope, strings.TrimSpace(f.Domain), f.TimeRange.Kind, f.TimeRange.Weeks)
}
