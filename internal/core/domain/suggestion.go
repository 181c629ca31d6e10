package domain

import "time"

// DomainOption is a candidate domain for filter population: a normalized
// hostname plus its visit count in the lookback window. Derived, never
// persisted.
type DomainOption struct {
	Hostname string
	Count    int
}

// DomainSuggestionOptions bounds the recent-history scan behind domain
// suggestions. Zero values fall back to the defaults.
type DomainSuggestionOptions struct {
	// Lookback is how far back to scan. Default 14 days.
	Lookback time.Duration

	// MaxHistoryItems caps how many history entries are scanned. Default 2000.
	MaxHistoryItems int

	// MaxDomains caps the returned list. Default 20.
	MaxDomains int
}

// Domain suggestion defaults.
const (
	DefaultSuggestionLookback = 14 * 24 * time.Hour
	DefaultMaxHistoryItems    = 2000
	DefaultMaxDomains         = 20
)

// WithDefaults returns a copy with zero fields replaced by the defaults.
func (o DomainSuggestionOptions) WithDefaults() DomainSuggestionOptions {
	if o.Lookback <= 0 {
		o.Lookback = DefaultSuggestionLookback
	}
	if o.MaxHistoryItems <= 0 {
		o.MaxHistoryItems = DefaultMaxHistoryItems
	}
	if o.MaxDomains <= 0 {
		o.MaxDomains = DefaultMaxDomains
	}
	return o
}
