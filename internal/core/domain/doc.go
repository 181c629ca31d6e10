// Package domain defines the core business entities for Retrace.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - FilterState: The unified query/scope/domain/time/limit filter
//   - ResultItem: A normalized, source-tagged search hit
//   - TimeWindow: An absolute [start, end) window resolved from a TimeRange
//   - DomainOption: A hostname/visit-count pair for filter population
//
// It also holds the two rules every adapter must share: hostname
// normalization with subdomain-inclusive domain matching, and the
// Monday-anchored time-window resolution.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
