package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrStoreUnavailable indicates the underlying browser store does not
	// exist in the current execution context (no profile on disk, no
	// DevTools endpoint listening). Permanent for the process, never retried.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrSuperseded indicates a query cycle was started after this one and
	// its result must be discarded rather than applied.
	ErrSuperseded = errors.New("query superseded")

	// ErrUnknownResultID indicates a result id whose prefix maps to no
	// known source kind.
	ErrUnknownResultID = errors.New("unknown result id")
)
