package tui

import (
	"github.com/retracehq/retrace/internal/core/domain"
)

// debounceElapsed fires after the typing pause. Seq identifies the
// keystroke burst it belongs to; a stale seq means more typing happened
// and the message is ignored.
type debounceElapsed struct {
	Seq int
}

// searchCompleted delivers one search's outcome. Gen tags the query cycle
// that issued it; results from an older cycle are never applied.
type searchCompleted struct {
	Gen     uint64
	Results []domain.ResultItem
	Err     error
}

// domainsLoaded delivers the ranked domain filter options.
type domainsLoaded struct {
	Options []domain.DomainOption
	Err     error
}

// RefreshRequested asks for an immediate requery. Sent from outside the
// program, e.g. when the bookmarks file changes on disk.
type RefreshRequested struct{}

// actionCompleted delivers the outcome of an open or delete action.
// Requery asks for an immediate refresh, used after mutations.
type actionCompleted struct {
	Requery bool
	Err     error
}
