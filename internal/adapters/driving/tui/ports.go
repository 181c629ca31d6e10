// Package tui implements the interactive terminal UI: one query box over
// the unified history/bookmarks/tabs pipeline, with scope, time, and
// domain filters and bulk open/delete actions.
package tui

import (
	"errors"
	"time"

	"github.com/retracehq/retrace/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces the TUI needs.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Search runs unified queries.
	Search driving.SearchService

	// Actions opens and deletes results.
	Actions driving.ResultActionService

	// Domains ranks recent domains for the domain filter. Optional: the
	// filter simply stays empty without it.
	Domains driving.DomainSuggestionService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Search == nil {
		return errors.New("tui: search service is required")
	}
	if p.Actions == nil {
		return errors.New("tui: action service is required")
	}
	return nil
}

// Options tunes the UI.
type Options struct {
	// Debounce is how long typing must pause before a search fires.
	// Zero means the default of 200ms.
	Debounce time.Duration

	// DefaultLimit is the initial result limit. Zero means 50.
	DefaultLimit int
}

func (o Options) withDefaults() Options {
	if o.Debounce <= 0 {
		o.Debounce = 200 * time.Millisecond
	}
	if o.DefaultLimit <= 0 {
		o.DefaultLimit = 50
	}
	return o
}
