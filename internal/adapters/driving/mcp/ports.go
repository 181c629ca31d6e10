package mcp

import (
	"github.com/retracehq/retrace/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces the MCP server exposes.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Search runs unified queries across history, bookmarks, and tabs.
	Search driving.SearchService

	// Domains ranks recently visited domains. Optional.
	Domains driving.DomainSuggestionService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Search == nil {
		return ErrMissingSearchService
	}
	// Domains is optional; the tool is simply not registered without it.
	return nil
}
