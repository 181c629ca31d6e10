// Package mcp provides an MCP (Model Context Protocol) server adapter for
// Retrace. It lets AI assistants query browsing history, bookmarks, and
// open tabs through the same pipeline the CLI and TUI use.
package mcp

import "errors"

// ErrMissingSearchService is returned when the search service is not provided.
var ErrMissingSearchService = errors.New("mcp: search service is required")
