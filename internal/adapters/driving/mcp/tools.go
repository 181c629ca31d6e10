package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/retracehq/retrace/internal/core/domain"
)

// SearchInput is the input schema for the search tool.
type SearchInput struct {
	Query  string `json:"query,omitempty" jsonschema:"free-text query matched against titles and URLs"`
	Scope  string `json:"scope,omitempty" jsonschema:"source to search: history, bookmarks, tabs, or all (default all)"`
	Domain string `json:"domain,omitempty" jsonschema:"restrict results to this hostname and its subdomains"`
	Range  string `json:"range,omitempty" jsonschema:"time window for history results: today, thisWeek, or pastWeeks (default today)"`
	Weeks  int    `json:"weeks,omitempty" jsonschema:"number of weeks for the pastWeeks range"`
	Limit  int    `json:"limit,omitempty" jsonschema:"maximum number of results to return (default 50)"`
}

// SearchOutput is the output schema for the search tool.
type SearchOutput struct {
	Results []SearchResultOutput `json:"results"`
	Count   int                  `json:"count"`
}

// SearchResultOutput represents a single search result.
type SearchResultOutput struct {
	ID            string `json:"id"`
	Kind          string `json:"kind"`
	Title         string `json:"title"`
	URL           string `json:"url"`
	Hostname      string `json:"hostname,omitempty"`
	Meta          string `json:"meta,omitempty"`
	LastVisitTime int64  `json:"last_visit_time,omitempty"`
}

// TopDomainsInput is the input schema for the top_domains tool.
type TopDomainsInput struct {
	LookbackDays int `json:"lookback_days,omitempty" jsonschema:"how many days of history to scan (default 14)"`
	MaxDomains   int `json:"max_domains,omitempty" jsonschema:"maximum number of domains to return (default 20)"`
}

// TopDomainsOutput is the output schema for the top_domains tool.
type TopDomainsOutput struct {
	Domains []DomainOutput `json:"domains"`
}

// DomainOutput is one ranked domain.
type DomainOutput struct {
	Hostname string `json:"hostname"`
	Count    int    `json:"count"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search",
		Description: "Search browsing history, bookmarks, and open tabs",
	}, s.handleSearch)

	if s.ports.Domains != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "top_domains",
			Description: "List the most frequently visited domains in recent history",
		}, s.handleTopDomains)
	}
}

// filtersFromInput maps the tool input onto a filter state, applying the
// same defaults the interactive surfaces use.
func filtersFromInput(input SearchInput) (domain.FilterState, error) {
	filters := domain.DefaultFilters()
	filters.Query = input.Query
	filters.Domain = input.Domain

	if input.Scope != "" {
		filters.Scope = domain.Scope(input.Scope)
	}
	if input.Limit > 0 {
		filters.Limit = input.Limit
	}

	switch input.Range {
	case "", "today":
		filters.TimeRange = domain.Today()
	case "thisWeek":
		filters.TimeRange = domain.ThisWeek()
	case "pastWeeks":
		weeks := input.Weeks
		if weeks < 1 {
			weeks = 1
		}
		filters.TimeRange = domain.PastWeeks(weeks)
	default:
		return domain.FilterState{}, fmt.Errorf("%w: unknown range %q", domain.ErrInvalidInput, input.Range)
	}

	if err := filters.Validate(); err != nil {
		return domain.FilterState{}, err
	}
	return filters, nil
}

// handleSearch handles the search tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	filters, err := filtersFromInput(input)
	if err != nil {
		return nil, SearchOutput{}, err
	}

	results, err := s.ports.Search.Search(ctx, filters)
	if err != nil {
		return nil, SearchOutput{}, err
	}

	output := SearchOutput{
		Results: make([]SearchResultOutput, len(results)),
		Count:   len(results),
	}
	for i := range results {
		output.Results[i] = SearchResultOutput{
			ID:            results[i].ID,
			Kind:          string(results[i].Kind),
			Title:         results[i].Title,
			URL:           results[i].URL,
			Hostname:      results[i].Hostname,
			Meta:          results[i].MetaLine,
			LastVisitTime: results[i].LastVisitTime,
		}
	}

	return nil, output, nil
}

// handleTopDomains handles the top_domains tool invocation.
func (s *Server) handleTopDomains(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input TopDomainsInput,
) (*mcp.CallToolResult, TopDomainsOutput, error) {
	opts := domain.DomainSuggestionOptions{
		MaxDomains: input.MaxDomains,
	}
	if input.LookbackDays > 0 {
		opts.Lookback = time.Duration(input.LookbackDays) * 24 * time.Hour
	}

	ranked, err := s.ports.Domains.TopDomains(ctx, opts.WithDefaults())
	if err != nil {
		return nil, TopDomainsOutput{}, err
	}

	output := TopDomainsOutput{Domains: make([]DomainOutput, len(ranked))}
	for i, d := range ranked {
		output.Domains[i] = DomainOutput{Hostname: d.Hostname, Count: d.Count}
	}
	return nil, output, nil
}
