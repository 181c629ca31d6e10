package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/retracehq/retrace/internal/core/domain"
)

var (
	searchFilters filterFlags
	searchJSON    bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search history, bookmarks, and open tabs",
	Long: `Runs one query across the selected sources and prints the merged
results, open tabs first, then history, then bookmarks.

A query or a --domain filter is required: an unconstrained search would
return everything, which is deliberately never shown.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchFilters.register(searchCmd.Flags(), 0)
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if searchService == nil {
		return errors.New("search service not configured")
	}

	query := ""
	if len(args) > 0 {
		query = args[0]
	}

	filters, err := searchFilters.toFilterState(query)
	if err != nil {
		return err
	}
	if !filters.HasSignal() {
		return errors.New("a query or --domain filter is required")
	}

	results, err := searchService.Search(cmd.Context(), filters)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		return outputResultsJSON(cmd, results)
	}
	return outputResultsTable(cmd, results)
}

// resultJSON is the stable JSON shape for scripted consumers.
type resultJSON struct {
	ID            string `json:"id"`
	Kind          string `json:"kind"`
	Title         string `json:"title"`
	URL           string `json:"url"`
	Hostname      string `json:"hostname,omitempty"`
	Meta          string `json:"meta,omitempty"`
	LastVisitTime int64  `json:"last_visit_time,omitempty"`
}

func outputResultsJSON(cmd *cobra.Command, results []domain.ResultItem) error {
	out := make([]resultJSON, len(results))
	for i := range results {
		out[i] = resultJSON{
			ID:            results[i].ID,
			Kind:          string(results[i].Kind),
			Title:         results[i].Title,
			URL:           results[i].URL,
			Hostname:      results[i].Hostname,
			Meta:          results[i].MetaLine,
			LastVisitTime: results[i].LastVisitTime,
		}
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputResultsTable(cmd *cobra.Command, results []domain.ResultItem) error {
	if len(results) == 0 {
		cmd.Println("No results found.")
		return nil
	}

	for i := range results {
		cmd.Printf("%-3d %-9s %s\n", i+1, kindLabel(results[i].Kind), results[i].Title)
		cmd.Printf("    %s\n", results[i].URL)
		if meta := results[i].MetaLine; meta != "" {
			cmd.Printf("    %s\n", meta)
		}
	}
	cmd.Println()
	cmd.Printf("%d results\n", len(results))
	return nil
}

func kindLabel(kind domain.ResultKind) string {
	switch kind {
	case domain.KindTab:
		return "[tab]"
	case domain.KindHistory:
		return "[history]"
	case domain.KindBookmark:
		return "[bmark]"
	default:
		return string(kind)
	}
}
