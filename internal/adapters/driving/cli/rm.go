package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/retracehq/retrace/internal/core/domain"
)

var (
	rmFilters filterFlags
	rmYes     bool
	rmPick    string
)

var rmCmd = &cobra.Command{
	Use:   "rm [query]",
	Short: "Delete matching results from their sources",
	Long: `Runs the same search as the search command, then deletes the matches:
open tabs are closed, history entries and bookmarks are removed.

Mutations run in a fixed order per cycle: tab closes first, then history
deletions, then bookmark deletions. The first failure aborts the cycle.
Deleting history requires the browser to be closed; it locks the
database while running.

Use --pick to delete a subset by result number, e.g. --pick 1,3,5.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRm,
}

func init() {
	rmFilters.register(rmCmd.Flags(), 0)
	rmCmd.Flags().BoolVarP(&rmYes, "yes", "y", false, "skip the confirmation prompt")
	rmCmd.Flags().StringVar(&rmPick, "pick", "", "comma-separated result numbers to delete")
	rootCmd.AddCommand(rmCmd)
}

func runRm(cmd *cobra.Command, args []string) error {
	if searchService == nil || actionService == nil {
		return errors.New("services not configured")
	}

	query := ""
	if len(args) > 0 {
		query = args[0]
	}

	filters, err := rmFilters.toFilterState(query)
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
	if len(results) == 0 {
		cmd.Println("Nothing matched; nothing to delete.")
		return nil
	}

	doomed, err := pickResults(results, rmPick)
	if err != nil {
		return err
	}

	if err := outputResultsTable(cmd, doomed); err != nil {
		return err
	}
	if !rmYes && !confirm(cmd, fmt.Sprintf("Delete these %d results?", len(doomed))) {
		cmd.Println("Aborted.")
		return nil
	}

	if err := actionService.Delete(cmd.Context(), doomed); err != nil {
		return fmt.Errorf("delete failed: %w", err)
	}

	// Cached results are stale now; the next search refetches.
	searchService.Invalidate()
	cmd.Printf("Deleted %d results.\n", len(doomed))
	return nil
}

// pickResults narrows results to the 1-based indices in spec. An empty
// spec selects everything.
func pickResults(results []domain.ResultItem, spec string) ([]domain.ResultItem, error) {
	if strings.TrimSpace(spec) == "" {
		return results, nil
	}

	var picked []domain.ResultItem
	seen := make(map[int]bool)
	for _, field := range strings.Split(spec, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil || n < 1 || n > len(results) {
			return nil, fmt.Errorf("invalid --pick entry %q (want 1-%d)", strings.TrimSpace(field), len(results))
		}
		if seen[n] {
			continue
		}
		seen[n] = true
		picked = append(picked, results[n-1])
	}
	return picked, nil
}

func confirm(cmd *cobra.Command, prompt string) bool {
	cmd.Printf("%s [y/N] ", prompt)
	reader := bufio.NewReader(cmd.InOrStdin())
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
