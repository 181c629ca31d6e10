package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var tabsClose []string

var tabsCmd = &cobra.Command{
	Use:   "tabs",
	Short: "List or close open tabs",
	Long: `Lists every open tab in the browser's enumeration order. Unlike the
search command, no query is required: this is a plain listing, not a
filtered search.

Use --close with tab numbers from the listing to close tabs.`,
	RunE: runTabs,
}

func init() {
	tabsCmd.Flags().StringSliceVar(&tabsClose, "close", nil, "tab numbers to close, e.g. --close 1,3")
	rootCmd.AddCommand(tabsCmd)
}

func runTabs(cmd *cobra.Command, _ []string) error {
	if tabStore == nil {
		return errors.New("tab store not configured")
	}

	tabs, err := tabStore.QueryAll(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing tabs: %w", err)
	}

	if len(tabsClose) > 0 {
		var ids []string
		for _, field := range tabsClose {
			n, err := strconv.Atoi(strings.TrimSpace(field))
			if err != nil || n < 1 || n > len(tabs) {
				return fmt.Errorf("invalid --close entry %q (want 1-%d)", field, len(tabs))
			}
			ids = append(ids, tabs[n-1].ID)
		}
		if err := tabStore.CloseMany(cmd.Context(), ids); err != nil {
			return fmt.Errorf("closing tabs: %w", err)
		}
		cmd.Printf("Closed %d tabs.\n", len(ids))
		return nil
	}

	if len(tabs) == 0 {
		cmd.Println("No open tabs.")
		return nil
	}
	for i, tab := range tabs {
		title := tab.Title
		if title == "" {
			title = tab.URL
		}
		cmd.Printf("%-3d %s\n", i+1, title)
		cmd.Printf("    %s\n", tab.URL)
	}
	return nil
}
