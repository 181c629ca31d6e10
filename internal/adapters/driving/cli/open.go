package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var openCmd = &cobra.Command{
	Use:   "open <url>",
	Short: "Open a URL in the browser",
	Long: `Opens a URL in a new browser tab via the remote-debugging endpoint,
falling back to the OS default browser when no endpoint is reachable.`,
	Args: cobra.ExactArgs(1),
	RunE: runOpen,
}

func init() {
	rootCmd.AddCommand(openCmd)
}

func runOpen(cmd *cobra.Command, args []string) error {
	if actionService == nil {
		return errors.New("action service not configured")
	}
	if err := actionService.OpenURL(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("opening %s: %w", args[0], err)
	}
	return nil
}
