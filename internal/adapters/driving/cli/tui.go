package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/retracehq/retrace/internal/adapters/driven/browser/chromium"
	"github.com/retracehq/retrace/internal/adapters/driving/tui"
	"github.com/retracehq/retrace/internal/logger"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface for Retrace.

Type to search as you go; results merge open tabs, history, and
bookmarks into one list.

Controls:
  ↑/↓      - Navigate results
  Tab      - Cycle scope (all/history/bookmarks/tabs)
  F2       - Cycle time range
  F3       - Cycle domain filter
  Space    - Select / deselect a result
  Enter    - Open the highlighted result
  Del      - Delete selection (with confirmation)
  Esc      - Clear / quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("tui requires an interactive terminal")
	}

	// Panic recovery keeps the stack trace visible after the alt screen
	// is torn down.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	ports := &tui.Ports{
		Search:  searchService,
		Actions: actionService,
		Domains: domainService,
	}

	app, err := tui.NewApp(ports, tui.Options{
		Debounce:     time.Duration(cfg.Search.DebounceMS) * time.Millisecond,
		DefaultLimit: cfg.Search.DefaultLimit,
	})
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	app.WithContext(cmd.Context())

	p := tea.NewProgram(app, tea.WithAltScreen())

	// Bookmarks can change under us while the UI is open; invalidate the
	// cache and refresh when the file is rewritten.
	if !flagDemo {
		watcher, err := chromium.NewBookmarkWatcher(cfg.Profile.BookmarksPath, func() {
			searchService.Invalidate()
			p.Send(tui.RefreshRequested{})
		})
		if err != nil {
			logger.Warn("Bookmarks watcher unavailable: %v", err)
		} else {
			defer watcher.Close()
		}
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
