package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colour palette for the TUI.
type Theme struct {
	Primary    lipgloss.Color
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
	Border     lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:    lipgloss.Color("#7C3AED"), // Purple
		Foreground: lipgloss.Color("#CDD6F4"), // Light gray
		Muted:      lipgloss.Color("#6C7086"), // Medium gray
		Warning:    lipgloss.Color("#F9E2AF"), // Yellow
		Error:      lipgloss.Color("#F38BA8"), // Red
		Border:     lipgloss.Color("#45475A"), // Border gray
	}
}

// Styles contains pre-configured lipgloss styles.
type Styles struct {
	theme *Theme

	// Title for the header line.
	Title lipgloss.Style

	// Normal for regular text.
	Normal lipgloss.Style

	// Muted for meta lines and the filter bar.
	Muted lipgloss.Style

	// Selected for the highlighted result row.
	Selected lipgloss.Style

	// Marked for multi-selected rows.
	Marked lipgloss.Style

	// KindTag for the source tag on each row.
	KindTag lipgloss.Style

	// Error for error and stale indicators.
	Error lipgloss.Style

	// Warning for the confirmation prompt.
	Warning lipgloss.Style

	// StatusBar for the bottom line.
	StatusBar lipgloss.Style
}

// DefaultStyles returns styles built on the default theme.
func DefaultStyles() *Styles {
	t := DefaultTheme()
	return &Styles{
		theme:     t,
		Title:     lipgloss.NewStyle().Foreground(t.Primary).Bold(true),
		Normal:    lipgloss.NewStyle().Foreground(t.Foreground),
		Muted:     lipgloss.NewStyle().Foreground(t.Muted),
		Selected:  lipgloss.NewStyle().Foreground(t.Primary).Bold(true),
		Marked:    lipgloss.NewStyle().Foreground(t.Warning),
		KindTag:   lipgloss.NewStyle().Foreground(t.Muted),
		Error:     lipgloss.NewStyle().Foreground(t.Error),
		Warning:   lipgloss.NewStyle().Foreground(t.Warning).Bold(true),
		StatusBar: lipgloss.NewStyle().Foreground(t.Muted).BorderTop(true).BorderStyle(lipgloss.NormalBorder()).BorderForeground(t.Border),
	}
}
