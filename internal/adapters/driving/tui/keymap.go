package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	// Quit exits the application.
	Quit key.Binding

	// Up and Down move the result cursor.
	Up   key.Binding
	Down key.Binding

	// Open opens the highlighted result.
	Open key.Binding

	// ToggleSelect marks or unmarks the highlighted result.
	ToggleSelect key.Binding

	// Delete deletes the selection (or the highlighted result).
	Delete key.Binding

	// CycleScope cycles all → history → bookmarks → tabs.
	CycleScope key.Binding

	// CycleRange cycles today → this week → past 2/4/8 weeks.
	CycleRange key.Binding

	// CycleDomain cycles through the suggested domain filters.
	CycleDomain key.Binding

	// Clear empties the query, or quits when it is already empty.
	Clear key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "down"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		ToggleSelect: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "select"),
		),
		Delete: key.NewBinding(
			key.WithKeys("delete", "ctrl+d"),
			key.WithHelp("del", "delete"),
		),
		CycleScope: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "scope"),
		),
		CycleRange: key.NewBinding(
			key.WithKeys("f2"),
			key.WithHelp("f2", "time range"),
		),
		CycleDomain: key.NewBinding(
			key.WithKeys("f3"),
			key.WithHelp("f3", "domain"),
		),
		Clear: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear/quit"),
		),
	}
}
