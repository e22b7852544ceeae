package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit         key.Binding
	Help         key.Binding
	CycleTheme   key.Binding
	ToggleSizing key.Binding

	// Gestures
	ScrollLeft  key.Binding
	ScrollRight key.Binding

	// External selection
	Next    key.Binding
	Prev    key.Binding
	First   key.Binding
	Last    key.Binding
	Shuffle key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		// Global
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		ToggleSizing: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "Fixed/viewport sizing"),
		),

		// Gestures
		ScrollLeft: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h/left", "Scroll towards first"),
		),
		ScrollRight: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l/right", "Scroll towards last"),
		),

		// External selection
		Next: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "Next index"),
		),
		Prev: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "Previous index"),
		),
		First: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "First item"),
		),
		Last: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "Last item"),
		),
		Shuffle: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "Select random item"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ScrollLeft, k.ScrollRight, k.Next, k.Prev, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		// Gestures
		{k.ScrollLeft, k.ScrollRight},
		// Selection
		{k.Next, k.Prev, k.First, k.Last, k.Shuffle},
		// General
		{k.ToggleSizing, k.CycleTheme, k.Help, k.Quit},
	}
}
