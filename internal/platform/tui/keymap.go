package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for the game view. Movement keys
// fire the button controller; cursor keys aim interactions at nearby
// cells without moving the player.
type KeyMap struct {
	North key.Binding
	South key.Binding
	East  key.Binding
	West  key.Binding

	CursorUp    key.Binding
	CursorDown  key.Binding
	CursorLeft  key.Binding
	CursorRight key.Binding

	Interact   key.Binding
	Reset      key.Binding
	ToggleMode key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		North: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "walk north"),
		),
		South: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "walk south"),
		),
		East: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "walk east"),
		),
		West: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "walk west"),
		),
		CursorUp: key.NewBinding(
			key.WithKeys("k"),
			key.WithHelp("k", "aim north"),
		),
		CursorDown: key.NewBinding(
			key.WithKeys("j"),
			key.WithHelp("j", "aim south"),
		),
		CursorLeft: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "aim west"),
		),
		CursorRight: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "aim east"),
		),
		Interact: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "pick up / merge"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset world"),
		),
		ToggleMode: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "switch movement source"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.North, k.CursorUp, k.Interact, k.Reset, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.North, k.South, k.East, k.West},
		{k.CursorUp, k.CursorDown, k.CursorLeft, k.CursorRight},
		{k.Interact, k.Reset, k.ToggleMode, k.Quit},
	}
}
