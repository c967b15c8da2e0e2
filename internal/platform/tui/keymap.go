package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// PlayKeyMap defines the key bindings of the play screen.
type PlayKeyMap struct {
	AimUp     key.Binding
	AimDown   key.Binding
	PowerUp   key.Binding
	PowerDown key.Binding
	Fire      key.Binding
	Next      key.Binding
	Retry     key.Binding
	Snapshot  key.Binding
	Help      key.Binding
	Back      key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k PlayKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.AimUp, k.PowerUp, k.Fire, k.Next, k.Retry, k.Help}
}

// FullHelp returns key bindings for the full help view.
func (k PlayKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.AimUp, k.AimDown, k.PowerUp, k.PowerDown, k.Fire},
		{k.Next, k.Retry, k.Snapshot},
		{k.Help, k.Back, k.Quit},
	}
}

// DefaultPlayKeyMap returns default key bindings.
func DefaultPlayKeyMap() PlayKeyMap {
	return PlayKeyMap{
		AimUp: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "raise"),
		),
		AimDown: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "lower"),
		),
		PowerUp: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "more power"),
		),
		PowerDown: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "less power"),
		),
		Fire: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "fire"),
		),
		Next: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "next"),
		),
		Retry: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "retry"),
		),
		Snapshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "menu"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MenuKeyMap defines the key bindings of the menu.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Scores key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Scores, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultMenuKeyMap returns default key bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Scores: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "scores"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
