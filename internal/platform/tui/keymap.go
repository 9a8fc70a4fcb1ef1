package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// KeyMap defines the key bindings used during play.
// It centralizes bindings and makes them testable.
type KeyMap struct {
	P1Up    key.Binding
	P1Down  key.Binding
	P2Up    key.Binding
	P2Down  key.Binding
	Pause   key.Binding
	Restart key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the default play bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		P1Up: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w/s", "left paddle"),
		),
		P1Down: key.NewBinding(
			key.WithKeys("s"),
		),
		P2Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("up/down", "right paddle"),
		),
		P2Down: key.NewBinding(
			key.WithKeys("down"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", " "),
			key.WithHelp("p/space", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
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

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Restart, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.P1Up, k.P2Up},
		{k.Pause, k.Restart},
		{k.Help, k.Quit},
	}
}

// Action translates a key message to a game action.
// Returns ActionNone for unbound keys.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.P1Up):
		return core.ActionP1Up
	case key.Matches(msg, k.P1Down):
		return core.ActionP1Down
	case key.Matches(msg, k.P2Up):
		return core.ActionP2Up
	case key.Matches(msg, k.P2Down):
		return core.ActionP2Down
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	case key.Matches(msg, k.Help):
		return core.ActionHelp
	}
	return core.ActionNone
}
