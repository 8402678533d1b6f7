package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/super-breakout/internal/core"
)

// KeyMap defines the in-game key bindings.
type KeyMap struct {
	Left  key.Binding
	Right key.Binding
	Pause key.Binding
	Reset key.Binding
	Quit  key.Binding
}

// ShortHelp returns bindings for the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Pause, k.Reset, k.Quit}
}

// FullHelp returns bindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right},
		{k.Pause, k.Reset, k.Quit},
	}
}

// DefaultKeyMap returns the default key bindings. The mouse moves the
// paddle too; keys exist for terminals without motion reporting.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h", "a"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l", "d"),
			key.WithHelp("→/l", "right"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "f", " "),
			key.WithHelp("p/space", "pause"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "q", "ctrl+c"),
			key.WithHelp("esc/q", "quit"),
		),
	}
}

// MapKeyToFrame records the effect of a key press on an input frame.
// keyStep is the paddle motion of one arrow press in reference pixels.
// Returns false if the key is not bound.
func (k KeyMap) MapKeyToFrame(msg tea.KeyMsg, keyStep float64, frame *core.InputFrame) bool {
	switch {
	case key.Matches(msg, k.Quit):
		frame.Set(core.ActionQuit)
	case key.Matches(msg, k.Pause):
		frame.Set(core.ActionTogglePause)
	case key.Matches(msg, k.Reset):
		frame.Set(core.ActionReset)
	case key.Matches(msg, k.Left):
		frame.Nudge(-keyStep)
	case key.Matches(msg, k.Right):
		frame.Nudge(keyStep)
	default:
		return false
	}
	return true
}
