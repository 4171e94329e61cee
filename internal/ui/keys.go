package ui

import (
	"github.com/atomicstack/minui-list/internal/ui/command"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// keyMap maps terminal keys onto the handheld's pad: a d-pad, four face
// buttons and a menu button.
type keyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	A     key.Binding
	B     key.Binding
	X     key.Binding
	Y     key.Binding
	Menu  key.Binding
	Quit  key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up:    key.NewBinding(key.WithKeys("up", "k")),
		Down:  key.NewBinding(key.WithKeys("down", "j")),
		Left:  key.NewBinding(key.WithKeys("left", "h")),
		Right: key.NewBinding(key.WithKeys("right", "l")),
		A:     key.NewBinding(key.WithKeys("a", "enter")),
		B:     key.NewBinding(key.WithKeys("b", "backspace")),
		X:     key.NewBinding(key.WithKeys("x")),
		Y:     key.NewBinding(key.WithKeys("y")),
		Menu:  key.NewBinding(key.WithKeys("m", "esc")),
		Quit:  key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// button returns the face button a key stands for.
func (k keyMap) button(msg tea.KeyMsg) command.Button {
	switch {
	case key.Matches(msg, k.A):
		return command.ButtonA
	case key.Matches(msg, k.B):
		return command.ButtonB
	case key.Matches(msg, k.X):
		return command.ButtonX
	case key.Matches(msg, k.Y):
		return command.ButtonY
	default:
		return command.ButtonNone
	}
}

// command resolves a key press to the command it triggers under bindings.
func (k keyMap) command(msg tea.KeyMsg, bindings command.Bindings) command.Command {
	switch {
	case key.Matches(msg, k.Quit):
		return command.Interrupt
	case key.Matches(msg, k.Up):
		return command.MoveUp
	case key.Matches(msg, k.Down):
		return command.MoveDown
	case key.Matches(msg, k.Left):
		return command.PageLeft
	case key.Matches(msg, k.Right):
		return command.PageRight
	case key.Matches(msg, k.Menu):
		return command.Menu
	}
	return bindings.Resolve(k.button(msg))
}

// faceKey returns the binding for a face button, used for footer hints.
func (k keyMap) faceKey(b command.Button) (key.Binding, bool) {
	switch b {
	case command.ButtonA:
		return k.A, true
	case command.ButtonB:
		return k.B, true
	case command.ButtonX:
		return k.X, true
	case command.ButtonY:
		return k.Y, true
	default:
		return key.Binding{}, false
	}
}
