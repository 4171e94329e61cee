package command

import (
	"github.com/atomicstack/minui-list/internal/logging/events"
	"github.com/atomicstack/minui-list/internal/ui/state"
)

// Request encapsulates one command invocation.
type Request struct {
	Command Command
	// Repeat marks an auto-repeated key rather than a fresh press.
	Repeat bool
}

// Bus applies commands to the list engine.
type Bus struct{}

// New initialises a command bus instance.
func New() *Bus {
	return &Bus{}
}

// Execute applies exactly one engine operation and reports whether the
// screen needs a redraw, emitting trace logs along the way.
func (b *Bus) Execute(list *state.List, req Request) bool {
	name := req.Command.String()
	events.Command.Queue(name, req.Repeat)
	if list == nil || req.Command == None {
		events.Command.Skip(name)
		return false
	}
	var redraw bool
	switch req.Command {
	case MoveUp:
		redraw = list.MoveSelection(-1, req.Repeat)
	case MoveDown:
		redraw = list.MoveSelection(1, req.Repeat)
	case PageLeft:
		redraw = list.PageOrCycle(-1)
	case PageRight:
		redraw = list.PageOrCycle(1)
	case ToggleEnable:
		redraw = list.ToggleEnable()
	case Confirm:
		redraw = list.Terminate(state.OutcomeConfirm)
	case Cancel:
		redraw = list.Terminate(state.OutcomeCancel)
	case Action:
		redraw = list.Terminate(state.OutcomeAction)
	case Menu:
		redraw = list.Terminate(state.OutcomeMenu)
	case Interrupt:
		redraw = list.Terminate(state.OutcomeInterrupted)
	default:
		events.Command.Skip(name)
		return false
	}
	events.Command.Result(name, redraw)
	return redraw
}
