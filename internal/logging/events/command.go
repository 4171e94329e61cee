package events

import "github.com/atomicstack/minui-list/internal/logging"

type CommandTracer struct{}

var Command = CommandTracer{}

func (CommandTracer) Queue(name string, repeat bool) {
	logging.Trace("command.queue", map[string]interface{}{"command": name, "repeat": repeat})
}

func (CommandTracer) Skip(name string) {
	logging.Trace("command.skip", map[string]interface{}{"command": name})
}

func (CommandTracer) Result(name string, redraw bool) {
	logging.Trace("command.result", map[string]interface{}{"command": name, "redraw": redraw})
}
