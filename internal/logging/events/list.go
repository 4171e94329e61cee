package events

import "github.com/atomicstack/minui-list/internal/logging"

type ListTracer struct{}

var List = ListTracer{}

func (ListTracer) Move(delta, selected, first, last int) {
	logging.Trace("list.move", map[string]interface{}{
		"delta":    delta,
		"selected": selected,
		"first":    first,
		"last":     last,
	})
}

func (ListTracer) Page(direction, selected, first, last int) {
	logging.Trace("list.page", map[string]interface{}{
		"direction": direction,
		"selected":  selected,
		"first":     first,
		"last":      last,
	})
}

func (ListTracer) Cycle(selected, option int) {
	logging.Trace("list.cycle", map[string]interface{}{"selected": selected, "option": option})
}

func (ListTracer) Toggle(selected int, enabled bool) {
	logging.Trace("list.toggle", map[string]interface{}{"selected": selected, "enabled": enabled})
}

func (ListTracer) Terminate(outcome string, selected int) {
	logging.Trace("list.terminate", map[string]interface{}{"outcome": outcome, "selected": selected})
}
