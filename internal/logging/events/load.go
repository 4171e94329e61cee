package events

import "github.com/atomicstack/minui-list/internal/logging"

type LoadTracer struct{}

var Load = LoadTracer{}

func (LoadTracer) Start(path, format, itemKey string) {
	logging.Trace("load.start", map[string]interface{}{"path": path, "format": format, "itemKey": itemKey})
}

func (LoadTracer) Done(format string, items int, hasOptions bool) {
	logging.Trace("load.done", map[string]interface{}{"format": format, "items": items, "hasOptions": hasOptions})
}

func (LoadTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("load.error", map[string]interface{}{"error": err.Error()})
}
