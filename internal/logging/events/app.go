package events

import "github.com/atomicstack/minui-list/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Exit(outcome string, code int) {
	logging.Trace("app.exit", map[string]interface{}{"outcome": outcome, "code": code})
}
