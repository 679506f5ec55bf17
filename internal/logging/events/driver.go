package events

import "github.com/atomicstack/retromenu/internal/logging"

type DriverTracer struct{}

var Driver = DriverTracer{}

func (DriverTracer) Found(ident string) {
	logging.Trace("driver.found", map[string]interface{}{"ident": ident})
}

func (DriverTracer) Fallback(requested, ident string, available []string) {
	logging.Trace("driver.fallback", map[string]interface{}{
		"requested": requested,
		"ident":     ident,
		"available": available,
	})
}

func (DriverTracer) Init(ident string) {
	logging.Trace("driver.init", map[string]interface{}{"ident": ident})
}

func (DriverTracer) Deinit(ident string) {
	logging.Trace("driver.deinit", map[string]interface{}{"ident": ident})
}

func (DriverTracer) Toggle(on bool) {
	logging.Trace("driver.toggle", map[string]interface{}{"on": on})
}

func (DriverTracer) PendingOp(op string) {
	logging.Trace("driver.pending-op", map[string]interface{}{"op": op})
}
