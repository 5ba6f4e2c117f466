package handler

import (
	"github.com/Alia5/hidbridge/internal/command"
	"github.com/Alia5/hidbridge/internal/metrics"
	"github.com/Alia5/hidbridge/internal/server/web"
	"github.com/Alia5/hidbridge/internal/state"
)

// Register installs the bridge's route table on r. m may be nil, which leaves
// /metrics unregistered.
func Register(r *web.Router, b *web.Bundle, st *state.State, in *command.Interpreter, m *metrics.Metrics) {
	r.Register("GET", "/", Index(b))
	r.Register("POST", "/", ToggleIndicator(st))
	r.Register("POST", "/execute", Execute(in))
	r.Register("GET", "/getInputMode", InputMode(st))
	r.Register("GET", "/getButtonStatus", ButtonStatus(st))
	r.Register("GET", "/ping", Ping())
	if m != nil {
		r.Register("GET", "/metrics", Metrics(m))
	}
}
