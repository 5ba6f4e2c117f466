// Package metrics defines the Prometheus collectors the bridge exports on
// GET /metrics.
package metrics

import (
	"bytes"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/common/expfmt"
)

const namespace = "hidbridge"

// Command results recorded in CommandsTotal.
const (
	ResultOK      = "ok"
	ResultSkipped = "skipped"
	ResultError   = "error"
)

// Metrics holds every collector of the bridge.
type Metrics struct {
	RequestsTotal  *prometheus.CounterVec
	CommandsTotal  *prometheus.CounterVec
	BatchDuration  prometheus.Histogram
	UnresolvedKeys *prometheus.CounterVec
	NetworkResets  prometheus.Counter
	ButtonPressed  prometheus.Gauge

	gatherer prometheus.Gatherer
}

// NewRegistry creates a Prometheus registry with Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	return reg
}

// New creates the bridge collectors and registers them on reg.
func New(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests by method, route and status.",
		}, []string{"method", "route", "status_code"}),
		CommandsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "commands",
			Name:      "executed_total",
			Help:      "Commands processed by type and result (ok, skipped, error).",
		}, []string{"type", "result"}),
		BatchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "commands",
			Name:      "batch_duration_seconds",
			Help:      "Wall time of one /execute batch including pacing delays.",
			Buckets:   []float64{.01, .1, .5, 1, 2, 5, 10, 30, 60},
		}),
		UnresolvedKeys: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "unresolved_keys_total",
			Help:      "Key names in PRESS commands that matched no keycode.",
		}, []string{"name"}),
		NetworkResets: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "network",
			Name:      "resets_total",
			Help:      "Times the network interface was reset after a recoverable fault.",
		}),
		ButtonPressed: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "button_pressed",
			Help:      "1 while the physical button is pressed.",
		}),
		gatherer: reg,
	}

	reg.MustRegister(m.RequestsTotal, m.CommandsTotal, m.BatchDuration,
		m.UnresolvedKeys, m.NetworkResets, m.ButtonPressed)
	return m
}

// ObserveBatch records the duration of a batch that started at start.
func (m *Metrics) ObserveBatch(start time.Time, now time.Time) {
	m.BatchDuration.Observe(now.Sub(start).Seconds())
}

// Exposition renders every registered metric in the Prometheus text format
// and returns the body together with its content type.
func (m *Metrics) Exposition() ([]byte, string, error) {
	families, err := m.gatherer.Gather()
	if err != nil {
		return nil, "", err
	}
	format := expfmt.NewFormat(expfmt.TypeTextPlain)
	var buf bytes.Buffer
	enc := expfmt.NewEncoder(&buf, format)
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return nil, "", err
		}
	}
	return buf.Bytes(), string(format), nil
}
