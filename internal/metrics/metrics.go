// Package metrics counts catalog operations on a private Prometheus registry.
// A CLI process is short-lived, so the registry is written out in the
// node_exporter textfile format rather than served.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Outcome label values.
const (
	OutcomeOK       = "ok"
	OutcomeRejected = "rejected"
)

// Metrics holds the catalog collectors and the registry they live on.
type Metrics struct {
	Registry     *prometheus.Registry
	Operations   *prometheus.CounterVec
	SaveFailures prometheus.Counter
	LoadFailures prometheus.Counter
}

// New creates and registers the catalog collectors.
func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		Operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "library",
			Name:      "operations_total",
			Help:      "Catalog operations by name and outcome.",
		}, []string{"operation", "outcome"}),
		SaveFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "library",
			Name:      "save_failures_total",
			Help:      "Saves that failed and left the in-memory state as the only copy.",
		}),
		LoadFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "library",
			Name:      "load_failures_total",
			Help:      "Loads that failed and started the catalog empty.",
		}),
	}
	m.Registry.MustRegister(m.Operations, m.SaveFailures, m.LoadFailures)
	return m
}

// Observe counts one operation. A nil receiver is a no-op so callers need
// not check whether metrics are enabled.
func (m *Metrics) Observe(operation string, err error) {
	if m == nil {
		return
	}
	outcome := OutcomeOK
	if err != nil {
		outcome = OutcomeRejected
	}
	m.Operations.WithLabelValues(operation, outcome).Inc()
}

// SaveFailed counts one failed save.
func (m *Metrics) SaveFailed() {
	if m == nil {
		return
	}
	m.SaveFailures.Inc()
}

// LoadFailed counts one failed load.
func (m *Metrics) LoadFailed() {
	if m == nil {
		return
	}
	m.LoadFailures.Inc()
}

// WriteTextfile writes the registry to path in the Prometheus text format.
// The write goes through a temp file and a rename.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.Registry)
}
