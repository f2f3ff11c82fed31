// Package metrics exposes record keeper statistics to Prometheus.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels
const (
	OutcomeSuccess     = "success"
	OutcomeDuplicate   = "duplicate"
	OutcomeNotFound    = "not_found"
	OutcomeInvalid     = "invalid"
	OutcomeReference   = "reference"
	OutcomePersistence = "persistence"
	OutcomeError       = "error"
)

// Metrics tracks operation counts, persist latency and record counts.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry   *prometheus.Registry
	operations *prometheus.CounterVec
	persist    *prometheus.HistogramVec
	records    *prometheus.GaugeVec
}

// New creates a Metrics instance on a private registry
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fete",
			Name:      "operations_total",
			Help:      "Record operations by kind, operation and outcome.",
		}, []string{"kind", "op", "outcome"}),
		persist: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "fete",
			Name:      "persist_duration_seconds",
			Help:      "Time spent writing a kind's snapshot, retries included.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12),
		}, []string{"kind"}),
		records: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "fete",
			Name:      "records",
			Help:      "Records currently held per kind.",
		}, []string{"kind"}),
	}
	m.registry.MustRegister(
		m.operations,
		m.persist,
		m.records,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// IncOperation counts one finished operation
func (m *Metrics) IncOperation(kind, op, outcome string) {
	if m == nil {
		return
	}
	m.operations.WithLabelValues(kind, op, outcome).Inc()
}

// ObservePersist records how long a snapshot save took
func (m *Metrics) ObservePersist(kind string, d time.Duration, err error) {
	if m == nil {
		return
	}
	m.persist.WithLabelValues(kind).Observe(d.Seconds())
	if err != nil {
		m.operations.WithLabelValues(kind, "persist", OutcomePersistence).Inc()
	}
}

// SetRecords sets the record gauge for a kind
func (m *Metrics) SetRecords(kind string, n int) {
	if m == nil {
		return
	}
	m.records.WithLabelValues(kind).Set(float64(n))
}

// Registry returns the underlying registry, mostly for tests
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
