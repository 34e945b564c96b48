// Package metrics records Fibonacci computations with Prometheus collectors.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Outcome labels.
const (
	OutcomeValue        = "value"
	OutcomeInvalidInput = "invalid_input"
)

// Metrics holds the collectors for one application instance. Each instance
// owns its registry, so tests can create as many as they like.
type Metrics struct {
	registry     *prometheus.Registry
	computations *prometheus.CounterVec
	duration     prometheus.Histogram
	lastIndex    prometheus.Gauge
}

// NewMetrics creates the collectors and registers them, together with the
// Go runtime and process collectors, on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		computations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fibiter",
			Name:      "computations_total",
			Help:      "Number of Fibonacci computations by outcome.",
		}, []string{"outcome"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "fibiter",
			Name:      "computation_duration_seconds",
			Help:      "Wall time spent computing a Fibonacci term.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 10, 8),
		}),
		lastIndex: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "fibiter",
			Name:      "last_index",
			Help:      "Index of the most recent computation.",
		}),
	}
	m.registry.MustRegister(
		m.computations,
		m.duration,
		m.lastIndex,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Outcome returns the outcome label for a computation.
func Outcome(valid bool) string {
	if valid {
		return OutcomeValue
	}
	return OutcomeInvalidInput
}

// Registry returns the registry holding every collector.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// WriteToTextfile gathers the registry and writes it to path in the text
// exposition format, for node_exporter's textfile collector. The file is
// replaced atomically.
func (m *Metrics) WriteToTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.Registry())
}

// ObserveComputation records one computation of index n under the given
// outcome label.
func (m *Metrics) ObserveComputation(n int64, outcome string, elapsed time.Duration) {
	m.computations.WithLabelValues(outcome).Inc()
	m.duration.Observe(elapsed.Seconds())
	m.lastIndex.Set(float64(n))
}

// Computations returns the counter for the given outcome.
func (m *Metrics) Computations(outcome string) prometheus.Counter {
	return m.computations.WithLabelValues(outcome)
}
