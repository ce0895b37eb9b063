package bench

import (
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/Henok-et/navigation-algorithm-for-a-city/search"
)

const namespace = "navigator"

// Metrics records search runs into a private Prometheus registry.
type Metrics struct {
	registry *prometheus.Registry
	duration *prometheus.HistogramVec
	cost     *prometheus.GaugeVec
	failures *prometheus.CounterVec
}

// NewMetrics registers the search collectors on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "duration_seconds",
			Help:      "Wall-clock time of one search run.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 10),
		}, []string{"algorithm"}),
		cost: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "path_cost",
			Help:      "Cost of the last path found.",
		}, []string{"algorithm"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "failures_total",
			Help:      "Runs that ended without a path.",
		}, []string{"algorithm"}),
	}
	m.registry.MustRegister(m.duration, m.cost, m.failures)

	return m
}

// Registry exposes the underlying registry, e.g. for promhttp.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Observe records one run.
func (m *Metrics) Observe(alg search.Algorithm, elapsed time.Duration, res *search.Result) {
	name := alg.String()
	m.duration.WithLabelValues(name).Observe(elapsed.Seconds())
	failures := m.failures.WithLabelValues(name)
	if res.Found() {
		m.cost.WithLabelValues(name).Set(res.Cost)
		return
	}
	failures.Inc()
}

// WriteText dumps every collected family in the Prometheus text format.
func (m *Metrics) WriteText(w io.Writer) error {
	families, err := m.registry.Gather()
	if err != nil {
		return fmt.Errorf("bench: gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err = expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("bench: write metrics: %w", err)
		}
	}

	return nil
}
