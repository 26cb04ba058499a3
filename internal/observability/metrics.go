// Package observability holds the dashboard's Prometheus metrics and
// OpenTelemetry tracer setup.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "dashboard"

// Outcome label values for ChartRequestsTotal.
const (
	OutcomeOK      = "ok"
	OutcomeWarning = "warning"
	OutcomeError   = "error"
)

// Metrics groups the dashboard collectors. Construct it once per registry.
type Metrics struct {
	// ChartRequestsTotal counts figure builds.
	// Labels: chart (output id), format (json, png, ws), outcome (ok, warning, error)
	ChartRequestsTotal *prometheus.CounterVec

	// ChartBuildSeconds measures time spent filtering and rendering a figure.
	// Labels: chart, format
	ChartBuildSeconds *prometheus.HistogramVec

	// ActiveSessions tracks open WebSocket sessions.
	ActiveSessions prometheus.Gauge

	// DatasetRecords is the number of launch records loaded at startup.
	DatasetRecords prometheus.Gauge
}

// NewMetrics registers the collectors with reg. Passing a fresh
// prometheus.NewRegistry() keeps tests independent of the default registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		ChartRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "chart_requests_total",
				Help:      "Total number of chart figures built by chart, format and outcome",
			},
			[]string{"chart", "format", "outcome"},
		),
		ChartBuildSeconds: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Name:      "chart_build_seconds",
				Help:      "Time spent building a chart figure",
				Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
			},
			[]string{"chart", "format"},
		),
		ActiveSessions: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: metricsNamespace,
				Name:      "active_sessions",
				Help:      "Number of open dashboard WebSocket sessions",
			},
		),
		DatasetRecords: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: metricsNamespace,
				Name:      "dataset_records",
				Help:      "Number of launch records loaded at startup",
			},
		),
	}
}

// ObserveChart records one figure build.
func (m *Metrics) ObserveChart(chart, format, outcome string, seconds float64) {
	m.ChartRequestsTotal.WithLabelValues(chart, format, outcome).Inc()
	m.ChartBuildSeconds.WithLabelValues(chart, format).Observe(seconds)
}
