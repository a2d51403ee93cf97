// Package metrics provides Prometheus metrics for the signal scanner.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Backend call outcomes.
const (
	OutcomeHit   = "hit"
	OutcomeEmpty = "empty"
	OutcomeError = "error"
)

var (
	// BackendRequestsTotal counts backend searches by outcome.
	BackendRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "signalscanner",
			Name:      "backend_requests_total",
			Help:      "Total number of backend search calls",
		},
		[]string{"backend", "outcome"},
	)

	// BackendRequestDuration measures backend search duration.
	BackendRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "signalscanner",
			Name:      "backend_request_duration_seconds",
			Help:      "Duration of backend search calls in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"backend"},
	)

	// PipelineRunsTotal counts pipeline runs by status.
	PipelineRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "signalscanner",
			Name:      "pipeline_runs_total",
			Help:      "Total number of pipeline runs",
		},
		[]string{"status"},
	)

	// SignalsPerRun observes how many signals a run produced.
	SignalsPerRun = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "signalscanner",
			Name:      "signals_per_run",
			Help:      "Distribution of classified signals per run",
			Buckets:   []float64{0, 1, 2, 5, 10, 20, 40},
		},
	)
)

// RecordBackend records one backend search call.
func RecordBackend(backend, outcome string, duration float64) {
	BackendRequestsTotal.WithLabelValues(backend, outcome).Inc()
	BackendRequestDuration.WithLabelValues(backend).Observe(duration)
}

// RecordRun records a finished pipeline run.
func RecordRun(status string, signals int) {
	PipelineRunsTotal.WithLabelValues(status).Inc()
	SignalsPerRun.Observe(float64(signals))
}
