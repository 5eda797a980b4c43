package metrics

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics represents the collection of all Prometheus metrics.
type Metrics struct {
	registry *prometheus.Registry

	DiagramsImported   prometheus.Counter
	TestCasesGenerated *prometheus.CounterVec
	ScoresComputed     prometheus.Counter
	ValidationIssues   *prometheus.CounterVec
}

// NewMetrics creates and registers all metrics on a private registry so
// repeated construction (e.g. in tests) never collides.
func NewMetrics() *Metrics {
	m := &Metrics{registry: prometheus.NewRegistry()}

	m.DiagramsImported = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "autocase_diagrams_imported_total",
			Help: "Total number of state diagram versions imported",
		},
	)

	m.TestCasesGenerated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "autocase_test_cases_generated_total",
			Help: "Total number of draft test cases generated from diffs",
		},
		[]string{"change_type"},
	)

	m.ScoresComputed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "autocase_scores_computed_total",
			Help: "Total number of score computations",
		},
	)

	m.ValidationIssues = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "autocase_validation_issues_total",
			Help: "Total number of diagram validation issues found",
		},
		[]string{"level"},
	)

	m.registry.MustRegister(
		m.DiagramsImported,
		m.TestCasesGenerated,
		m.ScoresComputed,
		m.ValidationIssues,
	)
	return m
}

// Handler returns the HTTP handler exposing the metrics.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Serve exposes /metrics on the given port; it blocks until the listener
// fails, so callers run it in a goroutine.
func (m *Metrics) Serve(port int) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	return http.ListenAndServe(fmt.Sprintf(":%d", port), mux)
}
