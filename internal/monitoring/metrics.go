package monitoring

import (
	"sync"

	"github.com/GriffinCanCode/elliptic/internal/elliptic"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome label values.
const (
	OutcomeSuccess = "success"
	OutcomeWarning = "warning"
	OutcomeFailure = "failure"
)

// Metrics holds all Prometheus metrics for elliptic evaluations.
// It implements elliptic.Observer and elliptic.Reporter.
type Metrics struct {
	Evaluations        *prometheus.CounterVec
	EvaluationDuration *prometheus.HistogramVec
	Diagnostics        *prometheus.CounterVec

	// Snapshot for summaries - track current values
	snapshot Snapshot

	mu sync.RWMutex
}

// Snapshot holds current totals for log summaries.
type Snapshot struct {
	Evaluations int64
	Warnings    int64
	Failures    int64
	Diagnostics int64
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg creates unregistered collectors.
func NewMetrics(reg prometheus.Registerer, namespace string) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		Evaluations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "evaluations_total",
				Help:      "Total number of function evaluations",
			},
			[]string{"op", "outcome"},
		),
		EvaluationDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "evaluation_duration_seconds",
				Help:      "Function evaluation duration in seconds",
				Buckets:   []float64{1e-7, 5e-7, 1e-6, 5e-6, 1e-5, 5e-5, 1e-4, 1e-3},
			},
			[]string{"op"},
		),
		Diagnostics: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "diagnostics_total",
				Help:      "Total number of diagnostics emitted",
			},
			[]string{"op", "kind", "severity"},
		),
	}
}

// Observe implements elliptic.Observer.
func (m *Metrics) Observe(ev elliptic.Evaluation) {
	outcome := outcomeOf(ev.Err)
	m.Evaluations.WithLabelValues(ev.Op, outcome).Inc()
	m.EvaluationDuration.WithLabelValues(ev.Op).Observe(ev.Duration.Seconds())

	m.mu.Lock()
	m.snapshot.Evaluations++
	switch outcome {
	case OutcomeWarning:
		m.snapshot.Warnings++
	case OutcomeFailure:
		m.snapshot.Failures++
	}
	m.mu.Unlock()
}

// Report implements elliptic.Reporter.
func (m *Metrics) Report(d elliptic.Diagnostic) {
	m.Diagnostics.WithLabelValues(d.Op, d.Kind.String(), d.Severity.String()).Inc()

	m.mu.Lock()
	m.snapshot.Diagnostics++
	m.mu.Unlock()
}

// Snapshot returns a copy of the current totals.
func (m *Metrics) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.snapshot
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return OutcomeSuccess
	case elliptic.IsFatal(err):
		return OutcomeFailure
	default:
		return OutcomeWarning
	}
}
