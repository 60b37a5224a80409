/*
Package monitoring provides Prometheus metrics for elliptic evaluations.

# Overview

Metrics implements both elliptic.Observer (one observation per call) and
elliptic.Reporter (one count per diagnostic), so it plugs straight into an
Evaluator next to a log reporter.

# Metrics

  - <ns>_evaluations_total{op, outcome}: outcome is success, warning or failure
  - <ns>_evaluation_duration_seconds{op}
  - <ns>_diagnostics_total{op, kind, severity}

# Usage

	reg := prometheus.NewRegistry()
	metrics := monitoring.NewMetrics(reg, "elliptic")

	ev := elliptic.NewEvaluator(
		elliptic.WithObserver(metrics),
		elliptic.WithReporter(elliptic.MultiReporter(logReporter, metrics)),
	)
*/
package monitoring
