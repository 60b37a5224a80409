package elliptic

import (
	"time"

	"go.uber.org/zap"
)

// Severity of a diagnostic.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

// String returns "warning" or "error".
func (s Severity) String() string {
	if s == SeverityWarning {
		return "warning"
	}
	return "error"
}

// Diagnostic describes one failed or degraded evaluation.
type Diagnostic struct {
	Op       string
	Kind     Kind
	Severity Severity
	Message  string
	Fields   map[string]float64 // call arguments by name
}

// Reporter receives diagnostics emitted by an Evaluator.
type Reporter interface {
	Report(d Diagnostic)
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(d Diagnostic)

// Report calls f(d).
func (f ReporterFunc) Report(d Diagnostic) { f(d) }

// Evaluation is one completed call through an Evaluator.
type Evaluation struct {
	Op       string
	Duration time.Duration
	Err      error
}

// Observer is notified once per Evaluator call.
type Observer interface {
	Observe(ev Evaluation)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(ev Evaluation)

// Observe calls f(ev).
func (f ObserverFunc) Observe(ev Evaluation) { f(ev) }

type multiReporter []Reporter

func (m multiReporter) Report(d Diagnostic) {
	for _, r := range m {
		r.Report(d)
	}
}

// MultiReporter fans a diagnostic out to every non-nil reporter.
func MultiReporter(reporters ...Reporter) Reporter {
	out := make(multiReporter, 0, len(reporters))
	for _, r := range reporters {
		if r != nil {
			out = append(out, r)
		}
	}
	return out
}

// LogReporter writes diagnostics to a zap logger.
type LogReporter struct {
	logger *zap.Logger
}

// NewLogReporter returns a reporter logging warnings at Warn and errors at Error.
// A nil logger is replaced by a no-op logger.
func NewLogReporter(logger *zap.Logger) *LogReporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogReporter{logger: logger}
}

// Report implements Reporter.
func (r *LogReporter) Report(d Diagnostic) {
	fields := make([]zap.Field, 0, len(d.Fields)+2)
	fields = append(fields, zap.String("op", d.Op), zap.String("kind", d.Kind.String()))
	for name, v := range d.Fields {
		fields = append(fields, zap.Float64(name, v))
	}

	if d.Severity == SeverityWarning {
		r.logger.Warn(d.Message, fields...)
		return
	}
	r.logger.Error(d.Message, fields...)
}

type nopReporter struct{}

func (nopReporter) Report(Diagnostic) {}

type nopObserver struct{}

func (nopObserver) Observe(Evaluation) {}
