package elliptic

import (
	"errors"
	"time"
)

// Evaluator runs the package functions and emits diagnostics for them.
// It holds no per-call state and is safe for concurrent use.
type Evaluator struct {
	reporter Reporter
	observer Observer
	now      func() time.Time
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithReporter sets the diagnostic sink.
func WithReporter(r Reporter) Option {
	return func(e *Evaluator) {
		if r != nil {
			e.reporter = r
		}
	}
}

// WithObserver sets the per-call observer.
func WithObserver(o Observer) Option {
	return func(e *Evaluator) {
		if o != nil {
			e.observer = o
		}
	}
}

// WithClock overrides the time source used for call durations.
func WithClock(now func() time.Time) Option {
	return func(e *Evaluator) {
		if now != nil {
			e.now = now
		}
	}
}

// NewEvaluator creates an evaluator. Without options diagnostics are dropped.
func NewEvaluator(opts ...Option) *Evaluator {
	e := &Evaluator{
		reporter: nopReporter{},
		observer: nopObserver{},
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// AGM is AGM with diagnostics.
func (e *Evaluator) AGM(a0, g0 float64) (float64, error) {
	start := e.now()
	v, err := AGM(a0, g0)
	e.finish(OpAGM, start, err, map[string]float64{"a0": a0, "g0": g0})
	return v, err
}

// EllipticK is EllipticK with diagnostics.
func (e *Evaluator) EllipticK(m float64) (float64, error) {
	start := e.now()
	v, err := EllipticK(m)
	e.finish(OpEllipticK, start, err, map[string]float64{"m": m})
	return v, err
}

// Ellipj is Ellipj with diagnostics.
func (e *Evaluator) Ellipj(u, m float64) (Jacobi, error) {
	start := e.now()
	j, err := Ellipj(u, m)
	e.finish(OpEllipj, start, err, map[string]float64{"u": u, "m": m})
	return j, err
}

// JacobiSn is JacobiSn with diagnostics.
func (e *Evaluator) JacobiSn(kOrU, t, period float64) (float64, error) {
	start := e.now()
	v, err := JacobiSn(kOrU, t, period)
	e.finish(OpJacobiSn, start, err, map[string]float64{"k": kOrU, "time": t, "period": period})
	return v, err
}

func (e *Evaluator) finish(op string, start time.Time, err error, args map[string]float64) {
	if err != nil {
		e.reporter.Report(diagnose(op, err, args))
	}
	e.observer.Observe(Evaluation{Op: op, Duration: e.now().Sub(start), Err: err})
}

func diagnose(op string, err error, args map[string]float64) Diagnostic {
	d := Diagnostic{
		Op:       op,
		Severity: SeverityError,
		Message:  err.Error(),
		Fields:   args,
	}

	var ee *Error
	if errors.As(err, &ee) {
		d.Kind = ee.Kind
		if !ee.Fatal() {
			d.Severity = SeverityWarning
			d.Message = ee.Op + " hit iteration limit, probably did not converge"
		}
	}
	return d
}
