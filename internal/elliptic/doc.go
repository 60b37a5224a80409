// Package elliptic computes elliptic integrals and Jacobi elliptic functions.
//
// The package is organized leaves first:
//   - AGM: arithmetic-geometric mean
//   - EllipticK: complete elliptic integral of the first kind, via AGM
//   - Ellipj: Jacobi elliptic functions sn, cn, dn and the amplitude ph
//   - JacobiSn: one sample of a periodic oscillator built from sn/cn
//
// All four are pure functions of their arguments. Failures are reported as
// *Error values carrying a Kind (convergence, domain, overflow, range) and
// unwrap to the package sentinels, so callers branch with errors.Is:
//
//	j, err := elliptic.Ellipj(u, m)
//	if errors.Is(err, elliptic.ErrDomain) {
//	    // m outside [0, 1]
//	}
//
// A convergence error from AGM is non-fatal: the returned value is the last
// iterate and remains usable. Use (*Error).Fatal or IsFatal to tell them apart.
//
// Diagnostics:
//
// The pure functions never log. Evaluator wraps them and forwards every
// failure to a Reporter (for example a zap-backed LogReporter) and every call
// to an Observer (for example Prometheus metrics):
//
//	ev := elliptic.NewEvaluator(
//	    elliptic.WithReporter(elliptic.NewLogReporter(logger)),
//	)
//	x, err := ev.JacobiSn(0.5, t, period)
package elliptic
