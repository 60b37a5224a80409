// Package elliptic exposes the elliptic function core as service tools.
//
// Tools:
//   - elliptic.agm: arithmetic-geometric mean (a0, g0)
//   - elliptic.k: complete elliptic integral of the first kind (m)
//   - elliptic.ellipj: Jacobi sn, cn, dn, ph (u, m)
//   - elliptic.jacobi_sn: Jacobi oscillator sample (k, time, period)
//
// Invalid input never produces a Go error: it yields a Result with
// Success false and an Error message, like the other providers. Only a
// cancelled context is returned as an error.
//
// Example Usage:
//
//	p := elliptic.NewProvider(core.NewEvaluator())
//	result, err := p.Execute(ctx, "elliptic.ellipj", map[string]interface{}{
//	    "u": 0.5, "m": 0.3,
//	}, nil)
package elliptic
