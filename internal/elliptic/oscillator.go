package elliptic

import "math"

// JacobiSn samples a periodic oscillator built from Jacobi elliptic functions.
//
// kOrU selects the shape:
//   - 0 <= kOrU < 1: sn(4K·time/period | sqrt(kOrU)), starting at 0
//   - -1 < kOrU < 0: cn(4K·time/period - K | sqrt(|kOrU|))
//
// where K = EllipticK(sqrt(|kOrU|)). The output repeats every period.
// kOrU outside (-1, 1) returns a KindRange error; a zero period returns a
// KindDomain error. A convergence warning from EllipticK is passed through
// with the value.
//
// See doi:10.1016/j.jfluidstructs.2019.01.020 for the oscillator model.
func JacobiSn(kOrU, time, period float64) (float64, error) {
	if !(kOrU > -1 && kOrU < 1) {
		return 0, newError(OpJacobiSn, KindRange, kOrU)
	}
	if period == 0 {
		return 0, newError(OpJacobiSn, KindDomain, period)
	}

	m := math.Sqrt(math.Abs(kOrU))
	k, kerr := EllipticK(m)
	u := 4 * k * time / period

	if kOrU >= 0 {
		j, err := Ellipj(u, m)
		if err != nil {
			return 0, err
		}
		return j.Sn, kerr
	}

	j, err := Ellipj(u-k, m)
	if err != nil {
		return 0, err
	}
	return j.Cn, kerr
}
