package elliptic

import "math"

// AGM returns the arithmetic-geometric mean of two non-negative numbers.
//
// The iteration stops once |a-g| <= 1e-15 or after 50 refinements. In the
// latter case the last iterate is returned together with a non-fatal
// *Error of KindConvergence. Negative arguments are not validated.
func AGM(a0, g0 float64) (float64, error) {
	return agm(a0, g0, agmMaxIter)
}

func agm(a0, g0 float64, maxIter int) (float64, error) {
	an := (a0 + g0) / 2
	gn := math.Sqrt(a0 * g0)

	iter := 0
	for ; iter < maxIter && math.Abs(an-gn) > agmTolerance; iter++ {
		an, gn = 0.5*(an+gn), math.Sqrt(an*gn)
	}
	if iter == maxIter {
		return an, newError(OpAGM, KindConvergence, an)
	}
	return an, nil
}
