package elliptic

import "math"

// EllipticK returns the complete elliptic integral of the first kind,
//
//	K(m) = ∫₀^{π/2} dθ / sqrt(1 - m·sin²θ),
//
// for parameter m = k² < 1, using K(m) = (π/2) / AGM(1, sqrt(1-m))
// (DLMF 19.8.5).
//
// m is not validated: m > 1 yields NaN, and m == 1 returns a huge finite
// value instead of the logarithmic singularity. The error is non-nil only when
// AGM hit its iteration cap, in which case the value is still returned.
func EllipticK(m float64) (float64, error) {
	kprime := math.Sqrt(1 - m)
	mean, err := AGM(1, kprime)
	return 0.5 * math.Pi / mean, err
}
