package elliptic

import "math"

// Convergence thresholds.
const (
	agmMaxIter   = 50
	agmTolerance = 1e-15

	// machEp is the double precision unit roundoff, 2^-53.
	machEp = 1.1102230246251565e-16

	nearZeroM = 1e-9
	nearOneM  = 0.9999999999

	// maxDescent bounds the AGM descent in Ellipj.
	maxDescent = 8
)

// Op names used in errors, diagnostics and metric labels.
const (
	OpAGM       = "agm"
	OpEllipticK = "ellipticK"
	OpEllipj    = "ellipj"
	OpJacobiSn  = "jacobiSn"
)

// Jacobi holds the Jacobi elliptic functions of one argument.
type Jacobi struct {
	Sn float64 `json:"sn"` // sine amplitude
	Cn float64 `json:"cn"` // cosine amplitude
	Dn float64 `json:"dn"` // delta amplitude
	Ph float64 `json:"ph"` // amplitude angle
}

// Residual returns the larger of |sn²+cn²-1| and |dn²-(1-m·sn²)|.
func (j Jacobi) Residual(m float64) float64 {
	r1 := math.Abs(j.Sn*j.Sn + j.Cn*j.Cn - 1)
	r2 := math.Abs(j.Dn*j.Dn - (1 - m*j.Sn*j.Sn))
	return math.Max(r1, r2)
}
