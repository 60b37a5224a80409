package elliptic

import "math"

// Ellipj evaluates the Jacobi elliptic functions sn, cn, dn and the amplitude
// ph of argument u and parameter m, 0 <= m <= 1.
//
// Three regimes are used:
//   - m < 1e-9: second-order trigonometric expansion around m = 0
//   - m >= 1 - 1e-10: first-order hyperbolic expansion around m = 1
//   - otherwise: descending AGM (Landen) transformation followed by a
//     backward recurrence for the amplitude
//
// m outside [0, 1] (or NaN) returns the zero Jacobi and a KindDomain error.
// A descent that needs more than 8 steps returns the zero Jacobi and a
// KindOverflow error.
func Ellipj(u, m float64) (Jacobi, error) {
	if math.IsNaN(m) || m < 0 || m > 1 {
		return Jacobi{}, newError(OpEllipj, KindDomain, m)
	}

	if m < nearZeroM {
		return ellipjNearZero(u, m), nil
	}
	if m >= nearOneM {
		return ellipjNearOne(u, m), nil
	}
	return ellipjDescent(u, m, maxDescent)
}

// DLMF 22.10.i
func ellipjNearZero(u, m float64) Jacobi {
	t := math.Sin(u)
	b := math.Cos(u)
	ai := 0.25 * m * (u - t*b)
	return Jacobi{
		Sn: t - ai*b,
		Cn: b + ai*t,
		Dn: 1 - 0.5*m*t*t,
		Ph: u - ai,
	}
}

// DLMF 22.10.ii
func ellipjNearOne(u, m float64) Jacobi {
	ai := 0.25 * (1 - m)
	b := math.Cosh(u)
	t := math.Tanh(u)
	phi := 1 / b
	twon := b * math.Sinh(u)

	j := Jacobi{
		Sn: t + ai*(twon-u)/(b*b),
		Ph: 2*math.Atan(math.Exp(u)) - math.Pi/2 + ai*(twon-u)/b,
	}

	// cn and dn carry an extra tanh·sech factor.
	ai *= t * phi
	j.Cn = phi - ai*(twon-u)
	j.Dn = phi + ai*(twon+u)
	return j
}

// ellipjDescent requires maxSteps <= maxDescent.
func ellipjDescent(u, m float64, maxSteps int) (Jacobi, error) {
	var a, c [maxDescent + 1]float64
	a[0] = 1
	c[0] = math.Sqrt(m)
	b := math.Sqrt(1 - m)
	twon := 1.0

	i := 0
	for math.Abs(c[i]/a[i]) > machEp {
		if i >= maxSteps {
			return Jacobi{}, newError(OpEllipj, KindOverflow, m)
		}
		ai := a[i]
		i++
		c[i] = (ai - b) / 2
		t := math.Sqrt(ai * b)
		a[i] = (ai + b) / 2
		b = t
		twon *= 2
	}

	// Backward recurrence consumes c[i], a[i] for i, i-1, ..., 1.
	phi := twon * a[i] * u
	for ; i > 0; i-- {
		t := c[i] * math.Sin(phi) / a[i]
		phi = (math.Asin(t) + phi) / 2
	}

	sn := math.Sin(phi)
	return Jacobi{
		Sn: sn,
		Cn: math.Cos(phi),
		Dn: math.Sqrt(1 - m*sn*sn),
		Ph: phi,
	}, nil
}
