package lottie

import "math"

// Polynomial root solvers used to invert Bézier coordinate functions.
//
// The cubic solver follows Jim Blinn's "How to Solve a Cubic Equation" as
// described at https://momentsingraphics.de/CubicRoots.html.

// solveQuadratic returns the real roots of ax^2 + bx + c = 0 in ascending
// order. A vanishing a degrades to the linear equation, and all-zero
// coefficients yield the single root 0.
func solveQuadratic(a, b, c float64) []float64 {
	sc0 := c / a
	sc1 := b / a
	if !isFinite(sc0) || !isFinite(sc1) {
		root := -c / b
		if isFinite(root) {
			return []float64{root}
		}
		if b == 0 && c == 0 {
			return []float64{0}
		}
		return nil
	}

	disc := sc1*sc1 - 4*sc0
	var r1 float64
	switch {
	case !isFinite(disc):
		// sc1 dominates; x^2 + sc1*x ~ 0.
		r1 = -sc1
	case disc < 0:
		return nil
	case disc == 0:
		return []float64{-0.5 * sc1}
	default:
		// Avoid cancellation by picking the root with the larger magnitude
		// first and deriving the other from the product of roots.
		r1 = -0.5 * (sc1 + math.Copysign(math.Sqrt(disc), sc1))
	}

	r2 := sc0 / r1
	if !isFinite(r2) {
		return []float64{r1}
	}
	if r1 > r2 {
		r1, r2 = r2, r1
	}
	return []float64{r1, r2}
}

// solveCubic returns the real roots of ax^3 + bx^2 + cx + d = 0, unsorted.
// A vanishing a degrades to the quadratic.
func solveCubic(a, b, c, d float64) []float64 {
	const oneThird = 1.0 / 3.0
	inv := 1.0 / a
	c2 := b * (oneThird * inv)
	c1 := c * (oneThird * inv)
	c0 := d * inv
	if !isFinite(c2) || !isFinite(c1) || !isFinite(c0) {
		return solveQuadratic(b, c, d)
	}

	d0 := -c2*c2 + c1
	d1 := -c1*c2 + c0
	d2 := c2*c0 - c1*c1
	disc := 4*d0*d2 - d1*d1
	de := -2*c2*d0 + d1

	switch {
	case disc < 0:
		sq := math.Sqrt(-0.25 * disc)
		r := -0.5 * de
		return []float64{math.Cbrt(r+sq) + math.Cbrt(r-sq) - c2}
	case disc == 0:
		t := math.Copysign(math.Sqrt(-d0), de)
		return []float64{t - c2, -2*t - c2}
	}

	th := math.Atan2(math.Sqrt(disc), -de) * oneThird
	sin, cos := math.Sincos(th)
	ss3 := sin * math.Sqrt(3)
	t := 2 * math.Sqrt(-d0)
	return []float64{
		t*cos - c2,
		t*0.5*(-cos+ss3) - c2,
		t*0.5*(-cos-ss3) - c2,
	}
}

// rootsInUnitInterval keeps the roots that lie in [0, 1], snapping values
// within 1e-12 of either end onto it.
func rootsInUnitInterval(roots []float64) []float64 {
	const eps = 1e-12
	var out []float64
	for _, r := range roots {
		if r < -eps || r > 1+eps {
			continue
		}
		out = append(out, math.Min(math.Max(r, 0), 1))
	}
	return out
}
