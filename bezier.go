package lottie

import (
	"math"
	"sort"
)

// CubicBez represents a cubic Bézier curve with control points P0, P1, P2, P3.
// P0 is the start point, P1 and P2 are control points, P3 is the end point.
type CubicBez struct {
	P0, P1, P2, P3 Vector2D
}

// Eval evaluates the curve at parameter t in Bernstein form:
//
//	B(t) = (1-t)^3 P0 + 3(1-t)^2 t P1 + 3(1-t) t^2 P2 + t^3 P3
func (c CubicBez) Eval(t float64) Vector2D {
	return Vector2D{
		X: bernstein(t, c.P0.X, c.P1.X, c.P2.X, c.P3.X),
		Y: bernstein(t, c.P0.Y, c.P1.Y, c.P2.Y, c.P3.Y),
	}
}

// bernstein evaluates one coordinate of a cubic Bézier.
func bernstein(t, p0, p1, p2, p3 float64) float64 {
	mt := 1 - t
	return mt*mt*mt*p0 + 3*mt*mt*t*p1 + 3*mt*t*t*p2 + t*t*t*p3
}

// Subdivide splits the curve at t using de Casteljau's construction.
func (c CubicBez) Subdivide(t float64) (CubicBez, CubicBez) {
	p01 := c.P0.Interpolate(c.P1, t)
	p12 := c.P1.Interpolate(c.P2, t)
	p23 := c.P2.Interpolate(c.P3, t)
	p012 := p01.Interpolate(p12, t)
	p123 := p12.Interpolate(p23, t)
	mid := p012.Interpolate(p123, t)

	return CubicBez{P0: c.P0, P1: p01, P2: p012, P3: mid},
		CubicBez{P0: mid, P1: p123, P2: p23, P3: c.P3}
}

// Extrema returns the parameters in [0, 1] where either coordinate has a
// zero derivative, in ascending order.
func (c CubicBez) Extrema() []float64 {
	// B'(t)/3 = (1-t)^2 d0 + 2(1-t)t d1 + t^2 d2, expanded per axis into
	// (d0 - 2d1 + d2) t^2 + 2(d1 - d0) t + d0.
	d0 := c.P1.Sub(c.P0)
	d1 := c.P2.Sub(c.P1)
	d2 := c.P3.Sub(c.P2)

	result := make([]float64, 0, 4)
	result = append(result, rootsInUnitInterval(solveQuadratic(d0.X-2*d1.X+d2.X, 2*(d1.X-d0.X), d0.X))...)
	result = append(result, rootsInUnitInterval(solveQuadratic(d0.Y-2*d1.Y+d2.Y, 2*(d1.Y-d0.Y), d0.Y))...)
	sort.Float64s(result)
	return result
}

// BoundingBox returns the tight axis-aligned bounding box of the curve.
func (c CubicBez) BoundingBox() Rect {
	minX, maxX := math.Min(c.P0.X, c.P3.X), math.Max(c.P0.X, c.P3.X)
	minY, maxY := math.Min(c.P0.Y, c.P3.Y), math.Max(c.P0.Y, c.P3.Y)
	for _, t := range c.Extrema() {
		p := c.Eval(t)
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// CubicBezierInterpolate treats the cubic P0..P3 as a function y(x) and
// returns y at x = value. It solves Bx(t) = value for t in [0, 1] and
// evaluates By(t). This is the primitive behind keyframe easing curves,
// where x is time and y is progress.
//
// value equal to P0.X or P3.X maps to t=0 or t=1 without solving. ok is
// false when no parameter in [0, 1] reaches value; the curve then does not
// span value horizontally.
func CubicBezierInterpolate(value float64, p0, p1, p2, p3 Vector2D) (y float64, ok bool) {
	var t float64
	switch value {
	case p0.X:
		t = 0
	case p3.X:
		t = 1
	default:
		a := -p0.X + 3*p1.X - 3*p2.X + p3.X
		b := 3*p0.X - 6*p1.X + 3*p2.X
		c := -3*p0.X + 3*p1.X
		d := p0.X - value
		roots := rootsInUnitInterval(solveCubic(a, b, c, d))
		if len(roots) == 0 {
			return 0, false
		}
		t = roots[0]
		for _, r := range roots[1:] {
			t = math.Min(t, r)
		}
	}
	return bernstein(t, p0.Y, p1.Y, p2.Y, p3.Y), true
}
