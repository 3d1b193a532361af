package lottie

import (
	"log/slog"
	"math"
	"sort"

	"golang.org/x/image/math/f64"
)

// colinearEpsilon is the area below which three points count as colinear.
const colinearEpsilon = 0.05

// Vector2D is a two component value: a position, a size, a scale or a
// tangent handle offset.
type Vector2D struct {
	X, Y float64
}

// V2 is a convenience function to create a Vector2D.
func V2(x, y float64) Vector2D {
	return Vector2D{X: x, Y: y}
}

// Zero returns the zero vector.
func Zero() Vector2D {
	return Vector2D{}
}

// Add returns the component-wise sum.
func (v Vector2D) Add(w Vector2D) Vector2D {
	return Vector2D{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the component-wise difference.
func (v Vector2D) Sub(w Vector2D) Vector2D {
	return Vector2D{X: v.X - w.X, Y: v.Y - w.Y}
}

// Mul returns the vector scaled by a scalar.
func (v Vector2D) Mul(s float64) Vector2D {
	return Vector2D{X: v.X * s, Y: v.Y * s}
}

// Equal reports whether both components are exactly equal.
func (v Vector2D) Equal(w Vector2D) bool {
	return v.X == w.X && v.Y == w.Y
}

// IsZero returns true if both components are zero.
func (v Vector2D) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// DistanceTo returns the Euclidean distance between two points.
func (v Vector2D) DistanceTo(to Vector2D) float64 {
	dx := to.X - v.X
	dy := to.Y - v.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Colinear reports whether v, a and b lie on one line. The test is on the
// doubled signed area of the triangle they form, with a tolerance of 0.05.
func (v Vector2D) Colinear(a, b Vector2D) bool {
	area := v.X*(a.Y-b.Y) + a.X*(b.Y-v.Y) + b.X*(v.Y-a.Y)
	return area < colinearEpsilon && area > -colinearEpsilon
}

// Interpolate performs linear interpolation between v and to.
// amount=0 returns v, amount=1 returns to.
func (v Vector2D) Interpolate(to Vector2D, amount float64) Vector2D {
	return Vector2D{
		X: Interpolate(v.X, to.X, amount),
		Y: Interpolate(v.Y, to.Y, amount),
	}
}

// InterpolateVector2D performs linear interpolation between from and to.
func InterpolateVector2D(from, to Vector2D, amount float64) Vector2D {
	return from.Interpolate(to, amount)
}

// motionPath returns the cubic through v and to whose inner control points
// are offset from the endpoints by the tangents.
func (v Vector2D) motionPath(to, outTangent, inTangent Vector2D) CubicBez {
	return CubicBez{
		P0: v,
		P1: v.Add(outTangent),
		P2: to.Add(inTangent),
		P3: to,
	}
}

// straight reports whether c is the segment P0-P3 traversed once: all four
// points are colinear and the handles project onto the segment in order.
func (c CubicBez) straight() bool {
	if !c.P0.Colinear(c.P1, c.P2) || !c.P1.Colinear(c.P2, c.P3) {
		return false
	}
	d := c.P3.Sub(c.P0)
	lenSq := d.X*d.X + d.Y*d.Y
	if lenSq == 0 {
		return c.P1.Equal(c.P0) && c.P2.Equal(c.P3)
	}
	s1 := ((c.P1.X-c.P0.X)*d.X + (c.P1.Y-c.P0.Y)*d.Y) / lenSq
	s2 := ((c.P2.X-c.P0.X)*d.X + (c.P2.Y-c.P0.Y)*d.Y) / lenSq
	return 0 <= s1 && s1 <= s2 && s2 <= 1
}

// PointOnPath evaluates the motion path from v to to at curve parameter
// amount. outTangent is the handle leaving v and inTangent the handle
// entering to, both relative to their endpoint.
//
// amount is the raw Bézier parameter, so equal steps of amount do not give
// equal steps of distance. Use [Vector2D.InterpolateTangents] for that.
func (v Vector2D) PointOnPath(to, outTangent, inTangent Vector2D, amount float64) Vector2D {
	return v.motionPath(to, outTangent, inTangent).Eval(amount)
}

// InterpolateTangents moves along the motion path from v to to, covering
// the fraction amount of the path's length. This is how spatial keyframes
// with tangent handles animate: the path shape comes from the handles and
// the timing from amount.
//
// The length is measured on a polyline of evenly spaced samples, then the
// curve parameter is refined inside the sample segment that holds the
// target distance. See [WithSamples], [WithMaxIterations] and
// [WithAccuracy].
//
// amount is a fraction of arc length, not a position on an easing x-axis,
// following the spatial keyframe handling of the Lottie runtimes. Temporal
// easing is [CubicBezierInterpolate] and [Ease]. amount is clamped to
// [0, 1], so the result never leaves the path.
//
// When both handles lie on the segment between the endpoints, including
// the case of zero-length handles, the path is the straight segment
// traversed once and the result is the linear interpolation. Handles that
// are colinear but reach past an endpoint make the path double back, so
// they go through the search like any other curve.
func (v Vector2D) InterpolateTangents(to, outTangent, inTangent Vector2D, amount float64, opts ...PathOption) Vector2D {
	if amount <= 0 {
		return v
	}
	if amount >= 1 {
		return to
	}

	curve := v.motionPath(to, outTangent, inTangent)
	if curve.straight() {
		return v.Interpolate(to, amount)
	}

	o := newPathOptions(opts)
	step := 1.0 / float64(o.samples)

	// Cumulative polyline length at each sample.
	points := make([]Vector2D, o.samples+1)
	lengths := make([]float64, o.samples+1)
	points[0] = v
	for i := 1; i <= o.samples; i++ {
		points[i] = curve.Eval(float64(i) * step)
		lengths[i] = lengths[i-1] + points[i-1].DistanceTo(points[i])
	}

	total := lengths[o.samples]
	if total == 0 {
		return v
	}
	target := amount * total

	seg := sort.SearchFloat64s(lengths, target) - 1
	if seg < 0 {
		seg = 0
	} else if seg > o.samples-1 {
		seg = o.samples - 1
	}

	lo, hi := float64(seg)*step, float64(seg+1)*step
	loDist, hiDist := lengths[seg], lengths[seg+1]
	loPoint := points[seg]

	for iter := 1; ; iter++ {
		t := lo
		if hiDist > loDist {
			t = Remap(target, loDist, hiDist, lo, hi)
		}
		p := curve.Eval(t)

		d := loDist + loPoint.DistanceTo(p)
		if math.Abs(d-target) <= o.accuracy {
			return p
		}
		if iter >= o.maxIterations {
			if debugEnabled() {
				Logger().Debug("lottie: path search stopped before reaching accuracy",
					slog.Float64("amount", amount),
					slog.Float64("error", math.Abs(d-target)),
					slog.Int("iterations", iter))
			}
			return p
		}

		if d < target {
			lo, loDist, loPoint = t, d, p
		} else {
			hi, hiDist = t, d
		}
	}
}

// Vec2 converts v to an x/image vector.
func (v Vector2D) Vec2() f64.Vec2 {
	return f64.Vec2{v.X, v.Y}
}
