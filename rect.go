package lottie

import (
	"math"

	"golang.org/x/image/math/fixed"
)

// Rect represents an axis-aligned rectangle by its origin and size.
// Min is (X, Y) and Max is (X+Width, Y+Height).
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// NewRect creates a rectangle from position and size.
func NewRect(x, y, width, height float64) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// VeryLarge returns a rectangle covering the whole usable canvas space.
// It stands in for bounds that are not known.
func VeryLarge() Rect {
	return Rect{X: -100000000, Y: -100000000, Width: 200000000, Height: 200000000}
}

// MinX returns the left edge of the rectangle.
func (r Rect) MinX() float64 { return r.X }

// MinY returns the top edge of the rectangle.
func (r Rect) MinY() float64 { return r.Y }

// MaxX returns the right edge of the rectangle.
func (r Rect) MaxX() float64 { return r.X + r.Width }

// MaxY returns the bottom edge of the rectangle.
func (r Rect) MaxY() float64 { return r.Y + r.Height }

// Equal reports whether origin and size are exactly equal.
func (r Rect) Equal(other Rect) bool {
	return r == other
}

// Empty returns true if the rectangle has zero or negative width or height.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// InsetBy returns a new rectangle shrunk by dx on the left and right and by
// dy on the top and bottom. Negative values grow it.
func (r Rect) InsetBy(dx, dy float64) Rect {
	return Rect{
		X:      r.X + dx,
		Y:      r.Y + dy,
		Width:  r.Width - 2*dx,
		Height: r.Height - 2*dy,
	}
}

// Intersects reports whether the two rectangles overlap with a positive
// area. Empty rectangles intersect nothing, and rectangles that only share
// an edge do not intersect.
func (r Rect) Intersects(other Rect) bool {
	if r.Empty() || other.Empty() {
		return false
	}
	return r.X < other.MaxX() && other.X < r.MaxX() &&
		r.Y < other.MaxY() && other.Y < r.MaxY()
}

// Contains reports whether other lies entirely inside r, edges included.
// Empty rectangles neither contain nor are contained.
func (r Rect) Contains(other Rect) bool {
	if r.Empty() || other.Empty() {
		return false
	}
	return other.X >= r.X && other.Y >= r.Y &&
		other.MaxX() <= r.MaxX() && other.MaxY() <= r.MaxY()
}

// Intersection returns the overlap of r and other.
// Returns the zero Rect if they do not intersect.
func (r Rect) Intersection(other Rect) Rect {
	if !r.Intersects(other) {
		return Rect{}
	}
	return rectFromEdges(
		math.Max(r.X, other.X),
		math.Max(r.Y, other.Y),
		math.Min(r.MaxX(), other.MaxX()),
		math.Min(r.MaxY(), other.MaxY()),
	)
}

// UnionWith returns the smallest rectangle containing both r and other.
// An empty operand is ignored.
func (r Rect) UnionWith(other Rect) Rect {
	if r.Empty() {
		return other
	}
	if other.Empty() {
		return r
	}
	return rectFromEdges(
		math.Min(r.X, other.X),
		math.Min(r.Y, other.Y),
		math.Max(r.MaxX(), other.MaxX()),
		math.Max(r.MaxY(), other.MaxY()),
	)
}

// ApplyingTransform maps the four corners of r through t and returns their
// bounding box. Under rotation or skew the result is larger than r.
func (r Rect) ApplyingTransform(t Transform) Rect {
	if t.IsIdentity() {
		return r
	}

	corners := [4]Vector2D{
		t.TransformPoint(Vector2D{X: r.X, Y: r.Y}),
		t.TransformPoint(Vector2D{X: r.MaxX(), Y: r.Y}),
		t.TransformPoint(Vector2D{X: r.X, Y: r.MaxY()}),
		t.TransformPoint(Vector2D{X: r.MaxX(), Y: r.MaxY()}),
	}

	minX, minY := corners[0].X, corners[0].Y
	maxX, maxY := minX, minY
	for _, c := range corners[1:] {
		minX, maxX = math.Min(minX, c.X), math.Max(maxX, c.X)
		minY, maxY = math.Min(minY, c.Y), math.Max(maxY, c.Y)
	}
	return rectFromEdges(minX, minY, maxX, maxY)
}

// rectFromEdges creates a rectangle from its min and max edges.
func rectFromEdges(minX, minY, maxX, maxY float64) Rect {
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Fixed converts r to 26.6 fixed point, rounding each edge to the nearest
// 1/64 of a unit. Edges beyond the 26.6 range saturate and NaN edges
// become 0.
func (r Rect) Fixed() fixed.Rectangle26_6 {
	return fixed.Rectangle26_6{
		Min: fixed.Point26_6{X: toFixed(r.X), Y: toFixed(r.Y)},
		Max: fixed.Point26_6{X: toFixed(r.MaxX()), Y: toFixed(r.MaxY())},
	}
}

// RectFromFixed converts a 26.6 fixed point rectangle.
func RectFromFixed(fr fixed.Rectangle26_6) Rect {
	return rectFromEdges(fromFixed(fr.Min.X), fromFixed(fr.Min.Y), fromFixed(fr.Max.X), fromFixed(fr.Max.Y))
}

// toFixed rounds v to 26.6, saturating at the int32 range. NaN maps to 0.
func toFixed(v float64) fixed.Int26_6 {
	v = math.Round(v * 64)
	switch {
	case math.IsNaN(v):
		return 0
	case v >= math.MaxInt32:
		return math.MaxInt32
	case v <= math.MinInt32:
		return math.MinInt32
	}
	return fixed.Int26_6(v)
}

func fromFixed(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
