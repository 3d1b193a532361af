package lottie

import (
	"log/slog"
	"math"

	"golang.org/x/image/math/f64"
)

// Transform represents a 3D homogeneous transformation as a 4x4 matrix in
// row-major order:
//
//	| M11 M12 M13 M14 |
//	| M21 M22 M23 M24 |
//	| M31 M32 M33 M34 |
//	| M41 M42 M43 M44 |
//
// Points are row vectors multiplied on the left, so a 2D point maps as
//
//	x' = x*M11 + y*M21 + M41
//	y' = x*M12 + y*M22 + M42
//
// and a.Mul(b) applies a first, then b.
type Transform struct {
	M11, M12, M13, M14 float64
	M21, M22, M23, M24 float64
	M31, M32, M33, M34 float64
	M41, M42, M43, M44 float64
}

// identity is never written after initialization; Identity hands out copies.
var identity = Transform{
	M11: 1,
	M22: 1,
	M33: 1,
	M44: 1,
}

// Identity returns the identity transformation matrix.
func Identity() Transform {
	return identity
}

// MakeTranslation creates a translation matrix.
func MakeTranslation(tx, ty, tz float64) Transform {
	t := identity
	t.M41, t.M42, t.M43 = tx, ty, tz
	return t
}

// MakeScale creates a scaling matrix.
func MakeScale(sx, sy, sz float64) Transform {
	t := identity
	t.M11, t.M22, t.M33 = sx, sy, sz
	return t
}

// MakeRotation creates a rotation of radians around the axis (x, y, z).
// The axis does not need to be normalized. A zero axis yields the identity.
func MakeRotation(radians, x, y, z float64) Transform {
	length := math.Sqrt(x*x + y*y + z*z)
	if length == 0 || !isFinite(length) {
		return identity
	}
	x, y, z = x/length, y/length, z/length

	sin, cos := math.Sincos(radians)
	k := 1 - cos
	return Transform{
		M11: k*x*x + cos, M12: k*x*y + z*sin, M13: k*x*z - y*sin, M14: 0,
		M21: k*x*y - z*sin, M22: k*y*y + cos, M23: k*y*z + x*sin, M24: 0,
		M31: k*x*z + y*sin, M32: k*y*z - x*sin, M33: k*z*z + cos, M34: 0,
		M41: 0, M42: 0, M43: 0, M44: 1,
	}
}

// MakeSkew creates a shear of skew degrees along the direction skewAxis
// degrees from the x axis: rotate the axis onto x, shear by tan(skew),
// rotate back.
func MakeSkew(skew, skewAxis float64) Transform {
	sin, cos := math.Sincos(DegreesToRadians(skewAxis))
	tan := math.Tan(DegreesToRadians(skew))

	toAxis := identity
	toAxis.M11, toAxis.M12 = cos, sin
	toAxis.M21, toAxis.M22 = -sin, cos

	shear := identity
	shear.M21 = tan

	fromAxis := identity
	fromAxis.M11, fromAxis.M12 = cos, -sin
	fromAxis.M21, fromAxis.M22 = sin, cos

	return fromAxis.Mul(shear).Mul(toAxis)
}

// MakeTransform builds a layer transform from the animation format's
// transform properties. Content is moved so anchor sits at the origin, then
// scaled (scale is in percent), skewed, rotated by rotation degrees and
// finally moved to position.
//
// Skew applies only when both skew and skewAxis are non-nil; it is negated
// to match the format's orientation.
func MakeTransform(anchor, position, scale Vector2D, rotation float64, skew, skewAxis *float64) Transform {
	t := Identity().Translated(position).Rotated(rotation)
	if skew != nil && skewAxis != nil {
		t = t.Skewed(-*skew, *skewAxis)
	}
	return t.Scaled(scale.Mul(0.01)).Translated(anchor.Mul(-1))
}

// Rotated returns the transform with a rotation of degrees around the z axis
// applied before t.
func (t Transform) Rotated(degrees float64) Transform {
	return MakeRotation(DegreesToRadians(degrees), 0, 0, 1).Mul(t)
}

// Translated returns the transform with a translation applied before t.
func (t Transform) Translated(v Vector2D) Transform {
	return MakeTranslation(v.X, v.Y, 0).Mul(t)
}

// Scaled returns the transform with a scale applied before t.
func (t Transform) Scaled(v Vector2D) Transform {
	return MakeScale(v.X, v.Y, 1).Mul(t)
}

// Skewed returns the transform with a skew applied before t.
func (t Transform) Skewed(skew, skewAxis float64) Transform {
	return MakeSkew(skew, skewAxis).Mul(t)
}

// Mul returns the matrix product t * b.
// With row vectors this applies t first, then b.
func (t Transform) Mul(b Transform) Transform {
	x, y := t.Mat4(), b.Mat4()
	var r f64.Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			r[i*4+j] = x[i*4]*y[j] + x[i*4+1]*y[4+j] + x[i*4+2]*y[8+j] + x[i*4+3]*y[12+j]
		}
	}
	return TransformFromMat4(r)
}

// Equal reports whether all sixteen entries are exactly equal.
func (t Transform) Equal(b Transform) bool {
	return t == b
}

// IsIdentity returns true if the matrix is exactly the identity matrix.
func (t Transform) IsIdentity() bool {
	return t == identity
}

// cofactors returns the adjugate of m and its determinant.
func cofactors(m f64.Mat4) (adj f64.Mat4, det float64) {
	adj[0] = m[5]*m[10]*m[15] - m[5]*m[11]*m[14] - m[9]*m[6]*m[15] + m[9]*m[7]*m[14] + m[13]*m[6]*m[11] - m[13]*m[7]*m[10]
	adj[4] = -m[4]*m[10]*m[15] + m[4]*m[11]*m[14] + m[8]*m[6]*m[15] - m[8]*m[7]*m[14] - m[12]*m[6]*m[11] + m[12]*m[7]*m[10]
	adj[8] = m[4]*m[9]*m[15] - m[4]*m[11]*m[13] - m[8]*m[5]*m[15] + m[8]*m[7]*m[13] + m[12]*m[5]*m[11] - m[12]*m[7]*m[9]
	adj[12] = -m[4]*m[9]*m[14] + m[4]*m[10]*m[13] + m[8]*m[5]*m[14] - m[8]*m[6]*m[13] - m[12]*m[5]*m[10] + m[12]*m[6]*m[9]

	adj[1] = -m[1]*m[10]*m[15] + m[1]*m[11]*m[14] + m[9]*m[2]*m[15] - m[9]*m[3]*m[14] - m[13]*m[2]*m[11] + m[13]*m[3]*m[10]
	adj[5] = m[0]*m[10]*m[15] - m[0]*m[11]*m[14] - m[8]*m[2]*m[15] + m[8]*m[3]*m[14] + m[12]*m[2]*m[11] - m[12]*m[3]*m[10]
	adj[9] = -m[0]*m[9]*m[15] + m[0]*m[11]*m[13] + m[8]*m[1]*m[15] - m[8]*m[3]*m[13] - m[12]*m[1]*m[11] + m[12]*m[3]*m[9]
	adj[13] = m[0]*m[9]*m[14] - m[0]*m[10]*m[13] - m[8]*m[1]*m[14] + m[8]*m[2]*m[13] + m[12]*m[1]*m[10] - m[12]*m[2]*m[9]

	adj[2] = m[1]*m[6]*m[15] - m[1]*m[7]*m[14] - m[5]*m[2]*m[15] + m[5]*m[3]*m[14] + m[13]*m[2]*m[7] - m[13]*m[3]*m[6]
	adj[6] = -m[0]*m[6]*m[15] + m[0]*m[7]*m[14] + m[4]*m[2]*m[15] - m[4]*m[3]*m[14] - m[12]*m[2]*m[7] + m[12]*m[3]*m[6]
	adj[10] = m[0]*m[5]*m[15] - m[0]*m[7]*m[13] - m[4]*m[1]*m[15] + m[4]*m[3]*m[13] + m[12]*m[1]*m[7] - m[12]*m[3]*m[5]
	adj[14] = -m[0]*m[5]*m[14] + m[0]*m[6]*m[13] + m[4]*m[1]*m[14] - m[4]*m[2]*m[13] - m[12]*m[1]*m[6] + m[12]*m[2]*m[5]

	adj[3] = -m[1]*m[6]*m[11] + m[1]*m[7]*m[10] + m[5]*m[2]*m[11] - m[5]*m[3]*m[10] - m[9]*m[2]*m[7] + m[9]*m[3]*m[6]
	adj[7] = m[0]*m[6]*m[11] - m[0]*m[7]*m[10] - m[4]*m[2]*m[11] + m[4]*m[3]*m[10] + m[8]*m[2]*m[7] - m[8]*m[3]*m[6]
	adj[11] = -m[0]*m[5]*m[11] + m[0]*m[7]*m[9] + m[4]*m[1]*m[11] - m[4]*m[3]*m[9] - m[8]*m[1]*m[7] + m[8]*m[3]*m[5]
	adj[15] = m[0]*m[5]*m[10] - m[0]*m[6]*m[9] - m[4]*m[1]*m[10] + m[4]*m[2]*m[9] + m[8]*m[1]*m[6] - m[8]*m[2]*m[5]

	det = m[0]*adj[0] + m[1]*adj[4] + m[2]*adj[8] + m[3]*adj[12]
	return adj, det
}

// Determinant returns the determinant of the full 4x4 matrix.
func (t Transform) Determinant() float64 {
	_, det := cofactors(t.Mat4())
	return det
}

// IsInvertible reports whether the matrix has a non-zero determinant whose
// reciprocal is finite.
func (t Transform) IsInvertible() bool {
	det := t.Determinant()
	return det != 0 && isFinite(det) && isFinite(1/det)
}

// Inverted returns the inverse matrix.
// Returns ErrNotInvertible, and the identity, if t is not invertible.
func (t Transform) Inverted() (Transform, error) {
	adj, det := cofactors(t.Mat4())
	invDet := 1 / det
	if det == 0 || !isFinite(det) || !isFinite(invDet) {
		if debugEnabled() {
			Logger().Debug("lottie: cannot invert transform",
				slog.Float64("determinant", det))
		}
		return identity, ErrNotInvertible
	}
	for i := range adj {
		adj[i] *= invDet
	}
	return TransformFromMat4(adj), nil
}

// TransformPoint maps a 2D point (z=0, w=1) through t. The result is
// divided by the output w when w is neither 0 nor 1.
func (t Transform) TransformPoint(p Vector2D) Vector2D {
	x := p.X*t.M11 + p.Y*t.M21 + t.M41
	y := p.X*t.M12 + p.Y*t.M22 + t.M42
	w := p.X*t.M14 + p.Y*t.M24 + t.M44
	if w != 1 && w != 0 {
		x /= w
		y /= w
	}
	return Vector2D{X: x, Y: y}
}

// TransformPoint3 maps a 3D point (w=1) through t, with the same
// perspective divide as TransformPoint.
func (t Transform) TransformPoint3(p Vector3D) Vector3D {
	x := p.X*t.M11 + p.Y*t.M21 + p.Z*t.M31 + t.M41
	y := p.X*t.M12 + p.Y*t.M22 + p.Z*t.M32 + t.M42
	z := p.X*t.M13 + p.Y*t.M23 + p.Z*t.M33 + t.M43
	w := p.X*t.M14 + p.Y*t.M24 + p.Z*t.M34 + t.M44
	if w != 1 && w != 0 {
		x /= w
		y /= w
		z /= w
	}
	return Vector3D{X: x, Y: y, Z: z}
}

// Mat4 returns the entries in row-major order.
func (t Transform) Mat4() f64.Mat4 {
	return f64.Mat4{
		t.M11, t.M12, t.M13, t.M14,
		t.M21, t.M22, t.M23, t.M24,
		t.M31, t.M32, t.M33, t.M34,
		t.M41, t.M42, t.M43, t.M44,
	}
}

// TransformFromMat4 creates a Transform from row-major entries.
func TransformFromMat4(m f64.Mat4) Transform {
	return Transform{
		M11: m[0], M12: m[1], M13: m[2], M14: m[3],
		M21: m[4], M22: m[5], M23: m[6], M24: m[7],
		M31: m[8], M32: m[9], M33: m[10], M34: m[11],
		M41: m[12], M42: m[13], M43: m[14], M44: m[15],
	}
}

// Aff3 returns the 2D affine part of t in x/image's column-vector layout,
// dropping z and perspective:
//
//	| M11 M21 M41 |
//	| M12 M22 M42 |
func (t Transform) Aff3() f64.Aff3 {
	return f64.Aff3{
		t.M11, t.M21, t.M41,
		t.M12, t.M22, t.M42,
	}
}
