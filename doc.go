// Package lottie provides the geometric primitives used by a Lottie
// vector-animation renderer.
//
// # Overview
//
// The package holds value types only: scalar vectors of one, two and three
// components, a 4x4 homogeneous [Transform] and an axis-aligned [Rect].
// Every operation is a pure function that returns a new value, so all types
// are safe to share between goroutines without locking.
//
// # Quick Start
//
//	import "github.com/gogpu/lottie"
//
//	// Layer transform from the animation's anchor/position/scale/rotation.
//	t := lottie.MakeTransform(
//	    lottie.V2(50, 50),   // anchor
//	    lottie.V2(200, 120), // position
//	    lottie.V2(100, 100), // scale, percent
//	    45,                  // rotation, degrees
//	    nil, nil,            // no skew
//	)
//
//	// Bounds of the layer's content in parent space.
//	bounds := lottie.NewRect(0, 0, 100, 100).ApplyingTransform(t)
//
// # Interpolation
//
// Keyframes without tangent handles interpolate linearly with
// [Vector2D.Interpolate]. Spatial keyframes with tangents move along the
// cubic Bézier described by the handles, see [Vector2D.InterpolateTangents].
// Temporal easing curves are evaluated with [Ease] and
// [CubicBezierInterpolate].
//
// # Coordinate System
//
// Transforms use the row-vector convention: a point is a row vector
// multiplied on the left of the matrix, and translation lives in
// M41, M42 and M43.
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Rotation angles in the public builders are in degrees unless the
//     name says radians
package lottie
