package lottie

// Vector3D is a three component value. Lottie stores positions, anchors and
// scales this way even for 2D layers, with Z usually zero.
type Vector3D struct {
	X, Y, Z float64
}

// V3 is a convenience function to create a Vector3D.
func V3(x, y, z float64) Vector3D {
	return Vector3D{X: x, Y: y, Z: z}
}

// Interpolate performs component-wise linear interpolation between v and to.
func (v Vector3D) Interpolate(to Vector3D, amount float64) Vector3D {
	return Vector3D{
		X: Interpolate(v.X, to.X, amount),
		Y: Interpolate(v.Y, to.Y, amount),
		Z: Interpolate(v.Z, to.Z, amount),
	}
}

// InterpolateVector3D performs component-wise linear interpolation between
// from and to.
func InterpolateVector3D(from, to Vector3D, amount float64) Vector3D {
	return from.Interpolate(to, amount)
}

// XY drops the Z component.
func (v Vector3D) XY() Vector2D {
	return Vector2D{X: v.X, Y: v.Y}
}
