package lottie

import "math"

// Vector1D is a single animatable scalar, such as opacity or rotation.
type Vector1D struct {
	Value float64
}

// V1 is a convenience function to create a Vector1D.
func V1(v float64) Vector1D {
	return Vector1D{Value: v}
}

// DistanceTo returns the absolute difference between the two values.
func (v Vector1D) DistanceTo(to Vector1D) float64 {
	return math.Abs(to.Value - v.Value)
}

// Interpolate performs linear interpolation between v and to.
func (v Vector1D) Interpolate(to Vector1D, amount float64) Vector1D {
	return Vector1D{Value: Interpolate(v.Value, to.Value, amount)}
}

// InterpolateVector1D performs linear interpolation between from and to.
func InterpolateVector1D(from, to Vector1D, amount float64) Vector1D {
	return from.Interpolate(to, amount)
}
