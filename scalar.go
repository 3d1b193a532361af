package lottie

import "math"

// Interpolate performs linear interpolation between two scalars.
// amount=0 returns from, amount=1 returns to. Values outside [0, 1]
// extrapolate.
func Interpolate(from, to, amount float64) float64 {
	return from + (to-from)*amount
}

// Remap maps v from the range [fromLow, fromHigh] to [toLow, toHigh].
func Remap(v, fromLow, fromHigh, toLow, toHigh float64) float64 {
	return toLow + (v-fromLow)*(toHigh-toLow)/(fromHigh-fromLow)
}

// IsInRange reports whether from < v < to.
func IsInRange(v, from, to float64) bool {
	return from < v && v < to
}

// IsInRangeOrEqual reports whether from <= v <= to.
func IsInRangeOrEqual(v, from, to float64) bool {
	return from <= v && v <= to
}

// DegreesToRadians converts an angle in degrees to radians.
func DegreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// RadiansToDegrees converts an angle in radians to degrees.
func RadiansToDegrees(rad float64) float64 {
	return rad * 180.0 / math.Pi
}

// isFinite returns true if x is neither infinite nor NaN.
func isFinite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}
