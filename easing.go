package lottie

import "log/slog"

// Ease maps linear keyframe progress through the easing curve that starts at
// (0,0), ends at (1,1) and has the given handles. outTangent is the handle
// leaving the earlier keyframe and inTangent the one entering the later
// keyframe, both in the unit square.
//
// Handles on the diagonal describe linear timing and return progress
// unchanged, as does a curve that cannot be solved at progress.
func Ease(progress float64, outTangent, inTangent Vector2D) float64 {
	if outTangent.X == outTangent.Y && inTangent.X == inTangent.Y {
		return progress
	}
	y, ok := CubicBezierInterpolate(progress, Vector2D{}, outTangent, inTangent, Vector2D{X: 1, Y: 1})
	if !ok {
		if debugEnabled() {
			Logger().Debug("lottie: easing curve has no solution, using linear progress",
				slog.Float64("progress", progress),
				slog.Any("out", outTangent),
				slog.Any("in", inTangent))
		}
		return progress
	}
	return y
}
