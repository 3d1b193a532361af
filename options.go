package lottie

// Default path search parameters for [Vector2D.InterpolateTangents].
const (
	DefaultMaxIterations = 3
	DefaultSamples       = 20
	DefaultAccuracy      = 1.0
)

// PathOption configures the arc-length search performed by
// [Vector2D.InterpolateTangents].
//
// Example:
//
//	// Finer sampling for long, strongly curved motion paths
//	p := from.InterpolateTangents(to, out, in, t, lottie.WithSamples(64))
type PathOption func(*pathOptions)

// pathOptions holds the search parameters.
type pathOptions struct {
	maxIterations int
	samples       int
	accuracy      float64
}

// defaultPathOptions returns the default search parameters.
func defaultPathOptions() pathOptions {
	return pathOptions{
		maxIterations: DefaultMaxIterations,
		samples:       DefaultSamples,
		accuracy:      DefaultAccuracy,
	}
}

// newPathOptions applies opts over the defaults.
func newPathOptions(opts []PathOption) pathOptions {
	o := defaultPathOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithMaxIterations sets how many times the parameter is refined inside the
// sample segment that holds the target distance. Non-positive values keep
// the default.
func WithMaxIterations(n int) PathOption {
	return func(o *pathOptions) {
		if n > 0 {
			o.maxIterations = n
		}
	}
}

// WithSamples sets how many evenly spaced parameters are used to measure the
// curve length. Non-positive values keep the default.
func WithSamples(n int) PathOption {
	return func(o *pathOptions) {
		if n > 0 {
			o.samples = n
		}
	}
}

// WithAccuracy sets the distance error, in path units, at which refinement
// stops early. Non-positive or non-finite values keep the default.
func WithAccuracy(d float64) PathOption {
	return func(o *pathOptions) {
		if d > 0 && isFinite(d) {
			o.accuracy = d
		}
	}
}
