package som

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultLearningRate is the initial learning rate l0 when
	// WithLearningRate is not supplied.
	DefaultLearningRate = 0.1
)

// Option configures a SOM via functional arguments. Invalid values surface
// as sentinel errors from New/NewHexagonal, never as panics.
type Option func(*options)

type options struct {
	learningRate float64
	sigma        float64
	sigmaSet     bool
	seed         int64
}

// WithLearningRate sets the initial learning rate l0 (default 0.1).
// Values not strictly positive are rejected with ErrLearningRate.
func WithLearningRate(l float64) Option {
	return func(o *options) { o.learningRate = l }
}

// WithSigma sets the initial neighborhood radius sigma0. The default is
// max(W,H)/2, the heuristic "impact distance" start value. Values not
// strictly above 1 are rejected with ErrSigmaTooSmall — note this also
// applies to the default, so very small grids need an explicit sigma.
func WithSigma(sigma float64) Option {
	return func(o *options) {
		o.sigma = sigma
		o.sigmaSet = true
	}
}

// WithSeed fixes the RNG seed for initialization and sample drawing.
// Policy follows grid.NewRNG: seed==0 selects the stable default seed.
func WithSeed(seed int64) Option {
	return func(o *options) { o.seed = seed }
}

// gatherOptions applies opts over the documented defaults.
func gatherOptions(opts ...Option) options {
	o := options{learningRate: DefaultLearningRate}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
