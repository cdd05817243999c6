package som

import "errors"

// Sentinel errors for SOM construction and training. Configuration errors
// are fatal to the call that raises them and never leave partial effects.
var (
	// ErrLearningRate indicates a non-positive (or NaN) learning rate.
	ErrLearningRate = errors.New("som: learning rate must be positive")

	// ErrSigmaTooSmall indicates an initial radius sigma0 <= 1, for which
	// the decay constant epochs/ln(sigma0) is undefined or sign-flipped.
	ErrSigmaTooSmall = errors.New("som: initial radius must exceed 1")

	// ErrNotInitialized indicates Train/BMU was called before Init.
	ErrNotInitialized = errors.New("som: grid not initialized")

	// ErrEpochCount indicates a negative epoch count (0 is a valid no-op).
	ErrEpochCount = errors.New("som: epoch count must be non-negative")

	// ErrNoSamples indicates an empty sample sequence.
	ErrNoSamples = errors.New("som: at least one sample required")

	// ErrDimensionMismatch indicates a sample whose length differs from the
	// map's input dimension.
	ErrDimensionMismatch = errors.New("som: sample length differs from input dimension")

	// ErrNegativeRadius indicates a negative neighborhood radius.
	ErrNegativeRadius = errors.New("som: neighborhood radius must be non-negative")

	// ErrGridTooSmall indicates a metric that needs at least two cells
	// (topographic error) was asked of a single-cell map.
	ErrGridTooSmall = errors.New("som: metric requires at least two cells")
)
