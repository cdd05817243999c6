// Package som implements the incremental (online) Kohonen self-organizing
// map: unsupervised training that maps high-dimensional sample vectors onto
// a low-dimensional grid of prototype vectors while preserving topological
// neighborhood relationships.
//
// What:
//
//   - SOM: the trainer facade owning a grid.Grid, a topology.Topology and
//     the training hyperparameters (learning rate, initial radius, RNG seed).
//   - Train / TrainContext: the learning loop. Each epoch draws one random
//     sample, finds its best-matching unit, and pulls every prototype within
//     the decaying neighborhood radius toward the sample with a
//     Gaussian-weighted, decaying learning rate.
//   - BMU, Neighbors, Value/SetValue, Grid, Radius, OutputDim: the boundary
//     operations around the loop.
//   - QuantizationError, TopographicError: read-only map-quality metrics,
//     evaluated in parallel across samples.
//
// Algorithm, per epoch t in 1..epochs:
//
//	lambda   = epochs / ln(sigma0)                    (fixed per call)
//	sigma(t) = sigma0 · exp(-t/lambda)                (radius decay)
//	l(t)     = l0 · exp(-t/epochs)                    (rate decay)
//	bmu      = argmin over cells of ‖cell - sample‖   (first minimum wins,
//	                                                   enumeration order)
//	for every cell within planar distance d <= sigma(t) of bmu:
//	    theta = exp(-d² / (2·sigma(t)²))
//	    w_i  += theta · l(t) · (sample_i - w_i)
//
// No decay state survives a call: a second Train restarts lambda and t from
// its own epoch count and continues from the grid the first call left.
//
// Concurrency:
//
//   - Training is inherently sequential; at most one Train call may run
//     against a SOM at a time. TrainContext honors cancellation at epoch
//     boundaries only, so a per-neighbor update is never torn.
//   - The quality metrics only read the grid and fan out per sample.
//
// Numeric contract: NaN or Inf samples are not guarded inside the loop;
// they propagate into the grid exactly as the update rule dictates.
//
// Errors:
//
//   - ErrLearningRate, ErrSigmaTooSmall: invalid construction options
//     (sigma0 must exceed 1; the decay constant is undefined at 1 and
//     sign-flips below it).
//   - ErrNotInitialized, ErrEpochCount, ErrNoSamples, ErrDimensionMismatch,
//     ErrNegativeRadius, ErrGridTooSmall: invalid call input, always raised
//     before any grid mutation.
package som
