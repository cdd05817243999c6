package som

import (
	"context"
	"math"

	"github.com/tessellab/gosom/topology"
)

// Train runs epochs single-sample training steps against the grid, drawing
// uniformly (with replacement) from samples. Equivalent to TrainContext
// with context.Background().
func (s *SOM) Train(epochs int, samples ...[]float64) error {
	return s.TrainContext(context.Background(), epochs, samples...)
}

// TrainContext is the learning loop. All input is validated before the
// first epoch, so a failed call leaves the grid untouched:
// ErrNotInitialized, ErrEpochCount (epochs < 0; 0 is a no-op), ErrNoSamples,
// ErrDimensionMismatch.
//
// Per epoch t in 1..epochs the radius decays as sigma0·exp(-t/lambda) with
// lambda = epochs/ln(sigma0), the learning rate as l0·exp(-t/epochs); one
// random sample is drawn, its best-matching unit located, and every cell
// within the current radius is pulled toward the sample with Gaussian
// weight exp(-d²/(2·sigma²)).
//
// Cancellation is honored at epoch boundaries only: a cancelled context
// aborts before the next epoch, never mid-update, so no prototype vector is
// ever torn. The grid keeps the state of the last completed epoch.
//
// No decay state survives the call; a second invocation restarts lambda and
// t from its own epoch count against the grid as the previous call left it.
//
// Complexity: O(epochs × W×H × Z) time, O(W×H) transient memory per epoch
// for the neighbor list.
func (s *SOM) TrainContext(ctx context.Context, epochs int, samples ...[]float64) error {
	if !s.grid.Initialized() {
		return ErrNotInitialized
	}
	if epochs < 0 {
		return ErrEpochCount
	}
	if len(samples) == 0 {
		return ErrNoSamples
	}
	for _, smp := range samples {
		if len(smp) != s.inputDim {
			return ErrDimensionMismatch
		}
	}
	if epochs == 0 {
		return nil
	}

	lambda := float64(epochs) / math.Log(s.sigma)
	for t := 1; t <= epochs; t++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		sigma := s.sigma * math.Exp(-float64(t)/lambda)
		rate := s.learningRate * math.Exp(-float64(t)/float64(epochs))
		sample := samples[s.rng.Intn(len(samples))]

		bmu, _ := s.bmu(sample)
		for _, nb := range topology.Within(s.topo, bmu, sigma) {
			s.pull(nb, sample, sigma, rate)
		}
	}
	return nil
}

// pull applies the Gaussian-weighted update to one neighbor: the prototype
// moves toward the sample with strength decaying in planar distance from
// the BMU and in training progress. Mutates the cell in place; the pass is
// allocation-free.
func (s *SOM) pull(nb topology.Neighbor, sample []float64, sigma, rate float64) {
	w, _ := s.grid.At(nb.X, nb.Y) // neighbor coords are in bounds by construction
	theta := math.Exp(-(nb.Distance * nb.Distance) / (2 * sigma * sigma))
	step := theta * rate
	for i := range w {
		w[i] += step * (sample[i] - w[i])
	}
}
