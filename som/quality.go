package som

import (
	"context"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/tessellab/gosom/topology"
	"github.com/tessellab/gosom/vectormath"
)

// unitNeighborLimit is the planar distance up to which the best and
// second-best units count as adjacent for the topographic error: it covers
// rectangular diagonals (√2) and hexagonal unit steps, but not two straight
// grid steps.
const unitNeighborLimit = 1.5

// QuantizationError returns the mean Euclidean distance between each sample
// and its best-matching unit — the standard resolution metric of a trained
// map. Samples are evaluated in parallel (the scan only reads the grid);
// do not call concurrently with Train. Errors: ErrNotInitialized,
// ErrNoSamples, ErrDimensionMismatch, or the context's error on cancel.
//
// Complexity: O(len(samples) × W×H × Z) work across GOMAXPROCS goroutines.
func (s *SOM) QuantizationError(ctx context.Context, samples ...[]float64) (float64, error) {
	if err := s.validateSamples(samples); err != nil {
		return 0, err
	}

	dists := make([]float64, len(samples))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range samples {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			_, sq := s.bmu(samples[i])
			dists[i] = math.Sqrt(sq)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	var sum float64
	for _, d := range dists {
		sum += d
	}
	return sum / float64(len(samples)), nil
}

// TopographicError returns the fraction of samples whose best and
// second-best matching units are not planar neighbors — a measure of how
// well the map preserves topology. Requires at least two cells
// (ErrGridTooSmall). Same validation, parallelism and concurrency contract
// as QuantizationError.
func (s *SOM) TopographicError(ctx context.Context, samples ...[]float64) (float64, error) {
	if err := s.validateSamples(samples); err != nil {
		return 0, err
	}
	if s.grid.Len() < 2 {
		return 0, ErrGridTooSmall
	}

	folded := make([]float64, len(samples))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range samples {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			first, second := s.bmu2(samples[i])
			if s.topo.Distance(first, second) > unitNeighborLimit {
				folded[i] = 1
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	var sum float64
	for _, f := range folded {
		sum += f
	}
	return sum / float64(len(samples)), nil
}

// bmu2 returns the best and second-best matching units in enumeration
// order. Callers guarantee sample length and at least two cells.
func (s *SOM) bmu2(sample []float64) (first, second topology.Coord) {
	best, next := math.Inf(1), math.Inf(1)
	for _, c := range s.topo.Coords() {
		v, _ := s.grid.At(c.X, c.Y)
		sq, _ := vectormath.SquaredEuclidean(v, sample)
		switch {
		case sq < best:
			next, second = best, first
			best, first = sq, c
		case sq < next:
			next, second = sq, c
		}
	}
	return first, second
}

// validateSamples shares the read-path input checks.
func (s *SOM) validateSamples(samples [][]float64) error {
	if !s.grid.Initialized() {
		return ErrNotInitialized
	}
	if len(samples) == 0 {
		return ErrNoSamples
	}
	for _, smp := range samples {
		if len(smp) != s.inputDim {
			return ErrDimensionMismatch
		}
	}
	return nil
}
