package som

import (
	"math"
	"math/rand"

	"github.com/tessellab/gosom/grid"
	"github.com/tessellab/gosom/topology"
	"github.com/tessellab/gosom/vectormath"
)

// SOM couples a prototype grid with a topology and the training
// hyperparameters. Construct with New (rectangular) or NewHexagonal,
// then Init, then Train.
type SOM struct {
	topo         topology.Topology
	grid         *grid.Grid
	inputDim     int
	learningRate float64
	sigma        float64
	rng          *rand.Rand
}

// New builds a rectangular map. outputDim is a "WxH" dimension string,
// inputDim the sample vector length Z. Errors: topology.ErrDimFormat,
// topology.ErrNonPositiveDim, grid.ErrNonPositiveDim, ErrLearningRate,
// ErrSigmaTooSmall.
func New(outputDim string, inputDim int, opts ...Option) (*SOM, error) {
	topo, err := topology.NewRectangular(outputDim)
	if err != nil {
		return nil, err
	}
	return fromTopology(topo, inputDim, opts...)
}

// NewHexagonal builds a hexagonal map of the given size (see
// topology.NewHexagonal). Same option set and errors as New.
func NewHexagonal(size, inputDim int, opts ...Option) (*SOM, error) {
	topo, err := topology.NewHexagonal(size)
	if err != nil {
		return nil, err
	}
	return fromTopology(topo, inputDim, opts...)
}

func fromTopology(topo topology.Topology, inputDim int, opts ...Option) (*SOM, error) {
	g, err := grid.New(topo, inputDim)
	if err != nil {
		return nil, err
	}

	o := gatherOptions(opts...)
	if !(o.learningRate > 0) {
		return nil, ErrLearningRate
	}
	sigma := o.sigma
	if !o.sigmaSet {
		w, h := topo.Bounds()
		sigma = float64(max(w, h)) / 2
	}
	if !(sigma > 1) {
		return nil, ErrSigmaTooSmall
	}

	return &SOM{
		topo:         topo,
		grid:         g,
		inputDim:     inputDim,
		learningRate: o.learningRate,
		sigma:        sigma,
		rng:          grid.NewRNG(o.seed),
	}, nil
}

// Init prepares the grid for training. With no arguments every component is
// drawn uniformly from [-0.5, 0.5) using the map's RNG; with seed vectors
// the cells are assigned cyclically in enumeration order (grid.SeedCycle).
// Fully overwrites any previous grid contents.
func (s *SOM) Init(seeds ...[]float64) error {
	if len(seeds) == 0 {
		s.grid.Randomize(s.rng)
		return nil
	}
	return s.grid.SeedCycle(seeds...)
}

// BMU returns the best-matching unit for sample: the cell whose prototype
// minimizes the Euclidean distance, together with that distance. Ties break
// to the first minimum in enumeration order (row-major: y outer, x inner).
// Errors: ErrNotInitialized, ErrDimensionMismatch.
func (s *SOM) BMU(sample []float64) (topology.Coord, float64, error) {
	if !s.grid.Initialized() {
		return topology.Coord{}, 0, ErrNotInitialized
	}
	if len(sample) != s.inputDim {
		return topology.Coord{}, 0, ErrDimensionMismatch
	}
	c, sq := s.bmu(sample)
	return c, math.Sqrt(sq), nil
}

// bmu scans all cells and returns the first minimum in enumeration order
// with its squared distance. Callers guarantee sample length.
func (s *SOM) bmu(sample []float64) (topology.Coord, float64) {
	best := math.Inf(1)
	var bestC topology.Coord
	for _, c := range s.topo.Coords() {
		v, _ := s.grid.At(c.X, c.Y)                     // coords come from the topology, always in bounds
		sq, _ := vectormath.SquaredEuclidean(v, sample) // lengths validated up front
		if sq < best {
			best, bestC = sq, c
		}
	}
	return bestC, best
}

// Neighbors returns every cell within planar distance sigma of (x, y),
// tagged with that distance, in enumeration order; (x, y) itself is always
// included at distance 0. Errors: ErrNegativeRadius, grid.ErrOutOfRange.
func (s *SOM) Neighbors(sigma float64, x, y int) ([]topology.Neighbor, error) {
	if sigma < 0 {
		return nil, ErrNegativeRadius
	}
	if _, err := s.grid.At(x, y); err != nil {
		return nil, err
	}
	return topology.Within(s.topo, topology.Coord{X: x, Y: y}, sigma), nil
}

// Value returns the prototype vector at (x, y) as a live view
// (see grid.At for the aliasing contract).
func (s *SOM) Value(x, y int) ([]float64, error) { return s.grid.At(x, y) }

// SetValue copies v into the cell at (x, y).
func (s *SOM) SetValue(x, y int, v []float64) error { return s.grid.Set(x, y, v) }

// Grid returns the live prototype grid the map mutates during training.
func (s *SOM) Grid() *grid.Grid { return s.grid }

// Radius returns the initial neighborhood radius sigma0.
func (s *SOM) Radius() float64 { return s.sigma }

// OutputDim returns the original output dimension specification
// ("WxH" for rectangular maps, the size for hexagonal ones).
func (s *SOM) OutputDim() string { return s.topo.Spec() }

// InputDim returns the sample vector length Z.
func (s *SOM) InputDim() int { return s.inputDim }
