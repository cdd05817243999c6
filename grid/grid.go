package grid

import (
	"math/rand"

	"github.com/tessellab/gosom/topology"
)

// Grid is the 2-D array of prototype vectors. Dimensions are fixed at
// construction; only the vector contents mutate. Not safe for concurrent
// mutation: at most one training run may own a Grid at a time.
type Grid struct {
	topo        topology.Topology
	width       int
	height      int
	dim         int
	cells       []float64 // width*height*dim, enumeration order
	initialized bool
}

// New allocates a zeroed, uninitialized grid over the given topology with
// prototype vectors of length dim. Returns ErrNilTopology or
// ErrNonPositiveDim on invalid input.
func New(t topology.Topology, dim int) (*Grid, error) {
	if t == nil {
		return nil, ErrNilTopology
	}
	if dim < 1 {
		return nil, ErrNonPositiveDim
	}
	w, h := t.Bounds()
	return &Grid{
		topo:   t,
		width:  w,
		height: h,
		dim:    dim,
		cells:  make([]float64, w*h*dim),
	}, nil
}

// Width returns the grid width W.
func (g *Grid) Width() int { return g.width }

// Height returns the grid height H.
func (g *Grid) Height() int { return g.height }

// Dim returns the prototype vector length Z.
func (g *Grid) Dim() int { return g.dim }

// Len returns the number of cells (W×H).
func (g *Grid) Len() int { return g.width * g.height }

// Topology returns the topology the grid was built over.
func (g *Grid) Topology() topology.Topology { return g.topo }

// Initialized reports whether Randomize or SeedCycle has run.
func (g *Grid) Initialized() bool { return g.initialized }

// At returns the prototype vector at (x, y). The returned slice is a live
// view into the grid's backing store: writes through it mutate the cell.
// Returns ErrOutOfRange outside [0,W)×[0,H).
func (g *Grid) At(x, y int) ([]float64, error) {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return nil, ErrOutOfRange
	}
	off := (y*g.width + x) * g.dim
	return g.cells[off : off+g.dim : off+g.dim], nil
}

// Set copies v into the cell at (x, y). Returns ErrOutOfRange for a bad
// coordinate and ErrDimensionMismatch when len(v) != Dim().
func (g *Grid) Set(x, y int, v []float64) error {
	if len(v) != g.dim {
		return ErrDimensionMismatch
	}
	cell, err := g.At(x, y)
	if err != nil {
		return err
	}
	copy(cell, v)
	return nil
}

// Randomize overwrites every cell with a fresh vector whose components are
// drawn uniformly from [-0.5, 0.5). A nil rng selects the default
// deterministic stream (see NewRNG). Marks the grid initialized.
func (g *Grid) Randomize(rng *rand.Rand) {
	if rng == nil {
		rng = NewRNG(0)
	}
	for i := range g.cells {
		g.cells[i] = rng.Float64() - 0.5
	}
	g.initialized = true
}

// SeedCycle overwrites the cells with the given seed vectors in enumeration
// order, cycling when the seed list is shorter than the cell count: cell k
// gets seeds[k mod len(seeds)]. A single zero vector therefore produces an
// all-zero grid. Every seed length is validated before any cell is written.
// Marks the grid initialized on success.
func (g *Grid) SeedCycle(seeds ...[]float64) error {
	if len(seeds) == 0 {
		return ErrNoSeeds
	}
	for _, s := range seeds {
		if len(s) != g.dim {
			return ErrDimensionMismatch
		}
	}
	for k := 0; k < g.Len(); k++ {
		copy(g.cells[k*g.dim:(k+1)*g.dim], seeds[k%len(seeds)])
	}
	g.initialized = true
	return nil
}

// Snapshot returns a deep copy of all prototype vectors in enumeration
// order. Mutating the result never touches the grid.
func (g *Grid) Snapshot() [][]float64 {
	out := make([][]float64, g.Len())
	for k := range out {
		v := make([]float64, g.dim)
		copy(v, g.cells[k*g.dim:(k+1)*g.dim])
		out[k] = v
	}
	return out
}
