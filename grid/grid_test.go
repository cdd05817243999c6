package grid_test

import (
	"errors"
	"testing"

	"github.com/tessellab/gosom/grid"
	"github.com/tessellab/gosom/topology"
)

func mustRect(t *testing.T, spec string) *topology.Rectangular {
	t.Helper()
	r, err := topology.NewRectangular(spec)
	if err != nil {
		t.Fatalf("NewRectangular(%q) error: %v", spec, err)
	}
	return r
}

//----------------------------------------------------------------------------//
// Construction
//----------------------------------------------------------------------------//

// TestNew_Errors rejects nil topology and non-positive dimensions.
func TestNew_Errors(t *testing.T) {
	if _, err := grid.New(nil, 3); !errors.Is(err, grid.ErrNilTopology) {
		t.Errorf("New(nil,3) error = %v; want ErrNilTopology", err)
	}
	r := mustRect(t, "2x2")
	for _, dim := range []int{0, -1} {
		if _, err := grid.New(r, dim); !errors.Is(err, grid.ErrNonPositiveDim) {
			t.Errorf("New(r,%d) error = %v; want ErrNonPositiveDim", dim, err)
		}
	}
}

// TestNew_StartsUninitialized verifies the initialization tracking.
func TestNew_StartsUninitialized(t *testing.T) {
	g, err := grid.New(mustRect(t, "3x2"), 4)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if g.Initialized() {
		t.Error("fresh grid reports Initialized() = true")
	}
	if g.Width() != 3 || g.Height() != 2 || g.Dim() != 4 || g.Len() != 6 {
		t.Errorf("dims = (%d,%d,%d,%d); want (3,2,4,6)", g.Width(), g.Height(), g.Dim(), g.Len())
	}
}

//----------------------------------------------------------------------------//
// Initialization
//----------------------------------------------------------------------------//

// TestRandomize_RangeAndDeterminism: all components in [-0.5,0.5), identical
// grids for identical seeds.
func TestRandomize_RangeAndDeterminism(t *testing.T) {
	g1, _ := grid.New(mustRect(t, "5x6"), 3)
	g1.Randomize(grid.NewRNG(42))
	if !g1.Initialized() {
		t.Fatal("Randomize did not mark grid initialized")
	}
	for _, v := range g1.Snapshot() {
		for _, c := range v {
			if c < -0.5 || c >= 0.5 {
				t.Fatalf("component %v outside [-0.5,0.5)", c)
			}
		}
	}

	g2, _ := grid.New(mustRect(t, "5x6"), 3)
	g2.Randomize(grid.NewRNG(42))
	s1, s2 := g1.Snapshot(), g2.Snapshot()
	for k := range s1 {
		for i := range s1[k] {
			if s1[k][i] != s2[k][i] {
				t.Fatalf("same seed produced different grids at cell %d component %d", k, i)
			}
		}
	}
}

// TestSeedCycle_SingleSeed: every cell equals the seed exactly.
func TestSeedCycle_SingleSeed(t *testing.T) {
	g, _ := grid.New(mustRect(t, "5x6"), 3)
	seed := []float64{1.5, -2, 0.25}
	if err := g.SeedCycle(seed); err != nil {
		t.Fatalf("SeedCycle error: %v", err)
	}
	for k, v := range g.Snapshot() {
		for i := range v {
			if v[i] != seed[i] {
				t.Fatalf("cell %d component %d = %v; want %v", k, i, v[i], seed[i])
			}
		}
	}
}

// TestSeedCycle_CyclesInEnumerationOrder: cell k gets seeds[k mod n].
func TestSeedCycle_CyclesInEnumerationOrder(t *testing.T) {
	g, _ := grid.New(mustRect(t, "3x2"), 1)
	if err := g.SeedCycle([]float64{10}, []float64{20}); err != nil {
		t.Fatalf("SeedCycle error: %v", err)
	}
	want := []float64{10, 20, 10, 20, 10, 20}
	for k, v := range g.Snapshot() {
		if v[0] != want[k] {
			t.Errorf("cell %d = %v; want %v", k, v[0], want[k])
		}
	}
}

// TestSeedCycle_Errors: empty seed list and wrong-length seeds, with no
// partial mutation on failure.
func TestSeedCycle_Errors(t *testing.T) {
	g, _ := grid.New(mustRect(t, "2x2"), 2)
	if err := g.SeedCycle(); !errors.Is(err, grid.ErrNoSeeds) {
		t.Errorf("SeedCycle() error = %v; want ErrNoSeeds", err)
	}
	if err := g.SeedCycle([]float64{1, 2}, []float64{3}); !errors.Is(err, grid.ErrDimensionMismatch) {
		t.Errorf("SeedCycle(bad) error = %v; want ErrDimensionMismatch", err)
	}
	if g.Initialized() {
		t.Error("failed SeedCycle marked grid initialized")
	}
	for _, v := range g.Snapshot() {
		if v[0] != 0 || v[1] != 0 {
			t.Fatal("failed SeedCycle mutated the grid")
		}
	}
}

// TestSeedCycle_SeedsAreCopied: later mutation of a seed never leaks in.
func TestSeedCycle_SeedsAreCopied(t *testing.T) {
	g, _ := grid.New(mustRect(t, "2x1"), 1)
	seed := []float64{7}
	_ = g.SeedCycle(seed)
	seed[0] = 99
	v, _ := g.At(0, 0)
	if v[0] != 7 {
		t.Errorf("cell tracks caller's seed slice: %v", v[0])
	}
}

//----------------------------------------------------------------------------//
// Access
//----------------------------------------------------------------------------//

// TestAtSet_BoundsAndDim exercises the sentinel errors.
func TestAtSet_BoundsAndDim(t *testing.T) {
	g, _ := grid.New(mustRect(t, "3x2"), 2)
	bad := [][2]int{{-1, 0}, {3, 0}, {0, -1}, {0, 2}}
	for _, xy := range bad {
		if _, err := g.At(xy[0], xy[1]); !errors.Is(err, grid.ErrOutOfRange) {
			t.Errorf("At(%d,%d) error = %v; want ErrOutOfRange", xy[0], xy[1], err)
		}
		if err := g.Set(xy[0], xy[1], []float64{1, 2}); !errors.Is(err, grid.ErrOutOfRange) {
			t.Errorf("Set(%d,%d) error = %v; want ErrOutOfRange", xy[0], xy[1], err)
		}
	}
	if err := g.Set(0, 0, []float64{1}); !errors.Is(err, grid.ErrDimensionMismatch) {
		t.Errorf("Set short vector error = %v; want ErrDimensionMismatch", err)
	}
}

// TestAt_LiveView documents the aliasing contract: At exposes the backing
// store, Set copies in.
func TestAt_LiveView(t *testing.T) {
	g, _ := grid.New(mustRect(t, "2x2"), 2)
	_ = g.SeedCycle([]float64{0, 0})

	v, _ := g.At(1, 1)
	v[0] = 3.5
	again, _ := g.At(1, 1)
	if again[0] != 3.5 {
		t.Error("At does not return a live view")
	}

	src := []float64{1, 2}
	_ = g.Set(0, 1, src)
	src[1] = 42
	w, _ := g.At(0, 1)
	if w[1] != 2 {
		t.Error("Set does not copy its input")
	}
}

// TestSnapshot_DeepCopy verifies snapshot isolation.
func TestSnapshot_DeepCopy(t *testing.T) {
	g, _ := grid.New(mustRect(t, "2x1"), 1)
	_ = g.SeedCycle([]float64{5})
	snap := g.Snapshot()
	snap[0][0] = -1
	v, _ := g.At(0, 0)
	if v[0] != 5 {
		t.Error("Snapshot aliases grid storage")
	}
}
