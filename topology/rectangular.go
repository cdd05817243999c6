package topology

import (
	"math"
	"strconv"
	"strings"
)

// Rectangular is the plain W×H lattice. Planar distance between two cells is
// the Euclidean distance on their integer coordinates, so the four
// orthogonal neighbors of a cell sit at distance 1 and the diagonals at √2.
type Rectangular struct {
	width, height int
	spec          string
	coords        []Coord
}

// NewRectangular builds a rectangular topology from a "WxH" dimension
// string: two positive base-10 integers separated by a lowercase 'x'.
// Returns ErrDimFormat for malformed input and ErrNonPositiveDim for
// dimensions below 1.
func NewRectangular(spec string) (*Rectangular, error) {
	w, h, err := parseRectSpec(spec)
	if err != nil {
		return nil, err
	}
	return &Rectangular{
		width:  w,
		height: h,
		spec:   spec,
		coords: enumerate(w, h),
	}, nil
}

// Coords implements Topology. Row-major order: y outer, x inner.
func (r *Rectangular) Coords() []Coord { return r.coords }

// Distance implements Topology: sqrt((x1-x2)² + (y1-y2)²).
func (r *Rectangular) Distance(a, b Coord) float64 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// Bounds implements Topology.
func (r *Rectangular) Bounds() (int, int) { return r.width, r.height }

// Spec implements Topology, returning the original "WxH" string.
func (r *Rectangular) Spec() string { return r.spec }

// parseRectSpec splits "WxH" into its two positive dimensions.
func parseRectSpec(spec string) (int, int, error) {
	ws, hs, ok := strings.Cut(spec, "x")
	if !ok || strings.Contains(hs, "x") {
		return 0, 0, ErrDimFormat
	}
	w, err := strconv.Atoi(ws)
	if err != nil {
		return 0, 0, ErrDimFormat
	}
	h, err := strconv.Atoi(hs)
	if err != nil {
		return 0, 0, ErrDimFormat
	}
	if w < 1 || h < 1 {
		return 0, 0, ErrNonPositiveDim
	}
	return w, h, nil
}

// enumerate precomputes the row-major coordinate list for a w×h grid.
func enumerate(w, h int) []Coord {
	coords := make([]Coord, 0, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			coords = append(coords, Coord{X: x, Y: y})
		}
	}
	return coords
}
