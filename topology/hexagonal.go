package topology

import "strconv"

// Hexagonal is an n×n rhombus of hexagonal cells addressed in odd-q offset
// coordinates (columns shoved down on odd x). Planar distance is the
// standard cube-coordinate hex distance, measured in grid steps: every
// interior cell has exactly six equidistant nearest neighbors at distance 1,
// the metric is 0 only for identical cells and symmetric.
type Hexagonal struct {
	size   int
	coords []Coord
}

// NewHexagonal builds a hexagonal topology of the given size (an n×n
// rhombus of cells). Returns ErrNonPositiveDim for size < 1.
func NewHexagonal(size int) (*Hexagonal, error) {
	if size < 1 {
		return nil, ErrNonPositiveDim
	}
	return &Hexagonal{
		size:   size,
		coords: enumerate(size, size),
	}, nil
}

// Coords implements Topology. Same row-major order as the rectangular grid.
func (h *Hexagonal) Coords() []Coord { return h.coords }

// Distance implements Topology: offset coordinates are converted to cube
// coordinates and the hex distance is (|dx|+|dy|+|dz|)/2.
func (h *Hexagonal) Distance(a, b Coord) float64 {
	ax, ay, az := cubeFromOffset(a)
	bx, by, bz := cubeFromOffset(b)
	return float64(absInt(ax-bx)+absInt(ay-by)+absInt(az-bz)) / 2
}

// Bounds implements Topology.
func (h *Hexagonal) Bounds() (int, int) { return h.size, h.size }

// Spec implements Topology, returning the size as decimal string.
func (h *Hexagonal) Spec() string { return strconv.Itoa(h.size) }

// cubeFromOffset maps odd-q offset coordinates to cube coordinates.
func cubeFromOffset(c Coord) (x, y, z int) {
	x = c.X
	z = c.Y - (c.X-(c.X&1))/2
	y = -x - z
	return x, y, z
}

// absInt returns the absolute value of an int.
func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
