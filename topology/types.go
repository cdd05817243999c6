// Package topology core types and sentinel errors.
package topology

import "errors"

// Sentinel errors for topology construction.
var (
	// ErrDimFormat indicates a dimension string not of the form "WxH"
	// (two base-10 integers separated by a lowercase 'x').
	ErrDimFormat = errors.New("topology: output dimension must be of form WxH")

	// ErrNonPositiveDim indicates a dimension below 1.
	ErrNonPositiveDim = errors.New("topology: dimensions must be positive")
)

// Coord identifies one cell of the output grid.
type Coord struct {
	X, Y int
}

// Neighbor is a cell tagged with its planar distance to some center cell.
// It is produced by Within and consumed immediately by the update step.
type Neighbor struct {
	Coord

	// Distance is the planar (topology-specific) distance to the center.
	Distance float64
}

// Topology enumerates the cells of a fixed output grid and measures planar
// distance between them. Implementations are immutable once built.
type Topology interface {
	// Coords returns every cell coordinate in enumeration order
	// (row-major: y outer, x inner). The returned slice is shared;
	// callers must treat it as read-only.
	Coords() []Coord

	// Distance returns the planar distance between two cells.
	// It is 0 only for identical coordinates and symmetric in its arguments.
	Distance(a, b Coord) float64

	// Bounds returns the grid extents (width, height).
	Bounds() (w, h int)

	// Spec returns the original dimension specification the topology was
	// constructed from (e.g. "5x6" for rectangular, "4" for hexagonal).
	Spec() string
}

// Within returns every cell of t whose planar distance to center is at most
// radius, in enumeration order, each tagged with that distance. The center
// itself is always included (self-distance is 0) for any radius >= 0.
//
// Complexity: O(W×H) time, O(k) memory for k matching cells.
func Within(t Topology, center Coord, radius float64) []Neighbor {
	var out []Neighbor
	for _, c := range t.Coords() {
		if d := t.Distance(center, c); d <= radius {
			out = append(out, Neighbor{Coord: c, Distance: d})
		}
	}
	return out
}
