// Package topology defines the grid-topology strategies used by the
// self-organizing map: how the cells of an output grid are enumerated and
// how far apart two cells are on the plane.
//
// What:
//
//   - Topology: the strategy interface (Coords, Distance, Bounds, Spec).
//   - Rectangular: the full [0,W)×[0,H) cross product; planar distance is
//     straight Euclidean distance on integer coordinates. Constructed from
//     a "WxH" dimension string.
//   - Hexagonal: an n×n rhombus of hexagonal cells in odd-q offset
//     coordinates; planar distance is the cube-coordinate hex distance,
//     so every interior cell has six equidistant nearest neighbors.
//   - Within: the shared neighborhood scan returning every cell within a
//     given planar radius of a center cell.
//
// Why:
//
//   - The training loop never needs to know which lattice it runs on; it
//     asks a Topology for neighborhoods and distances and injects the
//     answer into the update rule.
//
// Enumeration order is row-major everywhere (y outer, x inner) and is the
// single deterministic order the whole library relies on: seed cycling,
// best-matching-unit tie-breaking, snapshots and renderings all follow it.
//
// Complexity:
//
//   - Coords: O(1) (precomputed at construction).
//   - Distance: O(1).
//   - Within: O(W×H) per call.
//
// Errors:
//
//   - ErrDimFormat: dimension string is not of the form "WxH".
//   - ErrNonPositiveDim: a parsed or given dimension is < 1.
package topology
