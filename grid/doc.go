// Package grid owns the 2-D array of prototype vectors a self-organizing
// map trains against.
//
// What:
//
//   - Grid: W×H cells, each holding one mutable prototype vector of fixed
//     length Z, backed by a single flat float64 array in enumeration order
//     (row-major: y outer, x inner).
//   - Randomize: fills every component uniformly from [-0.5, 0.5).
//   - SeedCycle: assigns caller-supplied seed vectors cyclically in
//     enumeration order (cell k gets seeds[k mod len(seeds)]).
//   - At / Set: bounds-checked cell access; At returns a live view into the
//     backing store, Set copies in.
//   - Snapshot: deep copy of all cells.
//   - NewRNG: the library-wide deterministic randomness policy.
//
// Why:
//
//   - The flat backing array keeps the training hot path free of per-step
//     allocations: the update rule mutates the slice views returned by At
//     in place.
//
// Complexity:
//
//   - At / Set: O(1) / O(Z).
//   - Randomize / SeedCycle / Snapshot: O(W×H×Z).
//
// Errors:
//
//   - ErrNilTopology, ErrNonPositiveDim: invalid construction input.
//   - ErrOutOfRange: coordinate outside [0,W)×[0,H).
//   - ErrDimensionMismatch: a vector of length ≠ Z where Z is required.
//   - ErrNoSeeds: SeedCycle called with no seed vectors.
package grid
