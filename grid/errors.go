package grid

import "errors"

// Sentinel errors for grid operations. All are matched with errors.Is;
// public methods return them rather than panic on user input.
var (
	// ErrNilTopology indicates a nil Topology passed to New.
	ErrNilTopology = errors.New("grid: topology is nil")

	// ErrNonPositiveDim indicates an input dimension below 1.
	ErrNonPositiveDim = errors.New("grid: input dimension must be positive")

	// ErrOutOfRange indicates a coordinate outside [0,W)×[0,H).
	ErrOutOfRange = errors.New("grid: coordinate out of range")

	// ErrDimensionMismatch indicates a vector whose length differs from the
	// grid's input dimension Z.
	ErrDimensionMismatch = errors.New("grid: vector length differs from grid dimension")

	// ErrNoSeeds indicates SeedCycle was called without seed vectors.
	ErrNoSeeds = errors.New("grid: at least one seed vector required")
)
