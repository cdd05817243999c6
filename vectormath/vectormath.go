package vectormath

import (
	"errors"
	"math"
)

// ErrLengthMismatch indicates that two vectors of differing lengths were
// passed where equal lengths are required.
var ErrLengthMismatch = errors.New("vectormath: vector lengths differ")

// Euclidean returns the Euclidean (L2) distance between v and w:
// sqrt(Σ (v_i - w_i)²). Returns ErrLengthMismatch when len(v) != len(w).
//
// Complexity: O(Z) time, O(1) memory.
func Euclidean(v, w []float64) (float64, error) {
	sq, err := SquaredEuclidean(v, w)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(sq), nil
}

// SquaredEuclidean returns the squared Euclidean distance between v and w.
// It preserves the ordering of Euclidean and avoids the square root, which
// makes it the metric of choice for nearest-prototype scans.
// Returns ErrLengthMismatch when len(v) != len(w).
//
// Complexity: O(Z) time, O(1) memory, no allocations.
func SquaredEuclidean(v, w []float64) (float64, error) {
	if len(v) != len(w) {
		return 0, ErrLengthMismatch
	}
	var sum float64
	for i := range v {
		d := v[i] - w[i]
		sum += d * d
	}
	return sum, nil
}
