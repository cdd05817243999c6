// Package vectormath provides the distance primitives shared by the
// self-organizing-map packages.
//
// What:
//
//   - Euclidean: L2 distance between two equal-length vectors.
//   - SquaredEuclidean: the squared variant, monotone in the Euclidean
//     distance, for comparison-only hot paths (best-matching-unit scans).
//
// Why:
//
//   - BMU search compares tens of thousands of vector pairs per training
//     run; skipping the square root where only ordering matters keeps the
//     scan cheap without changing any observable result.
//
// Complexity:
//
//   - Euclidean / SquaredEuclidean: O(Z) time, O(1) memory (Z = vector length).
//
// Errors:
//
//   - ErrLengthMismatch: the two vectors differ in length. Mismatched
//     lengths are always an explicit error, never a silent truncation.
package vectormath
