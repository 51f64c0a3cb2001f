// SPDX-License-Identifier: MIT

// Package batch provides the storage layer for batched rotation data.
//
// A batch pairs a Shape (the leading "batch" axes, of any rank) with a
// contiguous, row-major slice of fixed-size entities:
//
//   - Quaternions[T] - one Quat[T] = (w, x, y, z) per batch element,
//   - Matrices[T]    - one Mat3[T] (3×3, row-major) per batch element,
//   - Scalars[T]     - one T per batch element.
//
// Rank-0 shapes hold exactly one element; a zero-sized axis yields an empty
// batch. Element order is row-major over the shape, so the flat index of
// (i, j) in a (2, 3) batch is i*3 + j.
//
// Constructors copy their input and accessors return values, so a batch
// handed to an algorithm is never changed by it. Raw exposes the backing
// slice to code that has just allocated a batch and fills it in place.
//
// Shape problems (negative axes, wrong trailing entity size, mismatched
// operands) are contract errors: they are reported with the package
// sentinels from errors.go and never truncated or padded.
//
// Complexity:
//
//	Shape.Size, At and Set run in O(rank) or O(1).
//	Clone, Flat and the flat constructors run in O(n).
package batch
