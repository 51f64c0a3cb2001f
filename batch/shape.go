// SPDX-License-Identifier: MIT

package batch

import (
	"math"
	"strconv"
	"strings"
)

// Shape lists the sizes of the leading batch axes, outermost first.
// A nil or empty Shape is rank 0 and describes exactly one element.
type Shape []int

// ShapeOf returns a Shape with the given axis sizes.
func ShapeOf(dims ...int) Shape {
	return Shape(dims).Clone()
}

// ShapeFromVector builds a Shape from a runtime vector of axis sizes,
// e.g. dimensions computed by the caller or read from input.
// Implementation:
//   - Stage 1: convert each entry to int, rejecting values outside int range.
//   - Stage 2: validate the resulting shape.
//
// Errors:
//   - ErrBadShape for a negative axis, an entry that does not fit an int,
//     or an element count that overflows int.
//
// Complexity:
//   - Time O(rank), Space O(rank).
func ShapeFromVector[I Integer](dims []I) (Shape, error) {
	s := make(Shape, len(dims))
	var i int
	for i = 0; i < len(dims); i++ {
		// Negative values of signed types and huge unsigned values both land here.
		if dims[i] < 0 || uint64(dims[i]) > math.MaxInt {
			return nil, batchErrorf("ShapeFromVector", ErrBadShape)
		}
		s[i] = int(dims[i])
	}
	if err := s.Validate(); err != nil {
		return nil, batchErrorf("ShapeFromVector", err)
	}

	return s, nil
}

// Rank returns the number of batch axes.
func (s Shape) Rank() int { return len(s) }

// Size returns the number of elements described by s (1 for rank 0).
// The result is meaningful only for a shape that passes Validate.
func (s Shape) Size() int {
	n := 1
	for _, d := range s {
		n *= d
	}

	return n
}

// Validate reports ErrBadShape when an axis is negative or the element
// count overflows int.
// Complexity: O(rank).
func (s Shape) Validate() error {
	n := 1
	for _, d := range s {
		if d < 0 {
			return ErrBadShape
		}
		if d != 0 && n > math.MaxInt/d {
			return ErrBadShape
		}
		n *= d
	}

	return nil
}

// Equal reports whether s and o describe the same axes.
// Rank-0 shapes compare equal regardless of nil vs empty.
func (s Shape) Equal(o Shape) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if s[i] != o[i] {
			return false
		}
	}

	return true
}

// Clone returns an independent copy of s.
func (s Shape) Clone() Shape {
	if s == nil {
		return Shape{}
	}
	out := make(Shape, len(s))
	copy(out, s)

	return out
}

// Offset maps a multi-axis index to the row-major flat index.
// Errors: ErrDimensionMismatch when len(idx) != Rank, ErrOutOfRange when an
// index falls outside its axis.
// Complexity: O(rank).
func (s Shape) Offset(idx ...int) (int, error) {
	if len(idx) != len(s) {
		return 0, batchErrorf("Shape.Offset", ErrDimensionMismatch)
	}
	off := 0
	for k, d := range s {
		if idx[k] < 0 || idx[k] >= d {
			return 0, batchErrorf("Shape.Offset", ErrOutOfRange)
		}
		off = off*d + idx[k]
	}

	return off, nil
}

// Unravel maps a flat index back to its multi-axis index.
// It is the inverse of Offset; ErrOutOfRange when flat ∉ [0, Size).
func (s Shape) Unravel(flat int) ([]int, error) {
	if flat < 0 || flat >= s.Size() {
		return nil, batchErrorf("Shape.Unravel", ErrOutOfRange)
	}
	idx := make([]int, len(s))
	for k := len(s) - 1; k >= 0; k-- {
		idx[k] = flat % s[k]
		flat /= s[k]
	}

	return idx, nil
}

// String renders s as a tuple, e.g. "(2, 3)" or "()" for rank 0.
func (s Shape) String() string {
	parts := make([]string, len(s))
	for i, d := range s {
		parts[i] = strconv.Itoa(d)
	}

	return "(" + strings.Join(parts, ", ") + ")"
}

// with appends trailing entity axes to a copy of s.
func (s Shape) with(trailing ...int) Shape {
	out := make(Shape, 0, len(s)+len(trailing))
	out = append(out, s...)

	return append(out, trailing...)
}
