// SPDX-License-Identifier: MIT

package batch

// Matrices is a batch of 3×3 matrices with leading shape Shape().
type Matrices[T Float] struct {
	elements[Mat3[T]]
}

// NewMatrices creates a batch of the given shape holding a copy of data.
// A nil data slice yields a zero-filled batch.
// Errors: ErrBadShape, ErrDimensionMismatch (len(data) != shape.Size()).
// Complexity: O(n).
func NewMatrices[T Float](shape Shape, data []Mat3[T]) (*Matrices[T], error) {
	e, err := newElements("NewMatrices", shape, data)
	if err != nil {
		return nil, err
	}

	return &Matrices[T]{elements: e}, nil
}

// ZeroMatrices allocates a zero-filled batch of the given shape.
func ZeroMatrices[T Float](shape Shape) (*Matrices[T], error) {
	return NewMatrices[T](shape, nil)
}

// SingleMatrix wraps one matrix into a rank-0 batch.
func SingleMatrix[T Float](m Mat3[T]) *Matrices[T] {
	return &Matrices[T]{elements: elements[Mat3[T]]{shape: Shape{}, data: []Mat3[T]{m}}}
}

// MatricesFromFlat ingests a flat row-major buffer whose full shape is
// batch axes followed by trailing axes (3, 3).
// Errors:
//   - ErrBadShape for an invalid full shape.
//   - ErrDimensionMismatch when the trailing axes are not (3, 3) or
//     len(flat) != fullShape.Size().
//
// Complexity: O(n).
func MatricesFromFlat[T Float](fullShape Shape, flat []T) (*Matrices[T], error) {
	const tag = "MatricesFromFlat"
	if err := fullShape.Validate(); err != nil {
		return nil, batchErrorf(tag, err)
	}
	r := len(fullShape)
	if r < 2 || fullShape[r-2] != MatDim || fullShape[r-1] != MatDim {
		return nil, batchErrorf(tag, ErrDimensionMismatch)
	}
	if len(flat) != fullShape.Size() {
		return nil, batchErrorf(tag, ErrDimensionMismatch)
	}
	lead := fullShape[:r-2]
	data := make([]Mat3[T], lead.Size())
	var i, row int
	for i = range data {
		base := i * MatLen
		for row = 0; row < MatDim; row++ {
			copy(data[i][row][:], flat[base+row*MatDim:base+(row+1)*MatDim])
		}
	}

	return &Matrices[T]{elements: elements[Mat3[T]]{shape: lead.Clone(), data: data}}, nil
}

// FullShape returns the batch shape with the trailing (3, 3) axes appended.
func (m *Matrices[T]) FullShape() Shape { return m.shape.with(MatDim, MatDim) }

// Flat returns a copy of all entries as one row-major buffer.
func (m *Matrices[T]) Flat() []T {
	out := make([]T, 0, len(m.data)*MatLen)
	for _, e := range m.data {
		for _, row := range e {
			out = append(out, row[:]...)
		}
	}

	return out
}

// Clone returns a deep copy of the batch.
func (m *Matrices[T]) Clone() *Matrices[T] {
	return &Matrices[T]{elements: m.clone()}
}

// String implements fmt.Stringer for debugging.
func (m *Matrices[T]) String() string { return m.format() }
