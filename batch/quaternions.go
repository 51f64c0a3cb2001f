// SPDX-License-Identifier: MIT

package batch

// Quaternions is a batch of quaternions with leading shape Shape().
type Quaternions[T Float] struct {
	elements[Quat[T]]
}

// NewQuaternions creates a batch of the given shape holding a copy of data.
// A nil data slice yields a zero-filled batch.
// Implementation:
//   - Stage 1: validate shape (ErrBadShape).
//   - Stage 2: check len(data) == shape.Size() (ErrDimensionMismatch).
//   - Stage 3: copy data into fresh storage.
//
// Complexity:
//   - Time O(n), Space O(n).
func NewQuaternions[T Float](shape Shape, data []Quat[T]) (*Quaternions[T], error) {
	e, err := newElements("NewQuaternions", shape, data)
	if err != nil {
		return nil, err
	}

	return &Quaternions[T]{elements: e}, nil
}

// ZeroQuaternions allocates a zero-filled batch of the given shape.
func ZeroQuaternions[T Float](shape Shape) (*Quaternions[T], error) {
	return NewQuaternions[T](shape, nil)
}

// SingleQuaternion wraps one quaternion into a rank-0 batch.
func SingleQuaternion[T Float](q Quat[T]) *Quaternions[T] {
	return &Quaternions[T]{elements: elements[Quat[T]]{shape: Shape{}, data: []Quat[T]{q}}}
}

// QuaternionsFromFlat ingests a flat buffer whose full shape is
// batch axes followed by a trailing axis of size 4.
// Errors:
//   - ErrBadShape for an invalid full shape.
//   - ErrDimensionMismatch when the full shape is rank 0, its trailing axis
//     is not 4, or len(flat) != fullShape.Size().
//
// Complexity: O(n).
func QuaternionsFromFlat[T Float](fullShape Shape, flat []T) (*Quaternions[T], error) {
	const tag = "QuaternionsFromFlat"
	if err := fullShape.Validate(); err != nil {
		return nil, batchErrorf(tag, err)
	}
	if len(fullShape) < 1 || fullShape[len(fullShape)-1] != QuatLen {
		return nil, batchErrorf(tag, ErrDimensionMismatch)
	}
	if len(flat) != fullShape.Size() {
		return nil, batchErrorf(tag, ErrDimensionMismatch)
	}
	lead := fullShape[:len(fullShape)-1]
	data := make([]Quat[T], lead.Size())
	for i := range data {
		copy(data[i][:], flat[i*QuatLen:(i+1)*QuatLen])
	}

	return &Quaternions[T]{elements: elements[Quat[T]]{shape: lead.Clone(), data: data}}, nil
}

// FullShape returns the batch shape with the trailing quaternion axis appended.
func (q *Quaternions[T]) FullShape() Shape { return q.shape.with(QuatLen) }

// Flat returns a copy of all components as one row-major buffer.
func (q *Quaternions[T]) Flat() []T {
	out := make([]T, 0, len(q.data)*QuatLen)
	for _, e := range q.data {
		out = append(out, e[:]...)
	}

	return out
}

// Clone returns a deep copy of the batch.
func (q *Quaternions[T]) Clone() *Quaternions[T] {
	return &Quaternions[T]{elements: q.clone()}
}

// String implements fmt.Stringer for debugging.
func (q *Quaternions[T]) String() string { return q.format() }
