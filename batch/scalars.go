// SPDX-License-Identifier: MIT

package batch

// Scalars is a batch holding one value per element (e.g. rotation angles).
type Scalars[T Float] struct {
	elements[T]
}

// NewScalars creates a batch of the given shape holding a copy of data.
// Errors: ErrBadShape, ErrDimensionMismatch.
func NewScalars[T Float](shape Shape, data []T) (*Scalars[T], error) {
	e, err := newElements("NewScalars", shape, data)
	if err != nil {
		return nil, err
	}

	return &Scalars[T]{elements: e}, nil
}

// Clone returns a deep copy of the batch.
func (s *Scalars[T]) Clone() *Scalars[T] {
	return &Scalars[T]{elements: s.clone()}
}

// String implements fmt.Stringer for debugging.
func (s *Scalars[T]) String() string { return s.format() }
