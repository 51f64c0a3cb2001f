// SPDX-License-Identifier: MIT

package batch

import (
	"fmt"
	"strings"
)

// elements is the storage shared by every batch kind: a shape and one
// entity per batch element in row-major order. len(data) == shape.Size().
type elements[E any] struct {
	shape Shape // leading batch axes
	data  []E   // flat backing storage
}

// newElements validates shape and copies data into fresh storage.
// A nil data slice allocates zero-valued elements.
func newElements[E any](tag string, shape Shape, data []E) (elements[E], error) {
	if err := shape.Validate(); err != nil {
		return elements[E]{}, batchErrorf(tag, err)
	}
	n := shape.Size()
	if data != nil && len(data) != n {
		return elements[E]{}, batchErrorf(tag, ErrDimensionMismatch)
	}
	buf := make([]E, n)
	copy(buf, data)

	return elements[E]{shape: shape.Clone(), data: buf}, nil
}

// Shape returns a copy of the batch shape.
func (b *elements[E]) Shape() Shape { return b.shape.Clone() }

// Rank returns the number of batch axes.
func (b *elements[E]) Rank() int { return len(b.shape) }

// Len returns the number of batch elements.
func (b *elements[E]) Len() int { return len(b.data) }

// At returns the element at flat index i. It panics when i is out of
// range, as slice indexing does; use AtIndex for checked access.
func (b *elements[E]) At(i int) E { return b.data[i] }

// AtIndex returns the element at a multi-axis index.
// Errors: ErrDimensionMismatch for a wrong index rank, ErrOutOfRange otherwise.
func (b *elements[E]) AtIndex(idx ...int) (E, error) {
	var zero E
	off, err := b.shape.Offset(idx...)
	if err != nil {
		return zero, err
	}

	return b.data[off], nil
}

// Set assigns v at flat index i.
// Errors: ErrOutOfRange when i ∉ [0, Len).
func (b *elements[E]) Set(i int, v E) error {
	if i < 0 || i >= len(b.data) {
		return batchErrorf(fmt.Sprintf("Set(%d)", i), ErrOutOfRange)
	}
	b.data[i] = v

	return nil
}

// Elements returns a copy of all elements in row-major order.
func (b *elements[E]) Elements() []E {
	out := make([]E, len(b.data))
	copy(out, b.data)

	return out
}

// Raw returns the backing slice. Writes through it change the batch, so it
// is meant for code that has just allocated the batch and fills it in place.
func (b *elements[E]) Raw() []E { return b.data }

// clone deep-copies storage.
func (b *elements[E]) clone() elements[E] {
	buf := make([]E, len(b.data))
	copy(buf, b.data)

	return elements[E]{shape: b.shape.Clone(), data: buf}
}

// format renders one element per line, prefixed with its multi-axis index.
func (b *elements[E]) format() string {
	var sb strings.Builder
	sb.WriteString("shape=" + b.shape.String() + "\n")
	for i, e := range b.data {
		idx, _ := b.shape.Unravel(i) // i < Size by construction
		fmt.Fprintf(&sb, "%v: %v\n", idx, e)
	}

	return sb.String()
}
