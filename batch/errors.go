// SPDX-License-Identifier: MIT
// Package batch: sentinel error set.
// Every message is prefixed with "batch: ..." so it can be grepped in logs.
// Call sites wrap with fmt.Errorf("tag: %w", ErrX); callers match with errors.Is.

package batch

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when a shape has a negative axis or its
	// element count overflows int.
	ErrBadShape = errors.New("batch: invalid shape")

	// ErrDimensionMismatch indicates that a flat buffer or a trailing entity
	// axis does not match the expected size (e.g. a 5-vector where a
	// quaternion is expected).
	ErrDimensionMismatch = errors.New("batch: dimension mismatch")

	// ErrShapeMismatch indicates that two operands have different batch shapes.
	ErrShapeMismatch = errors.New("batch: batch shapes differ")

	// ErrOutOfRange indicates that a flat or multi-axis index is outside the shape.
	ErrOutOfRange = errors.New("batch: index out of range")

	// ErrNilBatch indicates that a nil batch was passed where one is required.
	ErrNilBatch = errors.New("batch: nil batch")
)

// batchErrorf wraps an underlying sentinel with a call-site tag.
func batchErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
