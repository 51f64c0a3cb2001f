// SPDX-License-Identifier: MIT
// Package batch_test contains unit tests for batch shapes.
package batch_test

import (
	"testing"

	"github.com/katalvlaran/quat2rot/batch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestShape_Size covers rank 0, empty axes and ordinary shapes.
func TestShape_Size(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		shape batch.Shape
		want  int
	}{
		{"nil is rank 0", nil, 1},
		{"empty is rank 0", batch.Shape{}, 1},
		{"vector", batch.ShapeOf(5), 5},
		{"3x4x5", batch.ShapeOf(3, 4, 5), 60},
		{"zero axis", batch.ShapeOf(2, 0, 3), 0},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			require.NoError(t, tc.shape.Validate())
			assert.Equal(t, tc.want, tc.shape.Size())
		})
	}
}

// TestShape_Validate rejects negative axes and overflowing element counts.
func TestShape_Validate(t *testing.T) {
	t.Parallel()

	assert.ErrorIs(t, batch.ShapeOf(2, -1).Validate(), batch.ErrBadShape)
	huge := int(^uint(0) >> 2)
	assert.ErrorIs(t, batch.ShapeOf(huge, huge).Validate(), batch.ErrBadShape)
}

// TestShapeFromVector checks the runtime dimension-vector path.
func TestShapeFromVector(t *testing.T) {
	t.Parallel()

	s, err := batch.ShapeFromVector([]int32{2, 1, 3})
	require.NoError(t, err)
	assert.True(t, s.Equal(batch.ShapeOf(2, 1, 3)))

	s, err = batch.ShapeFromVector([]uint8{})
	require.NoError(t, err)
	assert.Equal(t, 0, s.Rank())

	_, err = batch.ShapeFromVector([]int64{4, -2})
	assert.ErrorIs(t, err, batch.ErrBadShape)
}

// TestShape_OffsetUnravel verifies row-major indexing round-trips.
func TestShape_OffsetUnravel(t *testing.T) {
	t.Parallel()

	s := batch.ShapeOf(2, 3, 4)
	off, err := s.Offset(1, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, 1*12+2*4+3, off)

	for flat := 0; flat < s.Size(); flat++ {
		idx, err := s.Unravel(flat)
		require.NoError(t, err)
		back, err := s.Offset(idx...)
		require.NoError(t, err)
		assert.Equal(t, flat, back)
	}

	_, err = s.Offset(1, 2)
	assert.ErrorIs(t, err, batch.ErrDimensionMismatch)
	_, err = s.Offset(2, 0, 0)
	assert.ErrorIs(t, err, batch.ErrOutOfRange)
	_, err = s.Unravel(24)
	assert.ErrorIs(t, err, batch.ErrOutOfRange)
}

// TestShape_String renders tuples.
func TestShape_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "()", batch.Shape{}.String())
	assert.Equal(t, "(2, 3)", batch.ShapeOf(2, 3).String())
}
