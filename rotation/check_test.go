// SPDX-License-Identifier: MIT
// Package rotation_test contains unit tests for the validation gates.
package rotation_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/quat2rot/batch"
	"github.com/katalvlaran/quat2rot/rotation"
	"github.com/stretchr/testify/require"
)

// TestCheckQuaternionNormalized covers passing, failing and tolerance-edge inputs.
func TestCheckQuaternionNormalized(t *testing.T) {
	t.Parallel()

	s := math.Sqrt(0.5)
	tests := []struct {
		name    string
		q       batch.Quat[float64]
		tol     float64
		wantErr error
	}{
		{"identity", batch.Quat[float64]{1, 0, 0, 0}, 1e-9, nil},
		{"quarter turn", batch.Quat[float64]{s, 0, 0, s}, 1e-9, nil},
		{"negative scalar", batch.Quat[float64]{-1, 0, 0, 0}, 1e-9, nil},
		{"short", batch.Quat[float64]{0.99, 0, 0, 0}, 1e-9, rotation.ErrNotNormalized},
		{"long", batch.Quat[float64]{1, 1, 0, 0}, 1e-9, rotation.ErrNotNormalized},
		{"zero", batch.Quat[float64]{}, 1e-9, rotation.ErrNotNormalized},
		{"NaN", batch.Quat[float64]{math.NaN(), 0, 0, 0}, 1e-9, rotation.ErrNotNormalized},
		{"inside loose tol", batch.Quat[float64]{0.99, 0, 0, 0}, 0.02, nil},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := rotation.CheckQuaternionNormalized(batch.SingleQuaternion(tc.q), tc.tol)
			if tc.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				require.Truef(t, errors.Is(err, tc.wantErr),
					"expected errors.Is(%v, %v)", err, tc.wantErr)
				require.ErrorIs(t, err, rotation.ErrValidation)
			}
		})
	}
}

// TestCheckRotationMatrixValid covers rotations, reflections, scalings and shears.
func TestCheckRotationMatrixValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		m       batch.Mat3[float64]
		wantErr error
	}{
		{"identity", batch.Identity3[float64](), nil},
		{"flip about z", flips[0].m, nil},
		{"quarter turn", batch.Mat3[float64]{{0, -1, 0}, {1, 0, 0}, {0, 0, 1}}, nil},
		{"reflection", batch.Mat3[float64]{{-1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, rotation.ErrInvalidRotation},
		{"scaled", batch.Mat3[float64]{{2, 0, 0}, {0, 1, 0}, {0, 0, 1}}, rotation.ErrInvalidRotation},
		// det = 1 but not orthogonal
		{"shear", batch.Mat3[float64]{{1, 0.5, 0}, {0, 1, 0}, {0, 0, 1}}, rotation.ErrInvalidRotation},
		{"zero", batch.Mat3[float64]{}, rotation.ErrInvalidRotation},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := rotation.CheckRotationMatrixValid(batch.SingleMatrix(tc.m), rotation.DefaultTolerance64)
			if tc.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, tc.wantErr)
				require.ErrorIs(t, err, rotation.ErrValidation)
			}
		})
	}
}

// TestValidationError_ReportsAllIndices checks that every failing element is
// listed in ascending order with its position in the message.
func TestValidationError_ReportsAllIndices(t *testing.T) {
	t.Parallel()

	id := batch.Quat[float64]{1, 0, 0, 0}
	bad := batch.Quat[float64]{0.5, 0, 0, 0}
	q := mustQuaternions(t, batch.ShapeOf(2, 3), id, bad, id, id, id, bad)

	err := rotation.CheckQuaternionNormalized(q, 1e-9)
	var verr *rotation.ValidationError
	require.True(t, errors.As(err, &verr))
	require.Equal(t, []int{1, 5}, verr.Indices)
	require.True(t, batch.ShapeOf(2, 3).Equal(verr.Shape))
	require.Equal(t, rotation.ErrNotNormalized, verr.Kind)
	require.Contains(t, err.Error(), "2 of 6 batch element(s)")
	require.Contains(t, err.Error(), "first at [0 1]")
}

// TestValidationError_ManyChunks checks failure collection across chunk
// boundaries with parallel workers.
func TestValidationError_ManyChunks(t *testing.T) {
	t.Parallel()

	const n = 10000
	data := make([]batch.Quat[float64], n)
	want := []int{0, 4095, 4096, 9999}
	for i := range data {
		data[i] = batch.Quat[float64]{1, 0, 0, 0}
	}
	for _, i := range want {
		data[i] = batch.Quat[float64]{2, 0, 0, 0}
	}
	q := mustQuaternions(t, batch.ShapeOf(n), data...)

	for _, workers := range []int{0, 1, 3, 8} {
		_, err := rotation.AssertQuaternionNormalized(q, rotation.WithWorkers(workers))
		var verr *rotation.ValidationError
		require.True(t, errors.As(err, &verr), "workers=%d", workers)
		require.Equal(t, want, verr.Indices, "workers=%d", workers)
	}
}

// TestAssertGates checks the pass-through behavior of the Assert forms.
func TestAssertGates(t *testing.T) {
	t.Parallel()

	q := batch.SingleQuaternion(batch.Quat[float32]{1, 0, 0, 0})
	got, err := rotation.AssertQuaternionNormalized(q)
	require.NoError(t, err)
	require.Same(t, q, got)

	// 1 + 1e-6 passes an explicit 1e-5 tolerance but fails the float64 default
	near := batch.SingleQuaternion(batch.Quat[float64]{1 + 1e-6, 0, 0, 0})
	_, err = rotation.AssertQuaternionNormalized(near, rotation.WithTolerance(1e-5))
	require.NoError(t, err)
	gotNear, err := rotation.AssertQuaternionNormalized(near)
	require.ErrorIs(t, err, rotation.ErrNotNormalized)
	require.Nil(t, gotNear)

	r := batch.SingleMatrix(batch.Identity3[float64]())
	gotR, err := rotation.AssertRotationMatrixValid(r)
	require.NoError(t, err)
	require.Same(t, r, gotR)

	_, err = rotation.AssertRotationMatrixValid(batch.SingleMatrix(batch.Mat3[float64]{}))
	require.ErrorIs(t, err, rotation.ErrInvalidRotation)

	_, err = rotation.AssertRotationMatrixValid[float64](nil)
	require.ErrorIs(t, err, batch.ErrNilBatch)
}

// TestCheck_InvalidTolerancePanics mirrors the WithTolerance guard.
func TestCheck_InvalidTolerancePanics(t *testing.T) {
	t.Parallel()

	q := batch.SingleQuaternion(batch.Quat[float64]{1, 0, 0, 0})
	require.Panics(t, func() { _ = rotation.CheckQuaternionNormalized(q, -1) })
	require.Panics(t, func() { _ = rotation.CheckQuaternionNormalized(q, math.NaN()) })

	r := batch.SingleMatrix(batch.Identity3[float64]())
	require.Panics(t, func() { _ = rotation.CheckRotationMatrixValid(r, math.Inf(1)) })
}
