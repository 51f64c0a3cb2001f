// SPDX-License-Identifier: MIT
// Package rotation_test contains unit tests for the quaternion algebra.
package rotation_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/quat2rot/batch"
	"github.com/katalvlaran/quat2rot/rotation"
	"github.com/stretchr/testify/require"
)

// TestConjugateQuaternion negates the vector part only.
func TestConjugateQuaternion(t *testing.T) {
	t.Parallel()

	q := mustQuaternions(t, batch.ShapeOf(2),
		batch.Quat[float64]{1, 2, 3, 4},
		batch.Quat[float64]{-0.5, 0, -1, 0.25},
	)
	c, err := rotation.ConjugateQuaternion(q)
	require.NoError(t, err)
	require.Equal(t, []batch.Quat[float64]{{1, -2, -3, -4}, {-0.5, 0, 1, -0.25}}, c.Elements())

	// input untouched
	require.Equal(t, batch.Quat[float64]{1, 2, 3, 4}, q.At(0))
}

// TestInvertQuaternion checks q·q⁻¹ = 1 for non-unit input.
func TestInvertQuaternion(t *testing.T) {
	t.Parallel()

	q := batch.SingleQuaternion(batch.Quat[float64]{0.9, 0.1, -0.2, 0.3})
	inv, err := rotation.InvertQuaternion(q)
	require.NoError(t, err)

	// inverse is unit norm
	require.NoError(t, rotation.CheckQuaternionNormalized(inv, tol64))

	// unit(q) · inv = identity
	u, err := rotation.InvertQuaternion(inv)
	require.NoError(t, err)
	prod, err := rotation.MultiplyQuaternions(u, inv)
	require.NoError(t, err)
	requireQuatNear(t, batch.Quat[float64]{1, 0, 0, 0}, prod.At(0), tol64)
}

// TestMultiplyQuaternions_MatchesMatrixProduct checks R(a·b) = R(a)·R(b).
func TestMultiplyQuaternions_MatchesMatrixProduct(t *testing.T) {
	t.Parallel()

	a, err := rotation.RandomUniformQuaternion[float64](batch.ShapeOf(16), rotation.WithSeed(1))
	require.NoError(t, err)
	b, err := rotation.RandomUniformQuaternion[float64](batch.ShapeOf(16), rotation.WithSeed(2))
	require.NoError(t, err)

	ab, err := rotation.MultiplyQuaternions(a, b)
	require.NoError(t, err)
	rab, err := rotation.QuaternionToMatrix(ab)
	require.NoError(t, err)
	ra, err := rotation.QuaternionToMatrix(a)
	require.NoError(t, err)
	rb, err := rotation.QuaternionToMatrix(b)
	require.NoError(t, err)

	for n := 0; n < ab.Len(); n++ {
		x, y := ra.At(n), rb.At(n)
		var want batch.Mat3[float64]
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				for k := 0; k < 3; k++ {
					want[i][j] += x[i][k] * y[k][j]
				}
			}
		}
		requireMatNear(t, want, rab.At(n), tol64)
	}
}

// TestMultiplyQuaternions_Basis checks Hamilton's i·j = k and j·i = -k.
func TestMultiplyQuaternions_Basis(t *testing.T) {
	t.Parallel()

	i := batch.SingleQuaternion(batch.Quat[float64]{0, 1, 0, 0})
	j := batch.SingleQuaternion(batch.Quat[float64]{0, 0, 1, 0})

	ij, err := rotation.MultiplyQuaternions(i, j)
	require.NoError(t, err)
	require.Equal(t, batch.Quat[float64]{0, 0, 0, 1}, ij.At(0))

	ji, err := rotation.MultiplyQuaternions(j, i)
	require.NoError(t, err)
	require.Equal(t, batch.Quat[float64]{0, 0, 0, -1}, ji.At(0))
}

// TestMultiplyQuaternions_Errors covers nil operands and shape mismatch.
func TestMultiplyQuaternions_Errors(t *testing.T) {
	t.Parallel()

	a := mustQuaternions[float64](t, batch.ShapeOf(2), batch.Quat[float64]{1}, batch.Quat[float64]{1})
	b := mustQuaternions[float64](t, batch.ShapeOf(1, 2), batch.Quat[float64]{1}, batch.Quat[float64]{1})

	_, err := rotation.MultiplyQuaternions(a, b)
	require.ErrorIs(t, err, batch.ErrShapeMismatch)

	_, err = rotation.MultiplyQuaternions(a, nil)
	require.ErrorIs(t, err, batch.ErrNilBatch)
}

// TestQuaternionRotationAngle covers known angles and the shape of the output.
func TestQuaternionRotationAngle(t *testing.T) {
	t.Parallel()

	q := mustQuaternions(t, batch.ShapeOf(2, 2),
		batch.Quat[float64]{1, 0, 0, 0},
		axisAngle(math.Pi/2, 0, 0, 1),
		axisAngle(1.25, 0.6, 0, 0.8),
		batch.Quat[float64]{0, 1, 0, 0},
	)
	angles, err := rotation.QuaternionRotationAngle(q)
	require.NoError(t, err)
	require.True(t, batch.ShapeOf(2, 2).Equal(angles.Shape()))

	want := []float64{0, math.Pi / 2, 1.25, math.Pi}
	for i, w := range want {
		require.InDelta(t, w, angles.At(i), tol64, "element %d", i)
	}
}

// TestQuaternionRotationAngle_ThroughMatrix checks that the angle survives
// a matrix round trip, including the flips.
func TestQuaternionRotationAngle_ThroughMatrix(t *testing.T) {
	t.Parallel()

	for _, tc := range flips {
		q, err := rotation.MatrixToQuaternion(batch.SingleMatrix(tc.m))
		require.NoError(t, err)
		a, err := rotation.QuaternionRotationAngle(q)
		require.NoError(t, err)
		require.InDelta(t, math.Pi, a.At(0), tol64, tc.name)
	}
}
