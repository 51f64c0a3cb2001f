// SPDX-License-Identifier: MIT
// Package rotation_test contains shared test helpers.
//
// Purpose:
//   - Small, deterministic fixtures (axis flips, hand-built rotations).
//   - Component-wise closeness assertions for quaternions and matrices.

package rotation_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/quat2rot/batch"
	"github.com/stretchr/testify/require"
)

const (
	tol64 = 1e-9 // round-trip tolerance for float64 batches
	tol32 = 1e-4 // round-trip tolerance for float32 batches
	seed  = 20241019
)

// flips holds the three 180° rotations about the coordinate axes, in the
// order z, x, y, together with the absolute quaternion each one maps to.
var flips = []struct {
	name string
	m    batch.Mat3[float64]
	abs  batch.Quat[float64]
}{
	{"about z", batch.Mat3[float64]{{-1, 0, 0}, {0, -1, 0}, {0, 0, 1}}, batch.Quat[float64]{0, 0, 0, 1}},
	{"about x", batch.Mat3[float64]{{1, 0, 0}, {0, -1, 0}, {0, 0, -1}}, batch.Quat[float64]{0, 1, 0, 0}},
	{"about y", batch.Mat3[float64]{{-1, 0, 0}, {0, 1, 0}, {0, 0, -1}}, batch.Quat[float64]{0, 0, 1, 0}},
}

// axisAngle builds the unit quaternion for a rotation of theta about a unit axis.
func axisAngle(theta, ax, ay, az float64) batch.Quat[float64] {
	s, c := math.Sincos(theta / 2)
	return batch.Quat[float64]{c, s * ax, s * ay, s * az}
}

// requireQuatNear fails unless every component of got is within delta of want.
func requireQuatNear[T batch.Float](t *testing.T, want, got batch.Quat[T], delta float64) {
	t.Helper()
	for k := 0; k < batch.QuatLen; k++ {
		require.InDeltaf(t, float64(want[k]), float64(got[k]), delta,
			"component %d: want %v, got %v", k, want, got)
	}
}

// requireMatNear fails unless every entry of got is within delta of want.
func requireMatNear[T batch.Float](t *testing.T, want, got batch.Mat3[T], delta float64) {
	t.Helper()
	for i := 0; i < batch.MatDim; i++ {
		for j := 0; j < batch.MatDim; j++ {
			require.InDeltaf(t, float64(want[i][j]), float64(got[i][j]), delta,
				"entry (%d,%d): want %v, got %v", i, j, want, got)
		}
	}
}

// absQuat returns the component-wise absolute value.
func absQuat[T batch.Float](q batch.Quat[T]) batch.Quat[T] {
	for k := range q {
		if q[k] < 0 {
			q[k] = -q[k]
		}
	}
	return q
}

// negQuat returns -q.
func negQuat[T batch.Float](q batch.Quat[T]) batch.Quat[T] {
	return batch.Quat[T]{-q[0], -q[1], -q[2], -q[3]}
}

// mustQuaternions builds a batch or fails the test.
func mustQuaternions[T batch.Float](t *testing.T, shape batch.Shape, data ...batch.Quat[T]) *batch.Quaternions[T] {
	t.Helper()
	q, err := batch.NewQuaternions(shape, data)
	require.NoError(t, err)
	return q
}

// mustMatrices builds a batch or fails the test.
func mustMatrices[T batch.Float](t *testing.T, shape batch.Shape, data ...batch.Mat3[T]) *batch.Matrices[T] {
	t.Helper()
	m, err := batch.NewMatrices(shape, data)
	require.NoError(t, err)
	return m
}

// narrowMat converts a float64 matrix to float32.
func narrowMat(m batch.Mat3[float64]) batch.Mat3[float32] {
	var out batch.Mat3[float32]
	for i := range m {
		for j := range m[i] {
			out[i][j] = float32(m[i][j])
		}
	}
	return out
}
