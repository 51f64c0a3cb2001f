// SPDX-License-Identifier: MIT

package rotation

import (
	"math"

	"gonum.org/v1/gonum/num/quat"

	"github.com/katalvlaran/quat2rot/batch"
)

// ConjugateQuaternion negates the vector part of every element.
// For unit quaternions the conjugate is the inverse rotation.
// Complexity: O(n).
func ConjugateQuaternion[T batch.Float](q *batch.Quaternions[T]) (*batch.Quaternions[T], error) {
	if err := batch.ValidateQuaternions(q); err != nil {
		return nil, rotationErrorf("ConjugateQuaternion", err)
	}

	return mapQuaternions(q, DefaultWorkers, func(e batch.Quat[T]) batch.Quat[T] {
		return fromNumber[T](quat.Conj(toNumber(e)))
	}), nil
}

// InvertQuaternion returns the conjugate rescaled to unit norm, the inverse
// rotation even when the input drifted slightly off the unit sphere.
// Complexity: O(n).
func InvertQuaternion[T batch.Float](q *batch.Quaternions[T]) (*batch.Quaternions[T], error) {
	if err := batch.ValidateQuaternions(q); err != nil {
		return nil, rotationErrorf("InvertQuaternion", err)
	}

	return mapQuaternions(q, DefaultWorkers, func(e batch.Quat[T]) batch.Quat[T] {
		return normalizeQuat(fromNumber[T](quat.Conj(toNumber(e))))
	}), nil
}

// MultiplyQuaternions returns the element-wise Hamilton product a·b.
// Rotating by the result equals rotating by b, then by a.
// Errors: batch.ErrNilBatch, batch.ErrShapeMismatch (wrapped).
// Complexity: O(n).
func MultiplyQuaternions[T batch.Float](a, b *batch.Quaternions[T]) (*batch.Quaternions[T], error) {
	if err := batch.ValidateBinaryQuaternions(a, b); err != nil {
		return nil, rotationErrorf("MultiplyQuaternions", err)
	}
	out, err := batch.ZeroQuaternions[T](a.Shape())
	if err != nil {
		return nil, rotationErrorf("MultiplyQuaternions", err)
	}
	left, right, dst := a.Raw(), b.Raw(), out.Raw()
	for i := range dst {
		dst[i] = fromNumber[T](quat.Mul(toNumber(left[i]), toNumber(right[i])))
	}

	return out, nil
}

// QuaternionRotationAngle returns 2·atan2(‖v‖, w) per element, in radians.
// The result lies in [0, 2π], reaching 2π only for (-1, 0, 0, 0). It is at
// most π when w ≥ 0, which holds for every output of MatrixToQuaternion and
// the generator.
// Complexity: O(n).
func QuaternionRotationAngle[T batch.Float](q *batch.Quaternions[T]) (*batch.Scalars[T], error) {
	if err := batch.ValidateQuaternions(q); err != nil {
		return nil, rotationErrorf("QuaternionRotationAngle", err)
	}
	src := q.Raw()
	angles := make([]T, len(src))
	for i, e := range src {
		n := toNumber(e)
		v := quat.Abs(quat.Number{Imag: n.Imag, Jmag: n.Jmag, Kmag: n.Kmag})
		angles[i] = T(2 * math.Atan2(v, n.Real))
	}

	return batch.NewScalars(q.Shape(), angles)
}

// ---------- element helpers ----------

// normalizeQuat rescales q to unit norm. The squared norm is floored at
// l2NormFloor, so the zero quaternion maps to itself.
func normalizeQuat[T batch.Float](q batch.Quat[T]) batch.Quat[T] {
	n := toNumber(q)
	norm := math.Max(quat.Abs(n), math.Sqrt(l2NormFloor))

	return fromNumber[T](quat.Scale(1/norm, n))
}

// mapQuaternions applies fn to every element of q into a new batch.
func mapQuaternions[T batch.Float](q *batch.Quaternions[T], workers int, fn func(batch.Quat[T]) batch.Quat[T]) *batch.Quaternions[T] {
	src := q.Raw()
	dst := make([]batch.Quat[T], len(src))
	forEachChunk(len(src), workers, func(_, lo, hi int) {
		var i int
		for i = lo; i < hi; i++ {
			dst[i] = fn(src[i])
		}
	})
	out, _ := batch.NewQuaternions(q.Shape(), dst) // shape already validated with q

	return out
}

// toNumber widens q into gonum's quaternion (Real=w, Imag=x, Jmag=y, Kmag=z).
func toNumber[T batch.Float](q batch.Quat[T]) quat.Number {
	return quat.Number{Real: float64(q[0]), Imag: float64(q[1]), Jmag: float64(q[2]), Kmag: float64(q[3])}
}

// fromNumber narrows a gonum quaternion to precision T.
func fromNumber[T batch.Float](n quat.Number) batch.Quat[T] {
	return batch.Quat[T]{T(n.Real), T(n.Imag), T(n.Jmag), T(n.Kmag)}
}

// widenMat converts m to float64.
func widenMat[T batch.Float](m batch.Mat3[T]) batch.Mat3[float64] {
	var out batch.Mat3[float64]
	var i, j int
	for i = 0; i < batch.MatDim; i++ {
		for j = 0; j < batch.MatDim; j++ {
			out[i][j] = float64(m[i][j])
		}
	}

	return out
}
