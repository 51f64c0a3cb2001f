// SPDX-License-Identifier: MIT

// Package batch: entity types stored in batches.
package batch

// Float is the set of element precisions a batch may carry.
// Precision is a pass-through: algorithms run unchanged for either width.
type Float interface {
	~float32 | ~float64
}

// Integer is the set of element types accepted as a runtime dimension vector.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Trailing entity sizes.
const (
	QuatLen = 4 // (w, x, y, z)
	MatDim  = 3 // rows == cols of a rotation matrix
	MatLen  = MatDim * MatDim
)

// Quat is a quaternion (w, x, y, z) with the scalar part first.
// Index 0 is w, indices 1..3 are the vector part.
type Quat[T Float] [QuatLen]T

// W returns the scalar part.
func (q Quat[T]) W() T { return q[0] }

// Vec returns the vector part (x, y, z).
func (q Quat[T]) Vec() [3]T { return [3]T{q[1], q[2], q[3]} }

// Mat3 is a 3×3 matrix in row-major order: m[i][j] is row i, column j.
type Mat3[T Float] [MatDim][MatDim]T

// Identity3 returns the 3×3 identity matrix.
func Identity3[T Float]() Mat3[T] {
	return Mat3[T]{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// Transpose returns mᵗ.
func (m Mat3[T]) Transpose() Mat3[T] {
	var t Mat3[T]
	var i, j int
	for i = 0; i < MatDim; i++ {
		for j = 0; j < MatDim; j++ {
			t[j][i] = m[i][j]
		}
	}

	return t
}
