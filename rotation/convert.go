// SPDX-License-Identifier: MIT

package rotation

import (
	"math"

	"github.com/katalvlaran/quat2rot/batch"
)

// QuaternionToMatrix converts a batch of quaternions (w, x, y, z) into a
// batch of 3×3 rotation matrices with the same leading shape.
// Implementation:
//   - Stage 1: structural guard (nil batch).
//   - Stage 2: optional L2 normalization (WithNormalize).
//   - Stage 3: optional unit-norm gate (WithAssertNormalized) on the value
//     produced by Stage 2.
//   - Stage 4: closed-form expansion per element
//
//	R = [[1-2(y²+z²),   2(xy-zw),    2(xz+yw)],
//	     [2(xy+zw),     1-2(x²+z²),  2(yz-xw)],
//	     [2(xz-yw),     2(yz+xw),    1-2(x²+y²)]]
//
// Behavior highlights:
//   - Branch-free sums of products: stable for every input, no division or sqrt.
//   - The input batch is never modified; normalization works on a copy.
//
// Errors:
//   - batch.ErrNilBatch (wrapped) for a nil batch.
//   - *ValidationError (ErrValidation, ErrNotNormalized) from Stage 3; no
//     output is produced.
//
// Determinism:
//   - Each element depends only on its own input; identical for every WithWorkers.
//
// Complexity:
//   - Time O(n), Space O(n).
//
// Notes:
//   - Combining WithNormalize and WithAssertNormalized validates the
//     normalized value, which passes by construction for any non-zero input.
//     Pass WithAssertNormalized alone to validate the caller's data.
func QuaternionToMatrix[T batch.Float](q *batch.Quaternions[T], opts ...Option) (*batch.Matrices[T], error) {
	const tag = "QuaternionToMatrix"
	if err := batch.ValidateQuaternions(q); err != nil {
		return nil, rotationErrorf(tag, err)
	}
	o := gatherOptions(opts...)

	in := q
	if o.normalize {
		in = mapQuaternions(q, o.workers, normalizeQuat[T])
	}
	if o.assertNormalized {
		if err := checkQuaternions(in, toleranceFor[T](o), o.workers); err != nil {
			return nil, rotationErrorf(tag, err)
		}
	}

	out, err := batch.ZeroMatrices[T](q.Shape())
	if err != nil {
		return nil, rotationErrorf(tag, err)
	}
	src, dst := in.Raw(), out.Raw()
	forEachChunk(len(src), o.workers, func(_, lo, hi int) {
		var i int
		for i = lo; i < hi; i++ {
			dst[i] = quatToMat(src[i])
		}
	})

	return out, nil
}

// MatrixToQuaternion converts a batch of rotation matrices into unit
// quaternions (w, x, y, z) with w ≥ 0 and the same leading shape.
// Implementation:
//   - Stage 1: structural guard (nil batch).
//   - Stage 2: optional orthonormality/determinant gate (WithAssertValid).
//   - Stage 3: per element, four magnitudes each chosen between a direct
//     and a ratio formula by the sign of its diagonal sum nu_k.
//   - Stage 4: signs of x, y, z from the antisymmetric part of R.
//
// Behavior highlights:
//   - Stable near 180° rotations, where a trace-only formula divides by ~0.
//   - Slightly non-orthonormal input is converted silently unless WithAssertValid.
//
// Errors:
//   - batch.ErrNilBatch (wrapped) for a nil batch.
//   - *ValidationError (ErrValidation, ErrInvalidRotation) from Stage 2.
//
// Determinism:
//   - Each element depends only on its own input; identical for every WithWorkers.
//
// Complexity:
//   - Time O(n), Space O(n).
//
// Notes:
//   - A zero antisymmetric difference yields a negative sign (see matToQuat).
//     At exact 180° rotations all three differences are zero, so every
//     non-zero vector component comes out negative. For a flip about a
//     coordinate axis, or an axis whose non-zero components share a sign,
//     that is the negated axis and the same rotation. For an axis with
//     mixed signs, e.g. (1, -1, 0)/√2, the result is a different 180°
//     rotation and R → q → R does not round-trip.
func MatrixToQuaternion[T batch.Float](r *batch.Matrices[T], opts ...Option) (*batch.Quaternions[T], error) {
	const tag = "MatrixToQuaternion"
	if err := batch.ValidateMatrices(r); err != nil {
		return nil, rotationErrorf(tag, err)
	}
	o := gatherOptions(opts...)

	if o.assertValid {
		if err := checkMatrices(r, toleranceFor[T](o), o.workers); err != nil {
			return nil, rotationErrorf(tag, err)
		}
	}

	out, err := batch.ZeroQuaternions[T](r.Shape())
	if err != nil {
		return nil, rotationErrorf(tag, err)
	}
	src, dst := r.Raw(), out.Raw()
	forEachChunk(len(src), o.workers, func(_, lo, hi int) {
		var i int
		for i = lo; i < hi; i++ {
			dst[i] = matToQuat(src[i])
		}
	})

	return out, nil
}

// quatToMat expands one quaternion into its rotation matrix.
func quatToMat[T batch.Float](q batch.Quat[T]) batch.Mat3[T] {
	w, x, y, z := q[0], q[1], q[2], q[3]

	return batch.Mat3[T]{
		{1 - 2*(y*y+z*z), 2 * (x*y - z*w), 2 * (x*z + y*w)},
		{2 * (x*y + z*w), 1 - 2*(x*x+z*z), 2 * (y*z - x*w)},
		{2 * (x*z - y*w), 2 * (y*z + x*w), 1 - 2*(x*x+y*y)},
	}
}

// matToQuat extracts the quaternion with non-negative scalar part from m.
//
// For nu_k > 0 the direct form 0.5·sqrt(1+nu_k) is used; otherwise the
// ratio form 0.5·sqrt(S_k/(3-nu_k)), whose denominator is ≥ 3 there.
// Sign tie-break: a difference that is not strictly positive gives -1.
func matToQuat[T batch.Float](m batch.Mat3[T]) batch.Quat[T] {
	r11, r12, r13 := m[0][0], m[0][1], m[0][2]
	r21, r22, r23 := m[1][0], m[1][1], m[1][2]
	r31, r32, r33 := m[2][0], m[2][1], m[2][2]

	// antisymmetric differences (axis direction) and symmetric sums
	d32, d13, d21 := r32-r23, r13-r31, r21-r12
	s12, s31, s23 := r12+r21, r31+r13, r23+r32

	q1 := stableComponent(r11+r22+r33, d32*d32+d13*d13+d21*d21)
	q2 := stableComponent(r11-r22-r33, d32*d32+s12*s12+s31*s31)
	q3 := stableComponent(-r11+r22-r33, d13*d13+s12*s12+s23*s23)
	q4 := stableComponent(-r11-r22+r33, d21*d21+s31*s31+s23*s23)

	// q1 is non-negative by construction; vector signs follow R - Rᵗ.
	return batch.Quat[T]{q1, q2 * signOf(d32), q3 * signOf(d13), q4 * signOf(d21)}
}

// stableComponent returns one quaternion magnitude from its diagonal sum nu
// and the matching sum of squares s.
func stableComponent[T batch.Float](nu, s T) T {
	if nu > 0 {
		return T(0.5 * math.Sqrt(float64(1+nu)))
	}

	return T(0.5 * math.Sqrt(float64(s/(3-nu))))
}

// signOf returns +1 when d > 0 and -1 otherwise (including d == 0).
func signOf[T batch.Float](d T) T {
	if d > 0 {
		return 1
	}

	return -1
}
