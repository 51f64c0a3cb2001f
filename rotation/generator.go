// SPDX-License-Identifier: MIT

package rotation

import (
	"math"

	"github.com/katalvlaran/quat2rot/batch"
)

// RandomUniformQuaternion draws a batch of unit quaternions uniformly
// distributed over SO(3) (Haar measure), each with w ≥ 0.
// Implementation:
//   - Stage 1: validate shape (batch.ErrBadShape).
//   - Stage 2: derive one RNG stream per fixed-size chunk from WithSeed or WithRand.
//   - Stage 3: Shoemake's method per element from u0, u1, u2 ∈ [0, 1):
//
//	w = sqrt(1-u0)·sin(2π·u1)    x = sqrt(1-u0)·cos(2π·u1)
//	y = sqrt(u0)·sin(2π·u2)      z = sqrt(u0)·cos(2π·u2)
//
//   - Stage 4: negate the whole quaternion when w < 0.
//   - Stage 5: optional unit-norm gate (WithAssertNormalized).
//
// Behavior highlights:
//   - Uniform on the rotation group, not uniform in any angle parameterization.
//   - Same seed ⇒ same batch, independent of WithWorkers.
//
// Inputs:
//   - shape: leading batch axes; rank 0 yields one quaternion. Use
//     batch.ShapeFromVector for dimensions computed at runtime.
//
// Errors:
//   - batch.ErrBadShape (wrapped) for an invalid shape.
//   - *ValidationError (ErrNotNormalized) from Stage 5 only.
//
// Complexity:
//   - Time O(n), Space O(n).
//
// AI-Hints:
//   - Samples are computed in float64 and narrowed, so float32 batches carry
//     full float32 precision.
func RandomUniformQuaternion[T batch.Float](shape batch.Shape, opts ...Option) (*batch.Quaternions[T], error) {
	const tag = "RandomUniformQuaternion"
	o := gatherOptions(opts...)
	q, err := sampleQuaternions[T](shape, o)
	if err != nil {
		return nil, rotationErrorf(tag, err)
	}
	if o.assertNormalized {
		if err = checkQuaternions(q, toleranceFor[T](o), o.workers); err != nil {
			return nil, rotationErrorf(tag, err)
		}
	}

	return q, nil
}

// RandomUniformRotationMatrix draws Haar-uniform rotations as matrices:
// RandomUniformQuaternion composed with QuaternionToMatrix.
// WithAssertValid gates the produced matrices; quaternion-level flags
// (WithNormalize, WithAssertNormalized) are not applied.
// Errors: batch.ErrBadShape, *ValidationError (ErrInvalidRotation).
// Complexity: O(n).
func RandomUniformRotationMatrix[T batch.Float](shape batch.Shape, opts ...Option) (*batch.Matrices[T], error) {
	const tag = "RandomUniformRotationMatrix"
	o := gatherOptions(opts...)
	q, err := sampleQuaternions[T](shape, o)
	if err != nil {
		return nil, rotationErrorf(tag, err)
	}
	r, err := QuaternionToMatrix(q, WithWorkers(o.workers))
	if err != nil {
		return nil, rotationErrorf(tag, err)
	}
	if o.assertValid {
		if err = checkMatrices(r, toleranceFor[T](o), o.workers); err != nil {
			return nil, rotationErrorf(tag, err)
		}
	}

	return r, nil
}

// sampleQuaternions fills a batch of the given shape with Shoemake samples.
func sampleQuaternions[T batch.Float](shape batch.Shape, o Options) (*batch.Quaternions[T], error) {
	q, err := batch.ZeroQuaternions[T](shape)
	if err != nil {
		return nil, err
	}
	dst := q.Raw()
	streams := chunkStreams(o, numChunks(len(dst)))
	forEachChunk(len(dst), o.workers, func(c, lo, hi int) {
		r := streams[c]
		var i int
		for i = lo; i < hi; i++ {
			dst[i] = shoemake[T](r.Float64(), r.Float64(), r.Float64())
		}
	})

	return q, nil
}

// shoemake maps three uniforms in [0, 1) to a Haar-uniform unit quaternion
// with non-negative scalar part.
func shoemake[T batch.Float](u0, u1, u2 float64) batch.Quat[T] {
	a, b := math.Sqrt(1-u0), math.Sqrt(u0)
	s1, c1 := math.Sincos(2 * math.Pi * u1)
	s2, c2 := math.Sincos(2 * math.Pi * u2)
	w, x, y, z := a*s1, a*c1, b*s2, b*c2
	if w < 0 {
		w, x, y, z = -w, -x, -y, -z
	}

	return batch.Quat[T]{T(w), T(x), T(y), T(z)}
}
