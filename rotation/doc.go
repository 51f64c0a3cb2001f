// SPDX-License-Identifier: MIT

// Package rotation converts between unit quaternions and 3×3 rotation
// matrices, element-wise over batches of any shape.
//
// 🚀 What is in here?
//
//	QuaternionToMatrix   - closed-form expansion, branch-free.
//	MatrixToQuaternion   - four-branch extraction, stable at 180° rotations,
//	                       scalar part forced non-negative.
//	Check* / Assert*     - unit-norm and proper-rotation gates.
//	RandomUniform*       - Haar-uniform rotations (Shoemake's method).
//	Conjugate/Invert/Multiply/RotationAngle - quaternion algebra used
//	                       to validate round-trips.
//
// Conventions:
//
//   - Quaternions are (w, x, y, z), scalar first; q and -q are the same rotation.
//   - Matrices are row-major; m[i][j] is row i, column j.
//   - Every call allocates a new batch and leaves its input untouched.
//
// ⚙️ Usage:
//
//	q, _ := rotation.RandomUniformQuaternion[float64](batch.ShapeOf(2, 3), rotation.WithSeed(7))
//	r, _ := rotation.QuaternionToMatrix(q)
//	back, err := rotation.MatrixToQuaternion(r, rotation.WithAssertValid())
//	if errors.Is(err, rotation.ErrValidation) {
//	  // handle *rotation.ValidationError
//	}
//
// Round-trip laws:
//
//   - QuaternionToMatrix(MatrixToQuaternion(R)) ≈ R for every proper rotation R.
//   - MatrixToQuaternion(QuaternionToMatrix(q)) ≈ q for unit q with w ≥ 0,
//     and ≈ ±q in general.
//
// Concurrency:
//
//	All functions are pure and safe for concurrent use. WithWorkers(n)
//	spreads one call over n goroutines without changing its output.
//
// Performance:
//
//   - Time:   O(n) for every operation.
//   - Memory: O(n) for the output batch.
package rotation
