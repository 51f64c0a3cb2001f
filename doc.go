// SPDX-License-Identifier: MIT

// Package quat2rot converts between unit quaternions and 3×3 rotation
// matrices, over batches of any shape, in float32 or float64.
//
// 🚀 What is in quat2rot?
//
//	• Conversions: quaternion → matrix (closed form) and matrix → quaternion
//	  (four-branch extraction, stable at 180° rotations)
//	• Validation gates: unit norm, orthonormality with unit determinant
//	• Haar-uniform random rotations (Shoemake), deterministic per seed
//	• Quaternion algebra: conjugate, inverse, Hamilton product, rotation angle
//
// Under the hood, everything is organized under these packages:
//
//	batch/        - Shape, Quaternions, Matrices, Scalars and flat ingestion
//	rotation/     - conversions, validators, generator and algebra
//	cmd/rotconv/  - command-line front-end (q2r, r2q, angle, sample)
//
// Quick start:
//
//	q, _ := batch.QuaternionsFromFlat(batch.ShapeOf(2, 4), []float64{
//		1, 0, 0, 0,
//		0, 0, 0, 1,
//	})
//	r, err := rotation.QuaternionToMatrix(q, rotation.WithAssertNormalized())
//
// Quaternions are (w, x, y, z) with the scalar part first. Matrices are
// row-major. Every operation is pure and returns a freshly allocated batch.
package quat2rot
