// SPDX-License-Identifier: MIT
// Package: batch
//
// Purpose:
//  - One place for the structural guards every algorithm runs before touching
//    a batch: nil checks and shape agreement.
//  - Return sentinels wrapped with a validator tag so callers can match them
//    with errors.Is and still see which guard fired.
//
// Note:
//  - Composite validators run in a fixed order: NotNil → Shape.
//  - Numeric checks (unit norm, orthonormality) are not structural and live
//    with the algorithms that need them.

package batch

// ValidateQuaternions ensures q is non-nil and its storage agrees with its shape.
// Errors: ErrNilBatch, ErrDimensionMismatch.
// Complexity: O(rank).
func ValidateQuaternions[T Float](q *Quaternions[T]) error {
	if q == nil {
		return batchErrorf("ValidateQuaternions", ErrNilBatch)
	}
	if len(q.data) != q.shape.Size() {
		return batchErrorf("ValidateQuaternions", ErrDimensionMismatch)
	}

	return nil
}

// ValidateMatrices ensures m is non-nil and its storage agrees with its shape.
// Errors: ErrNilBatch, ErrDimensionMismatch.
// Complexity: O(rank).
func ValidateMatrices[T Float](m *Matrices[T]) error {
	if m == nil {
		return batchErrorf("ValidateMatrices", ErrNilBatch)
	}
	if len(m.data) != m.shape.Size() {
		return batchErrorf("ValidateMatrices", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSameShape reports ErrShapeMismatch when a and b differ.
func ValidateSameShape(a, b Shape) error {
	if !a.Equal(b) {
		return batchErrorf("ValidateSameShape", ErrShapeMismatch)
	}

	return nil
}

// ValidateBinaryQuaternions – Composite: NotNil(a) → NotNil(b) → SameShape.
// Errors: ErrNilBatch, ErrDimensionMismatch, ErrShapeMismatch.
func ValidateBinaryQuaternions[T Float](a, b *Quaternions[T]) error {
	if err := ValidateQuaternions(a); err != nil {
		return batchErrorf("ValidateBinaryQuaternions", err)
	}
	if err := ValidateQuaternions(b); err != nil {
		return batchErrorf("ValidateBinaryQuaternions", err)
	}
	if err := ValidateSameShape(a.shape, b.shape); err != nil {
		return batchErrorf("ValidateBinaryQuaternions", err)
	}

	return nil
}
