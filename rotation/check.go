// SPDX-License-Identifier: MIT
// Package: rotation
//
// Purpose:
//  - Algebraic validation gates for quaternions (unit norm) and rotation
//    matrices (orthonormal and proper).
//  - Gates are pure predicates: they never mutate input and report every
//    failing batch element through *ValidationError.
//
// Note:
//  - Both matrix properties are checked. det R = 1 alone admits
//    non-orthogonal matrices (shears) with unit determinant.
//  - Work runs in float64 regardless of the batch precision.

package rotation

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/num/quat"

	"github.com/katalvlaran/quat2rot/batch"
)

// CheckQuaternionNormalized passes iff | ‖q‖ - 1 | ≤ tol for every element.
// Implementation:
//   - Stage 1: structural guard (nil batch) and tolerance guard.
//   - Stage 2: per element, compare quat.Abs against 1 within tol.
//
// Errors:
//   - batch.ErrNilBatch (wrapped) for a nil batch.
//   - *ValidationError (ErrValidation, ErrNotNormalized) listing failures.
//
// Complexity:
//   - Time O(n), Space O(failures).
//
// Notes:
//   - Panics on a NaN/Inf or negative tol, like WithTolerance.
func CheckQuaternionNormalized[T batch.Float](q *batch.Quaternions[T], tol float64) error {
	if err := batch.ValidateQuaternions(q); err != nil {
		return rotationErrorf("CheckQuaternionNormalized", err)
	}
	WithTolerance(tol) // panics on nonsensical tol

	return checkQuaternions(q, tol, DefaultWorkers)
}

// CheckRotationMatrixValid passes iff |det R - 1| ≤ tol and
// max|RᵗR - I| ≤ tol for every element.
// Implementation:
//   - Stage 1: structural guard (nil batch) and tolerance guard.
//   - Stage 2: per element, form RᵗR and det R with gonum/mat.
//
// Errors:
//   - batch.ErrNilBatch (wrapped) for a nil batch.
//   - *ValidationError (ErrValidation, ErrInvalidRotation) listing failures.
//
// Complexity:
//   - Time O(n), Space O(failures).
func CheckRotationMatrixValid[T batch.Float](r *batch.Matrices[T], tol float64) error {
	if err := batch.ValidateMatrices(r); err != nil {
		return rotationErrorf("CheckRotationMatrixValid", err)
	}
	WithTolerance(tol) // panics on nonsensical tol

	return checkMatrices(r, tol, DefaultWorkers)
}

// AssertQuaternionNormalized is the gate form of CheckQuaternionNormalized:
// it returns q unchanged on success and nil plus the error otherwise.
// Tolerance comes from opts (precision default when unset).
func AssertQuaternionNormalized[T batch.Float](q *batch.Quaternions[T], opts ...Option) (*batch.Quaternions[T], error) {
	if err := batch.ValidateQuaternions(q); err != nil {
		return nil, rotationErrorf("AssertQuaternionNormalized", err)
	}
	o := gatherOptions(opts...)
	if err := checkQuaternions(q, toleranceFor[T](o), o.workers); err != nil {
		return nil, err
	}

	return q, nil
}

// AssertRotationMatrixValid is the gate form of CheckRotationMatrixValid.
func AssertRotationMatrixValid[T batch.Float](r *batch.Matrices[T], opts ...Option) (*batch.Matrices[T], error) {
	if err := batch.ValidateMatrices(r); err != nil {
		return nil, rotationErrorf("AssertRotationMatrixValid", err)
	}
	o := gatherOptions(opts...)
	if err := checkMatrices(r, toleranceFor[T](o), o.workers); err != nil {
		return nil, err
	}

	return r, nil
}

// checkQuaternions runs the unit-norm test; q is assumed non-nil.
func checkQuaternions[T batch.Float](q *batch.Quaternions[T], tol float64, workers int) error {
	src := q.Raw()
	failed := collectFailures(len(src), workers, func(i int) bool {
		return scalar.EqualWithinAbs(quat.Abs(toNumber(src[i])), 1, tol)
	})
	if len(failed) == 0 {
		return nil
	}

	return &ValidationError{Kind: ErrNotNormalized, Shape: q.Shape(), Indices: failed, Tolerance: tol}
}

// checkMatrices runs the orthonormality and determinant tests; r is assumed non-nil.
func checkMatrices[T batch.Float](r *batch.Matrices[T], tol float64, workers int) error {
	src := r.Raw()
	failed := collectFailuresWith(len(src), workers, newMatrixChecker, func(mc *matrixChecker, i int) bool {
		return mc.proper(widenMat(src[i]), tol)
	})
	if len(failed) == 0 {
		return nil
	}

	return &ValidationError{Kind: ErrInvalidRotation, Shape: r.Shape(), Indices: failed, Tolerance: tol}
}

// matrixChecker holds per-chunk gonum workspaces so the scan does not
// allocate a fresh product matrix per element.
type matrixChecker struct {
	a    *mat.Dense     // the element under test
	ata  mat.Dense      // RᵗR
	diff mat.Dense      // RᵗR - I
	eye  *mat.DiagDense // I
}

func newMatrixChecker() *matrixChecker {
	return &matrixChecker{
		a:   mat.NewDense(batch.MatDim, batch.MatDim, nil),
		eye: mat.NewDiagDense(batch.MatDim, []float64{1, 1, 1}),
	}
}

// proper reports whether m is orthonormal with unit determinant within tol.
func (mc *matrixChecker) proper(m batch.Mat3[float64], tol float64) bool {
	var i, j int
	for i = 0; i < batch.MatDim; i++ {
		for j = 0; j < batch.MatDim; j++ {
			mc.a.Set(i, j, m[i][j])
		}
	}
	if !scalar.EqualWithinAbs(mat.Det(mc.a), 1, tol) {
		return false
	}
	mc.ata.Mul(mc.a.T(), mc.a)
	mc.diff.Sub(&mc.ata, mc.eye)
	dev := math.Max(mat.Max(&mc.diff), -mat.Min(&mc.diff))

	return dev <= tol
}

// collectFailures returns the ascending indices i ∈ [0, n) for which ok(i) is false.
func collectFailures(n, workers int, ok func(i int) bool) []int {
	return collectFailuresWith(n, workers, func() struct{} { return struct{}{} },
		func(_ struct{}, i int) bool { return ok(i) })
}

// collectFailuresWith is collectFailures with a per-chunk workspace built by mk.
// Each chunk records into its own slot, so no locking is needed.
func collectFailuresWith[W any](n, workers int, mk func() W, ok func(w W, i int) bool) []int {
	perChunk := make([][]int, numChunks(n))
	forEachChunk(n, workers, func(c, lo, hi int) {
		w := mk()
		var i int
		for i = lo; i < hi; i++ {
			if !ok(w, i) {
				perChunk[c] = append(perChunk[c], i)
			}
		}
	})

	// Chunks are disjoint and in index order, so concatenation stays ascending.
	var failed []int
	for _, f := range perChunk {
		failed = append(failed, f...)
	}

	return failed
}
