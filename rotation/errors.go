// SPDX-License-Identifier: MIT
// Package rotation: sentinel errors and the typed validation failure.
// Algorithms return these sentinels (possibly wrapped with a call-site tag);
// callers match with errors.Is / errors.As. No algorithm panics on bad data.
// Panics are reserved for nonsensical option values (programmer error).

package rotation

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/quat2rot/batch"
)

var (
	// ErrValidation is the single runtime data error kind. It is raised only
	// when a validation flag is set and the algebraic precondition fails.
	ErrValidation = errors.New("rotation: validation failed")

	// ErrNotNormalized marks quaternions whose norm deviates from 1 beyond tolerance.
	ErrNotNormalized = errors.New("rotation: quaternion not normalized")

	// ErrInvalidRotation marks matrices that are not proper rotations
	// (RᵗR ≠ I or det R ≠ 1 beyond tolerance).
	ErrInvalidRotation = errors.New("rotation: invalid rotation matrix")
)

// ValidationError reports which batch elements failed a validation gate.
// It matches ErrValidation and its Kind under errors.Is.
type ValidationError struct {
	Kind      error       // ErrNotNormalized or ErrInvalidRotation
	Shape     batch.Shape // batch shape of the checked input
	Indices   []int       // failing flat indices, ascending
	Tolerance float64     // tolerance the check ran with
}

// Error implements error.
func (e *ValidationError) Error() string {
	if len(e.Indices) == 0 {
		return e.Kind.Error()
	}
	first, err := e.Shape.Unravel(e.Indices[0])
	if err != nil {
		first = []int{e.Indices[0]}
	}

	return fmt.Sprintf("%v: %d of %d batch element(s) outside tolerance %g (first at %v)",
		e.Kind, len(e.Indices), e.Shape.Size(), e.Tolerance, first)
}

// Unwrap exposes both the error kind and the ErrValidation umbrella.
func (e *ValidationError) Unwrap() []error {
	return []error{ErrValidation, e.Kind}
}

// rotationErrorf wraps err with an operation tag.
func rotationErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
