// SPDX-License-Identifier: MIT

// Package rotation: functional configuration for conversions, validators
// and the random generator. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that applies defaults.
//
// Design goals:
//   - Deterministic behavior: no global state; randomness only through an
//     explicit seed or *rand.Rand.
//   - No dead switches: each flag documents which entry points honor it.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - Tolerance defaults depend on precision: DefaultTolerance64 for float64
//     batches, DefaultTolerance32 for float32 batches. WithTolerance overrides both.
//   - When WithNormalize and WithAssertNormalized are combined, the assertion
//     sees the already-normalized value and therefore cannot catch bad caller
//     input. Use WithAssertNormalized alone to validate untouched input.
package rotation

import (
	"math"
	"math/rand"
	"unsafe"

	"github.com/katalvlaran/quat2rot/batch"
)

// ---------- Defaults (single source of truth) ----------

// Numeric policy.
const (
	// DefaultTolerance64 is the validation tolerance for float64 batches.
	DefaultTolerance64 = 1e-9

	// DefaultTolerance32 is the validation tolerance for float32 batches.
	DefaultTolerance32 = 1e-5

	// l2NormFloor bounds the squared norm from below during normalization,
	// so an all-zero quaternion stays zero instead of becoming NaN.
	l2NormFloor = 1e-12
)

// Flags and execution.
const (
	// DefaultNormalize rescales input quaternions to unit norm when true.
	DefaultNormalize = false

	// DefaultAssertNormalized validates unit norm before conversion when true.
	DefaultAssertNormalized = false

	// DefaultAssertValid validates orthonormality and determinant when true.
	DefaultAssertValid = false

	// DefaultWorkers evaluates batches inline on the calling goroutine.
	DefaultWorkers = 1

	// DefaultSeed selects the fixed default RNG stream (see parentSource).
	DefaultSeed int64 = 0
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicToleranceInvalid = "rotation: WithTolerance: tol must be finite, non-negative"
	panicWorkersInvalid   = "rotation: WithWorkers: n must be non-negative"
	panicRandNil          = "rotation: WithRand: r must be non-nil"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	// numeric policy
	tol    float64 // >= 0; meaningful only when tolSet
	tolSet bool    // false ⇒ precision default

	// conversion flags
	normalize        bool // DefaultNormalize
	assertNormalized bool // DefaultAssertNormalized
	assertValid      bool // DefaultAssertValid

	// execution
	workers int        // DefaultWorkers
	seed    int64      // DefaultSeed
	rng     *rand.Rand // overrides seed when non-nil
}

// ---------- Constructors (WithX) ----------

// WithTolerance sets the absolute tolerance used by every validation gate.
// Implementation:
//   - Stage 1: validate tol is finite and ≥ 0.
//   - Stage 2: return a setter that writes tol into Options.
//
// Errors:
//   - Panics with a stable message when tol is invalid.
//
// Notes:
//   - Required precision varies with the element type; without this option
//     the precision default (DefaultTolerance32/64) applies.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) {
		o.tol = tol
		o.tolSet = true
	}
}

// WithNormalize rescales each input quaternion to unit norm before
// conversion. Honored by QuaternionToMatrix.
func WithNormalize() Option {
	return func(o *Options) { o.normalize = true }
}

// WithAssertNormalized fails with ErrNotNormalized when an input quaternion
// is not unit norm. Honored by QuaternionToMatrix (after WithNormalize, if
// both are set) and RandomUniformQuaternion.
func WithAssertNormalized() Option {
	return func(o *Options) { o.assertNormalized = true }
}

// WithAssertValid fails with ErrInvalidRotation when a matrix is not a
// proper rotation. Honored by MatrixToQuaternion (on input) and
// RandomUniformRotationMatrix (on output).
func WithAssertValid() Option {
	return func(o *Options) { o.assertValid = true }
}

// WithWorkers evaluates a batch on up to n goroutines.
// n == 0 or 1 runs inline. Output is identical for every n.
// Panics when n < 0.
func WithWorkers(n int) Option {
	if n < 0 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithSeed selects a deterministic random stream for the generator.
// seed == 0 maps to a fixed default seed.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.seed = seed }
}

// WithRand draws generator randomness from r instead of a seed.
// r is advanced once per generated chunk; it must not be shared with
// other goroutines during the call. Panics when r is nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic(panicRandNil)
	}

	return func(o *Options) { o.rng = r }
}

// ---------- Resolution ----------

// defaultOptions returns Options populated with documented defaults.
func defaultOptions() Options {
	return Options{
		normalize:        DefaultNormalize,
		assertNormalized: DefaultAssertNormalized,
		assertValid:      DefaultAssertValid,
		workers:          DefaultWorkers,
		seed:             DefaultSeed,
	}
}

// gatherOptions applies opts over defaults. nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// DefaultTolerance returns the validation tolerance for element type T.
func DefaultTolerance[T batch.Float]() float64 {
	var zero T
	if unsafe.Sizeof(zero) == unsafe.Sizeof(float32(0)) {
		return DefaultTolerance32
	}

	return DefaultTolerance64
}

// toleranceFor resolves the effective tolerance for element type T.
func toleranceFor[T batch.Float](o Options) float64 {
	if o.tolSet {
		return o.tol
	}

	return DefaultTolerance[T]()
}
