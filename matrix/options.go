// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the numeric policy of the
// factorization kernels. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultValidateNaNInf toggles strict finite-value validation on Set.
	DefaultValidateNaNInf = true

	// DefaultPivotTolerance is the relative pivot threshold used by FactorLU:
	// a factorization whose smallest |pivot| is ≤ tol·(largest |pivot|) is
	// rejected as numerically singular.
	DefaultPivotTolerance = 1e-12
)

// ---------- Internal panic messages (no magic strings) ----------

const panicPivotToleranceInvalid = "matrix: WithPivotTolerance: tol must be finite and in [0, 1)"

// Option mutates internal options. Safe to apply repeatedly (last-writer-wins).
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	pivotTol float64 // in [0,1); DefaultPivotTolerance
}

// WithPivotTolerance sets the relative pivot tolerance used to classify a
// factorization as singular. tol = 0 only rejects exact zero pivots.
//
// Panics when tol is NaN, ±Inf, negative, or ≥ 1.
// Complexity: O(1).
func WithPivotTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 || tol >= 1 {
		panic(panicPivotToleranceInvalid)
	}

	return func(o *Options) { o.pivotTol = tol }
}

// PivotTolerance reports the resolved relative pivot tolerance.
func (o Options) PivotTolerance() float64 { return o.pivotTol }

// NewMatrixOptions resolves option setters against documented defaults.
// Pure function; stable for a given sequence of opts.
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies user-provided setters on top of defaults, in order.
func gatherOptions(user ...Option) Options {
	o := Options{
		pivotTol: DefaultPivotTolerance,
	}
	for _, set := range user {
		if set != nil {
			set(&o) // apply in order; last-writer-wins semantics
		}
	}

	return o
}
