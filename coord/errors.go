// SPDX-License-Identifier: MIT
// Package coord: sentinel error set.
// Functions return these sentinels wrapped with an operation tag; callers match
// them with errors.Is. Numerical failures additionally wrap the matrix cause,
// so errors.Is(err, matrix.ErrSingular) holds as well.

package coord

import (
	"errors"
	"fmt"
)

var (
	// ErrNumerical reports that a converter met degenerate input it cannot
	// handle, e.g. a singular or ill-conditioned VectorBasis.
	ErrNumerical = errors.New("coord: numerical failure")

	// ErrInvalidScale is returned for a ScaledCartesian whose factor is not a
	// finite positive number (including the zero value).
	ErrInvalidScale = errors.New("coord: scale must be finite and > 0")

	// ErrUnsupportedBasis marks a basis outside the closed set AnyBasis can hold.
	// AnyBasis dispatch on an invalid variant panics with this error.
	ErrUnsupportedBasis = errors.New("coord: basis not supported by AnyBasis")

	// ErrNilBasis indicates a nil Basis passed to a transform.
	ErrNilBasis = errors.New("coord: nil basis")

	// ErrOutOfRange indicates a component or element index outside valid bounds.
	ErrOutOfRange = errors.New("coord: index out of range")

	// ErrInvalidOption is the panic payload of option constructors given
	// nonsensical values.
	ErrInvalidOption = errors.New("coord: invalid option")
)

// numericalErrorf tags err as a numerical failure of op, keeping both
// ErrNumerical and the underlying cause visible to errors.Is.
func numericalErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrNumerical, err)
}

// coordErrorf wraps err with an operation tag.
func coordErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
