// SPDX-License-Identifier: MIT

package coord

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// RawPoint is three ordered components with no basis attached.
// Components are positional (0, 1, 2); their meaning comes from whatever
// basis the caller pairs them with. RawPoint is a value: == compares exactly.
type RawPoint [3]float64

// NewRawPoint builds a RawPoint from three numbers.
func NewRawPoint(a, b, c float64) RawPoint { return RawPoint{a, b, c} }

// First returns component 0.
func (p RawPoint) First() float64 { return p[0] }

// Second returns component 1.
func (p RawPoint) Second() float64 { return p[1] }

// Third returns component 2.
func (p RawPoint) Third() float64 { return p[2] }

// At returns component i, or ErrOutOfRange unless 0 ≤ i < 3.
func (p RawPoint) At(i int) (float64, error) {
	if i < 0 || i >= len(p) {
		return 0, coordErrorf(fmt.Sprintf("RawPoint.At(%d)", i), ErrOutOfRange)
	}

	return p[i], nil
}

// Set assigns component i, or returns ErrOutOfRange unless 0 ≤ i < 3.
func (p *RawPoint) Set(i int, v float64) error {
	if i < 0 || i >= len(p) {
		return coordErrorf(fmt.Sprintf("RawPoint.Set(%d)", i), ErrOutOfRange)
	}
	p[i] = v

	return nil
}

// Equal reports exact component-wise equality.
func (p RawPoint) Equal(q RawPoint) bool { return p == q }

// ApproxEqual reports whether every component pair agrees within tol, either
// absolutely or relatively.
func (p RawPoint) ApproxEqual(q RawPoint, tol float64) bool {
	return floats.EqualApprox(p[:], q[:], tol)
}

// IsFinite reports whether no component is NaN or ±Inf.
func (p RawPoint) IsFinite() bool {
	for _, v := range p {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}

// String formats the point as "(a, b, c)".
func (p RawPoint) String() string {
	return fmt.Sprintf("(%g, %g, %g)", p[0], p[1], p[2])
}

// ApproxEqualAll reports whether a and b have equal length and every pair of
// points is ApproxEqual within tol.
func ApproxEqualAll(a, b []RawPoint, tol float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].ApproxEqual(b[i], tol) {
			return false
		}
	}

	return true
}
