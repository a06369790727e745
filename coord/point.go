// SPDX-License-Identifier: MIT

package coord

import "fmt"

// Point binds a RawPoint to the basis its components are expressed in.
// Point is a value; transforming returns a new Point and leaves the
// original untouched.
type Point[B Basis] struct {
	raw   RawPoint
	basis B
}

// NewPoint builds a Point from three components in basis.
func NewPoint[B Basis](a, b, c float64, basis B) Point[B] {
	return Point[B]{raw: RawPoint{a, b, c}, basis: basis}
}

// TagPoint pairs an existing RawPoint with basis.
func TagPoint[B Basis](raw RawPoint, basis B) Point[B] {
	return Point[B]{raw: raw, basis: basis}
}

// Raw returns the components.
func (p Point[B]) Raw() RawPoint { return p.raw }

// Basis returns the basis the components are expressed in.
func (p Point[B]) Basis() B { return p.basis }

// First returns component 0.
func (p Point[B]) First() float64 { return p.raw[0] }

// Second returns component 1.
func (p Point[B]) Second() float64 { return p.raw[1] }

// Third returns component 2.
func (p Point[B]) Third() float64 { return p.raw[2] }

// String formats the point as "(a, b, c) in <basis>".
func (p Point[B]) String() string {
	return fmt.Sprintf("%v in %v", p.raw, p.basis)
}

// TransformPoint converts p into basis to by delegating to Transform with
// from = p.Basis().
func TransformPoint[To, From Basis](p Point[From], to To) (Point[To], error) {
	raw, err := Transform(p.raw, p.basis, to)
	if err != nil {
		return Point[To]{}, err
	}

	return Point[To]{raw: raw, basis: to}, nil
}
