// SPDX-License-Identifier: MIT

package coord

import (
	"fmt"
	"slices"
)

// Collection is an ordered sequence of RawPoints sharing one basis.
//
// Accessors hand out copies; elements change only through Set, Append,
// Clear and Resize.
// Mutating a Collection while another goroutine reads or transforms it is a
// data race; callers serialize such access themselves.
type Collection[B Basis] struct {
	raws  []RawPoint
	basis B
}

// NewCollection returns a collection of n zero points in basis.
// A negative n is treated as 0.
func NewCollection[B Basis](basis B, n int) *Collection[B] {
	if n < 0 {
		n = 0
	}

	return &Collection[B]{raws: make([]RawPoint, n), basis: basis}
}

// CollectionOf returns a collection holding a copy of raws in basis.
func CollectionOf[B Basis](basis B, raws ...RawPoint) *Collection[B] {
	cp := make([]RawPoint, len(raws))
	copy(cp, raws)

	return &Collection[B]{raws: cp, basis: basis}
}

// Len returns the number of points.
func (c *Collection[B]) Len() int { return len(c.raws) }

// Basis returns the shared basis.
func (c *Collection[B]) Basis() B { return c.basis }

// indexErr reports ErrOutOfRange for i outside [0, Len()).
func (c *Collection[B]) indexErr(op string, i int) error {
	if i < 0 || i >= len(c.raws) {
		return coordErrorf(fmt.Sprintf("Collection.%s(%d)", op, i), ErrOutOfRange)
	}

	return nil
}

// Point returns element i bound to the collection's basis.
func (c *Collection[B]) Point(i int) (Point[B], error) {
	if err := c.indexErr("Point", i); err != nil {
		return Point[B]{}, err
	}

	return Point[B]{raw: c.raws[i], basis: c.basis}, nil
}

// Raw returns a copy of element i.
func (c *Collection[B]) Raw(i int) (RawPoint, error) {
	if err := c.indexErr("Raw", i); err != nil {
		return RawPoint{}, err
	}

	return c.raws[i], nil
}

// Set replaces element i.
func (c *Collection[B]) Set(i int, p RawPoint) error {
	if err := c.indexErr("Set", i); err != nil {
		return err
	}
	c.raws[i] = p

	return nil
}

// Append adds points at the end, in order.
func (c *Collection[B]) Append(ps ...RawPoint) {
	c.raws = append(c.raws, ps...)
}

// Clear removes every point and keeps the basis.
func (c *Collection[B]) Clear() { c.raws = c.raws[:0] }

// Resize sets the length to n. Points past n are dropped; new points are
// the zero RawPoint.
// Errors: ErrOutOfRange when n < 0.
func (c *Collection[B]) Resize(n int) error {
	if n < 0 {
		return coordErrorf(fmt.Sprintf("Collection.Resize(%d)", n), ErrOutOfRange)
	}
	if n <= len(c.raws) {
		c.raws = c.raws[:n]

		return nil
	}
	c.raws = append(c.raws, make([]RawPoint, n-len(c.raws))...)

	return nil
}

// Grow makes room for n more points without changing Len.
// Panics when n < 0, like slices.Grow.
func (c *Collection[B]) Grow(n int) { c.raws = slices.Grow(c.raws, n) }

// Raws returns a copy of all elements in order.
func (c *Collection[B]) Raws() []RawPoint {
	cp := make([]RawPoint, len(c.raws))
	copy(cp, c.raws)

	return cp
}

// Clone returns an independent copy of the collection.
func (c *Collection[B]) Clone() *Collection[B] {
	return CollectionOf(c.basis, c.raws...)
}

// TransformCollection converts every point of c into basis to and returns a
// new collection of the same length and order. c is not modified.
func TransformCollection[To, From Basis](c *Collection[From], to To) (*Collection[To], error) {
	raws, err := TransformAll(c.raws, c.basis, to)
	if err != nil {
		return nil, err
	}

	return &Collection[To]{raws: raws, basis: to}, nil
}

// TransformCollectionParallel is TransformCollection spread over a bounded
// worker pool (see TransformAllParallel).
func TransformCollectionParallel[To, From Basis](c *Collection[From], to To, opts ...Option) (*Collection[To], error) {
	raws, err := TransformAllParallel(c.raws, c.basis, to, opts...)
	if err != nil {
		return nil, err
	}

	return &Collection[To]{raws: raws, basis: to}, nil
}
