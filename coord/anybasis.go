// SPDX-License-Identifier: MIT

// Package coord: the dynamic basis.
//
// AnyBasis is a closed sum type over the basis catalog: a Kind tag plus the
// payload of the parametric variants. Dispatch is a single switch from the tag
// back to the concrete value, after which the ordinary static protocol runs.
// Converting between two AnyBasis values unwraps both sides the same way, so
// no pair of variants ever needs enumerating.
package coord

import "fmt"

// Kind tags the concrete variant held by an AnyBasis.
type Kind uint8

const (
	// KindInvalid is the zero Kind; an AnyBasis carrying it is unusable.
	KindInvalid Kind = iota
	KindCartesian
	KindCylindrical
	KindSpherical
	KindScaledCartesian
	KindVectorBasis
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindCartesian:
		return "Cartesian"
	case KindCylindrical:
		return "Cylindrical"
	case KindSpherical:
		return "Spherical"
	case KindScaledCartesian:
		return "ScaledCartesian"
	case KindVectorBasis:
		return "VectorBasis"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// AnyBasis holds exactly one catalog basis chosen at run time.
// Copies are independent values; the only shared data is the immutable
// factorization inside a VectorBasis.
//
// The zero AnyBasis holds nothing. Using it in a transform is a programming
// error and panics with ErrUnsupportedBasis.
type AnyBasis struct {
	kind   Kind
	scaled ScaledCartesian
	vector VectorBasis
}

// NewAnyBasis wraps b. An AnyBasis (or *AnyBasis) argument is flattened to the
// basis it holds, and a pointer to a catalog basis is dereferenced. A nil
// basis, typed nil pointers included, yields ErrNilBasis; any type outside
// the catalog yields ErrUnsupportedBasis.
func NewAnyBasis(b Basis) (AnyBasis, error) {
	if isNilBasis(b) {
		return AnyBasis{}, coordErrorf("NewAnyBasis", ErrNilBasis)
	}
	b = deref(b)
	switch v := b.(type) {
	case Cartesian:
		return AnyBasis{kind: KindCartesian}, nil
	case Cylindrical:
		return AnyBasis{kind: KindCylindrical}, nil
	case Spherical:
		return AnyBasis{kind: KindSpherical}, nil
	case ScaledCartesian:
		return AnyBasis{kind: KindScaledCartesian, scaled: v}, nil
	case VectorBasis:
		return AnyBasis{kind: KindVectorBasis, vector: v}, nil
	case AnyBasis:
		if v.kind == KindInvalid {
			return AnyBasis{}, coordErrorf("NewAnyBasis", fmt.Errorf("empty AnyBasis: %w", ErrUnsupportedBasis))
		}

		return v, nil
	default:
		return AnyBasis{}, coordErrorf("NewAnyBasis", fmt.Errorf("%T: %w", b, ErrUnsupportedBasis))
	}
}

// MustAnyBasis is like NewAnyBasis but panics on error.
func MustAnyBasis(b Basis) AnyBasis {
	a, err := NewAnyBasis(b)
	if err != nil {
		panic(err)
	}

	return a
}

// Kind returns the tag of the held variant.
func (a AnyBasis) Kind() Kind { return a.kind }

// IsZero reports whether a holds no basis.
func (a AnyBasis) IsZero() bool { return a.kind == KindInvalid }

// Concrete returns the held basis as its concrete type.
// Panics with ErrUnsupportedBasis when a holds nothing.
func (a AnyBasis) Concrete() Basis {
	switch a.kind {
	case KindCartesian:
		return Cartesian{}
	case KindCylindrical:
		return Cylindrical{}
	case KindSpherical:
		return Spherical{}
	case KindScaledCartesian:
		return a.scaled
	case KindVectorBasis:
		return a.vector
	default:
		panic(fmt.Errorf("coord: AnyBasis.Concrete on %v: %w", a.kind, ErrUnsupportedBasis))
	}
}

// ToCartesian converts p from the held basis into Cartesian, through the
// same resolution as Transform.
func (a AnyBasis) ToCartesian(p RawPoint) (RawPoint, error) {
	return transform(p, a.Concrete(), Cartesian{})
}

// FromCartesian converts Cartesian p into the held basis, through the same
// resolution as Transform.
func (a AnyBasis) FromCartesian(p RawPoint) (RawPoint, error) {
	return transform(p, Cartesian{}, a.Concrete())
}

// String implements fmt.Stringer.
func (a AnyBasis) String() string {
	if a.kind == KindInvalid {
		return "AnyBasis(<empty>)"
	}

	return fmt.Sprintf("AnyBasis(%v)", a.Concrete())
}

// concrete unwraps an AnyBasis endpoint; other bases pass through unchanged.
func concrete(b Basis) Basis {
	switch v := deref(b).(type) {
	case AnyBasis:
		return v.Concrete()
	default:
		return v
	}
}

// deref turns a pointer to a catalog basis (or to an AnyBasis) into the value
// it points at, so type switches on values see it. b must not be a typed nil.
func deref(b Basis) Basis {
	switch v := b.(type) {
	case *Cartesian:
		return *v
	case *Cylindrical:
		return *v
	case *Spherical:
		return *v
	case *ScaledCartesian:
		return *v
	case *VectorBasis:
		return *v
	case *AnyBasis:
		return *v
	default:
		return b
	}
}
