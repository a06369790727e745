// SPDX-License-Identifier: MIT

package coord

import (
	"fmt"
	"math"
)

// ScaledCartesian is Cartesian divided by a uniform positive factor:
// converting to Cartesian multiplies by the scale, converting from Cartesian
// divides by it. Two ScaledCartesian values with different scales are
// different bases.
type ScaledCartesian struct {
	scale float64
}

// NewScaledCartesian returns the basis for scale, or ErrInvalidScale when
// scale is not finite and strictly positive.
func NewScaledCartesian(scale float64) (ScaledCartesian, error) {
	s := ScaledCartesian{scale: scale}
	if err := s.validate(); err != nil {
		return ScaledCartesian{}, coordErrorf("NewScaledCartesian", err)
	}

	return s, nil
}

// MustScaledCartesian is like NewScaledCartesian but panics on error.
func MustScaledCartesian(scale float64) ScaledCartesian {
	s, err := NewScaledCartesian(scale)
	if err != nil {
		panic(err)
	}

	return s
}

// Scale returns the scale factor.
func (s ScaledCartesian) Scale() float64 { return s.scale }

// validate rejects the zero value and any non-finite or non-positive scale.
func (s ScaledCartesian) validate() error {
	if math.IsNaN(s.scale) || math.IsInf(s.scale, 0) || s.scale <= 0 {
		return fmt.Errorf("scale %g: %w", s.scale, ErrInvalidScale)
	}

	return nil
}

// ToCartesian multiplies every component by the scale.
func (s ScaledCartesian) ToCartesian(p RawPoint) (RawPoint, error) {
	if err := s.validate(); err != nil {
		return RawPoint{}, coordErrorf("ScaledCartesian.ToCartesian", err)
	}

	return RawPoint{p[0] * s.scale, p[1] * s.scale, p[2] * s.scale}, nil
}

// FromCartesian divides every component by the scale.
func (s ScaledCartesian) FromCartesian(p RawPoint) (RawPoint, error) {
	if err := s.validate(); err != nil {
		return RawPoint{}, coordErrorf("ScaledCartesian.FromCartesian", err)
	}

	return RawPoint{p[0] / s.scale, p[1] / s.scale, p[2] / s.scale}, nil
}

// ratioTo returns s/to, the factor taking coordinates in s to coordinates in to.
func (s ScaledCartesian) ratioTo(to ScaledCartesian) (float64, error) {
	if err := s.validate(); err != nil {
		return 0, err
	}
	if err := to.validate(); err != nil {
		return 0, err
	}

	return s.scale / to.scale, nil
}

// DirectTo converts ScaledCartesian(s1) → ScaledCartesian(s2) with a single
// multiplication by s1/s2 per component.
func (s ScaledCartesian) DirectTo(to Basis) (Converter, bool) {
	t, ok := to.(ScaledCartesian)
	if !ok {
		return nil, false
	}

	return func(p RawPoint) (RawPoint, error) {
		r, err := s.ratioTo(t)
		if err != nil {
			return RawPoint{}, coordErrorf("ScaledCartesian.DirectTo", err)
		}

		return RawPoint{p[0] * r, p[1] * r, p[2] * r}, nil
	}, true
}

// DirectBatchTo is DirectTo over a slice, computing s1/s2 once.
func (s ScaledCartesian) DirectBatchTo(to Basis) (BatchFunc, bool) {
	t, ok := to.(ScaledCartesian)
	if !ok {
		return nil, false
	}

	return func(dst, src []RawPoint) error {
		r, err := s.ratioTo(t)
		if err != nil {
			return coordErrorf("ScaledCartesian.DirectBatchTo", err)
		}
		for i, p := range src {
			dst[i] = RawPoint{p[0] * r, p[1] * r, p[2] * r}
		}

		return nil
	}, true
}

// String implements fmt.Stringer.
func (s ScaledCartesian) String() string {
	return fmt.Sprintf("ScaledCartesian(%g)", s.scale)
}
