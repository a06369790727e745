// SPDX-License-Identifier: MIT

package coord

import "math"

// Spherical interprets a RawPoint as (r, θ, φ): radius, polar angle measured
// from +z (θ = 0 on the +z axis), and azimuth measured from +x towards +y.
type Spherical struct{}

// ToCartesian computes (r·sinθ·cosφ, r·sinθ·sinφ, r·cosθ).
func (Spherical) ToCartesian(p RawPoint) (RawPoint, error) {
	sinTheta, cosTheta := math.Sincos(p[1])
	sinPhi, cosPhi := math.Sincos(p[2])

	return RawPoint{
		p[0] * sinTheta * cosPhi,
		p[0] * sinTheta * sinPhi,
		p[0] * cosTheta,
	}, nil
}

// FromCartesian computes r = √(x²+y²+z²), θ = π/2 − atan2(z, √(x²+y²)) and
// φ = atan2(y, x). At the origin both angles are 0; on the z axis φ is 0.
func (Spherical) FromCartesian(p RawPoint) (RawPoint, error) {
	x, y, z := p[0], p[1], p[2]
	rhoSq := x*x + y*y
	r := math.Sqrt(rhoSq + z*z)

	theta := 0.5*math.Pi - math.Atan2(z, math.Sqrt(rhoSq))
	if x == 0 && y == 0 && z == 0 {
		theta = 0
	}

	return RawPoint{r, theta, azimuth(x, y)}, nil
}

// DirectTo registers Spherical → Spherical as the identity.
func (Spherical) DirectTo(to Basis) (Converter, bool) {
	if _, ok := to.(Spherical); ok {
		return identity, true
	}

	return nil, false
}

// DirectBatchTo copies a whole slice for Spherical → Spherical.
func (Spherical) DirectBatchTo(to Basis) (BatchFunc, bool) {
	if _, ok := to.(Spherical); ok {
		return identityBatch, true
	}

	return nil, false
}

// String implements fmt.Stringer.
func (Spherical) String() string { return "Spherical" }
