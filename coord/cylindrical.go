// SPDX-License-Identifier: MIT

package coord

import "math"

// Cylindrical interprets a RawPoint as (r, φ, z): radius from the z axis,
// azimuth measured from +x towards +y, and height.
type Cylindrical struct{}

// ToCartesian computes (r·cosφ, r·sinφ, z).
func (Cylindrical) ToCartesian(p RawPoint) (RawPoint, error) {
	sinPhi, cosPhi := math.Sincos(p[1])

	return RawPoint{p[0] * cosPhi, p[0] * sinPhi, p[2]}, nil
}

// FromCartesian computes (√(x²+y²), atan2(y,x), z), φ in (−π, π].
// On the z axis (x = y = 0) φ is 0.
func (Cylindrical) FromCartesian(p RawPoint) (RawPoint, error) {
	x, y := p[0], p[1]

	return RawPoint{math.Sqrt(x*x + y*y), azimuth(x, y), p[2]}, nil
}

// DirectTo registers Cylindrical → Cylindrical as the identity.
func (Cylindrical) DirectTo(to Basis) (Converter, bool) {
	if _, ok := to.(Cylindrical); ok {
		return identity, true
	}

	return nil, false
}

// DirectBatchTo copies a whole slice for Cylindrical → Cylindrical.
func (Cylindrical) DirectBatchTo(to Basis) (BatchFunc, bool) {
	if _, ok := to.(Cylindrical); ok {
		return identityBatch, true
	}

	return nil, false
}

// String implements fmt.Stringer.
func (Cylindrical) String() string { return "Cylindrical" }

// azimuth is atan2(y, x) with the axis convention: 0 when x = y = 0,
// whatever the signs of the zeros.
func azimuth(x, y float64) float64 {
	if x == 0 && y == 0 {
		return 0
	}

	return math.Atan2(y, x)
}
