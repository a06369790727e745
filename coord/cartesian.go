// SPDX-License-Identifier: MIT

package coord

// Cartesian is the canonical basis (x, y, z). Every other basis bridges
// through it.
type Cartesian struct{}

// ToCartesian is the identity.
func (Cartesian) ToCartesian(p RawPoint) (RawPoint, error) { return p, nil }

// FromCartesian is the identity.
func (Cartesian) FromCartesian(p RawPoint) (RawPoint, error) { return p, nil }

// DirectTo registers Cartesian → Cartesian as the identity, so that pair
// never reaches the Cartesian bridging rules.
func (Cartesian) DirectTo(to Basis) (Converter, bool) {
	if _, ok := to.(Cartesian); ok {
		return identity, true
	}

	return nil, false
}

// DirectBatchTo copies a whole slice for Cartesian → Cartesian.
func (Cartesian) DirectBatchTo(to Basis) (BatchFunc, bool) {
	if _, ok := to.(Cartesian); ok {
		return identityBatch, true
	}

	return nil, false
}

// String implements fmt.Stringer.
func (Cartesian) String() string { return "Cartesian" }

// isCartesian reports whether b is the Cartesian basis.
func isCartesian(b Basis) bool {
	_, ok := b.(Cartesian)

	return ok
}
