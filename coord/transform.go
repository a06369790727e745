// SPDX-License-Identifier: MIT

// Package coord: the transform resolution protocol.
//
// Purpose:
//   - Pick, for a (from, to) pair, exactly one conversion rule in a fixed
//     priority order, so the outcome never depends on how the call was spelled.
//   - Reduce AnyBasis endpoints to their concrete variant before any rule is
//     tried; the dynamic layer is a redirection, never a second implementation.
//
// Complexity: O(1) per point for every catalog basis.
package coord

import "fmt"

// Route names the rule Transform applies to a pair of bases.
type Route int

const (
	// RouteDirect uses a direct converter offered by the source basis or,
	// failing that, by the target basis.
	RouteDirect Route = iota + 1

	// RouteFromCartesian uses the target's FromCartesian (source is Cartesian).
	RouteFromCartesian

	// RouteToCartesian uses the source's ToCartesian (target is Cartesian).
	RouteToCartesian

	// RouteFallback converts to Cartesian, then from Cartesian to the target.
	RouteFallback
)

// String implements fmt.Stringer.
func (r Route) String() string {
	switch r {
	case RouteDirect:
		return "direct"
	case RouteFromCartesian:
		return "from-cartesian"
	case RouteToCartesian:
		return "to-cartesian"
	case RouteFallback:
		return "fallback"
	default:
		return fmt.Sprintf("Route(%d)", int(r))
	}
}

// Resolve reports the rule Transform uses for (from, to) after unwrapping any
// AnyBasis endpoint or pointer to a catalog basis. Transform is driven by the same resolution, so the two
// never disagree.
func Resolve(from, to Basis) (Route, error) {
	if err := checkBases(from, to); err != nil {
		return 0, coordErrorf("Resolve", err)
	}
	route, _ := resolve(concrete(from), concrete(to))

	return route, nil
}

// Transform converts p, expressed in from, into to.
//
// Implementation:
//   - Stage 1: reject nil endpoints (ErrNilBasis), typed nil pointers included.
//   - Stage 2: unwrap AnyBasis and dereference pointers to catalog bases, so
//     every spelling of a basis resolves like its concrete value.
//   - Stage 3: pick the converter, most specific rule first:
//     1. from offers a direct converter for to (PairConverter.DirectTo);
//     2. to offers a direct converter from from (TargetConverter.DirectFrom);
//     3. from is Cartesian: to.FromCartesian;
//     4. to is Cartesian: from.ToCartesian;
//     5. otherwise Transform(Transform(p, from, Cartesian{}), Cartesian{}, to).
//   - Stage 4: run it once; converter errors propagate with the pair as context.
//
// Rules 1 and 2 both report RouteDirect. When both endpoints offer a
// converter, the source's wins.
//
// Errors:
//   - ErrNilBasis; whatever the chosen converter returns (ErrInvalidScale,
//     ErrNumerical, or errors of bases defined elsewhere).
//
// Complexity:
//   - Time O(1), no allocations on the direct and single-hop routes.
//
// Notes:
//   - A dynamic call returns exactly the bits of the equivalent static call.
//   - No partial result is returned on error.
func Transform(p RawPoint, from, to Basis) (RawPoint, error) {
	if err := checkBases(from, to); err != nil {
		return RawPoint{}, coordErrorf("Transform", err)
	}
	q, err := transform(p, concrete(from), concrete(to))
	if err != nil {
		return RawPoint{}, fmt.Errorf("Transform %v→%v: %w", from, to, err)
	}

	return q, nil
}

// transform runs the protocol on already unwrapped bases.
func transform(p RawPoint, from, to Basis) (RawPoint, error) {
	_, conv := resolve(from, to)

	return conv(p)
}

// resolve picks the rule and the converter implementing it.
// from and to must be concrete (not AnyBasis) and non-nil.
func resolve(from, to Basis) (Route, Converter) {
	if pc, ok := from.(PairConverter); ok {
		if conv, ok := pc.DirectTo(to); ok {
			return RouteDirect, conv
		}
	}
	if tc, ok := to.(TargetConverter); ok {
		if conv, ok := tc.DirectFrom(from); ok {
			return RouteDirect, conv
		}
	}
	if isCartesian(from) {
		return RouteFromCartesian, to.FromCartesian
	}
	if isCartesian(to) {
		return RouteToCartesian, from.ToCartesian
	}

	return RouteFallback, func(p RawPoint) (RawPoint, error) {
		cart, err := transform(p, from, Cartesian{})
		if err != nil {
			return RawPoint{}, err
		}

		return transform(cart, Cartesian{}, to)
	}
}

// checkBases rejects nil endpoints before any method is called on them.
func checkBases(from, to Basis) error {
	if isNilBasis(from) {
		return fmt.Errorf("source: %w", ErrNilBasis)
	}
	if isNilBasis(to) {
		return fmt.Errorf("target: %w", ErrNilBasis)
	}

	return nil
}

// isNilBasis also catches typed nil pointers to catalog bases and AnyBasis.
func isNilBasis(b Basis) bool {
	switch v := b.(type) {
	case nil:
		return true
	case *Cartesian:
		return v == nil
	case *Cylindrical:
		return v == nil
	case *Spherical:
		return v == nil
	case *ScaledCartesian:
		return v == nil
	case *VectorBasis:
		return v == nil
	case *AnyBasis:
		return v == nil
	default:
		return false
	}
}
