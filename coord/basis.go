// SPDX-License-Identifier: MIT

// Package coord: the basis contract.
// Every basis bridges to Cartesian in both directions; that is the whole
// mandatory contract. Direct pair converters and batch converters are
// optional capabilities discovered through interface assertions.
package coord

// Converter maps a RawPoint from one basis to another.
type Converter func(p RawPoint) (RawPoint, error)

// BatchFunc writes the conversion of every src[i] into dst[i].
// len(dst) == len(src) is guaranteed by the caller.
type BatchFunc func(dst, src []RawPoint) error

// Basis is the capability every coordinate basis must implement.
// A type missing either converter does not satisfy Basis, so a basis without
// its Cartesian bridge cannot be passed to any transform.
type Basis interface {
	// ToCartesian converts p from this basis into Cartesian coordinates.
	ToCartesian(p RawPoint) (RawPoint, error)

	// FromCartesian converts Cartesian p into this basis.
	FromCartesian(p RawPoint) (RawPoint, error)
}

// PairConverter is implemented by bases that convert directly into some other
// basis types, skipping the Cartesian bridge. DirectTo returns the converter
// for the concrete target, or false when no direct converter exists.
// A direct converter must not call back into Transform for the same pair.
type PairConverter interface {
	Basis
	DirectTo(to Basis) (Converter, bool)
}

// TargetConverter is the mirror of PairConverter for bases defined outside
// this package: it lets a basis supply the direct converter for a pair in
// which it is the target, e.g. Cylindrical → T, without touching the source
// type. DirectFrom receives the concrete source basis.
// When both endpoints offer a converter for the same pair, the source's
// DirectTo wins.
type TargetConverter interface {
	Basis
	DirectFrom(from Basis) (Converter, bool)
}

// BatchConverter is implemented by bases that can convert a whole slice into
// a target more cheaply than point by point. The results must equal the
// element-wise conversion.
type BatchConverter interface {
	Basis
	DirectBatchTo(to Basis) (BatchFunc, bool)
}

// Compile-time assertions: the catalog satisfies the contract.
var (
	_ Basis = Cartesian{}
	_ Basis = Cylindrical{}
	_ Basis = Spherical{}
	_ Basis = ScaledCartesian{}
	_ Basis = VectorBasis{}
	_ Basis = AnyBasis{}

	_ PairConverter  = Cartesian{}
	_ PairConverter  = Cylindrical{}
	_ PairConverter  = Spherical{}
	_ PairConverter  = ScaledCartesian{}
	_ BatchConverter = Cartesian{}
	_ BatchConverter = Cylindrical{}
	_ BatchConverter = Spherical{}
	_ BatchConverter = ScaledCartesian{}
)

// identity returns p unchanged.
func identity(p RawPoint) (RawPoint, error) { return p, nil }

// identityBatch copies src into dst.
func identityBatch(dst, src []RawPoint) error {
	copy(dst, src)

	return nil
}
