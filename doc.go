// Package lvpoint is a small library for 3-component points that know which
// coordinate basis they are expressed in, and for moving them between bases.
//
// What is inside?
//
//	coord/   RawPoint, the basis catalog (Cartesian, Cylindrical, Spherical,
//	         ScaledCartesian, VectorBasis), run-time AnyBasis, Point and
//	         Collection wrappers, single-point and batch transforms
//	matrix/  dense row-major matrices, validators, MatVec and a pivoted LU
//	         factorization used by VectorBasis
//
// How a transform is chosen:
//
//  1. a direct converter for the exact pair of bases (identity pairs,
//     ScaledCartesian→ScaledCartesian), offered by the source or, failing
//     that, by the target,
//  2. otherwise, if the source is Cartesian, the target's FromCartesian,
//  3. otherwise, if the target is Cartesian, the source's ToCartesian,
//  4. otherwise source→Cartesian→target.
//
// Wrapping either side in AnyBasis, or passing a pointer to a catalog basis,
// never changes the chosen converter, so run-time and compile-time basis
// selection give bit-identical results.
//
// Quick example:
//
//	p := coord.NewPoint(1, 0, 5, coord.Cylindrical{})
//	q, err := coord.TransformPoint(p, coord.Cartesian{})
//	// q.Raw() == (1, 0, 5)
//
//	go get github.com/katalvlaran/lvpoint/coord
package lvpoint
