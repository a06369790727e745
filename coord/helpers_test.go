// SPDX-License-Identifier: MIT
// Package coord_test contains shared fixtures: a basis catalog, seeded point
// generators and test-only bases that exercise the resolution protocol.

package coord_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvpoint/coord"
	"github.com/stretchr/testify/require"
)

const roundTripTol = 1e-9

var (
	errDirectMarker = errors.New("direct converter used")
	errTargetMarker = errors.New("target converter used")
	errBatchMarker  = errors.New("batch converter used")
	errNegative     = errors.New("negative first component")
)

// permuted stores Cartesian (x,y,z) as (y,z,x). It only knows its own
// Cartesian converters, so every other pair goes through the fallback.
type permuted struct{}

func (permuted) ToCartesian(p coord.RawPoint) (coord.RawPoint, error) {
	return coord.RawPoint{p[2], p[0], p[1]}, nil
}

func (permuted) FromCartesian(p coord.RawPoint) (coord.RawPoint, error) {
	return coord.RawPoint{p[1], p[2], p[0]}, nil
}

func (permuted) String() string { return "permuted" }

// marked is permuted plus a direct converter to Spherical that always fails.
type marked struct{ permuted }

func (marked) DirectTo(to coord.Basis) (coord.Converter, bool) {
	if _, ok := to.(coord.Spherical); !ok {
		return nil, false
	}

	return func(coord.RawPoint) (coord.RawPoint, error) { return coord.RawPoint{}, errDirectMarker }, true
}

// claimant is permuted plus a target-side converter that always fails,
// offered for Cylindrical and rival sources.
type claimant struct{ permuted }

func (claimant) DirectFrom(from coord.Basis) (coord.Converter, bool) {
	switch from.(type) {
	case coord.Cylindrical, rival:
		return func(coord.RawPoint) (coord.RawPoint, error) { return coord.RawPoint{}, errTargetMarker }, true
	default:
		return nil, false
	}
}

// rival offers its own direct converter into claimant.
type rival struct{ permuted }

func (rival) DirectTo(to coord.Basis) (coord.Converter, bool) {
	if _, ok := to.(claimant); !ok {
		return nil, false
	}

	return func(coord.RawPoint) (coord.RawPoint, error) { return coord.RawPoint{}, errDirectMarker }, true
}

// batchMarked is permuted plus a batch hook that always fails.
type batchMarked struct{ permuted }

func (batchMarked) DirectBatchTo(coord.Basis) (coord.BatchFunc, bool) {
	return func(dst, src []coord.RawPoint) error { return errBatchMarker }, true
}

// picky refuses points whose first component is negative.
type picky struct{ permuted }

func (picky) ToCartesian(p coord.RawPoint) (coord.RawPoint, error) {
	if p[0] < 0 {
		return coord.RawPoint{}, errNegative
	}

	return permuted{}.ToCartesian(p)
}

// namedBasis pairs a catalog basis with a subtest label.
type namedBasis struct {
	name  string
	basis coord.Basis
}

var permutationRows = [3][3]float64{
	{0, 1, 0},
	{0, 0, 1},
	{1, 0, 0},
}

// catalog returns one or more instances of every concrete basis.
func catalog(t testing.TB) []namedBasis {
	t.Helper()
	skew, err := coord.NewVectorBasis([3][3]float64{
		{2, 1, 0},
		{0, 3, 1},
		{1, 0, 4},
	})
	require.NoError(t, err)

	return []namedBasis{
		{"Cartesian", coord.Cartesian{}},
		{"Cylindrical", coord.Cylindrical{}},
		{"Spherical", coord.Spherical{}},
		{"Scaled2", coord.MustScaledCartesian(2)},
		{"Scaled0.3", coord.MustScaledCartesian(0.3)},
		{"VectorPerm", coord.MustVectorBasis(permutationRows)},
		{"VectorSkew", skew},
	}
}

// randomCartesian returns n points with components in [-10, 10).
func randomCartesian(seed int64, n int) []coord.RawPoint {
	rng := rand.New(rand.NewSource(seed))
	out := make([]coord.RawPoint, n)
	for i := range out {
		out[i] = coord.RawPoint{rng.Float64()*20 - 10, rng.Float64()*20 - 10, rng.Float64()*20 - 10}
	}

	return out
}

// pointsIn expresses seeded Cartesian points in basis b.
func pointsIn(t testing.TB, b coord.Basis, seed int64, n int) []coord.RawPoint {
	t.Helper()
	pts, err := coord.TransformAll(randomCartesian(seed, n), coord.Cartesian{}, b)
	require.NoError(t, err)

	return pts
}

// requirePanicsWith asserts that fn panics with an error wrapping target.
func requirePanicsWith(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		require.NotNil(t, r, "expected panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		require.ErrorIs(t, err, target)
	}()
	fn()
}
