// SPDX-License-Identifier: MIT
// Package coord_test: converters of the basis catalog.
//
// Coverage:
//   - Worked examples for every basis.
//   - Round trips across every ordered pair of catalog bases.
//   - Exact identity on equal bases.
//   - Degenerate inputs (zero radius, origin) stay finite.
//   - Construction errors for ScaledCartesian and VectorBasis.

package coord_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvpoint/coord"
	"github.com/katalvlaran/lvpoint/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScenario_VectorBasisFromCartesian(t *testing.T) {
	vb := coord.MustVectorBasis(permutationRows)

	got, err := coord.Transform(coord.RawPoint{4, 5, 6}, coord.Cartesian{}, vb)
	require.NoError(t, err)
	assert.Equal(t, coord.RawPoint{6, 4, 5}, got)

	back, err := coord.Transform(got, vb, coord.Cartesian{})
	require.NoError(t, err)
	assert.Equal(t, coord.RawPoint{4, 5, 6}, back)
}

func TestScenario_VectorBasisToCartesian(t *testing.T) {
	vb := coord.MustVectorBasis(permutationRows)

	got, err := coord.Transform(coord.RawPoint{4, 5, 6}, vb, coord.Cartesian{})
	require.NoError(t, err)
	assert.Equal(t, coord.RawPoint{5, 6, 4}, got)
}

func TestScenario_ScaledCartesian(t *testing.T) {
	s := coord.MustScaledCartesian(2)

	got, err := coord.Transform(coord.RawPoint{2, 4, 6}, coord.Cartesian{}, s)
	require.NoError(t, err)
	assert.Equal(t, coord.RawPoint{1, 2, 3}, got)

	back, err := coord.Transform(got, s, coord.Cartesian{})
	require.NoError(t, err)
	assert.Equal(t, coord.RawPoint{2, 4, 6}, back)
}

func TestScenario_CylindricalToCartesian(t *testing.T) {
	got, err := coord.Transform(coord.RawPoint{1, 0, 5}, coord.Cylindrical{}, coord.Cartesian{})
	require.NoError(t, err)
	assert.Equal(t, coord.RawPoint{1, 0, 5}, got)
}

func TestSpherical_KnownValues(t *testing.T) {
	tests := []struct {
		name string
		cart coord.RawPoint
		sph  coord.RawPoint
	}{
		{"north pole", coord.RawPoint{0, 0, 2}, coord.RawPoint{2, 0, 0}},
		{"south pole", coord.RawPoint{0, 0, -3}, coord.RawPoint{3, math.Pi, 0}},
		{"+x axis", coord.RawPoint{1, 0, 0}, coord.RawPoint{1, math.Pi / 2, 0}},
		{"+y axis", coord.RawPoint{0, 4, 0}, coord.RawPoint{4, math.Pi / 2, math.Pi / 2}},
		{"-x axis", coord.RawPoint{-1, 0, 0}, coord.RawPoint{1, math.Pi / 2, math.Pi}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got, err := coord.Spherical{}.FromCartesian(tc.cart)
			require.NoError(t, err)
			assert.True(t, got.ApproxEqual(tc.sph, 1e-12), "got %v want %v", got, tc.sph)

			back, err := coord.Spherical{}.ToCartesian(tc.sph)
			require.NoError(t, err)
			assert.True(t, back.ApproxEqual(tc.cart, 1e-12), "got %v want %v", back, tc.cart)
		})
	}
}

func TestCylindrical_KnownValues(t *testing.T) {
	got, err := coord.Cylindrical{}.FromCartesian(coord.RawPoint{0, -2, 1})
	require.NoError(t, err)
	assert.True(t, got.ApproxEqual(coord.RawPoint{2, -math.Pi / 2, 1}, 1e-12), "got %v", got)

	cart, err := coord.Cylindrical{}.ToCartesian(coord.RawPoint{2, math.Pi, -1})
	require.NoError(t, err)
	assert.True(t, cart.ApproxEqual(coord.RawPoint{-2, 0, -1}, 1e-12), "got %v", cart)
}

func TestZeroRadius_Finite(t *testing.T) {
	cyl, err := coord.Cylindrical{}.FromCartesian(coord.RawPoint{0, 0, 5})
	require.NoError(t, err)
	assert.Equal(t, coord.RawPoint{0, 0, 5}, cyl)

	sph, err := coord.Spherical{}.FromCartesian(coord.RawPoint{0, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, coord.RawPoint{0, 0, 0}, sph)

	// every catalog pair keeps the origin finite
	for _, from := range catalog(t) {
		for _, to := range catalog(t) {
			got, err := coord.Transform(coord.RawPoint{}, from.basis, to.basis)
			require.NoError(t, err, "%s→%s", from.name, to.name)
			assert.True(t, got.IsFinite(), "%s→%s: %v", from.name, to.name, got)
		}
	}
}

func TestRoundTrip_AllPairs(t *testing.T) {
	bases := catalog(t)
	for _, a := range bases {
		for _, b := range bases {
			a, b := a, b
			t.Run(a.name+"→"+b.name, func(t *testing.T) {
				t.Parallel()
				for i, p := range pointsIn(t, a.basis, 42, 64) {
					mid, err := coord.Transform(p, a.basis, b.basis)
					require.NoError(t, err)
					back, err := coord.Transform(mid, b.basis, a.basis)
					require.NoError(t, err)
					require.True(t, back.ApproxEqual(p, roundTripTol),
						"point %d: %v → %v → %v", i, p, mid, back)
				}
			})
		}
	}
}

func TestIdentity_EqualBases(t *testing.T) {
	bases := []namedBasis{
		{"Cartesian", coord.Cartesian{}},
		{"Cylindrical", coord.Cylindrical{}},
		{"Spherical", coord.Spherical{}},
		{"Scaled", coord.MustScaledCartesian(0.7)},
	}
	pts := randomCartesian(3, 32)
	for _, nb := range bases {
		for _, p := range pts {
			got, err := coord.Transform(p, nb.basis, nb.basis)
			require.NoError(t, err)
			require.Equal(t, p, got, nb.name)
		}
	}

	// two instances with the same scale are still the same basis
	got, err := coord.Transform(pts[0], coord.MustScaledCartesian(3), coord.MustScaledCartesian(3))
	require.NoError(t, err)
	require.Equal(t, pts[0], got)
}

func TestScaledCartesian_DistinctScales(t *testing.T) {
	got, err := coord.Transform(coord.RawPoint{1, 2, 3}, coord.MustScaledCartesian(2), coord.MustScaledCartesian(4))
	require.NoError(t, err)
	assert.Equal(t, coord.RawPoint{0.5, 1, 1.5}, got)
}

func TestScaledCartesian_InvalidScale(t *testing.T) {
	for _, s := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err := coord.NewScaledCartesian(s)
		require.ErrorIs(t, err, coord.ErrInvalidScale, "scale %v", s)
		require.Panics(t, func() { coord.MustScaledCartesian(s) })
	}

	// the zero value is not a usable basis
	_, err := coord.Transform(coord.RawPoint{1, 1, 1}, coord.ScaledCartesian{}, coord.Cartesian{})
	require.ErrorIs(t, err, coord.ErrInvalidScale)
	_, err = coord.Transform(coord.RawPoint{1, 1, 1}, coord.MustScaledCartesian(1), coord.ScaledCartesian{})
	require.ErrorIs(t, err, coord.ErrInvalidScale)
}

func TestVectorBasis_Singular(t *testing.T) {
	tests := []struct {
		name string
		rows [3][3]float64
	}{
		{"zero", [3][3]float64{}},
		{"repeated", [3][3]float64{{1, 2, 3}, {1, 2, 3}, {0, 0, 1}}},
		{"coplanar", [3][3]float64{{1, 0, 0}, {0, 1, 0}, {1, 1, 0}}},
		{"near singular", [3][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1e-15}}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := coord.NewVectorBasis(tc.rows)
			require.ErrorIs(t, err, coord.ErrNumerical)
			require.ErrorIs(t, err, matrix.ErrSingular)
			require.Panics(t, func() { coord.MustVectorBasis(tc.rows) })
		})
	}

	_, err := coord.NewVectorBasis([3][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, math.NaN()}})
	require.ErrorIs(t, err, coord.ErrNumerical)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestVectorBasis_SingularTolerance(t *testing.T) {
	rows := [3][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1e-15}}
	vb, err := coord.NewVectorBasis(rows, coord.WithSingularTolerance(0))
	require.NoError(t, err)
	assert.InDelta(t, 1e-15, vb.Det(), 1e-30)

	_, err = coord.NewVectorBasis([3][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1e-3}}, coord.WithSingularTolerance(0.01))
	require.ErrorIs(t, err, coord.ErrNumerical)

	require.Panics(t, func() { coord.WithSingularTolerance(-1) })
}

func TestVectorBasis_Accessors(t *testing.T) {
	vb := coord.MustVectorBasis(permutationRows)
	assert.Equal(t, permutationRows, vb.Vectors())
	assert.InDelta(t, 1.0, vb.Det(), 1e-15)
	assert.Equal(t, "VectorBasis[[0 1 0] [0 0 1] [1 0 0]]", vb.String())

	// the zero value has no factorization and reports a numerical failure
	var zero coord.VectorBasis
	assert.Equal(t, 0.0, zero.Det())
	_, err := zero.ToCartesian(coord.RawPoint{1, 2, 3})
	require.ErrorIs(t, err, coord.ErrNumerical)
	_, err = zero.FromCartesian(coord.RawPoint{1, 2, 3})
	require.ErrorIs(t, err, coord.ErrNumerical)
}

func TestBasis_String(t *testing.T) {
	assert.Equal(t, "Cartesian", coord.Cartesian{}.String())
	assert.Equal(t, "Cylindrical", coord.Cylindrical{}.String())
	assert.Equal(t, "Spherical", coord.Spherical{}.String())
	assert.Equal(t, "ScaledCartesian(2.5)", coord.MustScaledCartesian(2.5).String())
	assert.Equal(t, 2.5, coord.MustScaledCartesian(2.5).Scale())
}
