// SPDX-License-Identifier: MIT

package coord

import (
	"fmt"

	"github.com/katalvlaran/lvpoint/matrix"
)

// VectorBasis is a basis of three arbitrary, linearly independent Cartesian
// vectors, stored as the rows of a 3×3 matrix M.
//
// Converting to Cartesian is the product M·coords; converting from Cartesian
// solves M·coords = v. The solve reuses a pivoted LU factorization computed
// once by NewVectorBasis, so a VectorBasis is cheap to copy and safe to share
// between goroutines. There is no direct VectorBasis → VectorBasis converter:
// that pair always goes through Cartesian.
type VectorBasis struct {
	rows [3][3]float64
	m    *matrix.Dense // immutable after construction
	lu   *matrix.LU
}

// VectorOption configures NewVectorBasis.
type VectorOption func(*vectorOptions)

type vectorOptions struct {
	matrixOpts []matrix.Option
}

// WithSingularTolerance sets the relative pivot tolerance below which the
// basis matrix is rejected as singular (default matrix.DefaultPivotTolerance).
// Panics when tol is not a finite value in [0, 1).
func WithSingularTolerance(tol float64) VectorOption {
	opt := matrix.WithPivotTolerance(tol) // validates eagerly

	return func(o *vectorOptions) { o.matrixOpts = append(o.matrixOpts, opt) }
}

// NewVectorBasis builds the basis whose i-th vector is rows[i].
//
// Implementation:
//   - Stage 1: apply VectorOption setters (WithSingularTolerance).
//   - Stage 2: copy rows into a matrix.Dense (finite entries only).
//   - Stage 3: factor it once with matrix.FactorLU; the pivot-ratio test
//     rejects singular and ill-conditioned vector sets.
//
// Errors (all wrap ErrNumerical):
//   - matrix.ErrNaNInf when an entry is NaN or ±Inf;
//   - matrix.ErrSingular when the vectors are linearly dependent or nearly so.
//
// Complexity:
//   - Time O(1) (a fixed 3×3 factorization), Space O(1).
//
// Notes:
//   - The factorization is shared, read-only, by every copy of the basis, so
//     FromCartesian is a triangular solve and never fails numerically.
func NewVectorBasis(rows [3][3]float64, opts ...VectorOption) (VectorBasis, error) {
	var o vectorOptions
	for _, set := range opts {
		if set != nil {
			set(&o)
		}
	}

	m, err := matrix.NewDenseFromRows([][]float64{rows[0][:], rows[1][:], rows[2][:]})
	if err != nil {
		return VectorBasis{}, numericalErrorf("NewVectorBasis", err)
	}
	lu, err := matrix.FactorLU(m, o.matrixOpts...)
	if err != nil {
		return VectorBasis{}, numericalErrorf("NewVectorBasis", err)
	}

	return VectorBasis{rows: rows, m: m, lu: lu}, nil
}

// MustVectorBasis is like NewVectorBasis but panics on error.
func MustVectorBasis(rows [3][3]float64, opts ...VectorOption) VectorBasis {
	v, err := NewVectorBasis(rows, opts...)
	if err != nil {
		panic(err)
	}

	return v
}

// Vectors returns a copy of the three basis vectors (rows of M).
func (v VectorBasis) Vectors() [3][3]float64 { return v.rows }

// Det returns det(M). The zero value reports 0.
func (v VectorBasis) Det() float64 {
	if v.lu == nil {
		return 0
	}

	return v.lu.Det()
}

// ToCartesian computes M·p.
// The zero value fails with ErrNumerical.
func (v VectorBasis) ToCartesian(p RawPoint) (RawPoint, error) {
	y, err := matrix.MatVec(v.m, p[:])
	if err != nil {
		return RawPoint{}, numericalErrorf("VectorBasis.ToCartesian", err)
	}

	return RawPoint{y[0], y[1], y[2]}, nil
}

// FromCartesian solves M·coords = p.
// The zero value fails with ErrNumerical.
func (v VectorBasis) FromCartesian(p RawPoint) (RawPoint, error) {
	var out RawPoint
	if err := v.lu.SolveInto(out[:], p[:]); err != nil {
		return RawPoint{}, numericalErrorf("VectorBasis.FromCartesian", err)
	}

	return out, nil
}

// String implements fmt.Stringer.
func (v VectorBasis) String() string {
	return fmt.Sprintf("VectorBasis%v", v.rows)
}
