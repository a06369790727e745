// SPDX-License-Identifier: MIT
// Package matrix provides the linear-algebra kernels used by vector bases:
// matrix-vector product and a pivoted LU factorization with triangular solves.
// All functions perform strict fail-fast validation and return clear errors.
//
// Notes:
//   - All kernels use the central validators and wrap errors via matrixErrorf.
//   - Fast paths operate on *Dense flat storage; the generic path goes through At.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial sum value for forward/backward substitution and similar.
const ZeroSum = 0.0

// ZeroPivot is the sentinel for detecting an exact zero pivot.
const ZeroPivot = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMatVec = "MatVec"
	opLU     = "FactorLU"
	opSolve  = "LU.Solve"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; x non-nil; len(x) == m.Cols().
// Fast-path: *Dense performs one pass per row with flat indexing.
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows) // allocate exactly rows outputs

	// Fast-path: *Dense allows flat, row-major dot-products.
	if d, ok := m.(*Dense); ok {
		var i, j, base int
		var acc float64
		for i = 0; i < d.r; i++ { // iterate rows deterministically
			acc = ZeroSum
			base = i * d.c
			for j = 0; j < d.c; j++ {
				acc += d.data[base+j] * x[j] // accumulate a(i,j)*x(j)
			}
			y[i] = acc
		}

		return y, nil
	}

	// Fallback: interface-based dot-products via At.
	var i, j int
	var mv float64
	var err error
	for i = 0; i < rows; i++ {
		y[i] = ZeroSum
		for j = 0; j < cols; j++ {
			mv, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opMatVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			y[i] += mv * x[j]
		}
	}

	return y, nil
}

// LU is an immutable factorization P·A = L·U of a square matrix A.
// L (unit lower triangular, diagonal implicit) and U share one row-major
// buffer; perm[i] is the row of A that ended up in row i.
// An LU is safe for concurrent use by multiple goroutines.
type LU struct {
	n    int
	lu   []float64 // packed L (strictly below diagonal) and U (diagonal and above)
	perm []int     // row permutation
	sign float64   // +1 or -1, parity of perm
}

// FactorLU computes a Doolittle factorization with partial (row) pivoting.
// Implementation:
//   - Stage 1: Validate m (not nil, square, finite); copy into a packed work buffer.
//   - Stage 2: For k=0..n-1 pick the row with the largest |a(i,k)|, i ≥ k, swap it
//     into place, then eliminate below the pivot storing multipliers in L.
//   - Stage 3: Reject the factorization when a pivot is exactly zero or when
//     min|U(i,i)| ≤ tol·max|U(i,i)| (pivot-ratio conditioning test).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square), ErrNaNInf, ErrSingular.
//
// Determinism:
//   - Ties in the pivot search keep the lowest row index.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func FactorLU(m Matrix, opts ...Option) (*LU, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	if err := ValidateFinite(m); err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	o := gatherOptions(opts...)

	n := m.Rows()
	work := make([]float64, n*n)
	if d, ok := m.(*Dense); ok {
		copy(work, d.data)
	} else {
		var i, j int
		var v float64
		var err error
		for i = 0; i < n; i++ {
			for j = 0; j < n; j++ {
				if v, err = m.At(i, j); err != nil {
					return nil, matrixErrorf(opLU, fmt.Errorf("At(%d,%d): %w", i, j, err))
				}
				work[i*n+j] = v
			}
		}
	}

	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	sign := 1.0

	var (
		i, j, k, p int
		best, mag  float64
		pivot, f   float64
	)
	for k = 0; k < n; k++ {
		// Pivot search on column k.
		p, best = k, math.Abs(work[k*n+k])
		for i = k + 1; i < n; i++ {
			if mag = math.Abs(work[i*n+k]); mag > best {
				p, best = i, mag
			}
		}
		if best == ZeroPivot {
			return nil, matrixErrorf(opLU, fmt.Errorf("zero pivot in column %d: %w", k, ErrSingular))
		}
		if p != k {
			for j = 0; j < n; j++ {
				work[k*n+j], work[p*n+j] = work[p*n+j], work[k*n+j]
			}
			perm[k], perm[p] = perm[p], perm[k]
			sign = -sign
		}

		// Eliminate below the pivot.
		pivot = work[k*n+k]
		for i = k + 1; i < n; i++ {
			f = work[i*n+k] / pivot
			work[i*n+k] = f // store multiplier in L
			if f == 0 {
				continue
			}
			for j = k + 1; j < n; j++ {
				work[i*n+j] -= f * work[k*n+j]
			}
		}
	}

	// Pivot-ratio conditioning test.
	minPiv, maxPiv := math.Inf(1), 0.0
	for k = 0; k < n; k++ {
		mag = math.Abs(work[k*n+k])
		minPiv = math.Min(minPiv, mag)
		maxPiv = math.Max(maxPiv, mag)
	}
	if minPiv <= o.pivotTol*maxPiv {
		return nil, matrixErrorf(opLU, fmt.Errorf("pivot ratio %g below tolerance %g: %w",
			minPiv/maxPiv, o.pivotTol, ErrSingular))
	}

	return &LU{n: n, lu: work, perm: perm, sign: sign}, nil
}

// Size returns n for an n×n factorization.
func (f *LU) Size() int { return f.n }

// Det returns the determinant of the factored matrix.
func (f *LU) Det() float64 {
	d := f.sign
	for k := 0; k < f.n; k++ {
		d *= f.lu[k*f.n+k]
	}

	return d
}

// Solve returns x with A·x = b.
// Errors: ErrNilMatrix (nil receiver or b), ErrDimensionMismatch.
// Complexity: Time O(n^2), Space O(n).
func (f *LU) Solve(b []float64) ([]float64, error) {
	if f == nil {
		return nil, matrixErrorf(opSolve, ErrNilMatrix)
	}
	x := make([]float64, f.n)
	if err := f.SolveInto(x, b); err != nil {
		return nil, err
	}

	return x, nil
}

// SolveInto writes the solution of A·x = b into dst without allocating.
// dst and b must both have length n and must not overlap.
//
// Implementation:
//   - Stage 1: permute b into dst (y = P·b).
//   - Stage 2: forward substitution with unit L.
//   - Stage 3: backward substitution with U.
//
// Complexity: Time O(n^2), Space O(1).
func (f *LU) SolveInto(dst, b []float64) error {
	if f == nil {
		return matrixErrorf(opSolve, ErrNilMatrix)
	}
	if err := ValidateVecLen(b, f.n); err != nil {
		return matrixErrorf(opSolve, err)
	}
	if err := ValidateVecLen(dst, f.n); err != nil {
		return matrixErrorf(opSolve, err)
	}

	n := f.n
	var i, k int
	var sum float64
	for i = 0; i < n; i++ {
		dst[i] = b[f.perm[i]]
	}
	// Forward substitution: L*y = P*b
	for i = 0; i < n; i++ {
		sum = dst[i]
		for k = 0; k < i; k++ {
			sum -= f.lu[i*n+k] * dst[k]
		}
		dst[i] = sum
	}
	// Backward substitution: U*x = y
	for i = n - 1; i >= 0; i-- {
		sum = dst[i]
		for k = i + 1; k < n; k++ {
			sum -= f.lu[i*n+k] * dst[k]
		}
		dst[i] = sum / f.lu[i*n+i]
	}

	return nil
}
