// SPDX-License-Identifier: MIT

// Package matrix offers the small dense linear-algebra kernel behind lvpoint's
// arbitrary vector bases.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with safe At/Set accessors that return
//     sentinel errors instead of panicking.
//   - Central validators (ValidateNotNil, ValidateSquare, ValidateVecLen,
//     ValidateFinite) shared by every kernel.
//   - MatVec for y = A·x.
//   - FactorLU, a Doolittle factorization with partial (row) pivoting, and
//     LU.Solve / LU.SolveInto for repeated solves against one factorization.
//
// Singular or ill-conditioned systems are detected at factorization time via a
// pivot-ratio test (see WithPivotTolerance) and reported as ErrSingular.
//
// All kernels are deterministic: fixed loop orders, no map iteration, no
// randomness. Inputs are never mutated.
package matrix
