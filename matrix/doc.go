// SPDX-License-Identifier: MIT

// Package matrix provides the dense numeric core shared by the lowrank packages.
//
// The matrix package provides:
//
//   - Matrix: a minimal interface (Rows, Cols, At, Set, Clone) whose accessors
//     return errors instead of panicking.
//   - Dense: a row-major float64 implementation with an optional finite-only
//     numeric policy fixed at construction (see WithNoValidateNaNInf).
//   - Validators (ValidateNotNil, ValidateFinite, ValidateSymmetric, ...) that
//     every kernel runs before touching data.
//   - Kernels: Add, Sub, Scale, Mul, Transpose, Gram, FrobeniusNorm, AllClose
//     and a cyclic Jacobi Eigen solver for symmetric matrices.
//   - A copy-only bridge to gonum/mat (ToGonum, FromGonum).
//
// Errors are package sentinels (ErrNilMatrix, ErrNaNInf, ...) wrapped with an
// operation tag; match them with errors.Is.
//
// Example:
//
//	a, _ := matrix.FromRows([][]float64{{3, 0}, {0, 4}})
//	g, _ := matrix.Gram(a)            // aᵀa = diag(9, 16)
//	vals, _, _ := matrix.Eigen(g, 1e-12, 10)
//	fmt.Println(vals)                 // [9 16]
package matrix
