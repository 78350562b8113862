// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin, intention-revealing constructors on top of NewDense.
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//
// AI-Hints:
//   - Use NewZeros/ZerosLike for reconstruction targets, NewIdentity for
//     orthonormality checks (QᵀQ ≈ I), FromRows for literal fixtures.

package matrix

import "fmt"

const ctxFromRows = "FromRows"

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// Thin alias of NewDense.
func NewZeros(rows, cols int, opts ...Option) (*Dense, error) {
	return NewDense(rows, cols, opts...)
}

// NewIdentity returns I_n.
// Complexity: O(n²) zeroing + O(n) diagonal writes.
func NewIdentity(n int) (*Dense, error) {
	id, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		id.data[i*n+i] = 1.0
	}

	return id, nil
}

// ZerosLike returns a zero *Dense with the shape of m.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions.
func ZerosLike(m Matrix, opts ...Option) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}

	return NewDense(m.Rows(), m.Cols(), opts...)
}

// FromRows builds a Dense from a rectangular [][]float64 (copied).
//
// Errors:
//   - ErrInvalidDimensions for an empty input or empty first row.
//   - ErrBadShape for ragged rows.
//   - ErrNaNInf for non-finite values under the strict policy.
func FromRows(rows [][]float64, opts ...Option) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%s: %w", ctxFromRows, ErrInvalidDimensions)
	}
	r, c := len(rows), len(rows[0])
	flat := make([]float64, 0, r*c)
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("%s: row %d has %d cols, want %d: %w", ctxFromRows, i, len(row), c, ErrBadShape)
		}
		flat = append(flat, row...)
	}

	return NewDenseFrom(r, c, flat, opts...)
}
