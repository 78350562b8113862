// SPDX-License-Identifier: MIT
// Package spectral - the immutable economy SVD and its entry point.
//
// Layout:
//   - u  : rows × r, orthonormal columns
//   - s  : r singular values, non-negative, sorted descending
//   - vt : r × cols, orthonormal rows
//   - r  = min(rows, cols)
//
// A Decomposition is never mutated after Decompose returns it; accessors hand
// out copies, so one value may be shared by concurrent readers.

package spectral

import (
	"github.com/katalvlaran/lowrank/matrix"
)

// Decomposition is the economy singular value decomposition A = U·diag(S)·Vᵀ.
type Decomposition struct {
	rows, cols int
	u          *matrix.Dense
	s          []float64
	vt         *matrix.Dense
	backend    Backend
}

// Rows returns the row count of the decomposed matrix.
func (d *Decomposition) Rows() int { return d.rows }

// Cols returns the column count of the decomposed matrix.
func (d *Decomposition) Cols() int { return d.cols }

// Rank returns r = min(rows, cols), the number of singular triples held.
func (d *Decomposition) Rank() int { return len(d.s) }

// Backend reports which routine produced the factors.
func (d *Decomposition) Backend() Backend { return d.backend }

// Values returns a copy of the singular values (descending).
func (d *Decomposition) Values() []float64 {
	out := make([]float64, len(d.s))
	copy(out, d.s)

	return out
}

// U returns a copy of the left factors (rows × r).
func (d *Decomposition) U() *matrix.Dense { return d.u.Clone().(*matrix.Dense) }

// Vt returns a copy of the transposed right factors (r × cols).
func (d *Decomposition) Vt() *matrix.Dense { return d.vt.Clone().(*matrix.Dense) }

// Decompose computes the economy SVD of m.
// MAIN DESCRIPTION:
//   - Eager O(rows·cols·min(rows,cols)) factorization, done once; every later
//     reconstruction reads the cached factors.
//
// Implementation:
//   - Stage 1: validate (nil → matrix.ErrNilMatrix; empty shape or NaN/±Inf → ErrNumerical).
//   - Stage 2: dispatch to the configured backend (WithBackend).
//   - Stage 3: the backend returns factors with S sorted descending.
//
// Errors:
//   - matrix.ErrNilMatrix                      for a nil input.
//   - ErrNumerical + matrix.ErrInvalidDimensions for zero rows or columns.
//   - ErrNumerical + matrix.ErrNaNInf          for non-finite entries.
//   - ErrNumerical                             when the backend fails to converge.
//
// Determinism:
//   - Same input and options produce identical factors.
//
// AI-Hints:
//   - Sign of each (u_i, v_i) pair is backend-specific; compare reconstructions,
//     not factors, across backends.
func Decompose(m matrix.Matrix, opts ...Option) (*Decomposition, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, spectralErrorf(opDecompose, err)
	}
	if err := matrix.ValidateDims(m); err != nil {
		return nil, numericalErrorf(opDecompose, err)
	}
	if err := matrix.ValidateFinite(m); err != nil {
		return nil, numericalErrorf(opDecompose, err)
	}
	cfg := newConfig(opts...)

	var (
		d   *Decomposition
		err error
	)
	switch cfg.backend {
	case BackendJacobi:
		d, err = decomposeJacobi(m, cfg)
	default:
		d, err = decomposeLAPACK(m)
	}
	if err != nil {
		return nil, err
	}
	d.backend = cfg.backend

	return d, nil
}
