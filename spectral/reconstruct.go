// SPDX-License-Identifier: MIT
// Package spectral - truncated and component-removal reconstruction.
//
// Both entry points rebuild Σ_{t∈[from,to)} σ_t·u_t·v_tᵀ directly from the
// cached factors in O(rows·cols·(to−from)); neither is derived from the other.
// Rank arguments are clamped into [0, r] and the clamped value is returned;
// clamping is reported, never treated as an error.

package spectral

import (
	"github.com/katalvlaran/lowrank/matrix"
	"gonum.org/v1/gonum/floats"
)

// clampRank returns k limited to [0, r].
func clampRank(k, r int) int {
	if k < 0 {
		return 0
	}
	if k > r {
		return r
	}

	return k
}

// Reconstruct returns the rank-k approximation Σ_{t<k} σ_t·u_t·v_tᵀ.
// k is clamped to [0, r]; k = 0 yields the zero matrix of the original shape.
//
// Errors:
//   - ErrNilDecomposition.
//
// Complexity: O(rows·cols·k).
func Reconstruct(d *Decomposition, k int) (*matrix.Dense, int, error) {
	if d == nil {
		return nil, 0, spectralErrorf(opReconstruct, ErrNilDecomposition)
	}
	k = clampRank(k, d.Rank())
	out, err := d.reconstructRange(0, k)
	if err != nil {
		return nil, 0, spectralErrorf(opReconstruct, err)
	}

	return out, k, nil
}

// ReconstructWithRemoval zeroes the leading removeCount singular values and
// rebuilds from the remaining tail Σ_{t≥removeCount} σ_t·u_t·v_tᵀ.
// removeCount is clamped to [0, r]: 0 gives the full reconstruction, r the zero matrix.
//
// Errors:
//   - ErrNilDecomposition.
//
// Complexity: O(rows·cols·(r − removeCount)).
func ReconstructWithRemoval(d *Decomposition, removeCount int) (*matrix.Dense, int, error) {
	if d == nil {
		return nil, 0, spectralErrorf(opRemoval, ErrNilDecomposition)
	}
	removeCount = clampRank(removeCount, d.Rank())
	out, err := d.reconstructRange(removeCount, d.Rank())
	if err != nil {
		return nil, 0, spectralErrorf(opRemoval, err)
	}

	return out, removeCount, nil
}

// reconstructRange accumulates triples [from, to) row by row:
// out[i,:] += (σ_t·U[i,t])·Vt[t,:]. Zero coefficients are skipped.
func (d *Decomposition) reconstructRange(from, to int) (*matrix.Dense, error) {
	out, err := matrix.NewZeros(d.rows, d.cols)
	if err != nil {
		return nil, err
	}
	var (
		i, t      int
		coef      float64
		dst, urow []float64
		vrow      []float64
	)
	for i = 0; i < d.rows; i++ {
		dst, _ = out.RawRowView(i)
		urow, _ = d.u.RawRowView(i)
		for t = from; t < to; t++ {
			coef = d.s[t] * urow[t]
			if coef == 0 {
				continue
			}
			vrow, _ = d.vt.RawRowView(t)
			floats.AddScaled(dst, coef, vrow)
		}
	}

	return out, nil
}
