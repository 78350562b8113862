// SPDX-License-Identifier: MIT
package spectral

import (
	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
)

// CumulativeEnergy returns energy[i] = Σ_{t≤i} σ_t² / Σ_t σ_t².
// The sequence is non-decreasing and ends at exactly 1. An all-zero spectrum
// has no energy to distribute and yields all zeros.
//
// Errors:
//   - ErrNilDecomposition.
//
// Complexity: O(r).
func CumulativeEnergy(d *Decomposition) ([]float64, error) {
	if d == nil {
		return nil, spectralErrorf(opEnergy, ErrNilDecomposition)
	}
	r := len(d.s)
	energy := make([]float64, r)
	if r == 0 {
		return energy, nil
	}
	sq := make([]float64, r)
	vecmath.MulBlock(sq, d.s, d.s)

	total := floats.Sum(sq)
	if total == 0 {
		return energy, nil
	}
	floats.CumSum(energy, sq)
	floats.Scale(1/total, energy)

	// summation order may leave the tail a few ulps off 1
	for i := range energy {
		if energy[i] > 1 {
			energy[i] = 1
		}
	}
	energy[r-1] = 1

	return energy, nil
}

// EnergyPercent returns 100·energy[k−1], the share of Σσ² held by the first k
// triples. k is clamped to [0, r]; k = 0 gives 0.
//
// Errors:
//   - ErrNilDecomposition.
func EnergyPercent(d *Decomposition, k int) (float64, error) {
	energy, err := CumulativeEnergy(d)
	if err != nil {
		return 0, spectralErrorf(opEnergyPercent, err)
	}
	k = clampRank(k, len(energy))
	if k == 0 {
		return 0, nil
	}

	return 100 * energy[k-1], nil
}
