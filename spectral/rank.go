// SPDX-License-Identifier: MIT
// Package spectral - automatic rank selection.
//
// OptimalRank implements the Gavish–Donoho hard threshold for a known noise
// level σ:
//
//	β   = min(m,n) / max(m,n)
//	ω(β) = 0.56β³ − 0.95β² + 1.82β + 1.43
//	τ   = ω(β)·σ·sqrt(max(m,n))
//	k   = #{ i : s_i > τ }            (strict)
//
// KMeansRank is a σ-free fallback: two-cluster k-means on log singular values.

package spectral

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lowrank/matrix"
	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"
)

// kmeansRestarts is the number of independent k-means runs; the partition with
// the lowest within-cluster sum of squares wins.
const kmeansRestarts = 8

// logGapFloor is the log-spread below which the spectrum counts as flat.
const logGapFloor = 1e-9

// Omega returns the Gavish–Donoho coefficient ω(β) for aspect ratio β ∈ (0, 1].
func Omega(beta float64) float64 {
	return 0.56*beta*beta*beta - 0.95*beta*beta + 1.82*beta + 1.43
}

// Threshold returns τ = ω(β)·σ·sqrt(max(rows, cols)).
//
// Errors:
//   - ErrInvalidSigma for σ < 0 or non-finite.
//   - ErrNumerical wrapping matrix.ErrInvalidDimensions for rows or cols < 1.
func Threshold(rows, cols int, sigma float64) (float64, error) {
	if math.IsNaN(sigma) || math.IsInf(sigma, 0) || sigma < 0 {
		return 0, spectralErrorf(opThreshold, fmt.Errorf("sigma=%v: %w", sigma, ErrInvalidSigma))
	}
	if rows < 1 || cols < 1 {
		return 0, numericalErrorf(opThreshold, matrix.ErrInvalidDimensions)
	}
	lo, hi := float64(min(rows, cols)), float64(max(rows, cols))

	return Omega(lo/hi) * sigma * math.Sqrt(hi), nil
}

// OptimalRank counts singular values strictly above Threshold(rows, cols, σ).
// The result lies in [0, r]. Scaling the matrix and σ by the same positive
// factor leaves it unchanged.
//
// Errors:
//   - ErrNilDecomposition, ErrInvalidSigma.
//
// Complexity: O(r).
func OptimalRank(d *Decomposition, sigma float64) (int, error) {
	if d == nil {
		return 0, spectralErrorf(opOptimalRank, ErrNilDecomposition)
	}
	tau, err := Threshold(d.rows, d.cols, sigma)
	if err != nil {
		return 0, spectralErrorf(opOptimalRank, err)
	}
	k := 0
	for _, s := range d.s {
		if s > tau {
			k++
		}
	}

	return k, nil
}

// KMeansRank estimates the rank without knowing σ: it splits log σ_i into two
// clusters and returns how many values lie above the midpoint of the two centres.
//
// Behavior highlights:
//   - Zero singular values never count.
//   - A flat spectrum (log spread < 1e-9) has no signal cluster and yields 0.
//   - k-means seeds are random; the best of several restarts (lowest SSE) is
//     used, so well-separated spectra give a stable answer.
//
// Errors:
//   - ErrNilDecomposition; k-means failures are wrapped as-is.
func KMeansRank(d *Decomposition) (int, error) {
	if d == nil {
		return 0, spectralErrorf(opKMeansRank, ErrNilDecomposition)
	}
	logs := make([]float64, 0, len(d.s))
	for _, s := range d.s {
		if s > 0 {
			logs = append(logs, math.Log(s))
		}
	}
	if len(logs) < 2 {
		return len(logs), nil
	}
	if logs[0]-logs[len(logs)-1] < logGapFloor {
		return 0, nil
	}

	dataset := make(clusters.Observations, 0, len(logs))
	for _, l := range logs {
		dataset = append(dataset, clusters.Coordinates{l})
	}

	var (
		best    clusters.Clusters
		bestSSE = math.Inf(1)
	)
	km := kmeans.New()
	for run := 0; run < kmeansRestarts; run++ {
		cc, err := km.Partition(dataset, 2)
		if err != nil {
			return 0, spectralErrorf(opKMeansRank, err)
		}
		if sse := withinSSE(cc); sse < bestSSE {
			best, bestSSE = cc, sse
		}
	}
	if len(best) != 2 {
		return 0, nil
	}
	mid := (best[0].Center[0] + best[1].Center[0]) / 2

	k := 0
	for _, l := range logs {
		if l > mid {
			k++
		}
	}

	return k, nil
}

// withinSSE sums squared distances of every observation to its cluster centre.
func withinSSE(cc clusters.Clusters) float64 {
	var sse float64
	for _, c := range cc {
		for _, o := range c.Observations {
			diff := o.Coordinates()[0] - c.Center[0]
			sse += diff * diff
		}
	}

	return sse
}
