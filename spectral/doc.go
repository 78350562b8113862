// SPDX-License-Identifier: MIT

// Package spectral decomposes a noisy matrix once and rebuilds low-rank
// approximations of it on demand.
//
// What is in here?
//
//   - Decompose: economy SVD (gonum LAPACK by default, or a pure-Go Jacobi path).
//   - Reconstruct / ReconstructWithRemoval: keep or drop the leading k triples,
//     with k clamped into [0, r] and the clamped value returned.
//   - OptimalRank: the Gavish–Donoho hard threshold for a known noise level;
//     KMeansRank: a σ-free estimate from the shape of the spectrum.
//   - CumulativeEnergy and the FrobeniusError / MSE / GainPercent / EnergyPercent metrics.
//   - Engine: a small state machine (undecomposed → decomposed) parameterized
//     by Mode, used by interactive front ends.
//
// Typical flow:
//
//	d, err := spectral.Decompose(noisy)
//	if err != nil {
//		// errors.Is(err, spectral.ErrNumerical) for NaN/Inf or empty input
//	}
//	k, _ := spectral.OptimalRank(d, sigma)
//	approx, k, _ := spectral.Reconstruct(d, k)
//
// The package does no logging and holds no global state.
package spectral
