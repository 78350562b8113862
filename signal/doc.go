// SPDX-License-Identifier: MIT

// Package signal synthesizes ground-truth low-rank surfaces and their noisy
// observations.
//
// A surface is a sum of separable terms sampled on a square meshgrid, so its
// rank is known in advance (see Shape.Rank). Observations add i.i.d. Gaussian
// noise from a seeded math/rand stream, making every experiment reproducible:
//
//	obs, err := signal.Observe(60, signal.ShapeThreePeaks, 0.15, 2026)
//	if err != nil {
//		// ErrBadSize, ErrUnknownShape, ErrInvalidSigma
//	}
//	_ = obs.Noisy // input to spectral.Decompose
//
// WithX option constructors panic on meaningless values;
// Generate, AddNoise and Observe only return errors.
package signal
