// SPDX-License-Identifier: MIT

// Package lowrank is a small laboratory for denoising matrices by truncated
// singular value decomposition, with the rank picked automatically.
//
// 🚀 What is in the box?
//
//	Decompose a noisy observation once, then rebuild it at any rank:
//		• Synthetic low-rank surfaces with seeded Gaussian noise
//		• Economy SVD: gonum LAPACK, or a pure-Go Jacobi path
//		• Truncated and component-removal reconstruction
//		• Gavish–Donoho optimal hard threshold (known σ) and a k-means fallback (unknown σ)
//		• Cumulative energy, Frobenius error, MSE and noise-gain metrics
//		• A controller session, PNG/console displays and the svdlab CLI
//
// ✨ Guarantees
//
//   - Inputs are never mutated; every result is a fresh matrix.
//   - Ranks are clamped, never rejected; the clamped value is returned.
//   - Core packages never log and never panic on data, only on bad options.
//
// Packages:
//
//	matrix/     - Matrix interface, row-major Dense, validators, Gram/Jacobi kernels
//	signal/     - surfaces (three-peaks, two-peaks, …) and additive noise
//	spectral/   - Decompose, Reconstruct, OptimalRank, energy & error metrics, Engine
//	lab/        - Session: observation → decomposition → slider updates
//	render/     - PNG heatmaps, spectrum charts, console diagnostics
//	cmd/svdlab/ - command line driver
//
// Quick start:
//
//	obs, _ := signal.Observe(60, signal.ShapeThreePeaks, 0.15, 2026)
//	d, _ := spectral.Decompose(obs.Noisy)
//	k, _ := spectral.OptimalRank(d, 0.15)
//	denoised, k, _ := spectral.Reconstruct(d, k)
//
// See examples/ for a rank-selection sweep across shapes and noise levels.
package lowrank
