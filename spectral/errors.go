// SPDX-License-Identifier: MIT
// Package spectral: sentinel error set.
//
// Policy:
//   - Package-level sentinels only; messages carry the "spectral: " prefix.
//   - Context is attached at the detection site with spectralErrorf (%w), and
//     numerical failures wrap BOTH ErrNumerical and the matrix-level cause, so
//     errors.Is(err, ErrNumerical) and errors.Is(err, matrix.ErrNaNInf) hold together.
//   - Algorithms never panic; option constructors panic on nonsensical values.
//
// ERROR PRIORITY (enforced in Decompose):
// nil input -> empty shape -> non-finite entries -> factorization failure.

package spectral

import (
	"errors"
	"fmt"
)

var (
	// ErrNumerical reports input the factorization cannot accept (NaN/±Inf
	// entries, zero rows or columns) or a factorization that failed to converge.
	ErrNumerical = errors.New("spectral: numerical failure")

	// ErrInvalidState reports an Engine operation that needs a decomposition
	// before Decompose succeeded.
	ErrInvalidState = errors.New("spectral: engine has no decomposition")

	// ErrInvalidSigma reports a negative or non-finite noise level.
	ErrInvalidSigma = errors.New("spectral: sigma must be finite and >= 0")

	// ErrNilDecomposition reports a nil *Decomposition argument.
	ErrNilDecomposition = errors.New("spectral: nil decomposition")

	// errNoConvergence is the cause wrapped under ErrNumerical when gonum's SVD
	// reports failure.
	errNoConvergence = errors.New("singular value decomposition did not converge")
)

// Operation tags (no magic strings at call sites).
const (
	opDecompose      = "Decompose"
	opReconstruct    = "Reconstruct"
	opRemoval        = "ReconstructWithRemoval"
	opOptimalRank    = "OptimalRank"
	opThreshold      = "Threshold"
	opKMeansRank     = "KMeansRank"
	opEnergy         = "CumulativeEnergy"
	opEnergyPercent  = "EnergyPercent"
	opFrobeniusError = "FrobeniusError"
	opMSE            = "MSE"
	opGain           = "GainPercent"
	opDiagnose       = "Diagnose"
)

// spectralErrorf wraps err with an operation tag. Call only with err != nil.
func spectralErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// numericalErrorf wraps cause under ErrNumerical, keeping both matchable.
func numericalErrorf(tag string, cause error) error {
	return fmt.Errorf("%s: %w: %w", tag, ErrNumerical, cause)
}
