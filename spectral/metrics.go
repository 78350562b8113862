// SPDX-License-Identifier: MIT
// Package spectral - reconstruction quality metrics.
//
// All four metrics compare a clean reference with an approximation of the same
// shape:
//   - FrobeniusError: ‖clean − approx‖_F (the canonical reconstruction error)
//   - MSE:            mean of squared differences
//   - GainPercent:    100·(1 − ‖clean − approx‖_F / ‖noise‖_F)
//   - EnergyPercent:  see energy.go
//
// Inputs are never mutated.

package spectral

import (
	"github.com/cwbudde/algo-vecmath"
	"github.com/katalvlaran/lowrank/matrix"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// residual returns clean − approx as a flat row-major slice.
func residual(clean, approx matrix.Matrix) ([]float64, error) {
	diff, err := matrix.Sub(clean, approx)
	if err != nil {
		return nil, err
	}

	return diff.RawData(), nil
}

// FrobeniusError returns ‖clean − approx‖_F.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch.
func FrobeniusError(clean, approx matrix.Matrix) (float64, error) {
	diff, err := residual(clean, approx)
	if err != nil {
		return 0, spectralErrorf(opFrobeniusError, err)
	}

	return floats.Norm(diff, 2), nil
}

// MSE returns the mean of (clean − approx)² over all entries.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch.
func MSE(clean, approx matrix.Matrix) (float64, error) {
	diff, err := residual(clean, approx)
	if err != nil {
		return 0, spectralErrorf(opMSE, err)
	}
	sq := make([]float64, len(diff))
	vecmath.MulBlock(sq, diff, diff)

	return stat.Mean(sq, nil), nil
}

// GainPercent returns 100·(1 − ‖clean − approx‖_F / ‖noise‖_F): the share of
// the noise energy (in norm) removed by the approximation. 100 is a perfect
// recovery, 0 means no better than the observation, negative means worse.
// A zero noise field leaves nothing to remove and yields 0.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch.
func GainPercent(clean, approx, noise matrix.Matrix) (float64, error) {
	errNorm, err := FrobeniusError(clean, approx)
	if err != nil {
		return 0, spectralErrorf(opGain, err)
	}
	if err = matrix.ValidateBinarySameShape(clean, noise); err != nil {
		return 0, spectralErrorf(opGain, err)
	}
	noiseNorm, err := matrix.FrobeniusNorm(noise)
	if err != nil {
		return 0, spectralErrorf(opGain, err)
	}
	if noiseNorm == 0 {
		return 0, nil
	}

	return 100 * (1 - errNorm/noiseNorm), nil
}
