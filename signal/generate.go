// SPDX-License-Identifier: MIT
// Package: lowrank/signal
//
// generate.go - clean surfaces, additive Gaussian noise, and observations.
//
// Contract:
//   • Generate is deterministic: same (size, shape, opts) → identical bits.
//   • AddNoise draws N(0, σ²) in row-major order from rand.NewSource(seed);
//     the same seed reproduces the same noise field.
//   • Inputs are never mutated; every call returns fresh matrices.

package signal

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/lowrank/matrix"
	"gonum.org/v1/gonum/floats"
)

// Observation bundles a clean surface, the noise field drawn for it and their sum.
// Invariant: Noisy = Clean + Noise elementwise (up to one rounding per entry).
type Observation struct {
	Shape Shape
	Sigma float64
	Seed  int64
	Clean *matrix.Dense
	Noise *matrix.Dense
	Noisy *matrix.Dense
}

// grid returns size samples evenly spaced on [lo, hi]; a single sample sits at lo.
func grid(size int, lo, hi float64) []float64 {
	pts := make([]float64, size)
	if size == 1 {
		pts[0] = lo
		return pts
	}

	return floats.Span(pts, lo, hi)
}

// Generate evaluates shape on a size×size grid.
//
// Layout (meshgrid convention): Z[i][j] = A·f(x_j, y_i), with
// x = y = linspace(lo, hi, size); x varies along columns, y along rows.
//
// Errors:
//   - ErrBadSize      if size < 1.
//   - ErrUnknownShape for a Shape outside the catalogue.
//
// Complexity: O(size²) evaluations.
func Generate(size int, shape Shape, opts ...Option) (*matrix.Dense, error) {
	if size < 1 {
		return nil, signalErrorf(methodGenerate, fmt.Errorf("size=%d: %w", size, ErrBadSize))
	}
	if !shape.valid() {
		return nil, signalErrorf(methodGenerate, fmt.Errorf("%v: %w", shape, ErrUnknownShape))
	}
	cfg := newSignalConfig(shape, opts...)
	f := shapeCatalogue[shape].eval

	z, err := matrix.NewZeros(size, size)
	if err != nil {
		return nil, signalErrorf(methodGenerate, err)
	}
	axis := grid(size, cfg.lo, cfg.hi)
	if err = z.Apply(func(i, j int, _ float64) float64 {
		return cfg.amplitude * f(axis[j], axis[i])
	}); err != nil {
		return nil, signalErrorf(methodGenerate, err)
	}

	return z, nil
}

// AddNoise returns m + N(0, σ²) noise drawn row-major from rand.NewSource(seed).
// sigma = 0 returns an exact copy.
//
// Errors:
//   - ErrInvalidSigma for σ < 0 or non-finite.
//   - matrix.ErrNilMatrix / matrix.ErrInvalidDimensions for a bad input.
//
// Notes:
//   - Non-finite entries in m propagate into the result; the spectral layer
//     rejects them at decomposition time.
func AddNoise(m matrix.Matrix, sigma float64, seed int64) (*matrix.Dense, error) {
	noisy, err := addNoise(m, sigma, rand.New(rand.NewSource(seed)))
	if err != nil {
		return nil, signalErrorf(methodAddNoise, err)
	}

	return noisy, nil
}

// addNoise is the shared kernel behind AddNoise and Observe.
func addNoise(m matrix.Matrix, sigma float64, rng *rand.Rand) (*matrix.Dense, error) {
	if math.IsNaN(sigma) || math.IsInf(sigma, 0) || sigma < 0 {
		return nil, fmt.Errorf("sigma=%v: %w", sigma, ErrInvalidSigma)
	}
	if err := matrix.ValidateDims(m); err != nil {
		return nil, err
	}
	out, err := matrix.ZerosLike(m, matrix.WithNoValidateNaNInf())
	if err != nil {
		return nil, err
	}
	var (
		v     float64
		atErr error
	)
	// out skips validation, so Apply only fails through m.At
	_ = out.Apply(func(i, j int, _ float64) float64 {
		if atErr != nil {
			return 0
		}
		v, atErr = m.At(i, j)
		return v + sigma*rng.NormFloat64()
	})
	if atErr != nil {
		return nil, atErr
	}

	return out, nil
}

// Observe generates the clean surface, draws its noise with seed, and returns
// all three fields. Noise is recovered as Noisy − Clean so that the gain
// metric measures exactly the perturbation present in Noisy.
//
// Errors: those of Generate and AddNoise.
func Observe(size int, shape Shape, sigma float64, seed int64, opts ...Option) (*Observation, error) {
	clean, err := Generate(size, shape, opts...)
	if err != nil {
		return nil, signalErrorf(methodObserve, err)
	}
	cfg := newSignalConfig(shape, opts...)
	noisy, err := addNoise(clean, sigma, rngFrom(cfg, seed))
	if err != nil {
		return nil, signalErrorf(methodObserve, err)
	}
	noise, err := matrix.Sub(noisy, clean)
	if err != nil {
		return nil, signalErrorf(methodObserve, err)
	}

	return &Observation{
		Shape: shape,
		Sigma: sigma,
		Seed:  seed,
		Clean: clean,
		Noise: noise,
		Noisy: noisy,
	}, nil
}
