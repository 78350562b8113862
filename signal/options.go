// SPDX-License-Identifier: MIT
// Package: lowrank/signal
//
// options.go - functional options for surface generation and noise.
// Option constructors validate eagerly and panic on meaningless values;
// generators themselves only return errors.

package signal

import (
	"math"
	"math/rand"
)

// Option mutates the generator configuration.
type Option func(*signalConfig)

// WithRange overrides the coordinate interval on both axes.
// Panics unless lo < hi and both are finite.
// Complexity: O(1).
func WithRange(lo, hi float64) Option {
	if math.IsNaN(lo) || math.IsInf(lo, 0) || math.IsNaN(hi) || math.IsInf(hi, 0) || lo >= hi {
		panic("signal: WithRange(lo>=hi or non-finite)")
	}

	return func(c *signalConfig) {
		c.lo, c.hi, c.hasRange = lo, hi, true
	}
}

// WithAmplitude scales the clean surface by A ≥ 0.
// A = 0 yields the all-zero surface, i.e. a pure-noise observation.
// Panics if A < 0 or non-finite.
func WithAmplitude(A float64) Option {
	if math.IsNaN(A) || math.IsInf(A, 0) || A < 0 {
		panic("signal: WithAmplitude(A<0 or non-finite)")
	}

	return func(c *signalConfig) { c.amplitude = A }
}

// WithRand makes Observe draw noise from r instead of a stream seeded per call.
// Panics on nil; prefer the seed argument for reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("signal: WithRand(nil)")
	}

	return func(c *signalConfig) { c.rng = r }
}
