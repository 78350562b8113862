// SPDX-License-Identifier: MIT
// Package: lowrank/signal
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • signalConfig is the single source of truth for generator knobs.
//   • newSignalConfig applies options in-order (later overrides earlier).
//   • The coordinate range defaults to the shape's own range, resolved once here.
//
// Deterministic defaults:
//   • amplitude = 1.0
//   • range     = shape default (see shapes.go)
//   • rng       = nil (AddNoise/Observe seed their own stream)

package signal

import "math/rand"

// signalConfig aggregates all knobs used by Generate/Observe.
// It is passed by VALUE (immutable to callers).
type signalConfig struct {
	amplitude float64    // ≥ 0; global scale of the clean surface
	lo, hi    float64    // coordinate interval, lo < hi
	hasRange  bool       // false → use the shape default
	rng       *rand.Rand // shared noise stream; nil → seeded per call
}

// Deterministic defaults (named, no magic numbers).
const defaultAmplitude = 1.0

// newSignalConfig constructs a config with defaults for shape and applies all
// options in order.
// Complexity: O(len(opts)).
func newSignalConfig(shape Shape, opts ...Option) signalConfig {
	cfg := signalConfig{amplitude: defaultAmplitude}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if !cfg.hasRange {
		cfg.lo, cfg.hi = shape.DefaultRange()
	}

	return cfg
}

// rngFrom returns cfg.rng if present (shared stream), else a local rand
// seeded by 'seed'. This keeps determinism across composed calls.
func rngFrom(cfg signalConfig, seed int64) *rand.Rand {
	if cfg.rng != nil {
		return cfg.rng
	}

	return rand.New(rand.NewSource(seed))
}
