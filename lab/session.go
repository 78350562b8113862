// SPDX-License-Identifier: MIT
// Package lab - the interactive session.
//
// Lifecycle: NewSession generates the observation and decomposes it; from then
// on every SetRank only reconstructs from the cached factors. The initial rank
// is the Gavish–Donoho estimate clamped into the slider range.
//
// Concurrency: a Session is not safe for concurrent SetRank calls.

package lab

import (
	"github.com/katalvlaran/lowrank/signal"
	"github.com/katalvlaran/lowrank/spectral"
	log "github.com/sirupsen/logrus"
)

// Session owns one observation and its decomposition.
type Session struct {
	cfg       Config
	log       log.FieldLogger
	obs       *signal.Observation
	eng       *spectral.Engine
	optimal   int
	kmeans    int
	threshold float64
	rank      int
}

// NewSession validates cfg, draws the observation and decomposes it.
// A nil logger means log.StandardLogger().
//
// Errors:
//   - ErrBadConfig from Validate.
//   - signal and spectral errors (e.g. spectral.ErrNumerical) wrapped as-is.
func NewSession(cfg Config, logger log.FieldLogger) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, labErrorf(opNewSession, err)
	}
	if logger == nil {
		logger = log.StandardLogger()
	}
	size := cfg.GridSize()
	obs, err := signal.Observe(size, cfg.Shape, cfg.Sigma, cfg.Seed, signal.WithAmplitude(cfg.Amplitude))
	if err != nil {
		return nil, labErrorf(opNewSession, err)
	}

	eng := spectral.NewEngine(spectral.WithBackend(cfg.Backend), spectral.WithMode(cfg.Mode))
	if err = eng.Decompose(obs.Noisy); err != nil {
		return nil, labErrorf(opNewSession, err)
	}
	dec, err := eng.Decomposition()
	if err != nil {
		return nil, labErrorf(opNewSession, err)
	}
	optimal, err := eng.OptimalRank(cfg.Sigma)
	if err != nil {
		return nil, labErrorf(opNewSession, err)
	}
	tau, err := spectral.Threshold(dec.Rows(), dec.Cols(), cfg.Sigma)
	if err != nil {
		return nil, labErrorf(opNewSession, err)
	}
	km, err := spectral.KMeansRank(dec)
	if err != nil {
		return nil, labErrorf(opNewSession, err)
	}

	s := &Session{
		cfg:       cfg,
		log:       logger,
		obs:       obs,
		eng:       eng,
		optimal:   optimal,
		kmeans:    km,
		threshold: tau,
		rank:      cfg.clampSlider(optimal),
	}
	s.log.WithFields(log.Fields{
		"shape":        cfg.Shape,
		"size":         size,
		"sigma":        cfg.Sigma,
		"seed":         cfg.Seed,
		"backend":      dec.Backend(),
		"mode":         cfg.Mode,
		"threshold":    tau,
		"optimal_rank": optimal,
		"kmeans_rank":  km,
	}).Info("observation decomposed")

	return s, nil
}

// Config returns the session configuration.
func (s *Session) Config() Config { return s.cfg }

// Observation returns the clean, noise and noisy matrices. Callers must not mutate them.
func (s *Session) Observation() *signal.Observation { return s.obs }

// OptimalRank is the Gavish–Donoho estimate for the session σ.
func (s *Session) OptimalRank() int { return s.optimal }

// KMeansRank is the σ-free estimate, logged next to OptimalRank for comparison.
func (s *Session) KMeansRank() int { return s.kmeans }

// Rank is the last slider position (after slider clamping).
func (s *Session) Rank() int { return s.rank }

// SetRank moves the slider to k and rebuilds the surface. k is clamped to the
// slider range and then by the engine to [0, r]; both the request and the
// final value are reported.
func (s *Session) SetRank(k int) (DisplayUpdate, error) {
	pos := s.cfg.clampSlider(k)
	surface, diag, err := s.eng.Evaluate(s.obs.Clean, s.obs.Noise, pos)
	if err != nil {
		return DisplayUpdate{}, labErrorf(opSetRank, err)
	}
	s.rank = pos

	s.log.WithFields(log.Fields{
		"requested": k,
		"rank":      diag.Rank,
		"mode":      s.cfg.Mode,
		"frobenius": diag.FrobeniusError,
		"mse":       diag.MSE,
		"energy":    diag.EnergyPercent,
		"gain":      diag.GainPercent,
	}).Debug("rank changed")

	return DisplayUpdate{
		Requested:   k,
		Rank:        diag.Rank,
		Mode:        s.cfg.Mode,
		Surface:     surface,
		Diagnostics: diag,
	}, nil
}

// Spectrum describes the cached singular values split at the current rank.
func (s *Session) Spectrum() (Spectrum, error) {
	dec, err := s.eng.Decomposition()
	if err != nil {
		return Spectrum{}, labErrorf(opSpectrum, err)
	}
	energy, err := s.eng.CumulativeEnergy()
	if err != nil {
		return Spectrum{}, labErrorf(opSpectrum, err)
	}

	return Spectrum{
		Values:    dec.Values(),
		Energy:    energy,
		Threshold: s.threshold,
		Optimal:   s.optimal,
		Retained:  min(s.rank, dec.Rank()),
		Mode:      s.cfg.Mode,
	}, nil
}

// Observer returns the slider callback. Failures are logged and yield an
// empty update.
func (s *Session) Observer() Observer {
	return func(newRank int) DisplayUpdate {
		u, err := s.SetRank(newRank)
		if err != nil {
			s.log.WithError(err).Error("rank update failed")
		}

		return u
	}
}

// Bind returns an Observer that also renders every update on d.
// Render failures are logged; the update is still returned.
//
// Errors:
//   - ErrNilDisplay.
func (s *Session) Bind(d Display) (Observer, error) {
	if d == nil {
		return nil, labErrorf(opRender, ErrNilDisplay)
	}
	move := s.Observer()

	return func(newRank int) DisplayUpdate {
		u := move(newRank)
		if u.Surface == nil {
			return u
		}
		spectrum, err := s.Spectrum()
		if err == nil {
			err = d.Render(u, spectrum)
		}
		if err != nil {
			s.log.WithError(err).WithField("rank", u.Rank).Error("render failed")
		}

		return u
	}, nil
}
