// SPDX-License-Identifier: MIT
// Package spectral - the stateful engine.
//
// Lifecycle:
//
//	StateUndecomposed --Decompose(ok)--> StateDecomposed --Decompose(ok)--> StateDecomposed
//
// A failed Decompose leaves the engine exactly as it was. Every query before
// the first successful Decompose returns ErrInvalidState.
//
// Concurrency: an Engine must not be mutated (Decompose) concurrently with
// any other call. The Decomposition it hands out is immutable and shareable.

package spectral

import (
	"fmt"

	"github.com/katalvlaran/lowrank/matrix"
)

// State is the engine lifecycle position.
type State int

const (
	// StateUndecomposed: no factors cached yet.
	StateUndecomposed State = iota
	// StateDecomposed: factors of the last successful Decompose are cached.
	StateDecomposed
)

// String returns a short lowercase name.
func (s State) String() string {
	switch s {
	case StateUndecomposed:
		return "undecomposed"
	case StateDecomposed:
		return "decomposed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Diagnostics summarizes one reconstruction against the clean reference.
type Diagnostics struct {
	Rank           int     // clamped rank (KeepLeading) or removal count (ZeroLeading)
	FrobeniusError float64 // ‖clean − approx‖_F
	MSE            float64 // mean squared error
	EnergyPercent  float64 // share of Σσ² carried by the triples used
	GainPercent    float64 // 100·(1 − ‖clean − approx‖_F / ‖noise‖_F)
}

// Engine caches one decomposition and rebuilds approximations on demand.
type Engine struct {
	cfg   config
	state State
	dec   *Decomposition
}

// NewEngine returns an undecomposed engine. WithMode selects the
// reconstruction mode; backend options apply to every Decompose call.
func NewEngine(opts ...Option) *Engine {
	return &Engine{cfg: newConfig(opts...), state: StateUndecomposed}
}

// Mode reports the configured reconstruction mode.
func (e *Engine) Mode() Mode { return e.cfg.mode }

// State reports the lifecycle position.
func (e *Engine) State() State { return e.state }

// Decompose factorizes m and replaces any cached decomposition.
// On error the previous state and decomposition are kept.
//
// Errors: those of the package-level Decompose.
func (e *Engine) Decompose(m matrix.Matrix) error {
	d, err := decomposeWith(m, e.cfg)
	if err != nil {
		return err
	}
	e.dec, e.state = d, StateDecomposed

	return nil
}

// decomposeWith runs Decompose with an already resolved config.
func decomposeWith(m matrix.Matrix, cfg config) (*Decomposition, error) {
	return Decompose(m, WithBackend(cfg.backend), WithTolerance(cfg.tol), WithMaxIterations(cfg.maxIter))
}

// Decomposition returns the cached factors.
func (e *Engine) Decomposition() (*Decomposition, error) {
	if e.state != StateDecomposed {
		return nil, ErrInvalidState
	}

	return e.dec, nil
}

// Reconstruct dispatches on the mode: KeepLeading keeps the first k triples,
// ZeroLeading removes them. The clamped k is returned.
func (e *Engine) Reconstruct(k int) (*matrix.Dense, int, error) {
	if e.state != StateDecomposed {
		return nil, 0, spectralErrorf(opReconstruct, ErrInvalidState)
	}
	if e.cfg.mode == ZeroLeading {
		return ReconstructWithRemoval(e.dec, k)
	}

	return Reconstruct(e.dec, k)
}

// OptimalRank applies the Gavish–Donoho rule to the cached spectrum.
func (e *Engine) OptimalRank(sigma float64) (int, error) {
	if e.state != StateDecomposed {
		return 0, spectralErrorf(opOptimalRank, ErrInvalidState)
	}

	return OptimalRank(e.dec, sigma)
}

// CumulativeEnergy returns the cached spectrum's cumulative energy.
func (e *Engine) CumulativeEnergy() ([]float64, error) {
	if e.state != StateDecomposed {
		return nil, spectralErrorf(opEnergy, ErrInvalidState)
	}

	return CumulativeEnergy(e.dec)
}

// Diagnose reconstructs at k (mode-dispatched) and measures it against clean.
// EnergyPercent covers the triples actually used: the leading k in
// KeepLeading, the tail after k in ZeroLeading.
//
// Errors:
//   - ErrInvalidState before Decompose.
//   - matrix.ErrNilMatrix / matrix.ErrDimensionMismatch for bad clean or noise.
func (e *Engine) Diagnose(clean, noise matrix.Matrix, k int) (Diagnostics, error) {
	_, diag, err := e.Evaluate(clean, noise, k)

	return diag, err
}

// Evaluate is Diagnose that also hands back the reconstruction it measured.
func (e *Engine) Evaluate(clean, noise matrix.Matrix, k int) (*matrix.Dense, Diagnostics, error) {
	if e.state != StateDecomposed {
		return nil, Diagnostics{}, spectralErrorf(opDiagnose, ErrInvalidState)
	}
	approx, used, err := e.Reconstruct(k)
	if err != nil {
		return nil, Diagnostics{}, spectralErrorf(opDiagnose, err)
	}
	diag, err := diagnose(e.dec, e.cfg.mode, clean, noise, approx, used)
	if err != nil {
		return nil, Diagnostics{}, err
	}

	return approx, diag, nil
}

// diagnose computes every metric for an approximation built from used triples.
func diagnose(d *Decomposition, mode Mode, clean, noise, approx matrix.Matrix, used int) (Diagnostics, error) {
	out := Diagnostics{Rank: used}
	var err error
	if out.FrobeniusError, err = FrobeniusError(clean, approx); err != nil {
		return Diagnostics{}, spectralErrorf(opDiagnose, err)
	}
	if out.MSE, err = MSE(clean, approx); err != nil {
		return Diagnostics{}, spectralErrorf(opDiagnose, err)
	}
	if out.GainPercent, err = GainPercent(clean, approx, noise); err != nil {
		return Diagnostics{}, spectralErrorf(opDiagnose, err)
	}
	if out.EnergyPercent, err = EnergyPercent(d, used); err != nil {
		return Diagnostics{}, spectralErrorf(opDiagnose, err)
	}
	if mode == ZeroLeading {
		total, err := EnergyPercent(d, d.Rank())
		if err != nil {
			return Diagnostics{}, spectralErrorf(opDiagnose, err)
		}
		out.EnergyPercent = total - out.EnergyPercent
	}

	return out, nil
}
