// SPDX-License-Identifier: MIT
// Package spectral: functional configuration.
//
// One Option type configures both the free function Decompose (backend,
// tolerance, iteration cap) and the Engine (additionally the Mode).
// Defaults are documented constants resolved in newConfig; later options win.

package spectral

import (
	"fmt"
	"math"
	"strings"
)

// Backend selects the factorization routine used by Decompose.
//
//   - BackendLAPACK - gonum mat.SVD (thin), the default.
//   - BackendJacobi - pure-Go path: Gram matrix of the short side, cyclic
//     Jacobi eigen solver, factors recovered by projection.
type Backend int

const (
	// BackendLAPACK uses gonum's LAPACK-backed SVD.
	BackendLAPACK Backend = iota
	// BackendJacobi uses matrix.Gram + matrix.Eigen.
	BackendJacobi
)

var backendNames = [...]string{BackendLAPACK: "lapack", BackendJacobi: "jacobi"}

// String returns the CLI name of the backend.
func (b Backend) String() string {
	if b < 0 || int(b) >= len(backendNames) {
		return fmt.Sprintf("Backend(%d)", int(b))
	}

	return backendNames[b]
}

// ParseBackend maps "lapack" / "jacobi" (case-insensitive) to a Backend.
func ParseBackend(name string) (Backend, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for i, n := range backendNames {
		if n == key {
			return Backend(i), nil
		}
	}

	return 0, fmt.Errorf("spectral: unknown backend %q", name)
}

const (
	// DefaultBackend is the factorization used when WithBackend is absent.
	DefaultBackend = BackendLAPACK

	// DefaultTolerance is the Jacobi off-diagonal threshold relative to ‖G‖_F.
	DefaultTolerance = 1e-12

	// DefaultMaxIterations caps Jacobi sweeps; well-conditioned input needs about 10.
	DefaultMaxIterations = 100

	// DefaultMode is the Engine reconstruction mode.
	DefaultMode = KeepLeading
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicBackend   = "spectral: WithBackend: unknown backend"
	panicTolerance = "spectral: WithTolerance: tol must be finite and > 0"
	panicMaxIter   = "spectral: WithMaxIterations: n must be >= 1"
	panicMode      = "spectral: WithMode: unknown mode"
)

// config is the resolved option set.
type config struct {
	backend Backend
	tol     float64
	maxIter int
	mode    Mode
}

// Option mutates the spectral configuration.
type Option func(*config)

// WithBackend selects the factorization routine. Panics on an unknown value.
func WithBackend(b Backend) Option {
	if b < 0 || int(b) >= len(backendNames) {
		panic(panicBackend)
	}

	return func(c *config) { c.backend = b }
}

// WithTolerance sets the relative Jacobi convergence threshold.
// Panics unless tol is finite and positive. Ignored by BackendLAPACK.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
		panic(panicTolerance)
	}

	return func(c *config) { c.tol = tol }
}

// WithMaxIterations caps Jacobi sweeps. Panics if n < 1. Ignored by BackendLAPACK.
func WithMaxIterations(n int) Option {
	if n < 1 {
		panic(panicMaxIter)
	}

	return func(c *config) { c.maxIter = n }
}

// WithMode sets the Engine reconstruction mode. Panics on an unknown value.
// Ignored by the free Decompose function.
func WithMode(m Mode) Option {
	if !m.valid() {
		panic(panicMode)
	}

	return func(c *config) { c.mode = m }
}

// newConfig resolves defaults and applies opts in order.
func newConfig(opts ...Option) config {
	c := config{
		backend: DefaultBackend,
		tol:     DefaultTolerance,
		maxIter: DefaultMaxIterations,
		mode:    DefaultMode,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}

	return c
}
