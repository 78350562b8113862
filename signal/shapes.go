// SPDX-License-Identifier: MIT
// Package: lowrank/signal
//
// shapes.go - the catalogue of ground-truth surfaces.
//
// Every surface is a short sum of separable terms g(x)·h(y), so its exact
// rank is known: a sum of r Gaussian bumps (or r sinusoid products) has rank r.

package signal

import (
	"fmt"
	"math"
	"strings"
)

// Shape selects a ground-truth surface.
//
//   - ShapeThreePeaks        - three Gaussian bumps on [-2.5, 2.5]², rank 3, 60×60.
//   - ShapeTwoPeaks          - two Gaussian bumps on [-2, 2]², rank 2, 64×64.
//   - ShapeSymmetricPeaks    - three bumps mirrored about x=0 on [-2, 2]², rank 3, 60×60.
//   - ShapeModulatedSinusoid - sin(2x)cos(2y) under a wide Gaussian plus a cos(x)
//     ridge on [-π, π]², rank 2, 200×200.
type Shape int

const (
	// ShapeThreePeaks is the default demonstration surface.
	ShapeThreePeaks Shape = iota
	// ShapeTwoPeaks is the two-component variant.
	ShapeTwoPeaks
	// ShapeSymmetricPeaks is the mirrored three-component variant.
	ShapeSymmetricPeaks
	// ShapeModulatedSinusoid is the large-scale oscillating variant.
	ShapeModulatedSinusoid
)

// shapeSpec is the static description of one catalogue entry.
type shapeSpec struct {
	name   string
	size   int
	lo, hi float64
	rank   int
	eval   func(x, y float64) float64
}

// bump is exp(-((x-cx)² + (y-cy)²)).
func bump(x, y, cx, cy float64) float64 {
	dx, dy := x-cx, y-cy

	return math.Exp(-(dx*dx + dy*dy))
}

var shapeCatalogue = [...]shapeSpec{
	ShapeThreePeaks: {
		name: "three-peaks", size: 60, lo: -2.5, hi: 2.5, rank: 3,
		eval: func(x, y float64) float64 {
			return bump(x, y, 0, 0) + 0.7*bump(x, y, 1.5, 1.5) + 0.5*bump(x, y, -1, 1)
		},
	},
	ShapeTwoPeaks: {
		name: "two-peaks", size: 64, lo: -2, hi: 2, rank: 2,
		eval: func(x, y float64) float64 {
			return bump(x, y, 0, 0) + 0.5*bump(x, y, 1, 1)
		},
	},
	ShapeSymmetricPeaks: {
		name: "symmetric-peaks", size: 60, lo: -2, hi: 2, rank: 3,
		eval: func(x, y float64) float64 {
			return bump(x, y, 0, 0) + 0.6*bump(x, y, 1.2, 1.2) + 0.4*bump(x, y, -1.2, 1.2)
		},
	},
	ShapeModulatedSinusoid: {
		name: "modulated-sinusoid", size: 200, lo: -math.Pi, hi: math.Pi, rank: 2,
		eval: func(x, y float64) float64 {
			return math.Sin(2*x)*math.Cos(2*y)*math.Exp(-(x*x+y*y)/8) + 0.5*math.Cos(x)
		},
	},
}

// Shapes lists every catalogue entry in declaration order.
func Shapes() []Shape {
	out := make([]Shape, len(shapeCatalogue))
	for i := range shapeCatalogue {
		out[i] = Shape(i)
	}

	return out
}

func (s Shape) valid() bool { return s >= 0 && int(s) < len(shapeCatalogue) }

// String returns the CLI name of the shape ("three-peaks", ...).
func (s Shape) String() string {
	if !s.valid() {
		return fmt.Sprintf("Shape(%d)", int(s))
	}

	return shapeCatalogue[s].name
}

// DefaultSize returns the grid size the shape is demonstrated at, or 0 for an unknown shape.
func (s Shape) DefaultSize() int {
	if !s.valid() {
		return 0
	}

	return shapeCatalogue[s].size
}

// DefaultRange returns the coordinate interval [lo, hi] used on both axes.
func (s Shape) DefaultRange() (lo, hi float64) {
	if !s.valid() {
		return 0, 0
	}

	return shapeCatalogue[s].lo, shapeCatalogue[s].hi
}

// Rank returns the exact rank of the noise-free surface (for sizes ≥ Rank).
func (s Shape) Rank() int {
	if !s.valid() {
		return 0
	}

	return shapeCatalogue[s].rank
}

// ParseShape maps a CLI name (case-insensitive, '_' accepted for '-') to a Shape.
func ParseShape(name string) (Shape, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	for i, entry := range shapeCatalogue {
		if entry.name == key {
			return Shape(i), nil
		}
	}

	return 0, signalErrorf(methodParse, fmt.Errorf("%q: %w", name, ErrUnknownShape))
}
