// SPDX-License-Identifier: MIT
package lab

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lowrank/signal"
	"github.com/katalvlaran/lowrank/spectral"
)

// Defaults reproduce the reference experiment: a 60×60 three-peak surface
// observed with σ = 0.15 noise from seed 2026, rank slider on [1, 30].
const (
	DefaultSigma     = 0.15
	DefaultSeed      = 2026
	DefaultSliderMin = 1
	DefaultSliderMax = 30
)

// Config describes one session.
//
// Fields:
//   - Shape, Size: the clean surface; Size 0 means Shape.DefaultSize().
//   - Amplitude: global scale of the clean surface (0 = pure noise).
//   - Sigma, Seed: the additive Gaussian noise.
//   - Mode: KeepLeading rebuilds from the first k triples, ZeroLeading drops them.
//   - Backend: the factorization used by Decompose.
//   - SliderMin, SliderMax: the range a requested rank is clamped into before
//     the engine clamps it again to [0, r].
type Config struct {
	Shape     signal.Shape
	Size      int
	Amplitude float64
	Sigma     float64
	Seed      int64
	Mode      spectral.Mode
	Backend   spectral.Backend
	SliderMin int
	SliderMax int
}

// DefaultConfig returns the reference experiment configuration.
func DefaultConfig() Config {
	return Config{
		Shape:     signal.ShapeThreePeaks,
		Size:      0,
		Amplitude: 1,
		Sigma:     DefaultSigma,
		Seed:      DefaultSeed,
		Mode:      spectral.DefaultMode,
		Backend:   spectral.DefaultBackend,
		SliderMin: DefaultSliderMin,
		SliderMax: DefaultSliderMax,
	}
}

// GridSize resolves Size against the shape default.
func (c Config) GridSize() int {
	if c.Size == 0 {
		return c.Shape.DefaultSize()
	}

	return c.Size
}

// Validate reports the first invalid field wrapped in ErrBadConfig.
func (c Config) Validate() error {
	switch {
	case !knownShape(c.Shape):
		return c.invalid("shape %v", c.Shape)
	case c.Size < 0:
		return c.invalid("size=%d", c.Size)
	case !finiteNonNegative(c.Amplitude):
		return c.invalid("amplitude=%v", c.Amplitude)
	case !finiteNonNegative(c.Sigma):
		return c.invalid("sigma=%v", c.Sigma)
	case c.Mode != spectral.KeepLeading && c.Mode != spectral.ZeroLeading:
		return c.invalid("mode %v", c.Mode)
	case c.Backend != spectral.BackendLAPACK && c.Backend != spectral.BackendJacobi:
		return c.invalid("backend %v", c.Backend)
	case c.SliderMin < 0 || c.SliderMax < c.SliderMin:
		return c.invalid("slider [%d, %d]", c.SliderMin, c.SliderMax)
	}

	return nil
}

func (c Config) invalid(format string, args ...any) error {
	return labErrorf(opValidate, fmt.Errorf("%w: "+format, append([]any{ErrBadConfig}, args...)...))
}

// clampSlider limits k to [SliderMin, SliderMax].
func (c Config) clampSlider(k int) int {
	return max(c.SliderMin, min(k, c.SliderMax))
}

func knownShape(s signal.Shape) bool {
	for _, known := range signal.Shapes() {
		if s == known {
			return true
		}
	}

	return false
}

func finiteNonNegative(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}
