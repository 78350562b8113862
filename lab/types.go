// SPDX-License-Identifier: MIT
package lab

import (
	"fmt"

	"github.com/katalvlaran/lowrank/matrix"
	"github.com/katalvlaran/lowrank/spectral"
)

// Diagnostics is the metric set reported with every update.
type Diagnostics = spectral.Diagnostics

// DisplayUpdate is everything a display needs after a slider move.
type DisplayUpdate struct {
	Requested   int           // slider value as received
	Rank        int           // triples kept (KeepLeading) or removed (ZeroLeading) after clamping
	Mode        spectral.Mode // how Rank was applied
	Surface     *matrix.Dense // reconstruction, same shape as the observation
	Diagnostics Diagnostics   // measured against the clean surface and the noise
}

// Title is a short caption for the reconstructed surface.
func (u DisplayUpdate) Title() string {
	if u.Mode == spectral.ZeroLeading {
		return fmt.Sprintf("Leading %d Removed", u.Rank)
	}

	return fmt.Sprintf("SVD Denoised (Rank %d)", u.Rank)
}

// Spectrum describes the singular values behind an update.
//
// Retained splits the spectrum the same way the surface does: indices
// [0, Retained) are in use under KeepLeading, [Retained, len(Values)) under
// ZeroLeading.
type Spectrum struct {
	Values    []float64 // singular values, descending
	Energy    []float64 // cumulative energy, ends at 1
	Threshold float64   // Gavish–Donoho cut-off for the session σ
	Optimal   int       // values strictly above Threshold
	Retained  int
	Mode      spectral.Mode
}

// InUse reports whether triple i contributes to the current surface.
func (s Spectrum) InUse(i int) bool {
	if s.Mode == spectral.ZeroLeading {
		return i >= s.Retained
	}

	return i < s.Retained
}

// Display renders updates. Implementations live outside the core.
type Display interface {
	Render(u DisplayUpdate, s Spectrum) error
}

// DisplayFunc adapts a plain function to Display.
type DisplayFunc func(DisplayUpdate, Spectrum) error

// Render calls f.
func (f DisplayFunc) Render(u DisplayUpdate, s Spectrum) error { return f(u, s) }

// Displays fans one update out to several displays, stopping at the first error.
type Displays []Display

// Render renders to every display in order.
func (ds Displays) Render(u DisplayUpdate, s Spectrum) error {
	for _, d := range ds {
		if err := d.Render(u, s); err != nil {
			return err
		}
	}

	return nil
}

// Observer receives slider moves. It is what a UI calls on every change.
type Observer func(newRank int) DisplayUpdate
