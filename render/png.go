// SPDX-License-Identifier: MIT
package render

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/katalvlaran/lowrank/lab"
	"github.com/katalvlaran/lowrank/signal"
	"github.com/katalvlaran/lowrank/spectral"
)

// Defaults for PNG frames. The value range matches the fixed z-limits the
// surfaces are usually viewed with.
const (
	DefaultScale       = 6
	DefaultZMin        = -0.2
	DefaultZMax        = 1.2
	DefaultChartHeight = 240
	panelGap           = 8
)

// PNGOption configures a PNG display. Constructors panic on invalid values.
type PNGOption func(*PNG)

// WithScale sets the pixel size of one matrix entry (>= 1).
func WithScale(n int) PNGOption {
	if n < 1 {
		panic("render: WithScale(n<1)")
	}

	return func(p *PNG) { p.scale = n }
}

// WithZRange sets the value range mapped onto the colormap.
func WithZRange(lo, hi float64) PNGOption {
	if err := validRange(lo, hi); err != nil {
		panic("render: WithZRange(" + err.Error() + ")")
	}

	return func(p *PNG) { p.zmin, p.zmax = lo, hi }
}

// WithColormap sets the ramp used for reconstructions.
func WithColormap(c Colormap) PNGOption {
	if len(c.stops) < 2 {
		panic("render: WithColormap(zero Colormap)")
	}

	return func(p *PNG) { p.cmap = c }
}

// PNG writes frames into a directory. It implements lab.Display.
type PNG struct {
	dir     string
	scale   int
	zmin    float64
	zmax    float64
	cmap    Colormap
	written []string
}

// NewPNG creates dir if needed. Reconstructions default to Magma, the
// clean and noisy references written by WriteObservation use Viridis.
func NewPNG(dir string, opts ...PNGOption) (*PNG, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, renderErrorf(opPNG, err)
	}
	p := &PNG{dir: dir, scale: DefaultScale, zmin: DefaultZMin, zmax: DefaultZMax, cmap: Magma}
	for _, opt := range opts {
		opt(p)
	}

	return p, nil
}

// Written lists the files produced so far, in order.
func (p *PNG) Written() []string { return append([]string(nil), p.written...) }

// Render writes rank-NNN.png (KeepLeading) or removed-NNN.png (ZeroLeading):
// the captioned heatmap with the spectrum chart on its right.
func (p *PNG) Render(u lab.DisplayUpdate, s lab.Spectrum) error {
	heat, err := Heatmap(u.Surface, p.cmap, p.zmin, p.zmax, p.scale)
	if err != nil {
		return renderErrorf(opPNG, err)
	}
	chart, err := SpectrumChart(s, p.cmap, max(heat.Bounds().Dx(), 2*len(s.Values)), heat.Bounds().Dy())
	if err != nil {
		return renderErrorf(opPNG, err)
	}
	caption := fmt.Sprintf("%s  err=%.4f  gain=%.1f%%", u.Title(), u.Diagnostics.FrobeniusError, u.Diagnostics.GainPercent)
	frame := sideBySide(panelGap,
		withCaption(heat, caption),
		withCaption(chart, fmt.Sprintf("Singular values (optimal %d)", s.Optimal)))

	prefix := "rank"
	if u.Mode == spectral.ZeroLeading {
		prefix = "removed"
	}

	return p.save(frame, fmt.Sprintf("%s-%03d.png", prefix, u.Rank))
}

// WriteObservation writes clean.png and noisy.png for the static panels.
func (p *PNG) WriteObservation(obs *signal.Observation) error {
	if obs == nil {
		return renderErrorf(opObserved, ErrNilObservation)
	}
	panels := []struct {
		file, title string
		src         *image.RGBA
	}{
		{file: "clean.png", title: fmt.Sprintf("True Signal (Rank %d)", obs.Shape.Rank())},
		{file: "noisy.png", title: "Noisy Observation"},
	}
	var err error
	if panels[0].src, err = Heatmap(obs.Clean, Viridis, p.zmin, p.zmax, p.scale); err != nil {
		return renderErrorf(opObserved, err)
	}
	if panels[1].src, err = Heatmap(obs.Noisy, Viridis, p.zmin, p.zmax, p.scale); err != nil {
		return renderErrorf(opObserved, err)
	}
	for _, panel := range panels {
		if err = p.save(withCaption(panel.src, panel.title), panel.file); err != nil {
			return renderErrorf(opObserved, err)
		}
	}

	return nil
}

func (p *PNG) save(img image.Image, name string) error {
	path := filepath.Join(p.dir, name)
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	// a failed Close can lose buffered bytes of the frame
	if err = f.Close(); err != nil {
		return err
	}
	p.written = append(p.written, path)

	return nil
}
