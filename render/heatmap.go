// SPDX-License-Identifier: MIT
// Package render - raster primitives.
//
// Heatmap row 0 is drawn at the top, matching the matrix layout (y grows
// downward in both). Captions sit on a dark strip above the raster.

package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/katalvlaran/lowrank/lab"
	"github.com/katalvlaran/lowrank/matrix"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const captionHeight = 18

var (
	background = color.RGBA{R: 24, G: 24, B: 28, A: 255}
	foreground = color.RGBA{R: 235, G: 235, B: 235, A: 255}
	muted      = color.RGBA{R: 90, G: 90, B: 96, A: 255}
	alert      = color.RGBA{R: 220, G: 50, B: 47, A: 255}
)

// Heatmap maps every entry of m through cmap after normalizing [lo, hi] to
// [0, 1]; values outside the range saturate. Each entry becomes a
// scale×scale block.
//
// Errors:
//   - ErrBadRange unless lo < hi and both finite.
//   - matrix.ErrNilMatrix, matrix.ErrInvalidDimensions.
func Heatmap(m *matrix.Dense, cmap Colormap, lo, hi float64, scale int) (*image.RGBA, error) {
	if err := validRange(lo, hi); err != nil {
		return nil, renderErrorf(opHeatmap, err)
	}
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, renderErrorf(opHeatmap, err)
	}
	if err := matrix.ValidateDims(m); err != nil {
		return nil, renderErrorf(opHeatmap, err)
	}
	scale = max(scale, 1)

	rows, cols := m.Rows(), m.Cols()
	img := image.NewRGBA(image.Rect(0, 0, cols*scale, rows*scale))
	span := hi - lo
	m.Do(func(i, j int, v float64) bool {
		c := cmap.RGBA((v - lo) / span)
		draw.Draw(img, image.Rect(j*scale, i*scale, (j+1)*scale, (i+1)*scale),
			image.NewUniform(c), image.Point{}, draw.Src)
		return true
	})

	return img, nil
}

// SpectrumChart draws one bar per singular value on a log10 axis. Bars in
// use by the current surface are colored from cmap, the rest are grey; the
// threshold is a horizontal red line when it is positive.
//
// Errors:
//   - ErrEmptySpectrum.
func SpectrumChart(s lab.Spectrum, cmap Colormap, width, height int) (*image.RGBA, error) {
	if len(s.Values) == 0 {
		return nil, renderErrorf(opChart, ErrEmptySpectrum)
	}
	width, height = max(width, len(s.Values)), max(height, 8)
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	top, bottom := logAxis(s)
	project := func(v float64) int {
		if v <= 0 {
			return height
		}
		t := (math.Log10(v) - bottom) / (top - bottom)
		t = max(0, min(1, t))

		return height - int(math.Round(t*float64(height-1))) - 1
	}

	bar := width / len(s.Values)
	for i, v := range s.Values {
		fill := color.Color(muted)
		if s.InUse(i) {
			fill = cmap.RGBA(0.25 + 0.75*float64(i+1)/float64(len(s.Values)))
		}
		x0 := i * bar
		draw.Draw(img, image.Rect(x0, project(v), x0+max(bar-1, 1), height),
			image.NewUniform(fill), image.Point{}, draw.Src)
	}
	if s.Threshold > 0 {
		y := project(s.Threshold)
		draw.Draw(img, image.Rect(0, y, width, y+1), image.NewUniform(alert), image.Point{}, draw.Src)
	}

	return img, nil
}

// logAxis returns the log10 range covering every positive value and the
// threshold, padded by a tenth of a decade.
func logAxis(s lab.Spectrum) (top, bottom float64) {
	top, bottom = math.Inf(-1), math.Inf(1)
	for _, v := range append([]float64{s.Threshold}, s.Values...) {
		if v <= 0 {
			continue
		}
		l := math.Log10(v)
		top, bottom = max(top, l), min(bottom, l)
	}
	if math.IsInf(top, 0) {
		return 1, 0
	}

	return top + 0.1, bottom - 0.1
}

// withCaption returns img below a caption strip of the same width.
func withCaption(img image.Image, text string) *image.RGBA {
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()+captionHeight))
	draw.Draw(out, out.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)
	draw.Draw(out, image.Rect(0, captionHeight, b.Dx(), b.Dy()+captionHeight), img, b.Min, draw.Src)

	d := &font.Drawer{
		Dst:  out,
		Src:  image.NewUniform(foreground),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(4, captionHeight-5),
	}
	d.DrawString(text)

	return out
}

// sideBySide places panels left to right on a shared background.
func sideBySide(gap int, panels ...image.Image) *image.RGBA {
	var w, h int
	for i, p := range panels {
		if i > 0 {
			w += gap
		}
		w += p.Bounds().Dx()
		h = max(h, p.Bounds().Dy())
	}
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(out, out.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)
	x := 0
	for _, p := range panels {
		b := p.Bounds()
		draw.Draw(out, image.Rect(x, 0, x+b.Dx(), b.Dy()), p, b.Min, draw.Src)
		x += b.Dx() + gap
	}

	return out
}

func validRange(lo, hi float64) error {
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) || lo >= hi {
		return fmt.Errorf("[%v, %v]: %w", lo, hi, ErrBadRange)
	}

	return nil
}
