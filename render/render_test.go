// SPDX-License-Identifier: MIT
package render_test

import (
	"bytes"
	"image"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/lowrank/lab"
	"github.com/katalvlaran/lowrank/matrix"
	"github.com/katalvlaran/lowrank/render"
	"github.com/katalvlaran/lowrank/spectral"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeatmap(t *testing.T) {
	m, err := matrix.FromRows([][]float64{{0, 1}})
	require.NoError(t, err)
	img, err := render.Heatmap(m, render.Viridis, 0, 1, 2)
	require.NoError(t, err)
	require.Equal(t, 4, img.Bounds().Dx())
	require.Equal(t, 2, img.Bounds().Dy())
	assert.Equal(t, render.Viridis.RGBA(0), img.RGBAAt(0, 0))
	assert.Equal(t, render.Viridis.RGBA(0), img.RGBAAt(1, 1))
	assert.Equal(t, render.Viridis.RGBA(1), img.RGBAAt(3, 1))

	_, err = render.Heatmap(m, render.Viridis, 1, 1, 2)
	require.ErrorIs(t, err, render.ErrBadRange)
	_, err = render.Heatmap(m, render.Viridis, 0, math.Inf(1), 2)
	require.ErrorIs(t, err, render.ErrBadRange)
	_, err = render.Heatmap(nil, render.Viridis, 0, 1, 2)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestSpectrumChart(t *testing.T) {
	s := lab.Spectrum{Values: []float64{10, 5, 1, 0.1, 0}, Threshold: 2, Retained: 2}
	img, err := render.SpectrumChart(s, render.Magma, 50, 40)
	require.NoError(t, err)
	require.Equal(t, 50, img.Bounds().Dx())
	require.Equal(t, 40, img.Bounds().Dy())
	// an in-use bar against the empty top-right corner
	assert.NotEqual(t, img.RGBAAt(0, 39), img.RGBAAt(49, 0))

	_, err = render.SpectrumChart(lab.Spectrum{}, render.Magma, 10, 10)
	require.ErrorIs(t, err, render.ErrEmptySpectrum)
}

func TestPNGRender(t *testing.T) {
	dir := t.TempDir()
	p, err := render.NewPNG(dir)
	require.NoError(t, err)

	surface, err := matrix.NewDense(4, 4)
	require.NoError(t, err)
	u := lab.DisplayUpdate{Rank: 2, Mode: spectral.KeepLeading, Surface: surface}
	s := lab.Spectrum{Values: []float64{3, 2, 1, 0.5}, Threshold: 1.5, Retained: 2, Optimal: 2}
	require.NoError(t, p.Render(u, s))

	path := filepath.Join(dir, "rank-002.png")
	require.Equal(t, []string{path}, p.Written())
	img := decode(t, path)
	// heatmap 24 + gap 8 + chart 24; 24 rows plus an 18px caption
	assert.Equal(t, 56, img.Bounds().Dx())
	assert.Equal(t, 42, img.Bounds().Dy())

	u.Mode = spectral.ZeroLeading
	require.NoError(t, p.Render(u, s))
	assert.FileExists(t, filepath.Join(dir, "removed-002.png"))
}

func TestPNGOptionPanics(t *testing.T) {
	assert.Panics(t, func() { render.WithScale(0) })
	assert.Panics(t, func() { render.WithZRange(2, 1) })
	assert.Panics(t, func() { render.WithColormap(render.Colormap{}) })
}

func TestSessionEndToEnd(t *testing.T) {
	logger, _ := test.NewNullLogger()
	cfg := lab.DefaultConfig()
	cfg.Size = 16
	s, err := lab.NewSession(cfg, logger)
	require.NoError(t, err)

	dir := t.TempDir()
	p, err := render.NewPNG(dir, render.WithScale(2), render.WithColormap(render.Viridis))
	require.NoError(t, err)
	require.NoError(t, p.WriteObservation(s.Observation()))
	require.ErrorIs(t, p.WriteObservation(nil), render.ErrNilObservation)

	var out bytes.Buffer
	move, err := s.Bind(lab.Displays{p, render.NewConsole(&out)})
	require.NoError(t, err)
	move(1)
	move(3)

	require.Len(t, p.Written(), 4)
	noisy := decode(t, filepath.Join(dir, "noisy.png"))
	assert.Equal(t, 32, noisy.Bounds().Dx())
	assert.Equal(t, 32+18, noisy.Bounds().Dy())
	assert.FileExists(t, filepath.Join(dir, "rank-003.png"))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "Frobenius")
	assert.Contains(t, lines[1], "keep-leading")
	fields := strings.Fields(lines[2])
	assert.Equal(t, "3", fields[1])
}

func decode(t *testing.T, path string) image.Image {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)

	return img
}
