// SPDX-License-Identifier: MIT
package render_test

import (
	"image/color"
	"math"
	"testing"

	"github.com/katalvlaran/lowrank/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColormapEndpoints(t *testing.T) {
	assert.Equal(t, color.RGBA{R: 0x44, G: 0x01, B: 0x54, A: 255}, render.Viridis.RGBA(0))
	assert.Equal(t, color.RGBA{R: 0xfd, G: 0xe7, B: 0x25, A: 255}, render.Viridis.RGBA(1))
	assert.Equal(t, color.RGBA{R: 0x00, G: 0x00, B: 0x04, A: 255}, render.Magma.RGBA(-3))
	assert.Equal(t, color.RGBA{R: 0xfc, G: 0xfd, B: 0xbf, A: 255}, render.Magma.RGBA(7))
	assert.Equal(t, render.Magma.RGBA(0), render.Magma.RGBA(math.NaN()))
}

func TestColormapBrightens(t *testing.T) {
	// both ramps are monotone in lightness
	for _, c := range render.Colormaps() {
		prev, _, _ := c.At(0).Lab()
		for i := 1; i <= 20; i++ {
			l, _, _ := c.At(float64(i) / 20).Lab()
			require.GreaterOrEqual(t, l, prev-1e-9, "%v at %d", c, i)
			prev = l
		}
	}
}

func TestParseColormap(t *testing.T) {
	c, err := render.ParseColormap("MAGMA")
	require.NoError(t, err)
	assert.Equal(t, "magma", c.String())

	_, err = render.ParseColormap("jet")
	require.ErrorIs(t, err, render.ErrUnknownColormap)
}
