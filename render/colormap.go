// SPDX-License-Identifier: MIT
package render

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Colormap maps t ∈ [0, 1] onto a perceptual color ramp.
type Colormap struct {
	name  string
	stops []colorful.Color
}

func newColormap(name string, hex ...string) Colormap {
	stops := make([]colorful.Color, len(hex))
	for i, h := range hex {
		c, err := colorful.Hex(h)
		if err != nil {
			panic("render: colormap " + name + ": " + err.Error())
		}
		stops[i] = c
	}

	return Colormap{name: name, stops: stops}
}

// Ten evenly spaced samples of the matplotlib ramps.
var (
	Viridis = newColormap("viridis",
		"#440154", "#482878", "#3e4989", "#31688e", "#26828e",
		"#1f9e89", "#35b779", "#6ece58", "#b5de2b", "#fde725")
	Magma = newColormap("magma",
		"#000004", "#180f3d", "#440f76", "#721f81", "#9e2f7f",
		"#cd4071", "#f1605d", "#fd9668", "#feca8d", "#fcfdbf")
)

// Colormaps lists the built-in ramps.
func Colormaps() []Colormap { return []Colormap{Viridis, Magma} }

// ParseColormap resolves a ramp by name, case-insensitively.
func ParseColormap(name string) (Colormap, error) {
	for _, c := range Colormaps() {
		if strings.EqualFold(c.name, name) {
			return c, nil
		}
	}

	return Colormap{}, renderErrorf(opParse, fmt.Errorf("%q: %w", name, ErrUnknownColormap))
}

// String returns the ramp name.
func (c Colormap) String() string { return c.name }

// At blends the two stops around t in L*a*b*. t is clamped to [0, 1]; NaN maps to 0.
func (c Colormap) At(t float64) colorful.Color {
	if math.IsNaN(t) || t <= 0 {
		return c.stops[0]
	}
	last := len(c.stops) - 1
	if t >= 1 {
		return c.stops[last]
	}
	pos := t * float64(last)
	i := int(pos)

	return c.stops[i].BlendLab(c.stops[i+1], pos-float64(i)).Clamped()
}

// RGBA is At converted to an opaque 8-bit color.
func (c Colormap) RGBA(t float64) color.RGBA {
	r, g, b := c.At(t).RGB255()

	return color.RGBA{R: r, G: g, B: b, A: 255}
}
