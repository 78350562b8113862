// SPDX-License-Identifier: MIT
package render

import (
	"errors"
	"fmt"
)

var (
	// ErrBadRange reports a value range with lo >= hi or non-finite bounds.
	ErrBadRange = errors.New("render: invalid value range")

	// ErrUnknownColormap reports a colormap name outside Colormaps().
	ErrUnknownColormap = errors.New("render: unknown colormap")

	// ErrEmptySpectrum reports a chart request without singular values.
	ErrEmptySpectrum = errors.New("render: empty spectrum")

	// ErrNilObservation reports WriteObservation(nil).
	ErrNilObservation = errors.New("render: nil observation")
)

const (
	opHeatmap  = "Heatmap"
	opChart    = "SpectrumChart"
	opParse    = "ParseColormap"
	opPNG      = "PNG"
	opConsole  = "Console"
	opObserved = "WriteObservation"
)

// renderErrorf wraps err with an operation tag. Call only with err != nil.
func renderErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
