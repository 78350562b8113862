// SPDX-License-Identifier: MIT
package lab

import (
	"errors"
	"fmt"
)

var (
	// ErrBadConfig reports a Config that fails Validate.
	ErrBadConfig = errors.New("lab: invalid config")

	// ErrNilDisplay reports Bind without a display.
	ErrNilDisplay = errors.New("lab: nil display")
)

const (
	opValidate   = "Validate"
	opNewSession = "NewSession"
	opSetRank    = "SetRank"
	opSpectrum   = "Spectrum"
	opRender     = "Render"
)

// labErrorf wraps err with an operation tag. Call only with err != nil.
func labErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
