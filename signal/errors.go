// SPDX-License-Identifier: MIT
// Package: lowrank/signal
//
// errors.go - sentinel errors for the signal package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Context is attached at the detection site via signalErrorf (%w).
//   • Generators never panic at runtime; option constructors (WithX) panic on
//     meaningless values.

package signal

import (
	"errors"
	"fmt"
)

// ErrBadSize indicates a grid size below 1.
// Usage: if errors.Is(err, ErrBadSize) { /* fix size */ }.
var ErrBadSize = errors.New("signal: invalid size")

// ErrUnknownShape indicates a Shape value or name outside the known catalogue.
var ErrUnknownShape = errors.New("signal: unknown shape")

// ErrInvalidSigma indicates a negative or non-finite noise standard deviation.
var ErrInvalidSigma = errors.New("signal: sigma must be finite and >= 0")

// Method names used as error prefixes (no magic strings at call sites).
const (
	methodGenerate = "Generate"
	methodAddNoise = "AddNoise"
	methodObserve  = "Observe"
	methodParse    = "ParseShape"
)

// signalErrorf prefixes err with the method name, keeping it matchable via errors.Is.
func signalErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
