// SPDX-License-Identifier: MIT

// Package lab is the controller between the signal model, the spectral engine
// and whatever displays the result.
//
// A Session generates one observation, decomposes it once and then answers
// slider moves: every SetRank returns a DisplayUpdate (the reconstructed
// surface plus its Diagnostics) and Spectrum describes the singular values
// behind it. Rendering is delegated to a Display; the package never draws.
//
//	s, err := lab.NewSession(lab.DefaultConfig(), nil)
//	if err != nil {
//		return err
//	}
//	move, err := s.Bind(display) // func(newRank int) DisplayUpdate
//	if err != nil {
//		return err
//	}
//	move(s.Rank())
//	move(12)
//
// Sessions log through a logrus FieldLogger (log.StandardLogger() when nil).
package lab
