// SPDX-License-Identifier: MIT
package spectral

import (
	"fmt"
	"strings"
)

// Mode controls how an Engine interprets the rank argument of Reconstruct.
//
//   - KeepLeading - keep the first k singular triples (truncated SVD).
//   - ZeroLeading - zero the first k singular values and rebuild from the tail;
//     shows what the dominant components were hiding.
type Mode int

const (
	// KeepLeading reconstructs from the k largest singular triples.
	KeepLeading Mode = iota
	// ZeroLeading reconstructs with the k largest singular values removed.
	ZeroLeading
)

var modeNames = [...]string{KeepLeading: "keep-leading", ZeroLeading: "zero-leading"}

func (m Mode) valid() bool { return m >= 0 && int(m) < len(modeNames) }

// String returns the CLI name of the mode.
func (m Mode) String() string {
	if !m.valid() {
		return fmt.Sprintf("Mode(%d)", int(m))
	}

	return modeNames[m]
}

// ParseMode maps "keep-leading" / "zero-leading" (also "keep" / "zero") to a Mode.
func ParseMode(name string) (Mode, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for i, n := range modeNames {
		if key == n || key+"-leading" == n {
			return Mode(i), nil
		}
	}

	return 0, fmt.Errorf("spectral: unknown mode %q", name)
}
