// SPDX-License-Identifier: MIT
package render

import (
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSaveRecordsOnlyCompleteFrames(t *testing.T) {
	dir := t.TempDir()
	p, err := NewPNG(dir)
	require.NoError(t, err)

	// png.Encode rejects an empty image
	require.Error(t, p.save(image.NewRGBA(image.Rect(0, 0, 0, 0)), "empty.png"))
	require.Empty(t, p.Written())

	require.NoError(t, p.save(image.NewRGBA(image.Rect(0, 0, 2, 2)), "ok.png"))
	require.Equal(t, []string{filepath.Join(dir, "ok.png")}, p.Written())
	info, err := os.Stat(filepath.Join(dir, "ok.png"))
	require.NoError(t, err)
	require.Positive(t, info.Size())
}
