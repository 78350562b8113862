// SPDX-License-Identifier: MIT
package signal_test

import (
	"testing"

	"github.com/katalvlaran/lowrank/signal"
	"github.com/stretchr/testify/require"
)

func TestShapeCatalogue(t *testing.T) {
	tests := []struct {
		shape  signal.Shape
		name   string
		size   int
		rank   int
		lo, hi float64
	}{
		{signal.ShapeThreePeaks, "three-peaks", 60, 3, -2.5, 2.5},
		{signal.ShapeTwoPeaks, "two-peaks", 64, 2, -2, 2},
		{signal.ShapeSymmetricPeaks, "symmetric-peaks", 60, 3, -2, 2},
		{signal.ShapeModulatedSinusoid, "modulated-sinusoid", 200, 2, -3.141592653589793, 3.141592653589793},
	}
	require.Len(t, signal.Shapes(), len(tests))
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.name, tc.shape.String())
			require.Equal(t, tc.size, tc.shape.DefaultSize())
			require.Equal(t, tc.rank, tc.shape.Rank())
			lo, hi := tc.shape.DefaultRange()
			require.Equal(t, tc.lo, lo)
			require.Equal(t, tc.hi, hi)

			parsed, err := signal.ParseShape(tc.name)
			require.NoError(t, err)
			require.Equal(t, tc.shape, parsed)
		})
	}
}

func TestParseShape(t *testing.T) {
	s, err := signal.ParseShape("  Two_Peaks ")
	require.NoError(t, err)
	require.Equal(t, signal.ShapeTwoPeaks, s)

	_, err = signal.ParseShape("saddle")
	require.ErrorIs(t, err, signal.ErrUnknownShape)

	require.Equal(t, "Shape(9)", signal.Shape(9).String())
	require.Zero(t, signal.Shape(-1).DefaultSize())
}
