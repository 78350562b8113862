// SPDX-License-Identifier: MIT
package spectral_test

import (
	"testing"

	"github.com/katalvlaran/lowrank/matrix"
	"github.com/katalvlaran/lowrank/spectral"
	"github.com/stretchr/testify/require"
)

func TestReconstructZeroRank(t *testing.T) {
	d := mustDecompose(t, randomDense(t, 5, 4, 1))
	z, k, err := spectral.Reconstruct(d, 0)
	require.NoError(t, err)
	require.Equal(t, 0, k)
	require.Equal(t, 5, z.Rows())
	require.Equal(t, 4, z.Cols())
	requireZero(t, z)
}

func TestReconstructClamps(t *testing.T) {
	a := randomDense(t, 6, 4, 2)
	d := mustDecompose(t, a)

	lo, k, err := spectral.Reconstruct(d, -3)
	require.NoError(t, err)
	require.Equal(t, 0, k)
	requireZero(t, lo)

	hi, k, err := spectral.Reconstruct(d, 99)
	require.NoError(t, err)
	require.Equal(t, d.Rank(), k)
	requireClose(t, a, hi, 1e-9)

	_, k, err = spectral.ReconstructWithRemoval(d, -1)
	require.NoError(t, err)
	require.Equal(t, 0, k)
	_, k, err = spectral.ReconstructWithRemoval(d, 17)
	require.NoError(t, err)
	require.Equal(t, d.Rank(), k)
}

func TestReconstructRankOne(t *testing.T) {
	// outer product of (1,2,3) and (4,5)
	a := mustRows(t, [][]float64{{4, 5}, {8, 10}, {12, 15}})
	for _, b := range backends {
		d := mustDecompose(t, a, spectral.WithBackend(b))
		require.InDelta(t, 0, d.Values()[1], 1e-6)
		one, _, err := spectral.Reconstruct(d, 1)
		require.NoError(t, err)
		requireClose(t, a, one, 1e-9)
	}
}

func TestRemovalBounds(t *testing.T) {
	a := randomDense(t, 7, 7, 3)
	for _, b := range backends {
		d := mustDecompose(t, a, spectral.WithBackend(b))

		full, _, err := spectral.ReconstructWithRemoval(d, 0)
		require.NoError(t, err)
		keep, _, err := spectral.Reconstruct(d, d.Rank())
		require.NoError(t, err)
		requireClose(t, keep, full, 1e-12)
		requireClose(t, a, full, 1e-9)

		none, _, err := spectral.ReconstructWithRemoval(d, d.Rank())
		require.NoError(t, err)
		requireZero(t, none)
	}
}

func TestKeepPlusRemovalIsFull(t *testing.T) {
	obs := scenario(t)
	d := mustDecompose(t, obs.Noisy)
	for _, k := range []int{1, 3, 10, 59} {
		keep, _, err := spectral.Reconstruct(d, k)
		require.NoError(t, err)
		rest, _, err := spectral.ReconstructWithRemoval(d, k)
		require.NoError(t, err)
		sum, err := matrix.Add(keep, rest)
		require.NoError(t, err)
		requireClose(t, obs.Noisy, sum, 1e-9)
	}
}

func TestReconstructNil(t *testing.T) {
	_, _, err := spectral.Reconstruct(nil, 1)
	require.ErrorIs(t, err, spectral.ErrNilDecomposition)
	_, _, err = spectral.ReconstructWithRemoval(nil, 1)
	require.ErrorIs(t, err, spectral.ErrNilDecomposition)
}
