// SPDX-License-Identifier: MIT
package spectral_test

import (
	"testing"

	"github.com/katalvlaran/lowrank/matrix"
	"github.com/katalvlaran/lowrank/signal"
	"github.com/katalvlaran/lowrank/spectral"
	"github.com/stretchr/testify/require"
)

// Reference experiment: 60×60 three-peak surface, σ = 0.15, seed 2026.
const (
	scenarioSize  = 60
	scenarioSigma = 0.15
	scenarioSeed  = 2026
)

var backends = []spectral.Backend{spectral.BackendLAPACK, spectral.BackendJacobi}

func scenario(t testing.TB, opts ...signal.Option) *signal.Observation {
	t.Helper()
	obs, err := signal.Observe(scenarioSize, signal.ShapeThreePeaks, scenarioSigma, scenarioSeed, opts...)
	require.NoError(t, err)

	return obs
}

func mustDecompose(t testing.TB, m matrix.Matrix, opts ...spectral.Option) *spectral.Decomposition {
	t.Helper()
	d, err := spectral.Decompose(m, opts...)
	require.NoError(t, err)

	return d
}

func mustRows(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return m
}

func randomDense(t testing.TB, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	z, err := matrix.NewDense(r, c)
	require.NoError(t, err)
	noisy, err := signal.AddNoise(z, 1, seed)
	require.NoError(t, err)

	return noisy
}

func requireClose(t testing.TB, want, got matrix.Matrix, atol float64) {
	t.Helper()
	ok, err := matrix.AllClose(got, want, 0, atol)
	require.NoError(t, err)
	require.True(t, ok, "matrices differ beyond atol=%g", atol)
}

func requireZero(t testing.TB, m *matrix.Dense) {
	t.Helper()
	for _, v := range m.RawData() {
		require.Zero(t, v)
	}
}

// requireOrthonormalCols checks QᵀQ ≈ I.
func requireOrthonormalCols(t testing.TB, q *matrix.Dense, atol float64) {
	t.Helper()
	qt, err := matrix.Transpose(q)
	require.NoError(t, err)
	qtq, err := matrix.Mul(qt, q)
	require.NoError(t, err)
	id, err := matrix.NewIdentity(q.Cols())
	require.NoError(t, err)
	requireClose(t, id, qtq, atol)
}

// emptyMatrix reports a 0×cols shape.
type emptyMatrix struct{ cols int }

func (e emptyMatrix) Rows() int                     { return 0 }
func (e emptyMatrix) Cols() int                     { return e.cols }
func (e emptyMatrix) At(_, _ int) (float64, error)  { return 0, matrix.ErrOutOfRange }
func (e emptyMatrix) Set(_, _ int, _ float64) error { return matrix.ErrOutOfRange }
func (e emptyMatrix) Clone() matrix.Matrix          { return e }
