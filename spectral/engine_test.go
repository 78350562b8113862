// SPDX-License-Identifier: MIT
package spectral_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lowrank/matrix"
	"github.com/katalvlaran/lowrank/signal"
	"github.com/katalvlaran/lowrank/spectral"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type EngineSuite struct {
	suite.Suite
	obs *signal.Observation
}

func (s *EngineSuite) SetupSuite() {
	s.obs = scenario(s.T())
}

func (s *EngineSuite) TestInvalidStateBeforeDecompose() {
	e := spectral.NewEngine()
	s.Equal(spectral.StateUndecomposed, e.State())
	s.Equal(spectral.KeepLeading, e.Mode())

	_, err := e.Decomposition()
	s.ErrorIs(err, spectral.ErrInvalidState)
	_, _, err = e.Reconstruct(1)
	s.ErrorIs(err, spectral.ErrInvalidState)
	_, err = e.OptimalRank(0.1)
	s.ErrorIs(err, spectral.ErrInvalidState)
	_, err = e.CumulativeEnergy()
	s.ErrorIs(err, spectral.ErrInvalidState)
	_, err = e.Diagnose(s.obs.Clean, s.obs.Noise, 1)
	s.ErrorIs(err, spectral.ErrInvalidState)
}

func (s *EngineSuite) TestFailedDecomposeKeepsState() {
	bad, err := matrix.NewDense(2, 2, matrix.WithNoValidateNaNInf())
	s.Require().NoError(err)
	s.Require().NoError(bad.Set(0, 0, math.Inf(1)))

	e := spectral.NewEngine()
	s.ErrorIs(e.Decompose(bad), spectral.ErrNumerical)
	s.Equal(spectral.StateUndecomposed, e.State())

	s.Require().NoError(e.Decompose(s.obs.Noisy))
	before, err := e.Decomposition()
	s.Require().NoError(err)

	s.ErrorIs(e.Decompose(bad), spectral.ErrNumerical)
	s.Equal(spectral.StateDecomposed, e.State())
	after, err := e.Decomposition()
	s.Require().NoError(err)
	s.Same(before, after)
}

func (s *EngineSuite) TestRedecomposeReplaces() {
	e := spectral.NewEngine(spectral.WithBackend(spectral.BackendJacobi))
	s.Require().NoError(e.Decompose(s.obs.Noisy))
	small := randomDense(s.T(), 4, 3, 1)
	s.Require().NoError(e.Decompose(small))

	d, err := e.Decomposition()
	s.Require().NoError(err)
	s.Equal(4, d.Rows())
	s.Equal(3, d.Cols())
	s.Equal(spectral.BackendJacobi, d.Backend())
}

func (s *EngineSuite) TestModeDispatch() {
	keep := spectral.NewEngine()
	zero := spectral.NewEngine(spectral.WithMode(spectral.ZeroLeading))
	s.Require().NoError(keep.Decompose(s.obs.Noisy))
	s.Require().NoError(zero.Decompose(s.obs.Noisy))
	d, err := keep.Decomposition()
	s.Require().NoError(err)

	got, k, err := keep.Reconstruct(3)
	s.Require().NoError(err)
	s.Equal(3, k)
	want, _, err := spectral.Reconstruct(d, 3)
	s.Require().NoError(err)
	requireClose(s.T(), want, got, 0)

	got, k, err = zero.Reconstruct(3)
	s.Require().NoError(err)
	s.Equal(3, k)
	want, _, err = spectral.ReconstructWithRemoval(d, 3)
	s.Require().NoError(err)
	requireClose(s.T(), want, got, 0)

	_, k, err = zero.Reconstruct(1000)
	s.Require().NoError(err)
	s.Equal(d.Rank(), k)
}

func (s *EngineSuite) TestDiagnose() {
	keep := spectral.NewEngine()
	s.Require().NoError(keep.Decompose(s.obs.Noisy))
	d, err := keep.Decomposition()
	s.Require().NoError(err)

	k, err := keep.OptimalRank(scenarioSigma)
	s.Require().NoError(err)
	diag, err := keep.Diagnose(s.obs.Clean, s.obs.Noise, k)
	s.Require().NoError(err)
	s.Equal(k, diag.Rank)
	s.Greater(diag.GainPercent, 0.0)
	s.InDelta(diag.FrobeniusError*diag.FrobeniusError/float64(scenarioSize*scenarioSize), diag.MSE, 1e-12)
	pct, err := spectral.EnergyPercent(d, k)
	s.Require().NoError(err)
	s.InDelta(pct, diag.EnergyPercent, 1e-12)

	zero := spectral.NewEngine(spectral.WithMode(spectral.ZeroLeading))
	s.Require().NoError(zero.Decompose(s.obs.Noisy))
	zd, err := zero.Diagnose(s.obs.Clean, s.obs.Noise, k)
	s.Require().NoError(err)
	s.InDelta(100-pct, zd.EnergyPercent, 1e-9)
	// dropping the signal components is worse than keeping them
	s.Greater(zd.FrobeniusError, diag.FrobeniusError)

	_, err = keep.Diagnose(s.obs.Clean, randomDense(s.T(), 2, 2, 1), k)
	s.ErrorIs(err, matrix.ErrDimensionMismatch)
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineSuite))
}

func TestStateString(t *testing.T) {
	require.Equal(t, "undecomposed", spectral.StateUndecomposed.String())
	require.Equal(t, "decomposed", spectral.StateDecomposed.String())
	require.Equal(t, "State(9)", spectral.State(9).String())
}

func TestEvaluateReturnsMeasuredSurface(t *testing.T) {
	obs := scenario(t)
	e := spectral.NewEngine()
	require.NoError(t, e.Decompose(obs.Noisy))

	approx, diag, err := e.Evaluate(obs.Clean, obs.Noise, 4)
	require.NoError(t, err)
	require.Equal(t, 4, diag.Rank)
	fe, err := spectral.FrobeniusError(obs.Clean, approx)
	require.NoError(t, err)
	require.Equal(t, fe, diag.FrobeniusError)

	_, _, err = spectral.NewEngine().Evaluate(obs.Clean, obs.Noise, 1)
	require.ErrorIs(t, err, spectral.ErrInvalidState)
}
