// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lowrank/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)                      // zero rows
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions

	_, err = matrix.NewDense(5, -1)                      // negative columns
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions
}

// TestRowsCols verifies that Rows(), Cols() and Shape() agree.
func TestRowsCols(t *testing.T) {
	m := MustDense(t, 3, 4)
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
	r, c := m.Shape()
	require.Equal(t, [2]int{3, 4}, [2]int{r, c})
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m := MustDense(t, 2, 2)

	_, err := m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds) // alias still matches

	require.ErrorIs(t, m.Set(2, 0, 1.23), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 4.56), matrix.ErrOutOfRange)
}

// TestSetRejectsNonFinite checks the strict numeric policy and its opt-out.
func TestSetRejectsNonFinite(t *testing.T) {
	strict := MustDense(t, 1, 1)
	require.ErrorIs(t, strict.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, strict.Set(0, 0, math.Inf(-1)), matrix.ErrNaNInf)

	lax, err := matrix.NewDense(1, 1, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.NoError(t, lax.Set(0, 0, math.Inf(1)))
	require.True(t, math.IsInf(MustAt(t, lax, 0, 0), 1))

	// the policy travels with Clone
	cl := lax.Clone()
	require.NoError(t, cl.Set(0, 0, math.NaN()))
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m := MustRows(t, [][]float64{{1, 0}, {0, 2}})
	clone := m.Clone()
	require.NoError(t, clone.Set(0, 0, 3.0))

	require.Equal(t, 1.0, MustAt(t, m, 0, 0))
	require.Equal(t, 3.0, MustAt(t, clone, 0, 0))
}

// TestNewDenseFrom covers copy semantics and shape/policy errors.
func TestNewDenseFrom(t *testing.T) {
	data := []float64{1, 2, 3, 4, 5, 6}
	m, err := matrix.NewDenseFrom(2, 3, data)
	require.NoError(t, err)
	data[0] = 100 // caller mutation must not leak
	require.Equal(t, 1.0, MustAt(t, m, 0, 0))
	require.Equal(t, 6.0, MustAt(t, m, 1, 2))

	_, err = matrix.NewDenseFrom(2, 2, data)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.NewDenseFrom(1, 2, []float64{1, math.NaN()})
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	_, err = matrix.NewDenseFrom(1, 2, []float64{1, math.NaN()}, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
}

// TestRawRowViewAliases checks that RawRowView shares storage and RawData does not.
func TestRawRowViewAliases(t *testing.T) {
	m := MustRows(t, [][]float64{{1, 2}, {3, 4}})
	row, err := m.RawRowView(1)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 4}, row)
	row[0] = 30
	require.Equal(t, 30.0, MustAt(t, m, 1, 0))

	raw := m.RawData()
	raw[3] = -1
	require.Equal(t, 4.0, MustAt(t, m, 1, 1))

	_, err = m.RawRowView(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestDoApply covers visitation order, early stop, and Apply's numeric policy.
func TestDoApply(t *testing.T) {
	m := MustRows(t, [][]float64{{1, 2}, {3, 4}})

	var seen []float64
	m.Do(func(_, _ int, v float64) bool {
		seen = append(seen, v)
		return v < 3 // stop after the third element
	})
	require.Equal(t, []float64{1, 2, 3}, seen)

	require.NoError(t, m.Apply(func(i, j int, v float64) float64 { return v * 10 }))
	require.Equal(t, 40.0, MustAt(t, m, 1, 1))

	err := m.Apply(func(i, j int, v float64) float64 { return math.Inf(1) })
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

// TestString renders rows on separate lines.
func TestString(t *testing.T) {
	m := MustRows(t, [][]float64{{1, 2.5}, {-3, 0}})
	require.Equal(t, "[1, 2.5]\n[-3, 0]\n", m.String())
}
