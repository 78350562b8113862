// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lowrank/matrix"
)

// hide wraps any Matrix to hide its concrete type from type assertions.
// Use hide{X} to force the non-*Dense (At/Set) paths in code under test.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// MustRows builds a *Dense from literal rows or fails the test.
func MustRows(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows(rows)
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt(t testing.TB, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// RandomFill writes uniform values in [-1,1) from a seeded source in row-major order.
func RandomFill(t testing.TB, m *matrix.Dense, seed int64) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	err := m.Apply(func(_, _ int, _ float64) float64 { return 2*rng.Float64() - 1 })
	if err != nil {
		t.Fatalf("RandomFill: %v", err)
	}
}

// RandomDense allocates and fills an r×c matrix in one step.
func RandomDense(t testing.TB, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	m := MustDense(t, r, c)
	RandomFill(t, m, seed)

	return m
}

// emptyMatrix is a Matrix reporting a 0×cols shape; Dense cannot represent it.
type emptyMatrix struct{ cols int }

func (e emptyMatrix) Rows() int                     { return 0 }
func (e emptyMatrix) Cols() int                     { return e.cols }
func (e emptyMatrix) At(_, _ int) (float64, error)  { return 0, matrix.ErrOutOfRange }
func (e emptyMatrix) Set(_, _ int, _ float64) error { return matrix.ErrOutOfRange }
func (e emptyMatrix) Clone() matrix.Matrix          { return e }
