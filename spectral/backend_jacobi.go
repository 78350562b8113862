// SPDX-License-Identifier: MIT
// Package spectral - pure-Go SVD via the symmetric eigenproblem.
//
// For a tall A (rows ≥ cols):
//
//	AᵀA = V·diag(λ)·Vᵀ,  σ = sqrt(max(λ, 0)),  U = A·V·diag(1/σ)
//
// A wide A is handled through Aᵀ and the factors are swapped back.
//
// Accuracy: squaring into the Gram matrix limits relative resolution of the
// smallest singular values to about sqrt(machine epsilon)·σ₁. Values below
// sqrt(ε·p)·σ₁ are reported as 0 and their U columns are completed to an
// orthonormal basis, so U stays orthonormal for rank-deficient input.

package spectral

import (
	"math"
	"sort"

	"github.com/katalvlaran/lowrank/matrix"
	"gonum.org/v1/gonum/floats"
)

// decomposeJacobi factorizes m with matrix.Gram + matrix.Eigen.
func decomposeJacobi(m matrix.Matrix, cfg config) (*Decomposition, error) {
	rows, cols := m.Rows(), m.Cols()
	wide := rows < cols

	var (
		tall *matrix.Dense
		err  error
	)
	if wide {
		tall, err = matrix.Transpose(m)
	} else {
		tall, err = matrix.NewDenseFrom(rows, cols, denseData(m))
	}
	if err != nil {
		return nil, numericalErrorf(opDecompose, err)
	}

	u, s, v, err := jacobiTall(tall, cfg)
	if err != nil {
		return nil, err
	}

	d := &Decomposition{rows: rows, cols: cols, s: s}
	if wide {
		// Aᵀ = u·Σ·vᵀ  ⇒  A = v·Σ·uᵀ
		d.u = v
		d.vt, err = matrix.Transpose(u)
	} else {
		d.u = u
		d.vt, err = matrix.Transpose(v)
	}
	if err != nil {
		return nil, numericalErrorf(opDecompose, err)
	}

	return d, nil
}

// denseData reads m row-major; *Dense inputs are copied straight from storage.
func denseData(m matrix.Matrix) []float64 {
	if d, ok := m.(*matrix.Dense); ok {
		return d.RawData()
	}
	out := make([]float64, 0, m.Rows()*m.Cols())
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v, _ := m.At(i, j) // bounds proven by the loop
			out = append(out, v)
		}
	}

	return out
}

// jacobiTall factorizes a (p×q, p ≥ q) into u (p×q), s (q, descending), v (q×q).
func jacobiTall(a *matrix.Dense, cfg config) (*matrix.Dense, []float64, *matrix.Dense, error) {
	p, q := a.Rows(), a.Cols()

	g, err := matrix.Gram(a)
	if err != nil {
		return nil, nil, nil, numericalErrorf(opDecompose, err)
	}
	gn, err := matrix.FrobeniusNorm(g)
	if err != nil {
		return nil, nil, nil, numericalErrorf(opDecompose, err)
	}
	lambda, vecs, err := matrix.Eigen(g, cfg.tol*gn, cfg.maxIter)
	if err != nil {
		return nil, nil, nil, numericalErrorf(opDecompose, err)
	}

	order := make([]int, q)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool { return lambda[order[i]] > lambda[order[j]] })

	s := make([]float64, q)
	v, err := matrix.NewDense(q, q)
	if err != nil {
		return nil, nil, nil, numericalErrorf(opDecompose, err)
	}
	var (
		row, src []float64
		i, k     int
	)
	for k = 0; k < q; k++ {
		s[k] = math.Sqrt(math.Max(lambda[order[k]], 0))
	}
	for i = 0; i < q; i++ {
		row, _ = v.RawRowView(i)
		src, _ = vecs.RawRowView(i)
		for k = 0; k < q; k++ {
			row[k] = src[order[k]]
		}
	}

	av, err := matrix.Mul(a, v)
	if err != nil {
		return nil, nil, nil, numericalErrorf(opDecompose, err)
	}
	// Values at or below the Gram resolution carry no direction.
	cut := math.Sqrt(machEps*float64(p)) * s[0]
	for k = 0; k < q; k++ {
		if s[k] <= cut {
			s[k] = 0
		}
	}
	for i = 0; i < p; i++ {
		row, _ = av.RawRowView(i)
		for k = 0; k < q; k++ {
			if s[k] == 0 {
				row[k] = 0
				continue
			}
			row[k] /= s[k]
		}
	}
	completeBasis(av, s)

	return av, s, v, nil
}

// machEps is the float64 machine epsilon.
const machEps = 0x1p-52

// completeBasis makes the p×q columns of u orthonormal with two passes of
// modified Gram–Schmidt, in column order. Columns with s[k] == 0, or that
// collapse onto the columns before them, are replaced by a standard basis
// vector independent of those columns (p ≥ q guarantees one exists).
func completeBasis(u *matrix.Dense, s []float64) {
	p, q := u.Rows(), u.Cols()
	cols := make([][]float64, q)
	var k, i int
	for k = 0; k < q; k++ {
		cols[k] = make([]float64, p)
		for i = 0; i < p; i++ {
			cols[k][i], _ = u.At(i, k)
		}
	}

	next := 0 // standard basis vectors before next are already spanned
	for k = 0; k < q; k++ {
		if s[k] != 0 && orthogonalize(cols[k], cols[:k]) > 0.5 {
			continue
		}
		floor := 0.5 * math.Sqrt(float64(p-k)/float64(p))
		found := false
		for ; next < p && !found; next++ {
			found = basisResidual(cols[k], cols[:k], next) >= floor
		}
		if found {
			continue
		}
		// the squared residuals of e_0..e_{p-1} sum to p−k, so the largest
		// one is never zero
		best, bestNorm := 0, -1.0
		for i = 0; i < p; i++ {
			if n := basisResidual(cols[k], cols[:k], i); n > bestNorm {
				best, bestNorm = i, n
			}
		}
		basisResidual(cols[k], cols[:k], best)
	}

	for k = 0; k < q; k++ {
		for i = 0; i < p; i++ {
			_ = u.Set(i, k, cols[k][i])
		}
	}
}

// basisResidual loads e_i into x, orthogonalizes it against basis and returns
// the residual norm.
func basisResidual(x []float64, basis [][]float64, i int) float64 {
	floats.Scale(0, x)
	x[i] = 1

	return orthogonalize(x, basis)
}

// orthogonalize removes from x its components along basis (twice) and
// normalizes it. It returns the norm before normalization; x is left
// unnormalized when that norm is zero.
func orthogonalize(x []float64, basis [][]float64) float64 {
	for pass := 0; pass < 2; pass++ {
		for _, b := range basis {
			floats.AddScaled(x, -floats.Dot(x, b), b)
		}
	}
	n := floats.Norm(x, 2)
	if n > 0 {
		floats.Scale(1/n, x)
	}

	return n
}
