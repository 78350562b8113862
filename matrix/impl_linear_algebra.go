// SPDX-License-Identifier: MIT
// Package matrix - linear algebra kernels.
//
// Purpose:
//   - Elementwise Add/Sub/Scale, product Mul, Transpose, Gram (AᵀA), the
//     Frobenius norm, and a cyclic Jacobi eigen solver for symmetric input.
//   - These are the building blocks of the pure-Go SVD path in package spectral.
//
// Determinism:
//   - Every kernel walks fixed loop orders; identical inputs give identical bits.
//   - *Dense operands take a flat-slice fast path; other Matrix values fall
//     back to At/Set with the same loop order.

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// NormZero is the additive identity for norm and accumulation operations.
const NormZero = 0.0

// ZeroSum is the initial value of dot-product accumulators.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opGram      = "Gram"
	opFrobenius = "FrobeniusNorm"
	opEigen     = "Eigen"
	opAllClose  = "AllClose"
	opToDense   = "toDense"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// AI-Hints:
//   - Always gate calls with `if err != nil { return nil, matrixErrorf(tag, err) }`.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// toDense returns m itself when it is a *Dense, otherwise a Dense copy read via At.
// The copy inherits the default numeric policy.
func toDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	rows, cols := m.Rows(), m.Cols()
	out, err := NewDense(rows, cols, WithNoValidateNaNInf())
	if err != nil {
		return nil, matrixErrorf(opToDense, err)
	}
	var (
		i, j int
		v    float64
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opToDense, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			out.data[i*cols+j] = v
		}
	}

	return out, nil
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// A fresh Dense is allocated; operands are not mutated.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (ValidateBinarySameShape).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func addSub(a, b Matrix, sign float64, opTag string) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	da, err := toDense(a)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	db, err := toDense(b)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	res, err := NewDense(a.Rows(), a.Cols(), WithNoValidateNaNInf())
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	for k := range res.data {
		res.data[k] = da.data[k] + sign*db.data[k]
	}

	return res, nil
}

// Add returns a + b as a new Dense.
// Complexity: O(r*c).
func Add(a, b Matrix) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub returns a − b as a new Dense.
// Complexity: O(r*c).
func Sub(a, b Matrix) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Scale returns alpha*m as a new Dense.
//
// Errors:
//   - ErrNilMatrix; ErrNaNInf when alpha is not finite.
//
// Complexity: O(r*c).
func Scale(m Matrix, alpha float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	if isNonFinite(alpha) {
		return nil, matrixErrorf(opScale, ErrNaNInf)
	}
	src, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res := src.Clone().(*Dense)
	floats.Scale(alpha, res.data)

	return res, nil
}

// Mul computes the matrix product a×b.
// MAIN DESCRIPTION:
//   - Row-major i→k→j product; the inner loop streams one row of b.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b).
//   - Stage 2: materialize Dense views of both operands (no copy for *Dense).
//   - Stage 3: accumulate res[i,:] += a[i,k]*b[k,:], skipping zero a[i,k].
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
//
// AI-Hints:
//   - The zero skip makes products against sparse-ish factors cheaper.
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	da, err := toDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	db, err := toDense(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	aRows, aCols, bCols := da.r, da.c, db.c
	res, err := NewDense(aRows, bCols, WithNoValidateNaNInf())
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, k    int
		av      float64
		rowRes  []float64
		rowOffA int
	)
	for i = 0; i < aRows; i++ {
		rowOffA = i * aCols
		rowRes = res.data[i*bCols : (i+1)*bCols]
		for k = 0; k < aCols; k++ {
			av = da.data[rowOffA+k]
			if av == 0 {
				continue
			}
			floats.AddScaled(rowRes, av, db.data[k*bCols:(k+1)*bCols])
		}
	}

	return res, nil
}

// Transpose returns mᵀ as a new Dense.
// Complexity: O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	src, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	rows, cols := src.r, src.c
	res, err := NewDense(cols, rows, WithNoValidateNaNInf())
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	var i, j, base int
	for i = 0; i < rows; i++ {
		base = i * cols
		for j = 0; j < cols; j++ {
			res.data[j*rows+i] = src.data[base+j]
		}
	}

	return res, nil
}

// Gram returns G = mᵀm (cols × cols).
// MAIN DESCRIPTION:
//   - Only the upper triangle is accumulated; the lower triangle is mirrored,
//     so G is exactly symmetric and passes ValidateSymmetric at tol 0.
//
// Implementation:
//   - Stage 1: for every row r of m, G[p,q] += r[p]*r[q] for q ≥ p.
//   - Stage 2: mirror G[q,p] = G[p,q].
//
// Complexity:
//   - Time O(rows*cols²/2), Space O(cols²).
//
// AI-Hints:
//   - For a wide matrix prefer Gram(Transpose(m)) so the Gram side is the short one.
func Gram(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opGram, err)
	}
	src, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opGram, err)
	}
	n := src.c
	g, err := NewDense(n, n, WithNoValidateNaNInf())
	if err != nil {
		return nil, matrixErrorf(opGram, err)
	}
	var (
		i, p, q int
		row     []float64
		rp      float64
	)
	for i = 0; i < src.r; i++ {
		row = src.data[i*n : (i+1)*n]
		for p = 0; p < n; p++ {
			rp = row[p]
			if rp == 0 {
				continue
			}
			floats.AddScaled(g.data[p*n+p:(p+1)*n], rp, row[p:])
		}
	}
	for p = 0; p < n; p++ {
		for q = p + 1; q < n; q++ {
			g.data[q*n+p] = g.data[p*n+q]
		}
	}

	return g, nil
}

// FrobeniusNorm returns sqrt(Σ m[i,j]²).
// Complexity: O(r*c).
func FrobeniusNorm(m Matrix) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return NormZero, matrixErrorf(opFrobenius, err)
	}
	src, err := toDense(m)
	if err != nil {
		return NormZero, matrixErrorf(opFrobenius, err)
	}

	return floats.Norm(src.data, 2), nil
}

// Eigen computes eigenvalues and eigenvectors of a symmetric matrix via cyclic Jacobi sweeps.
// MAIN DESCRIPTION:
//   - Each sweep rotates away every off-diagonal pair (p,q), p<q, in row order.
//
// Implementation:
//   - Stage 1: ValidateSymmetric(m, tol); copy m into a working Dense A; Q := I.
//   - Stage 2: per sweep, stop if max|A[p,q]| ≤ tol, else rotate every pair with
//     |A[p,q]| > tol using t = sign(θ)/(|θ|+√(θ²+1)), θ = (aqq−app)/(2apq).
//   - Stage 3: accumulate rotations into Q; eigenvalues are diag(A).
//
// Inputs:
//   - m: symmetric Matrix (within tol).
//   - tol: absolute off-diagonal threshold (scale it by ‖m‖_F for relative accuracy).
//   - maxIter: cap on full sweeps.
//
// Returns:
//   - []float64: eigenvalues in diagonal order (unsorted).
//   - *Dense: Q whose column i is the eigenvector of eigenvalue i.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square), ErrAsymmetry, ErrNaNInf (bad tol),
//     ErrEigenFailed (off-diagonal still above tol after maxIter sweeps).
//
// Determinism:
//   - Fixed pair order produces stable results.
//
// Complexity:
//   - Time O(sweeps * n³), Space O(n²). Well-conditioned input converges in ~6-10 sweeps.
func Eigen(m Matrix, tol float64, maxIter int) ([]float64, *Dense, error) {
	if err := ValidateSymmetric(m, tol); err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	tol = math.Abs(tol)
	src, err := toDense(m)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	n := src.r
	a := src.Clone().(*Dense)
	a.validateNaNInf = false
	q, err := NewDense(n, n, WithNoValidateNaNInf())
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	for i := 0; i < n; i++ {
		q.data[i*n+i] = 1.0
	}

	var (
		sweep, i, p, r     int
		app, aqq, apq      float64
		arp, arq, qrp, qrq float64
		theta, t, c, s     float64
		converged          bool
	)
	for sweep = 0; sweep < maxIter; sweep++ {
		if maxOffDiagonal(a) <= tol {
			converged = true
			break
		}
		for p = 0; p < n-1; p++ {
			for r = p + 1; r < n; r++ {
				apq = a.data[p*n+r]
				if math.Abs(apq) <= tol {
					continue
				}
				app = a.data[p*n+p]
				aqq = a.data[r*n+r]
				theta = (aqq - app) / (2 * apq)
				t = math.Copysign(1.0/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
				c = 1.0 / math.Sqrt(t*t+1)
				s = t * c

				for i = 0; i < n; i++ {
					if i == p || i == r {
						continue
					}
					arp = a.data[i*n+p]
					arq = a.data[i*n+r]
					a.data[i*n+p] = c*arp - s*arq
					a.data[p*n+i] = a.data[i*n+p]
					a.data[i*n+r] = s*arp + c*arq
					a.data[r*n+i] = a.data[i*n+r]
				}
				a.data[p*n+p] = app - t*apq
				a.data[r*n+r] = aqq + t*apq
				a.data[p*n+r], a.data[r*n+p] = 0, 0

				for i = 0; i < n; i++ {
					qrp = q.data[i*n+p]
					qrq = q.data[i*n+r]
					q.data[i*n+p] = c*qrp - s*qrq
					q.data[i*n+r] = s*qrp + c*qrq
				}
			}
		}
	}
	if !converged && maxOffDiagonal(a) > tol {
		return nil, nil, matrixErrorf(opEigen, ErrEigenFailed)
	}

	eigs := make([]float64, n)
	for i = 0; i < n; i++ {
		eigs[i] = a.data[i*n+i]
	}

	return eigs, q, nil
}

// maxOffDiagonal returns max |A[i,j]| over the strict upper triangle of a square Dense.
func maxOffDiagonal(a *Dense) float64 {
	n := a.r
	maxOff := NormZero
	var i, j int
	var off float64
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			off = math.Abs(a.data[i*n+j])
			if off > maxOff {
				maxOff = off
			}
		}
	}

	return maxOff
}
