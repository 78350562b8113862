// SPDX-License-Identifier: MIT
// Package matrix - bridge to gonum/mat.
//
// Purpose:
//   - Hand matrices to gonum's LAPACK-backed factorizations and bring the
//     factors back as *Dense without exposing gonum types in public APIs
//     of downstream packages.
//
// Notes:
//   - Both directions copy; neither side aliases the other's storage.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

const (
	opToGonum   = "ToGonum"
	opFromGonum = "FromGonum"
)

// ToGonum copies m into a new *mat.Dense.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions (gonum rejects empty shapes).
//
// Complexity: O(r*c).
func ToGonum(m Matrix) (*mat.Dense, error) {
	if err := ValidateDims(m); err != nil {
		return nil, matrixErrorf(opToGonum, err)
	}
	src, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opToGonum, err)
	}
	buf := make([]float64, len(src.data))
	copy(buf, src.data)

	return mat.NewDense(src.r, src.c, buf), nil
}

// FromGonum copies any gonum mat.Matrix into a new *Dense.
// The result uses the numeric policy given by opts (strict by default).
//
// Errors:
//   - ErrNilMatrix for a nil argument.
//   - ErrInvalidDimensions for an empty shape.
//   - ErrNaNInf under the strict policy.
//
// Complexity: O(r*c).
func FromGonum(g mat.Matrix, opts ...Option) (*Dense, error) {
	if g == nil {
		return nil, matrixErrorf(opFromGonum, ErrNilMatrix)
	}
	r, c := g.Dims()
	out, err := NewDense(r, c, opts...)
	if err != nil {
		return nil, matrixErrorf(opFromGonum, err)
	}
	var i, j int
	var v float64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v = g.At(i, j)
			if out.validateNaNInf && isNonFinite(v) {
				return nil, matrixErrorf(opFromGonum, fmt.Errorf("(%d,%d): %w", i, j, ErrNaNInf))
			}
			out.data[i*c+j] = v
		}
	}

	return out, nil
}
