// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Elementwise comparison kernels shared by tests and by the spectral
//     package when it checks reconstructions against references.
//
// Determinism & Performance:
//   - Flat 0..n-1 walk on *Dense; fixed i→j walk otherwise.
//   - O(1) extra space; early exit on the first violation.

package matrix

import "math"

// AllClose checks elementwise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol|; non-finite tolerances yield ErrNaNInf.
//   - A NaN element never compares close.
//
// Complexity: O(r*c) time, O(1) space.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if isNonFinite(rtol) || isNonFinite(atol) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	da, okA := a.(*Dense)
	db, okB := b.(*Dense)
	if okA && okB {
		for k := range da.data {
			if !closeEnough(da.data[k], db.data[k], rtol, atol) {
				return false, nil
			}
		}

		return true, nil
	}

	var av, bv float64
	var err error
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			if av, err = a.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if !closeEnough(av, bv, rtol, atol) {
				return false, nil
			}
		}
	}

	return true, nil
}

// closeEnough is the scalar AllClose relation. NaN on either side fails.
func closeEnough(x, y, rtol, atol float64) bool {
	return math.Abs(x-y) <= atol+rtol*math.Abs(y)
}
