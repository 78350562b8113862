// SPDX-License-Identifier: MIT
package spectral

import (
	"github.com/katalvlaran/lowrank/matrix"
	"gonum.org/v1/gonum/mat"
)

// decomposeLAPACK factorizes m with gonum's thin SVD.
// gonum already returns the values in descending order.
func decomposeLAPACK(m matrix.Matrix) (*Decomposition, error) {
	a, err := matrix.ToGonum(m)
	if err != nil {
		return nil, numericalErrorf(opDecompose, err)
	}

	var svd mat.SVD
	if ok := svd.Factorize(a, mat.SVDThin); !ok {
		return nil, numericalErrorf(opDecompose, errNoConvergence)
	}

	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	uu, err := matrix.FromGonum(&u)
	if err != nil {
		return nil, numericalErrorf(opDecompose, err)
	}
	vt, err := matrix.FromGonum(v.T())
	if err != nil {
		return nil, numericalErrorf(opDecompose, err)
	}
	rows, cols := a.Dims()

	return &Decomposition{
		rows: rows,
		cols: cols,
		u:    uu,
		s:    svd.Values(nil),
		vt:   vt,
	}, nil
}
