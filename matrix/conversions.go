// SPDX-License-Identifier: MIT

// Package matrix - gonum interop.
//
// Callers that compute costs with gonum can hand a *mat.Dense straight to the
// solvers through FromGonum; plans go back out through ToGonum.

package matrix

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// ToGonum copies m into a new *mat.Dense of the same shape.
// Complexity: O(r*c).
func ToGonum(m Matrix) (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ToGonum", err)
	}
	if d, ok := m.(*Dense); ok {
		return mat.NewDense(d.r, d.c, d.Data()), nil
	}

	r, c := m.Rows(), m.Cols()
	if r <= 0 || c <= 0 {
		return nil, matrixErrorf("ToGonum", ErrInvalidDimensions)
	}
	out := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, matrixErrorf("ToGonum", err)
			}
			out.Set(i, j, v)
		}
	}

	return out, nil
}

// FromGonum copies any gonum matrix into a *Dense.
// Empty or non-finite inputs are rejected with the usual sentinels.
// Complexity: O(r*c).
func FromGonum(g mat.Matrix) (*Dense, error) {
	if g == nil {
		return nil, matrixErrorf("FromGonum", ErrNilMatrix)
	}
	r, c := g.Dims()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf("FromGonum", err)
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v := g.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, matrixErrorf("FromGonum", denseErrorf(ctxSet, i, j, ErrNaNInf))
			}
			out.data[i*c+j] = v
		}
	}

	return out, nil
}
