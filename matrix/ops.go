// SPDX-License-Identifier: MIT

// Package matrix - reductions and comparisons.
//
// Row/column sums are the marginals of a transport plan; Total is its mass.
// All loops run in fixed row-major order so results are bit-reproducible.

package matrix

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// RowSums returns s[i] = Σ_j m[i,j].
// Complexity: O(r*c).
func RowSums(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("RowSums", err)
	}
	r, c := m.Rows(), m.Cols()
	out := make([]float64, r)

	if d, ok := m.(*Dense); ok {
		for i := 0; i < r; i++ {
			out[i] = floats.Sum(d.data[i*c : (i+1)*c])
		}
		return out, nil
	}

	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, matrixErrorf("RowSums", err)
			}
			out[i] += v
		}
	}

	return out, nil
}

// ColSums returns s[j] = Σ_i m[i,j].
// Complexity: O(r*c).
func ColSums(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ColSums", err)
	}
	r, c := m.Rows(), m.Cols()
	out := make([]float64, c)

	if d, ok := m.(*Dense); ok {
		for i := 0; i < r; i++ {
			floats.Add(out, d.data[i*c:(i+1)*c])
		}
		return out, nil
	}

	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, matrixErrorf("ColSums", err)
			}
			out[j] += v
		}
	}

	return out, nil
}

// Total returns Σ_ij m[i,j].
func Total(m Matrix) (float64, error) {
	rows, err := RowSums(m)
	if err != nil {
		return 0, matrixErrorf("Total", err)
	}

	return floats.Sum(rows), nil
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol|; NaN/Inf tolerances are rejected.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf("AllClose", ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateNotNil(a); err != nil {
		return false, matrixErrorf("AllClose", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, matrixErrorf("AllClose", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf("AllClose", err)
	}

	r, c := a.Rows(), a.Cols()
	var av, bv float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			av, _ = a.At(i, j)
			bv, _ = b.At(i, j)
			if math.Abs(av-bv) > atol+rtol*math.Abs(bv) {
				return false, nil
			}
		}
	}

	return true, nil
}
