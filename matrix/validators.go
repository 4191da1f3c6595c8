// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for shape and value checks.
//  - Keep solvers minimal by delegating nil/shape/finiteness checks here.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Value scans run O(r*c) with a flat-slice fast path for *Dense.
//
// Note:
//  - Composite checks follow a fixed sequence (NotNil → Shape → Values), so the
//    reported sentinel is stable for a given bad input.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// A typed nil *Dense stored in the interface is rejected as well.
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateShape ensures m is exactly rows×cols.
// Assumes m is not nil (caller must ensure).
func ValidateShape(m Matrix, rows, cols int) error {
	if m.Rows() != rows {
		return validatorErrorf("ValidateShape: Rows", ErrDimensionMismatch)
	}
	if m.Cols() != cols {
		return validatorErrorf("ValidateShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure).
func ValidateSameShape(a, b Matrix) error {
	return ValidateShape(a, b.Rows(), b.Cols())
}

// ValidateVecLen ensures the vector length matches the required size n.
func ValidateVecLen(x []float64, n int) error {
	// Disallow nil vectors to avoid subtle bugs in row/column pairing.
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix)
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateFinite rejects any NaN or ±Inf entry.
// Complexity: O(r*c).
func ValidateFinite(m Matrix) error {
	return scanValues(m, "ValidateFinite", func(v float64) error {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrNaNInf
		}
		return nil
	})
}

// ValidateNonNegative rejects NaN/±Inf first, then any entry below zero.
// Transport costs must pass this check.
// Complexity: O(r*c).
func ValidateNonNegative(m Matrix) error {
	return scanValues(m, "ValidateNonNegative", func(v float64) error {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrNaNInf
		}
		if v < 0 {
			return ErrNegative
		}
		return nil
	})
}

// scanValues applies check to every entry in row-major order and stops at the first failure.
func scanValues(m Matrix, tag string, check func(float64) error) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if d, ok := m.(*Dense); ok {
		for off, v := range d.data {
			if err := check(v); err != nil {
				return validatorErrorf(fmt.Sprintf("%s(%d,%d)", tag, off/d.c, off%d.c), err)
			}
		}
		return nil
	}

	r, c := m.Rows(), m.Cols()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return validatorErrorf(tag, err)
			}
			if err = check(v); err != nil {
				return validatorErrorf(fmt.Sprintf("%s(%d,%d)", tag, i, j), err)
			}
		}
	}

	return nil
}
