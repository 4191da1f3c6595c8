// SPDX-License-Identifier: MIT

// Package entropic - validation shared by Solve, RecoverU, Reconstruct, Transport.
//
// Design principles:
//   - Deterministic, side-effect free; runs before anything is allocated.
//   - Every failure wraps ErrInvalidArgument (and the underlying matrix/measure
//     sentinel when there is one), so callers need a single errors.Is check.
//   - Shapes are never broadcast or truncated: a length mismatch is an error.

package entropic

import (
	"fmt"
	"math"

	"github.com/katalvlaran/otsgd/matrix"
	"github.com/katalvlaran/otsgd/measure"
)

// validateCost checks C is non-nil, non-empty, finite and non-negative.
// Returns (ns, nt).
//
// Complexity: O(ns·nt).
func validateCost(op string, C matrix.Matrix) (int, int, error) {
	if err := matrix.ValidateNotNil(C); err != nil {
		return 0, 0, invalidf(op, "cost matrix", err)
	}
	ns, nt := C.Rows(), C.Cols()
	if ns <= 0 || nt <= 0 {
		return 0, 0, invalidf(op, fmt.Sprintf("cost matrix shape %dx%d", ns, nt), matrix.ErrInvalidDimensions)
	}
	if err := matrix.ValidateNonNegative(C); err != nil {
		return 0, 0, invalidf(op, "cost matrix", err)
	}

	return ns, nt, nil
}

// validateMeasure checks p has length n and is a probability vector.
func validateMeasure(op, name string, p []float64, n int) error {
	if err := matrix.ValidateVecLen(p, n); err != nil {
		return invalidf(op, fmt.Sprintf("%s has length %d, want %d", name, len(p), n), err)
	}
	if err := measure.Validate(p, probTol); err != nil {
		return invalidf(op, name, err)
	}

	return nil
}

// validatePotential checks x has length n and only finite entries.
func validatePotential(op, name string, x []float64, n int) error {
	if err := matrix.ValidateVecLen(x, n); err != nil {
		return invalidf(op, fmt.Sprintf("%s has length %d, want %d", name, len(x), n), err)
	}
	for j, xj := range x {
		if math.IsNaN(xj) || math.IsInf(xj, 0) {
			return invalidf(op, fmt.Sprintf("%s[%d]=%g", name, j, xj), matrix.ErrNaNInf)
		}
	}

	return nil
}

// validateAscent is the full precondition set of Solve. Returns (ns, nt).
func validateAscent(op string, C matrix.Matrix, nu []float64, opts Options, src Source) (int, int, error) {
	if err := opts.Validate(); err != nil {
		return 0, 0, entropicErrorf(op, err)
	}
	if src == nil {
		return 0, 0, invalidf(op, "nil random source", nil)
	}
	ns, nt, err := validateCost(op, C)
	if err != nil {
		return 0, 0, err
	}
	if err = validateMeasure(op, "nu", nu, nt); err != nil {
		return 0, 0, err
	}

	return ns, nt, nil
}

// allFinite reports whether every entry of x is finite.
func allFinite(x []float64) bool {
	for _, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}
