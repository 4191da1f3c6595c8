// SPDX-License-Identifier: MIT

package measure

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// DefaultTolerance bounds |Σp − 1| for a vector to count as a probability vector.
const DefaultTolerance = 1e-9

var (
	// ErrEmpty indicates a zero-length weight vector.
	ErrEmpty = errors.New("measure: empty weights")

	// ErrNegativeWeight indicates a weight below zero.
	ErrNegativeWeight = errors.New("measure: negative weight")

	// ErrNaNInf indicates a NaN or ±Inf weight.
	ErrNaNInf = errors.New("measure: NaN or Inf weight")

	// ErrZeroMass indicates weights whose total is zero, so no normalisation exists.
	ErrZeroMass = errors.New("measure: total mass is zero")

	// ErrNotProbability indicates a vector whose sum is not 1 within tolerance.
	ErrNotProbability = errors.New("measure: not a probability vector")
)

// checkEntries validates finiteness and sign of every weight, in index order.
func checkEntries(op string, w []float64) error {
	if len(w) == 0 {
		return fmt.Errorf("%s: %w", op, ErrEmpty)
	}
	for i, x := range w {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return fmt.Errorf("%s[%d]: %w", op, i, ErrNaNInf)
		}
		if x < 0 {
			return fmt.Errorf("%s[%d]: %w", op, i, ErrNegativeWeight)
		}
	}

	return nil
}

// Normalize returns a copy of weights scaled to sum to 1.
// The input slice is never mutated.
//
// Implementation:
//   - Stage 1: reject empty, NaN/±Inf and negative weights.
//   - Stage 2: divide by the largest weight, so the sum is at most n and
//     cannot overflow even for weights near math.MaxFloat64.
//   - Stage 3: divide by that sum.
//
// Errors: ErrEmpty, ErrNaNInf, ErrNegativeWeight, ErrZeroMass (all weights zero).
//
// Complexity: O(n).
func Normalize(weights []float64) ([]float64, error) {
	if err := checkEntries("Normalize", weights); err != nil {
		return nil, err
	}
	peak := floats.Max(weights)
	if peak <= 0 {
		return nil, fmt.Errorf("Normalize: %w", ErrZeroMass)
	}
	out := make([]float64, len(weights))
	for i, w := range weights {
		out[i] = w / peak // in [0, 1]; 1/peak would be subnormal near MaxFloat64
	}
	floats.Scale(1/floats.Sum(out), out)

	return out, nil
}

// Uniform returns the uniform probability vector of length n.
func Uniform(n int) ([]float64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("Uniform: %w", ErrEmpty)
	}
	out := make([]float64, n)
	w := 1 / float64(n)
	for i := range out {
		out[i] = w
	}

	return out, nil
}

// Validate reports whether p is a probability vector: non-empty, finite,
// non-negative and |Σp − 1| ≤ tol. A non-positive tol selects DefaultTolerance.
func Validate(p []float64, tol float64) error {
	if err := checkEntries("Validate", p); err != nil {
		return err
	}
	if tol <= 0 || math.IsNaN(tol) {
		tol = DefaultTolerance
	}
	if s := floats.Sum(p); math.Abs(s-1) > tol {
		return fmt.Errorf("Validate: sum=%g: %w", s, ErrNotProbability)
	}

	return nil
}
