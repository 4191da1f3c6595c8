// SPDX-License-Identifier: MIT

package entropic

import (
	"fmt"
	"math"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the entropic regularisation strength ε.
	DefaultEpsilon = 1.0

	// DefaultIterations is the number of stochastic ascent steps.
	DefaultIterations = 10000

	// DefaultLearningRate is the base step size; step k uses LearningRate/√k.
	DefaultLearningRate = 0.1

	// DefaultCheckEvery is how many iterations pass between context polls.
	DefaultCheckEvery = 1024
)

// probTol bounds |Σp − 1| for mu and nu. Looser than measure.DefaultTolerance
// so that weights produced in float32 elsewhere are still accepted.
const probTol = 1e-6

// Options configures one solve.
//
// Fields:
//   - Epsilon     : entropic regularisation, > 0. Smaller is closer to exact OT
//     and slower to converge.
//   - Iterations  : ascent steps, ≥ 1. The only budget/deadline of the loop.
//   - LearningRate: base step size, > 0.
//   - CheckEvery  : poll ctx every CheckEvery iterations; ≤ 0 polls only at entry.
//
// Example:
//
//	opts := DefaultOptions()
//	opts.Iterations = 5000
type Options struct {
	Epsilon      float64
	Iterations   int
	LearningRate float64
	CheckEvery   int
}

// DefaultOptions returns ε=1, 10000 iterations, lr=0.1, ctx poll every 1024 steps.
func DefaultOptions() Options {
	return Options{
		Epsilon:      DefaultEpsilon,
		Iterations:   DefaultIterations,
		LearningRate: DefaultLearningRate,
		CheckEvery:   DefaultCheckEvery,
	}
}

// Validate checks the scalar hyperparameters.
// Errors wrap ErrInvalidArgument.
func (o Options) Validate() error {
	if err := validateEpsilon("Options", o.Epsilon); err != nil {
		return err
	}
	if o.Iterations <= 0 {
		return invalidf("Options", fmt.Sprintf("iterations=%d must be ≥ 1", o.Iterations), nil)
	}
	if !(o.LearningRate > 0) || math.IsInf(o.LearningRate, 0) {
		return invalidf("Options", fmt.Sprintf("learning rate=%g must be finite and > 0", o.LearningRate), nil)
	}

	return nil
}

// validateEpsilon rejects ε ≤ 0, NaN and +Inf.
func validateEpsilon(op string, eps float64) error {
	if !(eps > 0) || math.IsInf(eps, 0) {
		return invalidf(op, fmt.Sprintf("epsilon=%g must be finite and > 0", eps), nil)
	}

	return nil
}
