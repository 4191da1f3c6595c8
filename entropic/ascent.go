// SPDX-License-Identifier: MIT

package entropic

import (
	"context"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/otsgd/matrix"
)

// Solve runs averaged stochastic coordinate ascent on the semi-dual and
// returns the Polyak–Ruppert average of the target potential v.
//
// Algorithm:
//  1. v, v̄ := 0 (length nt), fresh for this call.
//  2. For k = 1..opts.Iterations:
//     i  := src.Intn(ns)
//     g  := nu − softmax((v − C[i,:])/ε + log nu)
//     v  += (lr/√k)·g         (ascent: the dual is maximised)
//     v̄  += (v − v̄)/k         (≡ (1/k)·v + (1 − 1/k)·v̄)
//  3. Return v̄.
//
// Contracts:
//   - C is ns×nt, finite, non-negative; nu is a probability vector of length nt.
//   - src is consulted exactly once per iteration with n = ns.
//   - ctx is polled at entry and every opts.CheckEvery iterations.
//
// Errors:
//   - ErrInvalidArgument for any violated precondition (nothing is allocated).
//   - ErrInvalidArgument if src returns an index outside [0, ns).
//   - ctx.Err() (wrapped) on cancellation.
//   - ErrNumericDegeneracy if the average is not finite.
//
// Complexity: O(Iterations·nt) time, O(nt) memory.
func Solve(ctx context.Context, C matrix.Matrix, nu []float64, opts Options, src Source) ([]float64, error) {
	const op = "Solve"
	ns, nt, err := validateAscent(op, C, nu, opts, src)
	if err != nil {
		return nil, err
	}

	return solve(ctx, op, C, nu, ns, nt, opts, src)
}

// solve is Solve without validation.
func solve(ctx context.Context, op string, C matrix.Matrix, nu []float64, ns, nt int, opts Options, src Source) ([]float64, error) {
	if err := ctx.Err(); err != nil {
		return nil, entropicErrorf(op, err)
	}

	var (
		rows  = newRowReader(C)
		logNu = logMeasure(nu)
		v     = make([]float64, nt) // current iterate, owned by this call only
		avg   = make([]float64, nt) // running average, returned
		a     = make([]float64, nt) // logits scratch
		g     = make([]float64, nt) // gradient scratch
	)

	for k := 1; k <= opts.Iterations; k++ {
		if opts.CheckEvery > 0 && k%opts.CheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, entropicErrorf(op, err)
			}
		}

		i := src.Intn(ns)
		if i < 0 || i >= ns {
			return nil, invalidf(op, fmt.Sprintf("random source returned %d outside [0,%d)", i, ns), nil)
		}
		row, err := rows.row(i)
		if err != nil {
			return nil, entropicErrorf(op, err)
		}

		coordinateGradient(opts.Epsilon, nu, logNu, v, row, a, g)
		floats.AddScaled(v, opts.LearningRate/math.Sqrt(float64(k)), g)

		w := 1 / float64(k)
		for j := range avg {
			avg[j] += (v[j] - avg[j]) * w
		}
	}

	if !allFinite(avg) {
		return nil, fmt.Errorf("%s: averaged potential: %w", op, ErrNumericDegeneracy)
	}

	return avg, nil
}
