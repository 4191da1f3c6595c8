// SPDX-License-Identifier: MIT

package entropic

import (
	"context"

	"github.com/katalvlaran/otsgd/matrix"
)

// Solution holds everything one Transport call produces.
type Solution struct {
	// Plan is the ns×nt approximate coupling. Its marginals approach mu/nu
	// as the iteration budget grows; they are never forced.
	Plan *matrix.Dense

	// U is the source potential recovered by the soft c-transform.
	U []float64

	// V is the averaged target potential returned by the ascent.
	V []float64

	// Distance is the regularised dual objective ⟨v,nu⟩ + ⟨u,mu⟩ − ε·Σπ.
	Distance float64
}

// Transport runs Solve → RecoverU → Reconstruct on one problem.
// All preconditions (including mu) are checked once, up front, so a bad mu
// fails before any ascent work is done.
//
// Errors: see Solve, RecoverU and Reconstruct.
//
// Complexity: O(Iterations·nt + ns·nt).
func Transport(ctx context.Context, C matrix.Matrix, mu, nu []float64, opts Options, src Source) (Solution, error) {
	const op = "Transport"
	ns, nt, err := validateAscent(op, C, nu, opts, src)
	if err != nil {
		return Solution{}, err
	}
	if err = validateMeasure(op, "mu", mu, ns); err != nil {
		return Solution{}, err
	}

	v, err := solve(ctx, op, C, nu, ns, nt, opts, src)
	if err != nil {
		return Solution{}, err
	}
	u, err := recoverU(op, opts.Epsilon, nu, v, C, ns, nt)
	if err != nil {
		return Solution{}, err
	}
	plan, dist, err := reconstruct(op, opts.Epsilon, mu, nu, C, u, v, ns, nt)
	if err != nil {
		return Solution{}, err
	}

	return Solution{Plan: plan, U: u, V: v, Distance: dist}, nil
}
