// SPDX-License-Identifier: MIT

package entropic

import (
	"fmt"
	"math"

	"github.com/katalvlaran/otsgd/matrix"
)

// RecoverU computes the source potential from v by the soft c-transform
//
//	u[i] = −ε · log Σ_j exp((v[j] − C[i,j])/ε) · nu[j]
//
// evaluated with a max-shifted log-sum-exp. As ε → 0 this tends to
// min_j (C[i,j] − v[j]).
//
// Errors: ErrInvalidArgument (shape, ε, nu, non-finite v or C);
// ErrNumericDegeneracy if some u[i] is not finite.
//
// Complexity: O(ns·nt) time, O(ns+nt) memory.
func RecoverU(eps float64, nu, v []float64, C matrix.Matrix) ([]float64, error) {
	const op = "RecoverU"
	if err := validateEpsilon(op, eps); err != nil {
		return nil, err
	}
	ns, nt, err := validateCost(op, C)
	if err != nil {
		return nil, err
	}
	if err = validateMeasure(op, "nu", nu, nt); err != nil {
		return nil, err
	}
	if err = validatePotential(op, "v", v, nt); err != nil {
		return nil, err
	}

	return recoverU(op, eps, nu, v, C, ns, nt)
}

// recoverU is RecoverU without validation.
func recoverU(op string, eps float64, nu, v []float64, C matrix.Matrix, ns, nt int) ([]float64, error) {
	var (
		rows  = newRowReader(C)
		logNu = logMeasure(nu)
		a     = make([]float64, nt)
		u     = make([]float64, ns)
	)
	for i := 0; i < ns; i++ {
		row, err := rows.row(i)
		if err != nil {
			return nil, entropicErrorf(op, err)
		}
		u[i] = -eps * softLogits(eps, logNu, v, row, a)
		if math.IsNaN(u[i]) || math.IsInf(u[i], 0) {
			return nil, fmt.Errorf("%s: u[%d]=%g: %w", op, i, u[i], ErrNumericDegeneracy)
		}
	}

	return u, nil
}
