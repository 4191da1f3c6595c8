// SPDX-License-Identifier: MIT

package entropic

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/otsgd/matrix"
)

// Reconstruct builds the Gibbs coupling implied by (u, v) and the regularised
// distance estimate:
//
//	π[i,j] = exp((u[i] + v[j] − C[i,j])/ε) · mu[i] · nu[j]
//	W      = ⟨v,nu⟩ + ⟨u,mu⟩ − ε·Σπ
//
// The plan is not renormalised: with a finite iteration budget its mass may
// differ from 1 and that error flows into W unchanged.
// Each entry is evaluated as one exponential of the summed log terms, so a
// zero-mass atom yields an exact 0 instead of 0·Inf.
//
// Errors: ErrInvalidArgument on shape/ε/measure violations; ErrNumericDegeneracy
// if any plan entry or W is not finite.
//
// Complexity: O(ns·nt) time and memory.
func Reconstruct(eps float64, mu, nu []float64, C matrix.Matrix, u, v []float64) (*matrix.Dense, float64, error) {
	const op = "Reconstruct"
	if err := validateEpsilon(op, eps); err != nil {
		return nil, 0, err
	}
	ns, nt, err := validateCost(op, C)
	if err != nil {
		return nil, 0, err
	}
	if err = validateMeasure(op, "mu", mu, ns); err != nil {
		return nil, 0, err
	}
	if err = validateMeasure(op, "nu", nu, nt); err != nil {
		return nil, 0, err
	}
	if err = validatePotential(op, "u", u, ns); err != nil {
		return nil, 0, err
	}
	if err = validatePotential(op, "v", v, nt); err != nil {
		return nil, 0, err
	}

	return reconstruct(op, eps, mu, nu, C, u, v, ns, nt)
}

// reconstruct is Reconstruct without validation.
func reconstruct(op string, eps float64, mu, nu []float64, C matrix.Matrix, u, v []float64, ns, nt int) (*matrix.Dense, float64, error) {
	var (
		rows  = newRowReader(C)
		logMu = logMeasure(mu)
		logNu = logMeasure(nu)
		buf   = make([]float64, ns*nt)
	)
	for i := 0; i < ns; i++ {
		row, err := rows.row(i)
		if err != nil {
			return nil, 0, entropicErrorf(op, err)
		}
		out := buf[i*nt : (i+1)*nt]
		for j := range out {
			out[j] = math.Exp((u[i]+v[j]-row[j])/eps + logMu[i] + logNu[j])
			if math.IsNaN(out[j]) || math.IsInf(out[j], 0) {
				return nil, 0, fmt.Errorf("%s: plan(%d,%d): %w", op, i, j, ErrNumericDegeneracy)
			}
		}
	}

	dist := floats.Dot(v, nu) + floats.Dot(u, mu) - eps*floats.Sum(buf)
	if math.IsNaN(dist) || math.IsInf(dist, 0) {
		return nil, 0, fmt.Errorf("%s: distance: %w", op, ErrNumericDegeneracy)
	}

	plan, err := matrix.NewDenseFrom(ns, nt, buf)
	if err != nil {
		return nil, 0, entropicErrorf(op, err)
	}

	return plan, dist, nil
}
