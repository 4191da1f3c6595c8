// SPDX-License-Identifier: MIT

package entropic

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// logMeasure returns log(p) element-wise; zero mass maps to −Inf, which the
// log-sum-exp below treats as an atom that receives no weight.
func logMeasure(p []float64) []float64 {
	out := make([]float64, len(p))
	for j, x := range p {
		out[j] = math.Log(x)
	}

	return out
}

// softLogits fills a[j] = (v[j] − row[j])/ε + logNu[j] and returns logΣexp(a).
// The max shift inside floats.LogSumExp keeps this finite for any ε > 0.
func softLogits(eps float64, logNu, v, row, a []float64) float64 {
	for j := range a {
		a[j] = (v[j]-row[j])/eps + logNu[j]
	}

	return floats.LogSumExp(a)
}

// coordinateGradient writes g = nu − khi into dst, where
// khi = softmax((v − row)/ε + log nu) is the target-side conditional of the
// sampled source atom. a is caller-owned scratch of length nt.
func coordinateGradient(eps float64, nu, logNu, v, row, a, dst []float64) {
	lse := softLogits(eps, logNu, v, row, a)
	for j := range dst {
		dst[j] = nu[j] - math.Exp(a[j]-lse)
	}
}

// CoordinateGradient returns the sampled-row stochastic gradient of the
// smoothed semi-dual at v for the cost row C[i,:]:
//
//	r   = row − v
//	khi = (exp(−r/ε) ⊙ nu) / Σ(exp(−r/ε) ⊙ nu)
//	g   = nu − khi
//
// computed in the log domain. Since khi and nu both sum to 1, Σg ≈ 0.
//
// Errors: ErrInvalidArgument on ε ≤ 0, length mismatch, an invalid nu, or
// non-finite v / row entries.
//
// Complexity: O(nt).
func CoordinateGradient(eps float64, nu, v, row []float64) ([]float64, error) {
	const op = "CoordinateGradient"
	if err := validateEpsilon(op, eps); err != nil {
		return nil, err
	}
	nt := len(nu)
	if err := validateMeasure(op, "nu", nu, nt); err != nil {
		return nil, err
	}
	if err := validatePotential(op, "v", v, nt); err != nil {
		return nil, err
	}
	if err := validatePotential(op, "row", row, nt); err != nil {
		return nil, err
	}

	a := make([]float64, nt)
	g := make([]float64, nt)
	coordinateGradient(eps, nu, logMeasure(nu), v, row, a, g)
	if !allFinite(g) {
		return nil, fmt.Errorf("%s: %w", op, ErrNumericDegeneracy)
	}

	return g, nil
}
