// SPDX-License-Identifier: MIT

package cost

import "gonum.org/v1/gonum/floats"

// SquaredEuclidean returns Σ (x_k − y_k)².
func SquaredEuclidean(x, y []float64) float64 {
	d := floats.Distance(x, y, 2)
	return d * d
}

// Euclidean returns the L2 distance between x and y.
func Euclidean(x, y []float64) float64 {
	return floats.Distance(x, y, 2)
}

// Manhattan returns the L1 distance between x and y.
// On one-dimensional index points it yields C[i,j] = |i − j|.
func Manhattan(x, y []float64) float64 {
	return floats.Distance(x, y, 1)
}
