// SPDX-License-Identifier: MIT

package entropic_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/otsgd/entropic"
	"github.com/katalvlaran/otsgd/matrix"
)

// ExampleTransport solves a 3x2 problem and prints the rounded distance and plan mass.
func ExampleTransport() {
	C, _ := matrix.NewDenseRows([][]float64{{0, 1}, {1, 0}, {2, 2}})
	mu := []float64{0.2, 0.3, 0.5}
	nu := []float64{0.5, 0.5}

	opts := entropic.DefaultOptions()
	opts.Iterations = 5000
	sol, err := entropic.Transport(context.Background(), C, mu, nu, opts, entropic.NewSource(1))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("distance≈%.2f\n", sol.Distance)
	mass, _ := matrix.Total(sol.Plan)
	fmt.Printf("mass≈%.1f\n", mass)
	// Output:
	// distance≈0.19
	// mass≈1.0
}
