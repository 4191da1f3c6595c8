// SPDX-License-Identifier: MIT

package ot_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/otsgd/cost"
	"github.com/katalvlaran/otsgd/matrix"
	"github.com/katalvlaran/otsgd/ot"
)

// ExampleDistance builds the cost from point clouds and reports the measures used.
func ExampleDistance() {
	src := cost.Points1D([]float64{0, 1, 2})
	tgt := cost.Points1D([]float64{0, 1})

	res, err := ot.Distance(context.Background(),
		cost.MetricProvider{Metric: cost.Manhattan},
		src, tgt, []float64{2, 3, 5},
		ot.WithIterations(1000), ot.WithSeed(1))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("mu=%.2f nu=%.2f\n", res.Mu, res.Nu)
	// Output: mu=[0.20 0.30 0.50] nu=[0.50 0.50]
}

func ExampleFromCost() {
	C, _ := matrix.NewDenseRows([][]float64{{0, 1}, {1, 0}, {2, 2}})

	res, err := ot.FromCost(context.Background(), C, []float64{0.2, 0.3, 0.5},
		ot.WithIterations(5000), ot.WithSeed(1))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("%.2f\n", res.Distance)
	// Output: 0.19
}
