// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/otsgd/cost"
	"github.com/katalvlaran/otsgd/entropic"
	"github.com/katalvlaran/otsgd/matrix"
)

// newSyntheticCmd builds `otcheck synthetic`: random measures on index atoms
// with C[i,j] = |i − j|.
func newSyntheticCmd(a *app) *cobra.Command {
	var (
		sources, targets int
		budgets          []int
	)
	cmd := &cobra.Command{
		Use:   "synthetic",
		Short: "Random measures on index atoms with |i-j| costs, swept over iteration budgets.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := syntheticProblem(cmd, sources, targets, a.cfg.Seed, a.cfg.Workers)
			if err != nil {
				return err
			}
			rep, err := a.run(cmd.Context(), p, budgets)
			if err != nil {
				return err
			}
			return writeReport(cmd.OutOrStdout(), rep, a.cfg.JSON)
		},
	}
	cmd.Flags().IntVar(&sources, "sources", 7, "number of source atoms")
	cmd.Flags().IntVar(&targets, "targets", 4, "number of target atoms")
	cmd.Flags().IntSliceVar(&budgets, "budgets", []int{100, 1000, 10000}, "iteration budgets to sweep")

	return cmd
}

// newGoldenCmd builds `otcheck golden`: the fixed 3x2 scenario.
func newGoldenCmd(a *app) *cobra.Command {
	var budgets []int
	cmd := &cobra.Command{
		Use:   "golden",
		Short: "Fixed 3x2 problem: mu=[0.2,0.3,0.5], nu=[0.5,0.5], C=[[0,1],[1,0],[2,2]].",
		RunE: func(cmd *cobra.Command, _ []string) error {
			C, err := matrix.FromGonum(mat.NewDense(3, 2, []float64{0, 1, 1, 0, 2, 2}))
			if err != nil {
				return err
			}
			p := problem{name: "golden", cost: C, muRaw: []float64{0.2, 0.3, 0.5}, nuRaw: []float64{0.5, 0.5}}
			rep, err := a.run(cmd.Context(), p, budgets)
			if err != nil {
				return err
			}
			return writeReport(cmd.OutOrStdout(), rep, a.cfg.JSON)
		},
	}
	cmd.Flags().IntSliceVar(&budgets, "budgets", []int{5000}, "iteration budgets to sweep")

	return cmd
}

// syntheticProblem draws raw weights from seed and builds C through cost.Pairwise.
func syntheticProblem(cmd *cobra.Command, ns, nt int, seed int64, workers int) (problem, error) {
	if ns < 1 || nt < 1 {
		return problem{}, fmt.Errorf("sources=%d targets=%d: both must be ≥ 1", ns, nt)
	}
	rng := entropic.NewSource(seed)
	mu := make([]float64, ns)
	for i := range mu {
		mu[i] = rng.Float64()
	}
	nu := make([]float64, nt)
	for j := range nu {
		nu[j] = rng.Float64()
	}

	xs := make([]float64, ns)
	for i := range xs {
		xs[i] = float64(i)
	}
	ys := make([]float64, nt)
	for j := range ys {
		ys[j] = float64(j)
	}
	C, err := cost.Pairwise(cmd.Context(), cost.Points1D(xs), cost.Points1D(ys), cost.Manhattan, workers)
	if err != nil {
		return problem{}, err
	}

	return problem{name: "synthetic", cost: C, muRaw: mu, nuRaw: nu}, nil
}
