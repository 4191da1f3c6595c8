// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/rs/xid"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/otsgd/entropic"
	"github.com/katalvlaran/otsgd/matrix"
	"github.com/katalvlaran/otsgd/measure"
	"github.com/katalvlaran/otsgd/ot"
	"github.com/katalvlaran/otsgd/sinkhorn"
)

// problem is one transport instance: a cost matrix plus raw (unnormalised)
// source and target weights.
type problem struct {
	name  string
	cost  *matrix.Dense
	muRaw []float64
	nuRaw []float64
}

// budgetRow is the solver outcome for one iteration budget.
type budgetRow struct {
	Iterations int           `json:"iterations"`
	Distance   float64       `json:"distance"`
	RelError   float64       `json:"rel_error"`
	PlanMass   float64       `json:"plan_mass"`
	ColGap     float64       `json:"col_gap"`
	Elapsed    time.Duration `json:"elapsed_ns"`
}

// report is what otcheck prints.
type report struct {
	RunID              string      `json:"run_id"`
	Scenario           string      `json:"scenario"`
	Sources            int         `json:"sources"`
	Targets            int         `json:"targets"`
	Epsilon            float64     `json:"epsilon"`
	LearningRate       float64     `json:"learning_rate"`
	Seed               int64       `json:"seed"`
	Reference          float64     `json:"reference"`
	SinkhornIterations int         `json:"sinkhorn_iterations"`
	Budgets            []budgetRow `json:"budgets"`
}

// run solves p once per budget and measures each estimate against Sinkhorn.
func (a *app) run(ctx context.Context, p problem, budgets []int) (report, error) {
	mu, err := measure.Normalize(p.muRaw)
	if err != nil {
		return report{}, err
	}
	nu, err := measure.Normalize(p.nuRaw)
	if err != nil {
		return report{}, err
	}

	sopts := sinkhorn.DefaultOptions()
	sopts.Epsilon = a.cfg.Epsilon
	ref, err := sinkhorn.Solve(p.cost, mu, nu, sopts)
	if err != nil {
		return report{}, fmt.Errorf("reference: %w", err)
	}

	rep := report{
		RunID:              xid.New().String(),
		Scenario:           p.name,
		Sources:            p.cost.Rows(),
		Targets:            p.cost.Cols(),
		Epsilon:            a.cfg.Epsilon,
		LearningRate:       a.cfg.LearningRate,
		Seed:               a.cfg.Seed,
		Reference:          ref.Distance,
		SinkhornIterations: ref.Iterations,
	}
	a.log.Debug("sinkhorn reference", "run", rep.RunID, "distance", ref.Distance, "sweeps", ref.Iterations)

	for _, n := range budgets {
		so := entropic.DefaultOptions()
		so.Epsilon = a.cfg.Epsilon
		so.LearningRate = a.cfg.LearningRate
		so.Iterations = n
		if err = so.Validate(); err != nil {
			return report{}, fmt.Errorf("budget %d: %w", n, err)
		}

		start := time.Now()
		res, err := ot.FromCost(ctx, p.cost, p.muRaw,
			ot.WithTargetWeights(p.nuRaw),
			ot.WithSolverOptions(so),
			ot.WithSeed(a.cfg.Seed),
			ot.WithPlan(true),
		)
		if err != nil {
			return report{}, fmt.Errorf("budget %d: %w", n, err)
		}
		mass, err := matrix.Total(res.Plan)
		if err != nil {
			return report{}, err
		}
		gap, err := columnGap(res.Plan, res.Nu)
		if err != nil {
			return report{}, err
		}

		row := budgetRow{
			Iterations: n,
			Distance:   res.Distance,
			RelError:   math.Abs(res.Distance-ref.Distance) / math.Abs(ref.Distance),
			PlanMass:   mass,
			ColGap:     gap,
			Elapsed:    time.Since(start),
		}
		a.log.Debug("budget done", "run", rep.RunID, "iterations", n, "distance", row.Distance, "rel_error", row.RelError)
		rep.Budgets = append(rep.Budgets, row)
	}
	a.log.Info("check finished", "run", rep.RunID, "scenario", p.name, "budgets", len(rep.Budgets))

	return rep, nil
}

// columnGap returns Σ_j |Σ_i plan[i,j] − nu[j]|. Rows match mu exactly by
// construction; the columns show how far the ascent is from the optimum.
func columnGap(plan *matrix.Dense, nu []float64) (float64, error) {
	g, err := matrix.ToGonum(plan)
	if err != nil {
		return 0, err
	}
	_, nt := g.Dims()
	if len(nu) != nt {
		return 0, fmt.Errorf("column gap: %d target weights for %d columns: %w", len(nu), nt, matrix.ErrDimensionMismatch)
	}
	var gap float64
	for j := 0; j < nt; j++ {
		gap += math.Abs(mat.Sum(g.ColView(j)) - nu[j])
	}

	return gap, nil
}
