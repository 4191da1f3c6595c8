// SPDX-License-Identifier: MIT

package sinkhorn

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/otsgd/entropic"
	"github.com/katalvlaran/otsgd/matrix"
	"github.com/katalvlaran/otsgd/measure"
)

// ErrNotConverged is returned when MaxIterations pass with the marginal error
// still above Tolerance.
var ErrNotConverged = errors.New("sinkhorn: did not converge")

const (
	// DefaultEpsilon matches entropic.DefaultEpsilon.
	DefaultEpsilon = entropic.DefaultEpsilon

	// DefaultMaxIterations bounds the number of (f, g) sweeps.
	DefaultMaxIterations = 10000

	// DefaultTolerance is the accepted L1 gap between the plan's row sums and mu.
	DefaultTolerance = 1e-10
)

// Options configures Solve.
type Options struct {
	Epsilon       float64
	MaxIterations int
	Tolerance     float64
}

// DefaultOptions returns ε=1, 10000 sweeps, tolerance 1e-10.
func DefaultOptions() Options {
	return Options{
		Epsilon:       DefaultEpsilon,
		MaxIterations: DefaultMaxIterations,
		Tolerance:     DefaultTolerance,
	}
}

// Result is the converged Sinkhorn solution.
type Result struct {
	Plan          *matrix.Dense
	F, G          []float64 // source and target potentials
	Distance      float64   // ⟨f,mu⟩ + ⟨g,nu⟩ − ε·Σπ
	Iterations    int       // sweeps performed
	MarginalError float64   // ‖π·1 − mu‖₁ at exit
}

// Solve runs log-domain Sinkhorn on (C, mu, nu).
//
// Errors:
//   - entropic.ErrInvalidArgument for bad options, shapes, costs or measures.
//   - ErrNotConverged (the partial Result is still returned for diagnostics).
func Solve(C matrix.Matrix, mu, nu []float64, opts Options) (Result, error) {
	ns, nt, err := validate(C, mu, nu, opts)
	if err != nil {
		return Result{}, err
	}

	var (
		eps   = opts.Epsilon
		cost  = flatten(C, ns, nt)
		logMu = logOf(mu)
		logNu = logOf(nu)
		f     = make([]float64, ns)
		g     = make([]float64, nt)
		rowA  = make([]float64, nt)
		colA  = make([]float64, ns)
		plan  = make([]float64, ns*nt)
		res   Result
	)

	for it := 1; it <= opts.MaxIterations; it++ {
		for i := 0; i < ns; i++ {
			for j := 0; j < nt; j++ {
				rowA[j] = (g[j]-cost[i*nt+j])/eps + logNu[j]
			}
			f[i] = -eps * floats.LogSumExp(rowA)
		}
		for j := 0; j < nt; j++ {
			for i := 0; i < ns; i++ {
				colA[i] = (f[i]-cost[i*nt+j])/eps + logMu[i]
			}
			g[j] = -eps * floats.LogSumExp(colA)
		}

		fillPlan(plan, cost, f, g, logMu, logNu, eps, ns, nt)
		res.Iterations = it
		res.MarginalError = rowGap(plan, mu, ns, nt)
		if res.MarginalError <= opts.Tolerance {
			break
		}
	}

	res.F, res.G = f, g
	res.Distance = floats.Dot(f, mu) + floats.Dot(g, nu) - eps*floats.Sum(plan)
	if !allFinite(plan) || math.IsNaN(res.Distance) || math.IsInf(res.Distance, 0) {
		return Result{}, fmt.Errorf("sinkhorn: %w", entropic.ErrNumericDegeneracy)
	}
	res.Plan, err = matrix.NewDenseFrom(ns, nt, plan)
	if err != nil {
		return Result{}, fmt.Errorf("sinkhorn: %w", err)
	}
	if res.MarginalError > opts.Tolerance {
		return res, fmt.Errorf("sinkhorn: gap %g after %d sweeps: %w", res.MarginalError, res.Iterations, ErrNotConverged)
	}

	return res, nil
}

// validate checks options, C, mu and nu; returns (ns, nt).
func validate(C matrix.Matrix, mu, nu []float64, opts Options) (int, int, error) {
	invalid := func(detail string, cause error) error {
		if cause != nil {
			return fmt.Errorf("sinkhorn: %s: %w: %w", detail, entropic.ErrInvalidArgument, cause)
		}
		return fmt.Errorf("sinkhorn: %s: %w", detail, entropic.ErrInvalidArgument)
	}

	if !(opts.Epsilon > 0) || math.IsInf(opts.Epsilon, 0) {
		return 0, 0, invalid(fmt.Sprintf("epsilon=%g", opts.Epsilon), nil)
	}
	if opts.MaxIterations <= 0 {
		return 0, 0, invalid(fmt.Sprintf("max iterations=%d", opts.MaxIterations), nil)
	}
	if !(opts.Tolerance >= 0) {
		return 0, 0, invalid(fmt.Sprintf("tolerance=%g", opts.Tolerance), nil)
	}
	if err := matrix.ValidateNonNegative(C); err != nil {
		return 0, 0, invalid("cost matrix", err)
	}
	ns, nt := C.Rows(), C.Cols()
	if err := matrix.ValidateVecLen(mu, ns); err != nil {
		return 0, 0, invalid("mu", err)
	}
	if err := matrix.ValidateVecLen(nu, nt); err != nil {
		return 0, 0, invalid("nu", err)
	}
	if err := measure.Validate(mu, 1e-6); err != nil {
		return 0, 0, invalid("mu", err)
	}
	if err := measure.Validate(nu, 1e-6); err != nil {
		return 0, 0, invalid("nu", err)
	}

	return ns, nt, nil
}

// flatten copies C into a row-major slice.
func flatten(C matrix.Matrix, ns, nt int) []float64 {
	if d, ok := C.(*matrix.Dense); ok {
		return d.Data()
	}
	out := make([]float64, ns*nt)
	for i := 0; i < ns; i++ {
		for j := 0; j < nt; j++ {
			out[i*nt+j], _ = C.At(i, j) // shape validated
		}
	}

	return out
}

func fillPlan(plan, cost, f, g, logMu, logNu []float64, eps float64, ns, nt int) {
	for i := 0; i < ns; i++ {
		for j := 0; j < nt; j++ {
			plan[i*nt+j] = math.Exp((f[i]+g[j]-cost[i*nt+j])/eps + logMu[i] + logNu[j])
		}
	}
}

// rowGap returns Σ_i |Σ_j plan[i,j] − mu[i]|.
func rowGap(plan, mu []float64, ns, nt int) float64 {
	var gap float64
	for i := 0; i < ns; i++ {
		gap += math.Abs(floats.Sum(plan[i*nt:(i+1)*nt]) - mu[i])
	}

	return gap
}

func logOf(p []float64) []float64 {
	out := make([]float64, len(p))
	for i, x := range p {
		out[i] = math.Log(x)
	}

	return out
}

func allFinite(x []float64) bool {
	for _, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}
