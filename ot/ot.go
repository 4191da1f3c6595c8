// SPDX-License-Identifier: MIT

package ot

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/otsgd/cost"
	"github.com/katalvlaran/otsgd/entropic"
	"github.com/katalvlaran/otsgd/matrix"
	"github.com/katalvlaran/otsgd/measure"
)

// ErrNilProvider is returned when Distance is called without a cost Provider.
var ErrNilProvider = errors.New("ot: nil cost provider")

// Result is the outcome of one transport estimate.
type Result struct {
	// Distance is the regularised Wasserstein estimate.
	Distance float64

	// U and V are the source and target dual potentials.
	U, V []float64

	// Mu and Nu are the measures actually used (after normalisation).
	Mu, Nu []float64

	// Plan is the approximate coupling; nil unless WithPlan(true).
	Plan *matrix.Dense
}

// Distance estimates the entropic OT distance between the src and tgt batches.
//
// Stages:
//  1. C := provider.Cost(ctx, src, tgt)
//  2. mu := measure.Normalize(weights); nu := uniform over len(tgt), or the
//     normalised WithTargetWeights.
//  3. entropic.Transport(C, mu, nu).
//
// weights must have one entry per source sample.
//
// Errors: ErrNilProvider, provider errors, measure errors wrapped in
// entropic.ErrInvalidArgument, and everything entropic.Transport returns.
func Distance(ctx context.Context, provider cost.Provider, src, tgt [][]float64, weights []float64, opts ...Option) (Result, error) {
	if provider == nil {
		return Result{}, ErrNilProvider
	}
	o := gatherOptions(opts...)
	if mp, ok := provider.(cost.MetricProvider); ok && mp.Workers == 0 {
		mp.Workers = o.costWorkers
		provider = mp
	}

	C, err := provider.Cost(ctx, src, tgt)
	if err != nil {
		return Result{}, fmt.Errorf("ot: cost: %w", err)
	}

	return fromCost(ctx, C, weights, o)
}

// FromCost runs the estimate on a precomputed cost matrix. weights are the raw
// source importance weights (normalised here); the target measure follows the
// same rules as in Distance.
func FromCost(ctx context.Context, C matrix.Matrix, weights []float64, opts ...Option) (Result, error) {
	return fromCost(ctx, C, weights, gatherOptions(opts...))
}

func fromCost(ctx context.Context, C matrix.Matrix, weights []float64, o options) (Result, error) {
	if err := matrix.ValidateNotNil(C); err != nil {
		return Result{}, fmt.Errorf("ot: %w: %w", entropic.ErrInvalidArgument, err)
	}
	if len(weights) != C.Rows() {
		return Result{}, fmt.Errorf("ot: %d source weights for %d sources: %w: %w",
			len(weights), C.Rows(), entropic.ErrInvalidArgument, matrix.ErrDimensionMismatch)
	}
	mu, err := measure.Normalize(weights)
	if err != nil {
		return Result{}, fmt.Errorf("ot: source weights: %w: %w", entropic.ErrInvalidArgument, err)
	}
	nu, err := targetMeasure(C.Cols(), o.targetWeights, o.hasTargets)
	if err != nil {
		return Result{}, err
	}

	sol, err := entropic.Transport(ctx, C, mu, nu, o.solver, o.rng())
	if err != nil {
		return Result{}, fmt.Errorf("ot: %w", err)
	}

	res := Result{Distance: sol.Distance, U: sol.U, V: sol.V, Mu: mu, Nu: nu}
	if o.wantPlan {
		res.Plan = sol.Plan
	}

	return res, nil
}

// targetMeasure returns the uniform measure over nt atoms, or the normalised
// override when one was configured.
func targetMeasure(nt int, override []float64, has bool) ([]float64, error) {
	if !has {
		nu, err := measure.Uniform(nt)
		if err != nil {
			return nil, fmt.Errorf("ot: target measure: %w: %w", entropic.ErrInvalidArgument, err)
		}
		return nu, nil
	}
	if len(override) != nt {
		return nil, fmt.Errorf("ot: %d target weights for %d targets: %w: %w",
			len(override), nt, entropic.ErrInvalidArgument, matrix.ErrDimensionMismatch)
	}
	nu, err := measure.Normalize(override)
	if err != nil {
		return nil, fmt.Errorf("ot: target weights: %w: %w", entropic.ErrInvalidArgument, err)
	}

	return nu, nil
}
