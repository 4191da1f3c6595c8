// SPDX-License-Identifier: MIT

// Package ot: functional configuration for Distance and FromCost.
//
// Design goals:
//   - Deterministic behaviour: no global state, no implicit time-based seeding.
//   - Safe by construction: WithX constructors panic only on nonsensical
//     literal values (programmer error); data-dependent checks return errors.

package ot

import (
	"math"

	"github.com/katalvlaran/otsgd/entropic"
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid    = "ot: WithEpsilon: epsilon must be finite and > 0"
	panicIterationsInvalid = "ot: WithIterations: iterations must be ≥ 1"
	panicRateInvalid       = "ot: WithLearningRate: rate must be finite and > 0"
	panicWorkersInvalid    = "ot: WithCostWorkers: workers must be ≥ 0"
)

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*options)

// options is the resolved configuration; unexported so public entry points
// only accept ...Option.
type options struct {
	solver        entropic.Options
	seed          int64
	source        entropic.Source
	targetWeights []float64
	hasTargets    bool // set by WithTargetWeights, even for an empty slice
	wantPlan      bool
	costWorkers   int
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) options {
	o := options{solver: entropic.DefaultOptions()}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// rng returns the configured Source, or a fresh deterministic one from seed.
func (o options) rng() entropic.Source {
	if o.source != nil {
		return o.source
	}

	return entropic.NewSource(o.seed)
}

// WithEpsilon sets the entropic regularisation ε.
func WithEpsilon(eps float64) Option {
	if !(eps > 0) || math.IsInf(eps, 0) {
		panic(panicEpsilonInvalid)
	}
	return func(o *options) { o.solver.Epsilon = eps }
}

// WithIterations sets the ascent budget.
func WithIterations(n int) Option {
	if n < 1 {
		panic(panicIterationsInvalid)
	}
	return func(o *options) { o.solver.Iterations = n }
}

// WithLearningRate sets the base step size (step k uses rate/√k).
func WithLearningRate(rate float64) Option {
	if !(rate > 0) || math.IsInf(rate, 0) {
		panic(panicRateInvalid)
	}
	return func(o *options) { o.solver.LearningRate = rate }
}

// WithSolverOptions replaces all solver hyperparameters at once; they are
// validated when the solve starts.
func WithSolverOptions(so entropic.Options) Option {
	return func(o *options) { o.solver = so }
}

// WithSeed selects a deterministic random stream; 0 means the default seed.
// Ignored when WithSource is also given.
func WithSeed(seed int64) Option {
	return func(o *options) { o.seed = seed }
}

// WithSource injects the random source used for atom selection.
// The source must not be shared with concurrent calls.
func WithSource(src entropic.Source) Option {
	return func(o *options) { o.source = src }
}

// WithTargetWeights overrides the uniform target measure. The weights are
// normalised like the source weights and must have one entry per target;
// an empty or nil slice is a shape mismatch, not a request for uniform weights.
func WithTargetWeights(w []float64) Option {
	return func(o *options) {
		o.targetWeights = make([]float64, len(w))
		copy(o.targetWeights, w)
		o.hasTargets = true
	}
}

// WithPlan asks for the transport plan in the Result.
func WithPlan(want bool) Option {
	return func(o *options) { o.wantPlan = want }
}

// WithCostWorkers bounds the goroutines a cost.MetricProvider built by
// Distance may use; 0 means GOMAXPROCS. It has no effect on custom Providers.
func WithCostWorkers(n int) Option {
	if n < 0 {
		panic(panicWorkersInvalid)
	}
	return func(o *options) { o.costWorkers = n }
}
