// SPDX-License-Identifier: MIT

// Package ot is the one-call entry point for entropic optimal transport
// between sample batches.
//
// Distance wires the pieces in dependency order:
//
//	cost.Provider  → C (ns×nt)
//	measure        → mu = Normalize(weights), nu = Uniform(nt) unless overridden
//	entropic       → Solve → RecoverU → Reconstruct
//
// and returns the regularised distance, the potentials and, on request, the
// plan. FromCost skips the Provider when C is already known.
//
// Hyperparameters are never hard-coded: they default to entropic.DefaultOptions
// (ε=1, 10000 iterations, lr=0.1) and are overridden with WithEpsilon,
// WithIterations, WithLearningRate. Those three panic on a non-positive literal;
// callers holding values from config or user input should build an
// entropic.Options and pass it through WithSolverOptions, which reports bad
// values as entropic.ErrInvalidArgument instead. Randomness is injected with WithSource or
// WithSeed; without either, a fixed default seed makes every call reproducible.
package ot
