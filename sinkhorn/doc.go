// SPDX-License-Identifier: MIT

// Package sinkhorn is a deterministic log-domain Sinkhorn solver for the same
// entropy-regularised transport problem the entropic package approximates
// stochastically.
//
// It alternates exact soft c-transforms
//
//	f[i] = −ε · logΣ_j exp((g[j] − C[i,j])/ε) · nu[j]
//	g[j] = −ε · logΣ_i exp((f[i] − C[i,j])/ε) · mu[i]
//
// until the row marginal of the implied plan is within Tolerance of mu (the
// column marginal is exact after every g update). Distance uses the same
// dual objective as entropic.Reconstruct, so the two estimates are directly
// comparable; that makes this package the reference in convergence tests and
// in cmd/otcheck.
//
// Complexity: O(Iterations·ns·nt) time, O(ns·nt) memory.
package sinkhorn
