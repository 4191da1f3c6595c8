// SPDX-License-Identifier: MIT

// Package entropic solves entropy-regularised optimal transport between a
// source and a discrete target measure by stochastic ascent on the semi-dual.
//
// 🚀 What does it compute?
//
//	Given a cost matrix C (ns×nt), measures mu (sources) and nu (targets) and a
//	regularisation strength ε > 0, the solver maximises the smoothed semi-dual
//	over the target potential v, recovers the source potential u by a soft
//	c-transform and rebuilds the Gibbs coupling
//
//	    π[i,j] = exp((u[i] + v[j] − C[i,j]) / ε) · mu[i] · nu[j]
//
//	together with the regularised distance estimate
//
//	    W = ⟨v,nu⟩ + ⟨u,mu⟩ − ε·Σπ.
//
// Algorithm outline (averaged SGD):
//  1. v = 0, v̄ = 0.
//  2. For k = 1..Iterations: draw i uniformly from [0, ns) through the injected
//     Source; g = nu − softmax((v − C[i,:])/ε + log nu);
//     v += (LearningRate/√k)·g; v̄ += (v − v̄)/k.
//  3. u[i] = −ε·logΣ_j exp((v̄[j] − C[i,j])/ε + log nu[j]).
//  4. π and W as above.
//
// Every exponential goes through a max-shifted log-sum-exp, so small ε or a
// wide cost spread never overflows. If NaN/Inf still shows up it is reported as
// ErrNumericDegeneracy, never returned as a value.
//
// ⚙️ Usage:
//
//	opts := entropic.DefaultOptions() // ε=1, 10000 iterations, lr=0.1
//	sol, err := entropic.Transport(ctx, C, mu, nu, opts, entropic.NewSource(42))
//
// Concurrency:
//
//	A solve is strictly sequential: step k reads the v written by step k−1.
//	v and v̄ are allocated per call, so concurrent calls are safe as long as they
//	do not share a Source (a *rand.Rand is not goroutine-safe). C is only read.
//
// Complexity:
//
//	Solve:       O(Iterations·nt) time, O(nt) memory
//	RecoverU:    O(ns·nt)
//	Reconstruct: O(ns·nt) time and memory
package entropic
