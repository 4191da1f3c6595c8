// Package otsgd estimates entropy-regularised optimal transport between a
// weighted source batch and a target batch by averaged stochastic ascent on
// the semi-dual.
//
// What is in the box?
//
//	• matrix/  : Dense row-major storage, validators, reductions, gonum interop
//	• measure/ : probability vectors: Normalize, Uniform, Validate
//	• cost/    : pairwise cost matrices from point batches (Metric, Provider)
//	• entropic/: the stochastic solver: Solve, RecoverU, Reconstruct, Transport
//	• sinkhorn/: log-domain Sinkhorn, a converged reference for the same problem
//	• ot/      : one-call facade: Distance and FromCost with functional options
//	• cmd/otcheck: CLI comparing the stochastic estimate against Sinkhorn
//
// Algorithm in one breath:
//
//	repeat k = 1..N:
//	    i  ← uniform source index
//	    g  ← nu − softmax((v − C[i,:])/ε + log nu)
//	    v  ← v + lr/√k · g
//	    v̄  ← v̄ + (v − v̄)/k
//	u_i   = −ε·LSE_j((v̄_j − C_ij)/ε + log nu_j)
//	π_ij  = exp((u_i + v̄_j − C_ij)/ε + log mu_i + log nu_j)
//	W     = ⟨v̄,nu⟩ + ⟨u,mu⟩ − ε·Σπ
//
// Every exponent goes through log-sum-exp, so small ε does not overflow.
// The random source is injected; the same seed reproduces the same run.
//
//	go get github.com/katalvlaran/otsgd/ot
package otsgd
