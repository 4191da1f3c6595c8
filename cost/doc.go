// SPDX-License-Identifier: MIT

// Package cost computes pairwise transport-cost matrices from sample batches.
//
// 🚀 What is a cost matrix?
//
//	C[i,j] is the price of moving one unit of mass from source sample i to
//	target sample j. The transport solvers only ever see C; how it is computed
//	(a fixed metric, a learned network, a lookup) is the Provider's business.
//
// ✨ Key features:
//   - Provider interface so callers can plug any cost source into the ot facade.
//   - MetricProvider + Pairwise for metric costs (SquaredEuclidean, Euclidean,
//     Manhattan, or any Metric func).
//   - Row-parallel computation with a worker limit; each row is written by
//     exactly one goroutine and C is immutable once returned.
//   - Strict output policy: every cost must be finite and ≥ 0.
//
// ⚙️ Usage:
//
//	C, err := cost.Pairwise(ctx, src, tgt, cost.SquaredEuclidean, 0)
//
// Performance:
//
//   - Time:   O(ns·nt·d) metric work, spread over Workers goroutines
//   - Memory: O(ns·nt)
package cost
