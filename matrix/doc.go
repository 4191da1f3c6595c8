// SPDX-License-Identifier: MIT

// Package matrix offers the dense numeric containers used by the transport solvers.
//
// The matrix package provides:
//
//   - Matrix, a minimal bounds-checked interface over a two-dimensional float64 array.
//   - Dense, a row-major implementation backed by one flat slice.
//   - Central validators (shape, vector length, finiteness, non-negativity) returning
//     sentinel errors, so every solver rejects bad input the same way.
//   - Reductions (RowSums, ColSums, Total) and AllClose for marginal checks.
//   - Interop with gonum (ToGonum, FromGonum) for callers that already hold a *mat.Dense;
//     cmd/otcheck builds its golden cost through FromGonum and checks plan columns via ToGonum.
//
// Cost matrices and transport plans are both Dense values: a cost matrix is read-only
// once built, a plan is produced fresh by each solve.
package matrix
