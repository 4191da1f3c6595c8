// SPDX-License-Identifier: MIT

// Package measure builds and checks the discrete probability vectors that
// weight the source and target atoms of a transport problem.
//
// A measure is a plain []float64: finite, non-negative, summing to 1.
// Normalize turns raw importance weights into such a vector; Uniform builds
// the default target measure; Validate is the shared precondition check.
package measure
