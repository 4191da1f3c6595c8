// SPDX-License-Identifier: MIT

package cost

import (
	"context"
	"errors"

	"github.com/katalvlaran/otsgd/matrix"
)

var (
	// ErrEmptyBatch indicates a source or target batch with no samples, or a
	// sample with no coordinates.
	ErrEmptyBatch = errors.New("cost: empty sample batch")

	// ErrDimensionMismatch indicates samples of differing dimensionality.
	ErrDimensionMismatch = errors.New("cost: sample dimension mismatch")

	// ErrNilMetric indicates that no metric function was supplied.
	ErrNilMetric = errors.New("cost: nil metric")

	// ErrInvalidCost indicates a metric produced a negative, NaN or ±Inf cost.
	ErrInvalidCost = errors.New("cost: metric produced a negative or non-finite cost")
)

// Metric returns the cost of moving mass from point x to point y.
// Implementations must be safe for concurrent use and return finite values ≥ 0.
type Metric func(x, y []float64) float64

// Provider supplies the ns×nt cost matrix for a source and a target batch.
type Provider interface {
	Cost(ctx context.Context, src, tgt [][]float64) (*matrix.Dense, error)
}

// MetricProvider is a Provider backed by a pointwise Metric.
//
// Workers bounds the goroutines used by Pairwise; 0 selects runtime.GOMAXPROCS(0).
type MetricProvider struct {
	Metric  Metric
	Workers int
}

// Cost implements Provider.
func (p MetricProvider) Cost(ctx context.Context, src, tgt [][]float64) (*matrix.Dense, error) {
	return Pairwise(ctx, src, tgt, p.Metric, p.Workers)
}
