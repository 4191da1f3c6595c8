// SPDX-License-Identifier: MIT

package cost

import (
	"context"
	"fmt"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/otsgd/matrix"
)

// Pairwise computes C[i,j] = metric(src[i], tgt[j]).
//
// Implementation:
//   - Stage 1: validate batches (non-empty, one shared dimensionality) and metric.
//   - Stage 2: fan rows out over at most workers goroutines (errgroup.SetLimit);
//     every goroutine owns a disjoint row range of one flat buffer.
//   - Stage 3: reject any negative/NaN/Inf cost, then wrap the buffer as *matrix.Dense.
//
// Cancellation: ctx is checked before each row; the first error cancels the rest.
//
// Errors: ErrEmptyBatch, ErrDimensionMismatch, ErrNilMetric, ErrInvalidCost, ctx.Err().
//
// Complexity: O(ns·nt·d) time, O(ns·nt) memory.
func Pairwise(ctx context.Context, src, tgt [][]float64, metric Metric, workers int) (*matrix.Dense, error) {
	if metric == nil {
		return nil, ErrNilMetric
	}
	if _, err := batchDim(src, tgt); err != nil {
		return nil, err
	}

	ns, nt := len(src), len(tgt)
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > ns {
		workers = ns
	}

	buf := make([]float64, ns*nt)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < ns; i++ {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			row := buf[i*nt : (i+1)*nt]
			for j := 0; j < nt; j++ {
				c := metric(src[i], tgt[j])
				if math.IsNaN(c) || math.IsInf(c, 0) || c < 0 {
					return fmt.Errorf("Pairwise(%d,%d)=%g: %w", i, j, c, ErrInvalidCost)
				}
				row[j] = c
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return matrix.NewDenseFrom(ns, nt, buf)
}

// batchDim checks both batches and returns their common sample dimension.
func batchDim(src, tgt [][]float64) (int, error) {
	if len(src) == 0 || len(tgt) == 0 || len(src[0]) == 0 {
		return 0, ErrEmptyBatch
	}
	d := len(src[0])
	for i, x := range src {
		if len(x) != d {
			return 0, fmt.Errorf("source[%d]: %w", i, ErrDimensionMismatch)
		}
	}
	for j, y := range tgt {
		if len(y) != d {
			return 0, fmt.Errorf("target[%d]: %w", j, ErrDimensionMismatch)
		}
	}

	return d, nil
}

// Points1D lifts scalar positions to one-dimensional samples, e.g. atom indices
// 0..n-1 for index-distance costs.
func Points1D(xs []float64) [][]float64 {
	out := make([][]float64, len(xs))
	for i, x := range xs {
		out[i] = []float64{x}
	}

	return out
}
