// SPDX-License-Identifier: MIT

package cost_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/otsgd/cost"
	"github.com/katalvlaran/otsgd/matrix"
)

func indexPoints(n int) [][]float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = float64(i)
	}
	return cost.Points1D(xs)
}

// TestPairwise_IndexDistance verifies C[i,j] = |i-j| for Manhattan on index atoms.
func TestPairwise_IndexDistance(t *testing.T) {
	C, err := cost.Pairwise(context.Background(), indexPoints(7), indexPoints(4), cost.Manhattan, 3)
	require.NoError(t, err)

	r, c := C.Shape()
	require.Equal(t, 7, r)
	require.Equal(t, 4, c)
	for i := 0; i < 7; i++ {
		for j := 0; j < 4; j++ {
			v, err := C.At(i, j)
			require.NoError(t, err)
			assert.Equal(t, math.Abs(float64(i-j)), v, "C[%d,%d]", i, j)
		}
	}
}

// TestPairwise_WorkerCountInvariant checks the result does not depend on parallelism.
func TestPairwise_WorkerCountInvariant(t *testing.T) {
	src := [][]float64{{0, 0}, {1, 2}, {3, -1}, {0.5, 0.5}, {-2, 4}}
	tgt := [][]float64{{1, 1}, {2, 0}, {-1, -1}}

	ref, err := cost.Pairwise(context.Background(), src, tgt, cost.SquaredEuclidean, 1)
	require.NoError(t, err)
	for _, w := range []int{0, 2, 16} {
		got, err := cost.Pairwise(context.Background(), src, tgt, cost.SquaredEuclidean, w)
		require.NoError(t, err)
		assert.Equal(t, ref.Data(), got.Data(), "workers=%d", w)
	}

	v, _ := ref.At(1, 0) // (1,2) vs (1,1)
	assert.Equal(t, 1.0, v)
	v, _ = ref.At(2, 2) // (3,-1) vs (-1,-1)
	assert.Equal(t, 16.0, v)
}

func TestMetrics(t *testing.T) {
	x, y := []float64{0, 0}, []float64{3, 4}
	assert.InDelta(t, 25.0, cost.SquaredEuclidean(x, y), 1e-12)
	assert.InDelta(t, 5.0, cost.Euclidean(x, y), 1e-12)
	assert.InDelta(t, 7.0, cost.Manhattan(x, y), 1e-12)
}

func TestPairwise_Errors(t *testing.T) {
	ctx := context.Background()

	_, err := cost.Pairwise(ctx, nil, indexPoints(2), cost.Manhattan, 0)
	assert.ErrorIs(t, err, cost.ErrEmptyBatch)

	_, err = cost.Pairwise(ctx, indexPoints(2), [][]float64{{1, 2}}, cost.Manhattan, 0)
	assert.ErrorIs(t, err, cost.ErrDimensionMismatch)

	_, err = cost.Pairwise(ctx, indexPoints(2), indexPoints(2), nil, 0)
	assert.ErrorIs(t, err, cost.ErrNilMetric)

	negative := func(x, y []float64) float64 { return x[0] - y[0] }
	_, err = cost.Pairwise(ctx, indexPoints(3), indexPoints(3), negative, 2)
	assert.ErrorIs(t, err, cost.ErrInvalidCost)

	nan := func(_, _ []float64) float64 { return math.NaN() }
	_, err = cost.Pairwise(ctx, indexPoints(1), indexPoints(1), nan, 1)
	assert.ErrorIs(t, err, cost.ErrInvalidCost)
}

func TestPairwise_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := cost.Pairwise(ctx, indexPoints(4), indexPoints(4), cost.Manhattan, 2)
	assert.ErrorIs(t, err, context.Canceled)
}

// TestMetricProvider_ImplementsProvider exercises the Provider surface.
func TestMetricProvider_ImplementsProvider(t *testing.T) {
	var p cost.Provider = cost.MetricProvider{Metric: cost.Euclidean, Workers: 2}

	C, err := p.Cost(context.Background(), [][]float64{{0, 0}}, [][]float64{{3, 4}, {0, 0}})
	require.NoError(t, err)
	want, _ := matrix.NewDenseRows([][]float64{{5, 0}})
	ok, err := matrix.AllClose(C, want, 0, 1e-12)
	require.NoError(t, err)
	assert.True(t, ok)
}
