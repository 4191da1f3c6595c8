// SPDX-License-Identifier: MIT

package entropic_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/otsgd/entropic"
	"github.com/katalvlaran/otsgd/matrix"
	"github.com/katalvlaran/otsgd/sinkhorn"
)

func TestTransport_Golden(t *testing.T) {
	C, mu, nu := goldenProblem(t)
	opts := entropic.DefaultOptions()
	opts.Iterations = 5000

	sol, err := entropic.Transport(context.Background(), C, mu, nu, opts, entropic.NewSource(1))
	require.NoError(t, err)
	assert.InDelta(t, goldenReference, sol.Distance, 0.01)

	ns, nt := sol.Plan.Shape()
	assert.Equal(t, 3, ns)
	assert.Equal(t, 2, nt)
	assert.Len(t, sol.U, 3)
	assert.Len(t, sol.V, 2)
	for _, x := range sol.Plan.Data() {
		assert.GreaterOrEqual(t, x, 0.0)
	}
}

// TestTransport_ImprovesWithBudget checks the relative error against the
// converged Sinkhorn distance shrinks as the iteration budget grows.
func TestTransport_ImprovesWithBudget(t *testing.T) {
	C, mu, nu := indexProblem(t)
	ref, err := sinkhorn.Solve(C, mu, nu, sinkhorn.DefaultOptions())
	require.NoError(t, err)
	assert.InDelta(t, 0.9218182346694214, ref.Distance, 1e-6)

	var errs []float64
	for _, iters := range []int{100, 1000, 10000} {
		opts := entropic.DefaultOptions()
		opts.Iterations = iters
		sol, err := entropic.Transport(context.Background(), C, mu, nu, opts, entropic.NewSource(7))
		require.NoError(t, err)
		errs = append(errs, relErr(sol.Distance, ref.Distance))
	}

	assert.Greater(t, errs[0], errs[1], "100 vs 1000 iterations")
	assert.Greater(t, errs[1], errs[2], "1000 vs 10000 iterations")
	assert.LessOrEqual(t, errs[2], 0.05)
}

// TestTransport_SingleSource: with one source point the row mass is exactly
// mu[0] and the row approaches mu[0]·nu.
func TestTransport_SingleSource(t *testing.T) {
	C, err := matrix.NewDenseRows([][]float64{{0, 1, 2}})
	require.NoError(t, err)
	nu := []float64{0.2, 0.3, 0.5}

	sol, err := entropic.Transport(context.Background(), C, []float64{1}, nu, entropic.DefaultOptions(), entropic.NewSource(1))
	require.NoError(t, err)

	row, err := sol.Plan.Row(0)
	require.NoError(t, err)
	assert.InDelta(t, 1, floats.Sum(row), 1e-12)
	assert.InDeltaSlice(t, nu, row, 0.05)
}

func TestTransport_SmallEpsilonStaysFinite(t *testing.T) {
	C, mu, nu := goldenProblem(t)
	for _, eps := range []float64{1e-2, 1e-3, 1e-4} {
		opts := entropic.DefaultOptions()
		opts.Epsilon = eps
		opts.Iterations = 2000

		sol, err := entropic.Transport(context.Background(), C, mu, nu, opts, entropic.NewSource(1))
		require.NoError(t, err, "eps=%g", eps)
		for _, x := range sol.Plan.Data() {
			assert.False(t, math.IsNaN(x) || math.IsInf(x, 0), "eps=%g", eps)
			assert.GreaterOrEqual(t, x, 0.0, "eps=%g", eps)
		}
		assert.False(t, math.IsNaN(sol.Distance) || math.IsInf(sol.Distance, 0), "eps=%g", eps)
	}
}

func TestTransport_Reproducible(t *testing.T) {
	C, mu, nu := indexProblem(t)
	opts := entropic.DefaultOptions()
	opts.Iterations = 2000

	a, err := entropic.Transport(context.Background(), C, mu, nu, opts, entropic.NewSource(42))
	require.NoError(t, err)
	b, err := entropic.Transport(context.Background(), C, mu, nu, opts, entropic.NewSource(42))
	require.NoError(t, err)

	assert.Equal(t, a.V, b.V)
	assert.Equal(t, a.U, b.U)
	assert.Equal(t, a.Plan.Data(), b.Plan.Data())
	assert.Equal(t, a.Distance, b.Distance)
}

func TestTransport_InvalidMu(t *testing.T) {
	C, _, nu := goldenProblem(t)
	_, err := entropic.Transport(context.Background(), C, []float64{0.5, 0.5}, nu, entropic.DefaultOptions(), entropic.NewSource(1))
	assert.ErrorIs(t, err, entropic.ErrInvalidArgument)
	_, err = entropic.Transport(context.Background(), C, []float64{0.5, 0.5, 0.5}, nu, entropic.DefaultOptions(), entropic.NewSource(1))
	assert.ErrorIs(t, err, entropic.ErrInvalidArgument)
}
