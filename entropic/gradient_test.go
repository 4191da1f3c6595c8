// SPDX-License-Identifier: MIT

package entropic_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/otsgd/entropic"
	"github.com/katalvlaran/otsgd/measure"
)

// TestCoordinateGradient_SumsToZero checks Σg ≈ 0 over many random problems,
// including tiny ε and wide cost spreads.
func TestCoordinateGradient_SumsToZero(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for trial := 0; trial < 200; trial++ {
		nt := 1 + rng.Intn(12)
		raw := make([]float64, nt)
		v := make([]float64, nt)
		row := make([]float64, nt)
		for j := 0; j < nt; j++ {
			raw[j] = rng.Float64() + 1e-3
			v[j] = rng.NormFloat64() * 10
			row[j] = rng.Float64() * 100
		}
		nu, err := measure.Normalize(raw)
		require.NoError(t, err)
		eps := math.Pow(10, -4+6*rng.Float64()) // 1e-4 .. 1e2

		g, err := entropic.CoordinateGradient(eps, nu, v, row)
		require.NoError(t, err, "trial %d eps=%g", trial, eps)
		assert.InDelta(t, 0, floats.Sum(g), 1e-12, "trial %d eps=%g", trial, eps)
	}
}

// TestCoordinateGradient_Value pins one hand-computed case:
// khi = softmax([0, -1]) for row=[0,1], v=0, nu=[.5,.5], ε=1.
func TestCoordinateGradient_Value(t *testing.T) {
	g, err := entropic.CoordinateGradient(1, []float64{0.5, 0.5}, []float64{0, 0}, []float64{0, 1})
	require.NoError(t, err)

	khi0 := 1 / (1 + math.Exp(-1))
	assert.InDeltaSlice(t, []float64{0.5 - khi0, khi0 - 0.5}, g, 1e-15)
}

func TestCoordinateGradient_Invalid(t *testing.T) {
	nu := []float64{0.5, 0.5}
	_, err := entropic.CoordinateGradient(0, nu, []float64{0, 0}, []float64{0, 1})
	assert.ErrorIs(t, err, entropic.ErrInvalidArgument)
	_, err = entropic.CoordinateGradient(1, nu, []float64{0}, []float64{0, 1})
	assert.ErrorIs(t, err, entropic.ErrInvalidArgument)
	_, err = entropic.CoordinateGradient(1, nu, []float64{0, 0}, []float64{0, math.Inf(1)})
	assert.ErrorIs(t, err, entropic.ErrInvalidArgument)
	_, err = entropic.CoordinateGradient(1, []float64{0.7, 0.7}, []float64{0, 0}, []float64{0, 1})
	assert.ErrorIs(t, err, entropic.ErrInvalidArgument)
}
