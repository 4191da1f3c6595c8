// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/otsgd/matrix"
)

// TestGonumRoundTrip verifies ToGonum/FromGonum preserve shape and values.
func TestGonumRoundTrip(t *testing.T) {
	m, err := matrix.NewDenseRows([][]float64{{0, 1.5}, {2, 3}, {4.25, 5}})
	require.NoError(t, err)

	g, err := matrix.ToGonum(m)
	require.NoError(t, err)
	r, c := g.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 2, c)
	assert.Equal(t, 4.25, g.At(2, 0))

	back, err := matrix.FromGonum(g)
	require.NoError(t, err)
	ok, err := matrix.AllClose(m, back, 0, 0)
	require.NoError(t, err)
	assert.True(t, ok)

	viaGeneric, err := matrix.ToGonum(hide{m})
	require.NoError(t, err)
	assert.True(t, mat.Equal(g, viaGeneric))
}

func TestFromGonum_Rejects(t *testing.T) {
	_, err := matrix.FromGonum(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	g := mat.NewDense(1, 2, []float64{1, math.Inf(1)})
	_, err = matrix.FromGonum(g)
	assert.ErrorIs(t, err, matrix.ErrNaNInf)
}
