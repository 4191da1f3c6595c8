// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/otsgd/matrix"
)

func TestRowColSumsTotal(t *testing.T) {
	m, err := matrix.NewDenseRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)

	for name, in := range map[string]matrix.Matrix{"dense": m, "generic": hide{m}} {
		t.Run(name, func(t *testing.T) {
			rs, err := matrix.RowSums(in)
			require.NoError(t, err)
			assert.Equal(t, []float64{6, 15}, rs)

			cs, err := matrix.ColSums(in)
			require.NoError(t, err)
			assert.Equal(t, []float64{5, 7, 9}, cs)

			total, err := matrix.Total(in)
			require.NoError(t, err)
			assert.Equal(t, 21.0, total)
		})
	}

	_, err = matrix.RowSums(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestAllClose(t *testing.T) {
	a, _ := matrix.NewDenseRows([][]float64{{1, 2}})
	b, _ := matrix.NewDenseRows([][]float64{{1 + 1e-12, 2}})
	c, _ := matrix.NewDenseRows([][]float64{{1.1, 2}})
	d, _ := matrix.NewDenseRows([][]float64{{1}, {2}})

	ok, err := matrix.AllClose(a, b, 0, 1e-9)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = matrix.AllClose(a, c, 0, 1e-9)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = matrix.AllClose(a, d, 0, 1e-9)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.AllClose(a, b, math.NaN(), 0)
	assert.ErrorIs(t, err, matrix.ErrNaNInf)
}
