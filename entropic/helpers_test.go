// SPDX-License-Identifier: MIT

package entropic_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/otsgd/matrix"
)

//go:generate mockgen -destination mock_source_test.go -package entropic_test -write_package_comment=false github.com/katalvlaran/otsgd/entropic Source

// goldenReference is the converged log-domain Sinkhorn distance for the golden
// scenario below (ε=1), computed once and pinned.
const goldenReference = 0.19113685714478068

// goldenProblem returns mu=[0.2,0.3,0.5], nu=[0.5,0.5], C=[[0,1],[1,0],[2,2]].
func goldenProblem(t *testing.T) (*matrix.Dense, []float64, []float64) {
	t.Helper()
	C, err := matrix.NewDenseRows([][]float64{{0, 1}, {1, 0}, {2, 2}})
	require.NoError(t, err)

	return C, []float64{0.2, 0.3, 0.5}, []float64{0.5, 0.5}
}

// indexProblem returns the 7x4 problem with C[i,j]=|i-j| and fixed random-looking measures.
func indexProblem(t *testing.T) (*matrix.Dense, []float64, []float64) {
	t.Helper()
	C, err := matrix.NewDense(7, 4)
	require.NoError(t, err)
	for i := 0; i < 7; i++ {
		for j := 0; j < 4; j++ {
			require.NoError(t, C.Set(i, j, math.Abs(float64(i-j))))
		}
	}

	return C, []float64{0.05, 0.2, 0.1, 0.15, 0.25, 0.1, 0.15}, []float64{0.1, 0.4, 0.3, 0.2}
}

// hide masks *matrix.Dense so the solver takes its generic row path.
type hide struct{ matrix.Matrix }

func relErr(got, want float64) float64 {
	return math.Abs(got-want) / math.Abs(want)
}
