// SPDX-License-Identifier: MIT

package entropic

import "github.com/katalvlaran/otsgd/matrix"

// rowReader hands out cost rows without per-call allocation.
// For *matrix.Dense it returns a no-copy view; other Matrix implementations
// are copied through At into one reused scratch buffer, so a returned row is
// only valid until the next call.
type rowReader struct {
	m       matrix.Matrix
	dense   *matrix.Dense
	scratch []float64
}

func newRowReader(m matrix.Matrix) *rowReader {
	rr := &rowReader{m: m}
	if d, ok := m.(*matrix.Dense); ok {
		rr.dense = d
	} else {
		rr.scratch = make([]float64, m.Cols())
	}

	return rr
}

// row returns C[i,:].
func (rr *rowReader) row(i int) ([]float64, error) {
	if rr.dense != nil {
		return rr.dense.RowView(i)
	}
	for j := range rr.scratch {
		v, err := rr.m.At(i, j)
		if err != nil {
			return nil, err
		}
		rr.scratch[j] = v
	}

	return rr.scratch, nil
}
