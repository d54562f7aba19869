// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"github.com/katalvlaran/straaljager/dense"
	"github.com/katalvlaran/straaljager/scalar"
	"github.com/katalvlaran/straaljager/vector"
)

// ToDense copies m into a runtime-shaped dense matrix.
// opts set the numeric policy of the result.
func (m Matrix[T, R, C]) ToDense(opts ...dense.Option) (*dense.Dense[T], error) {
	rows, cols := vector.Len[R](), vector.Len[C]()
	data := make([]T, 0, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			data = append(data, m.cols[c].At(r))
		}
	}

	return dense.FromFlat(rows, cols, data, opts...)
}

// FromDense copies d into an R×C matrix.
//
// Errors:
//   - dense.ErrNilMatrix for a nil d.
//   - ErrDimensionMismatch when d is not R×C.
func FromDense[R, C vector.Size, T scalar.Number](d *dense.Dense[T]) (Matrix[T, R, C], error) {
	var m Matrix[T, R, C]
	if d == nil {
		return m, matrixErrorf(opFromDense, dense.ErrNilMatrix)
	}
	rows, cols := vector.Len[R](), vector.Len[C]()
	if d.Rows() != rows || d.Cols() != cols {
		return m, matrixErrorf(opFromDense, fmt.Errorf("got %dx%d, want %dx%d: %w", d.Rows(), d.Cols(), rows, cols, ErrDimensionMismatch))
	}
	e := d.Elements()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			m.cols[c].Set(r, e[r*cols+c])
		}
	}

	return m, nil
}
