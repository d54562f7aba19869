// SPDX-License-Identifier: MIT

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is wrapped by the panic raised for a row or column index
	// outside the matrix.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch reports an element or column count that does not
	// match the matrix type, or a dense matrix of the wrong shape.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrSingular is returned by TryInverse when the determinant is ≈ 0.
	ErrSingular = errors.New("matrix: singular matrix")
)

// matrixErrorf tags err with the operation that produced it.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
