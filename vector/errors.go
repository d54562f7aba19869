// SPDX-License-Identifier: MIT

package vector

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is wrapped by the panic raised for an index outside [0, S).
	ErrOutOfRange = errors.New("vector: index out of range")

	// ErrDimensionMismatch is wrapped by the panic raised when a constructor
	// receives a number of elements different from S.
	ErrDimensionMismatch = errors.New("vector: dimension mismatch")

	// ErrZeroLength is returned by TryNormalized for a zero vector.
	ErrZeroLength = errors.New("vector: zero-length vector")

	// ErrNotUnit is wrapped by the debug-build panic raised when Reflect or
	// Refract receives a normal that is not unit length.
	ErrNotUnit = errors.New("vector: normal is not a unit vector")
)

// vectorErrorf tags err with the operation that produced it.
func vectorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
