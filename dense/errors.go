// SPDX-License-Identifier: MIT

// Package dense: sentinel error set.
// Every failure in this package is one of these sentinels, wrapped with an
// operation tag via matrixErrorf or vectorErrorf. Tests and callers match them
// with errors.Is. Kernels and validators report nil operands as ErrNilMatrix;
// accessor methods (Rows, Cols, Len, LengthSquared, Scale, ...) on a nil
// receiver panic like any nil dereference.

package dense

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "dense: " so the origin is clear once the
// error has been wrapped by callers.

var (
	// ErrBadShape is returned when a requested shape is invalid (rows<=0, cols<=0,
	// ragged row slices, or a flat buffer whose length is not rows*cols).
	ErrBadShape = errors.New("dense: invalid shape")

	// ErrOutOfRange indicates that an index is outside valid bounds.
	// Public indexers (At/Set) return this instead of panicking.
	ErrOutOfRange = errors.New("dense: index out of range")

	// ErrDimensionMismatch indicates incompatible operand dimensions,
	// e.g. Add on different shapes, Mul where a.Cols != b.Rows, or vectors of
	// different lengths.
	ErrDimensionMismatch = errors.New("dense: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("dense: matrix is not square")

	// ErrSingular is returned by Inverse when the determinant is ≈ 0 within the
	// matrix epsilon.
	ErrSingular = errors.New("dense: singular matrix")

	// ErrNilMatrix indicates that a nil *Dense or *Vector was passed.
	ErrNilMatrix = errors.New("dense: nil receiver")

	// ErrNaNInf signals a NaN or ±Inf value rejected by the numeric policy.
	ErrNaNInf = errors.New("dense: NaN or Inf encountered")

	// ErrZeroLength is returned by Normalized for a zero vector.
	ErrZeroLength = errors.New("dense: zero-length vector")

	// ErrDivisionByZero is returned by Vector.Div for an integer zero divisor.
	// Float divisors follow IEEE 754 instead.
	ErrDivisionByZero = errors.New("dense: integer division by zero")
)

// matrixErrorf wraps err with an operation tag, preserving it for errors.Is.
// Call only with a non-nil err.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// vectorErrorf is matrixErrorf for the Vector kernels.
func vectorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
