// SPDX-License-Identifier: MIT
// Package: dense
//
// Purpose:
//   - Provide a single, canonical source of truth for common validation checks.
//   - Keep kernels minimal by delegating shape/nil checks here.
//   - Return sentinel errors tagged with the validator name; kernels add their
//     own operation tag on top.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing on success.
//
// Note:
//   - Each composite validator follows a fixed sequence (NotNil → Shape).
//   - Each validator states what it assumes (e.g. no nil check).

package dense

import (
	"fmt"

	"github.com/katalvlaran/straaljager/scalar"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validateShape rejects non-positive dimensions with ErrBadShape.
func validateShape(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return validatorErrorf("validateShape", fmt.Errorf("%dx%d: %w", rows, cols, ErrBadShape))
	}

	return nil
}

// ValidateNotNil ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
// AI-Hints: Use as the first step in composite validations.
func ValidateNotNil[T scalar.Number](m *Dense[T]) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions.
// Assumes a and b are not nil.
func ValidateSameShape[T scalar.Number](a, b *Dense[T]) error {
	if a.r != b.r {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.c != b.c {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinarySameShape is the composite NotNil(a) → NotNil(b) → SameShape.
func ValidateBinarySameShape[T scalar.Number](a, b *Dense[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateSquareNonNil is the composite NotNil → Square.
//
// Errors: ErrNilMatrix, ErrNonSquare.
func ValidateSquareNonNil[T scalar.Number](m *Dense[T]) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}
	if m.r != m.c {
		return validatorErrorf("ValidateSquareNonNil", fmt.Errorf("%dx%d: %w", m.r, m.c, ErrNonSquare))
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols == b.Rows after nil checks.
func ValidateMulCompatible[T scalar.Number](a, b *Dense[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.c != b.r {
		return validatorErrorf("ValidateMulCompatible", fmt.Errorf("%dx%d · %dx%d: %w", a.r, a.c, b.r, b.c, ErrDimensionMismatch))
	}

	return nil
}

// ValidateVecLen ensures x is non-nil and has exactly n elements.
// AI-Hints: Use for any MatVec-like operation.
func ValidateVecLen[T scalar.Number](x *Vector[T], n int) error {
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix)
	}
	if len(x.e) != n {
		return validatorErrorf("ValidateVecLen", fmt.Errorf("length %d, want %d: %w", len(x.e), n, ErrDimensionMismatch))
	}

	return nil
}

// ValidateSameLen ensures both vectors are non-nil and of equal length.
func ValidateSameLen[T scalar.Number](a, b *Vector[T]) error {
	if a == nil || b == nil {
		return validatorErrorf("ValidateSameLen", ErrNilMatrix)
	}
	if len(a.e) != len(b.e) {
		return validatorErrorf("ValidateSameLen", fmt.Errorf("%d vs %d: %w", len(a.e), len(b.e), ErrDimensionMismatch))
	}

	return nil
}
