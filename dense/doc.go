// SPDX-License-Identifier: MIT

// Package dense offers vectors and matrices whose size is chosen at run time.
//
// The fixed-size packages vector and matrix carry their dimensions in the
// type, so a mismatch is a compile error. Package dense is the counterpart for
// shapes only known while the program runs:
//
//   - Vector[T]: a length-n vector with the same arithmetic as vector.Vector.
//   - Dense[T]: a row-major r×c matrix with safe At/Set.
//   - Kernels: Add, Sub, Mul, Transpose, Scale, MatVec, Determinant,
//     Adjugate and Inverse for any n×n.
//   - Element-wise: Hadamard, ScaleRows, ScaleCols, Clip, ReplaceNonFinite
//     and AllClose.
//
// Every shape or index problem is reported as a sentinel error (ErrBadShape,
// ErrOutOfRange, ErrDimensionMismatch, ErrNonSquare, ErrSingular, ...)
// wrapped with the operation that detected it; match with errors.Is.
// Kernels never panic on bad shapes or nil operands.
//
// The numeric policy of a matrix (comparison epsilon, NaN/Inf rejection) is
// set with functional options at construction:
//
//	m, err := dense.NewDense[float64](3, 3, dense.WithEpsilon(1e-9))
package dense
