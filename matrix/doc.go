// SPDX-License-Identifier: MIT

// Package matrix provides fixed-size, column-major matrices whose row and
// column counts are part of the type.
//
// What:
//   - Matrix[T, R, C] holds C columns of vector.Vector[T, R].
//   - R and C are the dimension markers of package vector (Two, Three, Four),
//     so the shape of every operand is known to the compiler.
//
// Why the shape lives in the type:
//   - Mul(a Matrix[T, R, C], b Matrix[T, C, S]) only accepts operands whose
//     inner dimensions agree; a mismatch does not compile.
//   - Identity, Adjoint, Determinant and Inverse take Matrix[T, S, S], so a
//     non-square inverse does not compile either.
//
// Inverse:
//   - Adjoint uses closed forms for 2×2 and 3×3 and cofactor expansion for 4×4.
//   - Determinant is Row(0) · Adjoint(m).Column(0).
//   - Inverse is the fast path (no singularity check, floats only);
//     TryInverse returns ErrSingular when the determinant is ≈ 0.
//
// Construction:
//   - New takes columns, matching the storage order.
//   - FromRows takes elements in reading (row-major) order, which is what
//     literal matrices in tests and examples look like:
//
//	m := matrix.FromRows[vector.Two, vector.Two, float32](
//		1, 2,
//		3, 4,
//	)
//
// Errors:
//   - Out-of-range indices and wrong element counts are programmer errors and
//     panic with an error wrapping ErrOutOfRange or ErrDimensionMismatch.
//   - Conversions from runtime-shaped data (FromDense) return errors.
//
// See also: package dense for matrices whose shape is only known at run time.
package matrix
