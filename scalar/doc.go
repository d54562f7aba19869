// SPDX-License-Identifier: MIT

// Package scalar defines the element constraints shared by the vector, matrix
// and dense packages, together with the library-wide approximate equality rule.
//
// Element types:
//
//	Number = constraints.Signed | constraints.Float
//	Float  = constraints.Float
//
// Unsigned integers are excluded on purpose: negation, cross products and
// cofactor signs are not closed over them.
//
// Approximate equality:
//
//	ApproxEq(a, b) is true when a == b. Otherwise, for floating-point T, when
//	either operand is zero or |a-b| is below the smallest normal value the
//	absolute difference is compared to Epsilon; in every other case the
//	relative difference |a-b| / min(|a|+|b|, Max) is compared to Epsilon.
//	Integers compare exactly.
//
// Every equality in this module (vector.Equal, matrix.Equal, dense.Equal) is
// built on ApproxEq, element by element.
package scalar
