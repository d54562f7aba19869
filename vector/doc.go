// SPDX-License-Identifier: MIT

// Package vector provides Vector[T, S], a fixed-size numeric vector whose
// length S is part of its type.
//
// Dimension markers:
//
//	Two, Three and Four are empty marker types satisfying the Size constraint.
//	Vector[float32, Three] and Vector[float32, Two] are distinct types, so adding
//	vectors of different lengths, calling Cross on anything but a 3-vector or
//	building a 2-vector with New3 does not compile.
//
// Storage:
//
//	Elements live in a [MaxSize]T array inside the struct; only the first
//	S.Len() slots are used and the remaining ones stay zero. Vectors are plain
//	values: copying one copies its elements and no operation allocates.
//
// Element types:
//
//	Any scalar.Number. Operations that only make sense for floating point
//	(Length, Normalized, IsUnit, Reflect, Refract) are generic functions
//	constrained to scalar.Float rather than methods.
//
// Contract failures:
//
//	An out-of-range index or a wrong element count is a programmer error and
//	panics with an error wrapping ErrOutOfRange or ErrDimensionMismatch.
//	Nothing is ever clamped or wrapped around.
//
// Aliases Vec2/Vec3/Vec4 (float32), DVec2/DVec3/DVec4 (float64) and
// IVec2/IVec3/IVec4 (int32) cover the common instantiations.
package vector
