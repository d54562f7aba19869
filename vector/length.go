// SPDX-License-Identifier: MIT

package vector

import "github.com/katalvlaran/straaljager/scalar"

const opTryNormalized = "TryNormalized"

// Length returns the Euclidean length of v.
func Length[T scalar.Float, S Size](v Vector[T, S]) T {
	return scalar.Sqrt(v.LengthSquared())
}

// Normalized returns v scaled to unit length.
//
// v must not be the zero vector: its components come back as NaN.
// TryNormalized is the checked alternative.
func Normalized[T scalar.Float, S Size](v Vector[T, S]) Vector[T, S] {
	return v.Scale(1 / Length(v))
}

// Normalize scales v to unit length in place, with the same precondition as
// Normalized.
func Normalize[T scalar.Float, S Size](v *Vector[T, S]) {
	*v = Normalized(*v)
}

// TryNormalized is Normalized returning ErrZeroLength for a zero vector.
func TryNormalized[T scalar.Float, S Size](v Vector[T, S]) (Vector[T, S], error) {
	if v.LengthSquared() == 0 {
		return Vector[T, S]{}, vectorErrorf(opTryNormalized, ErrZeroLength)
	}

	return Normalized(v), nil
}

// IsUnit reports whether v has length 1 within scalar.Epsilon.
// The squared length is compared, which avoids a square root and keeps the
// tolerance from compounding.
func IsUnit[T scalar.Float, S Size](v Vector[T, S]) bool {
	return scalar.ApproxEq(v.LengthSquared(), 1)
}

// Distance returns the length of a - b.
func Distance[T scalar.Float, S Size](a, b Vector[T, S]) T {
	return Length(a.Sub(b))
}

// Lerp interpolates each component between a (t=0) and b (t=1).
func Lerp[T scalar.Float, S Size](a, b Vector[T, S], t T) Vector[T, S] {
	return zip(a, b, func(x, y T) T { return scalar.Mix(x, y, t) })
}
