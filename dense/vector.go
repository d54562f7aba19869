// SPDX-License-Identifier: MIT

package dense

import (
	"fmt"

	"github.com/katalvlaran/straaljager/scalar"
)

const (
	ctxVector     = "NewVector"
	ctxZeroVector = "ZeroVector"
	ctxVecAt      = "Vector.At"
	ctxVecSet     = "Vector.Set"
	ctxVecDot     = "Vector.Dot"
	ctxVecAdd     = "Vector.Add"
	ctxVecSub     = "Vector.Sub"
	ctxVecMul     = "Vector.Mul"
	ctxVecDiv     = "Vector.Div"
	ctxNormalized = "Normalized"
)

// Vector is a vector whose length is chosen at run time.
// Operations between vectors check lengths and return ErrDimensionMismatch.
type Vector[T scalar.Number] struct {
	e []T
}

var _ fmt.Stringer = (*Vector[float64])(nil)

// NewVector copies elements into a new vector.
//
// Errors:
//   - ErrBadShape when no elements are given.
func NewVector[T scalar.Number](elements ...T) (*Vector[T], error) {
	if len(elements) == 0 {
		return nil, vectorErrorf(ctxVector, ErrBadShape)
	}
	e := make([]T, len(elements))
	copy(e, elements)

	return &Vector[T]{e: e}, nil
}

// ZeroVector returns the zero vector of length n.
//
// Errors:
//   - ErrBadShape when n <= 0.
func ZeroVector[T scalar.Number](n int) (*Vector[T], error) {
	if n <= 0 {
		return nil, vectorErrorf(ctxZeroVector, fmt.Errorf("length %d: %w", n, ErrBadShape))
	}

	return &Vector[T]{e: make([]T, n)}, nil
}

// Len returns the number of elements.
func (v *Vector[T]) Len() int { return len(v.e) }

// At returns element i.
func (v *Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= len(v.e) {
		var zero T
		return zero, vectorErrorf(ctxVecAt, fmt.Errorf("index %d with length %d: %w", i, len(v.e), ErrOutOfRange))
	}

	return v.e[i], nil
}

// Set assigns element i.
func (v *Vector[T]) Set(i int, x T) error {
	if i < 0 || i >= len(v.e) {
		return vectorErrorf(ctxVecSet, fmt.Errorf("index %d with length %d: %w", i, len(v.e), ErrOutOfRange))
	}
	v.e[i] = x

	return nil
}

// Elements returns a copy of the elements.
func (v *Vector[T]) Elements() []T {
	out := make([]T, len(v.e))
	copy(out, v.e)

	return out
}

// Clone returns a deep copy of v.
func (v *Vector[T]) Clone() *Vector[T] {
	return &Vector[T]{e: v.Elements()}
}

// Dot returns the sum of the pairwise products of v and w.
func (v *Vector[T]) Dot(w *Vector[T]) (T, error) {
	var sum T
	if err := ValidateSameLen(v, w); err != nil {
		return sum, vectorErrorf(ctxVecDot, err)
	}
	for i := range v.e {
		sum += v.e[i] * w.e[i]
	}

	return sum, nil
}

// LengthSquared returns v·v.
func (v *Vector[T]) LengthSquared() T {
	var sum T
	for _, x := range v.e {
		sum += x * x
	}

	return sum
}

// zipVec applies f pairwise after validating lengths.
func zipVec[T scalar.Number](tag string, v, w *Vector[T], f func(a, b T) T) (*Vector[T], error) {
	if err := ValidateSameLen(v, w); err != nil {
		return nil, vectorErrorf(tag, err)
	}
	out := make([]T, len(v.e))
	for i := range v.e {
		out[i] = f(v.e[i], w.e[i])
	}

	return &Vector[T]{e: out}, nil
}

// Add returns v + w.
func (v *Vector[T]) Add(w *Vector[T]) (*Vector[T], error) {
	return zipVec(ctxVecAdd, v, w, func(a, b T) T { return a + b })
}

// Sub returns v - w.
func (v *Vector[T]) Sub(w *Vector[T]) (*Vector[T], error) {
	return zipVec(ctxVecSub, v, w, func(a, b T) T { return a - b })
}

// Mul returns the elementwise product of v and w.
func (v *Vector[T]) Mul(w *Vector[T]) (*Vector[T], error) {
	return zipVec(ctxVecMul, v, w, func(a, b T) T { return a * b })
}

// Div returns the elementwise quotient of v and w.
//
// Errors:
//   - ErrDivisionByZero for an integer zero divisor. Float divisors follow
//     IEEE 754 (±Inf or NaN).
func (v *Vector[T]) Div(w *Vector[T]) (*Vector[T], error) {
	if !scalar.IsFloat[T]() && w != nil {
		for i, x := range w.e {
			if x == 0 {
				return nil, vectorErrorf(ctxVecDiv, fmt.Errorf("element %d: %w", i, ErrDivisionByZero))
			}
		}
	}

	return zipVec(ctxVecDiv, v, w, func(a, b T) T { return a / b })
}

// Scale returns v * s.
func (v *Vector[T]) Scale(s T) *Vector[T] {
	out := make([]T, len(v.e))
	for i, x := range v.e {
		out[i] = x * s
	}

	return &Vector[T]{e: out}
}

// Neg returns -v.
func (v *Vector[T]) Neg() *Vector[T] {
	return v.Scale(-1)
}

// Equal reports whether w has the same length and every pair of elements is
// scalar.ApproxEq. A nil operand equals only another nil.
func (v *Vector[T]) Equal(w *Vector[T]) bool {
	if v == nil || w == nil {
		return v == w
	}
	if len(v.e) != len(w.e) {
		return false
	}
	for i := range v.e {
		if !scalar.ApproxEq(v.e[i], w.e[i]) {
			return false
		}
	}

	return true
}

// String formats v as Vector{size: n, elements: [...]}.
func (v *Vector[T]) String() string {
	return fmt.Sprintf("Vector{size: %d, elements: %v}", len(v.e), v.e)
}

// Length returns the Euclidean length of v.
func Length[T scalar.Float](v *Vector[T]) T {
	return scalar.Sqrt(v.LengthSquared())
}

// Normalized returns v scaled to unit length.
//
// Errors:
//   - ErrNilMatrix when v is nil.
//   - ErrZeroLength when v is the zero vector.
func Normalized[T scalar.Float](v *Vector[T]) (*Vector[T], error) {
	if v == nil {
		return nil, vectorErrorf(ctxNormalized, ErrNilMatrix)
	}
	if v.LengthSquared() == 0 {
		return nil, vectorErrorf(ctxNormalized, ErrZeroLength)
	}

	return v.Scale(1 / Length(v)), nil
}

// IsUnit reports whether v has length 1 within scalar.Epsilon.
func IsUnit[T scalar.Float](v *Vector[T]) bool {
	return scalar.ApproxEq(v.LengthSquared(), 1)
}
