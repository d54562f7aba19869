// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"

	"github.com/katalvlaran/straaljager/scalar"
)

// Operation tags used in panic values.
const (
	opAt        = "At"
	opSet       = "Set"
	opFromSlice = "FromSlice"
)

// Vector is a fixed-size vector of S elements of type T.
// The zero value is the zero vector.
type Vector[T scalar.Number, S Size] struct {
	e [MaxSize]T
}

// Common instantiations.
type (
	Vec2 = Vector[float32, Two]
	Vec3 = Vector[float32, Three]
	Vec4 = Vector[float32, Four]

	DVec2 = Vector[float64, Two]
	DVec3 = Vector[float64, Three]
	DVec4 = Vector[float64, Four]

	IVec2 = Vector[int32, Two]
	IVec3 = Vector[int32, Three]
	IVec4 = Vector[int32, Four]
)

// FromSlice builds a vector from exactly S elements.
// It panics with ErrDimensionMismatch when len(e) != S.
//
//	v := vector.FromSlice[vector.Three](1.0, 2.0, 3.0)
func FromSlice[S Size, T scalar.Number](e ...T) Vector[T, S] {
	n := Len[S]()
	if len(e) != n {
		panic(vectorErrorf(opFromSlice, fmt.Errorf("got %d elements, want %d: %w", len(e), n, ErrDimensionMismatch)))
	}
	var v Vector[T, S]
	copy(v.e[:n], e)

	return v
}

// Zero returns the zero vector.
func Zero[T scalar.Number, S Size]() Vector[T, S] {
	return Vector[T, S]{}
}

// New2 returns the 2-vector (x, y).
func New2[T scalar.Number](x, y T) Vector[T, Two] {
	return Vector[T, Two]{e: [MaxSize]T{x, y}}
}

// New3 returns the 3-vector (x, y, z).
func New3[T scalar.Number](x, y, z T) Vector[T, Three] {
	return Vector[T, Three]{e: [MaxSize]T{x, y, z}}
}

// New4 returns the 4-vector (x, y, z, w).
func New4[T scalar.Number](x, y, z, w T) Vector[T, Four] {
	return Vector[T, Four]{e: [MaxSize]T{x, y, z, w}}
}

// Size returns S.
func (v Vector[T, S]) Size() int { return Len[S]() }

func checkIndex[S Size](tag string, i int) {
	if n := Len[S](); i < 0 || i >= n {
		panic(vectorErrorf(tag, fmt.Errorf("index %d with size %d: %w", i, n, ErrOutOfRange)))
	}
}

// At returns element i. It panics with ErrOutOfRange unless 0 <= i < S.
func (v Vector[T, S]) At(i int) T {
	checkIndex[S](opAt, i)

	return v.e[i]
}

// Set assigns element i. It panics with ErrOutOfRange unless 0 <= i < S.
func (v *Vector[T, S]) Set(i int, x T) {
	checkIndex[S](opSet, i)
	v.e[i] = x
}

// X returns element 0.
func (v Vector[T, S]) X() T { return v.At(0) }

// Y returns element 1.
func (v Vector[T, S]) Y() T { return v.At(1) }

// Z returns element 2; it panics for 2-vectors.
func (v Vector[T, S]) Z() T { return v.At(2) }

// W returns element 3; it panics for 2- and 3-vectors.
func (v Vector[T, S]) W() T { return v.At(3) }

// Elements returns a copy of the S elements.
func (v Vector[T, S]) Elements() []T {
	out := make([]T, Len[S]())
	copy(out, v.e[:])

	return out
}

// Dot returns the sum of the pairwise products of v and w.
func (v Vector[T, S]) Dot(w Vector[T, S]) T {
	var sum T
	for i, n := 0, Len[S](); i < n; i++ {
		sum += v.e[i] * w.e[i]
	}

	return sum
}

// LengthSquared returns v·v.
func (v Vector[T, S]) LengthSquared() T { return v.Dot(v) }

// Equal reports whether every pair of elements is scalar.ApproxEq.
func (v Vector[T, S]) Equal(w Vector[T, S]) bool {
	for i, n := 0, Len[S](); i < n; i++ {
		if !scalar.ApproxEq(v.e[i], w.e[i]) {
			return false
		}
	}

	return true
}

// String formats v as Vector{size: S, elements: [...]}.
func (v Vector[T, S]) String() string {
	n := Len[S]()

	return fmt.Sprintf("Vector{size: %d, elements: %v}", n, v.e[:n])
}
