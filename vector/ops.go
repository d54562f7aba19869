// SPDX-License-Identifier: MIT

package vector

import "github.com/katalvlaran/straaljager/scalar"

// zip applies f to each pair of corresponding elements.
func zip[T scalar.Number, S Size](v, w Vector[T, S], f func(a, b T) T) Vector[T, S] {
	var out Vector[T, S]
	for i, n := 0, Len[S](); i < n; i++ {
		out.e[i] = f(v.e[i], w.e[i])
	}

	return out
}

// each applies f to every element.
func each[T scalar.Number, S Size](v Vector[T, S], f func(a T) T) Vector[T, S] {
	var out Vector[T, S]
	for i, n := 0, Len[S](); i < n; i++ {
		out.e[i] = f(v.e[i])
	}

	return out
}

// Add returns v + w.
func (v Vector[T, S]) Add(w Vector[T, S]) Vector[T, S] {
	return zip(v, w, func(a, b T) T { return a + b })
}

// Sub returns v - w.
func (v Vector[T, S]) Sub(w Vector[T, S]) Vector[T, S] {
	return zip(v, w, func(a, b T) T { return a - b })
}

// Mul returns the elementwise product of v and w.
func (v Vector[T, S]) Mul(w Vector[T, S]) Vector[T, S] {
	return zip(v, w, func(a, b T) T { return a * b })
}

// Div returns the elementwise quotient of v and w. An integer zero divisor
// panics; a float one yields ±Inf or NaN.
func (v Vector[T, S]) Div(w Vector[T, S]) Vector[T, S] {
	return zip(v, w, func(a, b T) T { return a / b })
}

// Neg returns -v.
func (v Vector[T, S]) Neg() Vector[T, S] {
	return each(v, func(a T) T { return -a })
}

// Scale returns v * s.
func (v Vector[T, S]) Scale(s T) Vector[T, S] {
	return each(v, func(a T) T { return a * s })
}

// DivScalar returns v / s.
func (v Vector[T, S]) DivScalar(s T) Vector[T, S] {
	return each(v, func(a T) T { return a / s })
}

// AddScalar returns v with s added to every element.
func (v Vector[T, S]) AddScalar(s T) Vector[T, S] {
	return each(v, func(a T) T { return a + s })
}

// SubScalar returns v with s subtracted from every element.
func (v Vector[T, S]) SubScalar(s T) Vector[T, S] {
	return each(v, func(a T) T { return a - s })
}

// ScalarMul returns s * v.
func ScalarMul[T scalar.Number, S Size](s T, v Vector[T, S]) Vector[T, S] {
	return each(v, func(a T) T { return s * a })
}

// ScalarDiv returns the vector of s / v[i].
func ScalarDiv[T scalar.Number, S Size](s T, v Vector[T, S]) Vector[T, S] {
	return each(v, func(a T) T { return s / a })
}

// Cross returns the cross product a × b. Only 3-vectors have one.
func Cross[T scalar.Number](a, b Vector[T, Three]) Vector[T, Three] {
	return New3(
		a.e[1]*b.e[2]-a.e[2]*b.e[1],
		-(a.e[0]*b.e[2] - a.e[2]*b.e[0]),
		a.e[0]*b.e[1]-a.e[1]*b.e[0],
	)
}

// Right returns the unit x axis.
func Right[T scalar.Number]() Vector[T, Three] { return New3[T](1, 0, 0) }

// Up returns the unit y axis.
func Up[T scalar.Number]() Vector[T, Three] { return New3[T](0, 1, 0) }

// Forward returns the unit z axis.
func Forward[T scalar.Number]() Vector[T, Three] { return New3[T](0, 0, 1) }
