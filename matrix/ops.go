// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/katalvlaran/straaljager/scalar"
	"github.com/katalvlaran/straaljager/vector"
)

// Mul returns the product a·b of an R×C and a C×S matrix.
// Shared inner dimension C is enforced by the type system.
//
// Complexity: O(R·C·S).
func Mul[T scalar.Number, R, C, S vector.Size](a Matrix[T, R, C], b Matrix[T, C, S]) Matrix[T, R, S] {
	var out Matrix[T, R, S]
	for s, n := 0, vector.Len[S](); s < n; s++ {
		out.cols[s] = a.MulVec(b.cols[s])
	}

	return out
}

// MulVec returns m·v: the combination of the columns of m weighted by v.
func (m Matrix[T, R, C]) MulVec(v vector.Vector[T, C]) vector.Vector[T, R] {
	var out vector.Vector[T, R]
	for c, n := 0, vector.Len[C](); c < n; c++ {
		out = out.Add(m.cols[c].Scale(v.At(c)))
	}

	return out
}

// Add returns m + o.
func (m Matrix[T, R, C]) Add(o Matrix[T, R, C]) Matrix[T, R, C] {
	for c, n := 0, vector.Len[C](); c < n; c++ {
		m.cols[c] = m.cols[c].Add(o.cols[c])
	}

	return m
}

// Sub returns m - o.
func (m Matrix[T, R, C]) Sub(o Matrix[T, R, C]) Matrix[T, R, C] {
	for c, n := 0, vector.Len[C](); c < n; c++ {
		m.cols[c] = m.cols[c].Sub(o.cols[c])
	}

	return m
}

// Neg returns -m.
func (m Matrix[T, R, C]) Neg() Matrix[T, R, C] {
	for c, n := 0, vector.Len[C](); c < n; c++ {
		m.cols[c] = m.cols[c].Neg()
	}

	return m
}

// Scale returns m with every element multiplied by s.
func (m Matrix[T, R, C]) Scale(s T) Matrix[T, R, C] {
	for c, n := 0, vector.Len[C](); c < n; c++ {
		m.cols[c] = m.cols[c].Scale(s)
	}

	return m
}

// DivScalar returns m with every element divided by s.
func (m Matrix[T, R, C]) DivScalar(s T) Matrix[T, R, C] {
	for c, n := 0, vector.Len[C](); c < n; c++ {
		m.cols[c] = m.cols[c].DivScalar(s)
	}

	return m
}
