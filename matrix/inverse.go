// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"github.com/katalvlaran/straaljager/scalar"
	"github.com/katalvlaran/straaljager/vector"
)

const opTryInverse = "TryInverse"

// grid is a row-major scratch copy of a square matrix, indexed [row][col].
type grid[T scalar.Number] [vector.MaxSize][vector.MaxSize]T

func toGrid[T scalar.Number, S vector.Size](m Matrix[T, S, S]) grid[T] {
	var g grid[T]
	n := vector.Len[S]()
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			g[r][c] = m.cols[c].At(r)
		}
	}

	return g
}

func fromGrid[T scalar.Number, S vector.Size](g grid[T]) Matrix[T, S, S] {
	var m Matrix[T, S, S]
	n := vector.Len[S]()
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			m.cols[c].Set(r, g[r][c])
		}
	}

	return m
}

// Adjoint returns the adjugate of m: the transpose of its cofactor matrix,
// so that m·Adjoint(m) = det(m)·I.
//
// 2×2 and 3×3 use closed forms; 4×4 expands cofactors.
func Adjoint[T scalar.Number, S vector.Size](m Matrix[T, S, S]) Matrix[T, S, S] {
	g := toGrid(m)
	switch n := vector.Len[S](); n {
	case 2:
		return fromGrid[T, S](adjoint2(g))
	case 3:
		return fromGrid[T, S](adjoint3(g))
	default:
		return fromGrid[T, S](adjointN(g, n))
	}
}

func adjoint2[T scalar.Number](m grid[T]) grid[T] {
	var a grid[T]
	a[0][0], a[0][1] = m[1][1], -m[0][1]
	a[1][0], a[1][1] = -m[1][0], m[0][0]

	return a
}

func adjoint3[T scalar.Number](m grid[T]) grid[T] {
	var a grid[T]
	a[0][0] = m[1][1]*m[2][2] - m[1][2]*m[2][1]
	a[0][1] = m[0][2]*m[2][1] - m[0][1]*m[2][2]
	a[0][2] = m[0][1]*m[1][2] - m[0][2]*m[1][1]

	a[1][0] = m[1][2]*m[2][0] - m[1][0]*m[2][2]
	a[1][1] = m[0][0]*m[2][2] - m[2][0]*m[0][2]
	a[1][2] = m[1][0]*m[0][2] - m[0][0]*m[1][2]

	a[2][0] = m[1][0]*m[2][1] - m[1][1]*m[2][0]
	a[2][1] = m[0][1]*m[2][0] - m[0][0]*m[2][1]
	a[2][2] = m[0][0]*m[1][1] - m[1][0]*m[0][1]

	return a
}

// adjointN builds the adjugate of the leading n×n block by cofactor expansion.
func adjointN[T scalar.Number](m grid[T], n int) grid[T] {
	var a grid[T]
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			cof := detN(minor(m, n, r, c), n-1)
			if (r+c)%2 == 1 {
				cof = -cof
			}
			a[c][r] = cof
		}
	}

	return a
}

// minor drops row skipR and column skipC from the leading n×n block.
func minor[T scalar.Number](m grid[T], n, skipR, skipC int) grid[T] {
	var out grid[T]
	for r, i := 0, 0; r < n; r++ {
		if r == skipR {
			continue
		}
		for c, j := 0, 0; c < n; c++ {
			if c == skipC {
				continue
			}
			out[i][j] = m[r][c]
			j++
		}
		i++
	}

	return out
}

// detN is the Laplace expansion along the first row of the leading n×n block.
func detN[T scalar.Number](m grid[T], n int) T {
	switch n {
	case 1:
		return m[0][0]
	case 2:
		return m[0][0]*m[1][1] - m[0][1]*m[1][0]
	}
	var det T
	for c := 0; c < n; c++ {
		term := m[0][c] * detN(minor(m, n, 0, c), n-1)
		if c%2 == 1 {
			term = -term
		}
		det += term
	}

	return det
}

// Determinant returns det(m), computed as Row(0) · Adjoint(m).Column(0).
func Determinant[T scalar.Number, S vector.Size](m Matrix[T, S, S]) T {
	return m.Row(0).Dot(Adjoint(m).Column(0))
}

// Inverse returns Adjoint(m) / det(m).
//
// This is the unchecked fast path: a singular m yields Inf or NaN elements.
// Use TryInverse when m may be singular.
func Inverse[T scalar.Float, S vector.Size](m Matrix[T, S, S]) Matrix[T, S, S] {
	adj := Adjoint(m)
	det := m.Row(0).Dot(adj.Column(0))

	return adj.Scale(1 / det)
}

// TryInverse is Inverse returning ErrSingular when det(m) is ≈ 0 under
// scalar.ApproxEq.
//
// The singularity test is absolute near zero: a well-conditioned matrix with
// small entries, such as 0.01·I in 3×3 (det 1e-6), is reported singular.
// Scale such inputs first.
func TryInverse[T scalar.Float, S vector.Size](m Matrix[T, S, S]) (Matrix[T, S, S], error) {
	adj := Adjoint(m)
	det := m.Row(0).Dot(adj.Column(0))
	if scalar.ApproxEq(det, 0) {
		return Matrix[T, S, S]{}, matrixErrorf(opTryInverse, fmt.Errorf("det=%v: %w", det, ErrSingular))
	}

	return adj.Scale(1 / det), nil
}
