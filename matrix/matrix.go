// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/straaljager/scalar"
	"github.com/katalvlaran/straaljager/vector"
)

// Operation tags used in panic values and errors.
const (
	opNew       = "New"
	opFromRows  = "FromRows"
	opAt        = "At"
	opSet       = "Set"
	opColumn    = "Column"
	opSetColumn = "SetColumn"
	opRow       = "Row"
	opFromDense = "FromDense"
)

// Formatting literals for String.
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Matrix is an R×C matrix of T stored as C column vectors.
// The zero value is the zero matrix.
type Matrix[T scalar.Number, R, C vector.Size] struct {
	cols [vector.MaxSize]vector.Vector[T, R]
}

// Common square instantiations.
type (
	Mat2 = Matrix[float32, vector.Two, vector.Two]
	Mat3 = Matrix[float32, vector.Three, vector.Three]
	Mat4 = Matrix[float32, vector.Four, vector.Four]

	DMat2 = Matrix[float64, vector.Two, vector.Two]
	DMat3 = Matrix[float64, vector.Three, vector.Three]
	DMat4 = Matrix[float64, vector.Four, vector.Four]

	IMat2 = Matrix[int32, vector.Two, vector.Two]
	IMat3 = Matrix[int32, vector.Three, vector.Three]
	IMat4 = Matrix[int32, vector.Four, vector.Four]
)

// New builds a matrix from exactly C columns.
// It panics with ErrDimensionMismatch for any other count.
//
//	m := matrix.New[vector.Two](vector.New2(1.0, 3.0), vector.New2(2.0, 4.0))
func New[C vector.Size, T scalar.Number, R vector.Size](columns ...vector.Vector[T, R]) Matrix[T, R, C] {
	n := vector.Len[C]()
	if len(columns) != n {
		panic(matrixErrorf(opNew, fmt.Errorf("got %d columns, want %d: %w", len(columns), n, ErrDimensionMismatch)))
	}
	var m Matrix[T, R, C]
	copy(m.cols[:n], columns)

	return m
}

// FromRows builds a matrix from R*C elements listed row by row.
// It panics with ErrDimensionMismatch for any other count.
func FromRows[R, C vector.Size, T scalar.Number](elements ...T) Matrix[T, R, C] {
	rows, cols := vector.Len[R](), vector.Len[C]()
	if len(elements) != rows*cols {
		panic(matrixErrorf(opFromRows, fmt.Errorf("got %d elements, want %d: %w", len(elements), rows*cols, ErrDimensionMismatch)))
	}
	var m Matrix[T, R, C]
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			m.cols[c].Set(r, elements[r*cols+c])
		}
	}

	return m
}

// Zero returns the R×C zero matrix.
func Zero[T scalar.Number, R, C vector.Size]() Matrix[T, R, C] {
	return Matrix[T, R, C]{}
}

// Identity returns the S×S identity matrix.
func Identity[T scalar.Number, S vector.Size]() Matrix[T, S, S] {
	var m Matrix[T, S, S]
	for i, n := 0, vector.Len[S](); i < n; i++ {
		m.cols[i].Set(i, 1)
	}

	return m
}

// Rows returns R.
func (m Matrix[T, R, C]) Rows() int { return vector.Len[R]() }

// Cols returns C.
func (m Matrix[T, R, C]) Cols() int { return vector.Len[C]() }

func checkRow[R vector.Size](tag string, i int) {
	if n := vector.Len[R](); i < 0 || i >= n {
		panic(matrixErrorf(tag, fmt.Errorf("row %d with %d rows: %w", i, n, ErrOutOfRange)))
	}
}

func checkCol[C vector.Size](tag string, i int) {
	if n := vector.Len[C](); i < 0 || i >= n {
		panic(matrixErrorf(tag, fmt.Errorf("column %d with %d columns: %w", i, n, ErrOutOfRange)))
	}
}

// Column returns column i. It panics with ErrOutOfRange unless 0 <= i < C.
func (m Matrix[T, R, C]) Column(i int) vector.Vector[T, R] {
	checkCol[C](opColumn, i)

	return m.cols[i]
}

// SetColumn replaces column i. It panics with ErrOutOfRange unless 0 <= i < C.
func (m *Matrix[T, R, C]) SetColumn(i int, v vector.Vector[T, R]) {
	checkCol[C](opSetColumn, i)
	m.cols[i] = v
}

// Row gathers row i into a vector. It panics with ErrOutOfRange unless
// 0 <= i < R.
func (m Matrix[T, R, C]) Row(i int) vector.Vector[T, C] {
	checkRow[R](opRow, i)
	var out vector.Vector[T, C]
	for c, n := 0, vector.Len[C](); c < n; c++ {
		out.Set(c, m.cols[c].At(i))
	}

	return out
}

// At returns the element in the given row and column.
// It panics with ErrOutOfRange when either index is outside the matrix.
func (m Matrix[T, R, C]) At(row, col int) T {
	checkRow[R](opAt, row)
	checkCol[C](opAt, col)

	return m.cols[col].At(row)
}

// Set assigns the element in the given row and column.
// It panics with ErrOutOfRange when either index is outside the matrix.
func (m *Matrix[T, R, C]) Set(row, col int, x T) {
	checkRow[R](opSet, row)
	checkCol[C](opSet, col)
	m.cols[col].Set(row, x)
}

// Transposed returns the C×R matrix whose columns are the rows of m.
func (m Matrix[T, R, C]) Transposed() Matrix[T, C, R] {
	var out Matrix[T, C, R]
	for r, n := 0, vector.Len[R](); r < n; r++ {
		out.cols[r] = m.Row(r)
	}

	return out
}

// Equal reports whether every pair of elements is scalar.ApproxEq.
func (m Matrix[T, R, C]) Equal(o Matrix[T, R, C]) bool {
	for c, n := 0, vector.Len[C](); c < n; c++ {
		if !m.cols[c].Equal(o.cols[c]) {
			return false
		}
	}

	return true
}

// String renders one bracketed line per row, e.g. "[1, 2]\n[3, 4]\n".
func (m Matrix[T, R, C]) String() string {
	var b strings.Builder
	rows, cols := vector.Len[R](), vector.Len[C]()
	for r := 0; r < rows; r++ {
		b.WriteString(_fmtRowOpen)
		for c := 0; c < cols; c++ {
			fmt.Fprintf(&b, "%v", m.cols[c].At(r))
			if c+1 < cols {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
