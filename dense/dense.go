// SPDX-License-Identifier: MIT

// Package dense - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Enforce the numeric policy (optional rejection of NaN/Inf) from a single source of truth.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); Row/Col: O(c)/O(r).

package dense

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/straaljager/scalar"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"
	ctxSet      = "Set"
	ctxRow      = "Row"
	ctxCol      = "Col"
	ctxNew      = "NewDense"
	ctxFromRows = "FromRows"
	ctxFromFlat = "FromFlat"
	ctxIdentity = "Identity"
)

// ---------- Formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with the Dense method and the offending coordinates.
// Format: "Dense.<method>(row,col): <err>".
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// isNonFinite reports NaN or ±Inf. Always false for integer T.
func isNonFinite[T scalar.Number](x T) bool {
	f := float64(x)

	return math.IsNaN(f) || math.IsInf(f, 0)
}

// Dense is a row-major matrix whose shape is chosen at run time.
//   - r,c hold dimensions (rows, cols), both > 0.
//   - data is a flat buffer of length r*c (offset = i*c + j).
//   - opts is the numeric policy captured at construction.
type Dense[T scalar.Number] struct {
	r, c int
	data []T
	opts Options
}

var _ fmt.Stringer = (*Dense[float64])(nil)

// NewDense creates an r×c zero matrix.
//
// Errors:
//   - ErrBadShape when rows<=0 or cols<=0.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense[T scalar.Number](rows, cols int, opts ...Option) (*Dense[T], error) {
	if err := validateShape(rows, cols); err != nil {
		return nil, matrixErrorf(ctxNew, err)
	}

	return &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols), opts: gatherOptions(opts...)}, nil
}

// FromRows copies a non-ragged slice of rows into a new matrix.
//
// Errors:
//   - ErrBadShape for no rows, an empty first row, or rows of differing length.
//   - ErrNaNInf for a non-finite element under the validating policy.
func FromRows[T scalar.Number](rows [][]T, opts ...Option) (*Dense[T], error) {
	if len(rows) == 0 {
		return nil, matrixErrorf(ctxFromRows, ErrBadShape)
	}
	r, c := len(rows), len(rows[0])
	m, err := NewDense[T](r, c, opts...)
	if err != nil {
		return nil, matrixErrorf(ctxFromRows, err)
	}
	for i, row := range rows {
		if len(row) != c {
			return nil, matrixErrorf(ctxFromRows, fmt.Errorf("row %d has %d elements, want %d: %w", i, len(row), c, ErrBadShape))
		}
		for j, v := range row {
			if err = m.Set(i, j, v); err != nil {
				return nil, matrixErrorf(ctxFromRows, err)
			}
		}
	}

	return m, nil
}

// FromFlat copies a row-major buffer of exactly rows*cols elements.
//
// Errors:
//   - ErrBadShape for an invalid shape or a buffer of the wrong length.
//   - ErrNaNInf for a non-finite element under the validating policy.
func FromFlat[T scalar.Number](rows, cols int, data []T, opts ...Option) (*Dense[T], error) {
	m, err := NewDense[T](rows, cols, opts...)
	if err != nil {
		return nil, matrixErrorf(ctxFromFlat, err)
	}
	if len(data) != rows*cols {
		return nil, matrixErrorf(ctxFromFlat, fmt.Errorf("got %d elements for %dx%d: %w", len(data), rows, cols, ErrBadShape))
	}
	if m.opts.validateNaNInf {
		for k, v := range data {
			if isNonFinite(v) {
				return nil, denseErrorf(ctxFromFlat, k/cols, k%cols, ErrNaNInf)
			}
		}
	}
	copy(m.data, data)

	return m, nil
}

// Identity returns the n×n identity matrix.
func Identity[T scalar.Number](n int, opts ...Option) (*Dense[T], error) {
	m, err := NewDense[T](n, n, opts...)
	if err != nil {
		return nil, matrixErrorf(ctxIdentity, err)
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// Rows returns the number of rows.
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense[T]) Cols() int { return m.c }

// Shape returns (rows, cols).
func (m *Dense[T]) Shape() (rows, cols int) { return m.r, m.c }

// Options returns the numeric policy of m.
func (m *Dense[T]) Options() Options { return m.opts }

// indexOf maps (row, col) to the flat offset or reports ErrOutOfRange.
func (m *Dense[T]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns the element at (row, col).
//
// Errors:
//   - ErrOutOfRange for an index outside the matrix.
func (m *Dense[T]) At(row, col int) (T, error) {
	k, err := m.indexOf(row, col)
	if err != nil {
		var zero T
		return zero, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[k], nil
}

// Set assigns v at (row, col).
//
// Errors:
//   - ErrOutOfRange for an index outside the matrix.
//   - ErrNaNInf for a non-finite v under the validating policy.
func (m *Dense[T]) Set(row, col int, v T) error {
	k, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.opts.validateNaNInf && isNonFinite(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[k] = v

	return nil
}

// Row returns a copy of row i.
func (m *Dense[T]) Row(i int) ([]T, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]T, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Col returns a copy of column j.
func (m *Dense[T]) Col(j int) ([]T, error) {
	if j < 0 || j >= m.c {
		return nil, denseErrorf(ctxCol, 0, j, ErrOutOfRange)
	}
	out := make([]T, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return out, nil
}

// Elements returns a row-major copy of the data.
func (m *Dense[T]) Elements() []T {
	out := make([]T, len(m.data))
	copy(out, m.data)

	return out
}

// Clone returns a deep copy carrying the same policy.
func (m *Dense[T]) Clone() *Dense[T] {
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return &Dense[T]{r: m.r, c: m.c, data: cp, opts: m.opts}
}

// Equal reports whether o has the same shape and every pair of elements is
// equal within the epsilon of m. A nil operand equals only another nil.
func (m *Dense[T]) Equal(o *Dense[T]) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c {
		return false
	}
	for k := range m.data {
		if !scalar.ApproxEqEps(m.data[k], o.data[k], m.opts.eps) {
			return false
		}
	}

	return true
}

// String renders one bracketed line per row for diagnostics.
func (m *Dense[T]) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			fmt.Fprintf(&b, "%v", m.data[base+j])
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// newLike allocates a zero r×c result carrying the policy of src.
func newLike[T scalar.Number](src *Dense[T], rows, cols int) *Dense[T] {
	return &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols), opts: src.opts}
}
