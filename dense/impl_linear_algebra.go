// SPDX-License-Identifier: MIT
// Package dense provides the linear-algebra kernels over runtime-shaped
// matrices and vectors: element-wise addition and subtraction, matrix
// multiplication, transpose, scaling, matrix×vector, determinant, adjugate
// and inverse. All functions validate fail-fast and return wrapped sentinels.
//
// Notes:
//   - Results are freshly allocated; operands are never mutated.
//   - Results inherit the numeric policy (Options) of their first operand.

package dense

import (
	"fmt"

	"github.com/katalvlaran/straaljager/scalar"
)

// Operation name constants for unified error wrapping.
const (
	opAdd         = "Add"
	opSub         = "Sub"
	opMul         = "Mul"
	opTranspose   = "Transpose"
	opScale       = "Scale"
	opMatVec      = "MatVec"
	opDeterminant = "Determinant"
	opAdjugate    = "Adjugate"
	opInverse     = "Inverse"
)

// addSub computes element-wise out = a + sign*b for sign ∈ {+1, -1}.
// Shared by Add and Sub for validation, allocation and the flat loop.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func addSub[T scalar.Number](a, b *Dense[T], sign T, opTag string) (*Dense[T], error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	res := newLike(a, a.r, a.c)
	for k := range res.data {
		res.data[k] = a.data[k] + sign*b.data[k]
	}

	return res, nil
}

// Add returns a + b.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
func Add[T scalar.Number](a, b *Dense[T]) (*Dense[T], error) { return addSub(a, b, 1, opAdd) }

// Sub returns a - b.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
func Sub[T scalar.Number](a, b *Dense[T]) (*Dense[T], error) { return addSub(a, b, -1, opSub) }

// Mul performs standard matrix multiplication C = A × B.
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: i→k→j over row-major strides, skipping zero A[i,k].
//
// Inputs:
//   - a: left matrix with shape (r × n).
//   - b: right matrix with shape (n × c).
//
// Returns:
//   - *Dense: new C with shape (r × c).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Determinism:
//   - Fixed loop order i→k→j.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul[T scalar.Number](a, b *Dense[T]) (*Dense[T], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.r, a.c, b.c
	res := newLike(a, aRows, bCols)
	var (
		i, j, k                            int
		av                                 T
		rowOffsetA, rowOffsetB, rowOffsetR int
	)
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		rowOffsetR = i * bCols
		for k = 0; k < aCols; k++ {
			av = a.data[rowOffsetA+k]
			if av == 0 {
				continue
			}
			rowOffsetB = k * bCols
			for j = 0; j < bCols; j++ {
				res.data[rowOffsetR+j] += av * b.data[rowOffsetB+j]
			}
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose[T scalar.Number](m *Dense[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	res := newLike(m, m.c, m.r)
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			res.data[j*m.r+i] = m.data[i*m.c+j]
		}
	}

	return res, nil
}

// Scale returns alpha·m.
//
// Errors:
//   - ErrNilMatrix.
func Scale[T scalar.Number](m *Dense[T], alpha T) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res := newLike(m, m.r, m.c)
	for k, v := range m.data {
		res.data[k] = alpha * v
	}

	return res, nil
}

// MatVec returns y = m·x.
//
// Errors:
//   - ErrNilMatrix (m or x nil), ErrDimensionMismatch (x.Len() != m.Cols()).
//
// Complexity:
//   - Time O(r*c), Space O(r).
func MatVec[T scalar.Number](m *Dense[T], x *Vector[T]) (*Vector[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.c); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	y := make([]T, m.r)
	var sum T
	for i := 0; i < m.r; i++ {
		sum = 0
		base := i * m.c
		for j := 0; j < m.c; j++ {
			sum += m.data[base+j] * x.e[j]
		}
		y[i] = sum
	}

	return &Vector[T]{e: y}, nil
}

// Determinant returns det(m) by fraction-free (Bareiss) elimination.
// Implementation:
//   - Stage 1: ValidateSquareNonNil(m); copy m into a scratch buffer.
//   - Stage 2: for each pivot k, swap in the row with the largest |a[i,k]|
//     (flipping the sign), then update the trailing block with
//     a[i,j] = (a[i,j]·a[k,k] - a[i,k]·a[k,j]) / prev.
//   - Stage 3: the last diagonal entry is the determinant.
//
// Behavior highlights:
//   - Every division is exact for integer element types, so integer
//     determinants are exact (up to overflow of T).
//   - A zero column below the pivot yields det = 0 immediately.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Determinant[T scalar.Number](m *Dense[T]) (T, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	return bareiss(m.data, m.r), nil
}

// bareiss returns the determinant of the n×n row-major matrix a without
// modifying it.
func bareiss[T scalar.Number](src []T, n int) T {
	a := make([]T, len(src))
	copy(a, src)

	var (
		sign T = 1
		prev T = 1
	)
	for k := 0; k < n-1; k++ {
		p := k
		for i := k + 1; i < n; i++ {
			if scalar.Abs(a[i*n+k]) > scalar.Abs(a[p*n+k]) {
				p = i
			}
		}
		if a[p*n+k] == 0 {
			return 0
		}
		if p != k {
			for j := 0; j < n; j++ {
				a[k*n+j], a[p*n+j] = a[p*n+j], a[k*n+j]
			}
			sign = -sign
		}
		pivot := a[k*n+k]
		for i := k + 1; i < n; i++ {
			for j := k + 1; j < n; j++ {
				a[i*n+j] = (a[i*n+j]*pivot - a[i*n+k]*a[k*n+j]) / prev
			}
		}
		prev = pivot
	}

	d := a[(n-1)*n+(n-1)]
	if d == 0 {
		return 0 // no negative zero for floats
	}

	return sign * d
}

// minorOf returns the (n-1)×(n-1) row-major matrix left after removing row
// skipR and column skipC from the n×n matrix a.
func minorOf[T scalar.Number](a []T, n, skipR, skipC int) []T {
	out := make([]T, 0, (n-1)*(n-1))
	for i := 0; i < n; i++ {
		if i == skipR {
			continue
		}
		for j := 0; j < n; j++ {
			if j == skipC {
				continue
			}
			out = append(out, a[i*n+j])
		}
	}

	return out
}

// Adjugate returns the classical adjoint of m: the transpose of its cofactor
// matrix, so that m·Adjugate(m) = det(m)·I for any size.
// The adjugate of a 1×1 matrix is [1].
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n⁵) (one O(n³) determinant per cofactor), Space O(n²).
func Adjugate[T scalar.Number](m *Dense[T]) (*Dense[T], error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}
	n := m.r
	res := newLike(m, n, n)
	if n == 1 {
		res.data[0] = 1

		return res, nil
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			cof := bareiss(minorOf(m.data, n, i, j), n-1)
			if (i+j)%2 == 1 {
				cof = -cof
			}
			res.data[j*n+i] = cof
		}
	}

	return res, nil
}

// Inverse returns Adjugate(m) / det(m).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//   - ErrSingular when det(m) ≈ 0 within the epsilon of m (see WithEpsilon).
//
// Notes:
//   - The singularity test is absolute near zero: a well-conditioned matrix
//     with tiny entries can be reported singular. Scale such inputs first.
func Inverse[T scalar.Float](m *Dense[T]) (*Dense[T], error) {
	det, err := Determinant(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if scalar.ApproxEqEps(det, 0, m.opts.eps) {
		return nil, matrixErrorf(opInverse, fmt.Errorf("det=%v: %w", det, ErrSingular))
	}
	adj, err := Adjugate(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	inv := 1 / det
	for k := range adj.data {
		adj.data[k] *= inv
	}

	return adj, nil
}
