// SPDX-License-Identifier: MIT
// Package dense_test contains unit tests for the linear-algebra kernels.
package dense_test

import (
	"testing"

	"github.com/katalvlaran/straaljager/dense"
	"github.com/katalvlaran/straaljager/scalar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddSub(t *testing.T) {
	a := MustRows(t, [][]int32{{1, 2, 3}, {4, 5, 6}})
	b := MustRows(t, [][]int32{{6, 5, 4}, {3, 2, 1}})

	sum, err := dense.Add(a, b)
	require.NoError(t, err)
	assert.Equal(t, []int32{7, 7, 7, 7, 7, 7}, sum.Elements())

	diff, err := dense.Sub(sum, b)
	require.NoError(t, err)
	assert.True(t, diff.Equal(a))
	assert.Equal(t, []int32{1, 2, 3, 4, 5, 6}, a.Elements(), "operands are not mutated")

	_, err = dense.Add(a, MustDense[int32](t, 3, 2))
	require.ErrorIs(t, err, dense.ErrDimensionMismatch)
	_, err = dense.Sub(nil, a)
	require.ErrorIs(t, err, dense.ErrNilMatrix)
}

func TestMul(t *testing.T) {
	a := MustRows(t, [][]int32{{1, 64}, {16, 25}})
	b := MustRows(t, [][]int32{{12, -3}, {54, 34}})

	got, err := dense.Mul(a, b)
	require.NoError(t, err)
	assert.Equal(t, []int32{3468, 2173, 1542, 802}, got.Elements())

	// Non-square: (2×3)·(3×1) = 2×1.
	c := MustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	d := MustRows(t, [][]float64{{1}, {0}, {-1}})
	cd, err := dense.Mul(c, d)
	require.NoError(t, err)
	r, k := cd.Shape()
	assert.Equal(t, [2]int{2, 1}, [2]int{r, k})
	assert.Equal(t, []float64{-2, -2}, cd.Elements())

	_, err = dense.Mul(c, c)
	require.ErrorIs(t, err, dense.ErrDimensionMismatch)
}

func TestMul_Associative(t *testing.T) {
	a := MustRows(t, [][]int64{{1, 2}, {3, 4}})
	b := MustRows(t, [][]int64{{0, -1}, {5, 2}})
	c := MustRows(t, [][]int64{{7, 1}, {-3, 2}})

	ab, _ := dense.Mul(a, b)
	abc1, _ := dense.Mul(ab, c)
	bc, _ := dense.Mul(b, c)
	abc2, _ := dense.Mul(a, bc)
	assert.Equal(t, abc1.Elements(), abc2.Elements())

	ba, _ := dense.Mul(b, a)
	assert.NotEqual(t, ab.Elements(), ba.Elements(), "multiplication does not commute")
}

func TestTranspose(t *testing.T) {
	m := MustRows(t, [][]int32{{0, 1}, {2, 3}, {4, 5}})

	tr, err := dense.Transpose(m)
	require.NoError(t, err)
	assert.Equal(t, 2, tr.Rows())
	assert.Equal(t, 3, tr.Cols())
	assert.Equal(t, []int32{0, 2, 4, 1, 3, 5}, tr.Elements())

	back, err := dense.Transpose(tr)
	require.NoError(t, err)
	assert.True(t, back.Equal(m))

	_, err = dense.Transpose[int32](nil)
	require.ErrorIs(t, err, dense.ErrNilMatrix)
}

func TestScaleMatVec(t *testing.T) {
	m := MustRows(t, [][]float64{{1, 2}, {3, 4}, {5, 6}})

	s, err := dense.Scale(m, 0.5)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, 1, 1.5, 2, 2.5, 3}, s.Elements())

	y, err := dense.MatVec(m, MustVector(t, 1.0, -1.0))
	require.NoError(t, err)
	assert.Equal(t, []float64{-1, -1, -1}, y.Elements())

	_, err = dense.MatVec(m, MustVector(t, 1.0, 2.0, 3.0))
	require.ErrorIs(t, err, dense.ErrDimensionMismatch)
	_, err = dense.MatVec(m, nil)
	require.ErrorIs(t, err, dense.ErrNilMatrix)
}

func TestDeterminant(t *testing.T) {
	tests := []struct {
		name string
		rows [][]int64
		want int64
	}{
		{"1x1", [][]int64{{-7}}, -7},
		{"2x2", [][]int64{{1, 64}, {16, 25}}, -999},
		{"3x3", [][]int64{{6, 1, 1}, {4, -2, 5}, {2, 8, 7}}, -306},
		{"3x3 singular", [][]int64{{1, 2, 3}, {2, 4, 6}, {1, 0, 1}}, 0},
		{"4x4 triangular", [][]int64{{2, 0, 0, 0}, {1, 3, 0, 0}, {4, 5, 6, 0}, {7, 8, 9, 10}}, 360},
		{"4x4 row swap", [][]int64{{1, 3, 0, 0}, {2, 0, 0, 0}, {4, 5, 6, 0}, {7, 8, 9, 10}}, -360},
		{"zero leading pivot", [][]int64{{0, 1}, {1, 0}}, -1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			det, err := dense.Determinant(MustRows(t, tc.rows))
			require.NoError(t, err)
			assert.Equal(t, tc.want, det)
		})
	}

	_, err := dense.Determinant(MustDense[int64](t, 2, 3))
	require.ErrorIs(t, err, dense.ErrNonSquare)
}

func TestDeterminant_Multiplicative(t *testing.T) {
	for n := 1; n <= 6; n++ {
		a := RandFilledDense(t, n, n, int64(10+n))
		b := RandFilledDense(t, n, n, int64(20+n))
		ab, err := dense.Mul(a, b)
		require.NoError(t, err)

		detA, _ := dense.Determinant(a)
		detB, _ := dense.Determinant(b)
		detAB, _ := dense.Determinant(ab)
		assert.True(t, scalar.ApproxEq(detA*detB, detAB), "n=%d: %v·%v vs %v", n, detA, detB, detAB)
	}
}

func TestAdjugate(t *testing.T) {
	adj, err := dense.Adjugate(MustRows(t, [][]int32{{1, 64}, {16, 25}}))
	require.NoError(t, err)
	assert.Equal(t, []int32{25, -64, -16, 1}, adj.Elements())

	one, err := dense.Adjugate(MustRows(t, [][]int32{{5}}))
	require.NoError(t, err)
	assert.Equal(t, []int32{1}, one.Elements())

	// m·adj(m) = det(m)·I for every size.
	for _, rows := range [][][]int64{
		{{6, 1, 1}, {4, -2, 5}, {2, 8, 7}},
		{{1, 2, 3}, {2, 4, 6}, {1, 0, 1}},
		{{2, -1, 0, 3}, {1, 3, 0, 0}, {4, 5, 6, 1}, {7, 8, -9, 10}},
		{{1, 0, 2, 0, 1}, {0, 3, 0, 1, 0}, {2, 0, 1, 0, 0}, {0, 1, 0, 2, 1}, {1, 0, 0, 1, 3}},
	} {
		m := MustRows(t, rows)
		a, err := dense.Adjugate(m)
		require.NoError(t, err)
		det, err := dense.Determinant(m)
		require.NoError(t, err)
		id, err := dense.Identity[int64](m.Rows())
		require.NoError(t, err)
		want, err := dense.Scale(id, det)
		require.NoError(t, err)

		got, err := dense.Mul(m, a)
		require.NoError(t, err)
		assert.Equal(t, want.Elements(), got.Elements(), "m=%v", rows)
	}
}

func TestInverse(t *testing.T) {
	for n := 1; n <= 6; n++ {
		m := diagDominant(t, n, int64(n))
		inv, err := dense.Inverse(m)
		require.NoError(t, err)

		prod, err := dense.Mul(m, inv)
		require.NoError(t, err)
		id, _ := dense.Identity[float64](n)
		assert.True(t, prod.Equal(id), "n=%d: m·m⁻¹ =\n%v", n, prod)
	}

	inv, err := dense.Inverse(MustRows(t, [][]float32{{4, 7}, {2, 6}}))
	require.NoError(t, err)
	assert.True(t, inv.Equal(MustRows(t, [][]float32{{0.6, -0.7}, {-0.2, 0.4}})), "got\n%v", inv)
}

func TestInverse_Errors(t *testing.T) {
	_, err := dense.Inverse(MustRows(t, [][]float64{{1, 2}, {2, 4}}))
	require.ErrorIs(t, err, dense.ErrSingular)

	_, err = dense.Inverse(MustDense[float64](t, 2, 3))
	require.ErrorIs(t, err, dense.ErrNonSquare)

	_, err = dense.Inverse[float64](nil)
	require.ErrorIs(t, err, dense.ErrNilMatrix)

	// A tiny determinant is singular under the default epsilon but not under
	// a tighter one.
	tiny := [][]float64{{1e-3, 0}, {0, 1e-3}}
	_, err = dense.Inverse(MustRows(t, tiny))
	require.ErrorIs(t, err, dense.ErrSingular)

	m, err := dense.FromRows(tiny, dense.WithEpsilon(1e-12))
	require.NoError(t, err)
	inv, err := dense.Inverse(m)
	require.NoError(t, err)
	assert.InDelta(t, 1000, MustAt(t, inv, 0, 0), 1e-9)
}
