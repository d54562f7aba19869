// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/straaljager/dense"
	"github.com/katalvlaran/straaljager/matrix"
	"github.com/katalvlaran/straaljager/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xlab/linmath"
)

func TestDenseRoundTrip(t *testing.T) {
	m := matrix.FromRows[vector.Two, vector.Three, float32](
		1, 2, 3,
		4, 5, 6,
	)

	d, err := m.ToDense()
	require.NoError(t, err)
	assert.Equal(t, 2, d.Rows())
	assert.Equal(t, 3, d.Cols())
	assert.Equal(t, []float32{1, 2, 3, 4, 5, 6}, d.Elements())

	back, err := matrix.FromDense[vector.Two, vector.Three](d)
	require.NoError(t, err)
	assert.Equal(t, m, back)

	_, err = matrix.FromDense[vector.Three, vector.Two](d)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.FromDense[vector.Two, vector.Two, float32](nil)
	require.ErrorIs(t, err, dense.ErrNilMatrix)
}

// The fixed-size and runtime-shaped determinants agree.
func TestDeterminant_MatchesDense(t *testing.T) {
	m := matrix.FromRows[vector.Four, vector.Four, float64](
		1, 64, 16, 25,
		4, -4, 5, -4,
		2, 54, -4, 43,
		-59, 23, 59, -14,
	)
	d, err := m.ToDense()
	require.NoError(t, err)

	want, err := dense.Determinant(d)
	require.NoError(t, err)
	assert.InDelta(t, want, matrix.Determinant(m), 1e-6)
	assert.InDelta(t, 535393, want, 1e-6)

	adj, err := dense.Adjugate(d)
	require.NoError(t, err)
	fixed, err := matrix.FromDense[vector.Four, vector.Four](adj)
	require.NoError(t, err)
	requireMatEqual(t, matrix.Adjoint(m), fixed)
}

func TestLinmathRoundTrip(t *testing.T) {
	m := matrix.FromRows[vector.Four, vector.Four, float32](
		1, 0, 0, 7,
		0, 1, 0, 8,
		0, 0, 1, 9,
		0, 0, 0, 1,
	)
	l := matrix.ToLinmath(m)

	// Column-major: the translation sits in the last column.
	assert.Equal(t, linmath.Vec4{7, 8, 9, 1}, l[3])
	assert.Equal(t, m, matrix.FromLinmath(l))
}
