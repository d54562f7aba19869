// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/katalvlaran/straaljager/vector"
	"github.com/xlab/linmath"
)

// ToLinmath converts m to the column-major linmath.Mat4x4, where l[c][r] is
// the element in row r and column c.
func ToLinmath(m Mat4) linmath.Mat4x4 {
	var l linmath.Mat4x4
	for c := 0; c < 4; c++ {
		l[c] = vector.ToLinmath4(m.cols[c])
	}

	return l
}

// FromLinmath converts a column-major linmath.Mat4x4 to a Mat4.
func FromLinmath(l linmath.Mat4x4) Mat4 {
	var m Mat4
	for c := 0; c < 4; c++ {
		m.cols[c] = vector.FromLinmath4(l[c])
	}

	return m
}
