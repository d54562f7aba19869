// SPDX-License-Identifier: MIT

package vector

// MaxSize is the largest dimension a fixed-size Vector can have.
const MaxSize = 4

// Size is the compile-time dimension of a Vector or of a Matrix row/column.
type Size interface {
	Two | Three | Four

	// Len returns the dimension the marker stands for.
	Len() int
}

// Two marks 2-element vectors.
type Two struct{}

// Three marks 3-element vectors.
type Three struct{}

// Four marks 4-element vectors.
type Four struct{}

func (Two) Len() int   { return 2 }
func (Three) Len() int { return 3 }
func (Four) Len() int  { return 4 }

// Len returns the dimension denoted by S.
func Len[S Size]() int {
	var s S

	return s.Len()
}
