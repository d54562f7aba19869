// SPDX-License-Identifier: MIT

package scalar

import (
	"math"
	"unsafe"

	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

// Signed is the set of signed integer element types.
type Signed interface {
	constraints.Signed
}

// Float is the set of floating-point element types.
type Float interface {
	constraints.Float
}

// Number is the set of element types accepted by vectors and matrices.
type Number interface {
	constraints.Signed | constraints.Float
}

// Epsilon is the tolerance used by ApproxEq, both as an absolute bound near
// zero and as a relative bound elsewhere.
const Epsilon = 1e-5

// Smallest positive normal values per precision.
const (
	MinNormal32 = 0x1p-126
	MinNormal64 = 0x1p-1022
)

// IsFloat reports whether T is a floating-point type.
func IsFloat[T Number]() bool {
	var half T = 1
	half /= 2

	return half != 0
}

// isSingle reports whether T is four bytes wide. Only meaningful for Float T.
func isSingle[T Number]() bool {
	var z T

	return unsafe.Sizeof(z) == 4
}

// ApproxEq reports whether a and b are equal within Epsilon.
// Integers compare exactly.
func ApproxEq[T Number](a, b T) bool {
	return ApproxEqEps(a, b, Epsilon)
}

// ApproxEqEps is ApproxEq with a caller-supplied tolerance.
// eps is ignored for integer T.
func ApproxEqEps[T Number](a, b T, eps float64) bool {
	if a == b {
		return true
	}
	if !IsFloat[T]() {
		return false
	}
	if isSingle[T]() {
		return approxEq32(float32(a), float32(b), float32(eps))
	}

	return approxEq64(float64(a), float64(b), eps)
}

func approxEq32(a, b, eps float32) bool {
	diff := math32.Abs(a - b)
	if a == 0 || b == 0 || diff < MinNormal32 {
		return diff < eps
	}

	return diff/min(math32.Abs(a)+math32.Abs(b), math.MaxFloat32) < eps
}

func approxEq64(a, b, eps float64) bool {
	diff := math.Abs(a - b)
	if a == 0 || b == 0 || diff < MinNormal64 {
		return diff < eps
	}

	return diff/min(math.Abs(a)+math.Abs(b), math.MaxFloat64) < eps
}

// Sqrt returns the square root of x in the precision of T.
func Sqrt[T Float](x T) T {
	if isSingle[T]() {
		return T(math32.Sqrt(float32(x)))
	}

	return T(math.Sqrt(float64(x)))
}

// Abs returns |x|.
func Abs[T Number](x T) T {
	if x < 0 {
		return -x
	}

	return x
}
