// SPDX-License-Identifier: MIT

package vector

import "github.com/katalvlaran/straaljager/scalar"

const (
	opReflect = "Reflect"
	opRefract = "Refract"
)

// assertUnit panics when n is not a unit vector in builds tagged
// straaljager_debug and compiles to nothing otherwise.
func assertUnit[T scalar.Float, S Size](tag string, n Vector[T, S]) {
	if debugAsserts && !IsUnit(n) {
		panic(vectorErrorf(tag, ErrNotUnit))
	}
}

// Reflect reflects the incident vector i about the normal n:
//
//	i - 2·(i·n)·n
//
// n must be unit length. The result is wrong otherwise; only builds tagged
// straaljager_debug check it.
func Reflect[T scalar.Float, S Size](i, n Vector[T, S]) Vector[T, S] {
	assertUnit(opReflect, n)

	return i.Sub(n.Scale(2 * i.Dot(n)))
}

// Refract bends the incident vector i through a surface with unit normal n,
// where eta is the ratio of refractive indices (n1/n2).
//
//	k = 1 - eta²·(1 - (n·i)²)
//	t = eta·i - (eta·(n·i) + √k)·n
//
// The second result is false when k < 0: total internal reflection, no
// transmitted ray. n must be unit length, as for Reflect.
func Refract[T scalar.Float, S Size](i, n Vector[T, S], eta T) (Vector[T, S], bool) {
	assertUnit(opRefract, n)

	nDotI := n.Dot(i)
	k := 1 - eta*eta*(1-nDotI*nDotI)
	if k < 0 {
		return Vector[T, S]{}, false
	}

	return i.Scale(eta).Sub(n.Scale(eta*nDotI + scalar.Sqrt(k))), true
}
