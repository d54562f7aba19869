// SPDX-License-Identifier: MIT

package scalar

import "fmt"

// Clamp limits x to [lower, upper].
// It panics when upper < lower.
func Clamp[T Number](x, lower, upper T) T {
	if upper < lower {
		panic(fmt.Sprintf("scalar: Clamp: upper %v < lower %v", upper, lower))
	}
	if x < lower {
		return lower
	}
	if x > upper {
		return upper
	}

	return x
}

// Mix linearly interpolates between a and b: t=0 yields a, t=1 yields b.
// t is not limited to [0, 1]; see MixClamped.
func Mix[T Float](a, b, t T) T {
	return a + (b-a)*t
}

// MixClamped is Mix with t clamped to [0, 1].
func MixClamped[T Float](a, b, t T) T {
	return Mix(a, b, Clamp(t, 0, 1))
}

// SmoothStep performs cubic Hermite interpolation of x between the edges
// lower and upper, returning a value in [0, 1].
// It panics when upper < lower.
func SmoothStep[T Float](lower, upper, x T) T {
	if upper < lower {
		panic(fmt.Sprintf("scalar: SmoothStep: upper %v < lower %v", upper, lower))
	}
	t := Clamp((x-lower)/(upper-lower), 0, 1)

	return t * t * (3 - 2*t)
}

// SmootherStep is the quintic variant of SmoothStep (zero first and second
// derivatives at both edges).
func SmootherStep[T Float](lower, upper, x T) T {
	t := Clamp((x-lower)/(upper-lower), 0, 1)

	return t * t * t * (t*(t*6-15) + 10)
}
