// SPDX-License-Identifier: MIT

package vector

import "github.com/xlab/linmath"

// Conversions to and from the GL-style float32 arrays of linmath, for handing
// vectors to code that speaks that API.

// ToLinmath3 converts v to a linmath.Vec3.
func ToLinmath3(v Vec3) linmath.Vec3 {
	return linmath.Vec3{v.e[0], v.e[1], v.e[2]}
}

// FromLinmath3 converts a linmath.Vec3 to a Vec3.
func FromLinmath3(l linmath.Vec3) Vec3 {
	return New3(l[0], l[1], l[2])
}

// ToLinmath4 converts v to a linmath.Vec4.
func ToLinmath4(v Vec4) linmath.Vec4 {
	return linmath.Vec4{v.e[0], v.e[1], v.e[2], v.e[3]}
}

// FromLinmath4 converts a linmath.Vec4 to a Vec4.
func FromLinmath4(l linmath.Vec4) Vec4 {
	return New4(l[0], l[1], l[2], l[3])
}
