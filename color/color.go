// SPDX-License-Identifier: MIT

// Package color represents colors as 4-component float32 vectors (r, g, b, a)
// with components nominally in [0, 1].
package color

import (
	stdcolor "image/color"

	"github.com/chewxy/math32"

	"github.com/katalvlaran/straaljager/scalar"
	"github.com/katalvlaran/straaljager/vector"
)

// Color is an RGBA color; X, Y, Z and W hold red, green, blue and alpha.
// All vector arithmetic applies, e.g. blending with vector.Lerp.
type Color = vector.Vec4

// Common opaque colors.
var (
	Black = FromRGB(0, 0, 0)
	White = FromRGB(1, 1, 1)
)

// FromRGB returns an opaque color.
func FromRGB(r, g, b float32) Color {
	return vector.New4(r, g, b, 1)
}

// FromRGBA returns a color with explicit alpha.
func FromRGBA(r, g, b, a float32) Color {
	return vector.New4(r, g, b, a)
}

// Clamped limits every component of c to [0, 1].
func Clamped(c Color) Color {
	return vector.New4(
		scalar.Clamp(c.X(), 0, 1),
		scalar.Clamp(c.Y(), 0, 1),
		scalar.Clamp(c.Z(), 0, 1),
		scalar.Clamp(c.W(), 0, 1),
	)
}

// ToNRGBA converts c to a non-premultiplied 8-bit color, clamping first and
// rounding to nearest.
func ToNRGBA(c Color) stdcolor.NRGBA {
	c = Clamped(c)

	return stdcolor.NRGBA{R: to8(c.X()), G: to8(c.Y()), B: to8(c.Z()), A: to8(c.W())}
}

// to8 expects x in [0, 1]; NaN maps to 0.
func to8(x float32) uint8 {
	if math32.IsNaN(x) {
		return 0
	}

	return uint8(x*255 + 0.5)
}

// FromStd converts any image/color value to a Color.
func FromStd(c stdcolor.Color) Color {
	n := stdcolor.NRGBAModel.Convert(c).(stdcolor.NRGBA)

	return FromRGBA(float32(n.R)/255, float32(n.G)/255, float32(n.B)/255, float32(n.A)/255)
}
