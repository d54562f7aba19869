// SPDX-License-Identifier: MIT

// Package texture maps (u, v) surface coordinates to colors.
//
// Three samplers are provided:
//
//	Constant  a single color everywhere.
//	Checker   alternates two colors on a sin(u·scale)·sin(v·scale) pattern.
//	Image     nearest-texel lookup into an in-memory image.
//
// Coordinates are nominally in [0, 1]; Image clamps anything outside that
// range to the border texels, the procedural samplers accept any value.
package texture

import (
	"image"

	"github.com/chewxy/math32"

	"github.com/katalvlaran/straaljager/color"
	"github.com/katalvlaran/straaljager/scalar"
)

// Texture is a color lookup over surface coordinates.
type Texture interface {
	Sample(u, v float32) color.Color
}

// Constant samples to the same color everywhere.
type Constant struct {
	Color color.Color
}

// Sample implements Texture.
func (c Constant) Sample(_, _ float32) color.Color { return c.Color }

// Checker alternates A and B. A is chosen where sin(u·Scale)·sin(v·Scale) is
// negative, B everywhere else, so a Scale of π·n gives n cells per unit.
type Checker struct {
	A, B  color.Color
	Scale float32
}

// Sample implements Texture.
func (c Checker) Sample(u, v float32) color.Color {
	if math32.Sin(u*c.Scale)*math32.Sin(v*c.Scale) < 0 {
		return c.A
	}

	return c.B
}

// Image samples a grid of texels copied from an image.Image.
// v = 0 is the top row of the source image.
type Image struct {
	width, height int
	texels        []color.Color
}

// FromImage copies img into a texture. The result does not alias img.
// An empty image yields a texture that samples to color.Black.
func FromImage(img image.Image) *Image {
	b := img.Bounds()
	t := &Image{width: b.Dx(), height: b.Dy()}
	t.texels = make([]color.Color, 0, t.width*t.height)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			t.texels = append(t.texels, color.FromStd(img.At(x, y)))
		}
	}

	return t
}

// Bounds returns the texture size in texels.
func (t *Image) Bounds() (width, height int) { return t.width, t.height }

// Sample implements Texture with nearest-texel lookup.
func (t *Image) Sample(u, v float32) color.Color {
	if len(t.texels) == 0 {
		return color.Black
	}
	x := texel(u, t.width)
	y := texel(v, t.height)

	return t.texels[x+y*t.width]
}

// texel maps a coordinate to an index in [0, n).
func texel(u float32, n int) int {
	if math32.IsNaN(u) {
		return 0
	}
	i := int(math32.Floor(scalar.Clamp(u, 0, 1) * float32(n)))
	if i >= n {
		return n - 1
	}

	return i
}
