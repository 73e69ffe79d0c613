// seehuhn.de/go/raster - a 2D rendering library
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package raster

import (
	"fmt"
	"image/color"

	"github.com/chewxy/math32"
)

// Color is an RGBA color with straight (not premultiplied) alpha.
// All components are in the range [0, 1].
type Color struct {
	r, g, b, a float32
}

// Some common colors.
var (
	Transparent = Color{0, 0, 0, 0}
	Black       = Color{0, 0, 0, 1}
	White       = Color{1, 1, 1, 1}
)

// NewColor returns the color with the given components, which must be
// in the range [0, 1].
func NewColor(r, g, b, a float32) (Color, error) {
	for _, c := range []float32{r, g, b, a} {
		if !(c >= 0 && c <= 1) {
			return Color{}, fmt.Errorf("color (%g, %g, %g, %g): %w", r, g, b, a, ErrInvalidColor)
		}
	}
	return Color{r, g, b, a}, nil
}

// ColorFromRGBA8 returns the color with the given 8-bit components.
func ColorFromRGBA8(r, g, b, a uint8) Color {
	const s = 1.0 / 255
	return Color{float32(r) * s, float32(g) * s, float32(b) * s, float32(a) * s}
}

func (c Color) R() float32 { return c.r }
func (c Color) G() float32 { return c.g }
func (c Color) B() float32 { return c.b }
func (c Color) A() float32 { return c.a }

// WithAlpha returns the color with the alpha component replaced.
// The new alpha value is clamped to [0, 1].
func (c Color) WithAlpha(a float32) Color {
	c.a = clamp01(a)
	return c
}

// IsOpaque reports whether the alpha component is 1.
func (c Color) IsOpaque() bool {
	return c.a == 1
}

// Premultiply returns the color with the color components multiplied by
// alpha.
func (c Color) Premultiply() PremultipliedColor {
	return PremultipliedColor{c.r * c.a, c.g * c.a, c.b * c.a, c.a}
}

// ToColorU8 converts the color to 8-bit components.
func (c Color) ToColorU8() ColorU8 {
	return ColorU8{toByte(c.r), toByte(c.g), toByte(c.b), toByte(c.a)}
}

// PremultipliedColor is an RGBA color with premultiplied alpha.
type PremultipliedColor struct {
	R, G, B, A float32
}

// ToColorU8 converts the color to 8-bit components.
func (c PremultipliedColor) ToColorU8() PremultipliedColorU8 {
	return PremultipliedColorU8{toByte(c.R), toByte(c.G), toByte(c.B), toByte(c.A)}
}

// ColorU8 is an 8-bit RGBA color with straight alpha.
type ColorU8 struct {
	R, G, B, A uint8
}

// Premultiply returns the color with the color components multiplied by
// alpha.
func (c ColorU8) Premultiply() PremultipliedColorU8 {
	if c.A == 255 {
		return PremultipliedColorU8(c)
	}
	a := uint32(c.A)
	return PremultipliedColorU8{mulDiv255(c.R, a), mulDiv255(c.G, a), mulDiv255(c.B, a), c.A}
}

// PremultipliedColorU8 is an 8-bit RGBA color with premultiplied alpha.
// This is the pixel format of a [Pixmap]. The color components are
// never larger than the alpha component.
type PremultipliedColorU8 struct {
	R, G, B, A uint8
}

// Demultiply converts the color to straight alpha.
func (c PremultipliedColorU8) Demultiply() ColorU8 {
	switch c.A {
	case 0:
		return ColorU8{}
	case 255:
		return ColorU8(c)
	}
	a := uint32(c.A)
	div := func(v uint8) uint8 {
		return uint8(min((uint32(v)*255+a/2)/a, 255))
	}
	return ColorU8{div(c.R), div(c.G), div(c.B), c.A}
}

// RGBA implements the [color.Color] interface.
func (c PremultipliedColorU8) RGBA() (r, g, b, a uint32) {
	return color.RGBA(c).RGBA()
}

func mulDiv255(v uint8, a uint32) uint8 {
	x := uint32(v)*a + 128
	return uint8((x + x>>8) >> 8)
}

func toByte(v float32) uint8 {
	return uint8(math32.Floor(clamp01(v)*255 + 0.5))
}

// clamp01 limits v to [0, 1]. NaN maps to 0.
func clamp01(v float32) float32 {
	if !(v > 0) {
		return 0
	}
	return min(v, 1)
}
