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

package pipeline

import "github.com/chewxy/math32"

// ColorSource is a color source. The implementations are Solid, *Gradient and
// *Pattern.
type ColorSource interface {
	// shade writes the premultiplied colors of the pixels starting at
	// (x, y) into the channel slices, which all have the same length.
	// Colors are sampled at the pixel centres.
	shade(x, y int, r, g, b, a []float32)
}

// Solid is a constant premultiplied color.
type Solid struct {
	R, G, B, A float32
}

func (s Solid) shade(x, y int, r, g, b, a []float32) {
	for i := range r {
		r[i] = s.R
		g[i] = s.G
		b[i] = s.B
		a[i] = s.A
	}
}

// Affine is a 2×3 affine map in the order (SX, KY, KX, SY, TX, TY):
//
//	x' = SX*x + KX*y + TX
//	y' = KY*x + SY*y + TY
type Affine struct {
	SX, KY, KX, SY, TX, TY float32
}

func (m Affine) apply(x, y float32) (float32, float32) {
	return m.SX*x + m.KX*y + m.TX, m.KY*x + m.SY*y + m.TY
}

// SpreadMode selects how a color source is extended beyond its domain.
type SpreadMode uint8

const (
	Pad SpreadMode = iota
	Repeat
	Reflect
)

// FilterQuality selects the image sampling filter of a pattern.
type FilterQuality uint8

const (
	Nearest FilterQuality = iota
	Bilinear
	Bicubic
)

// fract returns the fractional part v - floor(v).
func fract(v float32) float32 {
	return v - math32.Floor(v)
}

// clamp01 limits v to [0, 1]. NaN maps to 0.
func clamp01(v float32) float32 {
	if !(v > 0) {
		return 0
	}
	return min(v, 1)
}
