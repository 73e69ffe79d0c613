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

// Pattern samples a premultiplied RGBA8 image.
type Pattern struct {
	// Pix holds the image with a stride of Width*4 bytes.
	Pix           []uint8
	Width, Height int

	// Inverse maps device coordinates to image coordinates.
	Inverse Affine

	Spread SpreadMode
	Filter FilterQuality
}

func (pt *Pattern) shade(x, y int, r, g, b, a []float32) {
	fy := float32(y) + 0.5
	for i := range r {
		px, py := pt.Inverse.apply(float32(x+i)+0.5, fy)
		switch pt.Filter {
		case Bilinear:
			r[i], g[i], b[i], a[i] = pt.bilinear(px, py)
		case Bicubic:
			r[i], g[i], b[i], a[i] = pt.bicubic(px, py)
		default:
			r[i], g[i], b[i], a[i] = pt.sample(px, py)
		}
	}
}

// bilinear combines the 2×2 pixels at offsets ±0.5 around (x, y).
func (pt *Pattern) bilinear(x, y float32) (r, g, b, a float32) {
	fx := fract(x + 0.5)
	fy := fract(y + 0.5)
	wx := [2]float32{1 - fx, fx}
	wy := [2]float32{1 - fy, fy}

	for j := range 2 {
		sy := y - 0.5 + float32(j)
		for i := range 2 {
			sx := x - 0.5 + float32(i)
			w := wx[i] * wy[j]
			sr, sg, sb, sa := pt.sample(sx, sy)
			r += w * sr
			g += w * sg
			b += w * sb
			a += w * sa
		}
	}
	return r, g, b, a
}

// bicubic combines the 4×4 pixels at offsets ±0.5 and ±1.5 around (x, y)
// using the Mitchell-Netravali filter with B = C = 1/3.
func (pt *Pattern) bicubic(x, y float32) (r, g, b, a float32) {
	fx := fract(x + 0.5)
	fy := fract(y + 0.5)
	wx := [4]float32{bicubicFar(1 - fx), bicubicNear(1 - fx), bicubicNear(fx), bicubicFar(fx)}
	wy := [4]float32{bicubicFar(1 - fy), bicubicNear(1 - fy), bicubicNear(fy), bicubicFar(fy)}

	for j := range 4 {
		sy := y - 1.5 + float32(j)
		for i := range 4 {
			sx := x - 1.5 + float32(i)
			w := wx[i] * wy[j]
			sr, sg, sb, sa := pt.sample(sx, sy)
			r += w * sr
			g += w * sg
			b += w * sb
			a += w * sa
		}
	}

	// the negative lobes can overshoot
	a = clamp01(a)
	r = min(clamp01(r), a)
	g = min(clamp01(g), a)
	b = min(clamp01(b), a)
	return r, g, b, a
}

// bicubicNear is the filter weight for the samples at distance 0.5.
func bicubicNear(t float32) float32 {
	// 1/18 + 9/18t + 27/18t^2 - 21/18t^3
	return ((-21.0/18.0*t+27.0/18.0)*t+9.0/18.0)*t + 1.0/18.0
}

// bicubicFar is the filter weight for the samples at distance 1.5.
func bicubicFar(t float32) float32 {
	// -6/18t^2 + 7/18t^3
	return (t * t) * (7.0/18.0*t - 6.0/18.0)
}

// sample returns the pixel containing image position (x, y), after
// applying the spread mode.
func (pt *Pattern) sample(x, y float32) (r, g, b, a float32) {
	ix := tileIndex(x, pt.Spread, pt.Width)
	iy := tileIndex(y, pt.Spread, pt.Height)
	off := (iy*pt.Width + ix) * 4
	const scale = 1.0 / 255
	px := pt.Pix[off : off+4]
	return float32(px[0]) * scale, float32(px[1]) * scale,
		float32(px[2]) * scale, float32(px[3]) * scale
}

// tileIndex maps an image coordinate to a pixel index in [0, limit).
func tileIndex(v float32, mode SpreadMode, limit int) int {
	l := float32(limit)
	switch mode {
	case Repeat:
		v -= math32.Floor(v/l) * l
	case Reflect:
		u := v - l
		v = math32.Abs(u - 2*l*math32.Floor(u/(2*l)) - l)
	}

	if !(v > 0) {
		return 0
	}
	i := int(min(v, l))
	if i >= limit {
		i = limit - 1
	}
	return i
}
