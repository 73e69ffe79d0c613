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

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var blackToWhite = []Stop{
	{Pos: 0, A: 1},
	{Pos: 1, R: 1, G: 1, B: 1, A: 1},
}

// shadeRow returns the red channel of n pixels on row y.
func shadeRow(src ColorSource, x, y, n int) []float32 {
	r := make([]float32, n)
	g := make([]float32, n)
	b := make([]float32, n)
	a := make([]float32, n)
	src.shade(x, y, r, g, b, a)
	return r
}

func TestLinearGradient(t *testing.T) {
	g := NewLinearGradient(identity, 0, 0, 10, 0, blackToWhite, Pad)
	row := shadeRow(g, -2, 0, 14)
	for i, v := range row {
		x := float32(i-2) + 0.5
		want := min(max(x/10, 0), 1)
		assert.InDelta(t, want, v, 1e-6, "x = %g", x)
	}
}

func TestGradientSpread(t *testing.T) {
	cases := []struct {
		mode SpreadMode
		want func(t float32) float32
	}{
		{Repeat, func(t float32) float32 { return t - float32(math.Floor(float64(t))) }},
		{Reflect, func(t float32) float32 {
			u := float64(t)
			u -= 2 * math.Floor(u/2)
			if u > 1 {
				u = 2 - u
			}
			return float32(u)
		}},
	}
	for _, tc := range cases {
		g := NewLinearGradient(identity, 0, 0, 4, 0, blackToWhite, tc.mode)
		row := shadeRow(g, -8, 0, 24)
		for i, v := range row {
			x := float32(i-8) + 0.5
			assert.InDelta(t, tc.want(x/4), v, 1e-5, "mode %d, x = %g", tc.mode, x)
		}
	}
}

func TestGradientStops(t *testing.T) {
	stops := []Stop{
		{Pos: 0.25, R: 1, A: 1},
		{Pos: 0.5, R: 1, A: 1},
		{Pos: 0.5, B: 1, A: 1},
		{Pos: 0.75, G: 1, A: 1},
	}
	g := NewLinearGradient(identity, 0, 0, 100, 0, stops, Pad)

	r := make([]float32, 100)
	gg := make([]float32, 100)
	b := make([]float32, 100)
	a := make([]float32, 100)
	g.shade(0, 0, r, gg, b, a)

	// before the first stop: its color
	assert.InDelta(t, 1, r[10], 1e-6)
	// equal positions: the later stop wins from 0.5 on
	assert.InDelta(t, 1, r[49], 1e-6)
	assert.InDelta(t, 0, r[50], 1e-6)
	assert.InDelta(t, 1-0.5/25, b[50], 1e-5)
	// halfway between blue and green
	assert.InDelta(t, 0.5, b[62], 1e-5)
	// after the last stop: its color
	assert.InDelta(t, 1, gg[90], 1e-6)
	for i := range a {
		require.InDelta(t, 1, a[i], 1e-6)
	}
}

func TestRadialGradient(t *testing.T) {
	g := NewConicalGradient(identity, 5, 5, 0, 5, 5, 5, blackToWhite, Pad)
	for y := range 10 {
		row := shadeRow(g, 0, y, 10)
		for x, v := range row {
			dx := float64(x) + 0.5 - 5
			dy := float64(y) + 0.5 - 5
			want := min(math.Hypot(dx, dy)/5, 1)
			require.InDelta(t, want, v, 1e-5, "pixel (%d, %d)", x, y)
		}
	}
}

func TestConicalGradient(t *testing.T) {
	// circles (0,0) r=1 and (10,0) r=1: a cylinder along the x axis
	g := NewConicalGradient(identity, 0, 0, 1, 10, 0, 1, blackToWhite, Pad)

	// the circles centred at x = 4 and x = 6 pass through (5, 0)
	r, ok := g.conicalT(5, 0)
	require.True(t, ok)
	assert.InDelta(t, 0.6, r, 1e-5)

	// outside the cylinder no circle passes through the point
	_, ok = g.conicalT(5, 3)
	assert.False(t, ok)

	// transparent pixels for points without a solution
	a := make([]float32, 1)
	g.shade(5, 3, make([]float32, 1), make([]float32, 1), make([]float32, 1), a)
	assert.Equal(t, float32(0), a[0])

	// growing circles: the larger root is chosen
	g = NewConicalGradient(identity, 0, 0, 1, 4, 0, 3, blackToWhite, Pad)
	tt, ok := g.conicalT(2, 0)
	require.True(t, ok)
	// the circle c(t) = 4t, r(t) = 1+2t passes through x=2 at
	// 4t-(1+2t) = 2 (t = 1.5) and 4t+(1+2t) = 2 (t = 1/6)
	assert.InDelta(t, 1.5, tt, 1e-5)
}

// testImage returns a 2×2 image with four distinct opaque colors.
func testImage() []uint8 {
	return []uint8{
		255, 0, 0, 255, 0, 255, 0, 255,
		0, 0, 255, 255, 255, 255, 255, 255,
	}
}

func TestPatternNearest(t *testing.T) {
	pt := &Pattern{Pix: testImage(), Width: 2, Height: 2, Inverse: identity}
	dst := newTarget(2, 2)
	p := New(pt, Source, 1, Config{})
	p.BlitRect(dst, 0, 0, 2, 2, nil)
	assert.Equal(t, testImage(), dst.Data)
}

func TestPatternSpread(t *testing.T) {
	pix := testImage()
	for _, mode := range []SpreadMode{Pad, Repeat, Reflect} {
		pt := &Pattern{Pix: pix, Width: 2, Height: 2, Inverse: identity, Spread: mode}
		dst := newTarget(6, 1)
		New(pt, Source, 1, Config{}).BlitRect(dst, 0, 0, 6, 1, nil)

		var want []int // source column of each destination pixel
		switch mode {
		case Pad:
			want = []int{0, 1, 1, 1, 1, 1}
		case Repeat:
			want = []int{0, 1, 0, 1, 0, 1}
		case Reflect:
			want = []int{0, 1, 1, 0, 0, 1}
		}
		for x, col := range want {
			assert.Equal(t, [4]uint8(pix[4*col:4*col+4]), dst.at(x, 0), "mode %d, x %d", mode, x)
		}
	}
}

func TestPatternFiltersKeepUniformColor(t *testing.T) {
	pix := make([]uint8, 4*4*4)
	for i := 0; i < len(pix); i += 4 {
		copy(pix[i:], []uint8{40, 80, 120, 200})
	}
	for _, filter := range []FilterQuality{Nearest, Bilinear, Bicubic} {
		// rotated and scaled sampling positions
		inv := Affine{SX: 0.6, KY: 0.3, KX: -0.3, SY: 0.6, TX: 0.7, TY: 1.1}
		pt := &Pattern{Pix: pix, Width: 4, Height: 4, Inverse: inv, Spread: Repeat, Filter: filter}
		dst := newTarget(5, 5)
		New(pt, Source, 1, Config{}).BlitRect(dst, 0, 0, 5, 5, nil)
		for y := range 5 {
			for x := range 5 {
				got := dst.at(x, y)
				for c, want := range []uint8{40, 80, 120, 200} {
					require.InDelta(t, int(want), int(got[c]), 1, "filter %d, pixel (%d, %d)", filter, x, y)
				}
			}
		}
	}
}

func TestBilinearInterpolates(t *testing.T) {
	// two columns, black and white
	pix := []uint8{0, 0, 0, 255, 255, 255, 255, 255}
	pt := &Pattern{Pix: pix, Width: 2, Height: 1, Inverse: Affine{SX: 0.25, SY: 1}, Filter: Bilinear}
	r := shadeRow(pt, 0, 0, 8)

	// image x = (dst x + 0.5) / 4; white weight grows from pixel centre 0.5 to 1.5
	for i, v := range r {
		x := (float32(i) + 0.5) / 4
		want := min(max(x-0.5, 0), 1)
		assert.InDelta(t, want, v, 1e-5, "pixel %d", i)
	}
}

func TestBicubicWeights(t *testing.T) {
	for _, f := range []float32{0, 0.1, 0.25, 0.5, 0.9} {
		sum := bicubicFar(1-f) + bicubicNear(1-f) + bicubicNear(f) + bicubicFar(f)
		assert.InDelta(t, 1, sum, 1e-6)
	}
}

func TestLowpGradient(t *testing.T) {
	g := NewLinearGradient(identity, 0, 0, 32, 0, blackToWhite, Pad)
	hi := newTarget(32, 1)
	lo := newTarget(32, 1)
	New(g, SourceOver, 1, Config{Precision: PrecisionHigh}).BlitRect(hi, 0, 0, 32, 1, nil)
	p := New(g, SourceOver, 1, Config{Precision: PrecisionLow})
	require.True(t, p.LowPrecision())
	p.BlitRect(lo, 0, 0, 32, 1, nil)
	for i := range hi.Data {
		require.InDelta(t, int(hi.Data[i]), int(lo.Data[i]), 2, "byte %d", i)
	}
}
