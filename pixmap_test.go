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
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/draw"
)

func mustPixmap(t *testing.T, w, h int) *Pixmap {
	t.Helper()
	pm, err := NewPixmap(w, h)
	require.NoError(t, err)
	return pm
}

func TestNewPixmap(t *testing.T) {
	pm := mustPixmap(t, 3, 2)
	assert.Equal(t, 3, pm.Width())
	assert.Equal(t, 2, pm.Height())
	assert.Len(t, pm.Data(), 3*2*4)
	for _, v := range pm.Data() {
		assert.Zero(t, v)
	}

	for _, wh := range [][2]int{{0, 1}, {1, 0}, {-1, 5}, {1 << 30, 1}} {
		_, err := NewPixmap(wh[0], wh[1])
		assert.ErrorIs(t, err, ErrInvalidSize, wh)
	}
}

func TestPixmapPixels(t *testing.T) {
	pm := mustPixmap(t, 3, 2)
	c := PremultipliedColorU8{10, 20, 30, 40}
	pm.SetPixel(2, 1, c)
	pm.SetPixel(3, 1, c)
	pm.SetPixel(-1, 0, c)

	got, ok := pm.Pixel(2, 1)
	assert.True(t, ok)
	assert.Equal(t, c, got)
	assert.Equal(t, []uint8{10, 20, 30, 40}, pm.Data()[20:24])

	_, ok = pm.Pixel(3, 0)
	assert.False(t, ok)
	_, ok = pm.Pixel(0, -1)
	assert.False(t, ok)
}

func TestPixmapFill(t *testing.T) {
	pm := mustPixmap(t, 5, 3)
	pm.Fill(ColorFromRGBA8(255, 0, 0, 128))
	for y := range 3 {
		for x := range 5 {
			c, _ := pm.Pixel(x, y)
			assert.Equal(t, PremultipliedColorU8{128, 0, 0, 128}, c)
		}
	}

	clone := pm.Clone()
	pm.Fill(Transparent)
	c, _ := clone.Pixel(4, 2)
	assert.Equal(t, PremultipliedColorU8{128, 0, 0, 128}, c)
	c, _ = pm.Pixel(4, 2)
	assert.Equal(t, PremultipliedColorU8{}, c)
}

func TestPixmapImage(t *testing.T) {
	pm := mustPixmap(t, 2, 2)
	img := pm.Image()
	img.SetRGBA(1, 0, color.RGBA{1, 2, 3, 4})
	c, _ := pm.Pixel(1, 0)
	assert.Equal(t, PremultipliedColorU8{1, 2, 3, 4}, c)
	assert.Equal(t, image.Rect(0, 0, 2, 2), img.Bounds())
}

func TestPixmapFromImage(t *testing.T) {
	src := image.NewNRGBA(image.Rect(10, 10, 12, 11))
	src.SetNRGBA(10, 10, color.NRGBA{255, 0, 0, 128})
	src.SetNRGBA(11, 10, color.NRGBA{0, 255, 0, 255})

	pm, err := PixmapFromImage(src)
	require.NoError(t, err)
	assert.Equal(t, 2, pm.Width())
	assert.Equal(t, 1, pm.Height())
	c, _ := pm.Pixel(0, 0)
	assert.Equal(t, PremultipliedColorU8{128, 0, 0, 128}, c)
	c, _ = pm.Pixel(1, 0)
	assert.Equal(t, PremultipliedColorU8{0, 255, 0, 255}, c)

	_, err = PixmapFromImage(image.NewRGBA(image.Rectangle{}))
	assert.ErrorIs(t, err, ErrInvalidSize)
}

func TestDrawPixmapScaled(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 3, 2))
	for i := range src.Pix {
		src.Pix[i] = uint8(40 * (i % 6))
		if i%4 == 3 {
			src.Pix[i] = 255
		}
	}
	spm, err := PixmapFromImage(src)
	require.NoError(t, err)

	want := image.NewRGBA(image.Rect(0, 0, 6, 4))
	draw.NearestNeighbor.Scale(want, want.Bounds(), src, src.Bounds(), draw.Src, nil)

	pm := mustPixmap(t, 6, 4)
	pm.DrawPixmap(0, 0, spm, nil, Scale(2, 2), nil)
	assert.Equal(t, want.Pix, pm.Data())
}

func TestDrawPixmapOffset(t *testing.T) {
	src := mustPixmap(t, 2, 2)
	src.Fill(White)

	pm := mustPixmap(t, 5, 5)
	pm.DrawPixmap(2, 1, src, &PixmapPaint{Opacity: 0.5, Quality: Bilinear}, Identity(), nil)
	for y := range 5 {
		for x := range 5 {
			c, _ := pm.Pixel(x, y)
			if x >= 2 && x < 4 && y >= 1 && y < 3 {
				assert.InDelta(t, 128, c.A, 1, "(%d, %d)", x, y)
			} else {
				assert.Zero(t, c.A, "(%d, %d)", x, y)
			}
		}
	}
}

func TestDrawPixmapOntoItself(t *testing.T) {
	pm := mustPixmap(t, 2, 1)
	red := PremultipliedColorU8{255, 0, 0, 255}
	blue := PremultipliedColorU8{0, 0, 255, 255}
	pm.SetPixel(0, 0, red)
	pm.SetPixel(1, 0, blue)

	pm.DrawPixmap(1, 0, pm, nil, Identity(), nil)
	c0, _ := pm.Pixel(0, 0)
	c1, _ := pm.Pixel(1, 0)
	assert.Equal(t, red, c0)
	assert.Equal(t, red, c1)
}

func mustMask(t *testing.T, w, h int) *Mask {
	t.Helper()
	m, err := NewMask(w, h)
	require.NoError(t, err)
	return m
}

func TestNewMask(t *testing.T) {
	m := mustMask(t, 4, 3)
	assert.Equal(t, 4, m.Width())
	assert.Equal(t, 3, m.Height())
	assert.Equal(t, make([]uint8, 12), m.Data())

	m.Invert()
	for _, v := range m.Data() {
		assert.Equal(t, uint8(255), v)
	}
	m.Clear()
	assert.Equal(t, make([]uint8, 12), m.Data())

	_, err := NewMask(0, 3)
	assert.ErrorIs(t, err, ErrInvalidSize)
}

func TestMaskFillPath(t *testing.T) {
	m := mustMask(t, 4, 2)
	m.FillPath(PathFromRect(mustRect(t, 0, 0, 2, 2)), NonZero, false, Identity())
	assert.Equal(t, []uint8{255, 255, 0, 0, 255, 255, 0, 0}, m.Data())

	m.Invert()
	assert.Equal(t, []uint8{0, 0, 255, 255, 0, 0, 255, 255}, m.Data())

	// filling adds to the existing values
	m.FillPath(PathFromRect(mustRect(t, 0, 0, 1, 1)), NonZero, false, Identity())
	assert.Equal(t, []uint8{255, 0, 255, 255, 0, 0, 255, 255}, m.Data())

	// a missing path changes nothing
	m.FillPath(nil, NonZero, false, Identity())
	assert.Equal(t, []uint8{255, 0, 255, 255, 0, 0, 255, 255}, m.Data())
}

func TestMaskIntersectPath(t *testing.T) {
	m := mustMask(t, 4, 4)
	m.Invert()
	m.IntersectPath(PathFromRect(mustRect(t, 1, 1, 3, 3)), NonZero, false, Identity())
	assert.Equal(t, []uint8{
		0, 0, 0, 0,
		0, 255, 255, 0,
		0, 255, 255, 0,
		0, 0, 0, 0,
	}, m.Data())

	// partial coverage multiplies
	m = mustMask(t, 2, 1)
	m.Invert()
	m.IntersectPath(PathFromRect(mustRect(t, 0, 0, 1.5, 1)), NonZero, true, Identity())
	assert.Equal(t, uint8(255), m.Data()[0])
	assert.InDelta(t, 128, m.Data()[1], 1)

	// a path outside the mask hides everything
	m.Invert()
	m.IntersectPath(PathFromRect(mustRect(t, 10, 10, 20, 20)), NonZero, true, Identity())
	assert.Equal(t, []uint8{0, 0}, m.Data())
}

func TestMaskFromPixmap(t *testing.T) {
	pm := mustPixmap(t, 3, 1)
	pm.SetPixel(0, 0, PremultipliedColorU8{255, 255, 255, 255})
	pm.SetPixel(1, 0, PremultipliedColorU8{0, 0, 0, 255})
	pm.SetPixel(2, 0, PremultipliedColorU8{0, 128, 0, 128})

	alpha := MaskFromPixmap(pm, MaskTypeAlpha)
	assert.Equal(t, []uint8{255, 255, 128}, alpha.Data())

	lum := MaskFromPixmap(pm, MaskTypeLuminance)
	assert.Equal(t, uint8(255), lum.Data()[0])
	assert.Equal(t, uint8(0), lum.Data()[1])
	assert.InDelta(t, 92, lum.Data()[2], 1)
}
