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
	"image"
	"math"
	"slices"

	"golang.org/x/image/draw"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/raster/internal/pipeline"
	"seehuhn.de/go/raster/internal/scan"
)

// Pixmap is a rectangular buffer of premultiplied RGBA8 pixels.
// Rows are stored top to bottom, without padding between rows.
type Pixmap struct {
	width, height int
	data          []uint8

	// scratch objects for drawing, allocated on first use
	rast    *scan.Rasterizer
	stroker Stroker
}

// NewPixmap allocates a transparent pixmap.
func NewPixmap(width, height int) (*Pixmap, error) {
	if err := checkSize(width, height, 4); err != nil {
		return nil, err
	}
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}, nil
}

// checkSize verifies that a width×height buffer with the given number of
// bytes per pixel can be allocated.
func checkSize(width, height, bytesPerPixel int) error {
	if width <= 0 || height <= 0 ||
		width > math.MaxInt32/bytesPerPixel ||
		height > math.MaxInt/(width*bytesPerPixel) {
		return fmt.Errorf("%dx%d pixels: %w", width, height, ErrInvalidSize)
	}
	return nil
}

// PixmapFromImage converts an image into a pixmap.
func PixmapFromImage(img image.Image) (*Pixmap, error) {
	b := img.Bounds()
	pm, err := NewPixmap(b.Dx(), b.Dy())
	if err != nil {
		return nil, err
	}
	draw.Copy(pm.Image(), image.Point{}, img, b, draw.Src, nil)
	return pm, nil
}

func (pm *Pixmap) Width() int  { return pm.width }
func (pm *Pixmap) Height() int { return pm.height }

// Data returns the pixel data. The slice is shared with the pixmap.
func (pm *Pixmap) Data() []uint8 {
	return pm.data
}

// Image returns an image which shares the pixel data with the pixmap.
func (pm *Pixmap) Image() *image.RGBA {
	return &image.RGBA{
		Pix:    pm.data,
		Stride: pm.width * 4,
		Rect:   image.Rect(0, 0, pm.width, pm.height),
	}
}

// Pixel returns the pixel at (x, y).
// The second return value is false if the position is outside the pixmap.
func (pm *Pixmap) Pixel(x, y int) (PremultipliedColorU8, bool) {
	if x < 0 || x >= pm.width || y < 0 || y >= pm.height {
		return PremultipliedColorU8{}, false
	}
	off := (y*pm.width + x) * 4
	px := pm.data[off : off+4]
	return PremultipliedColorU8{px[0], px[1], px[2], px[3]}, true
}

// SetPixel sets the pixel at (x, y). Positions outside the pixmap are
// ignored.
func (pm *Pixmap) SetPixel(x, y int, c PremultipliedColorU8) {
	if x < 0 || x >= pm.width || y < 0 || y >= pm.height {
		return
	}
	off := (y*pm.width + x) * 4
	copy(pm.data[off:off+4], []uint8{c.R, c.G, c.B, c.A})
}

// Fill sets all pixels to the given color.
func (pm *Pixmap) Fill(c Color) {
	px := c.Premultiply().ToColorU8()
	if len(pm.data) == 0 {
		return
	}
	copy(pm.data, []uint8{px.R, px.G, px.B, px.A})
	for n := 4; n < len(pm.data); n *= 2 {
		copy(pm.data[n:], pm.data[:n])
	}
}

// Clone returns a copy of the pixmap.
func (pm *Pixmap) Clone() *Pixmap {
	return &Pixmap{
		width:  pm.width,
		height: pm.height,
		data:   slices.Clone(pm.data),
	}
}

func (pm *Pixmap) target() pipeline.Target {
	return pipeline.Target{Data: pm.data, Width: pm.width, Height: pm.height}
}

// rasterizer returns the scan converter for drawing on pm, set up for
// the transform ts.
func (pm *Pixmap) rasterizer(ts Transform) *scan.Rasterizer {
	clip := rect.Rect{URx: float64(pm.width), URy: float64(pm.height)}
	if pm.rast == nil {
		pm.rast = scan.NewRasterizer(clip)
	} else {
		pm.rast.Reset(clip)
	}
	pm.rast.CTM = ts.matrix()
	return pm.rast
}
