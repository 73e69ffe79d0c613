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
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/raster/internal/pipeline"
	"seehuhn.de/go/raster/internal/scan"
)

// MaskType selects how a mask is derived from a pixmap.
type MaskType uint8

const (
	// MaskTypeAlpha uses the alpha channel.
	MaskTypeAlpha MaskType = iota

	// MaskTypeLuminance uses the luminance of the color, multiplied by
	// alpha.
	MaskTypeLuminance
)

// Mask is a clip mask with one 8-bit coverage value per pixel.
// A value of 0 hides a pixel and 255 leaves it unchanged.
type Mask struct {
	width, height int
	data          []uint8

	rast *scan.Rasterizer
}

// NewMask allocates a mask in which all pixels are hidden.
func NewMask(width, height int) (*Mask, error) {
	if err := checkSize(width, height, 1); err != nil {
		return nil, err
	}
	return &Mask{
		width:  width,
		height: height,
		data:   make([]uint8, width*height),
	}, nil
}

// MaskFromPixmap returns a mask of the same size as pm.
func MaskFromPixmap(pm *Pixmap, mt MaskType) *Mask {
	m := &Mask{
		width:  pm.width,
		height: pm.height,
		data:   make([]uint8, pm.width*pm.height),
	}
	for i := range m.data {
		px := pm.data[4*i : 4*i+4]
		switch mt {
		case MaskTypeLuminance:
			// Luma of the demultiplied color, times alpha, is the luma of
			// the premultiplied color.
			l := 0.2125*float32(px[0]) + 0.7154*float32(px[1]) + 0.0721*float32(px[2])
			m.data[i] = uint8(min(l+0.5, 255))
		default:
			m.data[i] = px[3]
		}
	}
	return m
}

func (m *Mask) Width() int  { return m.width }
func (m *Mask) Height() int { return m.height }

// Data returns the mask values. The slice is shared with the mask.
func (m *Mask) Data() []uint8 {
	return m.data
}

// Clear hides all pixels.
func (m *Mask) Clear() {
	clear(m.data)
}

// Invert replaces every value v by 255-v.
func (m *Mask) Invert() {
	for i, v := range m.data {
		m.data[i] = 255 - v
	}
}

// FillPath adds the coverage of the path to the mask. Pixels covered by
// the path become visible, partially covered pixels are blended with
// the previous mask values.
func (m *Mask) FillPath(p *Path, rule FillRule, antiAlias bool, ts Transform) {
	if p == nil || !ts.IsFinite() {
		Logger().Warn("mask fill skipped", "path", p != nil, "transform", ts)
		return
	}
	for span := range m.rasterizer(ts).Spans(p.geom(), rule.scan(), antiAlias) {
		row := m.data[span.Y*m.width+span.X:]
		for i, c := range span.Coverage {
			v := int32(row[i])
			row[i] = uint8(v + div255((255-v)*int32(c)))
		}
	}
}

// IntersectPath multiplies the mask by the coverage of the path.
// Pixels outside the path become hidden.
func (m *Mask) IntersectPath(p *Path, rule FillRule, antiAlias bool, ts Transform) {
	if p == nil || !ts.IsFinite() {
		Logger().Warn("mask intersection skipped", "path", p != nil, "transform", ts)
		m.Clear()
		return
	}

	y0 := 0 // first row not yet processed
	x0 := 0 // first column not yet processed in row y0
	hide := func(y, x int) {
		for y0 < y {
			clear(m.data[y0*m.width+x0 : (y0+1)*m.width])
			y0++
			x0 = 0
		}
		clear(m.data[y0*m.width+x0 : y0*m.width+x])
		x0 = x
	}

	for span := range m.rasterizer(ts).Spans(p.geom(), rule.scan(), antiAlias) {
		hide(span.Y, span.X)
		row := m.data[span.Y*m.width+span.X:]
		for i, c := range span.Coverage {
			row[i] = uint8(div255(int32(row[i]) * int32(c)))
		}
		x0 = span.X + len(span.Coverage)
	}
	hide(m.height, 0)
}

func (m *Mask) pipelineMask() *pipeline.Mask {
	return &pipeline.Mask{Data: m.data, Width: m.width, Height: m.height}
}

func (m *Mask) rasterizer(ts Transform) *scan.Rasterizer {
	clip := rect.Rect{URx: float64(m.width), URy: float64(m.height)}
	if m.rast == nil {
		m.rast = scan.NewRasterizer(clip)
	} else {
		m.rast.Reset(clip)
	}
	m.rast.CTM = ts.matrix()
	return m.rast
}

// div255 divides by 255, rounding up where needed so that div255(255*v)
// is v for all 8-bit v.
func div255(v int32) int32 {
	return (v + 255) >> 8
}
