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

// Package pipeline composites coverage values into premultiplied RGBA8
// pixels.
//
// For every pixel, the source color is blended with the destination and
// the result is interpolated towards the destination by the effective
// coverage:
//
//	eff = coverage × mask × opacity
//	out = lerp(dst, blend(src, dst), eff)
//
// Two numeric backends execute this contract. The high precision backend
// works on 8 float32 lanes and supports everything. The low precision
// backend works on 16 fixed-point lanes and supports the common blend
// modes with solid and gradient sources.
package pipeline

import (
	"fmt"
	"log/slog"
)

// Target is a premultiplied RGBA8 pixel buffer.
// Rows are stored top to bottom, with a stride of Width*4 bytes.
type Target struct {
	Data          []uint8
	Width, Height int
}

// Mask is an 8-bit clip mask with a stride of Width bytes.
type Mask struct {
	Data          []uint8
	Width, Height int
}

// Precision selects the numeric backend.
type Precision int

const (
	// PrecisionAuto uses the low precision backend when it supports the
	// source and blend mode, and the high precision backend otherwise.
	PrecisionAuto Precision = iota

	// PrecisionHigh always uses the float backend.
	PrecisionHigh

	// PrecisionLow requests the fixed-point backend. Unsupported
	// combinations fall back to the float backend.
	PrecisionLow
)

// Config holds the settings for one pipeline.
type Config struct {
	Precision Precision

	// Logger receives backend diagnostics. Nil disables logging.
	Logger *slog.Logger
}

// Pipeline composites one color source with one blend mode.
// A Pipeline must not be used by more than one goroutine at a time.
type Pipeline struct {
	src     ColorSource
	mode    BlendMode
	opacity float32

	lowp   bool
	memset bool
	color  [4]uint8 // the opaque solid color used by the memset fast path

	hp highp
	lp lowp
}

// New returns a pipeline for the given color source and blend mode.
// Opacity multiplies the effective coverage of every pixel and is
// clamped to [0, 1].
func New(src ColorSource, mode BlendMode, opacity float32, cfg Config) *Pipeline {
	if !(opacity > 0) {
		opacity = 0
	} else if opacity > 1 {
		opacity = 1
	}

	p := &Pipeline{
		src:     src,
		mode:    mode,
		opacity: opacity,
	}

	if s, ok := src.(Solid); ok && s.A >= 1 && opacity == 1 && (mode == Source || mode == SourceOver) {
		p.memset = true
		p.color = [4]uint8{toU8(s.R), toU8(s.G), toU8(s.B), 255}
	}

	supported := lowpSupports(src, mode, opacity)
	switch cfg.Precision {
	case PrecisionAuto:
		p.lowp = supported
	case PrecisionLow:
		p.lowp = supported
		if !supported && cfg.Logger != nil {
			cfg.Logger.Debug("low precision pipeline unavailable, using high precision",
				"mode", mode.String(),
				"source", fmt.Sprintf("%T", src))
		}
	}
	return p
}

// LowPrecision reports whether the pipeline runs on the fixed-point
// backend.
func (p *Pipeline) LowPrecision() bool {
	return p.lowp
}

// BlitSpan composites a horizontal run of pixels starting at (x, y).
// Coverage holds one 8-bit coverage value per pixel. If mask is not nil,
// it holds the clip mask values for the same pixels.
// The span must lie inside the target.
func (p *Pipeline) BlitSpan(dst Target, y, x int, coverage, mask []uint8) {
	if !p.memset || mask != nil {
		p.run(dst, x, y, len(coverage), coverage, mask)
		return
	}

	// Fully covered runs of an opaque solid color are written directly.
	for len(coverage) > 0 {
		n := 0
		for n < len(coverage) && coverage[n] == 255 {
			n++
		}
		if n > 0 {
			p.fill(dst, x, y, n)
		} else {
			for n < len(coverage) && coverage[n] != 255 {
				n++
			}
			p.run(dst, x, y, n, coverage[:n], nil)
		}
		x += n
		coverage = coverage[n:]
	}
}

// BlitRect composites the w×h rectangle with top-left corner (x, y) at
// full coverage. If mask is not nil, it must have the size of the target.
// The rectangle must lie inside the target.
func (p *Pipeline) BlitRect(dst Target, x, y, w, h int, mask *Mask) {
	if w <= 0 {
		return
	}
	for row := y; row < y+h; row++ {
		if mask == nil {
			if p.memset {
				p.fill(dst, x, row, w)
			} else {
				p.run(dst, x, row, w, nil, nil)
			}
			continue
		}
		off := row*mask.Width + x
		p.run(dst, x, row, w, nil, mask.Data[off:off+w])
	}
}

// ApplyMask multiplies every pixel of dst by the corresponding mask value.
// The mask must have the size of the target.
func ApplyMask(dst Target, mask *Mask) {
	n := min(dst.Width*dst.Height, len(mask.Data))
	for i := range n {
		m := int32(mask.Data[i])
		if m == 255 {
			continue
		}
		px := dst.Data[4*i : 4*i+4]
		for c := range px {
			px[c] = uint8(div255(int32(px[c]) * m))
		}
	}
}

// fill overwrites n pixels with the memset color.
func (p *Pipeline) fill(dst Target, x, y, n int) {
	off := (y*dst.Width + x) * 4
	px := dst.Data[off : off+4*n]
	c := p.color
	for i := 0; i < len(px); i += 4 {
		px[i] = c[0]
		px[i+1] = c[1]
		px[i+2] = c[2]
		px[i+3] = c[3]
	}
}

// run composites n pixels in chunks of the backend's lane count.
// A nil coverage slice means full coverage.
func (p *Pipeline) run(dst Target, x, y, n int, coverage, mask []uint8) {
	chunk := highpLanes
	if p.lowp {
		chunk = lowpLanes
	}
	for i := 0; i < n; i += chunk {
		m := min(chunk, n-i)
		var cov, msk []uint8
		if coverage != nil {
			cov = coverage[i : i+m]
		}
		if mask != nil {
			msk = mask[i : i+m]
		}
		off := (y*dst.Width + x + i) * 4
		px := dst.Data[off : off+4*m]
		if p.lowp {
			p.lp.run(p, px, x+i, y, cov, msk)
		} else {
			p.hp.run(p, px, x+i, y, cov, msk)
		}
	}
}

// toU8 converts a channel value in [0, 1] to 8 bits, rounding to nearest.
// NaN maps to 0.
func toU8(v float32) uint8 {
	if !(v > 0) {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
