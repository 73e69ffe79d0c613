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
	"github.com/chewxy/math32"

	"seehuhn.de/go/raster/internal/pipeline"
)

// FillPath fills the path with the given paint.
// The transform ts maps the path to pixel coordinates. If mask is not
// nil, it limits the area which is painted.
func (pm *Pixmap) FillPath(p *Path, paint *Paint, rule FillRule, ts Transform, mask *Mask) {
	if p == nil {
		Logger().Warn("fill skipped: missing path")
		return
	}
	if !ts.IsFinite() {
		Logger().Warn("fill skipped: invalid transform", "transform", ts)
		return
	}
	paint = pm.checkPaint(paint)
	mask = pm.checkMask(mask)
	pipe := pm.pipeline(paint, ts)
	if pipe == nil {
		return
	}
	pm.fill(p, rule, paint.AntiAlias, ts, pipe, mask)
}

// StrokePath strokes the path with the given paint and stroke style.
// The path is stroked in user space and the outline is then mapped to
// pixel coordinates by ts.
func (pm *Pixmap) StrokePath(p *Path, paint *Paint, stroke Stroke, ts Transform, mask *Mask) {
	if p == nil {
		Logger().Warn("stroke skipped: missing path")
		return
	}
	if !ts.IsFinite() {
		Logger().Warn("stroke skipped: invalid transform", "transform", ts)
		return
	}
	outline, err := pm.stroker.Stroke(p, stroke, ts.resScale())
	if err != nil {
		Logger().Warn("stroke skipped", "error", err)
		return
	}
	if outline == nil {
		return
	}

	paint = pm.checkPaint(paint)
	mask = pm.checkMask(mask)
	pipe := pm.pipeline(paint, ts)
	if pipe == nil {
		return
	}
	pm.fill(outline, NonZero, paint.AntiAlias, ts, pipe, mask)
}

// FillRect fills the rectangle with the given paint.
func (pm *Pixmap) FillRect(r Rect, paint *Paint, ts Transform, mask *Mask) {
	if !ts.IsFinite() {
		Logger().Warn("fill skipped: invalid transform", "transform", ts)
		return
	}
	paint = pm.checkPaint(paint)
	mask = pm.checkMask(mask)

	if paint.AntiAlias || !ts.IsScaleTranslate() {
		pipe := pm.pipeline(paint, ts)
		if pipe == nil {
			return
		}
		pm.fill(PathFromRect(r), NonZero, paint.AntiAlias, ts, pipe, mask)
		return
	}

	dev, ok := r.Transform(ts)
	if !ok {
		Logger().Warn("fill skipped: rectangle out of range")
		return
	}
	// pixels whose centres lie inside the rectangle
	x0 := pixelIndex(dev.left, pm.width)
	x1 := pixelIndex(dev.right, pm.width)
	y0 := pixelIndex(dev.top, pm.height)
	y1 := pixelIndex(dev.bottom, pm.height)
	if x0 >= x1 || y0 >= y1 {
		return
	}

	pipe := pm.pipeline(paint, ts)
	if pipe == nil {
		return
	}
	var pmask *pipeline.Mask
	if mask != nil {
		pmask = mask.pipelineMask()
	}
	pipe.BlitRect(pm.target(), x0, y0, x1-x0, y1-y0, pmask)
}

// pixelIndex returns the index of the first pixel whose centre is at or
// after the coordinate v, clamped to [0, limit].
func pixelIndex(v float32, limit int) int {
	i := math32.Ceil(v - 0.5)
	if !(i > 0) {
		return 0
	}
	if i > float32(limit) {
		return limit
	}
	return int(i)
}

// DrawPixmap draws the image src with its top-left corner at (x, y).
// The position and the image are mapped to pixel coordinates by ts.
// If ppaint is nil, [DefaultPixmapPaint] is used.
func (pm *Pixmap) DrawPixmap(x, y int, src *Pixmap, ppaint *PixmapPaint, ts Transform, mask *Mask) {
	if src == nil {
		Logger().Warn("draw skipped: missing pixmap")
		return
	}
	if ppaint == nil {
		ppaint = DefaultPixmapPaint()
	}
	if src == pm {
		src = pm.Clone()
	}

	fx, fy := float32(x), float32(y)
	pattern, err := NewPattern(src, Pad, ppaint.Quality, ppaint.Opacity, Translate(fx, fy))
	if err != nil {
		Logger().Warn("draw skipped", "error", err)
		return
	}
	r, err := RectFromXYWH(fx, fy, float32(src.width), float32(src.height))
	if err != nil {
		Logger().Warn("draw skipped", "error", err)
		return
	}
	paint := &Paint{
		Shader:    pattern,
		BlendMode: ppaint.BlendMode,
	}
	pm.FillRect(r, paint, ts, mask)
}

// ApplyMask multiplies every pixel by the corresponding mask value.
func (pm *Pixmap) ApplyMask(mask *Mask) {
	if mask = pm.checkMask(mask); mask == nil {
		return
	}
	pipeline.ApplyMask(pm.target(), mask.pipelineMask())
}

// fill rasterizes the path and composites the coverage.
func (pm *Pixmap) fill(p *Path, rule FillRule, antiAlias bool, ts Transform, pipe *pipeline.Pipeline, mask *Mask) {
	dst := pm.target()
	for span := range pm.rasterizer(ts).Spans(p.geom(), rule.scan(), antiAlias) {
		var m []uint8
		if mask != nil {
			off := span.Y*mask.width + span.X
			m = mask.data[off : off+len(span.Coverage)]
		}
		pipe.BlitSpan(dst, span.Y, span.X, span.Coverage, m)
	}
}

// pipeline returns the compositing pipeline for the paint, or nil if the
// paint cannot be used with ts.
func (pm *Pixmap) pipeline(paint *Paint, ts Transform) *pipeline.Pipeline {
	shader := paint.Shader
	if pt, ok := shader.(*Pattern); ok && pt.pm == pm {
		shader = pt.withPixels(pm.Clone())
	}
	src, opacity, err := shader.source(ts)
	if err != nil {
		Logger().Warn("draw skipped", "error", err)
		return nil
	}
	return pipeline.New(src, paint.BlendMode.pipelineMode(), opacity, paint.Precision.config())
}

// checkPaint substitutes defaults for missing parts of the paint.
func (pm *Pixmap) checkPaint(paint *Paint) *Paint {
	if paint == nil {
		return DefaultPaint()
	}
	if paint.Shader == nil {
		p := *paint
		p.Shader = SolidColor{Color: Black}
		return &p
	}
	return paint
}

// checkMask returns nil if the mask cannot be used with pm.
func (pm *Pixmap) checkMask(mask *Mask) *Mask {
	if mask == nil {
		return nil
	}
	if mask.width != pm.width || mask.height != pm.height {
		Logger().Warn("mask ignored: size mismatch",
			"mask", [2]int{mask.width, mask.height},
			"pixmap", [2]int{pm.width, pm.height})
		return nil
	}
	return mask
}
