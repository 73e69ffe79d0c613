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

	"seehuhn.de/go/raster/internal/pipeline"
)

// SpreadMode selects how gradients and patterns extend beyond their
// natural domain.
type SpreadMode uint8

const (
	// Pad repeats the edge color.
	Pad SpreadMode = SpreadMode(pipeline.Pad)

	// Repeat tiles the domain.
	Repeat SpreadMode = SpreadMode(pipeline.Repeat)

	// Reflect tiles the domain, mirroring every other copy.
	Reflect SpreadMode = SpreadMode(pipeline.Reflect)
)

// FilterQuality selects how pattern images are sampled.
type FilterQuality uint8

const (
	Nearest  FilterQuality = FilterQuality(pipeline.Nearest)
	Bilinear FilterQuality = FilterQuality(pipeline.Bilinear)
	Bicubic  FilterQuality = FilterQuality(pipeline.Bicubic)
)

// Shader is the color source of a [Paint].
// The implementations are [SolidColor], [*LinearGradient],
// [*RadialGradient] and [*Pattern].
type Shader interface {
	// source returns the pipeline color source for drawing with the
	// transform ts, and the opacity of the shader. If the shader cannot
	// be used with ts, an error is returned.
	source(ts Transform) (pipeline.ColorSource, float32, error)
}

// SolidColor paints every pixel with the same color.
type SolidColor struct {
	Color Color
}

func (s SolidColor) source(Transform) (pipeline.ColorSource, float32, error) {
	c := s.Color.Premultiply()
	return pipeline.Solid{R: c.R, G: c.G, B: c.B, A: c.A}, 1, nil
}

// GradientStop is a color at a position along a gradient.
type GradientStop struct {
	// Position is in the range [0, 1].
	Position float32
	Color    Color
}

// checkStops validates gradient stops and converts them for the pipeline.
func checkStops(stops []GradientStop) ([]pipeline.Stop, error) {
	if len(stops) < 2 {
		return nil, fmt.Errorf("%d stops: %w", len(stops), ErrTooFewStops)
	}
	res := make([]pipeline.Stop, len(stops))
	singleColor := true
	for i, s := range stops {
		if !(s.Position >= 0 && s.Position <= 1) {
			return nil, fmt.Errorf("stop %d at %g: %w", i, s.Position, ErrInvalidStopPosition)
		}
		if i > 0 && s.Position < stops[i-1].Position {
			return nil, fmt.Errorf("stop %d at %g: %w", i, s.Position, ErrUnsortedStops)
		}
		if s.Color != stops[0].Color {
			singleColor = false
		}
		c := s.Color.Premultiply()
		res[i] = pipeline.Stop{Pos: s.Position, R: c.R, G: c.G, B: c.B, A: c.A}
	}
	if singleColor {
		return nil, ErrSingleColorGradient
	}
	return res, nil
}

// gradientInverse returns the inverse of the combined transform, which
// maps device space to gradient space.
func gradientInverse(draw, local Transform) (pipeline.Affine, error) {
	inv, ok := draw.PreConcat(local).Invert()
	if !ok {
		return pipeline.Affine{}, ErrNonInvertibleTransform
	}
	return inv.affine(), nil
}

// LinearGradient varies the color along a line.
type LinearGradient struct {
	start, end Point
	stops      []pipeline.Stop
	mode       SpreadMode
	ts         Transform
}

// NewLinearGradient returns a gradient which varies from the first stop
// at start to the last stop at end. The points are given in the
// coordinate system defined by ts, which must be invertible.
func NewLinearGradient(start, end Point, stops []GradientStop, mode SpreadMode, ts Transform) (*LinearGradient, error) {
	ps, err := checkStops(stops)
	if err != nil {
		return nil, err
	}
	if !start.IsFinite() || !end.IsFinite() || start == end {
		return nil, fmt.Errorf("linear gradient from %v to %v: %w", start, end, ErrDegenerateGradient)
	}
	if !ts.IsInvertible() {
		return nil, ErrNonInvertibleTransform
	}
	return &LinearGradient{start: start, end: end, stops: ps, mode: mode, ts: ts}, nil
}

func (g *LinearGradient) source(ts Transform) (pipeline.ColorSource, float32, error) {
	inv, err := gradientInverse(ts, g.ts)
	if err != nil {
		return nil, 0, err
	}
	src := pipeline.NewLinearGradient(inv,
		g.start.X, g.start.Y, g.end.X, g.end.Y,
		g.stops, pipeline.SpreadMode(g.mode))
	return src, 1, nil
}

// RadialGradient is a two-point conical gradient. The color at a point
// is given by the largest t for which the point lies on the circle
// interpolated between the start circle (t = 0) and the end circle
// (t = 1).
type RadialGradient struct {
	start, end  Point
	startRadius float32
	endRadius   float32
	stops       []pipeline.Stop
	mode        SpreadMode
	ts          Transform
}

// NewRadialGradient returns a gradient between the circle around start
// with radius startRadius and the circle around end with radius
// endRadius. For a simple radial gradient, use the same centre for both
// circles and a start radius of 0.
func NewRadialGradient(start Point, startRadius float32, end Point, endRadius float32, stops []GradientStop, mode SpreadMode, ts Transform) (*RadialGradient, error) {
	ps, err := checkStops(stops)
	if err != nil {
		return nil, err
	}
	if !(startRadius >= 0) || !(endRadius >= 0) || !isFinite(startRadius) || !isFinite(endRadius) ||
		startRadius == 0 && endRadius == 0 {
		return nil, fmt.Errorf("radii %g and %g: %w", startRadius, endRadius, ErrInvalidRadius)
	}
	if !start.IsFinite() || !end.IsFinite() {
		return nil, fmt.Errorf("radial gradient from %v to %v: %w", start, end, ErrDegenerateGradient)
	}
	if start == end && startRadius == endRadius {
		return nil, fmt.Errorf("identical circles: %w", ErrDegenerateGradient)
	}
	if !ts.IsInvertible() {
		return nil, ErrNonInvertibleTransform
	}
	return &RadialGradient{
		start:       start,
		end:         end,
		startRadius: startRadius,
		endRadius:   endRadius,
		stops:       ps,
		mode:        mode,
		ts:          ts,
	}, nil
}

func (g *RadialGradient) source(ts Transform) (pipeline.ColorSource, float32, error) {
	inv, err := gradientInverse(ts, g.ts)
	if err != nil {
		return nil, 0, err
	}
	src := pipeline.NewConicalGradient(inv,
		g.start.X, g.start.Y, g.startRadius,
		g.end.X, g.end.Y, g.endRadius,
		g.stops, pipeline.SpreadMode(g.mode))
	return src, 1, nil
}

// Pattern paints with the pixels of an image.
//
// The pattern refers to the pixels of the pixmap it was created from, so
// later changes to the pixmap are visible when the pattern is used.
type Pattern struct {
	pm      *Pixmap
	mode    SpreadMode
	quality FilterQuality
	opacity float32
	ts      Transform
}

// NewPattern returns a shader which paints with the image pm. The
// transform ts maps image coordinates to user space and must be
// invertible. The opacity must be in the range [0, 1].
func NewPattern(pm *Pixmap, mode SpreadMode, quality FilterQuality, opacity float32, ts Transform) (*Pattern, error) {
	if pm == nil {
		return nil, fmt.Errorf("missing pattern image: %w", ErrInvalidSize)
	}
	if !(opacity >= 0 && opacity <= 1) {
		return nil, fmt.Errorf("pattern opacity %g: %w", opacity, ErrInvalidOpacity)
	}
	if !ts.IsInvertible() {
		return nil, ErrNonInvertibleTransform
	}
	return &Pattern{pm: pm, mode: mode, quality: quality, opacity: opacity, ts: ts}, nil
}

func (pt *Pattern) source(ts Transform) (pipeline.ColorSource, float32, error) {
	inv, err := gradientInverse(ts, pt.ts)
	if err != nil {
		return nil, 0, err
	}
	src := &pipeline.Pattern{
		Pix:     pt.pm.data,
		Width:   pt.pm.width,
		Height:  pt.pm.height,
		Inverse: inv,
		Spread:  pipeline.SpreadMode(pt.mode),
		Filter:  pipeline.FilterQuality(pt.quality),
	}
	return src, pt.opacity, nil
}

// withPixels returns a copy of the pattern which reads from pm.
func (pt *Pattern) withPixels(pm *Pixmap) *Pattern {
	res := *pt
	res.pm = pm
	return &res
}
