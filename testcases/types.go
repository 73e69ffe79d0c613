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

// Package testcases holds a collection of named drawing operations, used
// to compare the rasterizer against other implementations.
package testcases

import (
	"seehuhn.de/go/raster"
)

// TestCase defines a single rendering test.
type TestCase struct {
	Name   string       // lowercase a-z, 0-9 and _ only
	Path   *raster.Path // the geometry to render
	Width  int          // canvas width in pixels
	Height int          // canvas height in pixels
	Op     Operation    // fill or stroke

	// CTM maps the path to pixel coordinates.
	// The zero value means no transform.
	CTM raster.Transform
}

// Transform returns the transformation to use for drawing the test case.
func (tc TestCase) Transform() raster.Transform {
	if tc.CTM == (raster.Transform{}) {
		return raster.Identity()
	}
	return tc.CTM
}

// Operation is the rendering operation to apply to the path.
type Operation interface {
	isOperation()
}

// Fill specifies a fill operation.
type Fill struct {
	Rule raster.FillRule
}

func (Fill) isOperation() {}

// Stroke specifies a stroke operation.
type Stroke struct {
	Style raster.Stroke
}

func (Stroke) isOperation() {}

// stroke returns a stroke operation with miter joins and miter limit 10.
func stroke(width float32, lineCap raster.LineCap) Stroke {
	return Stroke{Style: raster.Stroke{
		Width:      width,
		MiterLimit: 10,
		LineCap:    lineCap,
		LineJoin:   raster.MiterJoin,
	}}
}

// withJoin returns a copy of s with the given join style and miter limit.
func (s Stroke) withJoin(join raster.LineJoin, miterLimit float32) Stroke {
	s.Style.LineJoin = join
	s.Style.MiterLimit = miterLimit
	return s
}

// withDash returns a copy of s with the given dash pattern.
func (s Stroke) withDash(phase float32, intervals ...float32) Stroke {
	d, err := raster.NewStrokeDash(intervals, phase)
	if err != nil {
		panic(err)
	}
	s.Style.Dash = d
	return s
}
