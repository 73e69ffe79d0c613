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


package testcases

import "seehuhn.de/go/raster"

var precisionCases = []TestCase{
	{
		Name:   "subpixel_offset_00",
		Path:   offsetRectangle(20, 20, 24, 24, 0),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: raster.NonZero},
	},
	{
		Name:   "subpixel_offset_25",
		Path:   offsetRectangle(20, 20, 24, 24, 0.25),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: raster.NonZero},
	},
	{
		Name:   "subpixel_offset_50",
		Path:   offsetRectangle(20, 20, 24, 24, 0.5),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: raster.NonZero},
	},
	{
		Name:   "subpixel_offset_75",
		Path:   offsetRectangle(20, 20, 24, 24, 0.75),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: raster.NonZero},
	},
	{
		// the stroke covers two half rows
		Name:   "thin_line_y_integer",
		Path:   horizontalLine(5, 10, 59),
		Width:  64,
		Height: 64,
		Op:     stroke(1, raster.ButtCap),
	},
	{
		// the stroke covers exactly one row
		Name:   "thin_line_y_half",
		Path:   horizontalLine(5, 10.5, 59),
		Width:  64,
		Height: 64,
		Op:     stroke(1, raster.ButtCap),
	},
	{
		Name:   "large_coord_centered",
		Path:   centredSquare(1000, 1000, 20),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: raster.NonZero},
		CTM:    raster.Translate(32-1000, 32-1000),
	},
	{
		Name:   "small_shape_large_offset",
		Path:   centredSquare(10000, 10000, 2),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: raster.NonZero},
		CTM:    raster.Translate(32-10000, 32-10000),
	},
	{
		// The two offsets differ below float32 resolution and must give
		// the same edge position.
		Name: "float_precision",
		Path: build(func(b *raster.PathBuilder) {
			const (
				delta1 = 0.123456789012345
				delta2 = 0.123456789012346
			)
			b.PushRect(rect(22+delta1, 22+delta1, 42+delta2, 42+delta2))
		}),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: raster.NonZero},
	},
}

func offsetRectangle(x, y, w, h, offset float32) *raster.Path {
	return rectangle(x+offset, y+offset, x+w+offset, y+h+offset)
}

// centredSquare builds a square with the given centre and side length.
func centredSquare(cx, cy, size float32) *raster.Path {
	return rectangle(cx-size/2, cy-size/2, cx+size/2, cy+size/2)
}
