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

// Shapes which cover enough pixels to use the active edge list strategy
// of the scan converter.
var largeCases = []TestCase{
	{
		Name:   "large_rectangle",
		Path:   rectangle(50, 50, 462, 462),
		Width:  512,
		Height: 512,
		Op:     Fill{Rule: raster.NonZero},
	},
	{
		Name:   "large_concentric_nonzero",
		Path:   concentricRectangles(256, 256, 200, 100),
		Width:  512,
		Height: 512,
		Op:     Fill{Rule: raster.NonZero},
	},
	{
		Name:   "large_grid",
		Path:   rectangleGrid(8, 8, 512, 512, 4),
		Width:  512,
		Height: 512,
		Op:     Fill{Rule: raster.NonZero},
	},
	{
		Name:   "large_clipped",
		Path:   rectangle(-100, 100, 612, 400),
		Width:  512,
		Height: 512,
		Op:     Fill{Rule: raster.NonZero},
	},
}

// concentricRectangles builds two squares with the same orientation,
// so that the inner square has winding number 2.
func concentricRectangles(cx, cy, outer, inner float32) *raster.Path {
	return build(func(b *raster.PathBuilder) {
		b.PushRect(rect(cx-outer, cy-outer, cx+outer, cy+outer))
		b.PushRect(rect(cx-inner, cy-inner, cx+inner, cy+inner))
	})
}

// rectangleGrid builds rows×cols rectangles covering a width×height
// area, separated by the given gap.
func rectangleGrid(rows, cols, width, height int, gap float32) *raster.Path {
	cellW := float32(width) / float32(cols)
	cellH := float32(height) / float32(rows)
	return build(func(b *raster.PathBuilder) {
		for row := range rows {
			for col := range cols {
				b.PushRect(rect(
					float32(col)*cellW+gap, float32(row)*cellH+gap,
					float32(col+1)*cellW-gap, float32(row+1)*cellH-gap))
			}
		}
	})
}
