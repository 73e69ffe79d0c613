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

var fillCases = []TestCase{
	{
		Name:   "triangle_nonzero",
		Path:   triangle(10, 50, 32, 10, 54, 50),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: raster.NonZero},
	},
	{
		Name:   "triangle_evenodd",
		Path:   triangle(10, 50, 32, 10, 54, 50),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: raster.EvenOdd},
	},
	{
		Name:   "star_nonzero",
		Path:   fivePointStar(32, 32, 25),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: raster.NonZero},
	},
	{
		Name:   "star_evenodd",
		Path:   fivePointStar(32, 32, 25),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: raster.EvenOdd},
	},
	{
		Name:   "rectangle",
		Path:   rectangle(10, 10, 44, 44),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: raster.NonZero},
	},
	{
		Name:   "subpixel_rectangle",
		Path:   rectangle(10.25, 10.5, 43.75, 20.3),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: raster.NonZero},
	},
	{
		Name: "two_triangles",
		Path: build(func(b *raster.PathBuilder) {
			b.PushPolyline([]raster.Point{{X: 5, Y: 50}, {X: 18, Y: 14}, {X: 30, Y: 50}}, true)
			b.PushPolyline([]raster.Point{{X: 34, Y: 14}, {X: 58, Y: 14}, {X: 46, Y: 50}}, true)
		}),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: raster.NonZero},
	},
	{
		Name: "overlapping_rect_nonzero",
		Path: build(func(b *raster.PathBuilder) {
			b.PushRect(rect(8, 8, 40, 40))
			b.PushRect(rect(24, 24, 56, 56))
		}),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: raster.NonZero},
	},
	{
		Name: "overlapping_rect_evenodd",
		Path: build(func(b *raster.PathBuilder) {
			b.PushRect(rect(8, 8, 40, 40))
			b.PushRect(rect(24, 24, 56, 56))
		}),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: raster.EvenOdd},
	},
	{
		// the inner contour runs the other way, so both rules agree
		Name: "ring_shape",
		Path: build(func(b *raster.PathBuilder) {
			b.PushRect(rect(8, 8, 56, 56))
			reverseRectangle(b, 20, 20, 44, 44)
		}),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: raster.NonZero},
	},
	{
		// three rings, with the inner squares cut out by the even-odd rule
		Name: "multiple_rings",
		Path: build(func(b *raster.PathBuilder) {
			for _, c := range []raster.Point{{X: 34, Y: 34}, {X: 94, Y: 34}, {X: 64, Y: 94}} {
				b.PushRect(rect(c.X-20, c.Y-20, c.X+20, c.Y+20))
				b.PushRect(rect(c.X-10, c.Y-10, c.X+10, c.Y+10))
			}
		}),
		Width:  128,
		Height: 128,
		Op:     Fill{Rule: raster.EvenOdd},
	},
	{
		Name: "many_small_shapes",
		Path: build(func(b *raster.PathBuilder) {
			for i := range 6 {
				for j := range 6 {
					x := float32(4 + 10*i)
					y := float32(4 + 10*j)
					b.PushCircle(x+3, y+3, 2.5)
				}
			}
		}),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: raster.NonZero},
	},
	{
		Name:   "clipped",
		Path:   rectangle(-50, 20, 150, 1000),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: raster.NonZero},
	},
	{
		Name: "large_concentric_evenodd",
		Path: build(func(b *raster.PathBuilder) {
			for r := float32(10); r <= 120; r += 10 {
				b.PushCircle(128, 128, r)
			}
		}),
		Width:  256,
		Height: 256,
		Op:     Fill{Rule: raster.EvenOdd},
	},
	{
		Name: "large_diamond",
		Path: build(func(b *raster.PathBuilder) {
			b.PushPolyline([]raster.Point{{X: 128, Y: 4}, {X: 252, Y: 128}, {X: 128, Y: 252}, {X: 4, Y: 128}}, true)
		}),
		Width:  256,
		Height: 256,
		Op:     Fill{Rule: raster.NonZero},
	},
}
