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

var curveCases = []TestCase{
	{
		Name: "quadratic",
		Path: build(func(b *raster.PathBuilder) {
			b.MoveTo(8, 52)
			b.QuadTo(32, -8, 56, 52)
			b.Close()
		}),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: raster.NonZero},
	},
	{
		Name: "quadratic_s_shape",
		Path: build(func(b *raster.PathBuilder) {
			b.MoveTo(8, 32)
			b.QuadTo(20, 4, 32, 32)
			b.QuadTo(44, 60, 56, 32)
			b.LineTo(56, 56)
			b.LineTo(8, 56)
			b.Close()
		}),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: raster.NonZero},
	},
	{
		Name: "cubic",
		Path: build(func(b *raster.PathBuilder) {
			b.MoveTo(8, 52)
			b.CubicTo(8, 8, 56, 8, 56, 52)
			b.Close()
		}),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: raster.NonZero},
	},
	{
		Name: "cubic_loop",
		Path: build(func(b *raster.PathBuilder) {
			b.MoveTo(10, 40)
			b.CubicTo(70, 0, -6, 0, 54, 40)
			b.Close()
		}),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: raster.NonZero},
	},
	{
		Name: "cubic_cusp",
		Path: build(func(b *raster.PathBuilder) {
			b.MoveTo(8, 52)
			b.CubicTo(56, 8, 8, 8, 56, 52)
			b.Close()
		}),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: raster.NonZero},
	},
	{
		Name:   "circle",
		Path:   circle(32, 32, 24),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: raster.NonZero},
	},
	{
		Name:   "circle_small",
		Path:   circle(32.3, 31.6, 2.2),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: raster.NonZero},
	},
	{
		Name: "ellipse",
		Path: build(func(b *raster.PathBuilder) {
			b.PushOval(rect(4, 18, 60, 46))
		}),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: raster.NonZero},
	},
	{
		Name: "quadratic_stroked",
		Path: build(func(b *raster.PathBuilder) {
			b.MoveTo(8, 52)
			b.QuadTo(32, -8, 56, 52)
		}),
		Width:  64,
		Height: 64,
		Op:     stroke(4, raster.RoundCap),
	},
	{
		Name: "cubic_scurve_stroked",
		Path: build(func(b *raster.PathBuilder) {
			b.MoveTo(8, 32)
			b.CubicTo(24, -8, 40, 72, 56, 32)
		}),
		Width:  64,
		Height: 64,
		Op:     stroke(5, raster.ButtCap),
	},
	{
		Name:   "circle_stroked",
		Path:   circle(32, 32, 22),
		Width:  64,
		Height: 64,
		Op:     stroke(3, raster.ButtCap),
	},
	{
		Name: "cubic_degenerate",
		Path: build(func(b *raster.PathBuilder) {
			b.MoveTo(8, 32)
			b.CubicTo(8, 32, 56, 32, 56, 32)
			b.LineTo(56, 48)
			b.LineTo(8, 48)
			b.Close()
		}),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: raster.NonZero},
	},
}
