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

var strokeCases = []TestCase{
	{
		Name:   "line_butt",
		Path:   horizontalLine(10, 32, 54),
		Width:  64,
		Height: 64,
		Op:     stroke(8, raster.ButtCap),
	},
	{
		Name:   "line_round",
		Path:   horizontalLine(10, 32, 54),
		Width:  64,
		Height: 64,
		Op:     stroke(8, raster.RoundCap),
	},
	{
		Name:   "line_square",
		Path:   horizontalLine(10, 32, 54),
		Width:  64,
		Height: 64,
		Op:     stroke(8, raster.SquareCap),
	},
	{
		Name:   "line_diagonal",
		Path:   corner(8, 56, 32, 32, 56, 8),
		Width:  64,
		Height: 64,
		Op:     stroke(5, raster.RoundCap),
	},
	{
		Name:   "corner_miter",
		Path:   corner(10, 50, 32, 14, 54, 50),
		Width:  64,
		Height: 64,
		Op:     stroke(6, raster.ButtCap),
	},
	{
		Name:   "corner_miter_limited",
		Path:   corner(10, 50, 32, 14, 54, 50),
		Width:  64,
		Height: 64,
		Op:     stroke(6, raster.ButtCap).withJoin(raster.MiterJoin, 1.5),
	},
	{
		Name:   "corner_miter_clip",
		Path:   corner(10, 50, 32, 14, 54, 50),
		Width:  64,
		Height: 64,
		Op:     stroke(6, raster.ButtCap).withJoin(raster.MiterClipJoin, 1.5),
	},
	{
		Name:   "corner_round",
		Path:   corner(10, 50, 32, 14, 54, 50),
		Width:  64,
		Height: 64,
		Op:     stroke(6, raster.ButtCap).withJoin(raster.RoundJoin, 10),
	},
	{
		Name:   "corner_bevel",
		Path:   corner(10, 50, 32, 14, 54, 50),
		Width:  64,
		Height: 64,
		Op:     stroke(6, raster.ButtCap).withJoin(raster.BevelJoin, 10),
	},
	{
		Name:   "closed_square",
		Path:   rectangle(12, 12, 52, 52),
		Width:  64,
		Height: 64,
		Op:     stroke(6, raster.ButtCap),
	},
	{
		Name:   "zigzag_thick",
		Path:   zigzag(6, 58, 16, 48, 4),
		Width:  64,
		Height: 64,
		Op:     stroke(7, raster.RoundCap).withJoin(raster.RoundJoin, 10),
	},
	{
		Name:   "zigzag_miter_clip",
		Path:   zigzag(6, 58, 16, 48, 4),
		Width:  64,
		Height: 64,
		Op:     stroke(5, raster.ButtCap).withJoin(raster.MiterClipJoin, 2),
	},
	{
		Name: "dots",
		Path: build(func(b *raster.PathBuilder) {
			b.MoveTo(16, 32)
			b.LineTo(16, 32)
			b.MoveTo(32, 32)
			b.Close()
		}),
		Width:  64,
		Height: 64,
		Op:     stroke(10, raster.SquareCap),
	},
	{
		Name:   "thin_line",
		Path:   horizontalLine(4, 32.5, 60),
		Width:  64,
		Height: 64,
		Op:     stroke(0.25, raster.ButtCap),
	},
	{
		Name:   "path_doubles_back",
		Path:   corner(10, 32, 54, 32, 20, 32),
		Width:  64,
		Height: 64,
		Op:     stroke(6, raster.ButtCap),
	},
}
