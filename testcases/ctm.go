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

// unitShape is a shape centred at the origin, used to test transforms.
var unitShape = build(func(b *raster.PathBuilder) {
	b.MoveTo(-10, -10)
	b.LineTo(10, -10)
	b.QuadTo(14, 0, 10, 10)
	b.LineTo(-10, 10)
	b.Close()
})

var ctmCases = []TestCase{
	{
		Name:   "scale_2x",
		Path:   unitShape,
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: raster.NonZero},
		CTM:    raster.Scale(2, 2).PostTranslate(32, 32),
	},
	{
		Name:   "scale_half",
		Path:   unitShape,
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: raster.NonZero},
		CTM:    raster.Scale(0.5, 0.5).PostTranslate(12, 12),
	},
	{
		Name:   "rotate_45deg",
		Path:   unitShape,
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: raster.NonZero},
		CTM:    raster.Rotate(45).PostTranslate(32, 32),
	},
	{
		Name:   "rotate_5deg",
		Path:   unitShape,
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: raster.NonZero},
		CTM:    raster.Rotate(5).PostTranslate(32, 32),
	},
	{
		Name:   "circle_to_ellipse",
		Path:   circle(0, 0, 14),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: raster.NonZero},
		CTM:    raster.Scale(2, 1).PostTranslate(32, 32),
	},
	{
		Name:   "shear_horizontal",
		Path:   unitShape,
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: raster.NonZero},
		CTM:    raster.Skew(0.5, 0).PostTranslate(32, 32),
	},
	{
		Name:   "shear_and_rotate",
		Path:   unitShape,
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: raster.NonZero},
		CTM:    raster.Skew(0.3, 0).PostConcat(raster.Rotate(30)).PostTranslate(32, 32),
	},
	{
		Name:   "round_cap_nonuniform",
		Path:   horizontalLine(-10, 0, 10),
		Width:  64,
		Height: 64,
		Op:     stroke(6, raster.RoundCap),
		CTM:    raster.Scale(2, 1).PostTranslate(32, 32),
	},
	{
		Name:   "round_join_rotated",
		Path:   corner(-15, 10, 0, -10, 15, 10),
		Width:  64,
		Height: 64,
		Op:     stroke(5, raster.ButtCap).withJoin(raster.RoundJoin, 10),
		CTM:    raster.Rotate(30).PostTranslate(32, 32),
	},
	{
		Name:   "dash_scaled",
		Path:   horizontalLine(-12, 0, 12),
		Width:  64,
		Height: 64,
		Op:     stroke(3, raster.ButtCap).withDash(0, 4, 2),
		CTM:    raster.Scale(2, 1).PostTranslate(32, 32),
	},
	{
		Name:   "scale_10x",
		Path:   triangle(-1, 1, 0, -1, 1, 1),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: raster.NonZero},
		CTM:    raster.Scale(10, 10).PostTranslate(32, 32),
	},
}
