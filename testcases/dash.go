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

var dashCases = []TestCase{
	{
		Name:   "dash_single_element",
		Path:   horizontalLine(5, 32, 59),
		Width:  64,
		Height: 64,
		Op:     stroke(4, raster.ButtCap).withDash(0, 10),
	},
	{
		// odd length, repeated to [5, 3, 8, 5, 3, 8]
		Name:   "dash_three_element",
		Path:   horizontalLine(5, 32, 59),
		Width:  64,
		Height: 64,
		Op:     stroke(4, raster.ButtCap).withDash(0, 5, 3, 8),
	},
	{
		Name:   "dash_long_short",
		Path:   horizontalLine(5, 32, 59),
		Width:  64,
		Height: 64,
		Op:     stroke(4, raster.ButtCap).withDash(0, 20, 2),
	},
	{
		Name:   "dash_short_long",
		Path:   horizontalLine(5, 32, 59),
		Width:  64,
		Height: 64,
		Op:     stroke(4, raster.ButtCap).withDash(0, 2, 20),
	},
	{
		Name:   "dash_phase_half",
		Path:   horizontalLine(5, 32, 59),
		Width:  64,
		Height: 64,
		Op:     stroke(4, raster.ButtCap).withDash(5, 10, 10),
	},
	{
		Name:   "dash_phase_negative",
		Path:   horizontalLine(5, 32, 59),
		Width:  64,
		Height: 64,
		Op:     stroke(4, raster.ButtCap).withDash(-7, 10, 10),
	},
	{
		Name:   "dash_phase_large",
		Path:   horizontalLine(5, 32, 59),
		Width:  64,
		Height: 64,
		Op:     stroke(4, raster.ButtCap).withDash(1003, 10, 10),
	},
	{
		Name:   "dash_zero_round",
		Path:   horizontalLine(8, 32, 56),
		Width:  64,
		Height: 64,
		Op:     stroke(6, raster.RoundCap).withDash(0, 0, 8),
	},
	{
		Name:   "dash_zero_square",
		Path:   corner(8, 48, 32, 16, 56, 48),
		Width:  64,
		Height: 64,
		Op:     stroke(5, raster.SquareCap).withDash(0, 0, 9),
	},
	{
		Name:   "dash_corner_in_dash",
		Path:   corner(10, 50, 32, 14, 54, 50),
		Width:  64,
		Height: 64,
		Op:     stroke(5, raster.ButtCap).withDash(0, 30, 6),
	},
	{
		Name:   "dash_corner_in_gap",
		Path:   corner(10, 50, 32, 14, 54, 50),
		Width:  64,
		Height: 64,
		Op:     stroke(5, raster.ButtCap).withDash(36, 30, 12),
	},
	{
		Name:   "dash_closed_square",
		Path:   rectangle(12, 12, 52, 52),
		Width:  64,
		Height: 64,
		Op:     stroke(4, raster.ButtCap).withDash(0, 12, 8),
	},
	{
		// the last dash runs through the start point
		Name:   "dash_closed_join",
		Path:   rectangle(12, 12, 52, 52),
		Width:  64,
		Height: 64,
		Op:     stroke(4, raster.ButtCap).withDash(6, 12, 8),
	},
	{
		Name:   "dash_curve",
		Path:   circle(32, 32, 22),
		Width:  64,
		Height: 64,
		Op:     stroke(3, raster.RoundCap).withDash(0, 6, 4),
	},
}
