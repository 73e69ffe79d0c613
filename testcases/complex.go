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

import (
	"math"

	"seehuhn.de/go/raster"
)

// kappa places the control points of a cubic Bézier approximation to a
// quarter circle.
const kappa = 0.5522847498307936

var complexCases = []TestCase{
	{
		Name:   "mixed_lines_curves",
		Path:   mixedLinesCurves(),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: raster.NonZero},
	},
	{
		Name:   "stroked_mixed",
		Path:   mixedLinesCurves(),
		Width:  64,
		Height: 64,
		Op:     stroke(3, raster.RoundCap).withJoin(raster.RoundJoin, 10),
	},
	{
		Name:   "glyph_like",
		Path:   glyphLike(),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: raster.NonZero},
	},
	{
		Name:   "spiral_overlap",
		Path:   spiral(32, 32, 5, 25, 3),
		Width:  64,
		Height: 64,
		Op:     stroke(4, raster.RoundCap).withJoin(raster.RoundJoin, 10),
	},
	{
		Name:   "figure_eight",
		Path:   figureEight(32, 32, 20),
		Width:  64,
		Height: 64,
		Op:     stroke(4, raster.RoundCap).withJoin(raster.RoundJoin, 10),
	},
	{
		// the lobes only meet in a point, so both rules agree
		Name:   "figure_eight_nonzero",
		Path:   figureEight(32, 32, 20),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: raster.NonZero},
	},
	{
		Name:   "figure_eight_evenodd",
		Path:   figureEight(32, 32, 20),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: raster.EvenOdd},
	},
	{
		Name:   "thick_tight_curve",
		Path:   tightCurve(32, 32, 15),
		Width:  64,
		Height: 64,
		Op:     stroke(10, raster.RoundCap).withJoin(raster.RoundJoin, 10),
	},
}

func mixedLinesCurves() *raster.Path {
	return build(func(b *raster.PathBuilder) {
		b.MoveTo(10, 50)
		b.LineTo(20, 30)
		b.QuadTo(32, 10, 44, 30)
		b.LineTo(54, 50)
		b.CubicTo(48, 60, 16, 60, 10, 50)
		b.Close()
	})
}

// glyphLike builds a letter "a" like outline: a round bowl with a stem,
// and a counter which is cut out by running the other way.
func glyphLike() *raster.Path {
	const (
		cx, cy = 32, 38
		r      = 18
		k      = r * kappa
		ir     = 8
		ik     = ir * kappa
	)
	return build(func(b *raster.PathBuilder) {
		b.MoveTo(cx+r, cy)
		b.CubicTo(cx+r, cy-k, cx+k, cy-r, cx, cy-r)
		b.CubicTo(cx-k, cy-r, cx-r, cy-k, cx-r, cy)
		b.CubicTo(cx-r, cy+k, cx-k, cy+r, cx, cy+r)
		b.CubicTo(cx+k, cy+r, cx+r, cy+k, cx+r, cy)

		// stem
		b.LineTo(cx+r, 10)
		b.LineTo(cx+r-6, 10)
		b.LineTo(cx+r-6, cy)

		// counter
		b.LineTo(cx+ir, cy)
		b.CubicTo(cx+ir, cy+ik, cx+ik, cy+ir, cx, cy+ir)
		b.CubicTo(cx-ik, cy+ir, cx-ir, cy+ik, cx-ir, cy)
		b.CubicTo(cx-ir, cy-ik, cx-ik, cy-ir, cx, cy-ir)
		b.CubicTo(cx+ik, cy-ir, cx+ir, cy-ik, cx+ir, cy)
		b.Close()
	})
}

// spiral builds an open polyline spiral, using 32 segments per turn.
func spiral(cx, cy, rMin, rMax, turns float64) *raster.Path {
	steps := max(int(turns*32), 8)
	totalAngle := turns * 2 * math.Pi
	growth := (rMax - rMin) / totalAngle

	return build(func(b *raster.PathBuilder) {
		b.MoveTo(float32(cx+rMin), float32(cy))
		for i := 1; i <= steps; i++ {
			angle := float64(i) / float64(steps) * totalAngle
			r := rMin + growth*angle
			b.LineTo(float32(cx+r*math.Cos(angle)), float32(cy+r*math.Sin(angle)))
		}
	})
}

// figureEight builds two loops, above and below (cx, cy), which meet
// at (cx, cy).
func figureEight(cx, cy, size float32) *raster.Path {
	r := size / 2
	k := r * kappa
	topCy := cy - r/2
	botCy := cy + r/2

	return build(func(b *raster.PathBuilder) {
		b.MoveTo(cx, cy)
		b.CubicTo(cx+k, cy-r/4, cx+r, topCy-k/2, cx+r, topCy)
		b.CubicTo(cx+r, topCy-k, cx+k, topCy-r, cx, topCy-r)
		b.CubicTo(cx-k, topCy-r, cx-r, topCy-k, cx-r, topCy)
		b.CubicTo(cx-r, topCy+k/2, cx-k, cy-r/4, cx, cy)

		b.CubicTo(cx-k, cy+r/4, cx-r, botCy-k/2, cx-r, botCy)
		b.CubicTo(cx-r, botCy+k, cx-k, botCy+r, cx, botCy+r)
		b.CubicTo(cx+k, botCy+r, cx+r, botCy+k, cx+r, botCy)
		b.CubicTo(cx+r, botCy-k/2, cx+k, cy+r/4, cx, cy)
	})
}

// tightCurve builds a U-turn whose radius is smaller than the stroke
// width used with it.
func tightCurve(cx, cy, r float32) *raster.Path {
	k := r * kappa
	return build(func(b *raster.PathBuilder) {
		b.MoveTo(cx-r, cy-r)
		b.LineTo(cx-r, cy)
		b.CubicTo(cx-r, cy+k, cx-k, cy+r, cx, cy+r)
		b.CubicTo(cx+k, cy+r, cx+r, cy+k, cx+r, cy)
		b.LineTo(cx+r, cy-r)
	})
}
