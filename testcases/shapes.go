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

// build runs fn on a new path builder and returns the result.
// Test case definitions are static, so errors cause a panic.
func build(fn func(b *raster.PathBuilder)) *raster.Path {
	b := &raster.PathBuilder{}
	fn(b)
	p, err := b.Finish()
	if err != nil {
		panic(err)
	}
	return p
}

func rect(x0, y0, x1, y1 float32) raster.Rect {
	r, err := raster.NewRect(x0, y0, x1, y1)
	if err != nil {
		panic(err)
	}
	return r
}

// rectangle builds a closed rectangle, running clockwise on the screen.
func rectangle(x0, y0, x1, y1 float32) *raster.Path {
	return build(func(b *raster.PathBuilder) {
		b.PushRect(rect(x0, y0, x1, y1))
	})
}

// reverseRectangle builds a closed rectangle with the opposite
// orientation to [rectangle].
func reverseRectangle(b *raster.PathBuilder, x0, y0, x1, y1 float32) {
	b.MoveTo(x0, y0)
	b.LineTo(x0, y1)
	b.LineTo(x1, y1)
	b.LineTo(x1, y0)
	b.Close()
}

func triangle(x1, y1, x2, y2, x3, y3 float32) *raster.Path {
	return build(func(b *raster.PathBuilder) {
		b.PushPolyline([]raster.Point{{X: x1, Y: y1}, {X: x2, Y: y2}, {X: x3, Y: y3}}, true)
	})
}

// starPoints returns the corners of a regular polygon with n corners,
// starting at the top.
func starPoints(cx, cy, r float32, n int) []raster.Point {
	pts := make([]raster.Point, n)
	for i := range pts {
		angle := float64(i)*2*math.Pi/float64(n) - math.Pi/2
		pts[i] = raster.Point{
			X: cx + r*float32(math.Cos(angle)),
			Y: cy + r*float32(math.Sin(angle)),
		}
	}
	return pts
}

// fivePointStar builds a self-intersecting five-pointed star.
func fivePointStar(cx, cy, r float32) *raster.Path {
	pts := starPoints(cx, cy, r, 5)
	return build(func(b *raster.PathBuilder) {
		// connect every second point: 0 -> 2 -> 4 -> 1 -> 3 -> 0
		b.PushPolyline([]raster.Point{pts[0], pts[2], pts[4], pts[1], pts[3]}, true)
	})
}

func circle(cx, cy, r float32) *raster.Path {
	p, err := raster.PathFromCircle(cx, cy, r)
	if err != nil {
		panic(err)
	}
	return p
}

func horizontalLine(x1, y, x2 float32) *raster.Path {
	return build(func(b *raster.PathBuilder) {
		b.MoveTo(x1, y)
		b.LineTo(x2, y)
	})
}

// corner builds a path with two line segments meeting at a corner.
func corner(x1, y1, x2, y2, x3, y3 float32) *raster.Path {
	return build(func(b *raster.PathBuilder) {
		b.PushPolyline([]raster.Point{{X: x1, Y: y1}, {X: x2, Y: y2}, {X: x3, Y: y3}}, false)
	})
}

// zigzag builds an open polyline with n teeth between x0 and x1.
func zigzag(x0, x1, yTop, yBottom float32, n int) *raster.Path {
	return build(func(b *raster.PathBuilder) {
		dx := (x1 - x0) / float32(2*n)
		b.MoveTo(x0, yBottom)
		for i := range 2 * n {
			y := yTop
			if i%2 == 1 {
				y = yBottom
			}
			b.LineTo(x0+float32(i+1)*dx, y)
		}
	})
}
