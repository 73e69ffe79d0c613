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


package raster_test

import (
	"fmt"
	"image"
	"image/color"
	"maps"
	"slices"
	"testing"

	"golang.org/x/image/vector"

	"seehuhn.de/go/raster"
	"seehuhn.de/go/raster/testcases"
)

// BenchmarkFillO benchmarks filling an "O" shape.
func BenchmarkFillO(b *testing.B) {
	sizes := []int{20, 200, 2000}

	for _, size := range sizes {
		for _, aa := range []bool{true, false} {
			b.Run(fmt.Sprintf("%dx%d/aa=%t", size, size, aa), func(b *testing.B) {
				pm, err := raster.NewPixmap(size, size)
				if err != nil {
					b.Fatal(err)
				}
				paint := raster.DefaultPaint()
				paint.AntiAlias = aa

				center := float32(size) / 2
				oPath, err := makeOPath(center, center, float32(size)*0.45, float32(size)*0.30)
				if err != nil {
					b.Fatal(err)
				}

				b.ReportAllocs()
				for b.Loop() {
					pm.FillPath(oPath, paint, raster.EvenOdd, raster.Identity(), nil)
				}
			})
		}
	}
}

// BenchmarkVectorO benchmarks x/image/vector drawing the same "O" shape.
func BenchmarkVectorO(b *testing.B) {
	sizes := []int{20, 200, 2000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			r := vector.NewRasterizer(size, size)

			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.Alpha{255})

			center := float32(size) / 2
			outerR := float32(size) * 0.45
			innerR := float32(size) * 0.30

			b.ReportAllocs()
			for b.Loop() {
				r.Reset(size, size)
				addCircleToVector(r, center, center, outerR, false)
				addCircleToVector(r, center, center, innerR, true)
				r.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}

// BenchmarkStrokeCircle benchmarks stroking a circle with a dash pattern.
func BenchmarkStrokeCircle(b *testing.B) {
	pm, err := raster.NewPixmap(400, 400)
	if err != nil {
		b.Fatal(err)
	}
	circle, err := raster.PathFromCircle(200, 200, 150)
	if err != nil {
		b.Fatal(err)
	}
	dash, err := raster.NewStrokeDash([]float32{20, 10}, 0)
	if err != nil {
		b.Fatal(err)
	}

	for _, tc := range []struct {
		name string
		dash *raster.StrokeDash
	}{
		{"solid", nil},
		{"dashed", dash},
	} {
		b.Run(tc.name, func(b *testing.B) {
			stroke := raster.DefaultStroke()
			stroke.Width = 8
			stroke.LineJoin = raster.RoundJoin
			stroke.Dash = tc.dash
			paint := raster.DefaultPaint()

			b.ReportAllocs()
			for b.Loop() {
				pm.StrokePath(circle, paint, stroke, raster.Identity(), nil)
			}
		})
	}
}

// BenchmarkBlendModes benchmarks compositing a rectangle with partial
// coverage, for a selection of blend modes.
func BenchmarkBlendModes(b *testing.B) {
	pm, err := raster.NewPixmap(256, 256)
	if err != nil {
		b.Fatal(err)
	}
	pm.Fill(raster.ColorFromRGBA8(50, 100, 150, 200))
	r, err := raster.NewRect(0.5, 0.5, 255.5, 255.5)
	if err != nil {
		b.Fatal(err)
	}

	modes := []raster.BlendMode{
		raster.BlendSourceOver,
		raster.BlendMultiply,
		raster.BlendHue,
	}
	for _, mode := range modes {
		for _, prec := range []raster.Precision{raster.PrecisionLow, raster.PrecisionHigh} {
			b.Run(fmt.Sprintf("%s/%d", mode, prec), func(b *testing.B) {
				paint := &raster.Paint{
					Shader:    raster.SolidColor{Color: raster.ColorFromRGBA8(255, 128, 0, 128)},
					BlendMode: mode,
					AntiAlias: true,
					Precision: prec,
				}
				b.ReportAllocs()
				for b.Loop() {
					pm.FillRect(r, paint, raster.Identity(), nil)
				}
			})
		}
	}
}

// BenchmarkRenderAll measures steady-state performance by reusing a
// single pixmap per size across all test cases.
func BenchmarkRenderAll(b *testing.B) {
	var cases []testcases.TestCase
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		cases = append(cases, testcases.All[category]...)
	}

	type size struct{ w, h int }
	pixmaps := make(map[size]*raster.Pixmap)
	for _, tc := range cases {
		key := size{tc.Width, tc.Height}
		if pixmaps[key] == nil {
			pm, err := raster.NewPixmap(tc.Width, tc.Height)
			if err != nil {
				b.Fatal(err)
			}
			pixmaps[key] = pm
		}
	}
	paint := raster.DefaultPaint()

	for b.Loop() {
		for _, tc := range cases {
			pm := pixmaps[size{tc.Width, tc.Height}]
			switch op := tc.Op.(type) {
			case testcases.Fill:
				pm.FillPath(tc.Path, paint, op.Rule, tc.Transform(), nil)
			case testcases.Stroke:
				pm.StrokePath(tc.Path, paint, op.Style, tc.Transform(), nil)
			}
		}
	}
}

// makeOPath creates an "O" shape: the outer circle is traversed
// clockwise, the inner circle counter-clockwise.
func makeOPath(cx, cy, outerR, innerR float32) (*raster.Path, error) {
	b := &raster.PathBuilder{}
	addCircleToBuilder(b, cx, cy, outerR, false)
	addCircleToBuilder(b, cx, cy, innerR, true)
	return b.Finish()
}

// kappa places the control points of a cubic Bézier approximation to a
// quarter circle.
const kappa = 0.5522847498

func addCircleToBuilder(b *raster.PathBuilder, cx, cy, r float32, reverse bool) {
	kr := kappa * r
	b.MoveTo(cx, cy-r)
	if reverse {
		b.CubicTo(cx-kr, cy-r, cx-r, cy-kr, cx-r, cy)
		b.CubicTo(cx-r, cy+kr, cx-kr, cy+r, cx, cy+r)
		b.CubicTo(cx+kr, cy+r, cx+r, cy+kr, cx+r, cy)
		b.CubicTo(cx+r, cy-kr, cx+kr, cy-r, cx, cy-r)
	} else {
		b.CubicTo(cx+kr, cy-r, cx+r, cy-kr, cx+r, cy)
		b.CubicTo(cx+r, cy+kr, cx+kr, cy+r, cx, cy+r)
		b.CubicTo(cx-kr, cy+r, cx-r, cy+kr, cx-r, cy)
		b.CubicTo(cx-r, cy-kr, cx-kr, cy-r, cx, cy-r)
	}
	b.Close()
}

func addCircleToVector(r *vector.Rasterizer, cx, cy, radius float32, reverse bool) {
	kr := kappa * radius
	r.MoveTo(cx, cy-radius)
	if reverse {
		r.CubeTo(cx-kr, cy-radius, cx-radius, cy-kr, cx-radius, cy)
		r.CubeTo(cx-radius, cy+kr, cx-kr, cy+radius, cx, cy+radius)
		r.CubeTo(cx+kr, cy+radius, cx+radius, cy+kr, cx+radius, cy)
		r.CubeTo(cx+radius, cy-kr, cx+kr, cy-radius, cx, cy-radius)
	} else {
		r.CubeTo(cx+kr, cy-radius, cx+radius, cy-kr, cx+radius, cy)
		r.CubeTo(cx+radius, cy+kr, cx+kr, cy+radius, cx, cy+radius)
		r.CubeTo(cx-kr, cy+radius, cx-radius, cy+kr, cx-radius, cy)
		r.CubeTo(cx-radius, cy-kr, cx-kr, cy-radius, cx, cy-radius)
	}
	r.ClosePath()
}
