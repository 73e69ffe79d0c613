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

package scan

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// polygon builds a closed path through the given points.
func polygon(pts ...vec.Vec2) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if !yield(path.CmdMoveTo, pts[:1]) {
			return
		}
		for i := 1; i < len(pts); i++ {
			if !yield(path.CmdLineTo, pts[i:i+1]) {
				return
			}
		}
		yield(path.CmdClose, nil)
	}
}

func box(x0, y0, x1, y1 float64) path.Path {
	return polygon(
		vec.Vec2{X: x0, Y: y0},
		vec.Vec2{X: x1, Y: y0},
		vec.Vec2{X: x1, Y: y1},
		vec.Vec2{X: x0, Y: y1},
	)
}

// concat joins several paths into one.
func concat(paths ...path.Path) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		for _, p := range paths {
			for cmd, pts := range p {
				if !yield(cmd, pts) {
					return
				}
			}
		}
	}
}

// render rasterizes p into a w×h coverage grid.
func render(r *Rasterizer, p path.Path, rule FillRule, aa bool, w, h int) []float32 {
	grid := make([]float32, w*h)
	r.Fill(p, rule, aa, func(y, xMin int, coverage []float32) {
		copy(grid[y*w+xMin:], coverage)
	})
	return grid
}

// strategies runs a test with both the 2D buffer and the active edge
// list strategy.
var strategies = []struct {
	name      string
	threshold int
}{
	{"A", 1 << 30},
	{"B", 0},
}

// TestTriangleCoverage verifies exact coverage values for a simple triangle.
// The triangle (0,0)→(10,0)→(10,1)→close has a diagonal edge y = x/10.
// Each pixel X should have coverage (2X+1)/20: 0.05, 0.15, ..., 0.95.
func TestTriangleCoverage(t *testing.T) {
	triangle := polygon(vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 10, Y: 0}, vec.Vec2{X: 10, Y: 1})

	for _, s := range strategies {
		t.Run(s.name, func(t *testing.T) {
			r := NewRasterizer(rect.Rect{LLx: 0, LLy: 0, URx: 10, URy: 1})
			r.smallPathThreshold = s.threshold

			coverage := render(r, triangle, NonZero, true, 10, 1)
			for x := range 10 {
				expected := float32(2*x+1) / 20.0
				assert.InDelta(t, expected, coverage[x], 1e-6, "pixel %d", x)
			}
		})
	}
}

func TestStrategiesAgree(t *testing.T) {
	star := make([]vec.Vec2, 5)
	for i := range 5 {
		angle := float64(2*i)*2*math.Pi/5 - math.Pi/2
		star[i] = vec.Vec2{X: 32 + 25*math.Cos(angle), Y: 32 + 25*math.Sin(angle)}
	}
	p := polygon(star...)

	for _, rule := range []FillRule{NonZero, EvenOdd} {
		a := NewRasterizer(rect.Rect{URx: 64, URy: 64})
		a.smallPathThreshold = 1 << 30
		b := NewRasterizer(rect.Rect{URx: 64, URy: 64})
		b.smallPathThreshold = 0

		gridA := render(a, p, rule, true, 64, 64)
		gridB := render(b, p, rule, true, 64, 64)
		for i := range gridA {
			require.InDelta(t, gridA[i], gridB[i], 1e-5, "pixel %d, rule %d", i, rule)
		}
	}
}

func TestCoverageBounds(t *testing.T) {
	// three overlapping copies of the same box drive the winding to 3
	p := concat(box(2, 2, 20, 20), box(3, 3, 21, 21), box(2.5, 2.5, 20.5, 20.5))
	r := NewRasterizer(rect.Rect{URx: 24, URy: 24})
	for _, rule := range []FillRule{NonZero, EvenOdd} {
		r.Fill(p, rule, true, func(y, xMin int, coverage []float32) {
			for _, c := range coverage {
				require.GreaterOrEqual(t, c, float32(0))
				require.LessOrEqual(t, c, float32(1))
			}
		})
	}
}

func TestScanlineSumMatchesWidth(t *testing.T) {
	// a convex quad whose width at every height is known analytically
	p := polygon(
		vec.Vec2{X: 4.25, Y: 1},
		vec.Vec2{X: 30.75, Y: 1},
		vec.Vec2{X: 30.75, Y: 9},
		vec.Vec2{X: 4.25, Y: 9},
	)
	r := NewRasterizer(rect.Rect{URx: 40, URy: 10})
	r.Fill(p, NonZero, true, func(y, xMin int, coverage []float32) {
		var sum float32
		for _, c := range coverage {
			sum += c
		}
		assert.InDelta(t, 26.5, sum, 1e-3, "row %d", y)
	})
}

func TestFillRules(t *testing.T) {
	// two loops with the same orientation overlapping in [10, 20)
	p := concat(box(0, 0, 20, 10), box(10, 0, 30, 10))

	for _, aa := range []bool{true, false} {
		r := NewRasterizer(rect.Rect{URx: 30, URy: 10})
		nonZero := render(r, p, NonZero, aa, 30, 10)
		evenOdd := render(r, p, EvenOdd, aa, 30, 10)

		assert.Equal(t, float32(1), nonZero[5*30+15], "overlap, nonzero, aa=%v", aa)
		assert.Equal(t, float32(0), evenOdd[5*30+15], "overlap, evenodd, aa=%v", aa)
		assert.Equal(t, float32(1), evenOdd[5*30+5], "single, evenodd, aa=%v", aa)
		assert.Equal(t, float32(1), evenOdd[5*30+25], "single, evenodd, aa=%v", aa)
	}
}

func TestAliasedRect(t *testing.T) {
	r := NewRasterizer(rect.Rect{URx: 20, URy: 20})
	grid := render(r, box(0, 0, 10, 10), NonZero, false, 20, 20)
	for y := range 20 {
		for x := range 20 {
			want := float32(0)
			if x < 10 && y < 10 {
				want = 1
			}
			require.Equal(t, want, grid[y*20+x], "pixel (%d, %d)", x, y)
		}
	}
}

func TestAliasedSamplesPixelCentres(t *testing.T) {
	r := NewRasterizer(rect.Rect{URx: 10, URy: 3})
	grid := render(r, box(1.4, 0, 4.6, 3), NonZero, false, 10, 3)
	// centres 1.5 .. 4.5 are inside
	for x := range 10 {
		want := float32(0)
		if x >= 1 && x <= 4 {
			want = 1
		}
		assert.Equal(t, want, grid[10+x], "pixel %d", x)
	}
}

func TestBoundarySafety(t *testing.T) {
	cases := []struct {
		name string
		p    path.Path
	}{
		{"exact", box(0, 0, 16, 16)},
		{"beyond", box(-5, -5, 21, 21)},
		{"huge", box(-1e12, -1e12, 1e12, 1e12)},
		{"left", box(-30, 2, -10, 8)},
		{"below", box(2, 16, 8, 40)},
		{"sliver", polygon(vec.Vec2{X: -1e9, Y: 0}, vec.Vec2{X: 1e9, Y: 16}, vec.Vec2{X: 1e9, Y: 0})},
	}
	for _, tc := range cases {
		for _, s := range strategies {
			for _, aa := range []bool{true, false} {
				r := NewRasterizer(rect.Rect{URx: 16, URy: 16})
				r.smallPathThreshold = s.threshold
				r.Fill(tc.p, NonZero, aa, func(y, xMin int, coverage []float32) {
					require.GreaterOrEqual(t, y, 0, tc.name)
					require.Less(t, y, 16, tc.name)
					require.GreaterOrEqual(t, xMin, 0, tc.name)
					require.LessOrEqual(t, xMin+len(coverage), 16, tc.name)
				})
			}
		}
	}

	r := NewRasterizer(rect.Rect{URx: 16, URy: 16})
	grid := render(r, box(-5, -5, 21, 21), NonZero, true, 16, 16)
	for i, c := range grid {
		require.Equal(t, float32(1), c, "pixel %d", i)
	}
}

func TestEmptyRows(t *testing.T) {
	p := concat(box(0, 0, 8, 2), box(0, 6, 8, 8))
	for _, s := range strategies {
		r := NewRasterizer(rect.Rect{URx: 8, URy: 8})
		r.smallPathThreshold = s.threshold
		var rows []int
		r.Fill(p, NonZero, true, func(y, xMin int, coverage []float32) {
			rows = append(rows, y)
		})
		assert.Equal(t, []int{0, 1, 6, 7}, rows, s.name)
	}
}

func TestImplicitClose(t *testing.T) {
	open := func(yield func(path.Command, []vec.Vec2) bool) {
		_ = yield(path.CmdMoveTo, []vec.Vec2{{X: 0, Y: 0}}) &&
			yield(path.CmdLineTo, []vec.Vec2{{X: 8, Y: 0}}) &&
			yield(path.CmdLineTo, []vec.Vec2{{X: 8, Y: 8}}) &&
			yield(path.CmdLineTo, []vec.Vec2{{X: 0, Y: 8}})
	}
	r := NewRasterizer(rect.Rect{URx: 10, URy: 10})
	gridOpen := render(r, open, NonZero, true, 10, 10)
	gridClosed := render(r, box(0, 0, 8, 8), NonZero, true, 10, 10)
	assert.Equal(t, gridClosed, gridOpen)
}

func TestCTM(t *testing.T) {
	r := NewRasterizer(rect.Rect{URx: 20, URy: 20})
	r.CTM = matrix.Scale(2, 2).Translate(4, 4)
	grid := render(r, box(0, 0, 4, 4), NonZero, true, 20, 20)
	assert.Equal(t, float32(0), grid[3*20+3])
	assert.Equal(t, float32(1), grid[4*20+4])
	assert.Equal(t, float32(1), grid[11*20+11])
	assert.Equal(t, float32(0), grid[12*20+12])
}

func TestCurveFlattening(t *testing.T) {
	// a circle of radius 8 built from four cubics
	const k = 0.5522847498
	c := vec.Vec2{X: 10, Y: 10}
	rad := 8.0
	circle := func(yield func(path.Command, []vec.Vec2) bool) {
		_ = yield(path.CmdMoveTo, []vec.Vec2{{X: c.X + rad, Y: c.Y}}) &&
			yield(path.CmdCubeTo, []vec.Vec2{{X: c.X + rad, Y: c.Y + k*rad}, {X: c.X + k*rad, Y: c.Y + rad}, {X: c.X, Y: c.Y + rad}}) &&
			yield(path.CmdCubeTo, []vec.Vec2{{X: c.X - k*rad, Y: c.Y + rad}, {X: c.X - rad, Y: c.Y + k*rad}, {X: c.X - rad, Y: c.Y}}) &&
			yield(path.CmdCubeTo, []vec.Vec2{{X: c.X - rad, Y: c.Y - k*rad}, {X: c.X - k*rad, Y: c.Y - rad}, {X: c.X, Y: c.Y - rad}}) &&
			yield(path.CmdCubeTo, []vec.Vec2{{X: c.X + k*rad, Y: c.Y - rad}, {X: c.X + rad, Y: c.Y - k*rad}, {X: c.X + rad, Y: c.Y}}) &&
			yield(path.CmdClose, nil)
	}
	r := NewRasterizer(rect.Rect{URx: 20, URy: 20})
	grid := render(r, circle, NonZero, true, 20, 20)

	var total float64
	for _, v := range grid {
		total += float64(v)
	}
	assert.InDelta(t, math.Pi*rad*rad, total, 1.0)
}

func TestSpansRestartable(t *testing.T) {
	r := NewRasterizer(rect.Rect{URx: 16, URy: 16})
	seq := r.Spans(box(2.5, 2.5, 12.5, 12.5), NonZero, true)

	collect := func() [][]uint8 {
		var rows [][]uint8
		for span := range seq {
			rows = append(rows, append([]uint8{byte(span.Y), byte(span.X)}, span.Coverage...))
		}
		return rows
	}
	first := collect()
	second := collect()
	require.Len(t, first, 11)
	assert.Equal(t, first, second)

	// edge rows have half coverage, the interior is solid
	assert.Equal(t, []uint8{2, 2, 64, 128, 128, 128, 128, 128, 128, 128, 128, 128, 64}, first[0])
	assert.Equal(t, uint8(255), first[5][4])

	n := 0
	for range seq {
		n++
		if n == 3 {
			break
		}
	}
	assert.Equal(t, 3, n)
}
