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

// Package scan converts device-space paths into per-scanline coverage.
//
// Anti-aliased coverage is computed from the exact signed area of the
// path inside each pixel. Aliased coverage samples pixel centres.
package scan

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// FillRule selects how winding numbers are mapped to coverage.
type FillRule int

const (
	NonZero FillRule = iota
	EvenOdd
)

// edge represents a line segment in device coordinates.
type edge struct {
	x0, y0 float64 // start point
	x1, y1 float64 // end point
	dxdy   float64 // (x1-x0)/(y1-y0), precomputed for x-intercept calculation
}

func (e *edge) yMin() float64 { return min(e.y0, e.y1) }
func (e *edge) yMax() float64 { return max(e.y0, e.y1) }

// winding is +1 for downward edges and -1 for upward edges.
func (e *edge) winding() int {
	if e.y1 < e.y0 {
		return -1
	}
	return 1
}

// Rasterizer converts vector paths to pixel coverage values.
// The caller creates one instance and reuses it for multiple paths.
// Internal buffers grow as needed but never shrink.
//
// A Rasterizer must not be used by more than one goroutine at a time.
type Rasterizer struct {
	// CTM maps path coordinates to device coordinates.
	CTM matrix.Matrix

	// Clip defines the output region in device coordinates.
	// Must have integer-aligned coordinates.
	Clip rect.Rect

	// Flatness is the curve flattening tolerance in device pixels.
	// Must be > 0.
	Flatness float64

	// smallPathThreshold is the maximum bounding box area (in pixels) for
	// using 2D buffers (strategy A). Paths with larger bounding boxes use
	// the active edge list (strategy B).
	smallPathThreshold int

	cover     []float32  // cover change per pixel; reused as output
	area      []float32  // area within pixel
	edges     []edge     // edge list for current path (device coordinates)
	activeIdx []int      // indices of active edges
	rowXMin   []int      // per-scanline minimum x with edge contribution
	rowXMax   []int      // per-scanline maximum x with edge contribution
	crossings []float64  // y values where an edge crosses pixel boundaries
	samples   []crossing // x intercepts on the sample line (aliased mode)
	quantised []uint8    // 8-bit coverage handed out by Spans

	edgeBBoxFirst bool
	edgeDevXMin   float64
	edgeDevXMax   float64
	edgeDevYMin   float64
	edgeDevYMax   float64
}

// NewRasterizer creates a new Rasterizer with the given clip rectangle,
// an identity CTM and the default flatness.
func NewRasterizer(clip rect.Rect) *Rasterizer {
	return &Rasterizer{
		CTM:                matrix.Identity,
		Clip:               clip,
		Flatness:           DefaultFlatness,
		smallPathThreshold: smallPathThreshold,
	}
}

// Reset restores the initial state with the given clip rectangle,
// preserving internal buffer capacity.
func (r *Rasterizer) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Flatness = DefaultFlatness

	r.cover = r.cover[:0]
	r.area = r.area[:0]
	r.edges = r.edges[:0]
	r.activeIdx = r.activeIdx[:0]
	r.rowXMin = r.rowXMin[:0]
	r.rowXMax = r.rowXMax[:0]
	r.crossings = r.crossings[:0]
	r.samples = r.samples[:0]
}

// Fill rasterizes the path with the given fill rule.
// Coverage in [0, 1] is delivered row by row through emit; within one
// call rows are emitted in increasing y order. The coverage slice is
// only valid for the duration of the callback.
func (r *Rasterizer) Fill(p path.Path, rule FillRule, antiAlias bool, emit func(y, xMin int, coverage []float32)) {
	r.fill(p, rule, antiAlias, func(y, xMin int, coverage []float32) bool {
		emit(y, xMin, coverage)
		return true
	})
}

// fill is the implementation behind Fill and Spans.
// Rasterization stops early once emit returns false.
func (r *Rasterizer) fill(p path.Path, rule FillRule, antiAlias bool, emit func(y, xMin int, coverage []float32) bool) {
	xMin, xMax, yMin, yMax, ok := r.collectPathEdges(p)
	if !ok {
		return
	}

	if !antiAlias {
		r.fillAliased(xMin, xMax, yMin, yMax, rule, emit)
		return
	}

	width := xMax - xMin
	height := yMax - yMin
	if width*height < r.smallPathThreshold {
		r.fillSmallPath(xMin, xMax, yMin, yMax, rule, emit)
	} else {
		r.fillLargePath(xMin, xMax, yMin, yMax, rule, emit)
	}
}

// transformLinear applies only the 2×2 linear part of CTM to a vector.
func (r *Rasterizer) transformLinear(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: r.CTM[0]*v.X + r.CTM[2]*v.Y,
		Y: r.CTM[1]*v.X + r.CTM[3]*v.Y,
	}
}

// collectPathEdges walks the path, transforms to device space, and builds
// the edge list. Open subpaths are closed implicitly.
// Returns the bounding box of all edges, clamped to the clip rectangle.
func (r *Rasterizer) collectPathEdges(p path.Path) (xMin, xMax, yMin, yMax int, ok bool) {
	r.edges = r.edges[:0]
	r.edgeBBoxFirst = true

	var current, subpath vec.Vec2
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			if current != subpath {
				r.addEdge(current, subpath)
			}
			current = pts[0]
			subpath = current

		case path.CmdLineTo:
			r.addEdge(current, pts[0])
			current = pts[0]

		case path.CmdQuadTo:
			flattenQuadratic(r.transformLinear, r.Flatness, current, pts[0], pts[1], r.addEdge)
			current = pts[1]

		case path.CmdCubeTo:
			flattenCubic(r.transformLinear, r.Flatness, current, pts[0], pts[1], pts[2], r.addEdge)
			current = pts[2]

		case path.CmdClose:
			if current != subpath {
				r.addEdge(current, subpath)
			}
			current = subpath
		}
	}
	if current != subpath {
		r.addEdge(current, subpath)
	}

	if len(r.edges) == 0 {
		return 0, 0, 0, 0, false
	}

	clipXMin := int(r.Clip.LLx)
	clipXMax := int(r.Clip.URx)
	clipYMin := int(r.Clip.LLy)
	clipYMax := int(r.Clip.URy)

	xMin = max(floorClamp(r.edgeDevXMin, clipXMin-1, clipXMax+1), clipXMin)
	xMax = min(floorClamp(r.edgeDevXMax, clipXMin-1, clipXMax+1)+1, clipXMax)
	yMin = max(floorClamp(r.edgeDevYMin, clipYMin-1, clipYMax+1), clipYMin)
	yMax = min(floorClamp(r.edgeDevYMax, clipYMin-1, clipYMax+1)+1, clipYMax)

	if xMin >= xMax || yMin >= yMax {
		return 0, 0, 0, 0, false
	}
	return xMin, xMax, yMin, yMax, true
}

// addEdge adds an edge from path coordinates, transforming to device space.
func (r *Rasterizer) addEdge(p0, p1 vec.Vec2) {
	dx0 := r.CTM[0]*p0.X + r.CTM[2]*p0.Y + r.CTM[4]
	dy0 := r.CTM[1]*p0.X + r.CTM[3]*p0.Y + r.CTM[5]
	dx1 := r.CTM[0]*p1.X + r.CTM[2]*p1.Y + r.CTM[4]
	dy1 := r.CTM[1]*p1.X + r.CTM[3]*p1.Y + r.CTM[5]

	if !isFinite(dx0) || !isFinite(dy0) || !isFinite(dx1) || !isFinite(dy1) {
		return
	}

	// skip horizontal edges
	dy := dy1 - dy0
	if dy > -horizontalEdgeThreshold && dy < horizontalEdgeThreshold {
		return
	}

	r.edges = append(r.edges, edge{
		x0: dx0, y0: dy0,
		x1: dx1, y1: dy1,
		dxdy: (dx1 - dx0) / dy,
	})

	if r.edgeBBoxFirst {
		r.edgeDevXMin = min(dx0, dx1)
		r.edgeDevXMax = max(dx0, dx1)
		r.edgeDevYMin = min(dy0, dy1)
		r.edgeDevYMax = max(dy0, dy1)
		r.edgeBBoxFirst = false
	} else {
		r.edgeDevXMin = min(r.edgeDevXMin, dx0, dx1)
		r.edgeDevXMax = max(r.edgeDevXMax, dx0, dx1)
		r.edgeDevYMin = min(r.edgeDevYMin, dy0, dy1)
		r.edgeDevYMax = max(r.edgeDevYMax, dy0, dy1)
	}
}

// flattenQuadratic flattens a quadratic Bézier and calls emit for each
// line segment. The linear map is used for tolerance checking only.
func flattenQuadratic(linear func(vec.Vec2) vec.Vec2, flatness float64, p0, p1, p2 vec.Vec2, emit func(from, to vec.Vec2)) {
	// e = (P0 - 2*P1 + P2) / 4
	e := linear(p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25))

	n := 1
	if errDev := e.Length(); errDev > flatness {
		n = segmentCount(math.Sqrt(errDev / flatness))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		pt := p0.Mul(omt * omt).Add(p1.Mul(2 * omt * t)).Add(p2.Mul(t * t))
		emit(prev, pt)
		prev = pt
	}
}

// flattenCubic flattens a cubic Bézier using Wang's formula.
func flattenCubic(linear func(vec.Vec2) vec.Vec2, flatness float64, p0, p1, p2, p3 vec.Vec2, emit func(from, to vec.Vec2)) {
	d1 := linear(p0.Sub(p1.Mul(2)).Add(p2))
	d2 := linear(p1.Sub(p2.Mul(2)).Add(p3))

	n := 1
	if m := max(d1.Length(), d2.Length()); m > 0 {
		// n = ceil(sqrt(3 * m / (4 * ε)))
		if nFloat := math.Sqrt(3 * m / (4 * flatness)); nFloat > 1 {
			n = segmentCount(nFloat)
		}
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		omt2 := omt * omt
		t2 := t * t
		pt := p0.Mul(omt2 * omt).Add(p1.Mul(3 * omt2 * t)).Add(p2.Mul(3 * omt * t2)).Add(p3.Mul(t2 * t))
		emit(prev, pt)
		prev = pt
	}
}

// segmentCount rounds a segment estimate up and bounds it.
func segmentCount(n float64) int {
	if !(n < maxCurveSegments) {
		return maxCurveSegments
	}
	return max(int(math.Ceil(n)), 1)
}

// Flatten calls emit for the line segments approximating the given
// curve. The points are control points of a quadratic (3 points) or
// cubic (4 points) Bézier curve, and the linear map is used to measure
// the flattening error in device space.
func Flatten(linear func(vec.Vec2) vec.Vec2, flatness float64, pts []vec.Vec2, emit func(from, to vec.Vec2)) {
	switch len(pts) {
	case 3:
		flattenQuadratic(linear, flatness, pts[0], pts[1], pts[2], emit)
	case 4:
		flattenCubic(linear, flatness, pts[0], pts[1], pts[2], pts[3], emit)
	}
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// floorClamp returns floor(x) clamped to [lo, hi].
// The clamping happens before the integer conversion, so that huge
// coordinates cannot wrap around.
func floorClamp(x float64, lo, hi int) int {
	x = math.Floor(x)
	if x < float64(lo) {
		return lo
	}
	if x > float64(hi) {
		return hi
	}
	return int(x)
}

// Default values for rasterizer parameters.
const (
	// DefaultFlatness is the default curve flattening tolerance in device
	// pixels.
	DefaultFlatness = 0.25
)

// Numerical tolerances for the rasterizer.
const (
	// horizontalEdgeThreshold is the minimum vertical extent for an edge
	// to contribute to coverage.
	horizontalEdgeThreshold = 1e-10

	// smallPathThreshold is the maximum bounding box area (in pixels) for
	// using 2D buffers (strategy A).
	smallPathThreshold = 65536

	// maxCurveSegments bounds the number of line segments used for a
	// single curve.
	maxCurveSegments = 1 << 16
)
