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

package raster

import (
	"fmt"
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/raster/internal/scan"
)

// LineCap is the shape at the ends of open stroked contours.
type LineCap uint8

const (
	// ButtCap ends the stroke exactly at the end point.
	ButtCap LineCap = iota

	// RoundCap adds a semicircle of diameter equal to the stroke width.
	RoundCap

	// SquareCap extends the stroke by half the stroke width.
	SquareCap
)

// LineJoin is the shape at the corners of stroked contours.
type LineJoin uint8

const (
	// MiterJoin extends the outer edges until they meet. If the miter
	// length exceeds the miter limit, a bevel join is used instead.
	MiterJoin LineJoin = iota

	// MiterClipJoin is like MiterJoin, but a miter which exceeds the
	// limit is cut off at the limit distance instead of being replaced
	// by a bevel.
	MiterClipJoin

	// RoundJoin adds a circular arc around the corner.
	RoundJoin

	// BevelJoin connects the outer edges with a straight line.
	BevelJoin
)

// Stroke describes how a path is stroked.
type Stroke struct {
	// Width is the line width in user space units. Must be positive.
	Width float32

	// MiterLimit is the maximal ratio of the miter length to the line
	// width for miter joins. Must be positive.
	MiterLimit float32

	LineCap  LineCap
	LineJoin LineJoin

	// Dash, if not nil, is applied to the path before stroking.
	Dash *StrokeDash
}

// DefaultStroke returns a solid stroke of width 1 with butt caps, miter
// joins and miter limit 4.
func DefaultStroke() Stroke {
	return Stroke{
		Width:      1,
		MiterLimit: 4,
		LineCap:    ButtCap,
		LineJoin:   MiterJoin,
	}
}

// Validate checks that the width and the miter limit are usable.
func (s Stroke) Validate() error {
	if !(s.Width > 0) || !isFinite(s.Width) {
		return fmt.Errorf("stroke width %g: %w", s.Width, ErrInvalidStrokeWidth)
	}
	if !(s.MiterLimit > 0) || !isFinite(s.MiterLimit) {
		return fmt.Errorf("miter limit %g: %w", s.MiterLimit, ErrInvalidMiterLimit)
	}
	return nil
}

// strokeSegment is a line segment of a flattened contour, in user space.
type strokeSegment struct {
	A, B vec.Vec2 // endpoints
	T    vec.Vec2 // unit tangent (A→B direction)
	N    vec.Vec2 // unit normal (90° CCW from T)
}

// Stroker converts paths into stroke outlines.
// Internal buffers grow as needed but never shrink, so that a Stroker
// which is used for many paths does not allocate in steady state.
//
// A Stroker must not be used by more than one goroutine at a time.
type Stroker struct {
	// current stroke parameters
	d          float64 // half width
	cap        LineCap
	join       LineJoin
	miterLimit float64
	resScale   float64

	// flattened input: all subpaths contiguous
	segs             []strokeSegment
	segsOffsets      []int      // start index of each subpath in segs
	subpathClosed    []bool     // whether each subpath is closed
	degeneratePoints []vec.Vec2 // subpaths without orientation

	// dash output: all dashes contiguous
	dashedSegs        []strokeSegment
	dashedSegsOffsets []int

	// outline polygons: all polygons contiguous
	stroke        []vec.Vec2
	strokeOffsets []int
}

// Stroke returns the outline of p, stroked with s, as a path made of
// closed polygons. Filling the outline with the non-zero winding rule
// gives the stroked area.
//
// The resScale argument is the ratio of device pixels to user space
// units; curves and arcs are approximated to within a quarter of a
// device pixel. If the outline is empty, Stroke returns nil and no error.
func (st *Stroker) Stroke(p *Path, s Stroke, resScale float32) (*Path, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	st.d = float64(s.Width) / 2
	st.cap = s.LineCap
	st.join = s.LineJoin
	st.miterLimit = float64(s.MiterLimit)
	st.setResScale(resScale)

	st.flattenPath(p.geom())

	st.stroke = st.stroke[:0]
	st.strokeOffsets = st.strokeOffsets[:0]

	// contours without orientation only produce output for round and
	// square caps
	for _, pt := range st.degeneratePoints {
		st.addDot(pt, vec.Vec2{X: 1, Y: 0})
	}

	if s.Dash != nil {
		st.applyDash(s.Dash)
		st.strokeDashedSubpaths()
	} else {
		st.strokeAllSubpaths()
	}

	return st.outline(), nil
}

// Stroke is a convenience wrapper around [Stroker.Stroke].
func (p *Path) Stroke(s Stroke, resScale float32) (*Path, error) {
	var st Stroker
	return st.Stroke(p, s, resScale)
}

func (st *Stroker) setResScale(resScale float32) {
	st.resScale = float64(resScale)
	if !(st.resScale > 0) || math.IsInf(st.resScale, 0) {
		st.resScale = 1
	}
}

// addDot adds the outline for a zero-length contour at pt.
// T orients square caps.
func (st *Stroker) addDot(pt, T vec.Vec2) {
	startOffset := len(st.stroke)
	switch st.cap {
	case RoundCap:
		st.addArc(pt, st.d, vec.Vec2{X: 1, Y: 0}, 2*math.Pi, true)
	case SquareCap:
		st.addSquare(pt, T, st.d)
	default:
		return
	}
	st.strokeOffsets = append(st.strokeOffsets, startOffset)
}

// strokeAllSubpaths strokes all flattened subpaths (non-dashed case).
func (st *Stroker) strokeAllSubpaths() {
	for i := range st.segsOffsets {
		st.strokePolygon(subpath(st.segs, st.segsOffsets, i), st.subpathClosed[i])
	}
}

// strokeDashedSubpaths strokes the output of applyDash.
func (st *Stroker) strokeDashedSubpaths() {
	for i := range st.dashedSegsOffsets {
		segs := subpath(st.dashedSegs, st.dashedSegsOffsets, i)

		// zero-length dashes keep the tangent of the underlying segment
		if len(segs) == 1 && segs[0].A == segs[0].B {
			st.addDot(segs[0].A, segs[0].T)
			continue
		}
		st.strokePolygon(segs, false)
	}
}

// strokePolygon adds the outline polygon of one subpath.
func (st *Stroker) strokePolygon(segs []strokeSegment, closed bool) {
	startOffset := len(st.stroke)
	st.strokeSubpath(segs, closed)
	if len(st.stroke)-startOffset >= 3 {
		st.strokeOffsets = append(st.strokeOffsets, startOffset)
	} else {
		st.stroke = st.stroke[:startOffset]
	}
}

// subpath returns the segments of subpath i.
func subpath(segs []strokeSegment, offsets []int, i int) []strokeSegment {
	end := len(segs)
	if i+1 < len(offsets) {
		end = offsets[i+1]
	}
	return segs[offsets[i]:end]
}

// outline converts the outline polygons into a path.
// Polygons with non-finite points are dropped.
func (st *Stroker) outline() *Path {
	var verbs []Verb
	var points []Point
polygons:
	for i, start := range st.strokeOffsets {
		end := len(st.stroke)
		if i+1 < len(st.strokeOffsets) {
			end = st.strokeOffsets[i+1]
		}
		poly := st.stroke[start:end]
		for _, v := range poly {
			if !pointFromVec(v).IsFinite() {
				continue polygons
			}
		}

		verbs = append(verbs, MoveTo)
		for range len(poly) - 1 {
			verbs = append(verbs, LineTo)
		}
		verbs = append(verbs, Close)
		for _, v := range poly {
			points = append(points, pointFromVec(v))
		}
	}
	if len(verbs) == 0 {
		return nil
	}
	return newPath(verbs, points)
}

// flattenPath walks the path, flattens curves, and fills segs,
// segsOffsets, subpathClosed and degeneratePoints.
func (st *Stroker) flattenPath(p path.Path) {
	st.segs = st.segs[:0]
	st.segsOffsets = st.segsOffsets[:0]
	st.subpathClosed = st.subpathClosed[:0]
	st.degeneratePoints = st.degeneratePoints[:0]

	linear := func(v vec.Vec2) vec.Vec2 { return v.Mul(st.resScale) }

	var currentPt vec.Vec2
	var subpathStartPt vec.Vec2
	subpathStartIdx := 0
	inSubpath := false
	sawDrawingCmd := false

	endSubpath := func(closed bool) {
		if len(st.segs) == subpathStartIdx {
			st.degeneratePoints = append(st.degeneratePoints, subpathStartPt)
		} else {
			st.segsOffsets = append(st.segsOffsets, subpathStartIdx)
			st.subpathClosed = append(st.subpathClosed, closed)
		}
	}

	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			if inSubpath && sawDrawingCmd {
				endSubpath(false)
			}
			currentPt = pts[0]
			subpathStartPt = currentPt
			subpathStartIdx = len(st.segs)
			inSubpath = true
			sawDrawingCmd = false

		case path.CmdLineTo:
			sawDrawingCmd = true
			st.addStrokeSegment(currentPt, pts[0])
			currentPt = pts[0]

		case path.CmdQuadTo, path.CmdCubeTo:
			sawDrawingCmd = true
			ctrl := [4]vec.Vec2{currentPt}
			n := copy(ctrl[1:], pts)
			scan.Flatten(linear, strokeFlatness, ctrl[:n+1], st.addStrokeSegment)
			currentPt = pts[n-1]

		case path.CmdClose:
			if inSubpath {
				if currentPt != subpathStartPt {
					st.addStrokeSegment(currentPt, subpathStartPt)
				}
				endSubpath(true)
				currentPt = subpathStartPt
				subpathStartIdx = len(st.segs)
				inSubpath = false
				sawDrawingCmd = false
			}
		}
	}

	if inSubpath && sawDrawingCmd {
		endSubpath(false)
	}
}

// addStrokeSegment adds a line segment to the flattening buffer.
func (st *Stroker) addStrokeSegment(a, b vec.Vec2) {
	d := b.Sub(a)
	length := d.Length()
	if length < zeroLengthThreshold {
		return
	}
	t := d.Mul(1 / length)
	n := vec.Vec2{X: -t.Y, Y: t.X}
	st.segs = append(st.segs, strokeSegment{A: a, B: b, T: t, N: n})
}

// strokeSubpath builds the stroke outline for a single subpath.
// The outline is one closed polygon: forward pass on the +N side, then
// backward pass on the -N side. Join geometry is added on the outer side
// of each corner, which depends on the turn direction.
func (st *Stroker) strokeSubpath(segs []strokeSegment, closed bool) {
	if len(segs) == 0 {
		return
	}

	d := st.d
	first := &segs[0]
	last := &segs[len(segs)-1]

	if closed {
		// forward pass, starting at the closing corner
		sinThetaClose := cross(last.T, first.T)
		st.stroke = append(st.stroke, first.A.Add(first.N.Mul(d)))
		for i := range segs {
			seg := &segs[i]
			next := first
			sinTheta := sinThetaClose
			if i < len(segs)-1 {
				next = &segs[i+1]
				sinTheta = cross(seg.T, next.T)
			}
			if math.Abs(sinTheta) < collinearityThreshold {
				st.stroke = append(st.stroke, seg.B.Add(seg.N.Mul(d)))
				st.stroke = append(st.stroke, next.A.Add(next.N.Mul(d)))
			} else if sinTheta > 0 {
				// +N is the inner side
				st.addInnerIntersectionOrOffsets(seg.B, seg.T, next.T, seg.N, next.N, seg.length(), next.length(), d, true)
			} else {
				st.stroke = append(st.stroke, seg.B.Add(seg.N.Mul(d)))
				st.addJoin(seg.B, seg.T, next.T, d, true)
				st.stroke = append(st.stroke, next.A.Add(next.N.Mul(d)))
			}
		}

		// backward pass, again starting at the closing corner
		if math.Abs(sinThetaClose) < collinearityThreshold {
			st.stroke = append(st.stroke, first.A.Sub(first.N.Mul(d)))
			st.stroke = append(st.stroke, last.B.Sub(last.N.Mul(d)))
		} else if sinThetaClose > 0 {
			st.stroke = append(st.stroke, first.A.Sub(first.N.Mul(d)))
			st.addJoin(first.A, last.T, first.T, d, false)
			st.stroke = append(st.stroke, last.B.Sub(last.N.Mul(d)))
		} else {
			// -N is the inner side
			st.addInnerIntersectionOrOffsets(first.A, last.T, first.T, last.N, first.N, last.length(), first.length(), d, false)
		}
		for i := len(segs) - 1; i > 0; i-- {
			seg := &segs[i]
			prev := &segs[i-1]
			sinTheta := cross(prev.T, seg.T)
			if math.Abs(sinTheta) < collinearityThreshold {
				st.stroke = append(st.stroke, seg.A.Sub(seg.N.Mul(d)))
				st.stroke = append(st.stroke, prev.B.Sub(prev.N.Mul(d)))
			} else if sinTheta > 0 {
				st.stroke = append(st.stroke, seg.A.Sub(seg.N.Mul(d)))
				st.addJoin(seg.A, prev.T, seg.T, d, false)
				st.stroke = append(st.stroke, prev.B.Sub(prev.N.Mul(d)))
			} else {
				st.addInnerIntersectionOrOffsets(seg.A, prev.T, seg.T, prev.N, seg.N, prev.length(), seg.length(), d, false)
			}
		}
		st.stroke = append(st.stroke, first.A.Sub(first.N.Mul(d)))
		return
	}

	// open path: caps at the ends, joins in between
	st.addCap(first.A, first.T.Mul(-1), d)

	skipNextA := false
	for i := range segs {
		seg := &segs[i]
		if !skipNextA {
			st.stroke = append(st.stroke, seg.A.Add(seg.N.Mul(d)))
		}
		skipNextA = false
		if i == len(segs)-1 {
			st.stroke = append(st.stroke, seg.B.Add(seg.N.Mul(d)))
			break
		}
		next := &segs[i+1]
		sinTheta := cross(seg.T, next.T)
		if math.Abs(sinTheta) < collinearityThreshold {
			st.stroke = append(st.stroke, seg.B.Add(seg.N.Mul(d)))
		} else if sinTheta > 0 {
			skipNextA = st.addInnerIntersectionOrOffsets(seg.B, seg.T, next.T, seg.N, next.N, seg.length(), next.length(), d, true)
		} else {
			st.stroke = append(st.stroke, seg.B.Add(seg.N.Mul(d)))
			st.addJoin(seg.B, seg.T, next.T, d, true)
		}
	}

	st.addCap(last.B, last.T, d)

	skipNextB := false
	for i := len(segs) - 1; i >= 0; i-- {
		seg := &segs[i]
		if !skipNextB {
			st.stroke = append(st.stroke, seg.B.Sub(seg.N.Mul(d)))
		}
		skipNextB = false
		if i == 0 {
			st.stroke = append(st.stroke, seg.A.Sub(seg.N.Mul(d)))
			break
		}
		prev := &segs[i-1]
		sinTheta := cross(prev.T, seg.T)
		if math.Abs(sinTheta) < collinearityThreshold {
			st.stroke = append(st.stroke, seg.A.Sub(seg.N.Mul(d)))
		} else if sinTheta > 0 {
			st.stroke = append(st.stroke, seg.A.Sub(seg.N.Mul(d)))
			st.addJoin(seg.A, prev.T, seg.T, d, false)
		} else {
			skipNextB = st.addInnerIntersectionOrOffsets(seg.A, prev.T, seg.T, prev.N, seg.N, prev.length(), seg.length(), d, false)
		}
	}
}

func (s *strokeSegment) length() float64 {
	return s.B.Sub(s.A).Length()
}

func cross(a, b vec.Vec2) float64 {
	return a.X*b.Y - a.Y*b.X
}

// addCap adds a line cap at point P.
// T is the outward tangent direction and d is half the stroke width.
func (st *Stroker) addCap(P, T vec.Vec2, d float64) {
	N := vec.Vec2{X: -T.Y, Y: T.X}

	switch st.cap {
	case SquareCap:
		ext := P.Add(T.Mul(d))
		st.stroke = append(st.stroke, ext.Add(N.Mul(d)), ext.Sub(N.Mul(d)))

	case RoundCap:
		// semicircle from N through T to -N
		st.addArc(P, d, N, -math.Pi, true)
	}
}

// computeInnerIntersection returns the intersection point of the two inner
// offset lines at a corner. For nearly collinear segments, ok is false.
func computeInnerIntersection(P, T1, T2 vec.Vec2, d float64, isPositiveNormalSide bool) (vec.Vec2, bool) {
	cosTheta := T1.Dot(T2)
	if cosTheta > 1-1e-9 {
		return vec.Vec2{}, false
	}

	// cos(θ/2)
	halfAngle := math.Sqrt((1 + cosTheta) / 2)
	if halfAngle < 1e-9 {
		return vec.Vec2{}, false
	}

	N1 := vec.Vec2{X: -T1.Y, Y: T1.X}
	N2 := vec.Vec2{X: -T2.Y, Y: T2.X}
	innerDir := N1.Add(N2)
	if !isPositiveNormalSide {
		innerDir = innerDir.Mul(-1)
	}
	innerDirLen := innerDir.Length()
	if innerDirLen < 1e-9 {
		return vec.Vec2{}, false
	}
	innerDir = innerDir.Mul(1 / innerDirLen)

	return P.Add(innerDir.Mul(d / halfAngle)), true
}

// addInnerIntersectionOrOffsets handles the inner side of a corner.
// l1 and l2 are the lengths of the segments before and after P.
// If the offset lines intersect within both segments, only the
// intersection point is added and the return value is true. Otherwise
// both offset points are added, connected through P. On the +N side the
// T1 offset comes first, on the -N side the T2 offset.
func (st *Stroker) addInnerIntersectionOrOffsets(P, T1, T2, N1, N2 vec.Vec2, l1, l2, d float64, isPositiveNormalSide bool) bool {
	if innerPt, ok := computeInnerIntersection(P, T1, T2, d, isPositiveNormalSide); ok {
		back := innerPt.Sub(P)
		if math.Abs(back.Dot(T1)) <= l1 && math.Abs(back.Dot(T2)) <= l2 {
			st.stroke = append(st.stroke, innerPt)
			return true
		}
	}
	if isPositiveNormalSide {
		st.stroke = append(st.stroke, P.Add(N1.Mul(d)), P, P.Add(N2.Mul(d)))
	} else {
		st.stroke = append(st.stroke, P.Sub(N2.Mul(d)), P, P.Sub(N1.Mul(d)))
	}
	return false
}

// addJoin adds the outer geometry of a line join at point P, where the
// tangent changes from T1 to T2. The offset points on both sides of the
// corner are added by the caller. On the +N side the caller adds the T1
// point first, on the -N side the T2 point.
func (st *Stroker) addJoin(P, T1, T2 vec.Vec2, d float64, isPositiveNormalSide bool) {
	cosTheta := T1.Dot(T2)
	sinTheta := cross(T1, T2)

	if sinTheta > -collinearityThreshold && sinTheta < collinearityThreshold {
		return
	}

	// the path doubles back on itself
	if cosTheta < cuspCosineThreshold {
		st.addCap(P, T1, d)
		st.addCap(P, T2.Mul(-1), d)
		return
	}

	switch st.join {
	case MiterJoin, MiterClipJoin:
		// The miter length relative to the line width is 1/sin(φ/2),
		// where φ = π - θ is the angle at the corner, so that
		// sin(φ/2) = cos(θ/2).
		sinHalf := math.Sqrt((1 + cosTheta) / 2)
		if sinHalf <= 0 {
			return
		}

		N1 := vec.Vec2{X: -T1.Y, Y: T1.X}
		N2 := vec.Vec2{X: -T2.Y, Y: T2.X}
		o1, o2 := N1.Mul(d), N2.Mul(d)
		if !isPositiveNormalSide {
			o1, o2 = o1.Mul(-1), o2.Mul(-1)
		}
		bisector := o1.Add(o2)
		bisectorLen := bisector.Length()
		if bisectorLen <= zeroLengthThreshold {
			return
		}
		bisector = bisector.Mul(1 / bisectorLen)

		const miterEpsilon = 1e-10
		if 1/sinHalf <= st.miterLimit+miterEpsilon {
			st.stroke = append(st.stroke, P.Add(bisector.Mul(d/sinHalf)))
			return
		}
		if st.join == MiterJoin {
			return // bevel
		}

		// Cut the miter with the line perpendicular to the bisector at
		// distance limit*d from the corner. If this line does not lie
		// beyond the bevel, the result is a bevel.
		limit := st.miterLimit * d
		if limit <= d*sinHalf {
			return
		}
		tb := T1.Dot(bisector)
		if tb <= 0 {
			return
		}
		s := (limit - o1.Dot(bisector)) / tb
		q1 := P.Add(o1).Add(T1.Mul(s))
		q2 := P.Add(o2).Sub(T2.Mul(s))
		if isPositiveNormalSide {
			st.stroke = append(st.stroke, q1, q2)
		} else {
			st.stroke = append(st.stroke, q2, q1)
		}

	case BevelJoin:
		// the caller already adds both offset points

	case RoundJoin:
		angle := math.Acos(max(-1, min(1, cosTheta)))
		if isPositiveNormalSide {
			// arc from +N of T1 to +N of T2
			N1 := vec.Vec2{X: -T1.Y, Y: T1.X}
			if sinTheta > 0 {
				st.addArc(P, d, N1, angle, false)
			} else {
				st.addArc(P, d, N1, -angle, false)
			}
		} else {
			// arc from -N of T2 back to -N of T1
			N2 := vec.Vec2{X: T2.Y, Y: -T2.X}
			if sinTheta > 0 {
				st.addArc(P, d, N2, -angle, false)
			} else {
				st.addArc(P, d, N2, angle, false)
			}
		}
	}
}

// addArc adds arc vertices to the stroke outline.
// startDir is the unit vector from center to the arc start and sweep is
// the sweep angle in radians (positive = CCW). If includeStart is false,
// the caller has already added the start point.
func (st *Stroker) addArc(center vec.Vec2, radius float64, startDir vec.Vec2, sweep float64, includeStart bool) {
	devRadius := radius * st.resScale

	if devRadius < strokeFlatness {
		if includeStart {
			st.stroke = append(st.stroke, center.Add(startDir.Mul(radius)))
		}
		st.stroke = append(st.stroke, center.Add(rotate(startDir, sweep).Mul(radius)))
		return
	}

	// A chord subtending the angle θ deviates from the circle by at most
	// r*(1 - cos(θ/2)).
	angleStep := 2 * math.Acos(1-strokeFlatness/devRadius)
	if !(angleStep > 0) {
		angleStep = math.Pi / 4
	}
	n := int(math.Ceil(math.Abs(sweep) / angleStep))
	n = min(max(n, 1), maxArcSegments)

	dt := sweep / float64(n)
	startI := 0
	if !includeStart {
		startI = 1
	}
	for i := startI; i <= n; i++ {
		dir := rotate(startDir, float64(i)*dt)
		st.stroke = append(st.stroke, center.Add(dir.Mul(radius)))
	}
}

func rotate(v vec.Vec2, angle float64) vec.Vec2 {
	sin, cos := math.Sincos(angle)
	return vec.Vec2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// addSquare adds a square of side 2*d, centred at the given point and
// oriented by the tangent T.
func (st *Stroker) addSquare(center vec.Vec2, T vec.Vec2, d float64) {
	N := vec.Vec2{X: -T.Y, Y: T.X}
	st.stroke = append(st.stroke,
		center.Add(T.Mul(d)).Add(N.Mul(d)),
		center.Add(T.Mul(d)).Sub(N.Mul(d)),
		center.Sub(T.Mul(d)).Sub(N.Mul(d)),
		center.Sub(T.Mul(d)).Add(N.Mul(d)),
	)
}

// Numerical parameters of the stroker.
const (
	// strokeFlatness is the tolerance for flattening curves and arcs,
	// in device pixels.
	strokeFlatness = 0.25

	// maxArcSegments bounds the number of line segments per arc.
	maxArcSegments = 1 << 12

	// zeroLengthThreshold is the minimum length for a stroke segment.
	zeroLengthThreshold = 1e-10

	// collinearityThreshold is used to detect nearly collinear segments
	// where no join is needed.
	collinearityThreshold = 1e-6

	// cuspCosineThreshold detects paths doubling back on themselves.
	// cos(179.19°) ≈ -0.9999
	cuspCosineThreshold = -0.9999
)
