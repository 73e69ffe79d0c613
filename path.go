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
	"iter"
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Verb is a path construction command.
type Verb uint8

// These are the path verbs. The number of points consumed by each verb
// is given by [Verb.NumPoints].
const (
	MoveTo Verb = iota
	LineTo
	QuadTo
	CubicTo
	Close
)

func (v Verb) String() string {
	switch v {
	case MoveTo:
		return "MoveTo"
	case LineTo:
		return "LineTo"
	case QuadTo:
		return "QuadTo"
	case CubicTo:
		return "CubicTo"
	case Close:
		return "Close"
	}
	return fmt.Sprintf("Verb(%d)", uint8(v))
}

// NumPoints returns the number of points which belong to the verb.
// For curves, the last point is the end point and the others are
// control points.
func (v Verb) NumPoints() int {
	switch v {
	case MoveTo, LineTo:
		return 1
	case QuadTo:
		return 2
	case CubicTo:
		return 3
	}
	return 0
}

func (v Verb) command() path.Command {
	switch v {
	case MoveTo:
		return path.CmdMoveTo
	case LineTo:
		return path.CmdLineTo
	case QuadTo:
		return path.CmdQuadTo
	case CubicTo:
		return path.CmdCubeTo
	}
	return path.CmdClose
}

// Path is an immutable sequence of verbs with their points.
// Paths are created using a [PathBuilder] and always contain at least
// one verb.
type Path struct {
	verbs  []Verb
	points []Point
	bounds Rect
}

// newPath builds a path from verbs and finite points.
// The slices are owned by the new path.
func newPath(verbs []Verb, points []Point) *Path {
	p := &Path{verbs: verbs, points: points}
	if len(points) > 0 {
		p.bounds = rectFromPoints(points)
	}
	return p
}

// Len returns the number of verbs in the path.
func (p *Path) Len() int {
	return len(p.verbs)
}

// Verbs returns a copy of the verbs of the path.
func (p *Path) Verbs() []Verb {
	return slices.Clone(p.verbs)
}

// Points returns a copy of the points of the path.
func (p *Path) Points() []Point {
	return slices.Clone(p.points)
}

// Bounds returns the bounding box of all points of the path, including
// the control points of curves.
func (p *Path) Bounds() Rect {
	return p.bounds
}

// Segments iterates over the verbs of the path, together with the points
// belonging to each verb. The point slices must not be modified.
// The sequence can be iterated more than once.
func (p *Path) Segments() iter.Seq2[Verb, []Point] {
	return func(yield func(Verb, []Point) bool) {
		pos := 0
		for _, v := range p.verbs {
			n := v.NumPoints()
			if !yield(v, p.points[pos:pos+n:pos+n]) {
				return
			}
			pos += n
		}
	}
}

// Transform returns a new path with all points mapped by ts.
// The second return value is false if any mapped point is not finite.
func (p *Path) Transform(ts Transform) (*Path, bool) {
	pts := slices.Clone(p.points)
	ts.MapPoints(pts)
	for _, pt := range pts {
		if !pt.IsFinite() {
			return nil, false
		}
	}
	return newPath(slices.Clone(p.verbs), pts), true
}

// Clone returns a copy of the path.
func (p *Path) Clone() *Path {
	return &Path{
		verbs:  slices.Clone(p.verbs),
		points: slices.Clone(p.points),
		bounds: p.bounds,
	}
}

// geom returns the path in the form used by the scan converter.
//
// Drawing verbs which do not follow an open contour start a new contour:
// after a Close, the new contour starts at the start point of the closed
// contour. Before the first MoveTo, it starts at the origin.
//
// The point slices passed to the consumer are only valid until the
// consumer returns.
func (p *Path) geom() path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		var buf [3]vec.Vec2
		var start vec.Vec2
		open := false
		for v, pts := range p.Segments() {
			switch v {
			case MoveTo:
				start = pts[0].vec()
				open = true
				buf[0] = start
				if !yield(path.CmdMoveTo, buf[:1]) {
					return
				}
			case Close:
				if !open {
					continue
				}
				open = false
				if !yield(path.CmdClose, nil) {
					return
				}
			default:
				if !open {
					open = true
					buf[0] = start
					if !yield(path.CmdMoveTo, buf[:1]) {
						return
					}
				}
				for i, pt := range pts {
					buf[i] = pt.vec()
				}
				if !yield(v.command(), buf[:len(pts)]) {
					return
				}
			}
		}
	}
}
