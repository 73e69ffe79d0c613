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
)

// kappa is the distance of the control points from the end points, for
// a cubic Bézier approximation of a unit quarter circle.
const kappa = 0.5522847498

// PathBuilder accumulates verbs and points for a new [Path].
// The zero value is an empty builder ready to use.
type PathBuilder struct {
	verbs  []Verb
	points []Point
}

// MoveTo starts a new contour at (x, y).
func (b *PathBuilder) MoveTo(x, y float32) {
	b.verbs = append(b.verbs, MoveTo)
	b.points = append(b.points, Point{x, y})
}

// LineTo adds a straight line to (x, y).
func (b *PathBuilder) LineTo(x, y float32) {
	b.verbs = append(b.verbs, LineTo)
	b.points = append(b.points, Point{x, y})
}

// QuadTo adds a quadratic Bézier curve with control point (x1, y1) and
// end point (x, y).
func (b *PathBuilder) QuadTo(x1, y1, x, y float32) {
	b.verbs = append(b.verbs, QuadTo)
	b.points = append(b.points, Point{x1, y1}, Point{x, y})
}

// CubicTo adds a cubic Bézier curve with control points (x1, y1) and
// (x2, y2) and end point (x, y).
func (b *PathBuilder) CubicTo(x1, y1, x2, y2, x, y float32) {
	b.verbs = append(b.verbs, CubicTo)
	b.points = append(b.points, Point{x1, y1}, Point{x2, y2}, Point{x, y})
}

// Close closes the current contour.
func (b *PathBuilder) Close() {
	b.verbs = append(b.verbs, Close)
}

// PushRect adds a closed contour for the rectangle, running clockwise
// on the screen starting at the top-left corner.
func (b *PathBuilder) PushRect(r Rect) {
	b.MoveTo(r.left, r.top)
	b.LineTo(r.right, r.top)
	b.LineTo(r.right, r.bottom)
	b.LineTo(r.left, r.bottom)
	b.Close()
}

// PushOval adds a closed contour for the ellipse inscribed in r.
// The ellipse is made of four cubic Bézier curves.
func (b *PathBuilder) PushOval(r Rect) {
	cx := (r.left + r.right) / 2
	cy := (r.top + r.bottom) / 2
	rx := r.Width() / 2
	ry := r.Height() / 2
	b.pushEllipse(cx, cy, rx, ry)
}

// PushCircle adds a closed contour for the circle with centre (cx, cy)
// and radius r. Nothing is added if r is not positive.
func (b *PathBuilder) PushCircle(cx, cy, r float32) {
	if !(r > 0) {
		return
	}
	b.pushEllipse(cx, cy, r, r)
}

func (b *PathBuilder) pushEllipse(cx, cy, rx, ry float32) {
	kx := kappa * rx
	ky := kappa * ry
	b.MoveTo(cx+rx, cy)
	b.CubicTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry)
	b.CubicTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy)
	b.CubicTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry)
	b.CubicTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy)
	b.Close()
}

// PushPolyline adds a contour through the given points.
// If closed is true, the contour is closed.
// Nothing is added if pts is empty.
func (b *PathBuilder) PushPolyline(pts []Point, closed bool) {
	if len(pts) == 0 {
		return
	}
	b.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		b.LineTo(p.X, p.Y)
	}
	if closed {
		b.Close()
	}
}

// PushPath appends all verbs of p.
func (b *PathBuilder) PushPath(p *Path) {
	b.verbs = append(b.verbs, p.verbs...)
	b.points = append(b.points, p.points...)
}

// Len returns the number of verbs added so far.
func (b *PathBuilder) Len() int {
	return len(b.verbs)
}

// LastPoint returns the last point added to the builder.
// The second return value is false if no point has been added.
func (b *PathBuilder) LastPoint() (Point, bool) {
	if len(b.points) == 0 {
		return Point{}, false
	}
	return b.points[len(b.points)-1], true
}

// Clear removes all verbs and points.
func (b *PathBuilder) Clear() {
	b.verbs = b.verbs[:0]
	b.points = b.points[:0]
}

// Finish returns the path built so far and resets the builder.
// It fails if no verbs have been added or if any point is not finite.
// The verb count of the path equals the number of verbs added.
func (b *PathBuilder) Finish() (*Path, error) {
	verbs, points := b.verbs, b.points
	b.verbs, b.points = nil, nil

	if len(verbs) == 0 {
		return nil, ErrEmptyPath
	}
	for i, p := range points {
		if !p.IsFinite() {
			return nil, fmt.Errorf("point %d is (%g, %g): %w", i, p.X, p.Y, ErrNonFinitePoint)
		}
	}
	return newPath(verbs, points), nil
}

// PathFromRect returns a closed path for the rectangle.
func PathFromRect(r Rect) *Path {
	b := &PathBuilder{}
	b.PushRect(r)
	p, _ := b.Finish()
	return p
}

// PathFromCircle returns a closed path for the circle with centre
// (cx, cy) and radius r.
func PathFromCircle(cx, cy, r float32) (*Path, error) {
	if !(r > 0) || !isFinite(r) {
		return nil, fmt.Errorf("circle radius %g: %w", r, ErrInvalidRadius)
	}
	b := &PathBuilder{}
	b.PushCircle(cx, cy, r)
	return b.Finish()
}
