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

	"github.com/chewxy/math32"
	"seehuhn.de/go/geom/vec"
)

// Point is a point or a vector in the plane.
type Point struct {
	X, Y float32
}

// Add returns p + q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p - q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Scale returns f*p.
func (p Point) Scale(f float32) Point { return Point{f * p.X, f * p.Y} }

// Length returns the Euclidean length of p.
func (p Point) Length() float32 { return math32.Hypot(p.X, p.Y) }

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float32 { return p.Sub(q).Length() }

// Dot returns the scalar product of p and q.
func (p Point) Dot(q Point) float32 { return p.X*q.X + p.Y*q.Y }

// Cross returns the z component of the cross product of p and q.
func (p Point) Cross(q Point) float32 { return p.X*q.Y - p.Y*q.X }

// IsFinite reports whether both coordinates are finite.
func (p Point) IsFinite() bool { return isFinite(p.X) && isFinite(p.Y) }

func (p Point) vec() vec.Vec2 {
	return vec.Vec2{X: float64(p.X), Y: float64(p.Y)}
}

func pointFromVec(v vec.Vec2) Point {
	return Point{float32(v.X), float32(v.Y)}
}

// Size is the size of a non-empty area.
type Size struct {
	width, height float32
}

// NewSize returns a Size with the given dimensions, which must be finite
// and positive.
func NewSize(w, h float32) (Size, error) {
	if !(w > 0 && h > 0) || !isFinite(w) || !isFinite(h) {
		return Size{}, fmt.Errorf("size %gx%g: %w", w, h, ErrInvalidSize)
	}
	return Size{w, h}, nil
}

func (s Size) Width() float32  { return s.width }
func (s Size) Height() float32 { return s.height }

// Rect is an axis-aligned rectangle with finite coordinates.
// The y axis points down, so that Top <= Bottom.
// Rectangles of zero width or height are allowed.
type Rect struct {
	left, top, right, bottom float32
}

// NewRect returns the rectangle with the given edges.
func NewRect(left, top, right, bottom float32) (Rect, error) {
	if !isFinite(left) || !isFinite(top) || !isFinite(right) || !isFinite(bottom) ||
		left > right || top > bottom {
		return Rect{}, fmt.Errorf("rect (%g, %g, %g, %g): %w",
			left, top, right, bottom, ErrInvalidRect)
	}
	// make sure that the width and height are representable
	if !isFinite(right-left) || !isFinite(bottom-top) {
		return Rect{}, fmt.Errorf("rect (%g, %g, %g, %g): %w",
			left, top, right, bottom, ErrInvalidRect)
	}
	return Rect{left, top, right, bottom}, nil
}

// RectFromXYWH returns the rectangle with top-left corner (x, y) and the
// given width and height.
func RectFromXYWH(x, y, w, h float32) (Rect, error) {
	return NewRect(x, y, x+w, y+h)
}

// rectFromPoints returns the bounding box of pts.
// The points must be finite and pts must not be empty.
func rectFromPoints(pts []Point) Rect {
	r := Rect{pts[0].X, pts[0].Y, pts[0].X, pts[0].Y}
	for _, p := range pts[1:] {
		r.left = min(r.left, p.X)
		r.top = min(r.top, p.Y)
		r.right = max(r.right, p.X)
		r.bottom = max(r.bottom, p.Y)
	}
	return r
}

func (r Rect) Left() float32   { return r.left }
func (r Rect) Top() float32    { return r.top }
func (r Rect) Right() float32  { return r.right }
func (r Rect) Bottom() float32 { return r.bottom }
func (r Rect) Width() float32  { return r.right - r.left }
func (r Rect) Height() float32 { return r.bottom - r.top }

// IsEmpty reports whether the rectangle has zero area.
func (r Rect) IsEmpty() bool {
	return r.left == r.right || r.top == r.bottom
}

// Contains reports whether the point lies inside r.
// Points on the left and top edges are inside, points on the right and
// bottom edges are not.
func (r Rect) Contains(x, y float32) bool {
	return x >= r.left && x < r.right && y >= r.top && y < r.bottom
}

// Intersect returns the intersection of r and other.
// The second return value is false if the intersection is empty.
func (r Rect) Intersect(other Rect) (Rect, bool) {
	res := Rect{
		left:   max(r.left, other.left),
		top:    max(r.top, other.top),
		right:  min(r.right, other.right),
		bottom: min(r.bottom, other.bottom),
	}
	if res.left >= res.right || res.top >= res.bottom {
		return Rect{}, false
	}
	return res, true
}

// Join returns the smallest rectangle containing both r and other.
func (r Rect) Join(other Rect) Rect {
	return Rect{
		left:   min(r.left, other.left),
		top:    min(r.top, other.top),
		right:  max(r.right, other.right),
		bottom: max(r.bottom, other.bottom),
	}
}

// Outset grows the rectangle by dx on the left and right and by dy at
// the top and bottom. Negative values shrink the rectangle. The second
// return value is false if the result is not a valid rectangle.
func (r Rect) Outset(dx, dy float32) (Rect, bool) {
	res, err := NewRect(r.left-dx, r.top-dy, r.right+dx, r.bottom+dy)
	return res, err == nil
}

// Transform returns the bounding box of the four corners of r, mapped
// by ts. The second return value is false if the result is not finite.
func (r Rect) Transform(ts Transform) (Rect, bool) {
	corners := []Point{
		{r.left, r.top}, {r.right, r.top},
		{r.right, r.bottom}, {r.left, r.bottom},
	}
	ts.MapPoints(corners)
	for _, c := range corners {
		if !c.IsFinite() {
			return Rect{}, false
		}
	}
	return rectFromPoints(corners), true
}

// ToNonZero converts r to a NonZeroRect.
// The second return value is false if r has zero area.
func (r Rect) ToNonZero() (NonZeroRect, bool) {
	if r.IsEmpty() {
		return NonZeroRect{}, false
	}
	return NonZeroRect{r}, true
}

// NonZeroRect is a rectangle with positive width and height.
type NonZeroRect struct {
	r Rect
}

// NewNonZeroRect returns the rectangle with the given edges.
// It fails unless left < right and top < bottom.
func NewNonZeroRect(left, top, right, bottom float32) (NonZeroRect, error) {
	r, err := NewRect(left, top, right, bottom)
	if err != nil {
		return NonZeroRect{}, err
	}
	nz, ok := r.ToNonZero()
	if !ok {
		return NonZeroRect{}, fmt.Errorf("rect (%g, %g, %g, %g) has zero area: %w",
			left, top, right, bottom, ErrInvalidRect)
	}
	return nz, nil
}

// Rect converts r to a Rect.
func (r NonZeroRect) Rect() Rect { return r.r }

func (r NonZeroRect) Left() float32   { return r.r.left }
func (r NonZeroRect) Top() float32    { return r.r.top }
func (r NonZeroRect) Right() float32  { return r.r.right }
func (r NonZeroRect) Bottom() float32 { return r.r.bottom }
func (r NonZeroRect) Width() float32  { return r.r.Width() }
func (r NonZeroRect) Height() float32 { return r.r.Height() }

func isFinite(x float32) bool {
	return !math32.IsNaN(x) && !math32.IsInf(x, 0)
}
