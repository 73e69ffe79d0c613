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
	"math"
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustRect(t *testing.T, l, tp, r, b float32) Rect {
	t.Helper()
	res, err := NewRect(l, tp, r, b)
	require.NoError(t, err)
	return res
}

func TestNewRect(t *testing.T) {
	r := mustRect(t, 1, 2, 11, 7)
	assert.Equal(t, float32(10), r.Width())
	assert.Equal(t, float32(5), r.Height())
	assert.False(t, r.IsEmpty())

	_, err := NewRect(5, 0, 1, 1)
	assert.ErrorIs(t, err, ErrInvalidRect)
	_, err = NewRect(0, 0, math32.NaN(), 1)
	assert.ErrorIs(t, err, ErrInvalidRect)
	_, err = NewRect(-math.MaxFloat32, 0, math.MaxFloat32, 1)
	assert.ErrorIs(t, err, ErrInvalidRect)

	flat := mustRect(t, 0, 3, 10, 3)
	assert.True(t, flat.IsEmpty())
	_, ok := flat.ToNonZero()
	assert.False(t, ok)

	_, err = NewNonZeroRect(0, 0, 0, 5)
	assert.ErrorIs(t, err, ErrInvalidRect)
	nz, err := NewNonZeroRect(0, 0, 4, 5)
	require.NoError(t, err)
	assert.Equal(t, float32(4), nz.Width())
	assert.Equal(t, float32(5), nz.Rect().Bottom())
}

func TestRectFromXYWH(t *testing.T) {
	r, err := RectFromXYWH(2, 3, 4, 5)
	require.NoError(t, err)
	assert.Equal(t, mustRect(t, 2, 3, 6, 8), r)

	_, err = RectFromXYWH(0, 0, -1, 1)
	assert.ErrorIs(t, err, ErrInvalidRect)
}

func TestRectContains(t *testing.T) {
	r := mustRect(t, 0, 0, 10, 10)
	assert.True(t, r.Contains(0, 0))
	assert.True(t, r.Contains(9.9, 9.9))
	assert.False(t, r.Contains(10, 5))
	assert.False(t, r.Contains(5, 10))
	assert.False(t, r.Contains(-0.1, 5))
}

func TestRectSetOperations(t *testing.T) {
	a := mustRect(t, 0, 0, 10, 10)
	b := mustRect(t, 5, 5, 15, 15)

	i, ok := a.Intersect(b)
	require.True(t, ok)
	assert.Equal(t, mustRect(t, 5, 5, 10, 10), i)

	_, ok = a.Intersect(mustRect(t, 10, 0, 20, 10))
	assert.False(t, ok, "touching rectangles do not intersect")
	_, ok = a.Intersect(mustRect(t, 20, 20, 30, 30))
	assert.False(t, ok)

	assert.Equal(t, mustRect(t, 0, 0, 15, 15), a.Join(b))

	o, ok := a.Outset(1, 2)
	require.True(t, ok)
	assert.Equal(t, mustRect(t, -1, -2, 11, 12), o)
	_, ok = a.Outset(-6, -6)
	assert.False(t, ok)
}

func TestRectTransform(t *testing.T) {
	r := mustRect(t, 0, 0, 10, 5)
	res, ok := r.Transform(Scale(2, 3).PostTranslate(1, 1))
	require.True(t, ok)
	assert.Equal(t, mustRect(t, 1, 1, 21, 16), res)

	// mirrored transforms still give a valid rectangle
	res, ok = r.Transform(Scale(-1, 1))
	require.True(t, ok)
	assert.Equal(t, mustRect(t, -10, 0, 0, 5), res)

	_, ok = r.Transform(Scale(math.MaxFloat32, 1).PostScale(10, 1))
	assert.False(t, ok)
}

func TestSize(t *testing.T) {
	s, err := NewSize(3, 4)
	require.NoError(t, err)
	assert.Equal(t, float32(3), s.Width())
	assert.Equal(t, float32(4), s.Height())

	for _, wh := range [][2]float32{{0, 1}, {1, -1}, {math32.Inf(1), 1}} {
		_, err := NewSize(wh[0], wh[1])
		assert.ErrorIs(t, err, ErrInvalidSize, wh)
	}
}

func TestPoint(t *testing.T) {
	p := Point{3, 4}
	assert.Equal(t, float32(5), p.Length())
	assert.Equal(t, Point{4, 6}, p.Add(Point{1, 2}))
	assert.Equal(t, Point{2, 2}, p.Sub(Point{1, 2}))
	assert.Equal(t, Point{6, 8}, p.Scale(2))
	assert.Equal(t, float32(11), p.Dot(Point{1, 2}))
	assert.Equal(t, float32(2), p.Cross(Point{1, 2}))
	assert.Equal(t, float32(5), p.Distance(Point{}))
	assert.True(t, p.IsFinite())
	assert.False(t, Point{math32.NaN(), 0}.IsFinite())
}

func TestTransformCompose(t *testing.T) {
	pt := Point{1, 1}

	// PreConcat applies the argument first
	ts := Translate(1, 2).PreConcat(Scale(2, 3))
	assert.Equal(t, Point{3, 5}, ts.MapPoint(pt))
	assert.Equal(t, ts, Translate(1, 2).PreScale(2, 3))

	// PostConcat applies the argument last
	ts = Translate(1, 2).PostConcat(Scale(2, 3))
	assert.Equal(t, Point{4, 9}, ts.MapPoint(pt))
	assert.Equal(t, ts, Translate(1, 2).PostScale(2, 3))

	assert.Equal(t, Point{3, 4}, Identity().PreTranslate(2, 3).MapPoint(pt))
	assert.Equal(t, Point{3, 4}, Identity().PostTranslate(2, 3).MapPoint(pt))
}

func TestTransformRotate(t *testing.T) {
	p := Rotate(90).MapPoint(Point{1, 0})
	assert.InDelta(t, 0, p.X, 1e-6)
	assert.InDelta(t, 1, p.Y, 1e-6)

	assert.False(t, Rotate(30).IsScaleTranslate())
	assert.True(t, Rotate(30).HasSkew())
	assert.True(t, Scale(2, 2).PostTranslate(3, 4).IsScaleTranslate())
	assert.True(t, Identity().IsIdentity())
	assert.False(t, Translate(1, 0).IsIdentity())

	p = Skew(0.5, 0).MapPoint(Point{0, 2})
	assert.Equal(t, Point{1, 2}, p)
}

func TestTransformInvert(t *testing.T) {
	ts := Scale(2, 4).PostTranslate(1, 1)
	inv, ok := ts.Invert()
	require.True(t, ok)
	p := inv.MapPoint(Point{3, 5})
	assert.InDelta(t, 1, p.X, 1e-6)
	assert.InDelta(t, 1, p.Y, 1e-6)

	ts = Rotate(30).PreScale(3, 0.5).PostTranslate(-7, 2)
	inv, ok = ts.Invert()
	require.True(t, ok)
	p = inv.MapPoint(ts.MapPoint(Point{4, -3}))
	assert.InDelta(t, 4, p.X, 1e-4)
	assert.InDelta(t, -3, p.Y, 1e-4)

	_, ok = Scale(0, 1).Invert()
	assert.False(t, ok)
	assert.True(t, Scale(1e-5, 1e-5).IsInvertible())
	assert.False(t, Scale(1e-6, 1e-6).IsInvertible())
	assert.False(t, Transform{SX: math32.NaN(), SY: 1}.IsInvertible())
}

func TestTransformIsFinite(t *testing.T) {
	assert.True(t, Rotate(10).IsFinite())
	assert.False(t, Translate(math32.Inf(1), 0).IsFinite())
	assert.False(t, Transform{SX: 1, SY: 1, TY: math32.NaN()}.IsFinite())
}

func TestTransformMapPoints(t *testing.T) {
	pts := []Point{{0, 0}, {1, 2}}
	Translate(1, 1).MapPoints(pts)
	assert.Equal(t, []Point{{1, 1}, {2, 3}}, pts)
}

func TestResScale(t *testing.T) {
	assert.Equal(t, float32(1), Identity().resScale())
	assert.Equal(t, float32(3), Scale(3, 2).resScale())
	assert.InDelta(t, 2, Rotate(45).PreScale(2, 2).resScale(), 1e-6)
	assert.Equal(t, float32(1), Scale(0, 0).resScale())
}
