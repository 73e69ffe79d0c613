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

	"github.com/chewxy/math32"
	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/raster/internal/pipeline"
)

// Transform is an affine map of the plane:
//
//	x' = SX*x + KX*y + TX
//	y' = KY*x + SY*y + TY
//
// The zero value maps every point to the origin. Use [Identity] for the
// identity map.
type Transform struct {
	SX, KY, KX, SY, TX, TY float32
}

// Identity returns the identity transform.
func Identity() Transform {
	return Transform{SX: 1, SY: 1}
}

// Translate returns a translation by (tx, ty).
func Translate(tx, ty float32) Transform {
	return Transform{SX: 1, SY: 1, TX: tx, TY: ty}
}

// Scale returns a scaling by sx horizontally and sy vertically.
func Scale(sx, sy float32) Transform {
	return Transform{SX: sx, SY: sy}
}

// Rotate returns a rotation by the given angle in degrees.
// Since the y axis points down, positive angles rotate clockwise on
// the screen.
func Rotate(deg float32) Transform {
	rad := float64(deg) * math.Pi / 180
	sin, cos := math.Sincos(rad)
	return Transform{
		SX: float32(cos), KY: float32(sin),
		KX: float32(-sin), SY: float32(cos),
	}
}

// Skew returns a shear with the given factors.
func Skew(kx, ky float32) Transform {
	return Transform{SX: 1, KY: ky, KX: kx, SY: 1}
}

// concat returns a*b, which applies b first and then a.
func concat(a, b Transform) Transform {
	return Transform{
		SX: a.SX*b.SX + a.KX*b.KY,
		KY: a.KY*b.SX + a.SY*b.KY,
		KX: a.SX*b.KX + a.KX*b.SY,
		SY: a.KY*b.KX + a.SY*b.SY,
		TX: a.SX*b.TX + a.KX*b.TY + a.TX,
		TY: a.KY*b.TX + a.SY*b.TY + a.TY,
	}
}

// PreConcat returns ts*other. The result applies other first.
func (ts Transform) PreConcat(other Transform) Transform { return concat(ts, other) }

// PostConcat returns other*ts. The result applies other last.
func (ts Transform) PostConcat(other Transform) Transform { return concat(other, ts) }

func (ts Transform) PreTranslate(tx, ty float32) Transform {
	return ts.PreConcat(Translate(tx, ty))
}

func (ts Transform) PostTranslate(tx, ty float32) Transform {
	return ts.PostConcat(Translate(tx, ty))
}

func (ts Transform) PreScale(sx, sy float32) Transform {
	return ts.PreConcat(Scale(sx, sy))
}

func (ts Transform) PostScale(sx, sy float32) Transform {
	return ts.PostConcat(Scale(sx, sy))
}

// IsIdentity reports whether ts is the identity map.
func (ts Transform) IsIdentity() bool {
	return ts == Identity()
}

// IsScaleTranslate reports whether ts only scales and translates.
func (ts Transform) IsScaleTranslate() bool {
	return !ts.HasSkew()
}

// HasSkew reports whether ts has non-zero skew or rotation components.
func (ts Transform) HasSkew() bool {
	return ts.KX != 0 || ts.KY != 0
}

// IsFinite reports whether all coefficients are finite.
func (ts Transform) IsFinite() bool {
	return isFinite(ts.SX) && isFinite(ts.KY) && isFinite(ts.KX) &&
		isFinite(ts.SY) && isFinite(ts.TX) && isFinite(ts.TY)
}

// IsInvertible reports whether [Transform.Invert] succeeds.
func (ts Transform) IsInvertible() bool {
	_, ok := ts.Invert()
	return ok
}

// nearlySingular is the determinant below which a transform is treated
// as not invertible.
const nearlySingular = 1.0 / (4096 * 4096 * 4096)

// Invert returns the inverse transform. The second return value is false
// if ts is not finite or is singular or nearly singular.
func (ts Transform) Invert() (Transform, bool) {
	if !ts.IsFinite() {
		return Transform{}, false
	}
	a, b := float64(ts.SX), float64(ts.KY)
	c, d := float64(ts.KX), float64(ts.SY)
	e, f := float64(ts.TX), float64(ts.TY)

	det := a*d - b*c
	if math.Abs(det) <= nearlySingular || math.IsInf(det, 0) {
		return Transform{}, false
	}
	inv := 1 / det
	res := Transform{
		SX: float32(d * inv),
		KY: float32(-b * inv),
		KX: float32(-c * inv),
		SY: float32(a * inv),
		TX: float32((c*f - d*e) * inv),
		TY: float32((b*e - a*f) * inv),
	}
	if !res.IsFinite() {
		return Transform{}, false
	}
	return res, true
}

// MapPoint applies the transform to a point.
func (ts Transform) MapPoint(p Point) Point {
	return Point{
		X: ts.SX*p.X + ts.KX*p.Y + ts.TX,
		Y: ts.KY*p.X + ts.SY*p.Y + ts.TY,
	}
}

// MapPoints applies the transform to all points, in place.
func (ts Transform) MapPoints(pts []Point) {
	for i, p := range pts {
		pts[i] = ts.MapPoint(p)
	}
}

// matrix converts ts for use by the scan converter.
func (ts Transform) matrix() matrix.Matrix {
	return matrix.Matrix{
		float64(ts.SX), float64(ts.KY),
		float64(ts.KX), float64(ts.SY),
		float64(ts.TX), float64(ts.TY),
	}
}

func (ts Transform) affine() pipeline.Affine {
	return pipeline.Affine{
		SX: ts.SX, KY: ts.KY,
		KX: ts.KX, SY: ts.SY,
		TX: ts.TX, TY: ts.TY,
	}
}

// resScale returns the factor by which ts magnifies lengths, at most.
// This is used to choose the flattening tolerance for strokes.
func (ts Transform) resScale() float32 {
	sx := math32.Hypot(ts.SX, ts.KY)
	sy := math32.Hypot(ts.KX, ts.SY)
	s := max(sx, sy)
	if !(s > 0) || !isFinite(s) {
		return 1
	}
	return s
}
