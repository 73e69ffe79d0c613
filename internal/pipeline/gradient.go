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

package pipeline

import "github.com/chewxy/math32"

// Stop is a gradient color stop with a premultiplied color.
type Stop struct {
	Pos        float32
	R, G, B, A float32
}

// Gradient is a linear or two-point conical gradient.
type Gradient struct {
	inverse Affine // device space to gradient space
	spread  SpreadMode
	conical bool

	x0, y0, r0 float32
	x1, y1, r1 float32

	// linear gradients: the axis scaled by 1/|axis|²
	ax, ay float32

	// Piecewise linear color function. For t >= tValues[k] (and below
	// the next t value) the color is factors[k]*t + biases[k].
	tValues []float32
	factors [][4]float32
	biases  [][4]float32
}

// conicalEpsilon is the threshold below which the quadratic coefficient
// of the conical gradient equation is treated as zero.
const conicalEpsilon = 1.0 / (1 << 15)

// NewLinearGradient returns a gradient which varies along the line from
// (x0, y0) to (x1, y1). The inverse transform maps device coordinates to
// the coordinate system of the gradient. Stops must be sorted by
// position, and the two points must differ.
func NewLinearGradient(inverse Affine, x0, y0, x1, y1 float32, stops []Stop, spread SpreadMode) *Gradient {
	dx, dy := x1-x0, y1-y0
	l2 := dx*dx + dy*dy
	g := &Gradient{
		inverse: inverse,
		spread:  spread,
		x0:      x0,
		y0:      y0,
		x1:      x1,
		y1:      y1,
		ax:      dx / l2,
		ay:      dy / l2,
	}
	g.setStops(stops)
	return g
}

// NewConicalGradient returns a gradient between the circle with centre
// (x0, y0) and radius r0 and the circle with centre (x1, y1) and radius
// r1. A plain radial gradient has equal centres and r0 = 0.
func NewConicalGradient(inverse Affine, x0, y0, r0, x1, y1, r1 float32, stops []Stop, spread SpreadMode) *Gradient {
	g := &Gradient{
		inverse: inverse,
		spread:  spread,
		conical: true,
		x0:      x0,
		y0:      y0,
		r0:      r0,
		x1:      x1,
		y1:      y1,
		r1:      r1,
	}
	g.setStops(stops)
	return g
}

// setStops builds the piecewise linear color function.
// Stops at 0 and 1 are added if missing. Stops with equal positions
// produce no interval, so that the later stop wins from that position on.
func (g *Gradient) setStops(stops []Stop) {
	if len(stops) == 0 {
		return
	}
	all := make([]Stop, 0, len(stops)+2)
	if stops[0].Pos != 0 {
		first := stops[0]
		first.Pos = 0
		all = append(all, first)
	}
	all = append(all, stops...)
	if last := stops[len(stops)-1]; last.Pos != 1 {
		last.Pos = 1
		all = append(all, last)
	}

	tL := all[0].Pos
	cL := [4]float32{all[0].R, all[0].G, all[0].B, all[0].A}
	g.pushConst(0, cL)
	for _, s := range all[1:] {
		tR := s.Pos
		cR := [4]float32{s.R, s.G, s.B, s.A}
		if tL < tR {
			var f, b [4]float32
			for c := range f {
				f[c] = (cR[c] - cL[c]) / (tR - tL)
				b[c] = cL[c] - f[c]*tL
			}
			g.tValues = append(g.tValues, tL)
			g.factors = append(g.factors, f)
			g.biases = append(g.biases, b)
		}
		tL, cL = tR, cR
	}
	g.pushConst(tL, cL)
}

func (g *Gradient) pushConst(t float32, c [4]float32) {
	g.tValues = append(g.tValues, t)
	g.factors = append(g.factors, [4]float32{})
	g.biases = append(g.biases, c)
}

func (g *Gradient) shade(x, y int, r, gg, b, a []float32) {
	fy := float32(y) + 0.5
	for i := range r {
		px, py := g.inverse.apply(float32(x+i)+0.5, fy)

		var t float32
		var ok bool
		if g.conical {
			t, ok = g.conicalT(px, py)
		} else {
			t, ok = g.linearT(px, py), true
		}
		if !ok {
			r[i], gg[i], b[i], a[i] = 0, 0, 0, 0
			continue
		}
		t = tileUnit(t, g.spread)

		k := 0
		for j := 1; j < len(g.tValues); j++ {
			if t >= g.tValues[j] {
				k++
			}
		}
		f, bias := &g.factors[k], &g.biases[k]
		r[i] = t*f[0] + bias[0]
		gg[i] = t*f[1] + bias[1]
		b[i] = t*f[2] + bias[2]
		a[i] = t*f[3] + bias[3]
	}
}

// linearT projects the point onto the gradient axis.
func (g *Gradient) linearT(px, py float32) float32 {
	return (px-g.x0)*g.ax + (py-g.y0)*g.ay
}

// conicalT finds the largest t for which the point lies on the circle
// with centre c(t) = c0 + t*(c1-c0) and radius r(t) = r0 + t*(r1-r0),
// subject to r(t) >= 0.
func (g *Gradient) conicalT(px, py float32) (float32, bool) {
	cdx, cdy := g.x1-g.x0, g.y1-g.y0
	pdx, pdy := px-g.x0, py-g.y0
	dr := g.r1 - g.r0

	qa := cdx*cdx + cdy*cdy - dr*dr
	qb := pdx*cdx + pdy*cdy + g.r0*dr
	qc := pdx*pdx + pdy*pdy - g.r0*g.r0

	if math32.Abs(qa) < conicalEpsilon {
		if qb == 0 {
			return 0, false
		}
		t := qc / (2 * qb)
		return t, g.r0+t*dr >= 0
	}

	disc := qb*qb - qa*qc
	if disc < 0 {
		return 0, false
	}
	sq := math32.Sqrt(disc)
	t1 := (qb + sq) / qa
	t2 := (qb - sq) / qa
	if t1 < t2 {
		t1, t2 = t2, t1
	}
	if g.r0+t1*dr >= 0 {
		return t1, true
	}
	if g.r0+t2*dr >= 0 {
		return t2, true
	}
	return 0, false
}

// tileUnit folds a gradient parameter into [0, 1].
func tileUnit(t float32, mode SpreadMode) float32 {
	switch mode {
	case Repeat:
		t -= math32.Floor(t)
	case Reflect:
		u := t - 1
		t = math32.Abs(u - 2*math32.Floor(u*0.5) - 1)
	}
	return clamp01(t)
}
