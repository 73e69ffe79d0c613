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

// highpLanes is the number of pixels processed together by the float
// backend.
const highpLanes = 8

type lanes [highpLanes]float32

// highp holds the source and destination channels of one chunk.
type highp struct {
	r, g, b, a     lanes
	dr, dg, db, da lanes
}

// run composites the pixels in px, which start at (x, y).
// px holds at most highpLanes pixels.
func (h *highp) run(p *Pipeline, px []uint8, x, y int, coverage, mask []uint8) {
	n := len(px) / 4

	p.src.shade(x, y, h.r[:n], h.g[:n], h.b[:n], h.a[:n])

	const scale = 1.0 / 255
	for i := range n {
		h.dr[i] = float32(px[4*i]) * scale
		h.dg[i] = float32(px[4*i+1]) * scale
		h.db[i] = float32(px[4*i+2]) * scale
		h.da[i] = float32(px[4*i+3]) * scale
	}

	for i := range n {
		h.r[i], h.g[i], h.b[i], h.a[i] = blendPixel(p.mode,
			h.r[i], h.g[i], h.b[i], h.a[i],
			h.dr[i], h.dg[i], h.db[i], h.da[i])
	}

	for i := range n {
		c := p.opacity
		if coverage != nil {
			c *= float32(coverage[i]) * scale
		}
		if mask != nil {
			c *= float32(mask[i]) * scale
		}
		px[4*i] = toU8(h.dr[i] + (h.r[i]-h.dr[i])*c)
		px[4*i+1] = toU8(h.dg[i] + (h.g[i]-h.dg[i])*c)
		px[4*i+2] = toU8(h.db[i] + (h.b[i]-h.db[i])*c)
		px[4*i+3] = toU8(h.da[i] + (h.a[i]-h.da[i])*c)
	}
}
