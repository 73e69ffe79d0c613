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
	"cmp"
	"math"
	"slices"
)

// crossing is an intersection of an edge with the sample line.
type crossing struct {
	x       float64
	winding int
}

// fillAliased rasterizes without anti-aliasing. A pixel is inside if its
// centre is inside the path under the fill rule, and inside pixels
// receive full coverage.
func (r *Rasterizer) fillAliased(xMin, xMax, yMin, yMax int, rule FillRule, emit func(y, xMin int, coverage []float32) bool) {
	width := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], width)[:width]
	for i := range r.cover {
		r.cover[i] = 1
	}

	r.sortEdges()
	r.activeIdx = r.activeIdx[:0]
	nextEdge := 0

	for y := yMin; y < yMax; y++ {
		sy := float64(y) + 0.5

		for nextEdge < len(r.edges) && r.edges[nextEdge].yMin() <= sy {
			if r.edges[nextEdge].yMax() > sy {
				r.activeIdx = append(r.activeIdx, nextEdge)
			}
			nextEdge++
		}

		r.samples = r.samples[:0]
		for i := 0; i < len(r.activeIdx); {
			e := &r.edges[r.activeIdx[i]]
			if e.yMax() <= sy {
				r.activeIdx[i] = r.activeIdx[len(r.activeIdx)-1]
				r.activeIdx = r.activeIdx[:len(r.activeIdx)-1]
				continue
			}
			r.samples = append(r.samples, crossing{
				x:       e.x0 + e.dxdy*(sy-e.y0),
				winding: e.winding(),
			})
			i++
		}
		if len(r.samples) < 2 {
			if len(r.activeIdx) == 0 && nextEdge == len(r.edges) {
				return
			}
			continue
		}
		slices.SortFunc(r.samples, func(a, b crossing) int {
			return cmp.Compare(a.x, b.x)
		})

		w := 0
		for i := range len(r.samples) - 1 {
			w += r.samples[i].winding
			inside := w != 0
			if rule == EvenOdd {
				inside = w%2 != 0
			}
			if !inside {
				continue
			}

			// pixels whose centres lie in [x0, x1)
			x0 := ceilClamp(r.samples[i].x-0.5, xMin, xMax)
			x1 := ceilClamp(r.samples[i+1].x-0.5, xMin, xMax)
			if x1 <= x0 {
				continue
			}
			if !emit(y, x0, r.cover[:x1-x0]) {
				return
			}
		}
	}
}

// ceilClamp returns ceil(x) clamped to [lo, hi].
func ceilClamp(x float64, lo, hi int) int {
	x = math.Ceil(x)
	if x < float64(lo) {
		return lo
	}
	if x > float64(hi) {
		return hi
	}
	return int(x)
}
