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

	"github.com/chewxy/math32"
)

// Coverage accumulation model:
//
// For each pixel, we track two values:
//   cover: signed vertical extent of edges crossing this pixel column
//   area:  horizontal position weighting (how far right the crossing is)
//
// An edge crossing a pixel contributes:
//   cover = sign * dy   (where sign is +1 for downward, -1 for upward)
//   area  = cover * (1 - xFrac)   (xFrac is the horizontal position within the pixel)
//
// Final coverage is computed by the integrate functions:
//   pixel_coverage = accumulated_cover + area[i]
//   accumulated_cover += cover[i]
//
// This is the signed area of the path within each pixel, i.e. the limit
// of vertical supersampling with exact horizontal partial coverage.

// accumulateEdge adds a single edge's contribution for scanline y to the
// cover and area buffers. The buffers are indexed by x - bboxXMin.
// Contributions left of bboxXMin are folded into the first column,
// contributions at or right of bboxXMax are dropped.
func (r *Rasterizer) accumulateEdge(e *edge, y int, cover, area []float32, bboxXMin, bboxXMax int) {
	yTop := max(float64(y), e.yMin())
	yBot := min(float64(y+1), e.yMax())
	if yBot <= yTop {
		return
	}

	sign := float32(e.winding())

	xAtYTop := e.x0 + e.dxdy*(yTop-e.y0)
	xAtYBot := e.x0 + e.dxdy*(yBot-e.y0)
	xLeft, xRight := xAtYTop, xAtYBot
	if xLeft > xRight {
		xLeft, xRight = xRight, xLeft
	}

	// Only pixel boundaries inside the bbox matter, so the range is
	// clamped before it is iterated.
	pixLeft := floorClamp(xLeft, bboxXMin-1, bboxXMax)
	pixRight := floorClamp(xRight, bboxXMin-1, bboxXMax)

	if pixRight < bboxXMin {
		coverVal := sign * float32(yBot-yTop)
		cover[0] += coverVal
		area[0] += coverVal
		return
	}
	if pixLeft >= bboxXMax {
		return
	}

	if pixLeft == pixRight {
		accumulateEdgeInColumn(e, yTop, yBot, sign, pixLeft, cover, area, bboxXMin, bboxXMax)
		return
	}

	// The edge spans multiple pixels: split it at every pixel boundary.
	dydx := 1 / e.dxdy
	r.crossings = append(r.crossings[:0], yTop, yBot)
	for x := pixLeft + 1; x <= pixRight; x++ {
		yAtX := e.y0 + dydx*(float64(x)-e.x0)
		if yAtX > yTop && yAtX < yBot {
			r.crossings = append(r.crossings, yAtX)
		}
	}
	slices.Sort(r.crossings)

	for i := range len(r.crossings) - 1 {
		y0 := r.crossings[i]
		y1 := r.crossings[i+1]
		if y1 <= y0 {
			continue
		}
		// the midpoint of the piece determines its pixel column
		xMid := e.x0 + e.dxdy*((y0+y1)/2-e.y0)
		pix := floorClamp(xMid, bboxXMin-1, bboxXMax)
		accumulateEdgeInColumn(e, y0, y1, sign, pix, cover, area, bboxXMin, bboxXMax)
	}
}

// accumulateEdgeInColumn handles an edge piece that lies within the
// single pixel column pix.
func accumulateEdgeInColumn(e *edge, yTop, yBot float64, sign float32, pix int, cover, area []float32, bboxXMin, bboxXMax int) {
	coverVal := sign * float32(yBot-yTop)

	if pix < bboxXMin {
		cover[0] += coverVal
		area[0] += coverVal
		return
	}
	if pix >= bboxXMax {
		return
	}

	yMid := (yTop + yBot) / 2
	xMid := e.x0 + e.dxdy*(yMid-e.y0)
	xFrac := min(max(xMid-float64(pix), 0), 1)
	idx := pix - bboxXMin
	cover[idx] += coverVal
	area[idx] += coverVal * float32(1-xFrac)
}

// integrateScanlineNonZero converts accumulated cover/area to final coverage
// values using the nonzero winding rule. The cover slice is modified in place.
func integrateScanlineNonZero(cover, area []float32) {
	var accum float32
	for i := range cover {
		raw := accum + area[i]
		accum += cover[i]
		cover[i] = min(math32.Abs(raw), 1)
	}
}

// integrateScanlineEvenOdd converts accumulated cover/area to final coverage
// values using the even-odd fill rule. The cover slice is modified in place.
func integrateScanlineEvenOdd(cover, area []float32) {
	var accum float32
	for i := range cover {
		raw := math32.Abs(accum + area[i])
		accum += cover[i]

		// 1 - abs(1 - mod(raw, 2))
		mod := raw - 2*math32.Floor(raw/2)
		cover[i] = min(max(1-math32.Abs(1-mod), 0), 1)
	}
}

// trimZeros returns the non-zero portion of coverage and its starting offset.
// Returns nil, 0 if coverage is entirely zero.
func trimZeros(coverage []float32) (trimmed []float32, offset int) {
	n := len(coverage)
	lo := 0
	for lo < n && coverage[lo] == 0 {
		lo++
	}
	if lo == n {
		return nil, 0
	}
	hi := n - 1
	for hi > lo && coverage[hi] == 0 {
		hi--
	}
	return coverage[lo : hi+1], lo
}

// rowBound returns the buffer column of the midpoint of e within
// scanline y, clamped to the bbox.
func rowBound(e *edge, y int, xMin, xMax int) (int, bool) {
	yTop := max(float64(y), e.yMin())
	yBot := min(float64(y+1), e.yMax())
	if yBot <= yTop {
		return 0, false
	}
	yMid := (yTop + yBot) / 2
	x := floorClamp(e.x0+e.dxdy*(yMid-e.y0), xMin, xMax-1)
	return x - xMin, true
}

// fillSmallPath rasterizes using 2D buffers (strategy A).
// xMin, xMax, yMin, yMax define the path's bounding box, clamped to the clip.
func (r *Rasterizer) fillSmallPath(xMin, xMax, yMin, yMax int, rule FillRule, emit func(y, xMin int, coverage []float32) bool) {
	width := xMax - xMin
	height := yMax - yMin

	size := width * height
	r.cover = slices.Grow(r.cover[:0], size)[:size]
	r.area = slices.Grow(r.area[:0], size)[:size]
	clear(r.cover)
	clear(r.area)

	r.rowXMin = slices.Grow(r.rowXMin[:0], height)[:height]
	r.rowXMax = slices.Grow(r.rowXMax[:0], height)[:height]
	for i := range r.rowXMin {
		r.rowXMin[i] = width
		r.rowXMax[i] = -1
	}

	for i := range r.edges {
		e := &r.edges[i]

		edgeYMin := floorClamp(e.yMin(), yMin, yMax)
		edgeYMax := floorClamp(e.yMax(), yMin-1, yMax-1) + 1
		for y := edgeYMin; y < edgeYMax; y++ {
			row := y - yMin
			rowOffset := row * width
			r.accumulateEdge(e, y, r.cover[rowOffset:rowOffset+width], r.area[rowOffset:rowOffset+width], xMin, xMax)

			if xIdx, ok := rowBound(e, y, xMin, xMax); ok {
				r.rowXMin[row] = min(r.rowXMin[row], xIdx)
				r.rowXMax[row] = max(r.rowXMax[row], xIdx)
			}
		}
	}

	for row := range height {
		if r.rowXMax[row] < 0 {
			continue // no edges touched this row
		}

		rowOffset := row * width
		coverage := r.cover[rowOffset : rowOffset+width]
		if rule == NonZero {
			integrateScanlineNonZero(coverage, r.area[rowOffset:rowOffset+width])
		} else {
			integrateScanlineEvenOdd(coverage, r.area[rowOffset:rowOffset+width])
		}

		if trimmed, offset := trimZeros(coverage); trimmed != nil {
			if !emit(yMin+row, xMin+offset, trimmed) {
				return
			}
		}
	}
}

// sortEdges orders the edge list by the topmost y coordinate.
func (r *Rasterizer) sortEdges() {
	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(a.yMin(), b.yMin())
	})
}

// fillLargePath rasterizes using 1D buffers and an active edge list
// (strategy B).
func (r *Rasterizer) fillLargePath(xMin, xMax, yMin, yMax int, rule FillRule, emit func(y, xMin int, coverage []float32) bool) {
	width := xMax - xMin

	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	r.sortEdges()
	r.activeIdx = r.activeIdx[:0]
	nextEdge := 0

	for y := yMin; y < yMax; y++ {
		yf := float64(y)
		yfNext := float64(y + 1)

		for nextEdge < len(r.edges) {
			e := &r.edges[nextEdge]
			if e.yMin() >= yfNext {
				break
			}
			if e.yMax() > yf {
				r.activeIdx = append(r.activeIdx, nextEdge)
			}
			nextEdge++
		}

		if len(r.activeIdx) == 0 {
			if nextEdge == len(r.edges) {
				return
			}
			continue
		}

		clear(r.cover)
		clear(r.area)

		xMinBound := width
		xMaxBound := -1
		for i := 0; i < len(r.activeIdx); {
			e := &r.edges[r.activeIdx[i]]

			if e.yMax() <= yf {
				// swap-remove
				r.activeIdx[i] = r.activeIdx[len(r.activeIdx)-1]
				r.activeIdx = r.activeIdx[:len(r.activeIdx)-1]
				continue
			}

			r.accumulateEdge(e, y, r.cover, r.area, xMin, xMax)
			if xIdx, ok := rowBound(e, y, xMin, xMax); ok {
				xMinBound = min(xMinBound, xIdx)
				xMaxBound = max(xMaxBound, xIdx)
			}
			i++
		}

		if xMaxBound < 0 {
			continue // no edges contributed to this scanline
		}

		if rule == NonZero {
			integrateScanlineNonZero(r.cover, r.area)
		} else {
			integrateScanlineEvenOdd(r.cover, r.area)
		}

		if trimmed, offset := trimZeros(r.cover); trimmed != nil {
			if !emit(y, xMin+offset, trimmed) {
				return
			}
		}
	}
}

// quantise converts coverage in [0, 1] to 8-bit values.
func quantise(dst []uint8, coverage []float32) []uint8 {
	dst = slices.Grow(dst[:0], len(coverage))[:len(coverage)]
	for i, c := range coverage {
		dst[i] = uint8(math.Round(float64(min(max(c, 0), 1)) * 255))
	}
	return dst
}
