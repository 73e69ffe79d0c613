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
	"iter"

	"seehuhn.de/go/geom/path"
)

// Span is a horizontal run of 8-bit coverage values on one pixel row,
// starting at column X.
type Span struct {
	Y, X     int
	Coverage []uint8
}

// Spans returns the coverage of the path as a sequence of spans.
//
// The sequence is lazy: nothing is computed until it is ranged over, and
// every range starts again from scratch, so the sequence can be iterated
// more than once. The Coverage slice of a span is only valid until the
// next iteration step. While the sequence is being iterated, the
// Rasterizer must not be used for anything else.
func (r *Rasterizer) Spans(p path.Path, rule FillRule, antiAlias bool) iter.Seq[Span] {
	return func(yield func(Span) bool) {
		r.fill(p, rule, antiAlias, func(y, xMin int, coverage []float32) bool {
			r.quantised = quantise(r.quantised, coverage)
			return yield(Span{Y: y, X: xMin, Coverage: r.quantised})
		})
	}
}
