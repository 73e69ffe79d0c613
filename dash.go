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
	"math"
	"slices"
)

// maxDashCount is the maximal number of dash intervals per contour.
// Contours which would need more intervals are not dashed.
const maxDashCount = 1_000_000

// StrokeDash is a dash pattern.
type StrokeDash struct {
	intervals []float64 // even length, alternating on and off
	total     float64
	phase     float64 // in [0, total)
}

// NewStrokeDash returns a dash pattern. The intervals alternate between
// "on" and "off" lengths, starting with "on". A list of odd length is
// repeated once, so that [3] is the same as [3, 3]. This follows SVG and
// PostScript; libraries which require an even number of intervals
// reject such lists instead. The offset gives the position in the
// pattern at which the start of each contour is placed.
// Intervals must be finite and non-negative, with a positive sum.
func NewStrokeDash(intervals []float32, offset float32) (*StrokeDash, error) {
	if len(intervals) == 0 {
		return nil, ErrEmptyDash
	}
	if !isFinite(offset) {
		return nil, fmt.Errorf("dash offset %g: %w", offset, ErrInvalidDashInterval)
	}

	d := &StrokeDash{}
	for i, l := range intervals {
		if !(l >= 0) || !isFinite(l) {
			return nil, fmt.Errorf("dash interval %d is %g: %w", i, l, ErrInvalidDashInterval)
		}
		d.intervals = append(d.intervals, float64(l))
		d.total += float64(l)
	}
	if len(d.intervals)%2 == 1 {
		d.intervals = append(d.intervals, d.intervals...)
		d.total *= 2
	}
	if !(d.total > 0) || math.IsInf(d.total, 0) {
		return nil, ErrZeroDash
	}

	d.phase = math.Mod(float64(offset), d.total)
	if d.phase < 0 {
		d.phase += d.total
	}
	if d.phase >= d.total {
		d.phase = 0
	}
	return d, nil
}

// Intervals returns the dash intervals, after repeating odd-length lists.
func (d *StrokeDash) Intervals() []float32 {
	res := make([]float32, len(d.intervals))
	for i, l := range d.intervals {
		res[i] = float32(l)
	}
	return res
}

// Phase returns the offset into the pattern, normalised to [0, total).
func (d *StrokeDash) Phase() float32 {
	return float32(d.phase)
}

// Dash applies the dash pattern to the path and returns the "on" parts
// as open contours, in the order in which they occur in p. Curves are
// flattened first, with the tolerance chosen as for [Stroker.Stroke].
// If nothing remains, Dash returns nil.
func (p *Path) Dash(d *StrokeDash, resScale float32) *Path {
	var st Stroker
	st.setResScale(resScale)
	st.flattenPath(p.geom())
	st.applyDash(d)

	var verbs []Verb
	var points []Point
	for i := range st.dashedSegsOffsets {
		segs := subpath(st.dashedSegs, st.dashedSegsOffsets, i)
		verbs = append(verbs, MoveTo)
		points = append(points, pointFromVec(segs[0].A))
		for _, seg := range segs {
			verbs = append(verbs, LineTo)
			points = append(points, pointFromVec(seg.B))
		}
	}
	if len(verbs) == 0 {
		return nil
	}
	return newPath(verbs, points)
}

// applyDash splits the flattened subpaths into dashes.
// Results are stored in dashedSegs and dashedSegsOffsets.
//
// Each step of the main loop either consumes the rest of a segment or
// one dash interval, and the arc length position never decreases.
func (st *Stroker) applyDash(d *StrokeDash) {
	st.dashedSegs = st.dashedSegs[:0]
	st.dashedSegsOffsets = st.dashedSegsOffsets[:0]

	dash := d.intervals
	dashLen := len(dash)

	for spIdx := range st.segsOffsets {
		segments := subpath(st.segs, st.segsOffsets, spIdx)
		closed := st.subpathClosed[spIdx]

		contourLen := 0.0
		for _, seg := range segments {
			contourLen += seg.B.Sub(seg.A).Length()
		}
		count := contourLen / d.total * float64(dashLen)
		if count > maxDashCount {
			Logger().Warn("dash pattern too dense, contour not dashed",
				"length", contourLen, "pattern", d.total, "count", count)
			continue
		}
		budget := int(count) + 2*dashLen + len(segments) + 2

		// find the dash interval containing the phase
		dashIdx := 0
		dist := d.phase
		for dist > 0 && dist >= dash[dashIdx%dashLen] && budget > 0 {
			dist -= dash[dashIdx%dashLen]
			dashIdx++
			budget--
		}
		remaining := dash[dashIdx%dashLen] - dist
		isOn := dashIdx%2 == 0

		// a zero-length dash at the start becomes a dot
		if isOn && remaining == 0 {
			seg := segments[0]
			st.dashedSegsOffsets = append(st.dashedSegsOffsets, len(st.dashedSegs))
			st.dashedSegs = append(st.dashedSegs, strokeSegment{A: seg.A, B: seg.A, T: seg.T, N: seg.N})
			dashIdx++
			remaining = dash[dashIdx%dashLen]
			isOn = dashIdx%2 == 0
		}

		startedOn := isOn
		firstDashStart := -1  // index into dashedSegs
		firstDashOffset := -1 // index into dashedSegsOffsets

		dashStartIdx := len(st.dashedSegs)
		segIdx := 0
		segDist := 0.0 // distance along current segment

		for segIdx < len(segments) && budget > 0 {
			budget--
			seg := segments[segIdx]
			segLen := seg.B.Sub(seg.A).Length()
			segRemaining := segLen - segDist

			if remaining >= segRemaining {
				// the dash continues past this segment
				if isOn {
					if segDist > 0 {
						startPt := seg.A.Add(seg.B.Sub(seg.A).Mul(segDist / segLen))
						st.dashedSegs = append(st.dashedSegs, strokeSegment{
							A: startPt, B: seg.B,
							T: seg.T, N: seg.N,
						})
					} else {
						st.dashedSegs = append(st.dashedSegs, seg)
					}
				}
				remaining -= segRemaining
				segIdx++
				segDist = 0
				continue
			}

			// the dash ends within this segment
			endDist := segDist + remaining
			splitPt := seg.A.Add(seg.B.Sub(seg.A).Mul(endDist / segLen))

			if isOn {
				startPt := seg.A.Add(seg.B.Sub(seg.A).Mul(segDist / segLen))
				if splitPt.Sub(startPt).Length() > zeroLengthThreshold {
					st.dashedSegs = append(st.dashedSegs, strokeSegment{
						A: startPt, B: splitPt,
						T: seg.T, N: seg.N,
					})
				} else if len(st.dashedSegs) == dashStartIdx {
					// zero-length dash, oriented along the segment
					st.dashedSegs = append(st.dashedSegs, strokeSegment{
						A: startPt, B: startPt,
						T: seg.T, N: seg.N,
					})
				}

				if len(st.dashedSegs) > dashStartIdx {
					if firstDashStart < 0 {
						firstDashStart = dashStartIdx
						firstDashOffset = len(st.dashedSegsOffsets)
					}
					st.dashedSegsOffsets = append(st.dashedSegsOffsets, dashStartIdx)
					dashStartIdx = len(st.dashedSegs)
				}
			}

			segDist = endDist
			dashIdx++
			remaining = dash[dashIdx%dashLen]
			isOn = dashIdx%2 == 0
		}

		if len(st.dashedSegs) == dashStartIdx {
			continue
		}
		if !(closed && startedOn && isOn && firstDashStart >= 0) {
			st.dashedSegsOffsets = append(st.dashedSegsOffsets, dashStartIdx)
			continue
		}

		// On closed contours, a dash running through the start point is
		// joined with the first dash: the last dash is moved in front of
		// the first one.
		k := len(st.dashedSegs) - dashStartIdx
		last := slices.Clone(st.dashedSegs[dashStartIdx:])
		copy(st.dashedSegs[firstDashStart+k:], st.dashedSegs[firstDashStart:dashStartIdx])
		copy(st.dashedSegs[firstDashStart:], last)
		for j := firstDashOffset + 1; j < len(st.dashedSegsOffsets); j++ {
			st.dashedSegsOffsets[j] += k
		}
	}
}
