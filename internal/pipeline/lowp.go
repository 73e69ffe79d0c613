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

// lowpLanes is the number of pixels processed together by the fixed-point
// backend.
const lowpLanes = 16

// lowp holds the channels of one chunk as 8-bit values in uint16 lanes.
// Intermediate products are formed in int32.
type lowp struct {
	r, g, b, a     [lowpLanes]uint16
	dr, dg, db, da [lowpLanes]uint16

	// float scratch space for shading
	fr, fg, fb, fa [lowpLanes]float32
}

// lowpFn blends one channel on the 0..255 scale.
type lowpFn func(s, d, sa, da int32) int32

var lowpPorterDuff = [numBlendModes]lowpFn{
	Clear:       func(s, d, sa, da int32) int32 { return 0 },
	Source:      func(s, d, sa, da int32) int32 { return s },
	Destination: func(s, d, sa, da int32) int32 { return d },
	SourceOver: func(s, d, sa, da int32) int32 {
		return s + div255(d*inv(sa))
	},
	DestinationOver: func(s, d, sa, da int32) int32 {
		return d + div255(s*inv(da))
	},
	SourceIn:       func(s, d, sa, da int32) int32 { return div255(s * da) },
	DestinationIn:  func(s, d, sa, da int32) int32 { return div255(d * sa) },
	SourceOut:      func(s, d, sa, da int32) int32 { return div255(s * inv(da)) },
	DestinationOut: func(s, d, sa, da int32) int32 { return div255(d * inv(sa)) },
	SourceAtop: func(s, d, sa, da int32) int32 {
		return div255(s*da + d*inv(sa))
	},
	DestinationAtop: func(s, d, sa, da int32) int32 {
		return div255(d*sa + s*inv(da))
	},
	Xor: func(s, d, sa, da int32) int32 {
		return div255(s*inv(da) + d*inv(sa))
	},
	Plus:     func(s, d, sa, da int32) int32 { return min(s+d, 255) },
	Modulate: func(s, d, sa, da int32) int32 { return div255(s * d) },
	Screen:   func(s, d, sa, da int32) int32 { return s + d - div255(s*d) },
	Multiply: func(s, d, sa, da int32) int32 {
		return div255(s*inv(da) + d*inv(sa) + s*d)
	},
}

var lowpSeparable = [numBlendModes]lowpFn{
	Darken: func(s, d, sa, da int32) int32 {
		return s + d - div255(max(s*da, d*sa))
	},
	Lighten: func(s, d, sa, da int32) int32 {
		return s + d - div255(min(s*da, d*sa))
	},
	Difference: func(s, d, sa, da int32) int32 {
		return s + d - 2*div255(min(s*da, d*sa))
	},
	Exclusion: func(s, d, sa, da int32) int32 {
		return s + d - 2*div255(s*d)
	},
	HardLight: func(s, d, sa, da int32) int32 {
		v := s*inv(da) + d*inv(sa)
		if 2*s <= sa {
			return div255(v + 2*s*d)
		}
		return div255(v + sa*da - 2*(sa-s)*(da-d))
	},
	Overlay: func(s, d, sa, da int32) int32 {
		v := s*inv(da) + d*inv(sa)
		if 2*d <= da {
			return div255(v + 2*s*d)
		}
		return div255(v + sa*da - 2*(sa-s)*(da-d))
	},
}

// lowpSupports reports whether the fixed-point backend can execute the
// given combination.
func lowpSupports(src ColorSource, mode BlendMode, opacity float32) bool {
	if opacity != 1 || mode >= numBlendModes {
		return false
	}
	switch src.(type) {
	case Solid, *Gradient:
	default:
		return false
	}
	return lowpPorterDuff[mode] != nil || lowpSeparable[mode] != nil
}

// run composites the pixels in px, which start at (x, y).
// px holds at most lowpLanes pixels.
func (l *lowp) run(p *Pipeline, px []uint8, x, y int, coverage, mask []uint8) {
	n := len(px) / 4

	p.src.shade(x, y, l.fr[:n], l.fg[:n], l.fb[:n], l.fa[:n])
	for i := range n {
		l.r[i] = fromFloat(l.fr[i])
		l.g[i] = fromFloat(l.fg[i])
		l.b[i] = fromFloat(l.fb[i])
		l.a[i] = fromFloat(l.fa[i])
		l.dr[i] = uint16(px[4*i])
		l.dg[i] = uint16(px[4*i+1])
		l.db[i] = uint16(px[4*i+2])
		l.da[i] = uint16(px[4*i+3])
	}

	if f := lowpPorterDuff[p.mode]; f != nil {
		for i := range n {
			sa, da := int32(l.a[i]), int32(l.da[i])
			l.r[i] = clamp255(f(int32(l.r[i]), int32(l.dr[i]), sa, da))
			l.g[i] = clamp255(f(int32(l.g[i]), int32(l.dg[i]), sa, da))
			l.b[i] = clamp255(f(int32(l.b[i]), int32(l.db[i]), sa, da))
			l.a[i] = clamp255(f(sa, da, sa, da))
		}
	} else {
		f := lowpSeparable[p.mode]
		for i := range n {
			sa, da := int32(l.a[i]), int32(l.da[i])
			l.r[i] = clamp255(f(int32(l.r[i]), int32(l.dr[i]), sa, da))
			l.g[i] = clamp255(f(int32(l.g[i]), int32(l.dg[i]), sa, da))
			l.b[i] = clamp255(f(int32(l.b[i]), int32(l.db[i]), sa, da))
			l.a[i] = clamp255(sa + div255(da*inv(sa)))
		}
	}

	for i := range n {
		c := int32(255)
		if coverage != nil {
			c = int32(coverage[i])
		}
		if mask != nil {
			c = div255(c * int32(mask[i]))
		}
		px[4*i] = uint8(lerp(l.dr[i], l.r[i], c))
		px[4*i+1] = uint8(lerp(l.dg[i], l.g[i], c))
		px[4*i+2] = uint8(lerp(l.db[i], l.b[i], c))
		px[4*i+3] = uint8(lerp(l.da[i], l.a[i], c))
	}
}

// div255 approximates v/255 for v in [0, 255*255].
func div255(v int32) int32 {
	return (v + 255) >> 8
}

func inv(v int32) int32 {
	return 255 - v
}

// lerp interpolates from f to t by c/255.
func lerp(f, t uint16, c int32) int32 {
	return div255(int32(f)*inv(c) + int32(t)*c)
}

// fromFloat converts a channel value in [0, 1] to the 0..255 scale.
func fromFloat(v float32) uint16 {
	return uint16(toU8(v))
}

func clamp255(v int32) uint16 {
	return uint16(min(max(v, 0), 255))
}
