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

import (
	"strconv"

	"github.com/chewxy/math32"
)

// BlendMode selects how source and destination colors are combined.
// All modes operate on premultiplied colors.
type BlendMode uint8

// The zero value is SourceOver.
const (
	SourceOver BlendMode = iota
	Clear
	Source
	Destination
	DestinationOver
	SourceIn
	DestinationIn
	SourceOut
	DestinationOut
	SourceAtop
	DestinationAtop
	Xor
	Plus
	Modulate
	Screen
	Overlay
	Darken
	Lighten
	ColorDodge
	ColorBurn
	HardLight
	SoftLight
	Difference
	Exclusion
	Multiply
	Hue
	Saturation
	Color
	Luminosity

	numBlendModes
)

var blendModeNames = [numBlendModes]string{
	SourceOver:      "SourceOver",
	Clear:           "Clear",
	Source:          "Source",
	Destination:     "Destination",
	DestinationOver: "DestinationOver",
	SourceIn:        "SourceIn",
	DestinationIn:   "DestinationIn",
	SourceOut:       "SourceOut",
	DestinationOut:  "DestinationOut",
	SourceAtop:      "SourceAtop",
	DestinationAtop: "DestinationAtop",
	Xor:             "Xor",
	Plus:            "Plus",
	Modulate:        "Modulate",
	Screen:          "Screen",
	Overlay:         "Overlay",
	Darken:          "Darken",
	Lighten:         "Lighten",
	ColorDodge:      "ColorDodge",
	ColorBurn:       "ColorBurn",
	HardLight:       "HardLight",
	SoftLight:       "SoftLight",
	Difference:      "Difference",
	Exclusion:       "Exclusion",
	Multiply:        "Multiply",
	Hue:             "Hue",
	Saturation:      "Saturation",
	Color:           "Color",
	Luminosity:      "Luminosity",
}

func (m BlendMode) String() string {
	if m < numBlendModes {
		return blendModeNames[m]
	}
	return "BlendMode(" + strconv.Itoa(int(m)) + ")"
}

// NumBlendModes is the number of defined blend modes.
const NumBlendModes = int(numBlendModes)

// channelFn blends one premultiplied channel value s of the source with
// the corresponding destination value d. sa and da are the alphas.
type channelFn func(s, d, sa, da float32) float32

// porterDuff holds the modes where the same formula is applied to the
// color channels and to alpha.
var porterDuff = [numBlendModes]channelFn{
	Clear:       func(s, d, sa, da float32) float32 { return 0 },
	Source:      func(s, d, sa, da float32) float32 { return s },
	Destination: func(s, d, sa, da float32) float32 { return d },
	SourceOver: func(s, d, sa, da float32) float32 {
		return s + d*(1-sa)
	},
	DestinationOver: func(s, d, sa, da float32) float32 {
		return d + s*(1-da)
	},
	SourceIn:       func(s, d, sa, da float32) float32 { return s * da },
	DestinationIn:  func(s, d, sa, da float32) float32 { return d * sa },
	SourceOut:      func(s, d, sa, da float32) float32 { return s * (1 - da) },
	DestinationOut: func(s, d, sa, da float32) float32 { return d * (1 - sa) },
	SourceAtop: func(s, d, sa, da float32) float32 {
		return s*da + d*(1-sa)
	},
	DestinationAtop: func(s, d, sa, da float32) float32 {
		return d*sa + s*(1-da)
	},
	Xor: func(s, d, sa, da float32) float32 {
		return s*(1-da) + d*(1-sa)
	},
	Plus:     func(s, d, sa, da float32) float32 { return min(s+d, 1) },
	Modulate: func(s, d, sa, da float32) float32 { return s * d },
	Screen:   func(s, d, sa, da float32) float32 { return s + d - s*d },
	Multiply: func(s, d, sa, da float32) float32 {
		return s*(1-da) + d*(1-sa) + s*d
	},
}

// separable holds the modes where the formula is applied to the color
// channels only. Alpha is combined as in SourceOver.
var separable = [numBlendModes]channelFn{
	Darken: func(s, d, sa, da float32) float32 {
		return s + d - max(s*da, d*sa)
	},
	Lighten: func(s, d, sa, da float32) float32 {
		return s + d - min(s*da, d*sa)
	},
	Difference: func(s, d, sa, da float32) float32 {
		return s + d - 2*min(s*da, d*sa)
	},
	Exclusion: func(s, d, sa, da float32) float32 {
		return s + d - 2*s*d
	},
	ColorBurn: func(s, d, sa, da float32) float32 {
		switch {
		case d == da:
			return d + s*(1-da)
		case s == 0:
			return d * (1 - sa)
		default:
			return sa*(da-min(da, (da-d)*sa/s)) + s*(1-da) + d*(1-sa)
		}
	},
	ColorDodge: func(s, d, sa, da float32) float32 {
		switch {
		case d == 0:
			return s * (1 - da)
		case s >= sa:
			return s + d*(1-sa)
		default:
			return sa*min(da, d*sa/(sa-s)) + s*(1-da) + d*(1-sa)
		}
	},
	HardLight: func(s, d, sa, da float32) float32 {
		v := s*(1-da) + d*(1-sa)
		if 2*s <= sa {
			return v + 2*s*d
		}
		return v + sa*da - 2*(da-d)*(sa-s)
	},
	Overlay: func(s, d, sa, da float32) float32 {
		v := s*(1-da) + d*(1-sa)
		if 2*d <= da {
			return v + 2*s*d
		}
		return v + sa*da - 2*(da-d)*(sa-s)
	},
	SoftLight: func(s, d, sa, da float32) float32 {
		var m float32
		if da > 0 {
			m = d / da
		}
		s2 := 2 * s
		m4 := 4 * m

		darkSrc := d * (sa + (s2-sa)*(1-m))
		darkDst := (m4*m4+m4)*(m-1) + 7*m
		liteDst := math32.Sqrt(m) - m
		lite := liteDst
		if 4*d <= da {
			lite = darkDst
		}
		liteSrc := d*sa + da*(s2-sa)*lite

		v := s*(1-da) + d*(1-sa)
		if s2 <= sa {
			return v + darkSrc
		}
		return v + liteSrc
	},
}

// blendPixel blends the premultiplied source color (r, g, b, a) with the
// premultiplied destination color (dr, dg, db, da).
func blendPixel(mode BlendMode, r, g, b, a, dr, dg, db, da float32) (float32, float32, float32, float32) {
	if mode >= numBlendModes {
		mode = SourceOver
	}
	if f := porterDuff[mode]; f != nil {
		return f(r, dr, a, da), f(g, dg, a, da), f(b, db, a, da), f(a, da, a, da)
	}
	if f := separable[mode]; f != nil {
		return f(r, dr, a, da), f(g, dg, a, da), f(b, db, a, da), a + da*(1-a)
	}

	// non-separable modes
	var rr, gg, bb float32
	switch mode {
	case Hue:
		rr, gg, bb = r*a, g*a, b*a
		rr, gg, bb = setSat(rr, gg, bb, sat(dr, dg, db)*a)
		rr, gg, bb = setLum(rr, gg, bb, lum(dr, dg, db)*a)
	case Saturation:
		rr, gg, bb = dr*a, dg*a, db*a
		rr, gg, bb = setSat(rr, gg, bb, sat(r, g, b)*da)
		rr, gg, bb = setLum(rr, gg, bb, lum(dr, dg, db)*a)
	case Color:
		rr, gg, bb = r*da, g*da, b*da
		rr, gg, bb = setLum(rr, gg, bb, lum(dr, dg, db)*a)
	case Luminosity:
		rr, gg, bb = dr*a, dg*a, db*a
		rr, gg, bb = setLum(rr, gg, bb, lum(r, g, b)*da)
	}
	rr, gg, bb = clipColor(rr, gg, bb, a*da)

	return r*(1-da) + dr*(1-a) + rr,
		g*(1-da) + dg*(1-a) + gg,
		b*(1-da) + db*(1-a) + bb,
		a + da - a*da
}

// sat returns the saturation max - min of a color.
func sat(r, g, b float32) float32 {
	return max(r, g, b) - min(r, g, b)
}

// lum returns the luminosity of a color.
func lum(r, g, b float32) float32 {
	return 0.30*r + 0.59*g + 0.11*b
}

// setSat maps the smallest channel to 0 and the largest to s, scaling the
// middle channel proportionally.
func setSat(r, g, b, s float32) (float32, float32, float32) {
	mn := min(r, g, b)
	mx := max(r, g, b)
	d := mx - mn
	if d == 0 {
		return 0, 0, 0
	}
	scale := func(c float32) float32 { return (c - mn) * s / d }
	return scale(r), scale(g), scale(b)
}

// setLum shifts all channels so that the luminosity becomes l.
func setLum(r, g, b, l float32) (float32, float32, float32) {
	diff := l - lum(r, g, b)
	return r + diff, g + diff, b + diff
}

// clipColor moves the channels towards the luminosity until they lie in
// [0, a].
func clipColor(r, g, b, a float32) (float32, float32, float32) {
	mn := min(r, g, b)
	mx := max(r, g, b)
	l := lum(r, g, b)

	clip := func(c float32) float32 {
		if mn < 0 && l != mn {
			c = l + (c-l)*l/(l-mn)
		}
		if mx > a && mx != l {
			c = l + (c-l)*(a-l)/(mx-l)
		}
		return max(c, 0)
	}
	return clip(r), clip(g), clip(b)
}
