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
	"image/color"
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewColor(t *testing.T) {
	c, err := NewColor(1, 0.5, 0, 0.25)
	require.NoError(t, err)
	assert.Equal(t, float32(0.5), c.G())
	assert.False(t, c.IsOpaque())
	assert.True(t, c.WithAlpha(3).IsOpaque())
	assert.Equal(t, float32(0), c.WithAlpha(math32.NaN()).A())

	for _, v := range []float32{-0.1, 1.1, math32.NaN()} {
		_, err := NewColor(v, 0, 0, 1)
		assert.ErrorIs(t, err, ErrInvalidColor, v)
		_, err = NewColor(0, 0, 0, v)
		assert.ErrorIs(t, err, ErrInvalidColor, v)
	}
}

func TestColorConversions(t *testing.T) {
	c := ColorFromRGBA8(255, 0, 0, 128)
	assert.Equal(t, ColorU8{255, 0, 0, 128}, c.ToColorU8())
	assert.Equal(t, PremultipliedColorU8{128, 0, 0, 128}, c.Premultiply().ToColorU8())

	p := ColorU8{200, 100, 50, 128}.Premultiply()
	assert.Equal(t, PremultipliedColorU8{100, 50, 25, 128}, p)
	back := p.Demultiply()
	assert.InDelta(t, 200, back.R, 1)
	assert.InDelta(t, 100, back.G, 1)
	assert.InDelta(t, 50, back.B, 1)

	assert.Equal(t, PremultipliedColorU8{1, 2, 3, 255}, ColorU8{1, 2, 3, 255}.Premultiply())
	assert.Equal(t, ColorU8{}, PremultipliedColorU8{}.Demultiply())

	// PremultipliedColorU8 can be used wherever a color.Color is expected
	var cc color.Color = PremultipliedColorU8{128, 0, 0, 128}
	r, _, _, a := cc.RGBA()
	assert.Equal(t, uint32(0x8080), r)
	assert.Equal(t, uint32(0x8080), a)
}

func TestBlendModeString(t *testing.T) {
	assert.Equal(t, "SourceOver", BlendSourceOver.String())
	assert.Equal(t, "Luminosity", BlendLuminosity.String())
	assert.Equal(t, NumBlendModes, int(BlendLuminosity)+1)
}

var redToBlue = []GradientStop{
	{Position: 0, Color: ColorFromRGBA8(255, 0, 0, 255)},
	{Position: 1, Color: ColorFromRGBA8(0, 0, 255, 255)},
}

func TestGradientStopErrors(t *testing.T) {
	red := ColorFromRGBA8(255, 0, 0, 255)
	cases := []struct {
		stops []GradientStop
		err   error
	}{
		{nil, ErrTooFewStops},
		{redToBlue[:1], ErrTooFewStops},
		{[]GradientStop{{0, red}, {1.5, Black}}, ErrInvalidStopPosition},
		{[]GradientStop{{math32.NaN(), red}, {1, Black}}, ErrInvalidStopPosition},
		{[]GradientStop{{0.6, red}, {0.4, Black}}, ErrUnsortedStops},
		{[]GradientStop{{0, red}, {1, red}}, ErrSingleColorGradient},
	}
	for _, c := range cases {
		_, err := NewLinearGradient(Point{0, 0}, Point{1, 0}, c.stops, Pad, Identity())
		assert.ErrorIs(t, err, c.err)
		_, err = NewRadialGradient(Point{0, 0}, 0, Point{0, 0}, 1, c.stops, Pad, Identity())
		assert.ErrorIs(t, err, c.err)
	}

	// equal positions are allowed
	_, err := NewLinearGradient(Point{0, 0}, Point{1, 0},
		[]GradientStop{{0, red}, {0.5, red}, {0.5, Black}, {1, Black}}, Pad, Identity())
	assert.NoError(t, err)
}

func TestGradientGeometryErrors(t *testing.T) {
	_, err := NewLinearGradient(Point{1, 1}, Point{1, 1}, redToBlue, Pad, Identity())
	assert.ErrorIs(t, err, ErrDegenerateGradient)
	_, err = NewLinearGradient(Point{0, 0}, Point{1, 0}, redToBlue, Pad, Scale(0, 1))
	assert.ErrorIs(t, err, ErrNonInvertibleTransform)

	_, err = NewRadialGradient(Point{0, 0}, -1, Point{0, 0}, 1, redToBlue, Pad, Identity())
	assert.ErrorIs(t, err, ErrInvalidRadius)
	_, err = NewRadialGradient(Point{0, 0}, 0, Point{1, 0}, 0, redToBlue, Pad, Identity())
	assert.ErrorIs(t, err, ErrInvalidRadius)
	_, err = NewRadialGradient(Point{0, 0}, 2, Point{0, 0}, 2, redToBlue, Pad, Identity())
	assert.ErrorIs(t, err, ErrDegenerateGradient)
	_, err = NewRadialGradient(Point{0, 0}, 0, Point{0, 0}, 2, redToBlue, Pad, Scale(1, 0))
	assert.ErrorIs(t, err, ErrNonInvertibleTransform)

	// two-point conical gradients
	_, err = NewRadialGradient(Point{0, 0}, 2, Point{5, 0}, 2, redToBlue, Reflect, Identity())
	assert.NoError(t, err)
}

func TestShaderSourceNeedsInvertibleTransform(t *testing.T) {
	g, err := NewLinearGradient(Point{0, 0}, Point{1, 0}, redToBlue, Repeat, Identity())
	require.NoError(t, err)
	_, _, err = g.source(Scale(0, 0))
	assert.ErrorIs(t, err, ErrNonInvertibleTransform)

	_, opacity, err := g.source(Rotate(30))
	assert.NoError(t, err)
	assert.Equal(t, float32(1), opacity)
}

func TestNewPattern(t *testing.T) {
	pm, err := NewPixmap(2, 2)
	require.NoError(t, err)

	_, err = NewPattern(nil, Pad, Nearest, 1, Identity())
	assert.ErrorIs(t, err, ErrInvalidSize)
	for _, o := range []float32{-0.5, 1.5, math32.NaN()} {
		_, err = NewPattern(pm, Pad, Nearest, o, Identity())
		assert.ErrorIs(t, err, ErrInvalidOpacity, o)
	}
	_, err = NewPattern(pm, Pad, Nearest, 1, Scale(0, 1))
	assert.ErrorIs(t, err, ErrNonInvertibleTransform)

	pt, err := NewPattern(pm, Repeat, Bicubic, 0.5, Translate(3, 3))
	require.NoError(t, err)
	_, opacity, err := pt.source(Identity())
	require.NoError(t, err)
	assert.Equal(t, float32(0.5), opacity)
}
