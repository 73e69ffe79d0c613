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
	"seehuhn.de/go/raster/internal/pipeline"
	"seehuhn.de/go/raster/internal/scan"
)

// FillRule selects which points are inside a path.
type FillRule uint8

const (
	// NonZero counts a point as inside if the winding number of the path
	// around the point is not zero.
	NonZero FillRule = iota

	// EvenOdd counts a point as inside if the winding number is odd.
	EvenOdd
)

func (r FillRule) scan() scan.FillRule {
	if r == EvenOdd {
		return scan.EvenOdd
	}
	return scan.NonZero
}

// Precision selects the numeric backend used for compositing.
type Precision uint8

const (
	// PrecisionAuto uses 8-bit fixed-point arithmetic where this is
	// supported, and floating point arithmetic otherwise.
	PrecisionAuto Precision = iota

	// PrecisionHigh always uses floating point arithmetic.
	PrecisionHigh

	// PrecisionLow uses fixed-point arithmetic whenever possible.
	PrecisionLow
)

func (p Precision) config() pipeline.Config {
	cfg := pipeline.Config{Logger: Logger()}
	switch p {
	case PrecisionHigh:
		cfg.Precision = pipeline.PrecisionHigh
	case PrecisionLow:
		cfg.Precision = pipeline.PrecisionLow
	default:
		cfg.Precision = pipeline.PrecisionAuto
	}
	return cfg
}

// Paint describes how shapes are painted.
type Paint struct {
	// Shader is the color source. A nil shader paints opaque black.
	Shader Shader

	BlendMode BlendMode
	AntiAlias bool
	Precision Precision
}

// DefaultPaint returns an anti-aliased opaque black paint with the
// BlendSourceOver blend mode.
func DefaultPaint() *Paint {
	return &Paint{
		Shader:    SolidColor{Color: Black},
		BlendMode: BlendSourceOver,
		AntiAlias: true,
	}
}

// SetColor sets the shader to a solid color.
func (p *Paint) SetColor(c Color) {
	p.Shader = SolidColor{Color: c}
}

// PixmapPaint describes how a pixmap is drawn onto another.
type PixmapPaint struct {
	// Opacity is in the range [0, 1].
	Opacity   float32
	BlendMode BlendMode
	Quality   FilterQuality
}

// DefaultPixmapPaint returns a fully opaque paint using nearest
// neighbour sampling and the BlendSourceOver blend mode.
func DefaultPixmapPaint() *PixmapPaint {
	return &PixmapPaint{Opacity: 1, BlendMode: BlendSourceOver, Quality: Nearest}
}
