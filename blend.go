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

import "seehuhn.de/go/raster/internal/pipeline"

// BlendMode selects how the paint is combined with the existing pixels.
// The zero value is BlendSourceOver.
//
// The Porter-Duff modes are followed by the separable blend modes and
// then by the non-separable modes BlendHue, BlendSaturation, BlendColor
// and BlendLuminosity.
type BlendMode uint8

const (
	BlendSourceOver      BlendMode = BlendMode(pipeline.SourceOver)
	BlendClear           BlendMode = BlendMode(pipeline.Clear)
	BlendSource          BlendMode = BlendMode(pipeline.Source)
	BlendDestination     BlendMode = BlendMode(pipeline.Destination)
	BlendDestinationOver BlendMode = BlendMode(pipeline.DestinationOver)
	BlendSourceIn        BlendMode = BlendMode(pipeline.SourceIn)
	BlendDestinationIn   BlendMode = BlendMode(pipeline.DestinationIn)
	BlendSourceOut       BlendMode = BlendMode(pipeline.SourceOut)
	BlendDestinationOut  BlendMode = BlendMode(pipeline.DestinationOut)
	BlendSourceAtop      BlendMode = BlendMode(pipeline.SourceAtop)
	BlendDestinationAtop BlendMode = BlendMode(pipeline.DestinationAtop)
	BlendXor             BlendMode = BlendMode(pipeline.Xor)
	BlendPlus            BlendMode = BlendMode(pipeline.Plus)
	BlendModulate        BlendMode = BlendMode(pipeline.Modulate)
	BlendScreen          BlendMode = BlendMode(pipeline.Screen)
	BlendOverlay         BlendMode = BlendMode(pipeline.Overlay)
	BlendDarken          BlendMode = BlendMode(pipeline.Darken)
	BlendLighten         BlendMode = BlendMode(pipeline.Lighten)
	BlendColorDodge      BlendMode = BlendMode(pipeline.ColorDodge)
	BlendColorBurn       BlendMode = BlendMode(pipeline.ColorBurn)
	BlendHardLight       BlendMode = BlendMode(pipeline.HardLight)
	BlendSoftLight       BlendMode = BlendMode(pipeline.SoftLight)
	BlendDifference      BlendMode = BlendMode(pipeline.Difference)
	BlendExclusion       BlendMode = BlendMode(pipeline.Exclusion)
	BlendMultiply        BlendMode = BlendMode(pipeline.Multiply)
	BlendHue             BlendMode = BlendMode(pipeline.Hue)
	BlendSaturation      BlendMode = BlendMode(pipeline.Saturation)
	BlendColor           BlendMode = BlendMode(pipeline.Color)
	BlendLuminosity      BlendMode = BlendMode(pipeline.Luminosity)
)

// NumBlendModes is the number of blend modes.
const NumBlendModes = pipeline.NumBlendModes

func (m BlendMode) String() string {
	return pipeline.BlendMode(m).String()
}

func (m BlendMode) pipelineMode() pipeline.BlendMode {
	return pipeline.BlendMode(m)
}
