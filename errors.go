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

import "errors"

// Geometry errors.
var (
	ErrInvalidSize            = errors.New("invalid size")
	ErrInvalidRect            = errors.New("invalid rectangle")
	ErrNonInvertibleTransform = errors.New("transform is not invertible")
	ErrInvalidRadius          = errors.New("invalid radius")
)

// Path errors.
var (
	ErrEmptyPath      = errors.New("empty path")
	ErrNonFinitePoint = errors.New("non-finite point in path")
)

// Stroke and dash errors.
var (
	ErrInvalidStrokeWidth  = errors.New("invalid stroke width")
	ErrInvalidMiterLimit   = errors.New("invalid miter limit")
	ErrEmptyDash           = errors.New("empty dash pattern")
	ErrInvalidDashInterval = errors.New("invalid dash interval")
	ErrZeroDash            = errors.New("dash pattern has zero length")
)

// Color and shader errors.
var (
	ErrInvalidColor        = errors.New("invalid color")
	ErrTooFewStops         = errors.New("gradient needs at least two stops")
	ErrInvalidStopPosition = errors.New("invalid gradient stop position")
	ErrUnsortedStops       = errors.New("gradient stops are not sorted")
	ErrSingleColorGradient = errors.New("gradient stops have only one color")
	ErrDegenerateGradient  = errors.New("degenerate gradient geometry")
	ErrInvalidOpacity      = errors.New("invalid opacity")
)
