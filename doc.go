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

// Package raster implements a CPU-only 2D vector rasterizer.
//
// Paths are built with a [PathBuilder] and are immutable afterwards.
// A path can be filled, or stroked using a [Stroke] style, optionally
// after dashing with a [StrokeDash]. Drawing happens on a [Pixmap],
// which holds premultiplied RGBA8 pixels:
//
//	pb := &raster.PathBuilder{}
//	pb.PushCircle(50, 50, 40)
//	p, err := pb.Finish()
//	if err != nil {
//		return err
//	}
//	pm, err := raster.NewPixmap(100, 100)
//	if err != nil {
//		return err
//	}
//	paint := raster.DefaultPaint()
//	paint.Shader = raster.SolidColor{Color: raster.ColorFromRGBA8(200, 0, 0, 255)}
//	pm.FillPath(p, paint, raster.NonZero, raster.Identity(), nil)
//
// Constructors validate their arguments and return errors which can be
// tested with [errors.Is] against the Err* values of this package.
// Draw calls never return errors. Invalid input to a draw call draws
// nothing, and the reason is reported through the logger set with
// [SetLogger].
//
// Distinct pixmaps can be drawn into concurrently. Draw calls on the
// same pixmap must be serialized by the caller.
package raster

//go:generate go run ./testcases/export -o testdata/testcases.json
