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


// Command export writes the test case definitions to a JSON file, so that
// reference images can be generated by other renderers.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/raster"
	"seehuhn.de/go/raster/testcases"
)

func main() {
	outFile := flag.String("o", "testdata/testcases.json", "output file name")
	flag.Parse()

	if err := run(*outFile); err != nil {
		fmt.Fprintln(os.Stderr, "export:", err)
		os.Exit(1)
	}
}

func run(fname string) (err error) {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, toJSON(category, tc))
		}
	}

	if err := os.MkdirAll(filepath.Dir(fname), 0755); err != nil {
		return err
	}
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

type jsonTestCase struct {
	Name       string        `json:"name"`
	Width      int           `json:"width"`
	Height     int           `json:"height"`
	Path       []jsonSegment `json:"path"`
	CTM        [6]float32    `json:"ctm"`
	Op         string        `json:"op"`
	FillRule   string        `json:"fill_rule,omitempty"`
	LineWidth  float32       `json:"line_width,omitempty"`
	LineCap    string        `json:"line_cap,omitempty"`
	LineJoin   string        `json:"line_join,omitempty"`
	MiterLimit float32       `json:"miter_limit,omitempty"`
	Dash       []float32     `json:"dash,omitempty"`
	DashPhase  float32       `json:"dash_phase,omitempty"`
}

type jsonSegment struct {
	Cmd string       `json:"cmd"`
	Pts [][2]float32 `json:"pts"`
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	ts := tc.Transform()
	jtc := jsonTestCase{
		Name:   category + "_" + tc.Name,
		Width:  tc.Width,
		Height: tc.Height,
		Path:   pathToJSON(tc.Path),
		CTM:    [6]float32{ts.SX, ts.KY, ts.KX, ts.SY, ts.TX, ts.TY},
	}

	switch op := tc.Op.(type) {
	case testcases.Fill:
		jtc.Op = "fill"
		if op.Rule == raster.EvenOdd {
			jtc.FillRule = "evenodd"
		} else {
			jtc.FillRule = "nonzero"
		}
	case testcases.Stroke:
		s := op.Style
		jtc.Op = "stroke"
		jtc.LineWidth = s.Width
		jtc.LineCap = capNames[s.LineCap]
		jtc.LineJoin = joinNames[s.LineJoin]
		jtc.MiterLimit = s.MiterLimit
		if s.Dash != nil {
			jtc.Dash = s.Dash.Intervals()
			jtc.DashPhase = s.Dash.Phase()
		}
	}
	return jtc
}

var capNames = map[raster.LineCap]string{
	raster.ButtCap:   "butt",
	raster.RoundCap:  "round",
	raster.SquareCap: "square",
}

var joinNames = map[raster.LineJoin]string{
	raster.MiterJoin:     "miter",
	raster.MiterClipJoin: "miter_clip",
	raster.RoundJoin:     "round",
	raster.BevelJoin:     "bevel",
}

var verbNames = map[raster.Verb]string{
	raster.MoveTo:  "M",
	raster.LineTo:  "L",
	raster.QuadTo:  "Q",
	raster.CubicTo: "C",
	raster.Close:   "Z",
}

func pathToJSON(p *raster.Path) []jsonSegment {
	var segs []jsonSegment
	for v, pts := range p.Segments() {
		seg := jsonSegment{
			Cmd: verbNames[v],
			Pts: make([][2]float32, len(pts)),
		}
		for i, pt := range pts {
			seg.Pts[i] = [2]float32{pt.X, pt.Y}
		}
		segs = append(segs, seg)
	}
	return segs
}
