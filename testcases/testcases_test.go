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


package testcases

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var validName = regexp.MustCompile(`^[a-z0-9_]+$`)

func TestCasesAreValid(t *testing.T) {
	seen := make(map[string]bool)
	for category, cases := range All {
		require.NotEmpty(t, cases, category)
		for _, tc := range cases {
			name := category + "_" + tc.Name
			assert.Regexp(t, validName, tc.Name, name)
			assert.False(t, seen[name], "duplicate name %s", name)
			seen[name] = true

			assert.NotNil(t, tc.Path, name)
			assert.Positive(t, tc.Width, name)
			assert.Positive(t, tc.Height, name)
			assert.True(t, tc.Transform().IsInvertible(), name)

			switch op := tc.Op.(type) {
			case Fill:
			case Stroke:
				assert.NoError(t, op.Style.Validate(), name)
			default:
				t.Errorf("%s: unexpected operation %T", name, tc.Op)
			}
		}
	}
}

func TestCoverageFixtures(t *testing.T) {
	names := make(map[string]bool)
	for category, cases := range All {
		for _, tc := range cases {
			names[category+"_"+tc.Name] = true
		}
	}

	// subpixel positioning, coordinate range, self-overlap and the
	// active edge list strategy each need their own fixtures
	for _, name := range []string{
		"precision_subpixel_offset_25",
		"precision_thin_line_y_half",
		"precision_small_shape_large_offset",
		"complex_figure_eight",
		"complex_spiral_overlap",
		"complex_glyph_like",
		"large_grid",
		"large_clipped",
		"fill_multiple_rings",
	} {
		assert.True(t, names[name], name)
	}
}
