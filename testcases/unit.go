// seehuhn.de/go/aaline - anti-aliased line rendering
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
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
)

// Unit cases are authored in the unit square and scaled to an 11x11 canvas,
// so that all endpoints land on integer pixel positions.
var unitScale = matrix.Scale(10, 10)

var unitCases = []TestCase{
	{
		Name:   "diagonal",
		Path:   segment(0, 0, 1, 1),
		Width:  11,
		Height: 11,
		CTM:    unitScale,
		Color:  black,
	},
	{
		Name:   "horizontal",
		Path:   segment(0, 0.5, 1, 0.5),
		Width:  11,
		Height: 11,
		CTM:    unitScale,
		Color:  black,
	},
	{
		Name:   "vertical",
		Path:   segment(0.5, 0, 0.5, 1),
		Width:  11,
		Height: 11,
		CTM:    unitScale,
		Color:  black,
	},
	{
		Name:   "shallow",
		Path:   segment(0, 0, 1, 0.3),
		Width:  11,
		Height: 11,
		CTM:    unitScale,
		Color:  black,
	},
	{
		Name:   "steep",
		Path:   segment(0, 0, 0.3, 1),
		Width:  11,
		Height: 11,
		CTM:    unitScale,
		Color:  black,
	},
	{
		// Coverage is measured from the start point, so a line drawn
		// right to left stays invisible.
		Name:   "reversed",
		Path:   segment(1, 0, 0, 1),
		Width:  11,
		Height: 11,
		CTM:    unitScale,
		Color:  black,
	},
	{
		Name:   "point",
		Path:   segment(0.5, 0.5, 0.5, 0.5),
		Width:  11,
		Height: 11,
		CTM:    unitScale,
		Color:  black,
	},
	{
		Name:       "triangle",
		Path:       triangle(0.1, 0.1, 0.9, 0.1, 0.5, 0.9),
		Width:      11,
		Height:     11,
		CTM:        unitScale,
		Color:      black,
		Background: grey,
	},
}

// triangle builds a closed triangular path.
func triangle(x1, y1, x2, y2, x3, y3 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		LineTo(pt(x2, y2)).
		LineTo(pt(x3, y3)).
		Close()
}
