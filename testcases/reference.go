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
	"strconv"

	"seehuhn.de/go/geom/path"
)

var referenceCases = []TestCase{
	Reference(64, 36, 2),
	Reference(384, 216, 2),
}

// Reference returns the benchmark scene for a width×height canvas: two
// diagonals, a line of slope 1/3 through the middle and a vertical line,
// black on grey. Padding keeps the first diagonal and the vertical line away
// from the canvas edge.
//
// The second diagonal runs from the top right to the bottom left and
// therefore contributes no coverage.
func Reference(width, height, padding int) TestCase {
	w := float64(width - 1)
	h := float64(height - 1)
	p := float64(padding)

	lines := (&path.Data{}).
		MoveTo(pt(p, p)).LineTo(pt(w-p, h-p)).
		MoveTo(pt(w, 0)).LineTo(pt(0, h)).
		MoveTo(pt(0, float64(height/3))).LineTo(pt(w, float64(height*2/3))).
		MoveTo(pt(float64(width/2), p)).LineTo(pt(float64(width/2), h-p))

	return TestCase{
		Name:       "lines_" + strconv.Itoa(width) + "x" + strconv.Itoa(height),
		Path:       lines,
		Width:      width,
		Height:     height,
		Color:      black,
		Background: grey,
	}
}
