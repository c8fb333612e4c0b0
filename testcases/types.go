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

// Package testcases provides work lists for the line renderer: the
// reference scene of the benchmark, and small scenes with known results.
package testcases

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/aaline"
)

// TestCase defines a single rendering scene.
type TestCase struct {
	Name       string        // lowercase a-z, 0-9 and _ only
	Path       *path.Data    // the lines to render, straight segments only
	Width      int           // canvas width in pixels
	Height     int           // canvas height in pixels
	CTM        matrix.Matrix // transformation matrix (zero-value means no transform)
	Color      aaline.Pixel  // line colour
	Background aaline.Pixel  // canvas colour before drawing
}

// Lines returns the work list of the test case in device coordinates.
func (tc TestCase) Lines() ([]aaline.Line, error) {
	clip := rect.Rect{URx: float64(tc.Width), URy: float64(tc.Height)}
	return aaline.LinesFromPath(tc.Path, tc.CTM, clip)
}

// Canvas allocates the image for the test case, filled with the background
// colour.
func (tc TestCase) Canvas() (*aaline.Image, error) {
	img, err := aaline.NewImage(tc.Width, tc.Height)
	if err != nil {
		return nil, err
	}
	img.Fill(tc.Background)
	return img, nil
}

var (
	black = aaline.Pixel{A: 255}
	grey  = aaline.Pixel{R: 100, G: 100, B: 100, A: 255}
)

// segment builds a path consisting of a single line.
func segment(x0, y0, x1, y1 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x0, y0)).
		LineTo(pt(x1, y1))
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}
