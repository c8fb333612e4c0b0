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

package aaline

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Coverage returns the opacity, from 0 to 255, with which l covers the
// pixel (x, y).
//
// The vertical distance between the pixel and the ideal line is measured at
// the pixel's column, relative to l.Start. Pixels at distance 1 or more, and
// pixels whose column lies before Start or more than |dx| columns after it,
// get 0. For vertical lines the distance is undefined and taken to be 0.
//
// Callers must pass the line as given, not the endpoint-swapped copy used
// for traversal: swapping Start and End changes the result.
func Coverage(l Line, x, y int) uint8 {
	dx, dy := l.Delta()
	px := x - int(l.Start.X)
	py := y - int(l.Start.Y)

	ideal := float64(dy) / float64(dx) * float64(px)
	dev := abs(ideal - float64(py))
	if math.IsNaN(dev) {
		dev = 0
	}
	if dev >= 1 || px < 0 || px > abs(dx) {
		return 0
	}
	return uint8(math.Round(255 * (1 - dev)))
}

// CoverageAll returns the combined opacity of all lines at (x, y). The
// individual coverages are accumulated with [BlendAlpha].
func CoverageAll(lines []Line, x, y int) uint8 {
	var alpha uint8
	for _, l := range lines {
		alpha = BlendAlpha(alpha, Coverage(l, x, y))
	}
	return alpha
}

func abs[T constraints.Signed | constraints.Float](v T) T {
	if v < 0 {
		return -v
	}
	return v
}
