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

// Package aaline renders straight anti-aliased line segments into an RGBA
// image.
//
// Coverage is computed per candidate pixel from the vertical distance to the
// ideal line, so no supersampling pass is needed. Lines are traversed along
// their major axis; every step touches the two pixels bracketing the ideal
// minor coordinate. The traversal range can be partitioned into contiguous
// sub-ranges, which is how [seehuhn.de/go/aaline/cluster] spreads the work of
// a single line over a group of workers.
package aaline

import (
	"fmt"
	"math"
)

// Pixel is an 8-bit RGBA colour, not premultiplied.
type Pixel struct {
	R, G, B, A uint8
}

// White is the default pixel value: fully opaque white.
var White = Pixel{R: 255, G: 255, B: 255, A: 255}

// Point is a pixel position. Valid points lie inside the image they are
// drawn into.
type Point struct {
	X, Y uint32
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Line is a straight segment between two pixel positions.
//
// The direction of a line only matters for coverage: [Coverage] measures
// relative to Start, even though traversal always walks from the lower to
// the upper endpoint on the major axis.
type Line struct {
	Start, End Point
}

// SentinelCoord is the coordinate value reserved for protocol control
// messages. It is never a valid pixel position.
const SentinelCoord = math.MaxUint32

func (l Line) String() string {
	return l.Start.String() + "-" + l.End.String()
}

// Delta returns the signed extent of the line, End minus Start.
func (l Line) Delta() (dx, dy int) {
	dx = int(l.End.X) - int(l.Start.X)
	dy = int(l.End.Y) - int(l.Start.Y)
	return dx, dy
}

