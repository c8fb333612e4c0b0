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
	"fmt"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// LinesFromPath converts the straight segments of p into lines.
//
// Points are mapped to device space by ctm (the zero matrix means identity)
// and rounded to the nearest pixel position. Every point must land inside
// clip. ClosePath adds the closing segment unless the subpath is already
// closed. Curves are rejected with [ErrCurve]; segments which collapse to a
// single pixel are kept.
func LinesFromPath(p *path.Data, ctm matrix.Matrix, clip rect.Rect) ([]Line, error) {
	if ctm == (matrix.Matrix{}) {
		ctm = matrix.Identity
	}

	toDevice := func(u vec.Vec2) (Point, error) {
		x := math.Round(ctm[0]*u.X + ctm[2]*u.Y + ctm[4])
		y := math.Round(ctm[1]*u.X + ctm[3]*u.Y + ctm[5])
		if !(x >= clip.LLx && x < clip.URx && y >= clip.LLy && y < clip.URy) ||
			x < 0 || y < 0 || x >= SentinelCoord || y >= SentinelCoord {
			return Point{}, fmt.Errorf("%w: (%g,%g)", ErrCoordinate, x, y)
		}
		return Point{X: uint32(x), Y: uint32(y)}, nil
	}

	var lines []Line
	var current, subpath Point
	coordIdx := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			pt, err := toDevice(p.Coords[coordIdx])
			if err != nil {
				return nil, err
			}
			current, subpath = pt, pt
			coordIdx++

		case path.CmdLineTo:
			pt, err := toDevice(p.Coords[coordIdx])
			if err != nil {
				return nil, err
			}
			lines = append(lines, Line{Start: current, End: pt})
			current = pt
			coordIdx++

		case path.CmdQuadTo, path.CmdCubeTo:
			return nil, ErrCurve

		case path.CmdClose:
			if current != subpath {
				lines = append(lines, Line{Start: current, End: subpath})
			}
			current = subpath
		}
	}
	return lines, nil
}
