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
	"errors"
	"fmt"
)

// ErrInvalidSize is returned by [NewImage] for empty or oversized images.
var ErrInvalidSize = errors.New("invalid image size")

// ErrCurve is returned by [LinesFromPath] for paths containing curves.
var ErrCurve = errors.New("curved path segments are not supported")

// ErrCoordinate is returned by [LinesFromPath] when a transformed point does
// not map to a pixel position.
var ErrCoordinate = errors.New("coordinate outside the pixel grid")

// BoundsError reports a pixel position outside the image.
type BoundsError struct {
	X, Y          int
	Width, Height int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("pixel (%d,%d) is outside the %dx%d image", e.X, e.Y, e.Width, e.Height)
}
