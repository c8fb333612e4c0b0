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

// Compositing is "over" with truncating integer division by 255. The order
// of the terms is fixed; changing it changes the low bits of the result.

// BlendAlpha returns the alpha of newA composited over oldA.
func BlendAlpha(oldA, newA uint8) uint8 {
	o, n := uint32(oldA), uint32(newA)
	return uint8(o + n*(255-o)/255)
}

// BlendChannel composites the colour value newV with opacity newA over oldV.
func BlendChannel(oldV, newV, newA uint8) uint8 {
	o, n, a := uint32(oldV), uint32(newV), uint32(newA)
	return uint8(n*a/255 + o*(255-a)/255)
}

// BlendPixel composites src over dst, using src.A as the opacity.
func BlendPixel(dst, src Pixel) Pixel {
	return Pixel{
		R: BlendChannel(dst.R, src.R, src.A),
		G: BlendChannel(dst.G, src.G, src.A),
		B: BlendChannel(dst.B, src.B, src.A),
		A: BlendAlpha(dst.A, src.A),
	}
}
