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
	"image"
	"image/color"
	"math"

	"seehuhn.de/go/geom/rect"
)

// Image is a fixed-size grid of pixels in row-major order.
//
// An Image is not safe for concurrent use. All writes to one image must be
// serialised by the caller.
type Image struct {
	width, height int
	pix           []Pixel
}

// NewImage allocates a width×height image. All pixels start out as the zero
// Pixel (transparent black); use [Image.Fill] to set a background.
func NewImage(width, height int) (*Image, error) {
	if width <= 0 || height <= 0 ||
		uint64(width) >= SentinelCoord || uint64(height) >= SentinelCoord ||
		width > math.MaxInt/height {
		return nil, ErrInvalidSize
	}
	return &Image{
		width:  width,
		height: height,
		pix:    make([]Pixel, width*height),
	}, nil
}

// Width returns the number of pixel columns.
func (img *Image) Width() int { return img.width }

// Height returns the number of pixel rows.
func (img *Image) Height() int { return img.height }

// Rect returns the image area in device coordinates.
func (img *Image) Rect() rect.Rect {
	return rect.Rect{LLx: 0, LLy: 0, URx: float64(img.width), URy: float64(img.height)}
}

// Contains reports whether (x, y) addresses a pixel of the image.
func (img *Image) Contains(x, y int) bool {
	return x >= 0 && x < img.width && y >= 0 && y < img.height
}

// CheckLine returns a [*BoundsError] if an endpoint of l lies outside the
// image.
func (img *Image) CheckLine(l Line) error {
	for _, p := range []Point{l.Start, l.End} {
		x, y := int(p.X), int(p.Y)
		if !img.Contains(x, y) {
			return &BoundsError{X: x, Y: y, Width: img.width, Height: img.height}
		}
	}
	return nil
}

// Fill sets every pixel to c.
func (img *Image) Fill(c Pixel) {
	for i := range img.pix {
		img.pix[i] = c
	}
}

// Get returns a pointer to the pixel at (x, y). The pointer stays valid for
// the lifetime of the image.
func (img *Image) Get(x, y int) (*Pixel, error) {
	if !img.Contains(x, y) {
		return nil, &BoundsError{X: x, Y: y, Width: img.width, Height: img.height}
	}
	return &img.pix[y*img.width+x], nil
}

// Blend composites c over the pixel at (x, y).
func (img *Image) Blend(x, y int, c Pixel) error {
	p, err := img.Get(x, y)
	if err != nil {
		return err
	}
	*p = BlendPixel(*p, c)
	return nil
}

// Bytes returns a copy of the pixel data as R, G, B, A bytes in row-major
// order.
func (img *Image) Bytes() []byte {
	buf := make([]byte, 0, 4*len(img.pix))
	for _, p := range img.pix {
		buf = append(buf, p.R, p.G, p.B, p.A)
	}
	return buf
}

// ColorModel implements the [image.Image] interface.
func (img *Image) ColorModel() color.Model {
	return color.NRGBAModel
}

// Bounds implements the [image.Image] interface.
func (img *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, img.width, img.height)
}

// At implements the [image.Image] interface.
func (img *Image) At(x, y int) color.Color {
	if !img.Contains(x, y) {
		return color.NRGBA{}
	}
	p := img.pix[y*img.width+x]
	return color.NRGBA{R: p.R, G: p.G, B: p.B, A: p.A}
}
