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

package aaline_test

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"testing"

	"golang.org/x/image/vector"

	"seehuhn.de/go/aaline"
	"seehuhn.de/go/aaline/testcases"
)

var benchSizes = [][2]int{{384, 216}, {1920, 1080}, {3840, 2160}}

func BenchmarkDrawLine(b *testing.B) {
	for _, size := range benchSizes {
		tc := testcases.Reference(size[0], size[1], 2)
		b.Run(fmt.Sprintf("%dx%d", size[0], size[1]), func(b *testing.B) {
			lines, err := tc.Lines()
			if err != nil {
				b.Fatal(err)
			}
			img, err := tc.Canvas()
			if err != nil {
				b.Fatal(err)
			}
			r := aaline.NewRasteriser(tc.Color)

			b.ReportAllocs()
			for b.Loop() {
				for _, l := range lines {
					if err := r.DrawLine(img, l); err != nil {
						b.Fatal(err)
					}
				}
			}
		})
	}
}

func BenchmarkRenderLines(b *testing.B) {
	for _, size := range benchSizes {
		tc := testcases.Reference(size[0], size[1], 2)
		b.Run(fmt.Sprintf("%dx%d", size[0], size[1]), func(b *testing.B) {
			lines, err := tc.Lines()
			if err != nil {
				b.Fatal(err)
			}
			img, err := tc.Canvas()
			if err != nil {
				b.Fatal(err)
			}
			r := aaline.NewRasteriser(tc.Color)

			b.ReportAllocs()
			for b.Loop() {
				if err := r.RenderLines(img, lines); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkVector draws the same scene with x/image/vector, each line as a
// one pixel wide quadrilateral.
func BenchmarkVector(b *testing.B) {
	for _, size := range benchSizes {
		tc := testcases.Reference(size[0], size[1], 2)
		b.Run(fmt.Sprintf("%dx%d", size[0], size[1]), func(b *testing.B) {
			lines, err := tc.Lines()
			if err != nil {
				b.Fatal(err)
			}
			w, h := tc.Width, tc.Height
			r := vector.NewRasterizer(w, h)
			dst := image.NewAlpha(image.Rect(0, 0, w, h))
			src := image.NewUniform(color.Alpha{255})

			b.ReportAllocs()
			for b.Loop() {
				r.Reset(w, h)
				for _, l := range lines {
					addLineToVector(r, l)
				}
				r.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}

// addLineToVector adds l to r as a quadrilateral of width one, centred on
// the pixel centres of the endpoints.
func addLineToVector(r *vector.Rasterizer, l aaline.Line) {
	x0, y0 := float32(l.Start.X)+0.5, float32(l.Start.Y)+0.5
	x1, y1 := float32(l.End.X)+0.5, float32(l.End.Y)+0.5

	var nx, ny float32
	if dx, dy := l.Delta(); dx != 0 || dy != 0 {
		n := float32(1 / (2 * math.Hypot(float64(dx), float64(dy))))
		nx, ny = -float32(dy)*n, float32(dx)*n
	} else {
		nx = 0.5
	}

	r.MoveTo(x0+nx, y0+ny)
	r.LineTo(x1+nx, y1+ny)
	r.LineTo(x1-nx, y1-ny)
	r.LineTo(x0-nx, y0-ny)
	r.ClosePath()
}
