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
	"testing"
)

type hit struct {
	x, y     int
	coverage uint8
}

func scanAll(l Line) []hit {
	var hits []hit
	lo, hi := l.Span()
	Scan(l, lo, hi, func(x, y int, coverage uint8) {
		hits = append(hits, hit{x, y, coverage})
	})
	return hits
}

func TestMajorAxis(t *testing.T) {
	cases := []struct {
		l    Line
		want Axis
	}{
		{line(0, 0, 10, 10), AxisX},
		{line(0, 0, 10, 3), AxisX},
		{line(0, 5, 10, 5), AxisX},
		{line(0, 0, 3, 10), AxisY},
		{line(5, 0, 5, 10), AxisY},
		{line(9, 9, 0, 1), AxisX},
		{line(3, 3, 3, 3), AxisX},
	}
	for _, tc := range cases {
		if got := tc.l.Major(); got != tc.want {
			t.Errorf("%v: major axis %s, want %s", tc.l, got, tc.want)
		}
	}
}

func TestSpan(t *testing.T) {
	cases := []struct {
		l      Line
		lo, hi int
	}{
		{line(0, 0, 10, 10), 0, 11},
		{line(10, 0, 2, 3), 2, 11},
		{line(4, 9, 5, 1), 1, 10},
		{line(3, 3, 3, 3), 3, 4},
	}
	for _, tc := range cases {
		lo, hi := tc.l.Span()
		if lo != tc.lo || hi != tc.hi {
			t.Errorf("%v: span [%d,%d), want [%d,%d)", tc.l, lo, hi, tc.lo, tc.hi)
		}
	}
}

func TestScanDiagonal(t *testing.T) {
	hits := scanAll(line(0, 0, 10, 10))
	if len(hits) != 11 {
		t.Fatalf("got %d candidates, want 11: %v", len(hits), hits)
	}
	for i, h := range hits {
		if h.x != i || h.y != i || h.coverage != 255 {
			t.Errorf("candidate %d = %+v, want (%d,%d) with coverage 255", i, h, i, i)
		}
	}
}

func TestScanAxisAligned(t *testing.T) {
	horizontal := scanAll(line(0, 5, 10, 5))
	if len(horizontal) != 11 {
		t.Fatalf("horizontal: got %d candidates, want 11", len(horizontal))
	}
	for i, h := range horizontal {
		if h.x != i || h.y != 5 || h.coverage != 255 {
			t.Errorf("horizontal candidate %d = %+v", i, h)
		}
	}

	vertical := scanAll(line(5, 10, 5, 0))
	if len(vertical) != 11 {
		t.Fatalf("vertical: got %d candidates, want 11", len(vertical))
	}
	for i, h := range vertical {
		// coverage is measured from (5,10): px is 0 everywhere
		if h.x != 5 || h.y != i || h.coverage != 255 {
			t.Errorf("vertical candidate %d = %+v", i, h)
		}
	}
}

func TestScanBrackets(t *testing.T) {
	// slope 3/10: every fractional step has a pixel above and below
	hits := scanAll(line(0, 0, 10, 3))
	byColumn := map[int][]hit{}
	for _, h := range hits {
		byColumn[h.x] = append(byColumn[h.x], h)
	}
	for x := 0; x <= 10; x++ {
		col := byColumn[x]
		switch len(col) {
		case 1:
			if col[0].coverage != 255 {
				t.Errorf("column %d: single candidate with coverage %d", x, col[0].coverage)
			}
		case 2:
			if col[0].y != col[1].y+1 {
				t.Errorf("column %d: candidates %d and %d do not bracket", x, col[0].y, col[1].y)
			}
			sum := int(col[0].coverage) + int(col[1].coverage)
			if sum < 254 || sum > 256 {
				t.Errorf("column %d: coverages %d+%d, want about 255", x, col[0].coverage, col[1].coverage)
			}
		default:
			t.Errorf("column %d: %d candidates", x, len(col))
		}
	}
}

func TestScanSubRange(t *testing.T) {
	l := line(2, 7, 40, 19)
	all := scanAll(l)

	var parts []hit
	lo, hi := l.Span()
	for _, cut := range [][2]int{{lo - 5, 10}, {10, 25}, {25, hi + 5}} {
		Scan(l, cut[0], cut[1], func(x, y int, coverage uint8) {
			parts = append(parts, hit{x, y, coverage})
		})
	}
	if fmt.Sprint(parts) != fmt.Sprint(all) {
		t.Errorf("sub-ranges give %v, want %v", parts, all)
	}
}

func TestPartition(t *testing.T) {
	for n := 1; n <= 70; n++ {
		for count := 1; count <= 17; count++ {
			lo, hi := 5, 5+n
			seen := make([]int, n)
			next := lo
			for i := range count {
				a, b := Partition(lo, hi, i, count)
				if a > b || a < lo || b > hi {
					t.Fatalf("n=%d count=%d index=%d: bad range [%d,%d)", n, count, i, a, b)
				}
				if a != b && a != next {
					t.Fatalf("n=%d count=%d index=%d: range [%d,%d) not contiguous", n, count, i, a, b)
				}
				if a != b {
					next = b
				}
				for k := a; k < b; k++ {
					seen[k-lo]++
				}
			}
			for k, c := range seen {
				if c != 1 {
					t.Fatalf("n=%d count=%d: step %d covered %d times", n, count, lo+k, c)
				}
			}
		}
	}
}

func TestPartitionInvalid(t *testing.T) {
	for _, args := range [][4]int{{0, 10, 0, 0}, {0, 10, -1, 3}, {0, 10, 3, 3}, {5, 5, 0, 1}} {
		a, b := Partition(args[0], args[1], args[2], args[3])
		if a != b {
			t.Errorf("Partition%v = [%d,%d), want empty", args, a, b)
		}
	}
}

func TestDrawLine(t *testing.T) {
	bg := Pixel{R: 100, G: 100, B: 100, A: 255}
	img, err := NewImage(11, 11)
	if err != nil {
		t.Fatal(err)
	}
	img.Fill(bg)

	r := NewRasteriser(Pixel{A: 255})
	if err := r.DrawLine(img, line(0, 0, 10, 10)); err != nil {
		t.Fatal(err)
	}

	for y := range 11 {
		for x := range 11 {
			p, _ := img.Get(x, y)
			want := bg
			if x == y {
				want = Pixel{A: 255}
			}
			if *p != want {
				t.Errorf("pixel (%d,%d) = %v, want %v", x, y, *p, want)
			}
		}
	}
}

func TestDrawLineOutOfBounds(t *testing.T) {
	img, err := NewImage(10, 10)
	if err != nil {
		t.Fatal(err)
	}
	img.Fill(White)
	before := img.Bytes()

	r := NewRasteriser(Pixel{A: 255})
	var bErr *BoundsError
	if err := r.DrawLine(img, line(0, 0, 10, 10)); !errors.As(err, &bErr) {
		t.Fatalf("DrawLine: got %v, want BoundsError", err)
	}
	if err := r.RenderLines(img, []Line{line(0, 0, 9, 9), line(0, 10, 3, 3)}); !errors.As(err, &bErr) {
		t.Fatalf("RenderLines: got %v, want BoundsError", err)
	}
	if string(img.Bytes()) != string(before) {
		t.Error("image was modified by a failed draw call")
	}
}

func TestPaintUncovered(t *testing.T) {
	// For a steep line, coverage is measured vertically and most
	// candidates get zero.
	l := line(0, 0, 3, 10)
	if c := Coverage(l, 1, 1); c != 0 {
		t.Fatalf("test assumption broken: coverage at (1,1) is %d", c)
	}

	for _, paint := range []bool{false, true} {
		img, err := NewImage(4, 11)
		if err != nil {
			t.Fatal(err)
		}
		img.Fill(White)

		r := NewRasteriser(Pixel{R: 10, G: 20, B: 30, A: 255})
		r.PaintUncovered = paint
		if err := r.DrawLine(img, l); err != nil {
			t.Fatal(err)
		}

		p, _ := img.Get(1, 1)
		want := White
		if paint {
			want = r.Color
		}
		if *p != want {
			t.Errorf("PaintUncovered=%t: pixel (1,1) = %v, want %v", paint, *p, want)
		}
	}
}

func TestRenderLinesAccumulates(t *testing.T) {
	bg := White
	a := line(0, 0, 4, 1)
	b := line(0, 1, 4, 0)

	img, err := NewImage(5, 2)
	if err != nil {
		t.Fatal(err)
	}
	img.Fill(bg)

	color := Pixel{A: 255}
	r := NewRasteriser(color)
	if err := r.RenderLines(img, []Line{a, b}); err != nil {
		t.Fatal(err)
	}

	// (2,0) is touched by both lines with coverage 128 each
	color.A = CoverageAll([]Line{a, b}, 2, 0)
	want := BlendPixel(bg, color)
	if p, _ := img.Get(2, 0); *p != want {
		t.Errorf("pixel (2,0) = %v, want %v", *p, want)
	}

	// a second call starts from scratch
	img.Fill(bg)
	if err := r.RenderLines(img, []Line{a}); err != nil {
		t.Fatal(err)
	}
	color.A = Coverage(a, 2, 0)
	want = BlendPixel(bg, color)
	if p, _ := img.Get(2, 0); *p != want {
		t.Errorf("after reuse: pixel (2,0) = %v, want %v", *p, want)
	}
}

// TestRenderLinesSingle checks that for a single line the one-pass and the
// per-line renderer agree exactly.
func TestRenderLinesSingle(t *testing.T) {
	lines := []Line{
		line(0, 0, 30, 7),
		line(30, 2, 1, 19),
		line(4, 0, 9, 19),
		line(15, 19, 15, 0),
	}
	r := NewRasteriser(Pixel{R: 200, G: 10, B: 10, A: 255})
	for _, l := range lines {
		img1, _ := NewImage(31, 20)
		img2, _ := NewImage(31, 20)
		img1.Fill(White)
		img2.Fill(White)
		if err := r.DrawLine(img1, l); err != nil {
			t.Fatal(err)
		}
		if err := r.RenderLines(img2, []Line{l}); err != nil {
			t.Fatal(err)
		}
		if string(img1.Bytes()) != string(img2.Bytes()) {
			t.Errorf("%v: DrawLine and RenderLines differ", l)
		}
	}
}
