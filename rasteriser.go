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
	"slices"
)

// Axis identifies the traversal direction of a line.
type Axis int

const (
	// AxisX lines are traversed one column at a time.
	AxisX Axis = iota
	// AxisY lines are traversed one row at a time.
	AxisY
)

func (a Axis) String() string {
	if a == AxisY {
		return "y"
	}
	return "x"
}

// Major returns the traversal axis of l. Lines steeper than 45° are
// traversed along y, all others along x.
func (l Line) Major() Axis {
	dx, dy := l.Delta()
	if abs(dx) < abs(dy) {
		return AxisY
	}
	return AxisX
}

// ordered returns the endpoints of l sorted along the major axis.
func (l Line) ordered() (s, e Point) {
	s, e = l.Start, l.End
	if l.Major() == AxisX {
		if s.X > e.X {
			s, e = e, s
		}
	} else if s.Y > e.Y {
		s, e = e, s
	}
	return s, e
}

// Span returns the traversal range of l along its major axis, as the
// half-open interval [lo, hi). Both endpoints are included, so hi-lo is
// one more than the extent of the line.
func (l Line) Span() (lo, hi int) {
	s, e := l.ordered()
	if l.Major() == AxisX {
		return int(s.X), int(e.X) + 1
	}
	return int(s.Y), int(e.Y) + 1
}

// Partition returns the part [a, b) of the range [lo, hi) assigned to
// worker index out of count workers.
//
// Each worker gets max((hi-lo)/count, 1) consecutive steps, the last worker
// also takes the remainder. Workers beyond the end of the range get an empty
// interval. Together the intervals cover [lo, hi) without overlap.
func Partition(lo, hi, index, count int) (a, b int) {
	if count < 1 || index < 0 || index >= count || hi <= lo {
		return hi, hi
	}
	chunk := max((hi-lo)/count, 1)
	a = min(lo+chunk*index, hi)
	b = min(a+chunk, hi)
	if index == count-1 {
		b = hi
	}
	return a, b
}

// Scan walks the steps of l in [lo, hi) along the major axis and calls emit
// for the candidate pixels of every step: the pixels just above and below
// (or left and right of) the ideal line. A candidate that falls exactly on
// the line is emitted once. The coverage passed to emit is
// [Coverage] for the original, un-swapped line.
//
// The range is clipped to [Line.Span].
func Scan(l Line, lo, hi int, emit func(x, y int, coverage uint8)) {
	spanLo, spanHi := l.Span()
	lo = max(lo, spanLo)
	hi = min(hi, spanHi)

	s, e := l.ordered()
	major := l.Major()

	// along the major axis: start, extent; across: start, extent
	var m0, dm, n0, dn int
	if major == AxisX {
		m0, dm = int(s.X), int(e.X)-int(s.X)
		n0, dn = int(s.Y), int(e.Y)-int(s.Y)
	} else {
		m0, dm = int(s.Y), int(e.Y)-int(s.Y)
		n0, dn = int(s.X), int(e.X)-int(s.X)
	}
	nMin, nMax := float64(min(n0, n0+dn)), float64(max(n0, n0+dn))

	for m := lo; m < hi; m++ {
		n := float64(n0)
		if dm != 0 {
			n += float64(dn) / float64(dm) * float64(m-m0)
			n = min(max(n, nMin), nMax) // guard against roundoff past an endpoint
		}
		c := int(math.Ceil(n))
		f := int(math.Floor(n))

		if major == AxisX {
			emit(m, c, Coverage(l, m, c))
			if f != c {
				emit(m, f, Coverage(l, m, f))
			}
		} else {
			emit(c, m, Coverage(l, c, m))
			if f != c {
				emit(f, m, Coverage(l, f, m))
			}
		}
	}
}

// Rasteriser draws lines into an [Image] in a single goroutine.
// Create one instance and reuse it; internal buffers grow as needed but
// never shrink.
//
// A Rasteriser is not safe for concurrent use.
type Rasteriser struct {
	// Color is the fill colour. Its alpha is replaced by the coverage of
	// each pixel.
	Color Pixel

	// PaintUncovered selects what happens to candidate pixels with zero
	// coverage. If false they are left alone. If true, Color is composited
	// with its own alpha, which reproduces the behaviour of the historic
	// reference renderer.
	PaintUncovered bool

	// per-pixel accumulation for RenderLines (reused across calls)
	cover   []uint8
	seen    []bool
	touched []int
}

// NewRasteriser returns a Rasteriser which draws in the given colour.
func NewRasteriser(c Pixel) *Rasteriser {
	return &Rasteriser{Color: c}
}

// DrawLine composites the line l into img. Every candidate pixel is blended
// with Color, its alpha replaced by the pixel's coverage.
//
// If an endpoint of l lies outside img, nothing is drawn and a
// [*BoundsError] is returned.
func (r *Rasteriser) DrawLine(img *Image, l Line) error {
	if err := img.CheckLine(l); err != nil {
		return err
	}
	var err error
	lo, hi := l.Span()
	Scan(l, lo, hi, func(x, y int, coverage uint8) {
		if err == nil {
			err = r.paint(img, x, y, coverage)
		}
	})
	return err
}

// RenderLines composites a set of lines into img in one pass. Where several
// lines touch the same pixel, their coverages are first combined with
// [BlendAlpha] and the pixel is blended once with the combined value.
//
// All lines are checked against the image bounds before any pixel is
// written.
func (r *Rasteriser) RenderLines(img *Image, lines []Line) error {
	for _, l := range lines {
		if err := img.CheckLine(l); err != nil {
			return err
		}
	}

	size := img.width * img.height
	r.cover = slices.Grow(r.cover[:0], size)[:size]
	r.seen = slices.Grow(r.seen[:0], size)[:size]
	clear(r.cover)
	clear(r.seen)
	r.touched = r.touched[:0]

	for _, l := range lines {
		lo, hi := l.Span()
		Scan(l, lo, hi, func(x, y int, coverage uint8) {
			idx := y*img.width + x
			if !r.seen[idx] {
				r.seen[idx] = true
				r.touched = append(r.touched, idx)
			}
			r.cover[idx] = BlendAlpha(r.cover[idx], coverage)
		})
	}

	for _, idx := range r.touched {
		if err := r.paint(img, idx%img.width, idx/img.width, r.cover[idx]); err != nil {
			return err
		}
	}
	return nil
}

func (r *Rasteriser) paint(img *Image, x, y int, coverage uint8) error {
	c := r.Color
	if coverage > 0 {
		c.A = coverage
	} else if !r.PaintUncovered {
		return nil
	}
	return img.Blend(x, y, c)
}
