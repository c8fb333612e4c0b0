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

package cluster

import (
	"fmt"

	"seehuhn.de/go/aaline"
)

// Coordinator drives the rank 0 side of the protocol. It owns the output
// image; pixel messages are composited in the order in which they arrive.
//
// A Coordinator is not safe for concurrent use.
type Coordinator struct {
	root  Root
	stats Stats
}

// NewCoordinator returns a Coordinator for the group behind root.
func NewCoordinator(root Root) (*Coordinator, error) {
	n := root.Workers()
	if n < 1 {
		return nil, ErrNoWorkers
	}
	return &Coordinator{
		root:  root,
		stats: Stats{Pixels: make([]int, n)},
	}, nil
}

// Render draws lines into img, one line at a time. For every pixel message
// the colour c, with its alpha replaced by the message's coverage, is
// composited into img.
//
// All lines are checked against the bounds of img before the first
// broadcast. A pixel outside img does not stop the collection for the
// current line, so that no worker is left blocked; the error is returned
// once all workers have finished the line.
func (c *Coordinator) Render(img *aaline.Image, lines []aaline.Line, color aaline.Pixel) error {
	for i, l := range lines {
		if err := img.CheckLine(l); err != nil {
			return fmt.Errorf("line %d: %w", i, err)
		}
	}

	log := aaline.Logger()
	for i, l := range lines {
		log.Debug("broadcasting line", "index", i, "line", l.String())
		if err := c.root.Broadcast(LineMessage{Line: l}); err != nil {
			return err
		}
		if err := c.collect(img, color); err != nil {
			return fmt.Errorf("line %d: %w", i, err)
		}
		c.stats.Lines++
	}
	return nil
}

// collect receives pixel messages until every worker has finished the
// current line.
func (c *Coordinator) collect(img *aaline.Image, color aaline.Pixel) error {
	log := aaline.Logger()
	n := c.root.Workers()
	finished := make([]bool, n)
	var firstErr error
	for done := 0; done < n; {
		rank, m, err := c.root.Recv()
		if err != nil {
			return err
		}
		if rank < 1 || rank > n {
			return &ProtocolError{Rank: rank, Reason: "message from unknown rank"}
		}
		if finished[rank-1] {
			return &ProtocolError{Rank: rank, Reason: "message after finishing the line"}
		}
		if m.IsFinished() {
			finished[rank-1] = true
			done++
			log.Debug("worker finished", "rank", rank)
			continue
		}

		c.stats.Pixels[rank-1]++
		if firstErr != nil {
			continue
		}
		if err := img.Blend(int(m.X), int(m.Y), draw(color, m)); err != nil {
			firstErr = fmt.Errorf("rank %d: %w", rank, err)
		}
	}
	return firstErr
}

// Shutdown broadcasts the stop sentinel. Afterwards the workers are gone
// and the Coordinator must not be used any more.
func (c *Coordinator) Shutdown() error {
	aaline.Logger().Debug("broadcasting stop")
	return c.root.Broadcast(Stop)
}

// Stats returns a copy of the traffic counters.
func (c *Coordinator) Stats() Stats {
	s := c.stats
	s.Pixels = append([]int(nil), c.stats.Pixels...)
	return s
}
