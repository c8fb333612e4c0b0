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

// Worker drives one worker rank.
type Worker struct {
	peer Peer
}

// NewWorker returns a Worker which talks to the coordinator through peer.
func NewWorker(peer Peer) *Worker {
	return &Worker{peer: peer}
}

// Run processes broadcasts until the stop sentinel arrives. For every line
// the worker rasterises its share of the traversal range, sends one message
// per covered pixel and then the [Finished] message.
func (w *Worker) Run() error {
	rank, size := w.peer.Rank(), w.peer.Size()
	if size < 2 {
		return ErrNoWorkers
	}
	if rank < 1 || rank >= size {
		return fmt.Errorf("cluster: invalid worker rank %d for group of size %d", rank, size)
	}

	for {
		m, err := w.peer.Receive()
		if err != nil {
			return err
		}
		if m.IsStop() {
			return nil
		}
		if err := w.render(m.Line, rank-1, size-1); err != nil {
			return err
		}
		if err := w.peer.Send(Finished); err != nil {
			return err
		}
	}
}

// render sends the covered pixels of the part of l assigned to worker
// index out of count.
func (w *Worker) render(l aaline.Line, index, count int) error {
	lo, hi := l.Span()
	a, b := aaline.Partition(lo, hi, index, count)

	var err error
	aaline.Scan(l, a, b, func(x, y int, coverage uint8) {
		if err != nil || coverage == 0 {
			return
		}
		err = w.peer.Send(PixelMessage{Coverage: coverage, X: uint32(x), Y: uint32(y)})
	})
	return err
}
