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

// Package cluster distributes line rendering over a group of ranks.
//
// Rank 0 is the coordinator, ranks 1 to N-1 are workers. The coordinator
// broadcasts one line at a time. Every worker rasterises its own contiguous
// part of the line's traversal range, as given by [aaline.Partition], and
// streams the covered pixels back to the coordinator, followed by a
// terminal "finished" message. The coordinator composites the pixels into
// its image and waits for all terminal messages before it broadcasts the
// next line. Broadcasting the stop sentinel ends the workers' loops.
//
// Ranks talk through the [Root] and [Peer] interfaces. [NewLocal] connects
// ranks running as goroutines of one process, [Listen] and [Dial] connect
// separate processes over TCP.
package cluster

import (
	"seehuhn.de/go/aaline"
)

// Root is the coordinator's end of a group.
type Root interface {
	// Workers returns the number of worker ranks, N-1.
	Workers() int

	// Broadcast sends m to every worker. It returns once all workers
	// have received the message.
	Broadcast(m LineMessage) error

	// Recv returns the next pixel message from any worker, together
	// with the sender's rank. Messages from different workers arrive in
	// no particular order.
	Recv() (rank int, m PixelMessage, err error)
}

// Peer is a worker's end of a group.
type Peer interface {
	// Rank returns the rank of this worker, between 1 and Size()-1.
	Rank() int

	// Size returns the number of ranks in the group, including the
	// coordinator.
	Size() int

	// Receive takes part in the next broadcast and returns its message.
	Receive() (LineMessage, error)

	// Send delivers m to the coordinator.
	Send(m PixelMessage) error
}

// Stats counts the traffic seen by a [Coordinator].
type Stats struct {
	Lines  int   // lines completed
	Pixels []int // pixel messages received, indexed by rank-1
}

// draw is the colour value composited by the coordinator for a pixel
// message.
func draw(c aaline.Pixel, m PixelMessage) aaline.Pixel {
	c.A = m.Coverage
	return c
}
