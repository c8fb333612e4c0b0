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
	"sync"
)

// pixelQueue is the buffer size of the channel carrying pixel messages to
// the coordinator.
const pixelQueue = 256

type envelope struct {
	rank int
	msg  PixelMessage
	err  error
}

// localGroup connects ranks which run as goroutines of the same process.
type localGroup struct {
	lines  []chan LineMessage // one unbuffered channel per worker
	pixels chan envelope
	done   chan struct{}
	once   sync.Once
}

func (g *localGroup) close() {
	g.once.Do(func() { close(g.done) })
}

// LocalRoot is the coordinator end of an in-process group.
type LocalRoot struct {
	g *localGroup
}

// LocalPeer is a worker end of an in-process group.
type LocalPeer struct {
	g    *localGroup
	rank int
}

// NewLocal creates an in-process group of size ranks and returns the
// coordinator end and the size-1 worker ends, in rank order.
func NewLocal(size int) (*LocalRoot, []*LocalPeer, error) {
	if size < 2 {
		return nil, nil, ErrNoWorkers
	}
	g := &localGroup{
		lines:  make([]chan LineMessage, size-1),
		pixels: make(chan envelope, pixelQueue),
		done:   make(chan struct{}),
	}
	peers := make([]*LocalPeer, size-1)
	for i := range peers {
		g.lines[i] = make(chan LineMessage)
		peers[i] = &LocalPeer{g: g, rank: i + 1}
	}
	return &LocalRoot{g: g}, peers, nil
}

// Workers implements the [Root] interface.
func (r *LocalRoot) Workers() int {
	return len(r.g.lines)
}

// Broadcast implements the [Root] interface.
func (r *LocalRoot) Broadcast(m LineMessage) error {
	for _, ch := range r.g.lines {
		select {
		case ch <- m:
		case <-r.g.done:
			return ErrClosed
		}
	}
	return nil
}

// Recv implements the [Root] interface.
func (r *LocalRoot) Recv() (int, PixelMessage, error) {
	select {
	case e := <-r.g.pixels:
		return e.rank, e.msg, nil
	case <-r.g.done:
		return 0, PixelMessage{}, ErrClosed
	}
}

// Close shuts the group down. Blocked operations on all ranks return
// [ErrClosed].
func (r *LocalRoot) Close() error {
	r.g.close()
	return nil
}

// Rank implements the [Peer] interface.
func (p *LocalPeer) Rank() int {
	return p.rank
}

// Size implements the [Peer] interface.
func (p *LocalPeer) Size() int {
	return len(p.g.lines) + 1
}

// Receive implements the [Peer] interface.
func (p *LocalPeer) Receive() (LineMessage, error) {
	select {
	case m := <-p.g.lines[p.rank-1]:
		return m, nil
	case <-p.g.done:
		return LineMessage{}, ErrClosed
	}
}

// Send implements the [Peer] interface.
func (p *LocalPeer) Send(m PixelMessage) error {
	select {
	case p.g.pixels <- envelope{rank: p.rank, msg: m}:
		return nil
	case <-p.g.done:
		return ErrClosed
	}
}

// Close shuts the group down, see [LocalRoot.Close].
func (p *LocalPeer) Close() error {
	p.g.close()
	return nil
}
