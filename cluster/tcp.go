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
	"bufio"
	"errors"
	"fmt"
	"net"
	"sync"

	"seehuhn.de/go/aaline"
)

// TCPRoot is the coordinator end of a group whose workers are connected
// over TCP.
type TCPRoot struct {
	conns []net.Conn // indexed by rank-1
	in    chan envelope
	done  chan struct{}
	once  sync.Once
	wg    sync.WaitGroup
}

// Listen accepts connections on addr until all size-1 workers of the group
// have connected and announced their rank.
func Listen(addr string, size int) (*TCPRoot, error) {
	l, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}
	defer l.Close()
	return Accept(l, size)
}

// Accept is like [Listen], but uses an existing listener. The listener is
// not closed.
func Accept(l net.Listener, size int) (*TCPRoot, error) {
	if size < 2 {
		return nil, ErrNoWorkers
	}
	r := &TCPRoot{
		conns: make([]net.Conn, size-1),
		in:    make(chan envelope, pixelQueue),
		done:  make(chan struct{}),
	}
	log := aaline.Logger()

	for joined := 0; joined < size-1; {
		conn, err := l.Accept()
		if err != nil {
			r.closeConns()
			return nil, err
		}
		rank, err := r.handshake(conn, size)
		if err != nil {
			conn.Close()
			r.closeConns()
			return nil, err
		}
		r.conns[rank-1] = conn
		joined++
		log.Info("worker connected", "rank", rank, "remote", conn.RemoteAddr().String())
	}

	for i, conn := range r.conns {
		r.wg.Add(1)
		go r.read(i+1, conn)
	}
	return r, nil
}

func (r *TCPRoot) handshake(conn net.Conn, size int) (int, error) {
	frame, err := readFrame(conn)
	if err != nil {
		return 0, err
	}
	var h hello
	if err := h.UnmarshalBinary(frame); err != nil {
		return 0, err
	}
	switch {
	case h.size != size:
		return 0, &ProtocolError{Rank: h.rank, Reason: fmt.Sprintf("group size %d, want %d", h.size, size)}
	case h.rank < 1 || h.rank >= size:
		return 0, &ProtocolError{Rank: h.rank, Reason: "invalid rank"}
	case r.conns[h.rank-1] != nil:
		return 0, &ProtocolError{Rank: h.rank, Reason: "rank connected twice"}
	}
	return h.rank, nil
}

// read forwards the pixel messages of one worker to r.in.
func (r *TCPRoot) read(rank int, conn net.Conn) {
	defer r.wg.Done()
	br := bufio.NewReader(conn)
	for {
		var e envelope
		frame, err := readFrame(br)
		if err == nil {
			err = e.msg.UnmarshalBinary(frame)
		}
		if err != nil {
			var perr *ProtocolError
			if errors.As(err, &perr) {
				perr.Rank = rank
			}
			e.err = err
		}
		e.rank = rank

		select {
		case r.in <- e:
		case <-r.done:
			return
		}
		if e.err != nil {
			return
		}
	}
}

// Workers implements the [Root] interface.
func (r *TCPRoot) Workers() int {
	return len(r.conns)
}

// Broadcast implements the [Root] interface.
func (r *TCPRoot) Broadcast(m LineMessage) error {
	frame, err := m.MarshalBinary()
	if err != nil {
		return err
	}
	for i, conn := range r.conns {
		if _, err := conn.Write(frame); err != nil {
			return fmt.Errorf("broadcast to rank %d: %w", i+1, err)
		}
	}
	return nil
}

// Recv implements the [Root] interface.
func (r *TCPRoot) Recv() (int, PixelMessage, error) {
	select {
	case e := <-r.in:
		return e.rank, e.msg, e.err
	case <-r.done:
		return 0, PixelMessage{}, ErrClosed
	}
}

// Close closes all worker connections.
func (r *TCPRoot) Close() error {
	r.once.Do(func() {
		close(r.done)
		r.closeConns()
	})
	r.wg.Wait()
	return nil
}

func (r *TCPRoot) closeConns() {
	for _, conn := range r.conns {
		if conn != nil {
			conn.Close()
		}
	}
}

// TCPPeer is a worker end of a group connected over TCP.
type TCPPeer struct {
	conn       net.Conn
	br         *bufio.Reader
	bw         *bufio.Writer
	rank, size int
}

// Dial connects to the coordinator at addr and announces rank.
func Dial(addr string, rank, size int) (*TCPPeer, error) {
	if size < 2 {
		return nil, ErrNoWorkers
	}
	if rank < 1 || rank >= size {
		return nil, fmt.Errorf("cluster: invalid worker rank %d for group of size %d", rank, size)
	}
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		return nil, err
	}
	frame, _ := hello{rank: rank, size: size}.MarshalBinary()
	if _, err := conn.Write(frame); err != nil {
		conn.Close()
		return nil, err
	}
	return &TCPPeer{
		conn: conn,
		br:   bufio.NewReader(conn),
		bw:   bufio.NewWriter(conn),
		rank: rank,
		size: size,
	}, nil
}

// Rank implements the [Peer] interface.
func (p *TCPPeer) Rank() int { return p.rank }

// Size implements the [Peer] interface.
func (p *TCPPeer) Size() int { return p.size }

// Receive implements the [Peer] interface.
func (p *TCPPeer) Receive() (LineMessage, error) {
	var m LineMessage
	frame, err := readFrame(p.br)
	if err != nil {
		return m, err
	}
	err = m.UnmarshalBinary(frame)
	return m, err
}

// Send implements the [Peer] interface. Pixel messages are buffered; the
// terminal message flushes the buffer.
func (p *TCPPeer) Send(m PixelMessage) error {
	frame, err := m.MarshalBinary()
	if err != nil {
		return err
	}
	if _, err := p.bw.Write(frame); err != nil {
		return err
	}
	if m.IsFinished() {
		return p.bw.Flush()
	}
	return nil
}

// Close closes the connection to the coordinator.
func (p *TCPPeer) Close() error {
	return p.conn.Close()
}
