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
	"bytes"
	"errors"
	"net"
	"sync"
	"testing"

	"seehuhn.de/go/aaline/testcases"
)

func listen(t *testing.T) net.Listener {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { l.Close() })
	return l
}

func TestTCP(t *testing.T) {
	const size = 3
	l := listen(t)
	addr := l.Addr().String()

	errs := make([]error, size-1)
	var wg sync.WaitGroup
	for rank := 1; rank < size; rank++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p, err := Dial(addr, rank, size)
			if err != nil {
				errs[rank-1] = err
				return
			}
			defer p.Close()
			errs[rank-1] = NewWorker(p).Run()
		}()
	}

	root, err := Accept(l, size)
	if err != nil {
		t.Fatal(err)
	}
	defer root.Close()

	tc := testcases.Reference(384, 216, 2)
	lines, err := tc.Lines()
	if err != nil {
		t.Fatal(err)
	}
	img, err := tc.Canvas()
	if err != nil {
		t.Fatal(err)
	}
	c, err := NewCoordinator(root)
	if err != nil {
		t.Fatal(err)
	}
	if err := c.Render(img, lines, tc.Color); err != nil {
		t.Fatal(err)
	}
	if err := c.Shutdown(); err != nil {
		t.Fatal(err)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Errorf("rank %d: %v", i+1, err)
		}
	}
	if !bytes.Equal(img.Bytes(), sequential(t, tc).Bytes()) {
		t.Error("image differs from sequential rendering")
	}
}

func TestTCPHandshake(t *testing.T) {
	cases := []struct {
		name  string
		hello []hello
	}{
		{"wrong size", []hello{{rank: 1, size: 4}}},
		{"rank too large", []hello{{rank: 3, size: 3}}},
		{"rank twice", []hello{{rank: 1, size: 3}, {rank: 1, size: 3}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l := listen(t)
			addr := l.Addr().String()

			for _, h := range tc.hello {
				conn, err := net.Dial("tcp", addr)
				if err != nil {
					t.Fatal(err)
				}
				defer conn.Close()
				frame, _ := h.MarshalBinary()
				if _, err := conn.Write(frame); err != nil {
					t.Fatal(err)
				}
			}

			root, err := Accept(l, 3)
			if err == nil {
				root.Close()
			}
			var perr *ProtocolError
			if !errors.As(err, &perr) {
				t.Errorf("got %v, want a ProtocolError", err)
			}
		})
	}
}

func TestDialInvalid(t *testing.T) {
	if _, err := Dial("127.0.0.1:1", 1, 1); err != ErrNoWorkers {
		t.Errorf("size 1: got %v, want ErrNoWorkers", err)
	}
	if _, err := Dial("127.0.0.1:1", 2, 2); err == nil {
		t.Error("rank 2 of 2 accepted")
	}
}
