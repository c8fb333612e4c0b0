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
	"errors"
	"sync"

	"seehuhn.de/go/aaline"
)

// RunLocal starts an in-process group of size ranks, runs fn on the
// coordinator and shuts the group down afterwards. If fn fails, the group
// is closed instead, so that no worker stays blocked.
func RunLocal(size int, fn func(c *Coordinator) error) error {
	root, peers, err := NewLocal(size)
	if err != nil {
		return err
	}
	defer root.Close()

	errs := make([]error, len(peers))
	var wg sync.WaitGroup
	wg.Add(len(peers))
	for i, p := range peers {
		go func() {
			defer wg.Done()
			errs[i] = NewWorker(p).Run()
			if errs[i] != nil {
				p.Close()
			}
		}()
	}

	coord, err := NewCoordinator(root)
	if err == nil {
		err = fn(coord)
	}
	if err == nil {
		err = coord.Shutdown()
	}
	if err != nil {
		root.Close()
	}
	wg.Wait()

	if err != nil {
		// ErrClosed on the workers is a consequence of the close above
		for _, werr := range errs {
			if werr != nil && !errors.Is(werr, ErrClosed) {
				err = errors.Join(err, werr)
			}
		}
		return err
	}
	return errors.Join(errs...)
}

// RenderLocal draws lines into img using an in-process group of size ranks.
func RenderLocal(size int, img *aaline.Image, lines []aaline.Line, color aaline.Pixel) error {
	return RunLocal(size, func(c *Coordinator) error {
		return c.Render(img, lines, color)
	})
}
