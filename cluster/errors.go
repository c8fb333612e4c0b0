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
	"fmt"
)

// ErrClosed is returned by operations on a group which has been closed,
// either explicitly or because another rank failed.
var ErrClosed = errors.New("cluster: group closed")

// ErrNoWorkers is returned when a group has no worker ranks.
var ErrNoWorkers = errors.New("cluster: at least two ranks are required")

// ProtocolError reports a message of unexpected shape, tag or timing.
// Protocol errors are fatal to the whole run.
type ProtocolError struct {
	Rank   int // rank the offending message came from, or -1
	Reason string
}

func (e *ProtocolError) Error() string {
	if e.Rank < 0 {
		return "cluster: protocol error: " + e.Reason
	}
	return fmt.Sprintf("cluster: protocol error from rank %d: %s", e.Rank, e.Reason)
}
