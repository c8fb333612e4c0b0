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
	"encoding/binary"
	"fmt"
	"io"

	"seehuhn.de/go/aaline"
)

// Tag identifies the kind of a wire frame.
//
// A frame is a sequence of little-endian uint32 words: the tag, followed
// by a fixed number of payload words which depends on the tag.
type Tag uint32

const (
	TagLine  Tag = 1 // coordinator to workers: start.x, start.y, end.x, end.y
	TagPixel Tag = 2 // worker to coordinator: coverage, x, y
	TagHello Tag = 3 // worker to coordinator on connect: rank, size
)

// payloadWords gives the number of payload words for each tag.
var payloadWords = map[Tag]int{
	TagLine:  4,
	TagPixel: 3,
	TagHello: 2,
}

func (t Tag) String() string {
	switch t {
	case TagLine:
		return "line"
	case TagPixel:
		return "pixel"
	case TagHello:
		return "hello"
	}
	return fmt.Sprintf("tag(%d)", uint32(t))
}

// LineMessage is the broadcast message: the next line to render, or the
// stop sentinel.
type LineMessage struct {
	Line aaline.Line
}

// Stop is the sentinel broadcast which ends the workers' loops. Its start
// point has both coordinates set to [aaline.SentinelCoord]; the end point
// carries no meaning.
var Stop = LineMessage{
	Line: aaline.Line{Start: aaline.Point{X: aaline.SentinelCoord, Y: aaline.SentinelCoord}},
}

// IsStop reports whether m is the stop sentinel.
func (m LineMessage) IsStop() bool {
	return m.Line.Start.X == aaline.SentinelCoord && m.Line.Start.Y == aaline.SentinelCoord
}

// MarshalBinary encodes m as a wire frame.
func (m LineMessage) MarshalBinary() ([]byte, error) {
	l := m.Line
	return appendFrame(nil, TagLine, l.Start.X, l.Start.Y, l.End.X, l.End.Y), nil
}

// UnmarshalBinary decodes a wire frame into m.
func (m *LineMessage) UnmarshalBinary(data []byte) error {
	w, err := parseFrame(data, TagLine)
	if err != nil {
		return err
	}
	m.Line = aaline.Line{
		Start: aaline.Point{X: w[0], Y: w[1]},
		End:   aaline.Point{X: w[2], Y: w[3]},
	}
	return nil
}

// PixelMessage reports the coverage of one pixel, or, if X and Y are both
// [aaline.SentinelCoord], that the sender has finished the current line.
type PixelMessage struct {
	Coverage uint8
	X, Y     uint32
}

// Finished is the terminal pixel message.
var Finished = PixelMessage{X: aaline.SentinelCoord, Y: aaline.SentinelCoord}

// IsFinished reports whether m is the terminal message.
func (m PixelMessage) IsFinished() bool {
	return m.X == aaline.SentinelCoord && m.Y == aaline.SentinelCoord
}

// MarshalBinary encodes m as a wire frame.
func (m PixelMessage) MarshalBinary() ([]byte, error) {
	return appendFrame(nil, TagPixel, uint32(m.Coverage), m.X, m.Y), nil
}

// UnmarshalBinary decodes a wire frame into m.
func (m *PixelMessage) UnmarshalBinary(data []byte) error {
	w, err := parseFrame(data, TagPixel)
	if err != nil {
		return err
	}
	res := PixelMessage{X: w[1], Y: w[2]}
	if !res.IsFinished() {
		if w[0] > 255 {
			return &ProtocolError{Rank: -1, Reason: fmt.Sprintf("coverage %d out of range", w[0])}
		}
		res.Coverage = uint8(w[0])
	}
	*m = res
	return nil
}

// hello is sent by a worker right after connecting.
type hello struct {
	rank, size int
}

func (h hello) MarshalBinary() ([]byte, error) {
	return appendFrame(nil, TagHello, uint32(h.rank), uint32(h.size)), nil
}

func (h *hello) UnmarshalBinary(data []byte) error {
	w, err := parseFrame(data, TagHello)
	if err != nil {
		return err
	}
	h.rank, h.size = int(w[0]), int(w[1])
	return nil
}

func appendFrame(buf []byte, tag Tag, words ...uint32) []byte {
	buf = binary.LittleEndian.AppendUint32(buf, uint32(tag))
	for _, w := range words {
		buf = binary.LittleEndian.AppendUint32(buf, w)
	}
	return buf
}

// parseFrame checks the size and tag of a frame and returns its payload.
func parseFrame(data []byte, want Tag) ([]uint32, error) {
	n := payloadWords[want]
	if len(data) != 4*(n+1) {
		return nil, &ProtocolError{Rank: -1,
			Reason: fmt.Sprintf("%s frame has %d bytes, want %d", want, len(data), 4*(n+1))}
	}
	if tag := Tag(binary.LittleEndian.Uint32(data)); tag != want {
		return nil, &ProtocolError{Rank: -1, Reason: fmt.Sprintf("got %s frame, want %s", tag, want)}
	}
	words := make([]uint32, n)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(data[4*(i+1):])
	}
	return words, nil
}

// readFrame reads one complete frame from r.
func readFrame(r io.Reader) ([]byte, error) {
	buf := make([]byte, 4, 20)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, err
	}
	tag := Tag(binary.LittleEndian.Uint32(buf))
	n, ok := payloadWords[tag]
	if !ok {
		return nil, &ProtocolError{Rank: -1, Reason: "unknown " + tag.String()}
	}
	buf = buf[:4*(n+1)]
	if _, err := io.ReadFull(r, buf[4:]); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return nil, err
	}
	return buf, nil
}
