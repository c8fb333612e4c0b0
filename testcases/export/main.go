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

// Command export writes the work lists of all test cases to JSON, for use
// by external renderers. Run from the module root directory.
package main

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/aaline"
	"seehuhn.de/go/aaline/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			jtc, err := toJSON(category, tc)
			if err != nil {
				panic(fmt.Errorf("%s_%s: %w", category, tc.Name, err))
			}
			out.TestCases = append(out.TestCases, jtc)
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name       string     `json:"name"`
	Width      int        `json:"width"`
	Height     int        `json:"height"`
	Lines      [][4]int   `json:"lines"`
	Color      [4]uint8   `json:"color"`
	Background [4]uint8   `json:"background"`
	Coverage   []jsonCell `json:"coverage"`
}

// jsonCell is one nonzero entry of the combined coverage of all lines.
type jsonCell struct {
	X     int   `json:"x"`
	Y     int   `json:"y"`
	Alpha uint8 `json:"alpha"`
}

func toJSON(category string, tc testcases.TestCase) (jsonTestCase, error) {
	lines, err := tc.Lines()
	if err != nil {
		return jsonTestCase{}, err
	}

	jtc := jsonTestCase{
		Name:       category + "_" + tc.Name,
		Width:      tc.Width,
		Height:     tc.Height,
		Color:      rgba(tc.Color),
		Background: rgba(tc.Background),
	}
	for _, l := range lines {
		jtc.Lines = append(jtc.Lines, [4]int{int(l.Start.X), int(l.Start.Y), int(l.End.X), int(l.End.Y)})
	}
	for y := range tc.Height {
		for x := range tc.Width {
			if a := aaline.CoverageAll(lines, x, y); a > 0 {
				jtc.Coverage = append(jtc.Coverage, jsonCell{X: x, Y: y, Alpha: a})
			}
		}
	}
	return jtc, nil
}

func rgba(p aaline.Pixel) [4]uint8 {
	return [4]uint8{p.R, p.G, p.B, p.A}
}
