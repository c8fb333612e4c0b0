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

// Command aaline renders the reference scene with a group of cooperating
// ranks and reports the average run time.
//
// In local mode all ranks run inside one process. Otherwise start one
// process with -mode coordinator and -np-1 processes with -mode worker and
// distinct ranks:
//
//	aaline -mode coordinator -np 4 -addr :7070 -o lines.png &
//	aaline -mode worker -np 4 -rank 1 -addr localhost:7070 &
//	aaline -mode worker -np 4 -rank 2 -addr localhost:7070 &
//	aaline -mode worker -np 4 -rank 3 -addr localhost:7070
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"seehuhn.de/go/aaline"
	"seehuhn.de/go/aaline/cluster"
	"seehuhn.de/go/aaline/imagefile"
	"seehuhn.de/go/aaline/testcases"
)

type invalidArgErr struct {
	flag, desc string
}

func (i invalidArgErr) Error() string {
	return fmt.Sprintf("invalid flag %s: %s", i.flag, i.desc)
}

type options struct {
	mode    string
	size    int
	rank    int
	addr    string
	width   int
	height  int
	padding int
	runs    int
	out     string
	verbose bool
}

// newOptions parses and validates the command line flags.
func newOptions() (options, error) {
	var opts options
	flag.StringVar(&opts.mode, "mode", "local", "role of this process: local, coordinator or worker")
	flag.IntVar(&opts.size, "np", 4, "number of ranks, including the coordinator")
	flag.IntVar(&opts.rank, "rank", 0, "rank of this worker (worker mode only)")
	flag.StringVar(&opts.addr, "addr", "localhost:7070", "coordinator address")
	flag.IntVar(&opts.width, "width", 1920*2, "image width in pixels")
	flag.IntVar(&opts.height, "height", 1080*2, "image height in pixels")
	flag.IntVar(&opts.padding, "padding", 2, "distance of the lines from the image border")
	flag.IntVar(&opts.runs, "runs", 4, "number of timed runs")
	flag.StringVar(&opts.out, "o", "renderedImage.png", "output file (.png, .tiff or .bmp)")
	flag.BoolVar(&opts.verbose, "v", false, "log protocol progress")
	flag.Parse()

	switch opts.mode {
	case "local", "coordinator", "worker":
	default:
		return options{}, invalidArgErr{"-mode", "must be local, coordinator or worker"}
	}
	if opts.size < 2 {
		return options{}, invalidArgErr{"-np", "at least one worker is required"}
	}
	if opts.mode == "worker" && (opts.rank < 1 || opts.rank >= opts.size) {
		return options{}, invalidArgErr{"-rank", fmt.Sprintf("must be between 1 and %d", opts.size-1)}
	}
	if opts.width <= 2*opts.padding || opts.height <= 2*opts.padding || opts.padding < 0 {
		return options{}, invalidArgErr{"-width/-height/-padding", "image too small for the padding"}
	}
	if opts.runs < 1 {
		return options{}, invalidArgErr{"-runs", "must be > 0"}
	}
	if opts.mode != "worker" {
		if _, err := imagefile.FormatFromName(opts.out); err != nil {
			return options{}, invalidArgErr{"-o", err.Error()}
		}
	}
	return opts, nil
}

func main() {
	opts, err := newOptions()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		flag.Usage()
		os.Exit(2)
	}

	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	aaline.SetLogger(logger)

	switch opts.mode {
	case "local":
		err = cluster.RunLocal(opts.size, func(c *cluster.Coordinator) error {
			return benchmark(c, opts)
		})
	case "coordinator":
		err = runCoordinator(opts)
	case "worker":
		err = runWorker(opts)
	}
	if err != nil {
		logger.Error("run failed", "mode", opts.mode, "err", err)
		os.Exit(1)
	}
}

func runCoordinator(opts options) error {
	root, err := cluster.Listen(opts.addr, opts.size)
	if err != nil {
		return err
	}
	defer root.Close()

	c, err := cluster.NewCoordinator(root)
	if err != nil {
		return err
	}
	if err := benchmark(c, opts); err != nil {
		return err
	}
	return c.Shutdown()
}

func runWorker(opts options) error {
	peer, err := cluster.Dial(opts.addr, opts.rank, opts.size)
	if err != nil {
		return err
	}
	defer peer.Close()
	return cluster.NewWorker(peer).Run()
}

// benchmark renders the reference scene opts.runs times, logs the average
// time per run and writes the first image.
func benchmark(c *cluster.Coordinator, opts options) error {
	tc := testcases.Reference(opts.width, opts.height, opts.padding)
	lines, err := tc.Lines()
	if err != nil {
		return err
	}

	images := make([]*aaline.Image, opts.runs)
	for i := range images {
		images[i], err = tc.Canvas()
		if err != nil {
			return err
		}
	}

	log := aaline.Logger()
	log.Info("starting to render lines", "ranks", opts.size, "lines", len(lines), "runs", opts.runs)

	start := time.Now()
	for _, img := range images {
		if err := c.Render(img, lines, tc.Color); err != nil {
			return err
		}
	}
	elapsed := time.Since(start)

	stats := c.Stats()
	log.Info("rendering complete",
		"avg", elapsed/time.Duration(opts.runs),
		"runs", opts.runs,
		"pixels", stats.Pixels)

	return imagefile.WriteFile(opts.out, images[0])
}
