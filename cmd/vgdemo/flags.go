// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/gogpu/vgdemo/config"
)

// cliFlags are the command-line options. Options that mirror a config
// field override the file only when given.
type cliFlags struct {
	fs *flag.FlagSet

	configPath string
	width      int
	height     int
	buffers    int
	format     string
	tick       time.Duration
	refresh    time.Duration
	queue      int
	pattern    string
	snapshots  string
	every      int
	logLevel   string
	logFile    string
	headless   bool
	duration   time.Duration
}

func newFlags(name string, handling flag.ErrorHandling) *cliFlags {
	f := &cliFlags{fs: flag.NewFlagSet(name, handling)}
	fs := f.fs
	fs.StringVar(&f.configPath, "config", "", "TOML configuration file")
	fs.IntVar(&f.width, "width", 0, "screen width")
	fs.IntVar(&f.height, "height", 0, "screen height")
	fs.IntVar(&f.buffers, "buffers", 0, "number of frame buffers")
	fs.StringVar(&f.format, "format", "", "frame buffer format: bgr565, rgba8888 or bgra8888")
	fs.DurationVar(&f.tick, "tick", 0, "pause after every frame")
	fs.DurationVar(&f.refresh, "refresh", 0, "display refresh interval")
	fs.IntVar(&f.queue, "queue", 0, "command queue capacity")
	fs.StringVar(&f.pattern, "pattern", "", "pattern image file (PNG, JPEG, BMP or TIFF)")
	fs.StringVar(&f.snapshots, "snapshots", "", "directory for PNG frame dumps")
	fs.IntVar(&f.every, "every", 0, "dump every n-th frame")
	fs.StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn or error")
	fs.StringVar(&f.logFile, "log-file", "", "write logs to this file instead of stderr")
	fs.BoolVar(&f.headless, "headless", false, "run without the menu")
	fs.DurationVar(&f.duration, "duration", 0, "stop after this long")
	return f
}

func (f *cliFlags) parse(args []string) error {
	return f.fs.Parse(args)
}

// apply copies the flags given on the command line into cfg.
func (f *cliFlags) apply(cfg *config.Config) error {
	var err error
	f.fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "width":
			cfg.Display.Width = f.width
		case "height":
			cfg.Display.Height = f.height
		case "buffers":
			cfg.Display.Buffers = f.buffers
		case "format":
			cfg.Display.Format = f.format
		case "tick":
			cfg.Render.Tick = config.Duration(f.tick)
		case "refresh":
			cfg.Display.Refresh = config.Duration(f.refresh)
		case "queue":
			cfg.Render.Queue = f.queue
		case "pattern":
			cfg.Assets.PatternImage = f.pattern
		case "snapshots":
			cfg.Snapshot.Dir = f.snapshots
		case "every":
			cfg.Snapshot.Every = f.every
		case "log-level":
			if e := cfg.Log.Level.UnmarshalText([]byte(f.logLevel)); e != nil {
				err = fmt.Errorf("-log-level: %w", e)
			}
		}
	})
	if err != nil {
		return err
	}
	return cfg.Validate()
}
