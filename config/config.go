// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package config holds the harness settings.
//
// Settings start from Default, may be read from a TOML file, and are then
// overridden by command-line flags in cmd/vgdemo:
//
//	[display]
//	width = 800
//	height = 480
//	buffers = 2
//	refresh = "16.667ms"
//
//	[render]
//	tick = "16ms"
//	queue = 10
//
//	[log]
//	level = "info"
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// ErrInvalid is returned by Validate.
var ErrInvalid = errors.New("config: invalid setting")

// Duration is a time.Duration written as a string such as "16ms".
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// Std returns d as a time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// Display configures the frame buffers and the simulated controller.
type Display struct {
	Width   int      `toml:"width"`
	Height  int      `toml:"height"`
	Buffers int      `toml:"buffers"`
	Refresh Duration `toml:"refresh"`
	// Format is one of "bgr565", "rgba8888" or "bgra8888".
	Format string `toml:"format"`
}

// Render configures the render loop.
type Render struct {
	Tick            Duration `toml:"tick"`
	Queue           int      `toml:"queue"`
	HighlightPeriod Duration `toml:"highlight_period"`
	FPSWindow       int      `toml:"fps_window"`
}

// Accelerator configures the software accelerator.
type Accelerator struct {
	HeapSize  int     `toml:"heap_size"`
	Alignment int     `toml:"alignment"`
	Tolerance float64 `toml:"tolerance"`
}

// Assets configures asset loading.
type Assets struct {
	// PatternImage replaces the generated pattern image when set.
	PatternImage string `toml:"pattern_image"`
}

// Snapshot configures PNG dumps of latched frames.
type Snapshot struct {
	Dir   string `toml:"dir"`
	Every int    `toml:"every"`
}

// Log configures logging.
type Log struct {
	Level slog.Level `toml:"level"`
}

// Config is the complete configuration.
type Config struct {
	Display     Display     `toml:"display"`
	Render      Render      `toml:"render"`
	Accelerator Accelerator `toml:"accelerator"`
	Assets      Assets      `toml:"assets"`
	Snapshot    Snapshot    `toml:"snapshot"`
	Log         Log         `toml:"log"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Display: Display{
			Width:   800,
			Height:  480,
			Buffers: 2,
			Refresh: Duration(16667 * time.Microsecond),
			Format:  "bgr565",
		},
		Render: Render{
			Tick:            Duration(16 * time.Millisecond),
			Queue:           10,
			HighlightPeriod: Duration(5 * time.Second),
			FPSWindow:       60,
		},
		Accelerator: Accelerator{
			HeapSize:  8 << 20,
			Alignment: 64,
			Tolerance: 0.25,
		},
		Snapshot: Snapshot{Every: 60},
		Log:      Log{Level: slog.LevelInfo},
	}
}

// Decode reads TOML from r over the defaults. Unknown keys are errors.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return Config{}, fmt.Errorf("config: line %d column %d: %w", row, col, err)
		}
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// Load reads the TOML file at path. An empty path returns Default.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return Decode(bytes.NewReader(data))
}

// Encode writes cfg as TOML.
func Encode(w io.Writer, cfg Config) error {
	return toml.NewEncoder(w).Encode(cfg)
}

// Validate reports the first impossible setting.
func (c Config) Validate() error {
	switch {
	case c.Display.Width < 2 || c.Display.Height < 2:
		return fmt.Errorf("%w: display size %dx%d", ErrInvalid, c.Display.Width, c.Display.Height)
	case c.Display.Buffers < 2:
		return fmt.Errorf("%w: %d frame buffers, need at least 2", ErrInvalid, c.Display.Buffers)
	case c.Display.Refresh < 0:
		return fmt.Errorf("%w: negative refresh interval", ErrInvalid)
	case c.Render.Tick < 0:
		return fmt.Errorf("%w: negative tick", ErrInvalid)
	case c.Render.Queue < 1:
		return fmt.Errorf("%w: queue capacity %d", ErrInvalid, c.Render.Queue)
	case c.Render.HighlightPeriod <= 0:
		return fmt.Errorf("%w: highlight period must be positive", ErrInvalid)
	case c.Render.FPSWindow < 1:
		return fmt.Errorf("%w: fps window %d", ErrInvalid, c.Render.FPSWindow)
	case c.Accelerator.HeapSize <= 0:
		return fmt.Errorf("%w: heap size %d", ErrInvalid, c.Accelerator.HeapSize)
	case c.Accelerator.Alignment <= 0 || c.Accelerator.Alignment&(c.Accelerator.Alignment-1) != 0:
		return fmt.Errorf("%w: alignment %d is not a power of two", ErrInvalid, c.Accelerator.Alignment)
	case c.Accelerator.Tolerance <= 0:
		return fmt.Errorf("%w: tolerance %v", ErrInvalid, c.Accelerator.Tolerance)
	case c.Snapshot.Dir != "" && c.Snapshot.Every < 1:
		return fmt.Errorf("%w: snapshot interval %d", ErrInvalid, c.Snapshot.Every)
	}
	if _, ok := formats[c.Display.Format]; !ok {
		return fmt.Errorf("%w: unknown pixel format %q", ErrInvalid, c.Display.Format)
	}
	return nil
}
