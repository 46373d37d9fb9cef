// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"errors"
	"flag"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/gogpu/vgdemo/config"
)

func parseFlags(t *testing.T, args ...string) *cliFlags {
	t.Helper()
	f := newFlags("vgdemo", flag.ContinueOnError)
	f.fs.SetOutput(io.Discard)
	if err := f.parse(args); err != nil {
		t.Fatalf("parse(%q): %v", args, err)
	}
	return f
}

func TestFlagsOverrideGiven(t *testing.T) {
	cfg := config.Default()
	cfg.Display.Width = 640
	f := parseFlags(t, "-height", "240", "-tick", "5ms", "-log-level", "debug", "-format", "rgba8888")
	if err := f.apply(&cfg); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if cfg.Display.Width != 640 {
		t.Errorf("width = %d, want 640 kept from the file", cfg.Display.Width)
	}
	if cfg.Display.Height != 240 {
		t.Errorf("height = %d, want 240", cfg.Display.Height)
	}
	if cfg.Render.Tick.Std() != 5*time.Millisecond {
		t.Errorf("tick = %v, want 5ms", cfg.Render.Tick.Std())
	}
	if cfg.Log.Level != slog.LevelDebug {
		t.Errorf("log level = %v, want debug", cfg.Log.Level)
	}
	if cfg.Display.Format != "rgba8888" {
		t.Errorf("format = %q", cfg.Display.Format)
	}
}

func TestFlagsRejectBadValues(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		invalid bool // wraps config.ErrInvalid
	}{
		{"log level", []string{"-log-level", "loud"}, false},
		{"queue", []string{"-queue", "0"}, true},
		{"format", []string{"-format", "rgb332"}, true},
		{"buffers", []string{"-buffers", "1"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			err := parseFlags(t, tt.args...).apply(&cfg)
			if err == nil {
				t.Fatal("apply accepted a bad value")
			}
			if got := errors.Is(err, config.ErrInvalid); got != tt.invalid {
				t.Errorf("apply error = %v, ErrInvalid %v, want %v", err, got, tt.invalid)
			}
		})
	}
}

func TestFlagsNoneGiven(t *testing.T) {
	cfg := config.Default()
	if err := parseFlags(t).apply(&cfg); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if cfg != config.Default() {
		t.Errorf("apply without flags changed the config: %+v", cfg)
	}
}
