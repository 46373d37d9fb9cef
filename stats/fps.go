// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package stats measures the frame rate of the render loop.
package stats

import (
	"io"
	"sync"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/vgdemo"
)

// DefaultWindow is the number of frames between reports.
const DefaultWindow = 60

// Option configures a Counter.
type Option func(*Counter)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(c *Counter) {
		c.now = now
	}
}

// WithLanguage selects the number formatting of reports.
func WithLanguage(tag language.Tag) Option {
	return func(c *Counter) {
		c.printer = message.NewPrinter(tag)
	}
}

// Counter counts presented frames and reports the rate once per window.
type Counter struct {
	window  int
	out     io.Writer
	now     func() time.Time
	printer *message.Printer

	mu     sync.Mutex
	frames int
	start  time.Time
	last   float64
	total  uint64
}

// New creates a counter reporting to out every window frames. A nil out
// only records the rate; window <= 0 selects DefaultWindow.
func New(window int, out io.Writer, opts ...Option) *Counter {
	if window <= 0 {
		window = DefaultWindow
	}
	c := &Counter{
		window:  window,
		out:     out,
		now:     time.Now,
		printer: message.NewPrinter(language.English),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.start = c.now()
	return c
}

// Frame counts one presented frame. At the end of a window it writes an
// "FPS: n" line and returns the rate with ok true. Lines end in CRLF so
// they stay aligned on a terminal in raw mode.
func (c *Counter) Frame() (fps float64, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.total++
	c.frames++
	if c.frames < c.window {
		return 0, false
	}
	now := c.now()
	elapsed := now.Sub(c.start)
	frames := c.frames
	c.frames = 0
	c.start = now
	if elapsed <= 0 {
		return 0, false
	}

	fps = float64(frames) / elapsed.Seconds()
	c.last = fps
	if c.out != nil {
		c.printer.Fprintf(c.out, "FPS: %.2f\r\n", fps)
	}
	vgdemo.Logger().Debug("stats: frame rate", "fps", fps, "frames", frames, "elapsed", elapsed)
	return fps, true
}

// Last returns the most recently reported rate.
func (c *Counter) Last() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.last
}

// Total returns the number of frames counted.
func (c *Counter) Total() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.total
}
