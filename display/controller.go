// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package display simulates a display controller.
//
// The controller has a one-slot address register. SetFrameBuffer writes
// the register; at the next refresh the controller latches it, scans the
// buffer out and calls the completion callback from its own goroutine, the
// way a vertical-blank interrupt would. Latched frames can be written to
// PNG files for inspection.
package display

import (
	"context"
	"errors"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gogpu/vgdemo"
)

var (
	// ErrBusy is returned by SetFrameBuffer while a previous hand-off has
	// not been latched.
	ErrBusy = errors.New("display: previous frame buffer not latched")

	// ErrNotAllocated is returned for a buffer without accelerator memory.
	ErrNotAllocated = errors.New("display: frame buffer not allocated")
)

// DefaultRefresh is the scan-out interval of a 60 Hz panel.
const DefaultRefresh = 16667 * time.Microsecond

// Option configures a Controller.
type Option func(*Controller)

// WithRefresh sets the scan-out interval. Zero latches every hand-off as
// soon as Run sees it.
func WithRefresh(d time.Duration) Option {
	return func(c *Controller) {
		if d >= 0 {
			c.refresh = d
		}
	}
}

// WithSnapshots writes every n-th latched frame to dir as a PNG file.
func WithSnapshots(dir string, n int) Option {
	return func(c *Controller) {
		c.snapDir = dir
		c.snapEvery = n
	}
}

// Controller is a simulated display controller. It implements
// vgdemo.Display.
type Controller struct {
	refresh   time.Duration
	snapDir   string
	snapEvery int

	mu       sync.Mutex
	next     *vgdemo.FrameBuffer
	shown    *vgdemo.FrameBuffer
	complete func()
	frames   uint64
	kick     chan struct{}
}

// New creates a controller. Nothing is latched until Run is started or
// Latch is called.
func New(opts ...Option) *Controller {
	c := &Controller{
		refresh: DefaultRefresh,
		kick:    make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// OnComplete registers the completion callback.
func (c *Controller) OnComplete(fn func()) {
	c.mu.Lock()
	c.complete = fn
	c.mu.Unlock()
}

// SetFrameBuffer writes fb's address into the controller register.
func (c *Controller) SetFrameBuffer(fb *vgdemo.FrameBuffer) error {
	if err := fb.Validate(); err != nil {
		return fmt.Errorf("display: %w", err)
	}
	if !fb.Allocated() {
		return ErrNotAllocated
	}
	c.mu.Lock()
	if c.next != nil {
		c.mu.Unlock()
		return ErrBusy
	}
	c.next = fb
	c.mu.Unlock()

	vgdemo.Logger().Debug("display: frame buffer set", "address", fmt.Sprintf("%#08x", fb.Address))
	select {
	case c.kick <- struct{}{}:
	default:
	}
	return nil
}

// Latch performs one refresh: a pending hand-off becomes the shown buffer
// and the completion callback runs. It reports whether anything was
// latched.
func (c *Controller) Latch() bool {
	c.mu.Lock()
	fb := c.next
	if fb == nil {
		c.mu.Unlock()
		return false
	}
	c.next = nil
	c.shown = fb
	c.frames++
	n := c.frames
	done := c.complete
	c.mu.Unlock()

	if c.snapDir != "" && c.snapEvery > 0 && n%uint64(c.snapEvery) == 0 {
		if err := c.snapshot(fb, n); err != nil {
			vgdemo.Logger().Warn("display: snapshot failed", "frame", n, "err", err)
		}
	}
	if done != nil {
		done()
	}
	return true
}

// Run scans out until ctx ends. It returns nil on cancellation.
func (c *Controller) Run(ctx context.Context) error {
	if c.refresh == 0 {
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-c.kick:
				c.Latch()
			}
		}
	}
	t := time.NewTicker(c.refresh)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
			c.Latch()
		}
	}
}

// Shown returns the buffer currently scanned out.
func (c *Controller) Shown() *vgdemo.FrameBuffer {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.shown
}

// Frames returns the number of latched hand-offs.
func (c *Controller) Frames() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.frames
}

// snapshot writes fb as frame-NNNNNN.png. It runs before the completion
// callback, while the renderer cannot touch fb.
func (c *Controller) snapshot(fb *vgdemo.FrameBuffer, n uint64) error {
	if err := os.MkdirAll(c.snapDir, 0o755); err != nil {
		return err
	}
	name := filepath.Join(c.snapDir, fmt.Sprintf("frame-%06d.png", n))
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := png.Encode(f, fb.Snapshot()); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
