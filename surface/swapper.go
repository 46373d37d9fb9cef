// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/gogpu/vgdemo"
)

// ErrTooFewBuffers is returned by New when fewer than two buffers are given.
var ErrTooFewBuffers = errors.New("surface: swapper needs at least two buffers")

// none marks an empty buffer slot.
const none = -1

// Stats reports swapper activity.
type Stats struct {
	Swaps       uint64
	Completions uint64
	// Stray counts completions that arrived with no swap pending.
	Stray uint64
}

// Swapper rotates frame buffers between the renderer and a display.
//
// Swap and Acquire are called from the render goroutine; Complete is called
// by the display from any goroutine.
type Swapper struct {
	display vgdemo.Display
	buffers []*vgdemo.FrameBuffer

	mu       sync.Mutex
	current  int           // render target index
	queued   int           // handed to the display, not yet latched
	onScreen int           // latched by the display
	pending  bool          // a swap awaits completion
	idle     chan struct{} // closed when pending clears
	stats    Stats
}

// New creates a swapper over buffers and registers its completion handler
// with d. The first buffer is the initial render target.
func New(d vgdemo.Display, buffers ...*vgdemo.FrameBuffer) (*Swapper, error) {
	if len(buffers) < 2 {
		return nil, ErrTooFewBuffers
	}
	for i, fb := range buffers {
		if err := fb.Validate(); err != nil {
			return nil, fmt.Errorf("surface: buffer %d: %w", i, err)
		}
	}
	idle := make(chan struct{})
	close(idle)
	s := &Swapper{
		display:  d,
		buffers:  buffers,
		queued:   none,
		onScreen: none,
		idle:     idle,
	}
	d.OnComplete(s.Complete)
	return s, nil
}

// Len returns the number of buffers.
func (s *Swapper) Len() int {
	return len(s.buffers)
}

// Buffers returns the buffers in rotation order.
func (s *Swapper) Buffers() []*vgdemo.FrameBuffer {
	return s.buffers
}

// Current returns the render target without waiting for it to be free.
func (s *Swapper) Current() *vgdemo.FrameBuffer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buffers[s.current]
}

// Pending reports whether a swap is waiting for its completion.
func (s *Swapper) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending
}

// Stats returns a snapshot of the swapper counters.
func (s *Swapper) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats
}

// wait blocks until busy reports false. busy is evaluated with s.mu held,
// and s.mu is held when wait returns nil.
func (s *Swapper) wait(ctx context.Context, busy func() bool) error {
	s.mu.Lock()
	for busy() {
		ch := s.idle
		s.mu.Unlock()
		select {
		case <-ch:
		case <-ctx.Done():
			return ctx.Err()
		}
		s.mu.Lock()
	}
	return nil
}

// targetBusy reports whether the render target is still referenced by the
// display. The caller holds s.mu.
func (s *Swapper) targetBusy() bool {
	return s.pending && (s.current == s.queued || s.current == s.onScreen)
}

// Acquire returns the render target, blocking while the display may still
// read it.
func (s *Swapper) Acquire(ctx context.Context) (*vgdemo.FrameBuffer, error) {
	if err := s.wait(ctx, s.targetBusy); err != nil {
		return nil, err
	}
	defer s.mu.Unlock()
	return s.buffers[s.current], nil
}

// Swap hands the render target to the display and advances to the next
// buffer. It first waits for the previous swap's completion.
func (s *Swapper) Swap(ctx context.Context) error {
	if err := s.wait(ctx, func() bool { return s.pending }); err != nil {
		return err
	}
	idx := s.current
	fb := s.buffers[idx]
	s.pending = true
	s.queued = idx
	s.idle = make(chan struct{})
	s.mu.Unlock()

	// The display may complete synchronously, so it is called unlocked.
	if err := s.display.SetFrameBuffer(fb); err != nil {
		s.mu.Lock()
		if s.pending && s.queued == idx {
			s.pending = false
			s.queued = none
			close(s.idle)
		}
		s.mu.Unlock()
		return fmt.Errorf("surface: hand off %v: %w", fb, err)
	}

	s.mu.Lock()
	s.current = (idx + 1) % len(s.buffers)
	s.stats.Swaps++
	s.mu.Unlock()
	vgdemo.Logger().Debug("surface: swap", "buffer", idx, "address", fmt.Sprintf("%#08x", fb.Address))
	return nil
}

// Complete records that the display latched the last buffer handed to it.
// It is the display's completion callback. A completion with no swap
// pending is ignored.
func (s *Swapper) Complete() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.pending {
		s.stats.Stray++
		vgdemo.Logger().Warn("surface: completion without pending swap")
		return
	}
	s.pending = false
	s.onScreen = s.queued
	s.queued = none
	s.stats.Completions++
	close(s.idle)
}
