// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"time"

	"github.com/gogpu/vgdemo/demo"
	"github.com/gogpu/vgdemo/stats"
)

// DefaultTick is the pause after every tick.
const DefaultTick = 16 * time.Millisecond

// Option configures a Loop.
type Option func(*Loop)

// WithTick sets the pause after every tick. Zero runs ticks back to back.
func WithTick(d time.Duration) Option {
	return func(l *Loop) {
		if d >= 0 {
			l.tick = d
		}
	}
}

// WithFPS counts every presented frame with c.
func WithFPS(c *stats.Counter) Option {
	return func(l *Loop) {
		l.fps = c
	}
}

// WithStateHook calls fn on every state change, from the render goroutine.
func WithStateHook(fn func(State, demo.Demo)) Option {
	return func(l *Loop) {
		l.hook = fn
	}
}
