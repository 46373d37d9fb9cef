// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gogpu/vgdemo"
	"github.com/gogpu/vgdemo/demo"
	"github.com/gogpu/vgdemo/event"
	"github.com/gogpu/vgdemo/stats"
)

// ErrHalted is returned by Step and Run once a composition failure has
// halted the loop.
var ErrHalted = errors.New("render: loop halted")

// State is the service state of a Loop.
type State int

const (
	// StateIdle runs the default animation and polls for commands.
	StateIdle State = iota
	// StateActive runs the selected demo until cancelled.
	StateActive
	// StateHalted is terminal.
	StateHalted
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateActive:
		return "active"
	case StateHalted:
		return "halted"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Loop is the cooperative render loop. Its methods must be called from a
// single goroutine.
type Loop struct {
	frame  *demo.Frame
	events *event.Dispatcher
	tick   time.Duration
	fps    *stats.Counter
	hook   func(State, demo.Demo)

	state  State
	active demo.Demo
	err    error
	ticks  uint64
}

// New creates an idle loop drawing into f and fed by events.
func New(f *demo.Frame, events *event.Dispatcher, opts ...Option) *Loop {
	l := &Loop{
		frame:  f,
		events: events,
		tick:   DefaultTick,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// State returns the current state.
func (l *Loop) State() State { return l.state }

// Active returns the demo drawn by the next tick.
func (l *Loop) Active() demo.Demo { return l.active }

// Err returns the failure that halted the loop, or nil.
func (l *Loop) Err() error { return l.err }

// Ticks returns the number of completed ticks.
func (l *Loop) Ticks() uint64 { return l.ticks }

func (l *Loop) setState(s State, d demo.Demo) {
	l.state, l.active = s, d
	if l.hook != nil {
		l.hook(s, d)
	}
}

// Step runs one tick: it applies a pending command or cancellation, then
// composes and presents one frame of the current demo.
//
// A composition failure halts the loop and is returned; later calls
// return ErrHalted. An error caused by ctx ending is returned without
// halting.
func (l *Loop) Step(ctx context.Context) error {
	log := vgdemo.Logger()
	switch l.state {
	case StateHalted:
		return ErrHalted
	case StateIdle:
		if c, ok := l.events.Poll(); ok {
			l.events.DiscardStale(c)
			l.setState(StateActive, c.Demo)
			log.Info("render: demo activated", "demo", c.Demo)
		}
	case StateActive:
		if l.events.TakeCancel() {
			log.Info("render: demo cancelled", "demo", l.active)
			l.frame.Anim.Reset()
			l.setState(StateIdle, demo.Default)
		}
	}

	if err := demo.Run(ctx, l.active, l.frame); err != nil {
		if ctx.Err() != nil && errors.Is(err, ctx.Err()) {
			return err
		}
		l.err = err
		l.setState(StateHalted, l.active)
		return err
	}
	l.ticks++
	if l.fps != nil {
		l.fps.Frame()
	}
	return nil
}

// Run ticks until ctx ends or a composition failure halts the loop. It
// returns nil when ctx ends.
func (l *Loop) Run(ctx context.Context) error {
	log := vgdemo.Logger()
	log.Info("render: loop started", "tick", l.tick)
	for {
		if err := l.Step(ctx); err != nil {
			if ctx.Err() != nil && errors.Is(err, ctx.Err()) {
				return nil
			}
			log.Error("render: loop halted", "err", err)
			return err
		}
		if err := sleep(ctx, l.tick); err != nil {
			return nil
		}
	}
}

// sleep pauses for d or until ctx ends.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
