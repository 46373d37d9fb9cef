// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package event carries demo-selection commands from the input side to the
// render loop.
//
// The Dispatcher is a bounded queue with a non-blocking producer side and
// a non-blocking consumer side, plus a cancellation flag. The input
// goroutine calls Submit and Cancel; the render goroutine calls Poll and
// TakeCancel once per tick.
package event

import (
	"sync/atomic"

	"github.com/gogpu/vgdemo"
	"github.com/gogpu/vgdemo/demo"
)

// DefaultCapacity is the queue size used when New is given zero.
const DefaultCapacity = 10

// Command selects a demo. Payload carries the raw input token.
type Command struct {
	Demo    demo.Demo
	Payload byte

	seq uint64 // submission order, assigned by Submit
}

// Dispatcher is a bounded command queue and cancellation flag. It is safe
// for one producer and one consumer goroutine.
//
// Cancellations are ordered against submissions: a cancel remembers the
// last command submitted before it, so the loop can tell a cancel aimed
// at the command it just took from one left over from earlier.
type Dispatcher struct {
	queue chan Command
	seq   atomic.Uint64
	// cancel holds 1 + the sequence number current when Cancel was
	// called, or 0 when no cancellation is pending.
	cancel  atomic.Uint64
	dropped atomic.Uint64
	ignored atomic.Uint64
}

// New creates a dispatcher holding up to capacity commands. A capacity of
// zero or less selects DefaultCapacity.
func New(capacity int) *Dispatcher {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Dispatcher{queue: make(chan Command, capacity)}
}

// Submit enqueues c without blocking. It reports false, and drops c, when
// the queue is full.
func (d *Dispatcher) Submit(c Command) bool {
	c.seq = d.seq.Add(1)
	select {
	case d.queue <- c:
		return true
	default:
		d.dropped.Add(1)
		vgdemo.Logger().Warn("event: queue full, command dropped", "demo", c.Demo, "payload", c.Payload)
		return false
	}
}

// Poll dequeues the next command with a selectable demo without blocking.
// Commands naming anything else are discarded on the way. It reports false
// when the queue holds no valid command.
func (d *Dispatcher) Poll() (Command, bool) {
	for {
		select {
		case c := <-d.queue:
			if !c.Demo.Valid() {
				d.ignored.Add(1)
				continue
			}
			return c, true
		default:
			return Command{}, false
		}
	}
}

// Cancel asks the active demo to stop at the next tick boundary.
// It applies to every command submitted before it.
func (d *Dispatcher) Cancel() {
	d.cancel.Store(d.seq.Load() + 1)
}

// TakeCancel reports and clears a pending cancellation.
func (d *Dispatcher) TakeCancel() bool {
	return d.cancel.Swap(0) != 0
}

// ClearCancel discards a pending cancellation.
func (d *Dispatcher) ClearCancel() {
	d.cancel.Store(0)
}

// DiscardStale discards a pending cancellation raised before c was
// submitted. A cancellation raised after c stays pending.
func (d *Dispatcher) DiscardStale(c Command) {
	for {
		v := d.cancel.Load()
		if v == 0 || v-1 >= c.seq {
			return
		}
		if d.cancel.CompareAndSwap(v, 0) {
			return
		}
	}
}

// Len returns the number of queued commands.
func (d *Dispatcher) Len() int { return len(d.queue) }

// Cap returns the queue capacity.
func (d *Dispatcher) Cap() int { return cap(d.queue) }

// Dropped returns the number of commands rejected by a full queue.
func (d *Dispatcher) Dropped() uint64 { return d.dropped.Load() }

// Ignored returns the number of dequeued commands with an invalid demo.
func (d *Dispatcher) Ignored() uint64 { return d.ignored.Load() }
