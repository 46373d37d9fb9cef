// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render drives the demo programs.
//
// A Loop runs one program per tick on the render goroutine. It is Idle,
// running the default animation, until a command arrives from the event
// dispatcher; it then stays Active on the selected demo until the input
// side cancels. Cancellation is observed once per tick, before the frame
// is composed, so a frame is never abandoned halfway.
//
// The first composition failure is final: the demo package has already
// released the failing demo's paths and closed the accelerator, so the
// loop enters the Halted state and refuses further work.
//
// # Usage
//
//	loop := render.New(frame, dispatcher, render.WithTick(16*time.Millisecond))
//	if err := loop.Run(ctx); err != nil {
//		var fe *demo.FailureError
//		if errors.As(err, &fe) {
//			log.Printf("halted in %v at stage %d", fe.Demo, fe.Stage)
//		}
//	}
package render
