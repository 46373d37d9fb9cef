// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface arbitrates frame buffers between the renderer and the
// display controller.
//
// A Swapper owns two or more frame buffers and rotates through them. One
// buffer at a time is the render target; the others are either latched by
// the display or waiting to be. Swap hands the finished target to the
// display and advances to the next buffer; the display reports that it
// latched the buffer by calling Complete from its own goroutine.
//
// # Pending gate
//
// Between Swap and the matching Complete the swapper is pending. A second
// Swap while pending blocks until the completion arrives, so the display is
// never handed two buffers at once. Completions that arrive with nothing
// pending are ignored.
//
// # Buffer ownership
//
// Acquire returns the render target once it is safe to write: a buffer
// handed to the display on one swap stays untouched until the following
// swap completes. With two buffers that means Acquire waits for the
// outstanding completion; with three it usually returns at once.
//
// Waiting uses a channel that Complete closes. Waits have no timeout; only
// the context passed to Swap or Acquire can abort them.
//
// # Usage
//
//	sw, err := surface.New(display, fb0, fb1)
//	if err != nil {
//		return err
//	}
//	for {
//		target, err := sw.Acquire(ctx)
//		if err != nil {
//			return err
//		}
//		draw(target)
//		if err := sw.Swap(ctx); err != nil {
//			return err
//		}
//	}
package surface
