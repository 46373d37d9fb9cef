// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package vgdemo

// Display is the display controller collaborator.
//
// SetFrameBuffer hands the controller the next buffer to scan out. The
// controller latches it at its next refresh and then invokes the callback
// registered with OnComplete, from its own goroutine. The callback carries
// no payload: it only says that the last hand-off took effect.
type Display interface {
	SetFrameBuffer(fb *FrameBuffer) error
	OnComplete(fn func())
}
