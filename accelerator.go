// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package vgdemo

import (
	"errors"
	"fmt"
)

// Accelerator status errors. A GPU implementation wraps these in an
// *OpError naming the call that failed.
var (
	// ErrInvalidArgument indicates a nil or malformed argument.
	ErrInvalidArgument = errors.New("vgdemo: invalid argument")

	// ErrOutOfMemory indicates the accelerator heap is exhausted.
	ErrOutOfMemory = errors.New("vgdemo: out of accelerator memory")

	// ErrNotAligned indicates a buffer whose memory violates the
	// accelerator's alignment requirement.
	ErrNotAligned = errors.New("vgdemo: buffer not aligned")

	// ErrNotSupported indicates a request outside the accelerator's
	// feature set.
	ErrNotSupported = errors.New("vgdemo: not supported")

	// ErrClosed indicates a call after Close.
	ErrClosed = errors.New("vgdemo: accelerator closed")
)

// OpError records a failed accelerator call.
type OpError struct {
	// Op is the name of the failing call, e.g. "draw" or "finish".
	Op string
	// Target describes the buffer or path involved, if any.
	Target string
	Err    error
}

func (e *OpError) Error() string {
	if e.Target != "" {
		return fmt.Sprintf("vgdemo: %s %s: %v", e.Op, e.Target, e.Err)
	}
	return fmt.Sprintf("vgdemo: %s: %v", e.Op, e.Err)
}

func (e *OpError) Unwrap() error { return e.Err }

// GPU is the vector-graphics accelerator capability the harness draws
// through.
//
// Drawing calls queue work; Finish submits the queued work and blocks until
// the accelerator reports completion. Implementations are used from a
// single goroutine; only their internal completion path runs elsewhere.
type GPU interface {
	// Allocate assigns accelerator memory and an address to buf.
	Allocate(buf *FrameBuffer) error

	// Free releases the memory of a buffer obtained from Allocate.
	Free(buf *FrameBuffer) error

	// Clear fills rect of target (the whole buffer when rect is nil) with c.
	Clear(target *FrameBuffer, rect *Rect, c Color) error

	// Draw fills path, transformed by m, into target.
	Draw(target *FrameBuffer, path *Path, rule FillRule, m *Matrix, blend BlendMode, c Color) error

	// Blit composites source, transformed by m, onto target. A non-zero
	// color multiplies the source.
	Blit(target, source *FrameBuffer, m *Matrix, blend BlendMode, c Color, filter Filter) error

	// BlitRect is Blit restricted to the rect region of source, whose
	// origin is placed at m's origin.
	BlitRect(target, source *FrameBuffer, rect *Rect, m *Matrix, blend BlendMode, c Color, filter Filter) error

	// DrawPattern fills path, transformed by pathMatrix, with the pattern
	// image transformed by patternMatrix. Where the image does not reach,
	// mode decides the result; PatternColor uses patternColor.
	DrawPattern(target *FrameBuffer, path *Path, rule FillRule, pathMatrix *Matrix,
		pattern *FrameBuffer, patternMatrix *Matrix, blend BlendMode,
		mode PatternMode, patternColor, c Color, filter Filter) error

	// Finish flushes queued work and waits for it to complete.
	Finish() error

	// ClearPath releases the accelerator copy of path. Releasing a path
	// that was never uploaded, or twice, is a no-op.
	ClearPath(path *Path) error

	// Close tears down the accelerator context and all its memory.
	// Close is idempotent.
	Close() error
}
