// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package demo

import (
	"context"
	"errors"
	"fmt"

	"github.com/gogpu/vgdemo"
)

// ErrUnknownDemo is returned by Run for a value with no program.
var ErrUnknownDemo = errors.New("demo: unknown demo")

// Program composes one frame into f.Target and presents it.
type Program func(ctx context.Context, f *Frame) error

// ProgramFor returns the program of d. It reports false for values outside
// the defined demos.
func ProgramFor(d Demo) (Program, bool) {
	switch d {
	case Default:
		return drawDefault, true
	case FillRule:
		return drawFillRule, true
	case AlphaBlend:
		return drawAlphaBlend, true
	case Blit:
		return drawBlit, true
	case Pattern:
		return drawPattern, true
	case Filter:
		return drawFilter, true
	}
	return nil, false
}

// FailureError reports a composition failure. Err is the failing call's
// error, usually a *vgdemo.OpError.
type FailureError struct {
	Demo  Demo
	Stage Stage
	Err   error
}

func (e *FailureError) Error() string {
	return fmt.Sprintf("demo: %v failed at stage %d: %v", e.Demo, e.Stage, e.Err)
}

func (e *FailureError) Unwrap() error { return e.Err }

// Run runs one attempt of d on f.
//
// The attempt starts at stage 0 with the render target acquired from
// f.Surface. If the program fails, Run calls f.Cleaner exactly once with
// the highest stage reached and returns a *FailureError. Errors caused by
// ctx ending are returned unchanged and trigger no cleanup.
func Run(ctx context.Context, d Demo, f *Frame) error {
	prog, ok := ProgramFor(d)
	if !ok {
		return fmt.Errorf("%w: %v", ErrUnknownDemo, d)
	}
	f.Recorder.Begin(d)

	target, err := f.Surface.Acquire(ctx)
	if err != nil {
		return err
	}
	f.Target = target

	err = prog(ctx, f)
	if err == nil {
		return nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
		return err
	}

	stage := f.Recorder.Stage()
	log := vgdemo.Logger()
	log.Error("demo: composition failed", "demo", d, "stage", stage, "err", err)
	if cerr := f.Cleaner.Cleanup(d, stage); cerr != nil {
		log.Warn("demo: cleanup incomplete", "demo", d, "err", cerr)
	}
	return &FailureError{Demo: d, Stage: stage, Err: err}
}

// present flushes the accelerator and swaps the target to the display.
func present(ctx context.Context, f *Frame) error {
	if err := f.GPU.Finish(); err != nil {
		return err
	}
	return f.Surface.Swap(ctx)
}
