// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package demo holds the draw programs and the state they share.
//
// Each selectable Demo maps to one Program through ProgramFor. A program
// is a fixed pipeline: clear the render target, compose shapes and images
// through the accelerator, flush, and request a swap. Programs mark their
// progress with stages; the Recorder remembers which paths each stage of
// each demo used, so that on the first failure the Cleaner can release
// exactly those paths and tear the accelerator down.
//
// All mutable state lives in a Frame passed to every program: the render
// target and scratch buffer, the animation transform, the recorder and the
// clock. A Frame belongs to the render goroutine.
package demo
