// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package vgdemo defines the shared types of an event-driven rendering
// harness for a vector-graphics accelerator.
//
// # Overview
//
// The harness runs a menu of draw programs against a GPU capability and a
// Display collaborator. A render loop draws one frame per tick into the
// back buffer of a double-buffered swap chain, hands the finished buffer to
// the display controller, and waits for the controller to latch it before
// the buffer is drawn into again.
//
// This package holds the vocabulary every layer shares:
//   - Color, Matrix, Point, Rect: values passed to the accelerator
//   - Path and DecodePathData: vector paths and their opcode streams
//   - FrameBuffer: pixel memory in one of the accelerator's formats
//   - GPU and Display: the collaborator interfaces
//
// # Layout
//
//   - demo: draw programs, the cleanup recorder and the animation state
//   - event: the bounded command queue between the menu and the loop
//   - render: the Idle/Active/Halted render loop
//   - surface: the frame buffer swapper
//   - display: a refresh-driven display controller
//   - soft: a software GPU used by the command and the tests
//   - menu, config, stats, assets: the outer surfaces
//
// # Coordinate System
//
// Origin (0,0) is the top-left pixel, X increases right and Y increases
// down. Angles are in degrees and turn clockwise on screen.
//
// # Logging
//
// Nothing is logged by default. Call SetLogger to route the harness's
// slog output somewhere.
package vgdemo
