// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package soft provides a software vector-graphics accelerator.
//
// GPU implements [vgdemo.GPU] on the CPU. It behaves like the hardware it
// stands in for: buffers live in an accelerator heap with aligned
// addresses, drawing calls are recorded into a command buffer, and Finish
// hands the command buffer to an execution goroutine and blocks until that
// goroutine signals completion.
//
// Paths are filled with a scanline rasterizer sampling pixel centers
// (internal/raster), colors are combined on premultiplied values
// (internal/blend), and image transforms are resampled with
// golang.org/x/image/draw.
//
// Example:
//
//	gpu := soft.New(soft.WithHeapSize(8 << 20))
//	defer gpu.Close()
//
//	fb := vgdemo.NewFrameBuffer(800, 480, vgdemo.FormatBGR565)
//	if err := gpu.Allocate(fb); err != nil {
//		return err
//	}
//	_ = gpu.Clear(fb, nil, vgdemo.White)
//	_ = gpu.Draw(fb, path, vgdemo.FillRuleEvenOdd, &m, vgdemo.BlendSrcOver, vgdemo.Teal)
//	if err := gpu.Finish(); err != nil {
//		return err
//	}
package soft
