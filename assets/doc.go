// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package assets builds the paths and images drawn by the demo programs.
//
// Shapes are stored as accelerator opcode streams and decoded with
// vgdemo.DecodePathData. Icons are rasterized with golang.org/x/image/vector
// and labeled with the Go Regular font; the pattern image is generated, or
// loaded from a PNG, JPEG, BMP or TIFF file.
package assets
