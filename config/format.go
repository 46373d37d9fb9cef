// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package config

import "github.com/gogpu/vgdemo"

var formats = map[string]vgdemo.Format{
	"bgr565":   vgdemo.FormatBGR565,
	"rgba8888": vgdemo.FormatRGBA8888,
	"bgra8888": vgdemo.FormatBGRA8888,
}

// PixelFormat returns the frame buffer format named by Display.Format.
func (d Display) PixelFormat() (vgdemo.Format, bool) {
	f, ok := formats[d.Format]
	return f, ok
}
