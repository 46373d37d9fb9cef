// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package vgdemo

import "image/color"

// Color is a 32-bit color word in the accelerator's native layout.
// Bits 0-7 hold red, 8-15 green, 16-23 blue and 24-31 alpha, so the
// hexadecimal form reads 0xAABBGGRR. Components are not premultiplied.
type Color uint32

// Colors used by the demos.
const (
	// White has a zero alpha byte. Opaque targets ignore alpha on clear,
	// so it still clears to white there.
	White Color = 0x00FFFFFF
	Teal  Color = 0xFF808000
	Grey  Color = 0x80808080
	Black Color = 0xFF000000
)

// ABGR assembles a Color from its components.
func ABGR(a, b, g, r uint8) Color {
	return Color(uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r))
}

// RGBA8 assembles a Color from components given in the usual order.
func RGBA8(r, g, b, a uint8) Color {
	return ABGR(a, b, g, r)
}

// R returns the red component.
func (c Color) R() uint8 { return uint8(c) }

// G returns the green component.
func (c Color) G() uint8 { return uint8(c >> 8) }

// B returns the blue component.
func (c Color) B() uint8 { return uint8(c >> 16) }

// A returns the alpha component.
func (c Color) A() uint8 { return uint8(c >> 24) }

// NRGBA returns the color as a non-premultiplied standard color.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R(), G: c.G(), B: c.B(), A: c.A()}
}

// RGBA implements color.Color. The result is alpha-premultiplied, as the
// interface requires.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// Opaque returns c with its alpha forced to 0xFF.
func (c Color) Opaque() Color {
	return c | 0xFF000000
}

// FromColor converts a standard color.Color to a Color.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA8(n.R, n.G, n.B, n.A)
}
