// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package vgdemo

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

// Format is the pixel layout of a FrameBuffer.
type Format uint8

const (
	// FormatBGR565 packs a pixel into a little-endian 16-bit word with blue
	// in bits 11-15, green in bits 5-10 and red in bits 0-4. It has no
	// alpha channel; reads return opaque pixels.
	FormatBGR565 Format = iota
	// FormatRGBA8888 stores bytes R, G, B, A.
	FormatRGBA8888
	// FormatBGRA8888 stores bytes B, G, R, A.
	FormatBGRA8888
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatBGR565:
		return "BGR565"
	case FormatRGBA8888:
		return "RGBA8888"
	case FormatBGRA8888:
		return "BGRA8888"
	default:
		return fmt.Sprintf("Format(%d)", uint8(f))
	}
}

// BytesPerPixel returns the storage size of one pixel, or 0 for an unknown
// format.
func (f Format) BytesPerPixel() int {
	switch f {
	case FormatBGR565:
		return 2
	case FormatRGBA8888, FormatBGRA8888:
		return 4
	default:
		return 0
	}
}

// HasAlpha reports whether the format stores an alpha channel.
func (f Format) HasAlpha() bool {
	return f == FormatRGBA8888 || f == FormatBGRA8888
}

// ErrBufferGeometry is returned for a buffer whose size, stride or format
// is unusable.
var ErrBufferGeometry = errors.New("vgdemo: invalid frame buffer geometry")

// FrameBuffer is a block of pixel memory the accelerator can render into or
// read from. Pixels are stored non-premultiplied in the layout named by
// Format.
//
// Address is the accelerator-side address assigned by GPU.Allocate and is
// what the display controller is handed on a swap. A zero Address means
// the buffer has not been allocated.
type FrameBuffer struct {
	Width, Height int
	Stride        int // bytes per row
	Format        Format
	Address       uint32
	Pix           []byte
}

// NewFrameBuffer creates an unallocated buffer with tightly packed rows.
func NewFrameBuffer(width, height int, format Format) *FrameBuffer {
	return &FrameBuffer{
		Width:  width,
		Height: height,
		Stride: width * format.BytesPerPixel(),
		Format: format,
	}
}

// Validate checks the buffer's geometry against its storage.
func (fb *FrameBuffer) Validate() error {
	if fb == nil {
		return fmt.Errorf("%w: nil buffer", ErrBufferGeometry)
	}
	bpp := fb.Format.BytesPerPixel()
	switch {
	case bpp == 0:
		return fmt.Errorf("%w: unknown format %v", ErrBufferGeometry, fb.Format)
	case fb.Width <= 0 || fb.Height <= 0:
		return fmt.Errorf("%w: size %dx%d", ErrBufferGeometry, fb.Width, fb.Height)
	case fb.Stride < fb.Width*bpp:
		return fmt.Errorf("%w: stride %d < %d", ErrBufferGeometry, fb.Stride, fb.Width*bpp)
	case fb.Pix != nil && len(fb.Pix) < fb.Stride*fb.Height:
		return fmt.Errorf("%w: %d bytes for %d rows of %d", ErrBufferGeometry, len(fb.Pix), fb.Height, fb.Stride)
	}
	return nil
}

// Allocated reports whether the buffer has accelerator memory.
func (fb *FrameBuffer) Allocated() bool {
	return fb.Address != 0 && fb.Pix != nil
}

// String identifies the buffer in diagnostics.
func (fb *FrameBuffer) String() string {
	return fmt.Sprintf("%dx%d %v @%#08x", fb.Width, fb.Height, fb.Format, fb.Address)
}

func (fb *FrameBuffer) offset(x, y int) int {
	return y*fb.Stride + x*fb.Format.BytesPerPixel()
}

// NRGBAAt returns the pixel at (x, y). Out-of-bounds reads return a
// transparent pixel.
func (fb *FrameBuffer) NRGBAAt(x, y int) color.NRGBA {
	if x < 0 || y < 0 || x >= fb.Width || y >= fb.Height {
		return color.NRGBA{}
	}
	i := fb.offset(x, y)
	switch fb.Format {
	case FormatBGR565:
		v := uint16(fb.Pix[i]) | uint16(fb.Pix[i+1])<<8
		r := uint8(v & 0x1F)
		g := uint8((v >> 5) & 0x3F)
		b := uint8(v >> 11)
		return color.NRGBA{
			R: r<<3 | r>>2,
			G: g<<2 | g>>4,
			B: b<<3 | b>>2,
			A: 0xFF,
		}
	case FormatRGBA8888:
		return color.NRGBA{R: fb.Pix[i], G: fb.Pix[i+1], B: fb.Pix[i+2], A: fb.Pix[i+3]}
	case FormatBGRA8888:
		return color.NRGBA{R: fb.Pix[i+2], G: fb.Pix[i+1], B: fb.Pix[i], A: fb.Pix[i+3]}
	}
	return color.NRGBA{}
}

// SetNRGBA writes the pixel at (x, y). Out-of-bounds writes are dropped.
func (fb *FrameBuffer) SetNRGBA(x, y int, c color.NRGBA) {
	if x < 0 || y < 0 || x >= fb.Width || y >= fb.Height {
		return
	}
	i := fb.offset(x, y)
	switch fb.Format {
	case FormatBGR565:
		v := uint16(c.B>>3)<<11 | uint16(c.G>>2)<<5 | uint16(c.R>>3)
		fb.Pix[i] = uint8(v)
		fb.Pix[i+1] = uint8(v >> 8)
	case FormatRGBA8888:
		fb.Pix[i], fb.Pix[i+1], fb.Pix[i+2], fb.Pix[i+3] = c.R, c.G, c.B, c.A
	case FormatBGRA8888:
		fb.Pix[i], fb.Pix[i+1], fb.Pix[i+2], fb.Pix[i+3] = c.B, c.G, c.R, c.A
	}
}

// Fill writes c into every pixel of r, clipped to the buffer.
func (fb *FrameBuffer) Fill(r image.Rectangle, c Color) {
	r = r.Intersect(fb.Bounds())
	n := c.NRGBA()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			fb.SetNRGBA(x, y, n)
		}
	}
}

// ColorModel implements image.Image.
func (fb *FrameBuffer) ColorModel() color.Model {
	return color.NRGBAModel
}

// Bounds implements image.Image.
func (fb *FrameBuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, fb.Width, fb.Height)
}

// At implements image.Image.
func (fb *FrameBuffer) At(x, y int) color.Color {
	return fb.NRGBAAt(x, y)
}

// Set implements draw.Image.
func (fb *FrameBuffer) Set(x, y int, c color.Color) {
	fb.SetNRGBA(x, y, color.NRGBAModel.Convert(c).(color.NRGBA))
}

// Snapshot returns a copy of the buffer contents.
func (fb *FrameBuffer) Snapshot() *image.NRGBA {
	img := image.NewNRGBA(fb.Bounds())
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			img.SetNRGBA(x, y, fb.NRGBAAt(x, y))
		}
	}
	return img
}
