// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package assets

import (
	"fmt"
	"image"
	"image/color"
	"sync"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/gogpu/vgdemo"
	"github.com/gogpu/vgdemo/demo"
)

// Pattern image size.
const (
	PatternWidth  = 200
	PatternHeight = 80
)

// iconStyle is the look of one icon.
type iconStyle struct {
	label string
	fill  color.RGBA
}

var iconStyles = [demo.NumIcons]iconStyle{
	{"F", color.RGBA{0x1E, 0x88, 0xE5, 0xFF}},
	{"G", color.RGBA{0x43, 0xA0, 0x47, 0xFF}},
	{"V", color.RGBA{0xFB, 0x8C, 0x00, 0xFF}},
	{"W", color.RGBA{0x8E, 0x24, 0xAA, 0xFF}},
}

var (
	fontOnce sync.Once
	goFont   *sfnt.Font
	fontErr  error
)

func regularFont() (*sfnt.Font, error) {
	fontOnce.Do(func() {
		goFont, fontErr = opentype.Parse(goregular.TTF)
	})
	return goFont, fontErr
}

// Icon renders icon i (0 to demo.NumIcons-1) at size x size: a rounded
// tile with a white letter, on a transparent background.
func Icon(i, size int) (*vgdemo.FrameBuffer, error) {
	if i < 0 || i >= demo.NumIcons {
		return nil, fmt.Errorf("assets: icon %d out of range", i)
	}
	style := iconStyles[i]
	img := image.NewRGBA(image.Rect(0, 0, size, size))

	z := vector.NewRasterizer(size, size)
	roundedRect(z, 4, float32(size-4), float32(size)/8)
	z.Draw(img, img.Bounds(), image.NewUniform(style.fill), image.Point{})

	f, err := regularFont()
	if err != nil {
		return nil, fmt.Errorf("assets: parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    float64(size) / 2,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("assets: font face: %w", err)
	}
	defer face.Close()

	m := face.Metrics()
	adv := font.MeasureString(face, style.label)
	d := &font.Drawer{
		Dst:  img,
		Src:  image.White,
		Face: face,
		Dot: fixed.Point26_6{
			X: (fixed.I(size) - adv) / 2,
			Y: (fixed.I(size) + m.Ascent - m.Descent) / 2,
		},
	}
	d.DrawString(style.label)

	return toFrameBuffer(img), nil
}

// roundedRect adds a square from lo to hi with corner radius r.
func roundedRect(z *vector.Rasterizer, lo, hi, r float32) {
	z.MoveTo(lo+r, lo)
	z.LineTo(hi-r, lo)
	z.QuadTo(hi, lo, hi, lo+r)
	z.LineTo(hi, hi-r)
	z.QuadTo(hi, hi, hi-r, hi)
	z.LineTo(lo+r, hi)
	z.QuadTo(lo, hi, lo, hi-r)
	z.LineTo(lo, lo+r)
	z.QuadTo(lo, lo, lo+r, lo)
	z.ClosePath()
}

// Pattern generates the pattern image: diagonal color bands under a
// translucent checkerboard.
func Pattern() *vgdemo.FrameBuffer {
	fb := newImage(PatternWidth, PatternHeight)
	for y := 0; y < PatternHeight; y++ {
		for x := 0; x < PatternWidth; x++ {
			band := ((x + y) / 20) % 3
			c := color.NRGBA{A: 0xFF}
			switch band {
			case 0:
				c.R, c.G, c.B = 0xEC, 0x18, 0x40
			case 1:
				c.R, c.G, c.B = 0x00, 0x66, 0xB3
			default:
				c.R, c.G, c.B = 0xFF, 0xFF, 0xFF
			}
			if (x/10+y/10)%2 == 0 {
				c.R, c.G, c.B = c.R/2, c.G/2, c.B/2
			}
			fb.SetNRGBA(x, y, c)
		}
	}
	return fb
}

func newImage(w, h int) *vgdemo.FrameBuffer {
	fb := vgdemo.NewFrameBuffer(w, h, vgdemo.FormatRGBA8888)
	fb.Pix = make([]byte, fb.Stride*fb.Height)
	return fb
}

// toFrameBuffer copies src into a new RGBA8888 buffer of the same size.
func toFrameBuffer(src image.Image) *vgdemo.FrameBuffer {
	b := src.Bounds()
	fb := newImage(b.Dx(), b.Dy())
	draw.Draw(fb, fb.Bounds(), src, b.Min, draw.Src)
	return fb
}
