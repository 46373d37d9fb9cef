// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package assets

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"

	"github.com/gogpu/vgdemo"
)

// ErrImageSize is returned for an image with no pixels.
var ErrImageSize = errors.New("assets: empty image")

// DecodeImage reads a PNG, JPEG, BMP or TIFF image. Images larger than
// maxW x maxH are scaled down, keeping the aspect ratio, with Catmull-Rom
// resampling; a zero limit leaves that dimension unbounded.
func DecodeImage(r io.Reader, maxW, maxH int) (*vgdemo.FrameBuffer, error) {
	src, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("assets: decode image: %w", err)
	}
	b := src.Bounds()
	if b.Empty() {
		return nil, ErrImageSize
	}
	w, h := fit(b.Dx(), b.Dy(), maxW, maxH)
	if w == b.Dx() && h == b.Dy() {
		return toFrameBuffer(src), nil
	}
	vgdemo.Logger().Debug("assets: scaling image", "format", format, "from", b.Size(), "to", image.Pt(w, h))
	fb := newImage(w, h)
	draw.CatmullRom.Scale(fb, fb.Bounds(), src, b, draw.Src, nil)
	return fb, nil
}

// LoadImage decodes the image file at path. See DecodeImage.
func LoadImage(path string, maxW, maxH int) (*vgdemo.FrameBuffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("assets: %w", err)
	}
	defer f.Close()
	return DecodeImage(f, maxW, maxH)
}

// fit scales w x h down to fit maxW x maxH.
func fit(w, h, maxW, maxH int) (int, int) {
	scale := 1.0
	if maxW > 0 && w > maxW {
		scale = float64(maxW) / float64(w)
	}
	if maxH > 0 && h > maxH {
		scale = min(scale, float64(maxH)/float64(h))
	}
	if scale == 1 {
		return w, h
	}
	return max(1, int(float64(w)*scale)), max(1, int(float64(h)*scale))
}
