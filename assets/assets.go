// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package assets

import (
	"fmt"

	"github.com/gogpu/vgdemo/demo"
)

// Option configures Build.
type Option func(*options)

type options struct {
	patternPath string
	iconSize    int
}

// WithPatternFile loads the pattern image from path instead of generating
// it. An empty path keeps the generated image.
func WithPatternFile(path string) Option {
	return func(o *options) {
		o.patternPath = path
	}
}

// WithIconSize sets the icon edge in pixels.
func WithIconSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.iconSize = n
		}
	}
}

// Build creates the complete asset set. Images are plain host memory;
// they are imported into the accelerator by GPU.Allocate.
func Build(opts ...Option) (*demo.Assets, error) {
	o := options{iconSize: demo.IconSize}
	for _, opt := range opts {
		opt(&o)
	}

	a := &demo.Assets{
		Logo:       Logo(),
		LogoColors: LogoColors(),
	}
	if err := decodeShapes(a); err != nil {
		return nil, err
	}
	for i := range a.Icons {
		icon, err := Icon(i, o.iconSize)
		if err != nil {
			return nil, err
		}
		a.Icons[i] = icon
	}
	if o.patternPath != "" {
		img, err := LoadImage(o.patternPath, 2*PatternWidth, 2*PatternHeight)
		if err != nil {
			return nil, fmt.Errorf("assets: pattern image: %w", err)
		}
		a.Pattern = img
	} else {
		a.Pattern = Pattern()
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return a, nil
}
