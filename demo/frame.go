// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package demo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gogpu/vgdemo"
)

// ErrMissingAsset is returned by Assets.Validate.
var ErrMissingAsset = errors.New("demo: missing asset")

// NumIcons is the number of icons shown by the filter program.
const NumIcons = 4

// Assets are the paths and images the programs draw.
type Assets struct {
	// Logo holds the two logo paths, drawn in order.
	Logo       [2]*vgdemo.Path
	LogoColors [2]vgdemo.Color

	Polygon *vgdemo.Path
	Star    *vgdemo.Path
	Squares *vgdemo.Path
	Circles *vgdemo.Path

	Square   *vgdemo.Path
	Pentagon *vgdemo.Path
	Triangle *vgdemo.Path
	Hexagon  *vgdemo.Path

	// Highlight is a HighlightSize square with rounded corners.
	Highlight *vgdemo.Path

	Icons   [NumIcons]*vgdemo.FrameBuffer
	Pattern *vgdemo.FrameBuffer
}

// Paths returns every path in a fixed order.
func (a *Assets) Paths() []*vgdemo.Path {
	return []*vgdemo.Path{
		a.Logo[0], a.Logo[1],
		a.Polygon, a.Star, a.Squares, a.Circles,
		a.Square, a.Pentagon, a.Triangle, a.Hexagon,
		a.Highlight,
	}
}

// Images returns the icons followed by the pattern image.
func (a *Assets) Images() []*vgdemo.FrameBuffer {
	return append(a.Icons[:len(a.Icons):len(a.Icons)], a.Pattern)
}

// Validate reports the first missing path or image.
func (a *Assets) Validate() error {
	for i, p := range a.Paths() {
		if p == nil || p.Len() == 0 {
			return fmt.Errorf("%w: path %d", ErrMissingAsset, i)
		}
	}
	for i, img := range a.Images() {
		if err := img.Validate(); err != nil {
			return fmt.Errorf("%w: image %d: %w", ErrMissingAsset, i, err)
		}
	}
	return nil
}

// Surface supplies render targets and presents them.
// *surface.Swapper implements it.
type Surface interface {
	Acquire(ctx context.Context) (*vgdemo.FrameBuffer, error)
	Swap(ctx context.Context) error
}

// Frame is the state shared by the programs.
type Frame struct {
	GPU     vgdemo.GPU
	Surface Surface
	Assets  *Assets

	// Target is the render target of the running program. Run sets it.
	Target *vgdemo.FrameBuffer
	// Scratch is the off-screen composition buffer.
	Scratch *vgdemo.FrameBuffer

	Width, Height int

	Anim     *Animation
	Recorder *Recorder
	Cleaner  *Cleaner

	// HighlightPeriod is how long the filter highlight stays on one icon.
	HighlightPeriod time.Duration
	// Clock returns the time elapsed since start.
	Clock func() time.Duration
}

// DefaultHighlightPeriod is the filter program's highlight period.
const DefaultHighlightPeriod = 5 * time.Second

// NewFrame creates a frame for a width x height screen with a fresh
// animation, recorder and cleaner, and a clock started now.
func NewFrame(gpu vgdemo.GPU, s Surface, scratch *vgdemo.FrameBuffer, assets *Assets, width, height int) *Frame {
	rec := NewRecorder()
	start := time.Now()
	return &Frame{
		GPU:             gpu,
		Surface:         s,
		Assets:          assets,
		Scratch:         scratch,
		Width:           width,
		Height:          height,
		Anim:            NewAnimation(width, height),
		Recorder:        rec,
		Cleaner:         NewCleaner(gpu, rec),
		HighlightPeriod: DefaultHighlightPeriod,
		Clock:           func() time.Duration { return time.Since(start) },
	}
}
