// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package vgdemo

import (
	"fmt"
	"image"
)

// FillRule specifies how to determine which areas are inside a path.
type FillRule int

const (
	// FillRuleNonZero uses the non-zero winding rule.
	FillRuleNonZero FillRule = iota
	// FillRuleEvenOdd uses the even-odd rule.
	FillRuleEvenOdd
)

// String returns the rule name.
func (r FillRule) String() string {
	switch r {
	case FillRuleNonZero:
		return "non-zero"
	case FillRuleEvenOdd:
		return "even-odd"
	default:
		return fmt.Sprintf("FillRule(%d)", int(r))
	}
}

// BlendMode selects how a source color combines with the destination.
// Formulas are given on premultiplied values (S source, D destination,
// Sa and Da their alphas).
type BlendMode int

const (
	// BlendNone replaces the destination: S.
	BlendNone BlendMode = iota
	// BlendSrcOver draws the source over the destination: S + D*(1-Sa).
	BlendSrcOver
	// BlendDstOver draws the destination over the source: S*(1-Da) + D.
	BlendDstOver
	// BlendSrcIn keeps the source where the destination is: S*Da.
	BlendSrcIn
	// BlendDstIn keeps the destination where the source is: D*Sa.
	BlendDstIn
	// BlendMultiply darkens: S*(1-Da) + D*(1-Sa) + S*D.
	BlendMultiply
	// BlendScreen lightens: S + D - S*D.
	BlendScreen
	// BlendDarken keeps the darker of the two per channel.
	BlendDarken
	// BlendLighten keeps the lighter of the two per channel.
	BlendLighten
	// BlendAdditive adds: S + D.
	BlendAdditive
	// BlendSubtract removes the source from the destination: D*(1-S).
	BlendSubtract
)

var blendNames = [...]string{
	BlendNone:     "none",
	BlendSrcOver:  "src-over",
	BlendDstOver:  "dst-over",
	BlendSrcIn:    "src-in",
	BlendDstIn:    "dst-in",
	BlendMultiply: "multiply",
	BlendScreen:   "screen",
	BlendDarken:   "darken",
	BlendLighten:  "lighten",
	BlendAdditive: "additive",
	BlendSubtract: "subtract",
}

// String returns the mode name.
func (m BlendMode) String() string {
	if m >= 0 && int(m) < len(blendNames) {
		return blendNames[m]
	}
	return fmt.Sprintf("BlendMode(%d)", int(m))
}

// Valid reports whether m is a known mode.
func (m BlendMode) Valid() bool {
	return m >= 0 && int(m) < len(blendNames)
}

// Filter selects how source images are sampled by blits and patterns.
type Filter int

const (
	// FilterPoint samples the nearest texel.
	FilterPoint Filter = iota
	// FilterLinear interpolates between neighboring texels.
	FilterLinear
	// FilterBiLinear interpolates with a full bilinear kernel.
	FilterBiLinear
)

// String returns the filter name.
func (f Filter) String() string {
	switch f {
	case FilterPoint:
		return "point"
	case FilterLinear:
		return "linear"
	case FilterBiLinear:
		return "bilinear"
	default:
		return fmt.Sprintf("Filter(%d)", int(f))
	}
}

// PatternMode selects what a pattern fill produces outside the pattern
// image.
type PatternMode int

const (
	// PatternColor fills with the pattern color.
	PatternColor PatternMode = iota
	// PatternPad extends the nearest edge texel.
	PatternPad
	// PatternRepeat tiles the image.
	PatternRepeat
)

// String returns the mode name.
func (m PatternMode) String() string {
	switch m {
	case PatternColor:
		return "color"
	case PatternPad:
		return "pad"
	case PatternRepeat:
		return "repeat"
	default:
		return fmt.Sprintf("PatternMode(%d)", int(m))
	}
}

// Rect is an integer rectangle given by origin and size.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Image returns the rectangle as an image.Rectangle.
func (r Rect) Image() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height)
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}
