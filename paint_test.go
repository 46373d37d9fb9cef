// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package vgdemo

import (
	"errors"
	"image"
	"testing"
)

func TestEnumStrings(t *testing.T) {
	tests := []struct {
		got, want string
	}{
		{FillRuleNonZero.String(), "non-zero"},
		{FillRuleEvenOdd.String(), "even-odd"},
		{FillRule(5).String(), "FillRule(5)"},
		{BlendNone.String(), "none"},
		{BlendSrcOver.String(), "src-over"},
		{BlendSubtract.String(), "subtract"},
		{BlendMode(-1).String(), "BlendMode(-1)"},
		{FilterPoint.String(), "point"},
		{FilterBiLinear.String(), "bilinear"},
		{Filter(3).String(), "Filter(3)"},
		{PatternColor.String(), "color"},
		{PatternRepeat.String(), "repeat"},
		{PatternMode(9).String(), "PatternMode(9)"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("String() = %q, want %q", tt.got, tt.want)
		}
	}
}

func TestBlendModeValid(t *testing.T) {
	for m := BlendNone; m <= BlendSubtract; m++ {
		if !m.Valid() {
			t.Errorf("%v not valid", m)
		}
	}
	for _, m := range []BlendMode{-1, BlendSubtract + 1} {
		if m.Valid() {
			t.Errorf("BlendMode(%d) valid", int(m))
		}
	}
}

func TestRect(t *testing.T) {
	r := Rect{X: 0, Y: 75, Width: 250, Height: 140}
	if got, want := r.Image(), image.Rect(0, 75, 250, 215); got != want {
		t.Errorf("Image() = %v, want %v", got, want)
	}
	tests := []struct {
		r     Rect
		empty bool
	}{
		{r, false},
		{Rect{Width: 0, Height: 4}, true},
		{Rect{Width: 4, Height: -1}, true},
	}
	for _, tt := range tests {
		if got := tt.r.Empty(); got != tt.empty {
			t.Errorf("%+v.Empty() = %v, want %v", tt.r, got, tt.empty)
		}
	}
}

func TestOpError(t *testing.T) {
	tests := []struct {
		err  *OpError
		want string
	}{
		{&OpError{Op: "finish", Err: ErrClosed}, "vgdemo: finish: vgdemo: accelerator closed"},
		{&OpError{Op: "draw", Target: "square", Err: ErrOutOfMemory}, "vgdemo: draw square: vgdemo: out of accelerator memory"},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
		if !errors.Is(tt.err, tt.err.Err) {
			t.Errorf("errors.Is(%v, %v) = false", tt.err, tt.err.Err)
		}
	}

	var wrapped error = &OpError{Op: "allocate", Err: ErrNotAligned}
	var op *OpError
	if !errors.As(wrapped, &op) || op.Op != "allocate" {
		t.Errorf("errors.As() = %v", op)
	}
}
