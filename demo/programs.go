// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package demo

import (
	"context"
	"time"

	"github.com/gogpu/vgdemo"
)

// Layout constants of the programs.
const (
	// LogoScale is the scale of the logo in the blit program's scratch
	// buffer.
	LogoScale = 0.25
	// IconSize is the edge of an icon image.
	IconSize = 176
	// HighlightSize is the edge of the highlight path.
	HighlightSize = 200
	// HighlightColor is the filter program's highlight.
	HighlightColor vgdemo.Color = 0xFFE5AF71

	gridCols = 2
	gridRows = 2

	// Pattern program placement.
	boxX        = 100
	boxY        = 120
	patternX    = 100
	patternY    = 80
	triangleBox = 120
	trianglePat = 60
)

// LogoRect is the region of the scratch buffer the blit program copies,
// for a width x height screen.
func LogoRect(width, height int) vgdemo.Rect {
	return vgdemo.Rect{X: 0, Y: 75, Width: width/2 - 150, Height: height/2 - 100}
}

// drawDefault draws the animated logo and advances the animation.
func drawDefault(ctx context.Context, f *Frame) error {
	if err := f.GPU.Clear(f.Target, nil, vgdemo.White); err != nil {
		return err
	}
	for i, p := range f.Assets.Logo {
		f.Recorder.Enter(Stage(i + 1))
		f.Recorder.Use(p)
		if err := f.GPU.Draw(f.Target, p, vgdemo.FillRuleEvenOdd, &f.Anim.Matrix, vgdemo.BlendNone, f.Assets.LogoColors[i]); err != nil {
			return err
		}
	}
	f.Anim.Step()
	return present(ctx, f)
}

// drawFillRule draws each test path twice: even-odd on the left, non-zero
// on the right.
func drawFillRule(ctx context.Context, f *Frame) error {
	if err := f.GPU.Clear(f.Target, nil, vgdemo.White); err != nil {
		return err
	}
	halfW, halfH := float64(f.Width/2), float64(f.Height/2)
	rows := []*vgdemo.Path{f.Assets.Polygon, f.Assets.Squares}
	for i, p := range rows {
		f.Recorder.Enter(Stage(i + 1))
		f.Recorder.Use(p)
		y := halfH * float64(i)
		for j, rule := range []vgdemo.FillRule{vgdemo.FillRuleEvenOdd, vgdemo.FillRuleNonZero} {
			m := vgdemo.Translation(halfW*float64(j), y)
			if err := f.GPU.Draw(f.Target, p, rule, &m, vgdemo.BlendNone, vgdemo.Teal); err != nil {
				return err
			}
		}
	}
	return present(ctx, f)
}

// drawAlphaBlend renders each shape into the scratch buffer and blits it
// onto a grey target: source-over on the left, multiply on the right.
func drawAlphaBlend(ctx context.Context, f *Frame) error {
	if err := f.GPU.Clear(f.Target, nil, vgdemo.Grey); err != nil {
		return err
	}
	draw := vgdemo.Identity()
	halfW, halfH := float64(f.Width/2), float64(f.Height/2)
	rows := []*vgdemo.Path{f.Assets.Star, f.Assets.Circles}
	for i, p := range rows {
		f.Recorder.Enter(Stage(i + 1))
		f.Recorder.Use(p)
		y := halfH * float64(i)
		for j, mode := range []vgdemo.BlendMode{vgdemo.BlendSrcOver, vgdemo.BlendMultiply} {
			if err := f.GPU.Draw(f.Scratch, p, vgdemo.FillRuleEvenOdd, &draw, vgdemo.BlendNone, vgdemo.Teal); err != nil {
				return err
			}
			m := vgdemo.Translation(halfW*float64(j), y)
			if err := f.GPU.Blit(f.Target, f.Scratch, &m, mode, 0, vgdemo.FilterPoint); err != nil {
				return err
			}
			if err := f.GPU.Clear(f.Scratch, nil, vgdemo.White); err != nil {
				return err
			}
		}
	}
	return present(ctx, f)
}

// drawBlit renders the logo into the scratch buffer at quarter scale and
// copies its bounding region into the center of each screen half.
func drawBlit(ctx context.Context, f *Frame) error {
	if err := f.GPU.Clear(f.Target, nil, vgdemo.Teal); err != nil {
		return err
	}
	if err := f.GPU.Clear(f.Scratch, nil, vgdemo.White); err != nil {
		return err
	}
	m := vgdemo.Identity()
	m.Scale(LogoScale, LogoScale)
	for i, p := range f.Assets.Logo {
		f.Recorder.Enter(Stage(i + 1))
		f.Recorder.Use(p)
		if err := f.GPU.Draw(f.Scratch, p, vgdemo.FillRuleEvenOdd, &m, vgdemo.BlendNone, f.Assets.LogoColors[i]); err != nil {
			return err
		}
	}

	rect := LogoRect(f.Width, f.Height)
	offX := (f.Width/2 - rect.Width) / 2
	offY := (f.Height - rect.Height) / 2
	for col := 0; col < gridCols; col++ {
		dst := vgdemo.Translation(float64(col*f.Width/2+offX), float64(offY))
		if err := f.GPU.BlitRect(f.Target, f.Scratch, &rect, &dst, vgdemo.BlendSrcOver, 0, vgdemo.FilterPoint); err != nil {
			return err
		}
	}
	return present(ctx, f)
}

// patternSlot places one shape of the pattern program.
type patternSlot struct {
	path               *vgdemo.Path
	scaleX, scaleY     float64
	boxX, boxY         float64
	patternX, patternY float64
}

// drawPattern fills four shapes with the pattern image, one per quadrant.
func drawPattern(ctx context.Context, f *Frame) error {
	if err := f.GPU.Clear(f.Target, nil, vgdemo.White); err != nil {
		return err
	}
	halfW, halfH := float64(f.Width/2), float64(f.Height/2)
	a := f.Assets
	slots := []patternSlot{
		{a.Square, 2, 1, boxX, boxY, patternX, patternY},
		{a.Pentagon, 2, 1, boxX + halfW/2, boxY, patternX + halfW, patternY},
		{a.Triangle, 2, 1.5, boxX, boxY + halfH - triangleBox, patternX, patternY + halfH + trianglePat},
		{a.Hexagon, 2, 1, boxX + halfW/2, boxY + halfH, patternX + halfW, patternY + halfH},
	}
	for i, s := range slots {
		f.Recorder.Enter(Stage(i + 1))
		f.Recorder.Use(s.path)
		box := vgdemo.Identity()
		box.Scale(s.scaleX, s.scaleY)
		box.Translate(s.boxX, s.boxY)
		pat := vgdemo.Translation(s.patternX, s.patternY)
		err := f.GPU.DrawPattern(f.Target, s.path, vgdemo.FillRuleEvenOdd, &box, a.Pattern, &pat,
			vgdemo.BlendSrcOver, vgdemo.PatternColor, vgdemo.Teal, vgdemo.Teal, vgdemo.FilterPoint)
		if err != nil {
			return err
		}
	}
	return present(ctx, f)
}

// HighlightIndex returns the icon the filter program highlights after
// elapsed time.
func HighlightIndex(elapsed, period time.Duration) int {
	if period <= 0 {
		return 0
	}
	return int(elapsed/period) % NumIcons
}

// iconOrigin returns the top-left corner of icon i centered in its grid
// cell.
func iconOrigin(i, width, height int) (x, y int) {
	cellW, cellH := width/gridCols, height/gridRows
	row, col := i/gridCols, i%gridCols
	return col*cellW + (cellW-IconSize)/2, row*cellH + (cellH-IconSize)/2
}

// drawFilter draws the highlight behind the current icon, then the four
// icons with linear filtering.
func drawFilter(ctx context.Context, f *Frame) error {
	if err := f.GPU.Clear(f.Target, nil, vgdemo.White); err != nil {
		return err
	}
	cur := HighlightIndex(f.Clock(), f.HighlightPeriod)
	x, y := iconOrigin(cur, f.Width, f.Height)
	hl := vgdemo.Translation(float64(x), float64(y))
	hl.Scale(IconSize/float64(HighlightSize), IconSize/float64(HighlightSize))

	f.Recorder.Enter(1)
	f.Recorder.Use(f.Assets.Highlight)
	if err := f.GPU.Draw(f.Target, f.Assets.Highlight, vgdemo.FillRuleEvenOdd, &hl, vgdemo.BlendSrcOver, HighlightColor); err != nil {
		return err
	}
	for i, icon := range f.Assets.Icons {
		x, y := iconOrigin(i, f.Width, f.Height)
		m := vgdemo.Translation(float64(x), float64(y))
		if err := f.GPU.Blit(f.Target, icon, &m, vgdemo.BlendSrcOver, 0, vgdemo.FilterLinear); err != nil {
			return err
		}
	}
	return present(ctx, f)
}
