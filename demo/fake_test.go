// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package demo

import (
	"context"
	"fmt"

	"github.com/gogpu/vgdemo"
)

type call struct {
	op     string
	target *vgdemo.FrameBuffer
	source *vgdemo.FrameBuffer
	path   *vgdemo.Path
	rule   vgdemo.FillRule
	blend  vgdemo.BlendMode
	color  vgdemo.Color
	filter vgdemo.Filter
	matrix vgdemo.Matrix
	rect   vgdemo.Rect
	stage  Stage
}

// fakeGPU records calls and fails the failAt-th call named failOp.
type fakeGPU struct {
	rec     *Recorder
	calls   []call
	counts  map[string]int
	failOp  string
	failAt  int
	cleared []*vgdemo.Path
	closes  int
}

func newFakeGPU() *fakeGPU {
	return &fakeGPU{counts: make(map[string]int)}
}

func (g *fakeGPU) do(c call) error {
	if g.rec != nil {
		c.stage = g.rec.Stage()
	}
	g.calls = append(g.calls, c)
	g.counts[c.op]++
	if c.op == g.failOp && g.counts[c.op] == g.failAt {
		return &vgdemo.OpError{Op: c.op, Err: vgdemo.ErrOutOfMemory}
	}
	return nil
}

func (g *fakeGPU) ops(op string) []call {
	var out []call
	for _, c := range g.calls {
		if c.op == op {
			out = append(out, c)
		}
	}
	return out
}

func (g *fakeGPU) Allocate(*vgdemo.FrameBuffer) error { return nil }
func (g *fakeGPU) Free(*vgdemo.FrameBuffer) error     { return nil }

func (g *fakeGPU) Clear(target *vgdemo.FrameBuffer, _ *vgdemo.Rect, c vgdemo.Color) error {
	return g.do(call{op: "clear", target: target, color: c})
}

func (g *fakeGPU) Draw(target *vgdemo.FrameBuffer, p *vgdemo.Path, rule vgdemo.FillRule, m *vgdemo.Matrix, b vgdemo.BlendMode, c vgdemo.Color) error {
	return g.do(call{op: "draw", target: target, path: p, rule: rule, matrix: *m, blend: b, color: c})
}

func (g *fakeGPU) Blit(target, source *vgdemo.FrameBuffer, m *vgdemo.Matrix, b vgdemo.BlendMode, c vgdemo.Color, f vgdemo.Filter) error {
	return g.do(call{op: "blit", target: target, source: source, matrix: *m, blend: b, color: c, filter: f})
}

func (g *fakeGPU) BlitRect(target, source *vgdemo.FrameBuffer, r *vgdemo.Rect, m *vgdemo.Matrix, b vgdemo.BlendMode, c vgdemo.Color, f vgdemo.Filter) error {
	return g.do(call{op: "blit-rect", target: target, source: source, rect: *r, matrix: *m, blend: b, color: c, filter: f})
}

func (g *fakeGPU) DrawPattern(target *vgdemo.FrameBuffer, p *vgdemo.Path, rule vgdemo.FillRule, pm *vgdemo.Matrix,
	_ *vgdemo.FrameBuffer, _ *vgdemo.Matrix, b vgdemo.BlendMode, _ vgdemo.PatternMode, _, c vgdemo.Color, f vgdemo.Filter) error {
	return g.do(call{op: "pattern", target: target, path: p, rule: rule, matrix: *pm, blend: b, color: c, filter: f})
}

func (g *fakeGPU) Finish() error { return g.do(call{op: "finish"}) }

func (g *fakeGPU) ClearPath(p *vgdemo.Path) error {
	g.cleared = append(g.cleared, p)
	return nil
}

func (g *fakeGPU) Close() error {
	g.closes++
	return nil
}

// fakeSurface hands out one target and counts swaps.
type fakeSurface struct {
	target     *vgdemo.FrameBuffer
	acquireErr error
	swaps      int
}

func (s *fakeSurface) Acquire(context.Context) (*vgdemo.FrameBuffer, error) {
	if s.acquireErr != nil {
		return nil, s.acquireErr
	}
	return s.target, nil
}

func (s *fakeSurface) Swap(context.Context) error {
	s.swaps++
	return nil
}

func testImage(w, h int) *vgdemo.FrameBuffer {
	fb := vgdemo.NewFrameBuffer(w, h, vgdemo.FormatRGBA8888)
	fb.Pix = make([]byte, fb.Stride*fb.Height)
	return fb
}

func testPath(name string) *vgdemo.Path {
	p := vgdemo.NewPath(name)
	p.Rectangle(0, 0, 10, 10)
	return p
}

func testAssets() *Assets {
	a := &Assets{
		Logo:       [2]*vgdemo.Path{testPath("logo0"), testPath("logo1")},
		LogoColors: [2]vgdemo.Color{0xFF4018EC, 0xFFB36600},
		Polygon:    testPath("polygon"),
		Star:       testPath("star"),
		Squares:    testPath("squares"),
		Circles:    testPath("circles"),
		Square:     testPath("square"),
		Pentagon:   testPath("pentagon"),
		Triangle:   testPath("triangle"),
		Hexagon:    testPath("hexagon"),
		Highlight:  testPath("highlight"),
		Pattern:    testImage(8, 8),
	}
	for i := range a.Icons {
		a.Icons[i] = testImage(IconSize, IconSize)
	}
	return a
}

// testFrame builds an 800x480 frame over fakes.
func testFrame() (*Frame, *fakeGPU, *fakeSurface) {
	gpu := newFakeGPU()
	s := &fakeSurface{target: testImage(800, 480)}
	f := NewFrame(gpu, s, testImage(416, 240), testAssets(), 800, 480)
	gpu.rec = f.Recorder
	return f, gpu, s
}

func names(paths []*vgdemo.Path) []string {
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = p.Name
	}
	return out
}

func (c call) String() string {
	return fmt.Sprintf("%s@%d", c.op, c.stage)
}
