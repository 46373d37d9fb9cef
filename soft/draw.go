// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package soft

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/gogpu/vgdemo"
	"github.com/gogpu/vgdemo/internal/blend"
	"github.com/gogpu/vgdemo/internal/raster"
)

var blendModes = [...]blend.Mode{
	vgdemo.BlendNone:     blend.ModeNone,
	vgdemo.BlendSrcOver:  blend.ModeSrcOver,
	vgdemo.BlendDstOver:  blend.ModeDstOver,
	vgdemo.BlendSrcIn:    blend.ModeSrcIn,
	vgdemo.BlendDstIn:    blend.ModeDstIn,
	vgdemo.BlendMultiply: blend.ModeMultiply,
	vgdemo.BlendScreen:   blend.ModeScreen,
	vgdemo.BlendDarken:   blend.ModeDarken,
	vgdemo.BlendLighten:  blend.ModeLighten,
	vgdemo.BlendAdditive: blend.ModeAdditive,
	vgdemo.BlendSubtract: blend.ModeSubtract,
}

// compositor writes premultiplied source pixels into a target using one
// blend mode.
type compositor struct {
	dst  *vgdemo.FrameBuffer
	mode vgdemo.BlendMode
	fn   blend.Func
}

func newCompositor(dst *vgdemo.FrameBuffer, mode vgdemo.BlendMode) compositor {
	return compositor{dst: dst, mode: mode, fn: blend.Get(blendModes[mode])}
}

// put composites the premultiplied source (r, g, b, a) at (x, y).
func (c compositor) put(x, y int, r, g, b, a byte) {
	if c.mode == vgdemo.BlendNone {
		r, g, b, a = blend.Unpremultiply(r, g, b, a)
		c.dst.SetNRGBA(x, y, color.NRGBA{R: r, G: g, B: b, A: a})
		return
	}
	d := c.dst.NRGBAAt(x, y)
	dr, dg, db, da := blend.Premultiply(d.R, d.G, d.B, d.A)
	r, g, b, a = c.fn(r, g, b, a, dr, dg, db, da)
	r, g, b, a = blend.Unpremultiply(r, g, b, a)
	c.dst.SetNRGBA(x, y, color.NRGBA{R: r, G: g, B: b, A: a})
}

func checkBlend(op string, mode vgdemo.BlendMode) error {
	if !mode.Valid() {
		return &vgdemo.OpError{Op: op, Err: fmt.Errorf("%w: blend mode %v", vgdemo.ErrNotSupported, mode)}
	}
	return nil
}

func checkPath(op string, path *vgdemo.Path, rule vgdemo.FillRule, m *vgdemo.Matrix) error {
	switch {
	case path == nil || path.Len() == 0:
		return &vgdemo.OpError{Op: op, Err: fmt.Errorf("%w: empty path", vgdemo.ErrInvalidArgument)}
	case m == nil:
		return &vgdemo.OpError{Op: op, Target: path.Name, Err: fmt.Errorf("%w: nil matrix", vgdemo.ErrInvalidArgument)}
	case rule != vgdemo.FillRuleNonZero && rule != vgdemo.FillRuleEvenOdd:
		return &vgdemo.OpError{Op: op, Target: path.Name, Err: fmt.Errorf("%w: fill rule %v", vgdemo.ErrInvalidArgument, rule)}
	}
	return nil
}

func rasterRule(rule vgdemo.FillRule) raster.FillRule {
	if rule == vgdemo.FillRuleEvenOdd {
		return raster.FillRuleEvenOdd
	}
	return raster.FillRuleNonZero
}

func toRaster(polys [][]vgdemo.Point) [][]raster.Point {
	out := make([][]raster.Point, len(polys))
	for i, poly := range polys {
		rp := make([]raster.Point, len(poly))
		for j, p := range poly {
			rp[j] = raster.Point{X: p.X, Y: p.Y}
		}
		out[i] = rp
	}
	return out
}

// live reports a buffer freed between recording and execution.
func live(op string, fb *vgdemo.FrameBuffer) error {
	if fb.Pix == nil {
		return &vgdemo.OpError{Op: op, Target: fb.String(), Err: fmt.Errorf("%w: buffer freed before finish", vgdemo.ErrInvalidArgument)}
	}
	return nil
}

// Clear records a fill of rect (the whole target when rect is nil) with c.
// The color is stored as is, without blending.
func (g *GPU) Clear(target *vgdemo.FrameBuffer, rect *vgdemo.Rect, c vgdemo.Color) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	const op = "clear"
	if err := g.begin(op); err != nil {
		return err
	}
	if err := g.checkBuffer(op, target); err != nil {
		return err
	}
	r := target.Bounds()
	if rect != nil {
		r = rect.Image().Intersect(r)
	}
	g.record(func() error {
		if err := live(op, target); err != nil {
			return err
		}
		target.Fill(r, c)
		return nil
	})
	vgdemo.Logger().Debug("soft: clear", "target", target.String(), "rect", r, "color", fmt.Sprintf("%#08x", uint32(c)))
	return nil
}

// Draw records a fill of path, transformed by m, with c.
func (g *GPU) Draw(target *vgdemo.FrameBuffer, path *vgdemo.Path, rule vgdemo.FillRule, m *vgdemo.Matrix, mode vgdemo.BlendMode, c vgdemo.Color) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	const op = "draw"
	if err := g.begin(op); err != nil {
		return err
	}
	if err := g.checkBuffer(op, target); err != nil {
		return err
	}
	if err := checkPath(op, path, rule, m); err != nil {
		return err
	}
	if err := checkBlend(op, mode); err != nil {
		return err
	}
	g.uploads[path] = struct{}{}

	mat := *m
	tol := g.opts.tolerance
	g.record(func() error {
		if err := live(op, target); err != nil {
			return err
		}
		polys := toRaster(path.Flatten(mat, tol))
		comp := newCompositor(target, mode)
		r, gr, b, a := blend.Premultiply(c.R(), c.G(), c.B(), c.A())
		g.rast.Fill(polys, rasterRule(rule), target.Width, target.Height, func(y, x0, x1 int) {
			for x := x0; x < x1; x++ {
				comp.put(x, y, r, gr, b, a)
			}
		})
		return nil
	})
	vgdemo.Logger().Debug("soft: draw", "target", target.String(), "path", path.Name, "rule", rule, "blend", mode)
	return nil
}

// DrawPattern records a fill of path, transformed by pathMatrix, with the
// pattern image mapped onto the target by patternMatrix. Outside the image
// the mode decides: PatternColor uses patternColor, PatternPad repeats the
// edge texels and PatternRepeat tiles the image.
//
// The color argument selects a tint in the hardware's multiply image mode,
// which is not modeled here; it is accepted and otherwise unused.
func (g *GPU) DrawPattern(target *vgdemo.FrameBuffer, path *vgdemo.Path, rule vgdemo.FillRule, pathMatrix *vgdemo.Matrix,
	pattern *vgdemo.FrameBuffer, patternMatrix *vgdemo.Matrix, mode vgdemo.BlendMode,
	pm vgdemo.PatternMode, patternColor, _ vgdemo.Color, filter vgdemo.Filter) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	const op = "pattern"
	if err := g.begin(op); err != nil {
		return err
	}
	if err := g.checkBuffer(op, target); err != nil {
		return err
	}
	if err := g.checkBuffer(op, pattern); err != nil {
		return err
	}
	if err := checkPath(op, path, rule, pathMatrix); err != nil {
		return err
	}
	if err := checkBlend(op, mode); err != nil {
		return err
	}
	if patternMatrix == nil {
		return &vgdemo.OpError{Op: op, Target: path.Name, Err: fmt.Errorf("%w: nil pattern matrix", vgdemo.ErrInvalidArgument)}
	}
	inv, ok := patternMatrix.Invert()
	if !ok {
		return &vgdemo.OpError{Op: op, Target: path.Name, Err: fmt.Errorf("%w: singular pattern matrix", vgdemo.ErrInvalidArgument)}
	}
	if pm != vgdemo.PatternColor && pm != vgdemo.PatternPad && pm != vgdemo.PatternRepeat {
		return &vgdemo.OpError{Op: op, Target: path.Name, Err: fmt.Errorf("%w: pattern mode %v", vgdemo.ErrNotSupported, pm)}
	}
	g.uploads[path] = struct{}{}

	mat := *pathMatrix
	tol := g.opts.tolerance
	g.record(func() error {
		if err := live(op, target); err != nil {
			return err
		}
		if err := live(op, pattern); err != nil {
			return err
		}
		s := sampler{img: pattern, mode: pm, color: patternColor, filter: filter}
		polys := toRaster(path.Flatten(mat, tol))
		comp := newCompositor(target, mode)
		g.rast.Fill(polys, rasterRule(rule), target.Width, target.Height, func(y, x0, x1 int) {
			for x := x0; x < x1; x++ {
				p := inv.TransformPoint(vgdemo.Pt(float64(x)+0.5, float64(y)+0.5))
				r, gr, b, a := s.sample(p.X, p.Y)
				comp.put(x, y, r, gr, b, a)
			}
		})
		return nil
	})
	vgdemo.Logger().Debug("soft: pattern", "target", target.String(), "path", path.Name, "mode", pm, "filter", filter)
	return nil
}

// sampler reads premultiplied texels from a pattern image.
type sampler struct {
	img    *vgdemo.FrameBuffer
	mode   vgdemo.PatternMode
	color  vgdemo.Color
	filter vgdemo.Filter
}

// texel resolves integer texel coordinates through the pattern mode.
func (s *sampler) texel(ix, iy int) (r, g, b, a byte) {
	w, h := s.img.Width, s.img.Height
	if ix < 0 || iy < 0 || ix >= w || iy >= h {
		switch s.mode {
		case vgdemo.PatternPad:
			ix = min(max(ix, 0), w-1)
			iy = min(max(iy, 0), h-1)
		case vgdemo.PatternRepeat:
			ix = ((ix % w) + w) % w
			iy = ((iy % h) + h) % h
		default:
			c := s.color
			return blend.Premultiply(c.R(), c.G(), c.B(), c.A())
		}
	}
	n := s.img.NRGBAAt(ix, iy)
	return blend.Premultiply(n.R, n.G, n.B, n.A)
}

// sample returns the premultiplied pattern color at image coordinates
// (u, v).
func (s *sampler) sample(u, v float64) (byte, byte, byte, byte) {
	if s.filter == vgdemo.FilterPoint {
		return s.texel(int(math.Floor(u)), int(math.Floor(v)))
	}
	u -= 0.5
	v -= 0.5
	x0 := int(math.Floor(u))
	y0 := int(math.Floor(v))
	fx := u - float64(x0)
	fy := v - float64(y0)

	var acc [4]float64
	weights := [4]float64{(1 - fx) * (1 - fy), fx * (1 - fy), (1 - fx) * fy, fx * fy}
	offsets := [4]image.Point{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	for i, off := range offsets {
		r, g, b, a := s.texel(x0+off.X, y0+off.Y)
		acc[0] += weights[i] * float64(r)
		acc[1] += weights[i] * float64(g)
		acc[2] += weights[i] * float64(b)
		acc[3] += weights[i] * float64(a)
	}
	round := func(f float64) byte { return byte(math.Min(255, math.Round(f))) }
	return round(acc[0]), round(acc[1]), round(acc[2]), round(acc[3])
}
