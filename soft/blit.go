// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package soft

import (
	"fmt"
	"image"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"github.com/gogpu/vgdemo"
	"github.com/gogpu/vgdemo/internal/blend"
)

// interpolator maps a filter to its resampling kernel.
func interpolator(f vgdemo.Filter) (draw.Interpolator, error) {
	switch f {
	case vgdemo.FilterPoint:
		return draw.NearestNeighbor, nil
	case vgdemo.FilterLinear:
		return draw.ApproxBiLinear, nil
	case vgdemo.FilterBiLinear:
		return draw.BiLinear, nil
	default:
		return nil, fmt.Errorf("%w: filter %v", vgdemo.ErrNotSupported, f)
	}
}

// aff3 converts m to the x/image affine layout.
func aff3(m vgdemo.Matrix) f64.Aff3 {
	return f64.Aff3{m.A, m.B, m.C, m.D, m.E, m.F}
}

// transformedBounds returns the integer bounding box of r mapped by m.
func transformedBounds(m vgdemo.Matrix, r image.Rectangle) image.Rectangle {
	corners := [4]vgdemo.Point{
		vgdemo.Pt(float64(r.Min.X), float64(r.Min.Y)),
		vgdemo.Pt(float64(r.Max.X), float64(r.Min.Y)),
		vgdemo.Pt(float64(r.Min.X), float64(r.Max.Y)),
		vgdemo.Pt(float64(r.Max.X), float64(r.Max.Y)),
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, c := range corners {
		p := m.TransformPoint(c)
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	return image.Rect(int(math.Floor(minX)), int(math.Floor(minY)), int(math.Ceil(maxX)), int(math.Ceil(maxY)))
}

// Blit records a composite of source, transformed by m, onto target.
// A non-zero c multiplies every source pixel.
func (g *GPU) Blit(target, source *vgdemo.FrameBuffer, m *vgdemo.Matrix, mode vgdemo.BlendMode, c vgdemo.Color, filter vgdemo.Filter) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	const op = "blit"
	if err := g.begin(op); err != nil {
		return err
	}
	if err := g.checkBuffer(op, source); err != nil {
		return err
	}
	return g.recordBlit(op, target, source, source.Bounds(), m, mode, c, filter)
}

// BlitRect records a composite of the rect region of source. The region's
// top-left corner lands on m's origin.
func (g *GPU) BlitRect(target, source *vgdemo.FrameBuffer, rect *vgdemo.Rect, m *vgdemo.Matrix, mode vgdemo.BlendMode, c vgdemo.Color, filter vgdemo.Filter) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	const op = "blit-rect"
	if err := g.begin(op); err != nil {
		return err
	}
	if err := g.checkBuffer(op, source); err != nil {
		return err
	}
	if rect == nil {
		return &vgdemo.OpError{Op: op, Err: fmt.Errorf("%w: nil rect", vgdemo.ErrInvalidArgument)}
	}
	sr := rect.Image().Intersect(source.Bounds())
	if sr.Empty() {
		return &vgdemo.OpError{Op: op, Target: source.String(), Err: fmt.Errorf("%w: rect %v outside source", vgdemo.ErrInvalidArgument, *rect)}
	}
	if m == nil {
		return &vgdemo.OpError{Op: op, Err: fmt.Errorf("%w: nil matrix", vgdemo.ErrInvalidArgument)}
	}
	shifted := m.Multiply(vgdemo.Translation(-float64(rect.X), -float64(rect.Y)))
	return g.recordBlit(op, target, source, sr, &shifted, mode, c, filter)
}

// recordBlit validates the shared blit arguments and records the
// composite. The caller holds g.mu.
func (g *GPU) recordBlit(op string, target, source *vgdemo.FrameBuffer, sr image.Rectangle, m *vgdemo.Matrix, mode vgdemo.BlendMode, c vgdemo.Color, filter vgdemo.Filter) error {
	if err := g.checkBuffer(op, target); err != nil {
		return err
	}
	if m == nil {
		return &vgdemo.OpError{Op: op, Err: fmt.Errorf("%w: nil matrix", vgdemo.ErrInvalidArgument)}
	}
	if err := checkBlend(op, mode); err != nil {
		return err
	}
	interp, err := interpolator(filter)
	if err != nil {
		return &vgdemo.OpError{Op: op, Err: err}
	}

	mat := *m
	g.record(func() error {
		if err := live(op, target); err != nil {
			return err
		}
		if err := live(op, source); err != nil {
			return err
		}
		box := transformedBounds(mat, sr).Intersect(target.Bounds())
		if box.Empty() {
			return nil
		}
		tmp := image.NewRGBA(box)
		interp.Transform(tmp, aff3(mat), source, sr, draw.Src, nil)

		comp := newCompositor(target, mode)
		tint := c != 0
		for y := box.Min.Y; y < box.Max.Y; y++ {
			for x := box.Min.X; x < box.Max.X; x++ {
				p := tmp.RGBAAt(x, y)
				if p.A == 0 {
					continue
				}
				r, gr, b, a := p.R, p.G, p.B, p.A
				if tint {
					r, gr, b, a = blend.Mul(r, c.R()), blend.Mul(gr, c.G()), blend.Mul(b, c.B()), blend.Mul(a, c.A())
				}
				comp.put(x, y, r, gr, b, a)
			}
		}
		return nil
	})
	vgdemo.Logger().Debug("soft: "+op, "target", target.String(), "source", source.String(), "rect", sr, "blend", mode, "filter", filter)
	return nil
}
