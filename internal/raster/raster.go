// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package raster provides scanline rasterization for flattened paths.
//
// Coverage is sampled once per pixel at the pixel center, without
// anti-aliasing: a pixel is inside when its center is inside under the
// chosen fill rule.
package raster

import (
	"cmp"
	"math"
	"slices"
)

// Point represents a 2D point (internal copy to avoid import cycle).
type Point struct {
	X, Y float64
}

// FillRule specifies how to determine which areas are inside a path.
type FillRule int

const (
	// FillRuleNonZero uses the non-zero winding rule.
	FillRuleNonZero FillRule = iota
	// FillRuleEvenOdd uses the even-odd rule.
	FillRuleEvenOdd
)

func (r FillRule) inside(winding int) bool {
	if r == FillRuleEvenOdd {
		return winding&1 != 0
	}
	return winding != 0
}

// SpanFunc receives one covered run of pixels [x0, x1) on row y.
type SpanFunc func(y, x0, x1 int)

// Edge represents a line segment for scanline rasterization.
type Edge struct {
	x0, y0 float64 // Start point, y0 < y1
	x1, y1 float64 // End point
	dir    int     // +1 when the segment runs downward, -1 upward
}

// NewEdge creates a new edge from two points.
func NewEdge(p0, p1 Point) Edge {
	// Determine direction before the swap (for the non-zero winding rule).
	dir := 1
	if p0.Y > p1.Y {
		dir = -1
		p0, p1 = p1, p0
	}
	return Edge{x0: p0.X, y0: p0.Y, x1: p1.X, y1: p1.Y, dir: dir}
}

// XAtY calculates the x coordinate at the given y coordinate.
func (e *Edge) XAtY(y float64) float64 {
	if e.y1 == e.y0 {
		return e.x0
	}
	t := (y - e.y0) / (e.y1 - e.y0)
	return e.x0 + (e.x1-e.x0)*t
}

// Dir returns the winding direction of the edge.
func (e *Edge) Dir() int { return e.dir }

type crossing struct {
	x   float64
	dir int
}

// Rasterizer performs scanline rasterization. Its buffers are reused
// between calls, so a Rasterizer must not be shared between goroutines.
type Rasterizer struct {
	edges []Edge
	xs    []crossing
}

// NewRasterizer creates a new rasterizer.
func NewRasterizer() *Rasterizer {
	return &Rasterizer{
		edges: make([]Edge, 0, 64),
		xs:    make([]crossing, 0, 16),
	}
}

// Fill rasterizes the closed polygons polys and reports every covered span
// inside a width x height area. Spans on a row never overlap.
func (r *Rasterizer) Fill(polys [][]Point, rule FillRule, width, height int, span SpanFunc) {
	r.edges = r.edges[:0]
	yMin := math.Inf(1)
	yMax := math.Inf(-1)
	for _, poly := range polys {
		n := len(poly)
		for i := 0; i < n; i++ {
			p0 := poly[i]
			p1 := poly[(i+1)%n]
			// Horizontal edges never cross a sample row.
			if p0.Y == p1.Y {
				continue
			}
			e := NewEdge(p0, p1)
			yMin = math.Min(yMin, e.y0)
			yMax = math.Max(yMax, e.y1)
			r.edges = append(r.edges, e)
		}
	}
	if len(r.edges) == 0 {
		return
	}

	rowMin := max(int(math.Floor(yMin)), 0)
	rowMax := min(int(math.Ceil(yMax)), height)

	for y := rowMin; y < rowMax; y++ {
		r.scanline(y, rule, width, span)
	}
}

// scanline processes a single row sampled at its center.
func (r *Rasterizer) scanline(y int, rule FillRule, width int, span SpanFunc) {
	sy := float64(y) + 0.5
	r.xs = r.xs[:0]
	for i := range r.edges {
		e := &r.edges[i]
		if e.y0 <= sy && sy < e.y1 {
			r.xs = append(r.xs, crossing{x: e.XAtY(sy), dir: e.dir})
		}
	}
	if len(r.xs) < 2 {
		return
	}
	slices.SortFunc(r.xs, func(a, b crossing) int { return cmp.Compare(a.x, b.x) })

	winding := 0
	open := false
	var start float64
	for _, c := range r.xs {
		winding += c.dir
		in := rule.inside(winding)
		switch {
		case in && !open:
			open = true
			start = c.x
		case !in && open:
			open = false
			emit(y, start, c.x, width, span)
		}
	}
}

// emit converts the covered interval [xa, xb) to the pixels whose centers
// lie inside it.
func emit(y int, xa, xb float64, width int, span SpanFunc) {
	x0 := max(int(math.Ceil(xa-0.5)), 0)
	x1 := min(int(math.Ceil(xb-0.5)), width)
	if x0 < x1 {
		span(y, x0, x1)
	}
}
