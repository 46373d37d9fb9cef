// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package vgdemo

import "math"

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo moves to a point without drawing.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// Path represents a vector path.
//
// A Path is also the accelerator resource that draw programs record for
// cleanup: the accelerator uploads it on first use and releases the upload
// in GPU.ClearPath. The pointer is the resource identity.
type Path struct {
	// Name identifies the path in diagnostics.
	Name string

	elements []PathElement
	start    Point
	current  Point
}

// NewPath creates a new empty path.
func NewPath(name string) *Path {
	return &Path{
		Name:     name,
		elements: make([]PathElement, 0, 16),
	}
}

// MoveTo moves to a point without drawing.
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// LineTo draws a line to a point.
func (p *Path) LineTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// QuadTo draws a quadratic Bezier curve.
func (p *Path) QuadTo(cx, cy, x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, QuadTo{Control: Pt(cx, cy), Point: pt})
	p.current = pt
}

// CubicTo draws a cubic Bezier curve.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, CubicTo{Control1: Pt(c1x, c1y), Control2: Pt(c2x, c2y), Point: pt})
	p.current = pt
}

// Close closes the current subpath.
func (p *Path) Close() {
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// CurrentPoint returns the current point of the path.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// Elements returns the path elements.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// Len returns the number of elements.
func (p *Path) Len() int {
	return len(p.elements)
}

// Rectangle adds a closed rectangle subpath.
func (p *Path) Rectangle(x, y, w, h float64) {
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
}

// Polygon adds a closed subpath through pts.
func (p *Path) Polygon(pts ...Point) {
	if len(pts) == 0 {
		return
	}
	p.MoveTo(pts[0].X, pts[0].Y)
	for _, pt := range pts[1:] {
		p.LineTo(pt.X, pt.Y)
	}
	p.Close()
}

// kappa is the cubic control distance for a quarter circle of radius 1.
const kappa = 0.5522847498307936

// Circle adds a closed circle subpath. A positive radius winds clockwise
// on a y-down screen, a negative radius counter-clockwise, so circles can
// punch holes under the non-zero rule.
func (p *Path) Circle(cx, cy, r float64) {
	k := r * kappa
	ar := math.Abs(r)
	ak := math.Abs(k)
	if r >= 0 {
		p.MoveTo(cx+ar, cy)
		p.CubicTo(cx+ar, cy+ak, cx+ak, cy+ar, cx, cy+ar)
		p.CubicTo(cx-ak, cy+ar, cx-ar, cy+ak, cx-ar, cy)
		p.CubicTo(cx-ar, cy-ak, cx-ak, cy-ar, cx, cy-ar)
		p.CubicTo(cx+ak, cy-ar, cx+ar, cy-ak, cx+ar, cy)
	} else {
		p.MoveTo(cx+ar, cy)
		p.CubicTo(cx+ar, cy-ak, cx+ak, cy-ar, cx, cy-ar)
		p.CubicTo(cx-ak, cy-ar, cx-ar, cy-ak, cx-ar, cy)
		p.CubicTo(cx-ar, cy+ak, cx-ak, cy+ar, cx, cy+ar)
		p.CubicTo(cx+ak, cy+ar, cx+ar, cy+ak, cx+ar, cy)
	}
	p.Close()
}

// Bounds returns the bounding box of all points and control points.
// An empty path returns the zero Rect.
func (p *Path) Bounds() Rect {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	add := func(pt Point) {
		minX = math.Min(minX, pt.X)
		minY = math.Min(minY, pt.Y)
		maxX = math.Max(maxX, pt.X)
		maxY = math.Max(maxY, pt.Y)
	}
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			add(e.Point)
		case LineTo:
			add(e.Point)
		case QuadTo:
			add(e.Control)
			add(e.Point)
		case CubicTo:
			add(e.Control1)
			add(e.Control2)
			add(e.Point)
		}
	}
	if math.IsInf(minX, 1) {
		return Rect{}
	}
	return Rect{
		X:      int(math.Floor(minX)),
		Y:      int(math.Floor(minY)),
		Width:  int(math.Ceil(maxX) - math.Floor(minX)),
		Height: int(math.Ceil(maxY) - math.Floor(minY)),
	}
}

// DefaultTolerance is the maximum distance, in device pixels, between a
// curve and the polyline that replaces it.
const DefaultTolerance = 0.25

// maxSubdivision bounds curve recursion.
const maxSubdivision = 16

// Flatten transforms the path by m and converts it to closed polygons.
// Curves are subdivided until they are within tol of the polyline. Every
// subpath is implicitly closed, as a fill would close it.
func (p *Path) Flatten(m Matrix, tol float64) [][]Point {
	if tol <= 0 {
		tol = DefaultTolerance
	}

	var polys [][]Point
	var cur []Point
	var current Point

	flush := func() {
		if len(cur) > 1 {
			polys = append(polys, cur)
		}
		cur = nil
	}

	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			flush()
			current = m.TransformPoint(e.Point)
			cur = append(cur, current)
		case LineTo:
			current = m.TransformPoint(e.Point)
			cur = append(cur, current)
		case QuadTo:
			ctrl := m.TransformPoint(e.Control)
			end := m.TransformPoint(e.Point)
			cur = flattenQuad(cur, current, ctrl, end, tol, 0)
			current = end
		case CubicTo:
			c1 := m.TransformPoint(e.Control1)
			c2 := m.TransformPoint(e.Control2)
			end := m.TransformPoint(e.Point)
			cur = flattenCubic(cur, current, c1, c2, end, tol, 0)
			current = end
		case Close:
			if len(cur) > 0 {
				start := cur[0]
				flush()
				current = start
				cur = append(cur, current)
			}
		}
	}
	flush()
	return polys
}

// flattenQuad appends the polyline for a quadratic Bezier, excluding p0.
func flattenQuad(dst []Point, p0, p1, p2 Point, tol float64, depth int) []Point {
	if depth >= maxSubdivision || p1.distanceToLine(p0, p2) <= tol {
		return append(dst, p2)
	}
	q0 := p0.Mid(p1)
	q1 := p1.Mid(p2)
	r := q0.Mid(q1)
	dst = flattenQuad(dst, p0, q0, r, tol, depth+1)
	return flattenQuad(dst, r, q1, p2, tol, depth+1)
}

// flattenCubic appends the polyline for a cubic Bezier, excluding p0.
func flattenCubic(dst []Point, p0, p1, p2, p3 Point, tol float64, depth int) []Point {
	d := math.Max(p1.distanceToLine(p0, p3), p2.distanceToLine(p0, p3))
	if depth >= maxSubdivision || d <= tol {
		return append(dst, p3)
	}
	q0 := p0.Mid(p1)
	q1 := p1.Mid(p2)
	q2 := p2.Mid(p3)
	r0 := q0.Mid(q1)
	r1 := q1.Mid(q2)
	s := r0.Mid(r1)
	dst = flattenCubic(dst, p0, q0, r0, s, tol, depth+1)
	return flattenCubic(dst, s, r1, q2, p3, tol, depth+1)
}
