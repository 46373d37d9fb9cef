// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package vgdemo

import (
	"math"
	"testing"
)

const eps = 1e-9

func approx(a, b float64) bool { return math.Abs(a-b) <= eps }

func TestMatrixConstructors(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		in   Point
		want Point
	}{
		{"identity", Identity(), Pt(3, 4), Pt(3, 4)},
		{"translation", Translation(10, -5), Pt(3, 4), Pt(13, -1)},
		{"scaling", Scaling(2, 0.5), Pt(3, 4), Pt(6, 2)},
		{"rotation 90", Rotation(90), Pt(1, 0), Pt(0, 1)},
		{"rotation 180", Rotation(180), Pt(1, 2), Pt(-1, -2)},
		{"rotation -90", Rotation(-90), Pt(0, 1), Pt(1, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.m.TransformPoint(tt.in)
			if !approx(got.X, tt.want.X) || !approx(got.Y, tt.want.Y) {
				t.Errorf("TransformPoint(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestMatrixPostMultiply(t *testing.T) {
	// Translate then Scale: points are scaled first, then moved.
	m := Identity()
	m.Translate(400, 240)
	m.Scale(0.3, 0.3)

	tests := []struct {
		in, want Point
	}{
		{Pt(0, 0), Pt(400, 240)},
		{Pt(100, 0), Pt(430, 240)},
		{Pt(0, -100), Pt(400, 210)},
	}
	for _, tt := range tests {
		got := m.TransformPoint(tt.in)
		if !approx(got.X, tt.want.X) || !approx(got.Y, tt.want.Y) {
			t.Errorf("TransformPoint(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}

	// Rotating afterwards turns about the already placed origin.
	m.Rotate(90)
	got := m.TransformPoint(Pt(100, 0))
	if !approx(got.X, 400) || !approx(got.Y, 270) {
		t.Errorf("after Rotate(90): TransformPoint(100,0) = %v, want (400,270)", got)
	}
}

func TestMatrixMultiplyOrder(t *testing.T) {
	a := Translation(10, 0)
	b := Scaling(2, 2)
	p := Pt(1, 1)

	ab := a.Multiply(b).TransformPoint(p)
	if !approx(ab.X, 12) || !approx(ab.Y, 2) {
		t.Errorf("(T*S)(1,1) = %v, want (12,2)", ab)
	}
	ba := b.Multiply(a).TransformPoint(p)
	if !approx(ba.X, 22) || !approx(ba.Y, 2) {
		t.Errorf("(S*T)(1,1) = %v, want (22,2)", ba)
	}
}

func TestMatrixZoomCycleReturnsToBase(t *testing.T) {
	base := Identity()
	base.Translate(400, 240)
	base.Scale(0.3, 0.3)

	m := base
	for range 5 {
		m.Scale(0.8, 0.8)
	}
	for range 5 {
		m.Scale(1.25, 1.25)
	}
	if !m.ApproxEqual(base, 1e-12) {
		t.Errorf("zoom in/out cycle = %+v, want %+v", m, base)
	}
}

func TestMatrixInvert(t *testing.T) {
	m := Identity()
	m.Translate(30, -7)
	m.Rotate(33)
	m.Scale(2, 3)

	inv, ok := m.Invert()
	if !ok {
		t.Fatal("Invert() reported singular matrix")
	}
	if got := m.Multiply(inv); !got.ApproxEqual(Identity(), 1e-12) {
		t.Errorf("m * m^-1 = %+v, want identity", got)
	}

	if _, ok := Scaling(0, 1).Invert(); ok {
		t.Error("Invert() of a singular matrix reported ok")
	}
}

func TestMatrixPredicates(t *testing.T) {
	tests := []struct {
		name        string
		m           Matrix
		identity    bool
		translation bool
	}{
		{"identity", Identity(), true, true},
		{"translation", Translation(1, 2), false, true},
		{"scaling", Scaling(2, 2), false, false},
		{"rotation", Rotation(45), false, false},
		{"zero", Matrix{}, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.IsIdentity(); got != tt.identity {
				t.Errorf("IsIdentity() = %v, want %v", got, tt.identity)
			}
			if got := tt.m.IsTranslation(); got != tt.translation {
				t.Errorf("IsTranslation() = %v, want %v", got, tt.translation)
			}
		})
	}
}

func TestMatrixReset(t *testing.T) {
	m := Rotation(30)
	m.Reset()
	if !m.IsIdentity() {
		t.Errorf("Reset() left %+v", m)
	}
}
