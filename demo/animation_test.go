// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package demo

import (
	"math"
	"testing"

	"github.com/gogpu/vgdemo"
)

const eps = 1e-9

// scaleOf returns the uniform scale of m.
func scaleOf(m vgdemo.Matrix) float64 {
	return math.Sqrt(math.Abs(m.A*m.E - m.B*m.D))
}

func TestAnimationBase(t *testing.T) {
	a := NewAnimation(800, 480)
	want := vgdemo.Matrix{A: 0.3, E: 0.3, C: 400, F: 240}
	if !a.Matrix.ApproxEqual(want, eps) {
		t.Errorf("Matrix = %+v, want %+v", a.Matrix, want)
	}
	if !a.Base().ApproxEqual(want, eps) {
		t.Errorf("Base() = %+v, want %+v", a.Base(), want)
	}
}

func TestAnimationZoomCycle(t *testing.T) {
	a := NewAnimation(800, 480)
	tests := []struct {
		steps     int
		wantCount int
		wantOut   bool
		wantScale float64
	}{
		{1, 1, false, 0.3 * 0.8},
		{4, 4, false, 0.3 * math.Pow(0.8, 4)},
		{5, 5, true, 0.3 * math.Pow(0.8, 5)},
		{6, 4, true, 0.3 * math.Pow(0.8, 4)},
		{10, 0, false, 0.3},
		{11, 1, false, 0.3 * 0.8},
	}
	done := 0
	for _, tt := range tests {
		for ; done < tt.steps; done++ {
			a.Step()
		}
		if a.Count() != tt.wantCount || a.ZoomOut() != tt.wantOut {
			t.Errorf("after %d steps: count %d zoomOut %v, want %d %v",
				tt.steps, a.Count(), a.ZoomOut(), tt.wantCount, tt.wantOut)
		}
		if got := scaleOf(a.Matrix); math.Abs(got-tt.wantScale) > 1e-6 {
			t.Errorf("after %d steps: scale %v, want %v", tt.steps, got, tt.wantScale)
		}
		if math.Abs(a.Matrix.C-400) > eps || math.Abs(a.Matrix.F-240) > eps {
			t.Errorf("after %d steps: origin moved to (%v, %v)", tt.steps, a.Matrix.C, a.Matrix.F)
		}
	}
}

func TestAnimationRotation(t *testing.T) {
	a := NewAnimation(800, 480)
	a.Step()
	angle := math.Atan2(a.Matrix.D, a.Matrix.A) * 180 / math.Pi
	if math.Abs(angle-RotationStep) > 1e-6 {
		t.Errorf("rotation after one step = %v, want %v", angle, RotationStep)
	}
}

func TestAnimationReset(t *testing.T) {
	a := NewAnimation(800, 480)
	for i := 0; i < 7; i++ {
		a.Step()
	}
	a.Reset()
	if !a.Matrix.ApproxEqual(a.Base(), eps) || a.Count() != 0 || a.ZoomOut() {
		t.Errorf("Reset left matrix %+v count %d zoomOut %v", a.Matrix, a.Count(), a.ZoomOut())
	}
}
