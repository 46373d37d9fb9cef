// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package demo

import "github.com/gogpu/vgdemo"

// Animation parameters of the default program.
const (
	// BaseScale is the logo scale of the canonical transform.
	BaseScale = 0.3
	// ZoomInFactor is applied while the scale counter climbs.
	ZoomInFactor = 0.8
	// ZoomOutFactor is applied while it falls back.
	ZoomOutFactor = 1.25
	// ScalingLimit is the number of steps in each direction.
	ScalingLimit = 5
	// RotationStep is the rotation per tick, in degrees.
	RotationStep = 5.0
)

// Animation is the transform of the default program and its zoom state.
type Animation struct {
	Matrix vgdemo.Matrix

	width, height int
	zoomOut       bool
	count         int
}

// NewAnimation creates an animation for a width x height screen, reset to
// the canonical transform.
func NewAnimation(width, height int) *Animation {
	a := &Animation{width: width, height: height}
	a.Reset()
	return a
}

// Base returns the canonical transform: the screen center, scaled by
// BaseScale.
func (a *Animation) Base() vgdemo.Matrix {
	m := vgdemo.Identity()
	m.Translate(float64(a.width)/2, float64(a.height)/2)
	m.Scale(BaseScale, BaseScale)
	return m
}

// Reset restores the canonical transform and zoom state.
func (a *Animation) Reset() {
	a.Matrix = a.Base()
	a.zoomOut = false
	a.count = 0
}

// Step advances one tick: one zoom step and one rotation step.
func (a *Animation) Step() {
	if a.zoomOut {
		a.Matrix.Scale(ZoomOutFactor, ZoomOutFactor)
		a.count--
		if a.count == 0 {
			a.zoomOut = false
		}
	} else {
		a.Matrix.Scale(ZoomInFactor, ZoomInFactor)
		a.count++
		if a.count == ScalingLimit {
			a.zoomOut = true
		}
	}
	a.Matrix.Rotate(RotationStep)
}

// ZoomOut reports the zoom direction.
func (a *Animation) ZoomOut() bool { return a.zoomOut }

// Count returns the zoom step counter.
func (a *Animation) Count() int { return a.count }
