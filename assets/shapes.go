// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package assets

import (
	"fmt"

	"github.com/gogpu/vgdemo"
	"github.com/gogpu/vgdemo/demo"
)

const (
	opEnd     = vgdemo.OpEnd
	opClose   = vgdemo.OpClose
	opMove    = vgdemo.OpMove
	opLine    = vgdemo.OpLine
	opLineRel = vgdemo.OpLineRel
	opQuad    = vgdemo.OpQuad
)

// Fill-rule and blend test shapes, in a 400x400 design space.
var (
	polygonData = []int32{
		opMove, 50, 180,
		opLine, 200, 60,
		opLine, 350, 180,
		opLine, 50, 180,
		opMove, 50, 60,
		opLine, 350, 60,
		opLine, 200, 180,
		opLine, 50, 60,
		opEnd,
	}

	starData = []int32{
		opMove, 200, 40,
		opLine, 260, 220,
		opLine, 100, 100,
		opLine, 300, 100,
		opLine, 140, 220,
		opLine, 200, 40,
		opEnd,
	}

	squaresData = []int32{
		opMove, 118, 38,
		opLine, 218, 38,
		opLine, 218, 138,
		opLine, 118, 138,
		opLine, 118, 38,
		opMove, 183, 103,
		opLine, 283, 103,
		opLine, 283, 203,
		opLine, 183, 203,
		opLine, 183, 103,
		opEnd,
	}
)

// Pattern-fill shapes, centered on the origin.
var (
	squareData = []int32{
		opMove, -80, -80,
		opLine, 80, -80,
		opLine, 80, 80,
		opLine, -80, 80,
		opClose,
		opEnd,
	}

	pentagonData = []int32{
		opMove, 0, -80,
		opLine, 76, -24,
		opLine, 47, 64,
		opLine, -47, 64,
		opLine, -76, -24,
		opClose,
		opEnd,
	}

	triangleData = []int32{
		opMove, 0, -74,
		opLineRel, 85, 148,
		opLineRel, -170, 0,
		opClose,
		opEnd,
	}

	hexagonData = []int32{
		opMove, 80, 0,
		opLine, 40, 70,
		opLine, -40, 70,
		opLine, -80, 0,
		opLine, -40, -70,
		opLine, 40, -70,
		opClose,
		opEnd,
	}
)

// highlightRadius is the corner radius of the highlight.
const highlightRadius = 10

func highlightData() []int32 {
	const s, r = demo.HighlightSize, highlightRadius
	return []int32{
		opMove, r, 0,
		opLine, s - r, 0,
		opQuad, s, 0, s, r,
		opLine, s, s - r,
		opQuad, s, s, s - r, s,
		opLine, r, s,
		opQuad, 0, s, 0, s - r,
		opLine, 0, r,
		opQuad, 0, 0, r, 0,
		opEnd,
	}
}

// Circles returns two concentric circles around (200, 120): the outer one
// clockwise, the inner one counter-clockwise, so the non-zero rule leaves
// a hole that even-odd also leaves.
func Circles() *vgdemo.Path {
	p := vgdemo.NewPath("circles")
	p.Circle(200, 120, 100)
	p.Circle(200, 120, -50)
	return p
}

type shape struct {
	name string
	data []int32
	dst  **vgdemo.Path
}

// decodeShapes fills the shape paths of a.
func decodeShapes(a *demo.Assets) error {
	shapes := []shape{
		{"polygon", polygonData, &a.Polygon},
		{"star", starData, &a.Star},
		{"squares", squaresData, &a.Squares},
		{"square", squareData, &a.Square},
		{"pentagon", pentagonData, &a.Pentagon},
		{"triangle", triangleData, &a.Triangle},
		{"hexagon", hexagonData, &a.Hexagon},
		{"highlight", highlightData(), &a.Highlight},
	}
	for _, s := range shapes {
		p, err := vgdemo.DecodePathData(s.name, s.data)
		if err != nil {
			return fmt.Errorf("assets: %w", err)
		}
		*s.dst = p
	}
	a.Circles = Circles()
	return nil
}
