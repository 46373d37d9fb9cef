// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package vgdemo

import (
	"errors"
	"testing"
)

func TestDecodePathData(t *testing.T) {
	data := []int32{
		OpMove, 10, 20,
		OpLineRel, 5, 0,
		OpLine, 15, 30,
		OpQuadRel, 0, 10, -5, 10,
		OpCubic, 0, 0, 1, 1, 2, 2,
		OpClose,
		OpEnd,
		OpLine, 99, 99, // past the end marker
	}
	p, err := DecodePathData("mixed", data)
	if err != nil {
		t.Fatalf("DecodePathData() error = %v", err)
	}
	if p.Name != "mixed" {
		t.Errorf("Name = %q", p.Name)
	}

	els := p.Elements()
	if len(els) != 6 {
		t.Fatalf("decoded %d elements, want 6", len(els))
	}
	if got := els[1].(LineTo).Point; got != Pt(15, 20) {
		t.Errorf("relative line = %v, want (15,20)", got)
	}
	q := els[3].(QuadTo)
	if q.Control != Pt(15, 40) || q.Point != Pt(10, 40) {
		t.Errorf("relative quad = %+v, want control (15,40) end (10,40)", q)
	}
	if got := els[4].(CubicTo).Point; got != Pt(2, 2) {
		t.Errorf("cubic end = %v, want (2,2)", got)
	}
	if _, ok := els[5].(Close); !ok {
		t.Errorf("last element %T, want Close", els[5])
	}
}

func TestDecodePathDataRelativeChain(t *testing.T) {
	// A triangle drawn with relative lines from an absolute move.
	p, err := DecodePathData("triangle", []int32{
		OpMove, 0, 0,
		OpLineRel, 100, 0,
		OpLineRel, -50, 80,
		OpClose,
	})
	if err != nil {
		t.Fatalf("DecodePathData() error = %v", err)
	}
	if got, want := p.Bounds(), (Rect{Width: 100, Height: 80}); got != want {
		t.Errorf("Bounds() = %+v, want %+v", got, want)
	}
}

func TestDecodePathDataErrors(t *testing.T) {
	tests := []struct {
		name string
		data []int32
	}{
		{"empty", nil},
		{"only end", []int32{OpEnd}},
		{"unknown opcode", []int32{OpMove, 0, 0, 0x0A}},
		{"negative opcode", []int32{-1}},
		{"truncated", []int32{OpMove, 0, 0, OpCubic, 1, 2, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := DecodePathData(tt.name, tt.data)
			if !errors.Is(err, ErrPathData) {
				t.Errorf("DecodePathData() error = %v, want ErrPathData", err)
			}
			if p != nil {
				t.Errorf("DecodePathData() returned a path on error")
			}
		})
	}
}
