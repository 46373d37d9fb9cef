// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package vgdemo

import (
	"errors"
	"fmt"
)

// ErrPathData is returned when an opcode stream cannot be decoded.
var ErrPathData = errors.New("vgdemo: malformed path data")

// Path opcodes of the accelerator's command stream. Odd opcodes are the
// relative forms: every coordinate of the segment is an offset from the
// current point.
const (
	OpEnd      = 0x00
	OpClose    = 0x01
	OpMove     = 0x02
	OpMoveRel  = 0x03
	OpLine     = 0x04
	OpLineRel  = 0x05
	OpQuad     = 0x06
	OpQuadRel  = 0x07
	OpCubic    = 0x08
	OpCubicRel = 0x09
)

// opArgs is the number of coordinates that follow each opcode.
var opArgs = [...]int{
	OpEnd:      0,
	OpClose:    0,
	OpMove:     2,
	OpMoveRel:  2,
	OpLine:     2,
	OpLineRel:  2,
	OpQuad:     4,
	OpQuadRel:  4,
	OpCubic:    6,
	OpCubicRel: 6,
}

// DecodePathData builds a Path from an opcode stream: each opcode is
// followed by its coordinates, and OpEnd (or the end of data) terminates
// the stream.
func DecodePathData(name string, data []int32) (*Path, error) {
	p := NewPath(name)
	for i := 0; i < len(data); {
		op := int(data[i])
		if op < 0 || op >= len(opArgs) {
			return nil, fmt.Errorf("%w: %s: opcode %#x at %d", ErrPathData, name, op, i)
		}
		if op == OpEnd {
			break
		}
		n := opArgs[op]
		if i+1+n > len(data) {
			return nil, fmt.Errorf("%w: %s: opcode %#x at %d needs %d coordinates", ErrPathData, name, op, i, n)
		}
		args := make([]float64, n)
		for j := range args {
			args[j] = float64(data[i+1+j])
		}
		if op&1 == 1 && op != OpClose {
			c := p.CurrentPoint()
			for j := 0; j < n; j += 2 {
				args[j] += c.X
				args[j+1] += c.Y
			}
		}
		switch op {
		case OpClose:
			p.Close()
		case OpMove, OpMoveRel:
			p.MoveTo(args[0], args[1])
		case OpLine, OpLineRel:
			p.LineTo(args[0], args[1])
		case OpQuad, OpQuadRel:
			p.QuadTo(args[0], args[1], args[2], args[3])
		case OpCubic, OpCubicRel:
			p.CubicTo(args[0], args[1], args[2], args[3], args[4], args[5])
		}
		i += 1 + n
	}
	if p.Len() == 0 {
		return nil, fmt.Errorf("%w: %s: no segments", ErrPathData, name)
	}
	return p, nil
}
