// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package blend implements the accelerator's blend modes.
//
// All blend operations work with premultiplied alpha values in the range 0-255.
//
// References:
//   - Porter-Duff: "Compositing Digital Images" (1984)
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/
package blend

// Mode represents a blend operation.
type Mode uint8

const (
	ModeNone     Mode = iota // Result: S
	ModeSrcOver              // Result: S + D*(1-Sa)
	ModeDstOver              // Result: S*(1-Da) + D
	ModeSrcIn                // Result: S*Da
	ModeDstIn                // Result: D*Sa
	ModeMultiply             // Result: S*(1-Da) + D*(1-Sa) + S*D
	ModeScreen               // Result: S + D - S*D
	ModeDarken               // Result: min(S*Da, D*Sa) + S*(1-Da) + D*(1-Sa)
	ModeLighten              // Result: max(S*Da, D*Sa) + S*(1-Da) + D*(1-Sa)
	ModeAdditive             // Result: S + D (clamped to 255)
	ModeSubtract             // Result: D*(1-S)
)

// Func is the signature for blend operations.
// All values are premultiplied alpha, 0-255.
// Parameters:
//   - sr, sg, sb, sa: source color (red, green, blue, alpha)
//   - dr, dg, db, da: destination color (red, green, blue, alpha)
//
// Returns: resulting color (r, g, b, a) after blending.
type Func func(sr, sg, sb, sa, dr, dg, db, da byte) (r, g, b, a byte)

// Get returns the blend function for the given mode.
// Returns source-over for unknown modes.
func Get(mode Mode) Func {
	switch mode {
	case ModeNone:
		return blendNone
	case ModeSrcOver:
		return blendSrcOver
	case ModeDstOver:
		return blendDstOver
	case ModeSrcIn:
		return blendSrcIn
	case ModeDstIn:
		return blendDstIn
	case ModeMultiply:
		return blendMultiply
	case ModeScreen:
		return blendScreen
	case ModeDarken:
		return blendDarken
	case ModeLighten:
		return blendLighten
	case ModeAdditive:
		return blendAdditive
	case ModeSubtract:
		return blendSubtract
	default:
		return blendSrcOver
	}
}
