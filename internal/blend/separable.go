// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package blend

// separable builds a blend function from a per-channel mix term B(S, D)
// given on premultiplied values. The result is
// B + S*(1-Da) + D*(1-Sa) for color and Sa + Da - Sa*Da for alpha.
func separable(mix func(s, sa, d, da byte) uint16) Func {
	return func(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
		invSa := inv255(sa)
		invDa := inv255(da)
		ch := func(s, d byte) byte {
			v := mix(s, sa, d, da) + uint16(mulDiv255(s, invDa)) + uint16(mulDiv255(d, invSa))
			if v > 255 {
				return 255
			}
			return byte(v)
		}
		return ch(sr, dr), ch(sg, dg), ch(sb, db), addClamp(sa, mulDiv255(da, invSa))
	}
}

var (
	blendMultiply = separable(func(s, _, d, _ byte) uint16 {
		return uint16(mulDiv255(s, d))
	})

	// Screen is S + D - S*D; in separable form the mix term is
	// S*Da + D*Sa - S*D.
	blendScreen = separable(func(s, sa, d, da byte) uint16 {
		v := int(mulDiv255(s, da)) + int(mulDiv255(d, sa)) - int(mulDiv255(s, d))
		return uint16(max(v, 0))
	})

	blendDarken = separable(func(s, sa, d, da byte) uint16 {
		return uint16(min(mulDiv255(s, da), mulDiv255(d, sa)))
	})

	blendLighten = separable(func(s, sa, d, da byte) uint16 {
		return uint16(max(mulDiv255(s, da), mulDiv255(d, sa)))
	})
)
