// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package blend

func blendNone(sr, sg, sb, sa, _, _, _, _ byte) (byte, byte, byte, byte) {
	return sr, sg, sb, sa
}

// blendSrcOver composites source over destination.
// Formula: S + D * (1 - Sa)
func blendSrcOver(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	invSa := inv255(sa)
	return addClamp(sr, mulDiv255(dr, invSa)),
		addClamp(sg, mulDiv255(dg, invSa)),
		addClamp(sb, mulDiv255(db, invSa)),
		addClamp(sa, mulDiv255(da, invSa))
}

// blendDstOver composites destination over source.
// Formula: S * (1 - Da) + D
func blendDstOver(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return blendSrcOver(dr, dg, db, da, sr, sg, sb, sa)
}

// blendSrcIn shows source only where destination exists.
// Formula: S * Da
func blendSrcIn(sr, sg, sb, sa, _, _, _, da byte) (byte, byte, byte, byte) {
	return mulDiv255(sr, da), mulDiv255(sg, da), mulDiv255(sb, da), mulDiv255(sa, da)
}

// blendDstIn shows destination only where source exists.
// Formula: D * Sa
func blendDstIn(_, _, _, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return mulDiv255(dr, sa), mulDiv255(dg, sa), mulDiv255(db, sa), mulDiv255(da, sa)
}

// blendAdditive adds source and destination.
// Formula: S + D (clamped)
func blendAdditive(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return addClamp(sr, dr), addClamp(sg, dg), addClamp(sb, db), addClamp(sa, da)
}

// blendSubtract removes the source from the destination.
// Formula: D * (1 - S), per channel including alpha
func blendSubtract(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return mulDiv255(dr, inv255(sr)), mulDiv255(dg, inv255(sg)),
		mulDiv255(db, inv255(sb)), mulDiv255(da, inv255(sa))
}
