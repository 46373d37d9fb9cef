// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package assets

import "github.com/gogpu/vgdemo"

// Logo colors, in draw order.
const (
	LogoBlue vgdemo.Color = 0xFF4018EC
	LogoRed  vgdemo.Color = 0xFFB36600
)

// Logo returns the two logo paths: a crescent swoosh and a block wordmark
// beneath it. Both live in x 100..940, y 300..650; at quarter scale they
// fit demo.LogoRect for the default screen.
func Logo() [2]*vgdemo.Path {
	arc := vgdemo.NewPath("logo-arc")
	arc.MoveTo(100, 450)
	arc.QuadTo(520, 180, 940, 450)
	arc.QuadTo(520, 260, 100, 450)
	arc.Close()

	mark := vgdemo.NewPath("logo-mark")
	mark.Polygon(
		vgdemo.Pt(200, 480), vgdemo.Pt(260, 480), vgdemo.Pt(290, 580),
		vgdemo.Pt(320, 480), vgdemo.Pt(380, 480), vgdemo.Pt(320, 650),
		vgdemo.Pt(260, 650),
	)
	// G: a ring with a bar inside, filled even-odd.
	mark.Rectangle(420, 480, 180, 170)
	mark.Rectangle(460, 520, 100, 90)
	mark.Rectangle(510, 560, 50, 30)
	mark.Rectangle(640, 600, 300, 50)
	mark.Circle(900, 520, 40)

	return [2]*vgdemo.Path{arc, mark}
}

// LogoColors returns the logo fill colors.
func LogoColors() [2]vgdemo.Color {
	return [2]vgdemo.Color{LogoBlue, LogoRed}
}
