// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package demo

import "fmt"

// Demo identifies a draw program.
type Demo uint8

const (
	// Default is the idle animation. It is never selected by a command.
	Default Demo = iota
	// FillRule compares the even-odd and non-zero fill rules.
	FillRule
	// AlphaBlend composites through a scratch buffer with source-over and
	// multiply.
	AlphaBlend
	// Blit copies a region of a scratch buffer into the target.
	Blit
	// Pattern fills shapes with an image.
	Pattern
	// Filter blits icons with linear filtering behind a moving highlight.
	Filter

	numDemos
)

var demoNames = [numDemos]string{
	Default:    "default",
	FillRule:   "fill-rule",
	AlphaBlend: "alpha-blend",
	Blit:       "blit",
	Pattern:    "pattern-fill",
	Filter:     "filter",
}

var demoTitles = [numDemos]string{
	Default:    "Rotating logo",
	FillRule:   "Fill rules",
	AlphaBlend: "Alpha blending",
	Blit:       "Blit with color",
	Pattern:    "Pattern fill",
	Filter:     "Image filtering",
}

var demoDescriptions = [numDemos]string{
	Default: "The logo rotates while zooming in and out.",
	FillRule: "The same paths drawn with the even-odd rule on the left and the " +
		"non-zero rule on the right.",
	AlphaBlend: "Shapes drawn into an off-screen buffer and blended onto grey: " +
		"source-over on the left, multiply on the right.",
	Blit: "The logo rendered off-screen at quarter scale, then a region of it " +
		"copied twice onto the screen.",
	Pattern: "Four shapes filled with an image; teal where the image ends.",
	Filter: "Four icons scaled with linear filtering; the highlight moves " +
		"every five seconds.",
}

// String returns the demo name.
func (d Demo) String() string {
	if d < numDemos {
		return demoNames[d]
	}
	return fmt.Sprintf("Demo(%d)", uint8(d))
}

// Title returns the menu title.
func (d Demo) Title() string {
	if d < numDemos {
		return demoTitles[d]
	}
	return d.String()
}

// Description returns a sentence describing what the demo shows.
func (d Demo) Description() string {
	if d < numDemos {
		return demoDescriptions[d]
	}
	return ""
}

// Valid reports whether d can be selected by a command.
func (d Demo) Valid() bool {
	return d > Default && d < numDemos
}

// Selectable returns the demos a command can select, in menu order.
func Selectable() []Demo {
	return []Demo{FillRule, AlphaBlend, Blit, Pattern, Filter}
}

// Parse maps a menu key ('1' to '5') to its demo.
func Parse(key byte) (Demo, bool) {
	if key < '1' || key > '0'+byte(numDemos-1) {
		return Default, false
	}
	return Demo(key - '0'), true
}

// Key returns the menu key for a selectable demo, or 0.
func (d Demo) Key() byte {
	if !d.Valid() {
		return 0
	}
	return '0' + byte(d)
}
