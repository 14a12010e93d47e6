// Package luma maps pixels onto a fixed character ramp ordered from the
// densest glyph to blank space.
package luma

import "image/color"

// ramp holds the glyphs, darkest first. Bright pixels get sparse glyphs.
var ramp = [...]rune{
	'$', '#', 'B', '%', '*', 'o', 'c', ';', ':', '<', '~', '^', '"', '\'', ',', '.', ' ',
}

// Luma reduces the straight RGB channels of c to a single brightness value.
// The weights are the ITU-R BT.601 weights used by color.GrayModel. Alpha is ignored.
func Luma(c color.NRGBA) uint8 {
	y := (19595*uint32(c.R) + 38470*uint32(c.G) + 7471*uint32(c.B) + 1<<15) >> 16
	return uint8(y)
}

// Ramp returns a copy of the glyph ramp.
func Ramp() [len(ramp)]rune { return ramp }

// Index returns the ramp position for the brightness l.
// [0,255] is split into equal width buckets, one per ramp glyph.
func Index(l uint8) int {
	return int(l) * len(ramp) / 256
}

// Glyph returns the ramp glyph for the pixel c.
func Glyph(c color.NRGBA) rune { return ramp[Index(Luma(c))] }
