// Package cell decides what gets drawn for a single output pixel.
package cell

import (
	"image/color"

	"github.com/srlehn/termascii/luma"
)

// White is the display color of cells when color output is off.
var White = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// Cell is one output unit: a glyph with its display color.
// Blank cells are drawn as two spaces without any escape sequence.
// EOL marks a row terminator slot and carries no glyph.
type Cell struct {
	Glyph rune
	Color color.RGBA
	Blank bool
	EOL   bool
	set   bool
}

// IsSet reports whether the cell was produced by a Policy or as a row terminator.
// The zero Cell is unset.
func (c Cell) IsSet() bool { return c.set }

// EndOfLine returns a row terminator cell.
func EndOfLine() Cell { return Cell{EOL: true, set: true} }

// Policy holds the flags that affect how a pixel is turned into a Cell.
//
// Alpha is only looked at when NoBackground is set, and only fully
// transparent pixels are affected. There is no blending: a partially
// transparent pixel is drawn with its straight RGB values.
type Policy struct {
	Color        bool
	NoBackground bool
}

// Cell maps c to a Cell.
func (p Policy) Cell(c color.Color) Cell {
	var px color.NRGBA
	if c != nil {
		px = color.NRGBAModel.Convert(c).(color.NRGBA)
	}
	return p.CellNRGBA(px)
}

// CellNRGBA is Cell for straight alpha pixels.
func (p Policy) CellNRGBA(px color.NRGBA) Cell {
	if p.NoBackground && px.A == 0 {
		return Cell{Glyph: ' ', Blank: true, set: true}
	}
	col := White
	if p.Color {
		col = color.RGBA{R: px.R, G: px.G, B: px.B, A: 255}
	}
	return Cell{
		Glyph: luma.Glyph(px),
		Color: col,
		set:   true,
	}
}
