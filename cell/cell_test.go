package cell_test

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/srlehn/termascii/cell"
)

func TestPolicyCell(t *testing.T) {
	red := color.NRGBA{R: 200, G: 10, B: 10, A: 255}
	clear := color.NRGBA{R: 200, G: 10, B: 10, A: 0}
	half := color.NRGBA{R: 0, G: 0, B: 0, A: 128}

	tests := map[string]struct {
		policy cell.Policy
		px     color.NRGBA
		want   cell.Cell
	}{
		"plain": {
			policy: cell.Policy{},
			px:     red,
			want:   cell.Cell{Glyph: '*', Color: cell.White},
		},
		"colored": {
			policy: cell.Policy{Color: true},
			px:     red,
			want:   cell.Cell{Glyph: '*', Color: color.RGBA{200, 10, 10, 255}},
		},
		"transparent ignored without no-bg": {
			policy: cell.Policy{Color: true},
			px:     clear,
			want:   cell.Cell{Glyph: '*', Color: color.RGBA{200, 10, 10, 255}},
		},
		"transparent blank": {
			policy: cell.Policy{Color: true, NoBackground: true},
			px:     clear,
			want:   cell.Cell{Glyph: ' ', Blank: true},
		},
		"partial alpha is not blank": {
			policy: cell.Policy{NoBackground: true},
			px:     half,
			want:   cell.Cell{Glyph: '$', Color: cell.White},
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got := tc.policy.CellNRGBA(tc.px)
			assert.True(t, got.IsSet())
			assert.Equal(t, tc.want.Glyph, got.Glyph)
			assert.Equal(t, tc.want.Blank, got.Blank)
			assert.False(t, got.EOL)
			if !tc.want.Blank {
				assert.Equal(t, tc.want.Color, got.Color)
			}
		})
	}
}

func TestPolicyCellPremultiplied(t *testing.T) {
	p := cell.Policy{NoBackground: true}
	got := p.Cell(color.RGBA{})
	assert.True(t, got.Blank)

	got = p.Cell(color.White)
	assert.Equal(t, ' ', got.Glyph)
	assert.False(t, got.Blank)
}

func TestCellZero(t *testing.T) {
	assert.False(t, cell.Cell{}.IsSet())
	eol := cell.EndOfLine()
	assert.True(t, eol.IsSet())
	assert.True(t, eol.EOL)
}
