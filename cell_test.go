package scrollback

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCell(t *testing.T) {
	cell := NewCell()

	assert.Equal(t, ' ', cell.Char)
	assert.Equal(t, NamedColor{Name: NamedColorForeground}, cell.Fg)
	assert.Equal(t, NamedColor{Name: NamedColorBackground}, cell.Bg)
	assert.Zero(t, cell.Flags)
	assert.Nil(t, cell.Hyperlink)
}

func TestCellWithCharKeepsReceiver(t *testing.T) {
	cell := NewCell().WithFlags(CellFlagBold)

	other := cell.WithChar('A')

	assert.Equal(t, ' ', cell.Char, "receiver changed")
	assert.Equal(t, 'A', other.Char)
	assert.True(t, other.HasFlag(CellFlagBold))
	assert.Equal(t, cell.Fg, other.Fg)
}

func TestCellColorsAreValues(t *testing.T) {
	cell := NewCell()
	cell.Fg = IndexedColor{Index: 3}

	copied := cell.WithChar('x')
	copied.Fg = IndexedColor{Index: 9}

	assert.Equal(t, IndexedColor{Index: 3}, cell.Fg)
	assert.Equal(t, IndexedColor{Index: 9}, copied.Fg)
	assert.True(t, NewCell() == NewCell(), "fresh cells compare equal")
}

func TestCellFlags(t *testing.T) {
	cell := NewCell().WithFlags(CellFlagBold)
	assert.True(t, cell.HasFlag(CellFlagBold))

	cell = cell.WithFlags(CellFlagItalic)
	assert.True(t, cell.HasFlag(CellFlagBold))
	assert.True(t, cell.HasFlag(CellFlagItalic))

	cell = cell.WithoutFlags(CellFlagBold)
	assert.False(t, cell.HasFlag(CellFlagBold))
	assert.True(t, cell.HasFlag(CellFlagItalic))
}

func TestCellPaddingAndBlank(t *testing.T) {
	wide := NewCell().WithChar('中').WithFlags(CellFlagWideChar | CellFlagReverse)

	pad := wide.padding()
	assert.Equal(t, ' ', pad.Char)
	assert.True(t, pad.IsWideSpacer())
	assert.False(t, pad.IsWide())
	assert.True(t, pad.HasFlag(CellFlagReverse), "padding keeps attributes")

	blank := pad.blank()
	assert.Equal(t, ' ', blank.Char)
	assert.False(t, blank.IsWideSpacer())
	assert.False(t, blank.IsWide())
	assert.True(t, blank.HasFlag(CellFlagReverse), "blank keeps attributes")
}

func TestResolveColor(t *testing.T) {
	tests := []struct {
		name     string
		c        color.Color
		fg       bool
		expected [4]uint8
	}{
		{"nil fg", nil, true, [4]uint8{229, 229, 229, 255}},
		{"nil bg", nil, false, [4]uint8{0, 0, 0, 255}},
		{"named fg", NamedColor{Name: NamedColorForeground}, true, [4]uint8{229, 229, 229, 255}},
		{"named bg", NamedColor{Name: NamedColorBackground}, false, [4]uint8{0, 0, 0, 255}},
		{"named ansi", NamedColor{Name: 1}, true, [4]uint8{Palette[1].R, Palette[1].G, Palette[1].B, 255}},
		{"indexed cube", IndexedColor{Index: 16}, true, [4]uint8{0, 0, 0, 255}},
		{"indexed gray", IndexedColor{Index: 232}, true, [4]uint8{8, 8, 8, 255}},
		{"indexed out of range", IndexedColor{Index: 300}, false, [4]uint8{0, 0, 0, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveColor(tt.c, tt.fg)
			assert.Equal(t, tt.expected, [4]uint8{got.R, got.G, got.B, got.A})
		})
	}
}
