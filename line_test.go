package scrollback

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLineHoldsOneFillCell(t *testing.T) {
	fill := NewCell().WithChar('.')
	l := newLine(fill, 0)

	assert.Equal(t, 1, l.Len())
	c, ok := l.Cell(0)
	assert.True(t, ok)
	assert.Equal(t, fill, c)

	_, ok = l.Cell(1)
	assert.False(t, ok)
	_, ok = l.Cell(-1)
	assert.False(t, ok)
}

func TestLineGrow(t *testing.T) {
	l := newLine(NewCell(), 4)

	l.grow(6, NewCell().WithChar('-'))
	assert.Equal(t, 7, l.Len())
	assert.Equal(t, " ------", string(runes(l)))

	l.grow(2, NewCell().WithChar('x'))
	assert.Equal(t, 7, l.Len(), "grow never truncates")
}

func TestLineString(t *testing.T) {
	wide := NewCell().WithChar('中').WithFlags(CellFlagWideChar)
	l := Line{cells: []Cell{
		NewCell().WithChar('a'),
		wide,
		wide.padding(),
		{Char: 0},
		NewCell().WithChar('b'),
		NewCell(),
		NewCell(),
	}}

	assert.Equal(t, "a中 b", l.String())
}

func TestLineCloneIsIndependent(t *testing.T) {
	l := newLine(NewCell(), 1)
	c := l.Clone()

	l.cells[0] = NewCell().WithChar('z')

	assert.Equal(t, "", c.String())
	assert.Equal(t, "z", l.String())
}

func runes(l *Line) []rune {
	out := make([]rune, 0, l.Len())
	for _, c := range l.cells {
		out = append(out, c.Char)
	}
	return out
}
