package scrollback

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func textLine(s string) Line {
	l := Line{}
	for _, r := range s {
		l.cells = append(l.cells, NewCell().WithChar(r))
	}
	return l
}

func TestMemoryScrollbackLimit(t *testing.T) {
	m := NewMemoryScrollback(3)
	for _, s := range []string{"one", "two", "three", "four", "five"} {
		m.Push(textLine(s))
	}

	require.Equal(t, 3, m.Len())
	first, ok := m.Line(0)
	require.True(t, ok)
	assert.Equal(t, "three", first.String())

	_, ok = m.Line(3)
	assert.False(t, ok)

	m.SetMaxLines(1)
	assert.Equal(t, 1, m.Len())
	assert.Equal(t, 1, m.MaxLines())
	last, _ := m.Line(0)
	assert.Equal(t, "five", last.String())

	m.Clear()
	assert.Equal(t, 0, m.Len())
}

func TestMemoryScrollbackCopiesLines(t *testing.T) {
	m := NewMemoryScrollback(0)
	l := textLine("abc")

	m.Push(l)
	l.cells[0] = NewCell().WithChar('z')

	stored, _ := m.Line(0)
	assert.Equal(t, "abc", stored.String())
}

func TestNoopScrollback(t *testing.T) {
	var p ScrollbackProvider = NoopScrollback{}

	p.Push(textLine("gone"))
	p.SetMaxLines(10)

	assert.Equal(t, 0, p.Len())
	assert.Equal(t, 0, p.MaxLines())
	_, ok := p.Line(0)
	assert.False(t, ok)
}
