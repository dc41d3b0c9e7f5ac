package scrollback

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	const doc = `
backlog_limit: 250
line_capacity: 132
width: runewidth
fill:
  char: "."
  fg: 7
  bg: 4
`
	cfg, err := LoadConfig(strings.NewReader(doc))
	require.NoError(t, err)

	assert.Equal(t, 250, cfg.BacklogLimit)
	assert.Equal(t, 132, cfg.LineCapacity)
	assert.Equal(t, WidthRuneWidth, cfg.Width)

	fill := cfg.FillCell()
	assert.Equal(t, '.', fill.Char)
	assert.Equal(t, IndexedColor{Index: 7}, fill.Fg)
	assert.Equal(t, IndexedColor{Index: 4}, fill.Bg)
}

func TestLoadConfigEmpty(t *testing.T) {
	cfg, err := LoadConfig(strings.NewReader(""))
	require.NoError(t, err)

	assert.Equal(t, Config{}, cfg)
	assert.Equal(t, NewCell(), cfg.FillCell())
}

func TestLoadConfigInvalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"negative backlog", "backlog_limit: -1"},
		{"negative capacity", "line_capacity: -5"},
		{"unknown width", "width: wcwidth"},
		{"long fill", "fill: {char: ab}"},
		{"palette overflow", "fill: {fg: 256}"},
		{"negative palette", "fill: {bg: -1}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(strings.NewReader(tt.doc))
			assert.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	_, err := LoadConfig(strings.NewReader("backlog_limit: [1, 2"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidArgument)
}

func TestConfigNew(t *testing.T) {
	cfg := Config{BacklogLimit: 2, Fill: FillConfig{Char: "_"}}

	b, err := cfg.New()
	require.NoError(t, err)

	assert.Equal(t, 2, b.Backlog())
	assert.Equal(t, '_', b.Fill().Char)
	assert.Equal(t, "_", b.LineContent(1, 0))

	for row := 0; row < 10; row++ {
		require.NoError(t, b.EnsureLine(row))
	}
	b.TrimBacklog(3)
	assert.Equal(t, 5, b.LineCount())
}

func TestConfigNewOptionsOverride(t *testing.T) {
	cfg := Config{Width: WidthRuneWidth}

	b, err := cfg.New(WithWidthFunc(func(r rune) bool { return r == 'W' }))
	require.NoError(t, err)

	require.NoError(t, b.SetCell(1, Position{}, NewCell().WithChar('W')))
	c, _ := b.Cell(1, Position{})
	assert.True(t, c.IsWide())
}
