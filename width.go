package scrollback

import (
	"github.com/mattn/go-runewidth"
	"github.com/unilibs/uniwidth"
)

// WidthFunc reports whether a character occupies two terminal columns.
// It must be a pure function: the buffer calls it on every write.
type WidthFunc func(r rune) bool

// UniWidth classifies runes with uniwidth. It is the default WidthFunc.
func UniWidth(r rune) bool {
	return uniwidth.RuneWidth(r) == 2
}

// RuneWidth classifies runes with go-runewidth using its default East Asian settings.
func RuneWidth(r rune) bool {
	return runewidth.RuneWidth(r) == 2
}

// StringWidth returns the total display width of a string (sum of rune widths).
func StringWidth(s string) int {
	return uniwidth.StringWidth(s)
}
