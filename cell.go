package scrollback

import "image/color"

// CellFlags is a bitmask of cell rendering attributes.
type CellFlags uint16

const (
	CellFlagBold CellFlags = 1 << iota
	CellFlagDim
	CellFlagItalic
	CellFlagUnderline
	CellFlagDoubleUnderline
	CellFlagCurlyUnderline
	CellFlagDottedUnderline
	CellFlagDashedUnderline
	CellFlagBlinkSlow
	CellFlagBlinkFast
	CellFlagReverse
	CellFlagHidden
	CellFlagStrike
	CellFlagWideChar
	CellFlagWideCharSpacer
)

// wideFlags are owned by the buffer and recomputed on every write.
const wideFlags = CellFlagWideChar | CellFlagWideCharSpacer

// Cell stores the character, colors, and formatting attributes for one grid position.
// Cells are values: the With* methods return modified copies and never touch the receiver.
// Wide characters (2 columns) are followed by a spacer cell in the second position.
type Cell struct {
	Char           rune
	Fg             color.Color
	Bg             color.Color
	UnderlineColor color.Color
	Flags          CellFlags
	Hyperlink      *Hyperlink
}

// Hyperlink associates a cell with a clickable link (OSC 8).
// Cells copied from one another point at the same Hyperlink, so it must not
// be modified once assigned.
type Hyperlink struct {
	ID  string
	URI string
}

// NewCell creates a cell initialized with space character and default colors.
func NewCell() Cell {
	return Cell{
		Char: ' ',
		Fg:   NamedColor{Name: NamedColorForeground},
		Bg:   NamedColor{Name: NamedColorBackground},
	}
}

// HasFlag returns true if the specified flag is set.
func (c Cell) HasFlag(flag CellFlags) bool {
	return c.Flags&flag != 0
}

// WithChar returns a copy of the cell holding r, keeping every attribute.
func (c Cell) WithChar(r rune) Cell {
	c.Char = r
	return c
}

// WithFlags returns a copy of the cell with flag enabled.
func (c Cell) WithFlags(flag CellFlags) Cell {
	c.Flags |= flag
	return c
}

// WithoutFlags returns a copy of the cell with flag disabled.
func (c Cell) WithoutFlags(flag CellFlags) Cell {
	c.Flags &^= flag
	return c
}

// IsWide returns true if this cell contains a wide character (CJK, emoji, etc.) that occupies 2 columns.
func (c Cell) IsWide() bool {
	return c.HasFlag(CellFlagWideChar)
}

// IsWideSpacer returns true if this is the second cell of a wide character (should be skipped during rendering).
func (c Cell) IsWideSpacer() bool {
	return c.HasFlag(CellFlagWideCharSpacer)
}

// blank turns the cell into a plain space that no longer takes part in a pairing.
func (c Cell) blank() Cell {
	return c.WithChar(' ').WithoutFlags(wideFlags)
}

// padding builds the spacer that follows a wide cell.
func (c Cell) padding() Cell {
	return c.WithChar(' ').WithoutFlags(CellFlagWideChar).WithFlags(CellFlagWideCharSpacer)
}
