package scrollback

import "strings"

// defaultLineCapacity is the number of cells preallocated for a new line.
const defaultLineCapacity = 200

// Line is an ordered sequence of cells that only ever grows to the right.
type Line struct {
	cells []Cell
}

// newLine creates a line holding exactly one fill cell.
func newLine(fill Cell, capacity int) *Line {
	if capacity < 1 {
		capacity = 1
	}
	cells := make([]Cell, 1, capacity)
	cells[0] = fill
	return &Line{cells: cells}
}

// Len returns the number of addressable cells.
func (l Line) Len() int {
	return len(l.cells)
}

// Cell returns the cell at col and whether col is inside the line.
func (l Line) Cell(col int) (Cell, bool) {
	if col < 0 || col >= len(l.cells) {
		return Cell{}, false
	}
	return l.cells[col], true
}

// Cells returns a copy of the line's cells.
func (l Line) Cells() []Cell {
	out := make([]Cell, len(l.cells))
	copy(out, l.cells)
	return out
}

// Clone returns a line that shares no storage with l.
func (l Line) Clone() Line {
	return Line{cells: l.Cells()}
}

// String returns the text of the line with wide spacers skipped and trailing blanks trimmed.
func (l Line) String() string {
	var sb strings.Builder
	for _, c := range l.cells {
		if c.IsWideSpacer() {
			continue
		}
		if c.Char == 0 {
			sb.WriteRune(' ')
			continue
		}
		sb.WriteRune(c.Char)
	}
	return strings.TrimRight(sb.String(), " ")
}

// grow pads the line with fill until col is addressable.
func (l *Line) grow(col int, fill Cell) {
	for len(l.cells) <= col {
		l.cells = append(l.cells, fill)
	}
}
