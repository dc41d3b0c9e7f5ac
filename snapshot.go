package scrollback

import (
	"fmt"
	"image/color"
)

// SnapshotDetail specifies the level of detail in a snapshot.
type SnapshotDetail string

const (
	// SnapshotDetailText returns plain text only.
	SnapshotDetailText SnapshotDetail = "text"
	// SnapshotDetailStyled returns text with style segments per line.
	SnapshotDetailStyled SnapshotDetail = "styled"
	// SnapshotDetailFull returns full cell-by-cell data.
	SnapshotDetailFull SnapshotDetail = "full"
)

// Snapshot is a serializable capture of the visible window.
type Snapshot struct {
	Rows         int            `json:"rows"`
	LineCount    int            `json:"line_count"`
	ScrollOffset int            `json:"scroll_offset"`
	Lines        []SnapshotLine `json:"lines"`
}

// SnapshotLine represents a single line in the snapshot.
type SnapshotLine struct {
	Text     string            `json:"text"`
	Segments []SnapshotSegment `json:"segments,omitempty"`
	Cells    []SnapshotCell    `json:"cells,omitempty"`
}

// SnapshotSegment represents a styled text segment within a line.
type SnapshotSegment struct {
	Text       string        `json:"text"`
	Fg         string        `json:"fg,omitempty"`
	Bg         string        `json:"bg,omitempty"`
	Attributes SnapshotAttrs `json:"attrs,omitempty"`
	Hyperlink  *SnapshotLink `json:"hyperlink,omitempty"`
}

// SnapshotCell represents a single cell with full attributes.
type SnapshotCell struct {
	Char       string        `json:"char"`
	Fg         string        `json:"fg"`
	Bg         string        `json:"bg"`
	Attributes SnapshotAttrs `json:"attrs,omitempty"`
	Hyperlink  *SnapshotLink `json:"hyperlink,omitempty"`
	Wide       bool          `json:"wide,omitempty"`
	WideSpacer bool          `json:"wide_spacer,omitempty"`
}

// SnapshotAttrs holds text formatting attributes.
type SnapshotAttrs struct {
	Bold          bool `json:"bold,omitempty"`
	Dim           bool `json:"dim,omitempty"`
	Italic        bool `json:"italic,omitempty"`
	Underline     bool `json:"underline,omitempty"`
	Blink         bool `json:"blink,omitempty"`
	Reverse       bool `json:"reverse,omitempty"`
	Hidden        bool `json:"hidden,omitempty"`
	Strikethrough bool `json:"strikethrough,omitempty"`
}

// SnapshotLink holds hyperlink information.
type SnapshotLink struct {
	ID  string `json:"id,omitempty"`
	URI string `json:"uri"`
}

// Snapshot captures the window VisibleLines would return for the same arguments.
func (b *Buffer) Snapshot(viewportHeight, scrollOffset int, detail SnapshotDetail) *Snapshot {
	_, offset := b.window(viewportHeight, scrollOffset)
	lines := b.VisibleLines(viewportHeight, scrollOffset)

	snap := &Snapshot{
		Rows:         len(lines),
		LineCount:    b.lines.Len(),
		ScrollOffset: offset,
		Lines:        make([]SnapshotLine, 0, len(lines)),
	}
	for _, line := range lines {
		snap.Lines = append(snap.Lines, snapshotLine(line, detail))
	}
	return snap
}

func snapshotLine(line Line, detail SnapshotDetail) SnapshotLine {
	out := SnapshotLine{Text: line.String()}

	switch detail {
	case SnapshotDetailText:
		// Just text, already set

	case SnapshotDetailStyled:
		out.Segments = lineToSegments(line)

	case SnapshotDetailFull:
		out.Cells = lineToCells(line)
	}

	return out
}

// lineToSegments converts a line to styled segments (runs of same style).
func lineToSegments(line Line) []SnapshotSegment {
	var segments []SnapshotSegment
	var current *SnapshotSegment
	var chars []rune

	flush := func() {
		if current != nil && len(chars) > 0 {
			current.Text = string(chars)
			segments = append(segments, *current)
		}
	}

	for _, cell := range line.cells {
		if cell.IsWideSpacer() {
			continue
		}

		fg := colorToHex(cell.Fg, true)
		bg := colorToHex(cell.Bg, false)
		attrs := cellAttrsToSnapshot(cell)
		link := cellHyperlinkToSnapshot(cell)

		if current == nil || !segmentMatches(current, fg, bg, attrs, link) {
			flush()
			current = &SnapshotSegment{Fg: fg, Bg: bg, Attributes: attrs, Hyperlink: link}
			chars = nil
		}

		chars = append(chars, printable(cell.Char))
	}
	flush()

	return segments
}

// lineToCells converts a line to full cell data.
func lineToCells(line Line) []SnapshotCell {
	cells := make([]SnapshotCell, 0, line.Len())
	for _, cell := range line.cells {
		cells = append(cells, SnapshotCell{
			Char:       string(printable(cell.Char)),
			Fg:         colorToHex(cell.Fg, true),
			Bg:         colorToHex(cell.Bg, false),
			Attributes: cellAttrsToSnapshot(cell),
			Hyperlink:  cellHyperlinkToSnapshot(cell),
			Wide:       cell.IsWide(),
			WideSpacer: cell.IsWideSpacer(),
		})
	}
	return cells
}

func printable(r rune) rune {
	if r == 0 {
		return ' '
	}
	return r
}

// segmentMatches checks if segment matches the given style.
func segmentMatches(seg *SnapshotSegment, fg, bg string, attrs SnapshotAttrs, link *SnapshotLink) bool {
	if seg.Fg != fg || seg.Bg != bg || seg.Attributes != attrs {
		return false
	}
	if seg.Hyperlink == nil || link == nil {
		return seg.Hyperlink == link
	}
	return *seg.Hyperlink == *link
}

// colorToHex converts a color to hex string. Nil colors produce "".
func colorToHex(c color.Color, fg bool) string {
	if c == nil {
		return ""
	}
	rgba := ResolveColor(c, fg)
	return fmt.Sprintf("#%02x%02x%02x", rgba.R, rgba.G, rgba.B)
}

func cellAttrsToSnapshot(cell Cell) SnapshotAttrs {
	return SnapshotAttrs{
		Bold:          cell.HasFlag(CellFlagBold),
		Dim:           cell.HasFlag(CellFlagDim),
		Italic:        cell.HasFlag(CellFlagItalic),
		Underline:     cell.HasFlag(CellFlagUnderline | CellFlagDoubleUnderline | CellFlagCurlyUnderline | CellFlagDottedUnderline | CellFlagDashedUnderline),
		Blink:         cell.HasFlag(CellFlagBlinkSlow | CellFlagBlinkFast),
		Reverse:       cell.HasFlag(CellFlagReverse),
		Hidden:        cell.HasFlag(CellFlagHidden),
		Strikethrough: cell.HasFlag(CellFlagStrike),
	}
}

func cellHyperlinkToSnapshot(cell Cell) *SnapshotLink {
	if cell.Hyperlink == nil {
		return nil
	}
	return &SnapshotLink{ID: cell.Hyperlink.ID, URI: cell.Hyperlink.URI}
}
