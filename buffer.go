package scrollback

import (
	"fmt"
	"iter"
	"slices"

	"github.com/hashicorp/go-hclog"
)

// initialRingCapacity is the number of line slots allocated up front.
const initialRingCapacity = 64

// Buffer stores terminal history as a sequence of lines ordered newest first.
// Lines are created lazily as writes address new rows and columns, and the
// oldest ones are discarded by TrimBacklog once more than backlog lines sit
// above the viewport.
//
// Rows passed to Buffer methods are relative to the viewport: row 0 is the
// topmost displayed row and the bottom row always maps to the newest line.
//
// A Buffer is not safe for concurrent use; see SyncBuffer.
type Buffer struct {
	lines        *lineRing
	backlog      int
	fill         Cell
	isWide       WidthFunc
	scrollback   ScrollbackProvider
	logger       hclog.Logger
	lineCapacity int
}

// New creates a buffer holding a single line made of one fill cell.
// backlog is the number of lines retained above the viewport; 0 keeps only the viewport.
// Returns ErrInvalidArgument if backlog is negative or fill holds a double-width character.
func New(backlog int, fill Cell, opts ...Option) (*Buffer, error) {
	if backlog < 0 {
		return nil, fmt.Errorf("%w: negative backlog %d", ErrInvalidArgument, backlog)
	}

	b := &Buffer{
		lines:        newLineRing(initialRingCapacity),
		backlog:      backlog,
		fill:         fill.WithoutFlags(wideFlags),
		isWide:       UniWidth,
		scrollback:   NoopScrollback{},
		logger:       hclog.NewNullLogger(),
		lineCapacity: defaultLineCapacity,
	}

	for _, opt := range opts {
		opt(b)
	}

	if b.isWide(b.fill.Char) {
		return nil, fmt.Errorf("%w: fill cell %q is double-width", ErrInvalidArgument, b.fill.Char)
	}

	b.NewLine()
	return b, nil
}

// Backlog returns the number of history lines retained above the viewport.
func (b *Buffer) Backlog() int {
	return b.backlog
}

// SetBacklog changes the retention limit. It takes effect on the next TrimBacklog.
func (b *Buffer) SetBacklog(backlog int) error {
	if backlog < 0 {
		return fmt.Errorf("%w: negative backlog %d", ErrInvalidArgument, backlog)
	}
	b.logger.Trace("backlog changed", "from", b.backlog, "to", backlog)
	b.backlog = backlog
	return nil
}

// Fill returns the cell used for space that has not been written.
func (b *Buffer) Fill() Cell {
	return b.fill
}

// LineCount returns the number of stored lines, history and viewport together.
func (b *Buffer) LineCount() int {
	return b.lines.Len()
}

// Clear discards every line and leaves a single blank line.
func (b *Buffer) Clear() {
	dropped := b.lines.Len()
	b.lines.Reset()
	b.NewLine()
	b.logger.Trace("buffer cleared", "dropped", dropped)
}

// NewLine appends a blank line at the newest end.
func (b *Buffer) NewLine() {
	b.lines.PushNewest(newLine(b.fill, b.lineCapacity))
}

// EnsureLine appends blank lines until at least row+1 lines are stored.
// It never removes lines.
func (b *Buffer) EnsureLine(row int) error {
	if row < 0 {
		return fmt.Errorf("%w: negative row %d", ErrInvalidArgument, row)
	}
	b.ensureLine(row)
	return nil
}

// EnsurePosition grows the buffer so pos exists without changing its content.
// Calling it again with the same arguments is a no-op.
// Returns ErrInvalidArgument if pos.Row is not inside the viewport.
func (b *Buffer) EnsurePosition(viewportHeight int, pos Position) error {
	_, err := b.resolve(viewportHeight, pos)
	return err
}

// SetCell writes cell at pos, growing lines and columns as needed.
//
// Double-width characters keep their pairing intact: the cell to the right of
// a wide character becomes its padding, a padding cell left behind by an
// overwritten wide character turns into a plain blank, and writing into the
// right half of a pair blanks the left half.
//
// Returns ErrInvalidArgument if pos.Row is not inside the viewport.
func (b *Buffer) SetCell(viewportHeight int, pos Position, cell Cell) error {
	line, err := b.resolve(viewportHeight, pos)
	if err != nil {
		return err
	}

	col := pos.Col
	cell = cell.WithoutFlags(wideFlags)
	wide := b.isWide(cell.Char)
	if wide {
		cell = cell.WithFlags(CellFlagWideChar)
	}

	b.put(line, col, cell)

	if wide {
		line.grow(col+1, b.fill)
		b.put(line, col+1, cell.padding())
	}

	if col > 0 {
		if left := line.cells[col-1]; left.IsWide() {
			line.cells[col-1] = left.blank()
		}
	}

	return nil
}

// Cell returns the cell at pos without growing the buffer.
func (b *Buffer) Cell(viewportHeight int, pos Position) (Cell, bool) {
	if viewportHeight < 1 || pos.Row < 0 || pos.Col < 0 {
		return Cell{}, false
	}
	line := b.lines.At(min(viewportHeight, b.lines.Len()) - 1 - pos.Row)
	if line == nil {
		return Cell{}, false
	}
	return line.Cell(pos.Col)
}

// LineContent returns the text of the viewport row, or "" if the row does not exist.
func (b *Buffer) LineContent(viewportHeight, row int) string {
	if viewportHeight < 1 || row < 0 {
		return ""
	}
	line := b.lines.At(min(viewportHeight, b.lines.Len()) - 1 - row)
	if line == nil {
		return ""
	}
	return line.String()
}

// VisibleLines returns copies of the lines in the window, ordered from the
// topmost displayed row to the newest line. At most viewportHeight lines are
// returned.
//
// scrollOffset moves the window that many lines back into history. It is
// clamped so the window never runs past the oldest stored line; 0 shows the
// live view.
//
// The result is a snapshot. Callers that want to drop lines while walking it
// should collect the rows and pass them to RemoveVisibleRows afterwards.
func (b *Buffer) VisibleLines(viewportHeight, scrollOffset int) []Line {
	count, offset := b.window(viewportHeight, scrollOffset)
	out := make([]Line, 0, count)
	for row := 0; row < count; row++ {
		out = append(out, b.lines.At(offset+count-1-row).Clone())
	}
	return out
}

// Visible is the lazy form of VisibleLines. Each traversal computes a fresh
// window and yields (row, line) pairs; the yielded lines are copies.
// A traversal that observes the buffer shrinking underneath it stops early.
func (b *Buffer) Visible(viewportHeight, scrollOffset int) iter.Seq2[int, Line] {
	return func(yield func(int, Line) bool) {
		count, offset := b.window(viewportHeight, scrollOffset)
		for row := 0; row < count; row++ {
			line := b.lines.At(offset + count - 1 - row)
			if line == nil {
				return
			}
			if !yield(row, line.Clone()) {
				return
			}
		}
	}
}

// RemoveVisibleRows deletes the given window rows, as addressed by
// VisibleLines with the same arguments. Rows outside the window and
// duplicates are ignored, and the last remaining line is never removed.
// Returns the number of lines removed.
func (b *Buffer) RemoveVisibleRows(viewportHeight, scrollOffset int, rows ...int) int {
	count, offset := b.window(viewportHeight, scrollOffset)

	indexes := make([]int, 0, len(rows))
	for _, row := range rows {
		if row >= 0 && row < count {
			indexes = append(indexes, offset+count-1-row)
		}
	}
	slices.Sort(indexes)
	indexes = slices.Compact(indexes)

	// Oldest first, so the indexes still to be removed stay valid.
	removed := 0
	for i := len(indexes) - 1; i >= 0; i-- {
		if b.lines.Len() == 1 {
			break
		}
		b.lines.RemoveAt(indexes[i])
		removed++
	}
	return removed
}

// TrimBacklog removes the oldest lines while more than Backlog lines sit above
// a viewport of viewportHeight rows. Removed lines are handed to the
// scrollback provider, oldest first. Returns the number of lines removed.
//
// The last line is never removed, so with a backlog of 0 and viewportHeight
// 0 one line remains rather than none.
func (b *Buffer) TrimBacklog(viewportHeight int) int {
	removed := 0
	for b.lines.Len() > 1 && b.lines.Len()-viewportHeight > b.backlog {
		line := b.lines.PopOldest()
		b.scrollback.Push(*line)
		removed++
	}

	if removed > 0 {
		b.logger.Trace("backlog trimmed", "removed", removed, "remaining", b.lines.Len(), "viewport", viewportHeight)
	}
	return removed
}

// resolve returns the line addressed by pos, creating lines and columns as needed.
// pos.Row must lie inside the viewport; scrolling is done with NewLine.
func (b *Buffer) resolve(viewportHeight int, pos Position) (*Line, error) {
	if viewportHeight < 1 {
		return nil, fmt.Errorf("%w: viewport height %d", ErrInvalidArgument, viewportHeight)
	}
	if pos.Col < 0 {
		return nil, fmt.Errorf("%w: negative column %d", ErrInvalidArgument, pos.Col)
	}
	if pos.Row < 0 {
		return nil, fmt.Errorf("%w: negative row %d", ErrInvalidArgument, pos.Row)
	}
	if pos.Row >= viewportHeight {
		return nil, fmt.Errorf("%w: row %d outside viewport of %d rows", ErrInvalidArgument, pos.Row, viewportHeight)
	}

	b.ensureLine(pos.Row)
	line := b.lines.At(min(viewportHeight, b.lines.Len()) - 1 - pos.Row)
	line.grow(pos.Col, b.fill)
	return line, nil
}

// ensureLine appends blank lines until at least row+1 lines are stored.
func (b *Buffer) ensureLine(row int) {
	for row >= b.lines.Len() {
		b.NewLine()
	}
}

// put stores cell at col, turning an orphaned padding cell into a plain blank.
func (b *Buffer) put(line *Line, col int, cell Cell) {
	if old := line.cells[col]; old.IsWide() && col+1 < len(line.cells) && line.cells[col+1].IsWideSpacer() {
		line.cells[col+1] = line.cells[col+1].blank()
	}
	line.cells[col] = cell
}

// window returns how many lines are visible and the clamped scroll offset.
func (b *Buffer) window(viewportHeight, scrollOffset int) (count, offset int) {
	n := b.lines.Len()
	count = max(min(viewportHeight, n), 0)
	offset = min(max(scrollOffset, 0), n-count)
	return count, offset
}

// Position identifies a viewport cell location (0-based).
type Position struct {
	Row int
	Col int
}

// Before returns true if this position comes before other in reading order (top-to-bottom, left-to-right).
func (p Position) Before(other Position) bool {
	if p.Row < other.Row {
		return true
	}
	if p.Row == other.Row && p.Col < other.Col {
		return true
	}
	return false
}

// Equal returns true if both row and column match.
func (p Position) Equal(other Position) bool {
	return p.Row == other.Row && p.Col == other.Col
}
