// Package scrollback provides the scrollback buffer of a terminal emulator:
// the store of displayed lines that grows as content is written, keeps a
// bounded amount of history and yields the window of lines to render.
//
// The package does not parse escape sequences, move cursors or draw
// anything. An interpreter turns terminal output into SetCell calls and a
// renderer reads lines back with VisibleLines.
//
// # Quick Start
//
//	buf, err := scrollback.New(1000, scrollback.NewCell())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	cell := scrollback.NewCell().WithChar('A')
//	buf.SetCell(24, scrollback.Position{Row: 0, Col: 0}, cell)
//
//	for _, line := range buf.VisibleLines(24, 0) {
//	    fmt.Println(line.String())
//	}
//
// # Addressing
//
// Lines are kept newest first. Rows are relative to the viewport: row 0 is
// the topmost displayed row and the bottom row of the viewport always refers
// to the newest line, whatever the viewport height. Writing to a row or column
// that does not exist yet creates it, padding with the fill cell given to New.
// A row at or below the viewport height is rejected with ErrInvalidArgument;
// call NewLine to scroll the viewport by one line.
//
// # History
//
// The buffer never trims itself on write. Call TrimBacklog after a resize or
// at any cadence that suits the renderer:
//
//	buf.TrimBacklog(rows)
//	// buf.LineCount()-rows <= buf.Backlog()
//
// Trimmed lines are passed to a [ScrollbackProvider], when one is configured:
//
//	archive := scrollback.NewMemoryScrollback(10000)
//	buf, _ := scrollback.New(500, scrollback.NewCell(), scrollback.WithScrollback(archive))
//
// # Wide Characters
//
// A double-width character is always followed by a spacer cell with the same
// attributes. Overwriting either half of a pair repairs the other half, so a
// renderer can rely on [Cell.IsWide] and [Cell.IsWideSpacer]. The classifier
// defaults to [UniWidth]; [RuneWidth] or any [WidthFunc] can be supplied with
// [WithWidthFunc].
//
// # Concurrency
//
// A [Buffer] is not safe for concurrent use. [SyncBuffer] wraps one with a
// read/write lock for hosts where the interpreter and the renderer run on
// different goroutines.
package scrollback
