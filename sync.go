package scrollback

import (
	"iter"
	"sync"
)

// SyncBuffer guards a Buffer with a read/write lock so a stream interpreter
// and a renderer running on different goroutines can share it.
// Writes take the exclusive lock; reads take the shared one.
type SyncBuffer struct {
	mu  sync.RWMutex
	buf *Buffer
}

// NewSyncBuffer creates a buffer like New and wraps it.
func NewSyncBuffer(backlog int, fill Cell, opts ...Option) (*SyncBuffer, error) {
	buf, err := New(backlog, fill, opts...)
	if err != nil {
		return nil, err
	}
	return &SyncBuffer{buf: buf}, nil
}

// Do runs fn with exclusive access to the underlying buffer, so a sequence of
// operations (for example a write followed by a trim) happens atomically.
func (s *SyncBuffer) Do(fn func(b *Buffer)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.buf)
}

// Clear discards every line and leaves a single blank line.
func (s *SyncBuffer) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.buf.Clear()
}

// EnsureLine appends blank lines until at least row+1 lines are stored.
func (s *SyncBuffer) EnsureLine(row int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.EnsureLine(row)
}

// EnsurePosition grows the buffer so pos exists without changing its content.
func (s *SyncBuffer) EnsurePosition(viewportHeight int, pos Position) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.EnsurePosition(viewportHeight, pos)
}

// SetCell writes cell at pos.
func (s *SyncBuffer) SetCell(viewportHeight int, pos Position, cell Cell) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.SetCell(viewportHeight, pos, cell)
}

// TrimBacklog removes the oldest lines beyond the retention limit.
func (s *SyncBuffer) TrimBacklog(viewportHeight int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.TrimBacklog(viewportHeight)
}

// LineCount returns the number of stored lines.
func (s *SyncBuffer) LineCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.buf.LineCount()
}

// Cell returns the cell at pos without growing the buffer.
func (s *SyncBuffer) Cell(viewportHeight int, pos Position) (Cell, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.buf.Cell(viewportHeight, pos)
}

// VisibleLines returns a snapshot of the window.
func (s *SyncBuffer) VisibleLines(viewportHeight, scrollOffset int) []Line {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.buf.VisibleLines(viewportHeight, scrollOffset)
}

// Visible yields a snapshot of the window taken under the read lock,
// so the caller's loop body never runs while the lock is held.
func (s *SyncBuffer) Visible(viewportHeight, scrollOffset int) iter.Seq2[int, Line] {
	return func(yield func(int, Line) bool) {
		for row, line := range s.VisibleLines(viewportHeight, scrollOffset) {
			if !yield(row, line) {
				return
			}
		}
	}
}

// Snapshot captures the window under the read lock.
func (s *SyncBuffer) Snapshot(viewportHeight, scrollOffset int, detail SnapshotDetail) *Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.buf.Snapshot(viewportHeight, scrollOffset, detail)
}
