package scrollback

// ScrollbackProvider receives lines discarded by TrimBacklog.
// Implementations can keep them in memory, write them to disk, index them, etc.
type ScrollbackProvider interface {
	// Push appends a trimmed line. Lines arrive oldest first.
	// Oldest lines should be removed if MaxLines is exceeded.
	Push(line Line)
	// Len returns the current number of stored lines.
	Len() int
	// Line returns the line at index, where 0 is the oldest line. Returns false if out of range.
	Line(index int) (Line, bool)
	// Clear removes all stored lines.
	Clear()
	// SetMaxLines sets the maximum capacity. Implementations should trim oldest lines if needed.
	SetMaxLines(max int)
	// MaxLines returns the current maximum capacity.
	MaxLines() int
}

// NoopScrollback discards every trimmed line.
type NoopScrollback struct{}

func (NoopScrollback) Push(line Line)              {}
func (NoopScrollback) Len() int                    { return 0 }
func (NoopScrollback) Line(index int) (Line, bool) { return Line{}, false }
func (NoopScrollback) Clear()                      {}
func (NoopScrollback) SetMaxLines(max int)         {}
func (NoopScrollback) MaxLines() int               { return 0 }

// MemoryScrollback keeps trimmed lines in memory with a configurable limit.
// When the limit is reached, the oldest lines are removed to make room for new ones.
//
// Example:
//
//	archive := scrollback.NewMemoryScrollback(10000)
//	buf, err := scrollback.New(1000, scrollback.NewCell(), scrollback.WithScrollback(archive))
type MemoryScrollback struct {
	lines    []Line
	maxLines int
}

// NewMemoryScrollback creates an in-memory archive with the given capacity.
// If maxLines is 0, the archive is unlimited.
func NewMemoryScrollback(maxLines int) *MemoryScrollback {
	return &MemoryScrollback{
		lines:    make([]Line, 0),
		maxLines: maxLines,
	}
}

// Push stores a copy of line. If maxLines is exceeded, the oldest line is removed.
func (m *MemoryScrollback) Push(line Line) {
	m.lines = append(m.lines, line.Clone())
	m.trim()
}

// Len returns the current number of stored lines.
func (m *MemoryScrollback) Len() int {
	return len(m.lines)
}

// Line returns the line at index, where 0 is the oldest line.
func (m *MemoryScrollback) Line(index int) (Line, bool) {
	if index < 0 || index >= len(m.lines) {
		return Line{}, false
	}
	return m.lines[index], true
}

// Clear removes all stored lines.
func (m *MemoryScrollback) Clear() {
	m.lines = make([]Line, 0)
}

// SetMaxLines sets the maximum capacity, dropping the oldest lines if needed.
func (m *MemoryScrollback) SetMaxLines(max int) {
	m.maxLines = max
	m.trim()
}

// MaxLines returns the current maximum capacity.
func (m *MemoryScrollback) MaxLines() int {
	return m.maxLines
}

func (m *MemoryScrollback) trim() {
	if m.maxLines > 0 && len(m.lines) > m.maxLines {
		excess := len(m.lines) - m.maxLines
		m.lines = m.lines[excess:]
	}
}

// Ensure implementations satisfy their interfaces
var _ ScrollbackProvider = (*NoopScrollback)(nil)
var _ ScrollbackProvider = (*MemoryScrollback)(nil)
