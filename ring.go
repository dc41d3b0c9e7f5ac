package scrollback

// lineRing is a growable ring of lines addressed newest first:
// index 0 is the most recently created line, Len()-1 the oldest.
// Pushing at the newest end and popping at the oldest end are O(1) amortized.
type lineRing struct {
	buf   []*Line
	head  int // physical slot of the oldest line
	count int
}

func newLineRing(capacity int) *lineRing {
	if capacity < 1 {
		capacity = 1
	}
	return &lineRing{buf: make([]*Line, capacity)}
}

func (r *lineRing) Len() int {
	return r.count
}

// slot maps a newest-first index to a physical slot.
func (r *lineRing) slot(i int) int {
	return (r.head + r.count - 1 - i) % len(r.buf)
}

// At returns the line i positions back from the newest one.
func (r *lineRing) At(i int) *Line {
	if i < 0 || i >= r.count {
		return nil
	}
	return r.buf[r.slot(i)]
}

// PushNewest appends l at the newest end.
func (r *lineRing) PushNewest(l *Line) {
	if r.count == len(r.buf) {
		r.resize(len(r.buf) * 2)
	}
	r.buf[(r.head+r.count)%len(r.buf)] = l
	r.count++
}

// PopOldest removes and returns the oldest line.
func (r *lineRing) PopOldest() *Line {
	if r.count == 0 {
		return nil
	}
	l := r.buf[r.head]
	r.buf[r.head] = nil
	r.head = (r.head + 1) % len(r.buf)
	r.count--
	return l
}

// RemoveAt deletes the line at newest-first index i, keeping the order of the rest.
func (r *lineRing) RemoveAt(i int) {
	if i < 0 || i >= r.count {
		return
	}
	// Shift every newer line one slot toward the oldest end.
	for j := i; j > 0; j-- {
		r.buf[r.slot(j)] = r.buf[r.slot(j-1)]
	}
	r.buf[r.slot(0)] = nil
	r.count--
}

// Reset drops every line but keeps the allocated capacity.
func (r *lineRing) Reset() {
	for i := range r.buf {
		r.buf[i] = nil
	}
	r.head = 0
	r.count = 0
}

func (r *lineRing) resize(capacity int) {
	buf := make([]*Line, capacity)
	for i := 0; i < r.count; i++ {
		buf[i] = r.buf[(r.head+i)%len(r.buf)]
	}
	r.buf = buf
	r.head = 0
}
