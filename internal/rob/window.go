package rob

// window is the reader's trailing FIFO of positions, oldest first. It holds
// one slot more than its capacity because an append briefly overfills it
// before the oldest entry is evicted.
type window struct {
	buf   []Pos
	head  int
	count int
	limit int
}

func newWindow(limit int) *window {
	if limit < 1 {
		limit = 1
	}
	return &window{buf: make([]Pos, limit+1), limit: limit}
}

func (w *window) Len() int { return w.count }

func (w *window) Over() bool { return w.count > w.limit }

func (w *window) Push(p Pos) {
	if w.count == len(w.buf) {
		// Overfilled twice without an eviction; drop the oldest to stay bounded.
		w.Pop()
	}
	w.buf[(w.head+w.count)%len(w.buf)] = p
	w.count++
}

func (w *window) Pop() (Pos, bool) {
	if w.count == 0 {
		return Pos{}, false
	}
	p := w.buf[w.head]
	w.head = (w.head + 1) % len(w.buf)
	w.count--
	return p, true
}

// Oldest returns the tail of the window: the next entry to be evicted.
func (w *window) Oldest() (Pos, bool) {
	if w.count == 0 {
		return Pos{}, false
	}
	return w.buf[w.head], true
}

// Newest returns the reader head.
func (w *window) Newest() (Pos, bool) {
	if w.count == 0 {
		return Pos{}, false
	}
	return w.buf[(w.head+w.count-1)%len(w.buf)], true
}

func (w *window) Contains(p Pos) bool {
	for i := 0; i < w.count; i++ {
		if w.buf[(w.head+i)%len(w.buf)] == p {
			return true
		}
	}
	return false
}

func (w *window) Slice() []Pos {
	out := make([]Pos, w.count)
	for i := range out {
		out[i] = w.buf[(w.head+i)%len(w.buf)]
	}
	return out
}

func (w *window) Reset() {
	w.head = 0
	w.count = 0
}
