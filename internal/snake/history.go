package snake

import "gonum.org/v1/gonum/spatial/r3"

// HeadSnapshot is the head pose recorded at one tick.
type HeadSnapshot struct {
	Position  r3.Vec  // Canonical position
	Direction r3.Vec  // Unit heading
	Up        r3.Vec  // Unit up vector
	Time      float64 // Simulation time at which the pose was reached
	Distance  float64 // Arc length travelled by the head since reset
}

// History is a log of head poses ordered by travelled distance, stored in a
// growable ring. Snapshots are only appended; old ones are dropped once they
// fall more than the retention window behind the newest.
type History struct {
	buf    []HeadSnapshot
	start  int
	count  int
	window float64 // Retention in arc length; 0 keeps everything
}

// NewHistory creates a history that retains at least window units of head
// path.
// A window <= 0 means unbounded retention.
func NewHistory(window float64) *History {
	if window < 0 {
		window = 0
	}
	return &History{
		buf:    make([]HeadSnapshot, 64),
		window: window,
	}
}

// Len returns the number of retained snapshots.
func (h *History) Len() int {
	return h.count
}

// At returns the i-th retained snapshot, 0 being the oldest.
func (h *History) At(i int) HeadSnapshot {
	return h.buf[(h.start+i)%len(h.buf)]
}

// Oldest returns the oldest retained snapshot.
func (h *History) Oldest() (HeadSnapshot, bool) {
	if h.count == 0 {
		return HeadSnapshot{}, false
	}
	return h.At(0), true
}

// Newest returns the most recent snapshot.
func (h *History) Newest() (HeadSnapshot, bool) {
	if h.count == 0 {
		return HeadSnapshot{}, false
	}
	return h.At(h.count - 1), true
}

// Push appends a snapshot. Distances must be non-decreasing.
func (h *History) Push(s HeadSnapshot) {
	if h.count == len(h.buf) {
		h.grow()
	}
	h.buf[(h.start+h.count)%len(h.buf)] = s
	h.count++
	h.trim(s.Distance)
}

// grow doubles the ring capacity, unrolling it so the oldest entry is at 0.
func (h *History) grow() {
	next := make([]HeadSnapshot, len(h.buf)*2)
	for i := 0; i < h.count; i++ {
		next[i] = h.At(i)
	}
	h.buf = next
	h.start = 0
}

// trim drops snapshots older than the retention window, but always keeps
// the newest snapshot at or before the window boundary so lookups into the
// window still find their "latest at or before" pose.
func (h *History) trim(travelled float64) {
	if h.window == 0 {
		return
	}
	boundary := travelled - h.window
	for h.count > 1 && h.At(1).Distance <= boundary {
		h.start = (h.start + 1) % len(h.buf)
		h.count--
	}
}

// Lookup returns the latest snapshot whose distance is <= d. When every
// snapshot lies further along than d, the oldest one is returned. ok is
// false only for an empty history.
func (h *History) Lookup(d float64) (snap HeadSnapshot, ok bool) {
	if h.count == 0 {
		return HeadSnapshot{}, false
	}
	idx := h.seek(h.count-1, d)
	return h.At(idx), true
}

// seek walks backward from idx to the latest snapshot at or before distance
// d, stopping at the oldest one. Callers resolving decreasing targets can
// feed the returned index back in.
func (h *History) seek(idx int, d float64) int {
	for idx > 0 && h.At(idx).Distance > d {
		idx--
	}
	return idx
}

// Reset drops all snapshots while keeping the allocated ring.
func (h *History) Reset() {
	h.start = 0
	h.count = 0
}
