package tail

import (
	"github.com/vburojevic/scalyr-tool/internal/domain"
)

// DefaultSeenCapacity is the number of record keys remembered across polls.
const DefaultSeenCapacity = 1000

// SeenWindow is a bounded, insertion-ordered set of record keys. When full,
// adding a key evicts the oldest one. Its contents depend only on the ordered
// sequence of keys added. Not safe for concurrent use.
type SeenWindow struct {
	keys  []domain.RecordKey
	index map[domain.RecordKey]struct{}
	size  int
	head  int // next write position; the oldest key once full
	count int
}

// NewSeenWindow creates a window with the specified capacity
func NewSeenWindow(size int) *SeenWindow {
	if size <= 0 {
		size = DefaultSeenCapacity
	}
	return &SeenWindow{
		keys:  make([]domain.RecordKey, size),
		index: make(map[domain.RecordKey]struct{}, size),
		size:  size,
	}
}

// Contains reports whether key is in the window.
func (w *SeenWindow) Contains(key domain.RecordKey) bool {
	_, ok := w.index[key]
	return ok
}

// Add appends key, evicting the oldest key when at capacity. Adding a key
// that is already present is a no-op and returns false.
func (w *SeenWindow) Add(key domain.RecordKey) bool {
	if w.Contains(key) {
		return false
	}
	if w.count == w.size {
		delete(w.index, w.keys[w.head])
	} else {
		w.count++
	}
	w.keys[w.head] = key
	w.index[key] = struct{}{}
	w.head = (w.head + 1) % w.size
	return true
}

// Len returns the number of keys in the window
func (w *SeenWindow) Len() int {
	return w.count
}

// Cap returns the window capacity
func (w *SeenWindow) Cap() int {
	return w.size
}

// Keys returns all keys in insertion order (oldest first)
func (w *SeenWindow) Keys() []domain.RecordKey {
	result := make([]domain.RecordKey, w.count)
	if w.count < w.size {
		copy(result, w.keys[:w.count])
	} else {
		copy(result, w.keys[w.head:])
		copy(result[w.size-w.head:], w.keys[:w.head])
	}
	return result
}
