// Package minheap implements an indexed binary min-heap over junction ids,
// ordered by an externally owned, mutable distance map.
//
// The heap never stores priorities itself: every comparison reads the
// caller's dist map at call time. That is what makes a true decrease-key
// possible — when the caller lowers dist[v] it calls DecreaseKey(v, dist)
// and the heap repositions v in O(log n), located in O(1) through the
// position index. Without the index, finding v would cost O(n) per update
// and degrade Dijkstra to O(V²) amortized.
//
// Invariants:
//
//   - Heap order: for every non-root slot i, dist of items[i] ≥ dist of its
//     parent (ids missing from dist order as +Inf).
//   - Position index: pos[id] == i ⇔ items[i] == id, for the current
//     contents exactly; extracted ids are removed from pos.
//
// Both structures are updated together inside every mutating operation, so
// callers never observe them out of sync.
package minheap

import (
	"errors"
	"math"
)

// Sentinel errors for heap operations.
var (
	// ErrEmptyHeap indicates ExtractMin was called on an empty heap. This is
	// a logic error in the caller's loop, not a normal condition.
	ErrEmptyHeap = errors.New("minheap: extract from empty heap")

	// ErrNotInHeap indicates DecreaseKey referenced an id that is not in the
	// heap (never inserted, or already extracted).
	ErrNotInHeap = errors.New("minheap: vertex not in heap")
)

// Heap is an indexed binary min-heap of junction ids.
//
// A Heap is built once per shortest-path query over the full vertex set and
// shrinks by extraction until empty or the query terminates early. It is not
// safe for concurrent use; each query owns its heap privately.
type Heap struct {
	items []int64       // dense complete-binary-tree layout
	pos   map[int64]int // junction id → index in items
}

// New builds a heap over the given ids, ordered by dist.
// The ids slice is copied; the dist map is referenced at call time by each
// subsequent operation and stays owned by the caller.
// Complexity: O(n) via bottom-up heapify.
func New(ids []int64, dist map[int64]float64) *Heap {
	h := &Heap{
		items: make([]int64, len(ids)),
		pos:   make(map[int64]int, len(ids)),
	}
	copy(h.items, ids)
	for i, id := range h.items {
		h.pos[id] = i
	}
	// Bottom-up heapify: sift down every internal node from the last parent
	// to the root.
	for i := len(h.items)/2 - 1; i >= 0; i-- {
		h.siftDown(i, dist)
	}

	return h
}

// Len returns the number of ids currently in the heap. O(1).
func (h *Heap) Len() int { return len(h.items) }

// IsEmpty reports whether the heap has no ids left. O(1).
func (h *Heap) IsEmpty() bool { return len(h.items) == 0 }

// Contains reports whether id is currently in the heap (inserted and not yet
// extracted). O(1) through the position index.
func (h *Heap) Contains(id int64) bool {
	_, ok := h.pos[id]

	return ok
}

// ExtractMin removes and returns the id with the smallest dist value.
// The last element moves to the root and sifts down to restore heap order;
// the extracted id is deleted from the position index in the same step.
// Ties are broken by heap position: whichever minimal id sits at the root.
// Returns ErrEmptyHeap if the heap is empty.
// Complexity: O(log n).
func (h *Heap) ExtractMin(dist map[int64]float64) (int64, error) {
	if len(h.items) == 0 {
		return 0, ErrEmptyHeap
	}

	min := h.items[0]
	last := len(h.items) - 1

	// Move the last element to the root, shrink, and drop the extracted id
	// from the index before sifting, so pos reflects contents at all times.
	h.items[0] = h.items[last]
	h.items = h.items[:last]
	delete(h.pos, min)
	if last > 0 {
		h.pos[h.items[0]] = 0
		h.siftDown(0, dist)
	}

	return min, nil
}

// DecreaseKey restores heap order after the caller lowered dist[id].
// The id is located in O(1) through the position index and swapped with its
// parent while it orders below it.
//
// The caller must not invoke DecreaseKey for an id that was already
// extracted; doing so returns ErrNotInHeap and performs no mutation, because
// silently proceeding would corrupt the position index.
// Complexity: O(log n).
func (h *Heap) DecreaseKey(id int64, dist map[int64]float64) error {
	i, ok := h.pos[id]
	if !ok {
		return ErrNotInHeap
	}
	h.siftUp(i, dist)

	return nil
}

// priority reads the ordering key of id from the caller's dist map.
// Ids without an entry order as +Inf, matching the "unknown distance"
// initialization of Dijkstra.
func (h *Heap) priority(id int64, dist map[int64]float64) float64 {
	if d, ok := dist[id]; ok {
		return d
	}

	return math.Inf(1)
}

// swap exchanges slots i and j and rewrites both index entries.
func (h *Heap) swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.pos[h.items[i]] = i
	h.pos[h.items[j]] = j
}

// siftUp moves items[i] toward the root while it orders below its parent.
func (h *Heap) siftUp(i int, dist map[int64]float64) {
	for i > 0 {
		parent := (i - 1) / 2
		if h.priority(h.items[i], dist) >= h.priority(h.items[parent], dist) {
			break
		}
		h.swap(i, parent)
		i = parent
	}
}

// siftDown moves items[i] toward the leaves while a child orders above it.
func (h *Heap) siftDown(i int, dist map[int64]float64) {
	n := len(h.items)
	for {
		left := 2*i + 1
		right := 2*i + 2
		smallest := i
		if left < n && h.priority(h.items[left], dist) < h.priority(h.items[smallest], dist) {
			smallest = left
		}
		if right < n && h.priority(h.items[right], dist) < h.priority(h.items[smallest], dist) {
			smallest = right
		}
		if smallest == i {
			return
		}
		h.swap(i, smallest)
		i = smallest
	}
}
