package frontier

import (
	"container/heap"
	"sort"
)

// entry is a heap element: the public Item plus the bookkeeping the heap
// needs for decrease-key (position index) and stable tie-breaking (sequence).
type entry struct {
	id       string
	priority float64
	seq      uint64 // insertion order; breaks priority ties
	index    int    // position in the heap slice, maintained by Swap
}

// MinHeap is an ascending-priority frontier with at most one entry per node.
// Pop returns the globally smallest priority; equal priorities pop in
// insertion order. Use NewMinHeap — the zero value is not ready.
type MinHeap struct {
	entries heapSlice
	byID    map[string]*entry
	nextSeq uint64
}

// NewMinHeap returns an empty MinHeap.
func NewMinHeap() *MinHeap {
	return &MinHeap{byID: make(map[string]*entry)}
}

// Len returns the number of entries.
func (h *MinHeap) Len() int { return len(h.entries) }

// IsEmpty reports whether the heap holds no entries.
func (h *MinHeap) IsEmpty() bool { return len(h.entries) == 0 }

// Contains reports whether the node currently has a frontier entry.
func (h *MinHeap) Contains(id string) bool {
	_, ok := h.byID[id]

	return ok
}

// Priority returns the node's current priority and whether it has an entry.
func (h *MinHeap) Priority(id string) (float64, bool) {
	e, ok := h.byID[id]
	if !ok {
		return 0, false
	}

	return e.priority, true
}

// Push inserts a new entry. The node must not already be present; use
// DecreaseKey or Remove+Push to change an existing entry.
func (h *MinHeap) Push(it Item) {
	e := &entry{id: it.ID, priority: it.Priority, seq: h.nextSeq}
	h.nextSeq++
	h.byID[it.ID] = e
	heap.Push(&h.entries, e)
}

// Pop removes and returns the smallest-priority entry.
// The second return is false when the heap is empty.
func (h *MinHeap) Pop() (Item, bool) {
	if len(h.entries) == 0 {
		return Item{}, false
	}
	e := heap.Pop(&h.entries).(*entry)
	delete(h.byID, e.id)

	return Item{ID: e.id, Priority: e.priority}, true
}

// DecreaseKey lowers the node's priority in place, keeping its insertion
// position among equal priorities. Returns false when the node has no entry
// or the new priority is not strictly lower.
func (h *MinHeap) DecreaseKey(id string, priority float64) bool {
	e, ok := h.byID[id]
	if !ok || priority >= e.priority {
		return false
	}
	e.priority = priority
	heap.Fix(&h.entries, e.index)

	return true
}

// Remove deletes the node's entry, if any, and reports whether one existed.
func (h *MinHeap) Remove(id string) bool {
	e, ok := h.byID[id]
	if !ok {
		return false
	}
	heap.Remove(&h.entries, e.index)
	delete(h.byID, id)

	return true
}

// Snapshot returns the entries in pop order (ascending priority, then
// insertion order). The slice is a copy; the heap is not disturbed.
func (h *MinHeap) Snapshot() []Item {
	es := make([]*entry, len(h.entries))
	copy(es, h.entries)
	sort.Slice(es, func(i, j int) bool {
		if es[i].priority != es[j].priority {
			return es[i].priority < es[j].priority
		}

		return es[i].seq < es[j].seq
	})

	out := make([]Item, len(es))
	for i, e := range es {
		out[i] = Item{ID: e.id, Priority: e.priority}
	}

	return out
}

// heapSlice implements container/heap.Interface over *entry, ordered by
// ascending priority with insertion sequence as the tie-break.
type heapSlice []*entry

func (s heapSlice) Len() int { return len(s) }

func (s heapSlice) Less(i, j int) bool {
	if s[i].priority != s[j].priority {
		return s[i].priority < s[j].priority
	}

	return s[i].seq < s[j].seq
}

func (s heapSlice) Swap(i, j int) {
	s[i], s[j] = s[j], s[i]
	s[i].index = i
	s[j].index = j
}

func (s *heapSlice) Push(x interface{}) {
	e := x.(*entry)
	e.index = len(*s)
	*s = append(*s, e)
}

func (s *heapSlice) Pop() interface{} {
	old := *s
	n := len(old)
	e := old[n-1]
	*s = old[:n-1]

	return e
}
