package frontier

// Item is one frontier entry: a node identifier and the priority under which
// it was discovered. FIFO and LIFO disciplines ignore Priority entirely.
type Item struct {
	// ID is the node identifier.
	ID string

	// Priority is the ordering key where the discipline uses one:
	// the h-cost for Best-First, the f-cost for A*.
	Priority float64
}

// Queue is the FIFO frontier used by Breadth-First search: Pop returns the
// earliest-pushed entry. The zero value is ready to use.
type Queue struct {
	items []Item
}

// NewQueue returns an empty Queue.
func NewQueue() *Queue { return &Queue{} }

// Len returns the number of queued entries.
func (q *Queue) Len() int { return len(q.items) }

// IsEmpty reports whether the queue holds no entries.
func (q *Queue) IsEmpty() bool { return len(q.items) == 0 }

// Push appends an entry at the back.
func (q *Queue) Push(it Item) { q.items = append(q.items, it) }

// Pop removes and returns the earliest-pushed entry.
// The second return is false when the queue is empty.
func (q *Queue) Pop() (Item, bool) {
	if len(q.items) == 0 {
		return Item{}, false
	}
	it := q.items[0]
	q.items = q.items[1:]

	return it, true
}

// Snapshot returns the queued entries in pop order. The slice is a copy.
func (q *Queue) Snapshot() []Item {
	out := make([]Item, len(q.items))
	copy(out, q.items)

	return out
}
