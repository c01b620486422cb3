package frontier

// Stack is the LIFO frontier used by Depth-First search: Pop returns the
// most-recently-pushed entry. The zero value is ready to use.
//
// The engine pushes a node's children in reverse-alphabetical order, so the
// alphabetically first unvisited sibling is always explored before its
// siblings — the only observable ordering contract DFS carries.
type Stack struct {
	items []Item
}

// NewStack returns an empty Stack.
func NewStack() *Stack { return &Stack{} }

// Len returns the number of stacked entries.
func (s *Stack) Len() int { return len(s.items) }

// IsEmpty reports whether the stack holds no entries.
func (s *Stack) IsEmpty() bool { return len(s.items) == 0 }

// Push places an entry on top of the stack.
func (s *Stack) Push(it Item) { s.items = append(s.items, it) }

// Pop removes and returns the most-recently-pushed entry.
// The second return is false when the stack is empty.
func (s *Stack) Pop() (Item, bool) {
	if len(s.items) == 0 {
		return Item{}, false
	}
	it := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]

	return it, true
}

// Snapshot returns the stacked entries in pop order (top first).
// The slice is a copy.
func (s *Stack) Snapshot() []Item {
	out := make([]Item, len(s.items))
	for i, it := range s.items {
		out[len(s.items)-1-i] = it
	}

	return out
}
