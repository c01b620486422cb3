// Package heuristic supplies the two estimate sources the informed searches
// consume: a pairwise edge-weight table (greedy Best-First) and straight-line
// Euclidean distance over node coordinates (A*).
//
// The table intentionally equates h(u, v) with the weight of the connecting
// edge, so Best-First behaves as a greedy, locally-weighted traversal rather
// than using a problem-specific admissible heuristic. That is the contract,
// not an accident.
package heuristic

import (
	"math"

	"github.com/katalvlaran/wayfind/core"
)

// Table maps ordered (node, neighbor) pairs to a heuristic value.
// It is symmetric by construction: Set records both directions.
type Table struct {
	m map[string]map[string]int64
}

// NewTable returns an empty Table.
func NewTable() *Table {
	return &Table{m: make(map[string]map[string]int64)}
}

// Set records h(u, v) = h(v, u) = value. Identifiers are canonicalized.
func (t *Table) Set(u, v string, value int64) {
	uID, vID := core.CanonicalID(u), core.CanonicalID(v)
	t.set(uID, vID, value)
	t.set(vID, uID, value)
}

func (t *Table) set(from, to string, value int64) {
	row, ok := t.m[from]
	if !ok {
		row = make(map[string]int64)
		t.m[from] = row
	}
	row[to] = value
}

// Value returns the recorded heuristic between u and v, and whether one exists.
func (t *Table) Value(u, v string) (int64, bool) {
	row, ok := t.m[core.CanonicalID(u)]
	if !ok {
		return 0, false
	}
	value, ok := row[core.CanonicalID(v)]

	return value, ok
}

// FromGraph builds the Best-First heuristic table for g: for every edge
// (u, v, w) the table holds h(u, v) = h(v, u) = w.
// Complexity: O(E).
func FromGraph(g *core.Graph) *Table {
	t := NewTable()
	for _, e := range g.Edges() {
		t.Set(e.U, e.V, e.Weight)
	}

	return t
}

// Euclidean returns the straight-line distance between two nodes' coordinates.
func Euclidean(a, b core.Node) float64 {
	dx := float64(b.X - a.X)
	dy := float64(b.Y - a.Y)

	return math.Sqrt(dx*dx + dy*dy)
}

// StraightLine returns the Euclidean distance between the named nodes in g,
// or +Inf when either node is unknown (and therefore has no coordinates).
// This is the h-cost A* adds to its g-cost.
func StraightLine(g *core.Graph, id, goal string) float64 {
	a, okA := g.Node(id)
	b, okB := g.Node(goal)
	if !okA || !okB {
		return math.Inf(1)
	}

	return Euclidean(a, b)
}
