package core

import (
	"fmt"
	"sort"
)

// Graph is the in-memory store shared by every search strategy.
//
// It keeps an insertion-ordered adjacency list per node plus the Node value
// (identifier and coordinates) of every node seen so far. Build it with
// AddEdge during loading, then treat it as read-only.
type Graph struct {
	nodes map[string]Node       // node ID → Node (coordinates)
	adj   map[string][]Neighbor // node ID → insertion-ordered neighbors
	edges []Edge                // undirected edges, one per AddEdge call
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		nodes: make(map[string]Node),
		adj:   make(map[string][]Neighbor),
	}
}

// AddEdge inserts the undirected edge u—v with the given weight, recording
// both endpoints' coordinates. Identifiers are canonicalized (CanonicalID)
// before insertion. A node that appears again simply has its coordinates
// overwritten; the loader feeds the same coordinates each time, so the last
// write is as good as the first.
//
// Both directions u→v and v→u are appended with the identical weight, which
// is what keeps Neighbors symmetric.
//
// Returns ErrEmptyNodeID if either identifier canonicalizes to the empty
// string, or ErrBadWeight for a negative weight.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v Node, weight int64) error {
	uID, vID := CanonicalID(u.ID), CanonicalID(v.ID)
	if uID == "" || vID == "" {
		return ErrEmptyNodeID
	}
	if weight < 0 {
		return fmt.Errorf("%w: %s—%s weight=%d", ErrBadWeight, uID, vID, weight)
	}

	g.nodes[uID] = Node{ID: uID, X: u.X, Y: u.Y}
	g.nodes[vID] = Node{ID: vID, X: v.X, Y: v.Y}

	g.adj[uID] = append(g.adj[uID], Neighbor{ID: vID, Weight: weight})
	g.adj[vID] = append(g.adj[vID], Neighbor{ID: uID, Weight: weight})
	g.edges = append(g.edges, Edge{U: uID, V: vID, Weight: weight})

	return nil
}

// HasNode reports whether the given identifier (canonicalized) is present.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.nodes[CanonicalID(id)]

	return ok
}

// Node returns the Node value for the given identifier (canonicalized) and
// whether it exists.
func (g *Graph) Node(id string) (Node, bool) {
	n, ok := g.nodes[CanonicalID(id)]

	return n, ok
}

// Neighbors returns the insertion-ordered (neighbor, weight) pairs of the
// given node, or ErrUnknownNode if the node was never inserted.
//
// The returned slice is the live adjacency list; treat it as read-only.
// Complexity: O(1).
func (g *Graph) Neighbors(id string) ([]Neighbor, error) {
	cid := CanonicalID(id)
	if cid == "" {
		return nil, ErrEmptyNodeID
	}
	if _, ok := g.nodes[cid]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNode, cid)
	}

	return g.adj[cid], nil
}

// EdgeWeight returns the weight of the first recorded edge connecting u and v.
// Returns ErrUnknownNode if u was never inserted, or ErrEdgeNotFound when no
// edge connects the pair.
// Complexity: O(deg(u)).
func (g *Graph) EdgeWeight(u, v string) (int64, error) {
	nbs, err := g.Neighbors(u)
	if err != nil {
		return 0, err
	}
	vID := CanonicalID(v)
	for _, nb := range nbs {
		if nb.ID == vID {
			return nb.Weight, nil
		}
	}

	return 0, fmt.Errorf("%w: %s—%s", ErrEdgeNotFound, CanonicalID(u), vID)
}

// NodeIDs returns all node identifiers sorted lexicographically ascending.
// Complexity: O(V log V).
func (g *Graph) NodeIDs() []string {
	ids := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Nodes returns all Node values sorted by identifier ascending.
// Complexity: O(V log V).
func (g *Graph) Nodes() []Node {
	out := make([]Node, 0, len(g.nodes))
	for _, id := range g.NodeIDs() {
		out = append(out, g.nodes[id])
	}

	return out
}

// Edges returns every undirected edge once, in insertion order.
// The returned slice is a copy and safe to modify.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// NodeCount returns the number of distinct nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of undirected edges inserted.
func (g *Graph) EdgeCount() int { return len(g.edges) }
