// Package core defines the central Graph, Node, and Neighbor types used by
// every search strategy in wayfind.
//
// A Graph is a weighted, undirected adjacency structure keyed by canonical
// (upper-cased) node identifiers. Every node carries its own 2D coordinates,
// so there is exactly one place that knows where a node sits — the engine and
// the visualizer both read the same Node values.
//
// Graphs are built once at load time and treated as read-only afterwards:
// no method mutates a Graph after loading, so any number of searches may run
// against the same Graph concurrently without locking, provided each search
// keeps its own per-call state (the search package does).
//
// Invariants:
//
//   - Undirected symmetry: AddEdge(u, v, w) records both u→v and v→u with the
//     identical weight w.
//   - Every node that appears in the adjacency structure has a coordinate
//     entry (its Node value).
//   - Neighbor lists preserve insertion order; callers that need alphabetical
//     order sort explicitly.
//
// Errors:
//
//	ErrEmptyNodeID  - a node identifier is the empty string.
//	ErrUnknownNode  - an operation referenced a node that was never inserted.
//	ErrEdgeNotFound - no edge connects the two requested nodes.
//	ErrBadWeight    - a negative edge weight was supplied.
package core
