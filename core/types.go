package core

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeID indicates that a node identifier is the empty string.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrUnknownNode indicates an operation referenced a node that was never inserted.
	ErrUnknownNode = errors.New("core: unknown node")

	// ErrEdgeNotFound indicates that no edge connects the two requested nodes.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a negative edge weight was supplied.
	ErrBadWeight = errors.New("core: edge weight must be non-negative")
)

// Node is a vertex of the graph: a canonical identifier plus its 2D position.
// Coordinates are only consulted by the straight-line heuristic and the
// visualizer; the traversal algorithms themselves ignore them.
type Node struct {
	// ID uniquely identifies this node within its Graph.
	ID string

	// X, Y are the node's plane coordinates as given by the graph description.
	X, Y int
}

// String renders the node as "A(3, 7)".
func (n Node) String() string {
	return fmt.Sprintf("%s(%d, %d)", n.ID, n.X, n.Y)
}

// Neighbor is one entry of a node's adjacency list: the neighboring node's
// identifier and the weight of the connecting edge.
type Neighbor struct {
	// ID is the neighboring node's identifier.
	ID string

	// Weight is the cost of traversing the connecting edge.
	Weight int64
}

// Edge is one undirected edge as inserted, reported once per AddEdge call.
// U and V are canonical node identifiers.
type Edge struct {
	U, V   string
	Weight int64
}

// CanonicalID folds a raw node label to its canonical form: surrounding
// whitespace stripped, letters upper-cased. Equality and map keys throughout
// wayfind use this form.
func CanonicalID(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}
