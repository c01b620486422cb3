package core_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/wayfind/core"
)

func node(id string, x, y int) core.Node {
	return core.Node{ID: id, X: x, Y: y}
}

// TestAddEdge_Symmetry verifies the undirected invariant: every inserted edge
// (u, v, w) is visible from both endpoints with the identical weight.
func TestAddEdge_Symmetry(t *testing.T) {
	g := core.NewGraph()
	if err := g.AddEdge(node("A", 0, 0), node("B", 3, 4), 7); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}

	ab, err := g.Neighbors("A")
	if err != nil {
		t.Fatalf("Neighbors(A): %v", err)
	}
	ba, err := g.Neighbors("B")
	if err != nil {
		t.Fatalf("Neighbors(B): %v", err)
	}
	if want := []core.Neighbor{{ID: "B", Weight: 7}}; !reflect.DeepEqual(ab, want) {
		t.Errorf("Neighbors(A) = %v; want %v", ab, want)
	}
	if want := []core.Neighbor{{ID: "A", Weight: 7}}; !reflect.DeepEqual(ba, want) {
		t.Errorf("Neighbors(B) = %v; want %v", ba, want)
	}
}

// TestAddEdge_Canonicalization checks that labels are upper-cased and trimmed
// on the way in and on lookup.
func TestAddEdge_Canonicalization(t *testing.T) {
	g := core.NewGraph()
	if err := g.AddEdge(node(" a ", 1, 2), node("b", 3, 4), 1); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	if !g.HasNode("A") || !g.HasNode("b") {
		t.Fatal("canonical lookups failed")
	}
	n, ok := g.Node("a")
	if !ok || n.ID != "A" || n.X != 1 || n.Y != 2 {
		t.Errorf("Node(a) = %v, %v; want A(1, 2), true", n, ok)
	}
}

// TestAddEdge_Rejections covers empty identifiers and negative weights.
func TestAddEdge_Rejections(t *testing.T) {
	g := core.NewGraph()
	if err := g.AddEdge(node("  ", 0, 0), node("B", 0, 0), 1); !errors.Is(err, core.ErrEmptyNodeID) {
		t.Errorf("empty ID: want ErrEmptyNodeID, got %v", err)
	}
	if err := g.AddEdge(node("A", 0, 0), node("B", 0, 0), -1); !errors.Is(err, core.ErrBadWeight) {
		t.Errorf("negative weight: want ErrBadWeight, got %v", err)
	}
	if g.NodeCount() != 0 {
		t.Errorf("rejected edges must not insert nodes; count = %d", g.NodeCount())
	}
}

// TestNeighbors_UnknownNode verifies the ErrUnknownNode contract.
func TestNeighbors_UnknownNode(t *testing.T) {
	g := core.NewGraph()
	if _, err := g.Neighbors("Z"); !errors.Is(err, core.ErrUnknownNode) {
		t.Errorf("want ErrUnknownNode, got %v", err)
	}
	if _, err := g.EdgeWeight("Z", "A"); !errors.Is(err, core.ErrUnknownNode) {
		t.Errorf("EdgeWeight from unknown node: want ErrUnknownNode, got %v", err)
	}
}

// TestNeighbors_InsertionOrder checks that adjacency preserves insertion order
// rather than imposing its own; alphabetical ordering is the engine's job.
func TestNeighbors_InsertionOrder(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge(node("A", 0, 0), node("C", 2, 0), 5)
	g.AddEdge(node("A", 0, 0), node("B", 1, 0), 1)

	nbs, err := g.Neighbors("A")
	if err != nil {
		t.Fatal(err)
	}
	want := []core.Neighbor{{ID: "C", Weight: 5}, {ID: "B", Weight: 1}}
	if !reflect.DeepEqual(nbs, want) {
		t.Errorf("Neighbors(A) = %v; want %v", nbs, want)
	}
}

// TestEdgeWeight_FirstMatch confirms the first recorded edge wins when the
// same pair appears more than once in the description.
func TestEdgeWeight_FirstMatch(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge(node("A", 0, 0), node("B", 1, 0), 4)
	g.AddEdge(node("A", 0, 0), node("B", 1, 0), 9)

	w, err := g.EdgeWeight("A", "B")
	if err != nil {
		t.Fatal(err)
	}
	if w != 4 {
		t.Errorf("EdgeWeight(A,B) = %d; want first-recorded 4", w)
	}
	if _, err = g.EdgeWeight("A", "C"); !errors.Is(err, core.ErrEdgeNotFound) {
		t.Errorf("missing edge: want ErrEdgeNotFound, got %v", err)
	}
}

// TestNodeIDsAndEdges covers the sorted-node and insertion-ordered-edge views.
func TestNodeIDsAndEdges(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge(node("D", 0, 1), node("B", 1, 1), 2)
	g.AddEdge(node("A", 0, 0), node("D", 0, 1), 3)

	if want := []string{"A", "B", "D"}; !reflect.DeepEqual(g.NodeIDs(), want) {
		t.Errorf("NodeIDs = %v; want %v", g.NodeIDs(), want)
	}
	edges := g.Edges()
	want := []core.Edge{{U: "D", V: "B", Weight: 2}, {U: "A", V: "D", Weight: 3}}
	if !reflect.DeepEqual(edges, want) {
		t.Errorf("Edges = %v; want %v", edges, want)
	}
	if g.NodeCount() != 3 || g.EdgeCount() != 2 {
		t.Errorf("counts = %d nodes, %d edges; want 3, 2", g.NodeCount(), g.EdgeCount())
	}
}
