package heuristic_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/wayfind/core"
	"github.com/katalvlaran/wayfind/heuristic"
)

func TestTable_SetAndValue(t *testing.T) {
	tbl := heuristic.NewTable()
	tbl.Set("a", "B", 4)

	got, ok := tbl.Value("A", "b")
	assert.True(t, ok, "forward lookup must succeed after Set")
	assert.Equal(t, int64(4), got)

	got, ok = tbl.Value("B", "A")
	assert.True(t, ok, "table must be symmetric")
	assert.Equal(t, int64(4), got)

	_, ok = tbl.Value("A", "Z")
	assert.False(t, ok, "unrecorded pair must report absence")
}

func TestFromGraph_EqualsEdgeWeights(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge(core.Node{ID: "A"}, core.Node{ID: "B", X: 1}, 1)
	g.AddEdge(core.Node{ID: "B", X: 1}, core.Node{ID: "C", X: 2}, 3)

	tbl := heuristic.FromGraph(g)
	for _, e := range g.Edges() {
		h, ok := tbl.Value(e.U, e.V)
		assert.True(t, ok, "edge %s—%s must have a table entry", e.U, e.V)
		assert.Equal(t, e.Weight, h, "h(%s,%s) must equal the edge weight", e.U, e.V)
	}
}

func TestEuclidean(t *testing.T) {
	a := core.Node{ID: "A", X: 0, Y: 0}
	b := core.Node{ID: "B", X: 3, Y: 4}
	assert.Equal(t, 5.0, heuristic.Euclidean(a, b))
	assert.Equal(t, 5.0, heuristic.Euclidean(b, a))
	assert.Equal(t, 0.0, heuristic.Euclidean(a, a))
}

func TestStraightLine_UnknownNodeIsInfinite(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge(core.Node{ID: "A"}, core.Node{ID: "B", X: 3, Y: 4}, 1)

	assert.Equal(t, 5.0, heuristic.StraightLine(g, "A", "B"))
	assert.True(t, math.IsInf(heuristic.StraightLine(g, "A", "Z"), 1),
		"missing goal coordinates must yield +Inf")
	assert.True(t, math.IsInf(heuristic.StraightLine(g, "Z", "A"), 1),
		"missing node coordinates must yield +Inf")
}
