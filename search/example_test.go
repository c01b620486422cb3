package search_test

import (
	"fmt"

	"github.com/katalvlaran/wayfind/core"
	"github.com/katalvlaran/wayfind/search"
)

// ExampleSearch demonstrates A* on the weighted triangle:
//
//	    A───1───B
//	     \      │
//	      5     1
//	       \    │
//	        \───C
//
// The direct A—C edge costs 5; routing through B costs 2.
func ExampleSearch() {
	g := core.NewGraph()
	a := core.Node{ID: "A", X: 0, Y: 0}
	b := core.Node{ID: "B", X: 1, Y: 0}
	c := core.Node{ID: "C", X: 2, Y: 0}
	g.AddEdge(a, b, 1)
	g.AddEdge(b, c, 1)
	g.AddEdge(a, c, 5)

	res, err := search.Search(g, search.AStar, "A", "C")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Path, res.Cost)
	// Output:
	// [A B C] 2
}

// ExampleSearch_breadth shows the alphabetical tie-break: both D and B lead
// toward the goal in one hop, but B is enqueued (and expanded) first.
func ExampleSearch_breadth() {
	g := core.NewGraph()
	a := core.Node{ID: "A", X: 0, Y: 0}
	b := core.Node{ID: "B", X: 1, Y: 0}
	d := core.Node{ID: "D", X: 1, Y: 1}
	z := core.Node{ID: "Z", X: 2, Y: 0}
	g.AddEdge(a, d, 1)
	g.AddEdge(a, b, 1)
	g.AddEdge(d, z, 1)
	g.AddEdge(b, z, 1)

	res, err := search.Search(g, search.Breadth, "A", "Z")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Path, res.Cost)
	// Output:
	// [A B Z] 2
}

// ExampleSearch_noPath shows the NoPathFound outcome: an empty path and zero
// cost, with a nil error.
func ExampleSearch_noPath() {
	g := core.NewGraph()
	g.AddEdge(core.Node{ID: "A"}, core.Node{ID: "B", X: 1}, 1)
	g.AddEdge(core.Node{ID: "C", X: 5}, core.Node{ID: "D", X: 6}, 1)

	res, err := search.Search(g, search.Breadth, "A", "D")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Found(), len(res.Path), res.Cost)
	// Output:
	// false 0 0
}
