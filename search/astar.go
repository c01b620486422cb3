package search

import (
	"fmt"

	"github.com/katalvlaran/wayfind/core"
	"github.com/katalvlaran/wayfind/frontier"
	"github.com/katalvlaran/wayfind/heuristic"
)

// aStarWalker encapsulates mutable A* state for one call.
type aStarWalker struct {
	graph   *core.Graph
	opts    Options
	goal    string
	pq      *frontier.MinHeap
	visited map[string]bool
	res     *Result
}

// runAStar is A* search: the frontier is ordered by f = g + h, where g is
// the best-known cumulative cost from the start and h the straight-line
// distance to the goal (+Inf when coordinates are unknown). A child is
// accepted only when it has no recorded g-cost or the tentative g-cost is
// strictly lower; acceptance updates the g-cost and parent and replaces any
// prior frontier entry for that node.
//
// Visited (expanded) nodes are never re-expanded, even if a better g-cost is
// found through a later path — a known deviation from textbook A* that is
// part of the behavior contract.
func runAStar(g *core.Graph, start, goal string, o Options) (*Result, error) {
	w := &aStarWalker{
		graph:   g,
		opts:    o,
		goal:    goal,
		pq:      frontier.NewMinHeap(),
		visited: make(map[string]bool, g.NodeCount()),
		res:     newResult(AStar, start, g.NodeCount()),
	}
	w.res.GCosts = map[string]int64{start: 0}
	w.pq.Push(frontier.Item{ID: start, Priority: 0})

	for !w.pq.IsEmpty() {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		item, _ := w.pq.Pop()
		o.OnExpand(item.ID)
		w.res.Order = append(w.res.Order, item.ID)

		if item.ID == goal {
			if err := w.res.finish(g, start, goal); err != nil {
				return nil, err
			}

			return w.res, nil
		}
		w.visited[item.ID] = true

		if err := w.relaxChildren(item.ID); err != nil {
			return nil, err
		}
		o.OnFrontier(Snapshot{Algorithm: AStar, Entries: w.snapshot()})
	}

	return w.res, nil
}

// relaxChildren applies the strict-improvement rule to every unvisited
// neighbor of id: tentative g = g(id) + w(id, child); accept only when no
// g-cost is recorded or the tentative one is strictly lower.
func (w *aStarWalker) relaxChildren(id string) error {
	nbs, err := w.graph.Neighbors(id)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNeighbors, err)
	}

	for _, nb := range nbs {
		if w.visited[nb.ID] {
			continue
		}

		tentative := w.res.GCosts[id] + nb.Weight
		if known, ok := w.res.GCosts[nb.ID]; ok && tentative >= known {
			continue
		}

		w.res.GCosts[nb.ID] = tentative
		w.res.Parent[nb.ID] = id

		f := float64(tentative) + heuristic.StraightLine(w.graph, nb.ID, w.goal)
		// Replace, never duplicate: drop the stale entry before pushing.
		w.pq.Remove(nb.ID)
		w.pq.Push(frontier.Item{ID: nb.ID, Priority: f})
		w.opts.OnEnqueue(nb.ID)
	}

	return nil
}

// snapshot reports the frontier with full cost breakdowns: g, h, and f per
// entry, in pop order.
func (w *aStarWalker) snapshot() []Entry {
	items := w.pq.Snapshot()
	out := make([]Entry, len(items))
	for i, it := range items {
		out[i] = Entry{
			ID:       it.ID,
			Priority: it.Priority,
			GCost:    w.res.GCosts[it.ID],
			HCost:    heuristic.StraightLine(w.graph, it.ID, w.goal),
		}
	}

	return out
}
