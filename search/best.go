package search

import (
	"fmt"

	"github.com/katalvlaran/wayfind/core"
	"github.com/katalvlaran/wayfind/frontier"
	"github.com/katalvlaran/wayfind/heuristic"
)

// bestWalker encapsulates mutable Best-First state for one call.
type bestWalker struct {
	graph   *core.Graph
	opts    Options
	table   *heuristic.Table
	pq      *frontier.MinHeap
	visited map[string]bool
	res     *Result
}

// runBest is greedy best-first search: the frontier is ordered by the
// edge-weight heuristic between the expanding node and the candidate child.
// The goal test runs on pop, before the node is marked visited. A node's
// parent is recorded only the first time it is discovered and never revised,
// even if a cheaper route to it appears later — classic non-optimal
// best-first behavior, preserved on purpose.
func runBest(g *core.Graph, start, goal string, o Options) (*Result, error) {
	table := o.Heuristics
	if table == nil {
		table = heuristic.FromGraph(g)
	}

	w := &bestWalker{
		graph:   g,
		opts:    o,
		table:   table,
		pq:      frontier.NewMinHeap(),
		visited: make(map[string]bool, g.NodeCount()),
		res:     newResult(Best, start, g.NodeCount()),
	}
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

		if err := w.offerChildren(item.ID); err != nil {
			return nil, err
		}
		o.OnFrontier(Snapshot{Algorithm: Best, Entries: toEntries(w.pq.Snapshot())})
	}

	return w.res, nil
}

// offerChildren pushes each unvisited neighbor of id keyed by h(id, child),
// or lowers its existing frontier entry when the new heuristic is smaller.
// The entry is never duplicated.
func (w *bestWalker) offerChildren(id string) error {
	nbs, err := w.graph.Neighbors(id)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNeighbors, err)
	}

	for _, nb := range nbs {
		if w.visited[nb.ID] {
			continue
		}
		if _, discovered := w.res.Parent[nb.ID]; !discovered {
			w.res.Parent[nb.ID] = id
		}

		h, ok := w.table.Value(id, nb.ID)
		if !ok {
			h = nb.Weight // table is edge-derived; adjacency is the fallback
		}
		if !w.pq.Contains(nb.ID) {
			w.pq.Push(frontier.Item{ID: nb.ID, Priority: float64(h)})
			w.opts.OnEnqueue(nb.ID)
		} else if w.pq.DecreaseKey(nb.ID, float64(h)) {
			w.opts.OnEnqueue(nb.ID)
		}
	}

	return nil
}
