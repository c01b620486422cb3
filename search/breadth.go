package search

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/wayfind/core"
	"github.com/katalvlaran/wayfind/frontier"
)

// breadthWalker encapsulates mutable BFS state for one call.
type breadthWalker struct {
	graph   *core.Graph
	opts    Options
	queue   *frontier.Queue
	visited map[string]bool
	res     *Result
}

// runBreadth is FIFO breadth-first search. Children of a dequeued node are
// filtered to exclude visited and already-queued nodes, then sorted
// alphabetically before enqueueing — the alphabetical tie-break keeps runs
// reproducible. Parents are recorded at first discovery and never revised.
func runBreadth(g *core.Graph, start, goal string, o Options) (*Result, error) {
	w := &breadthWalker{
		graph:   g,
		opts:    o,
		queue:   frontier.NewQueue(),
		visited: make(map[string]bool, g.NodeCount()),
		res:     newResult(Breadth, start, g.NodeCount()),
	}
	w.queue.Push(frontier.Item{ID: start})

	for !w.queue.IsEmpty() {
		// cancellation check (once per loop)
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		item, _ := w.queue.Pop()
		if w.visited[item.ID] {
			continue
		}
		w.visited[item.ID] = true
		o.OnExpand(item.ID)
		w.res.Order = append(w.res.Order, item.ID)

		if item.ID == goal {
			if err := w.res.finish(g, start, goal); err != nil {
				return nil, err
			}

			return w.res, nil
		}
		if err := w.enqueueChildren(item.ID); err != nil {
			return nil, err
		}
		o.OnFrontier(Snapshot{Algorithm: Breadth, Entries: toEntries(w.queue.Snapshot())})
	}

	// frontier exhausted: no path
	return w.res, nil
}

// enqueueChildren gathers the unvisited, not-yet-discovered neighbors of id,
// records their parent, and enqueues them in alphabetical order.
func (w *breadthWalker) enqueueChildren(id string) error {
	nbs, err := w.graph.Neighbors(id)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNeighbors, err)
	}

	children := make([]string, 0, len(nbs))
	for _, nb := range nbs {
		if w.visited[nb.ID] {
			continue
		}
		if _, discovered := w.res.Parent[nb.ID]; discovered {
			continue // already queued
		}
		children = append(children, nb.ID)
	}
	for _, child := range children {
		w.res.Parent[child] = id
	}
	sort.Strings(children)

	for _, child := range children {
		w.queue.Push(frontier.Item{ID: child})
		w.opts.OnEnqueue(child)
	}

	return nil
}

// toEntries converts frontier items to trace entries (identifier-only view).
func toEntries(items []frontier.Item) []Entry {
	out := make([]Entry, len(items))
	for i, it := range items {
		out[i] = Entry{ID: it.ID, Priority: it.Priority}
	}

	return out
}
