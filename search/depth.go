package search

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/wayfind/core"
	"github.com/katalvlaran/wayfind/frontier"
)

// depthWalker encapsulates mutable DFS state for one call.
type depthWalker struct {
	graph   *core.Graph
	opts    Options
	stack   *frontier.Stack
	visited map[string]bool
	res     *Result
}

// runDepth is LIFO depth-first search. Unvisited children are sorted
// alphabetically, then pushed in reverse so the alphabetically first sibling
// pops first. The parent link is overwritten on every push: a node re-pushed
// from a deeper branch is reconstructed through the branch that actually
// expanded it.
func runDepth(g *core.Graph, start, goal string, o Options) (*Result, error) {
	w := &depthWalker{
		graph:   g,
		opts:    o,
		stack:   frontier.NewStack(),
		visited: make(map[string]bool, g.NodeCount()),
		res:     newResult(Depth, start, g.NodeCount()),
	}
	w.stack.Push(frontier.Item{ID: start})

	for !w.stack.IsEmpty() {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		item, _ := w.stack.Pop()
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
		if err := w.pushChildren(item.ID); err != nil {
			return nil, err
		}
		o.OnFrontier(Snapshot{Algorithm: Depth, Entries: toEntries(w.stack.Snapshot())})
	}

	return w.res, nil
}

// pushChildren pushes the unvisited neighbors of id in reverse-alphabetical
// order, overwriting each child's parent link.
func (w *depthWalker) pushChildren(id string) error {
	nbs, err := w.graph.Neighbors(id)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNeighbors, err)
	}

	children := make([]string, 0, len(nbs))
	for _, nb := range nbs {
		if !w.visited[nb.ID] {
			children = append(children, nb.ID)
		}
	}
	sort.Strings(children)

	for i := len(children) - 1; i >= 0; i-- {
		child := children[i]
		w.res.Parent[child] = id
		w.stack.Push(frontier.Item{ID: child})
		w.opts.OnEnqueue(child)
	}

	return nil
}
