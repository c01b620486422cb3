package search

import (
	"fmt"

	"github.com/katalvlaran/wayfind/core"
)

// Search runs the tagged strategy from start to goal over g, applying any
// number of functional Options.
//
// An unreachable goal is not an error: the Result carries a nil Path and
// zero Cost (Found() == false). Errors are reserved for invalid input —
// ErrGraphNil, ErrStartNotFound, ErrGoalNotFound, ErrUnknownAlgorithm —
// plus context cancellation and graph lookup failures.
func Search(g *core.Graph, alg Algorithm, start, goal string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	startID := core.CanonicalID(start)
	goalID := core.CanonicalID(goal)
	if !g.HasNode(startID) {
		return nil, fmt.Errorf("%w: %q", ErrStartNotFound, startID)
	}
	if !g.HasNode(goalID) {
		return nil, fmt.Errorf("%w: %q", ErrGoalNotFound, goalID)
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	switch alg {
	case Breadth:
		return runBreadth(g, startID, goalID, o)
	case Depth:
		return runDepth(g, startID, goalID, o)
	case Best:
		return runBest(g, startID, goalID, o)
	case AStar:
		return runAStar(g, startID, goalID, o)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(alg))
	}
}

// newResult seeds the shared per-call state: a Result whose parent map holds
// the start sentinel entry.
func newResult(alg Algorithm, start string, hint int) *Result {
	return &Result{
		Algorithm: alg,
		Parent:    map[string]string{start: ""},
		Order:     make([]string, 0, hint),
	}
}

// finish populates Path and Cost after a confirmed goal hit.
func (r *Result) finish(g *core.Graph, start, goal string) error {
	path, cost, err := ReconstructPath(r.Parent, start, goal, g)
	if err != nil {
		return err
	}
	r.Path = path
	r.Cost = cost

	return nil
}
