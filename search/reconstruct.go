package search

import (
	"fmt"

	"github.com/katalvlaran/wayfind/core"
)

// ReconstructPath walks parent links backward from goal until reaching start,
// reverses the collected sequence into start→goal order, and sums the weight
// of each consecutive edge as looked up in g.
//
// The parent map must connect goal back to start — callers invoke this only
// after a search confirmed the goal was dequeued. A broken chain (missing
// parent, missing edge, or a cycle) returns ErrUnreachable.
//
// Complexity: O(L · deg) for a path of L nodes.
func ReconstructPath(parent map[string]string, start, goal string, g *core.Graph) ([]string, int64, error) {
	startID := core.CanonicalID(start)
	goalID := core.CanonicalID(goal)

	path := make([]string, 0, len(parent))
	var total int64
	// Bound the walk by the parent map size so a corrupt map cannot loop forever.
	for current, steps := goalID, 0; current != startID; steps++ {
		if steps > len(parent) {
			return nil, 0, fmt.Errorf("%w: parent cycle at %q", ErrUnreachable, current)
		}
		path = append(path, current)

		prev, ok := parent[current]
		if !ok || prev == "" {
			return nil, 0, fmt.Errorf("%w: %q has no parent", ErrUnreachable, current)
		}
		w, err := g.EdgeWeight(prev, current)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: %v", ErrUnreachable, err)
		}
		total += w
		current = prev
	}
	path = append(path, startID)

	// reverse to get start → goal
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, total, nil
}
