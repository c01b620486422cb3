// Package search implements the four traversal strategies of wayfind —
// Breadth-First, Depth-First, greedy Best-First, and A* — over a core.Graph,
// along with path reconstruction, cost accounting, and frontier tracing.
//
// All four strategies share one skeleton: a visited set, a parent map seeded
// with the start node, and a frontier seeded with the start node. Each
// iteration pops an entry, tests it against the goal, expands its unvisited
// neighbors under the strategy's discipline, and optionally reports the
// frontier state. Reaching the goal triggers ReconstructPath; exhausting the
// frontier yields an empty path and zero cost — a normal outcome, not an
// error.
//
// Strategy-specific rules (all load-bearing for reproducible output):
//
//   - Breadth: FIFO frontier; children sorted alphabetically before enqueue;
//     a child already queued or visited is not enqueued again; a node's
//     parent is recorded at first discovery and never revised.
//   - Depth: LIFO frontier; children pushed in reverse-alphabetical order so
//     the alphabetically first sibling pops first; the parent link is
//     overwritten on every push, so reconstruction follows the actual
//     traversal tree.
//   - Best: min-heap keyed by the edge-weight heuristic between the expanding
//     node and the child; parents are never revised after first discovery;
//     a frontier entry is lowered in place when rediscovered cheaper, never
//     duplicated. No cost-optimality guarantee — greedy by contract.
//   - AStar: min-heap keyed by f = g + h with h the straight-line distance to
//     the goal (+Inf without coordinates); a child is accepted only on a
//     strictly better g-cost, replacing any prior frontier entry. Visited
//     nodes are never re-expanded even if their g-cost later improves — a
//     deliberate deviation from textbook A* that is part of the behavior
//     contract.
//
// Every search call owns its frontier, visited set, parent map, and g-cost
// map; the graph itself is read-only, so concurrent searches over one graph
// are safe.
//
// Errors:
//
//	ErrGraphNil         - nil graph pointer.
//	ErrStartNotFound    - start identifier absent from the graph.
//	ErrGoalNotFound     - goal identifier absent from the graph.
//	ErrUnknownAlgorithm - algorithm tag not one of the four strategies.
//	ErrUnreachable      - ReconstructPath invoked with a parent map that does
//	                      not connect goal back to start (internal invariant).
package search
