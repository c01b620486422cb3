package search

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/wayfind/heuristic"
)

// Sentinel errors for search execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("search: graph is nil")

	// ErrStartNotFound is returned when the start identifier is absent.
	ErrStartNotFound = errors.New("search: start node not found")

	// ErrGoalNotFound is returned when the goal identifier is absent.
	ErrGoalNotFound = errors.New("search: goal node not found")

	// ErrUnknownAlgorithm is returned for an unrecognized Algorithm value
	// or spelling.
	ErrUnknownAlgorithm = errors.New("search: unknown algorithm")

	// ErrUnreachable is returned by ReconstructPath when the parent map does
	// not connect goal back to start. It signals an internal invariant
	// violation: reconstruction must only run after a confirmed goal hit.
	ErrUnreachable = errors.New("search: goal unreachable from parent map")

	// ErrNeighbors is returned when fetching neighbors from the graph fails.
	ErrNeighbors = errors.New("search: neighbor lookup error")
)

// Algorithm tags one of the four traversal strategies. Carrying the tag
// explicitly (rather than sniffing per-run state) is what lets trace
// consumers format frontier snapshots correctly.
type Algorithm int

const (
	// Breadth is FIFO breadth-first search.
	Breadth Algorithm = iota

	// Depth is LIFO depth-first search.
	Depth

	// Best is greedy best-first search ordered by the edge-weight heuristic.
	Best

	// AStar is A* search ordered by f = g + straight-line h.
	AStar
)

// algorithmNames are the canonical CLI spellings, indexed by Algorithm.
var algorithmNames = [...]string{"BREADTH", "DEPTH", "BEST", "A*"}

// String returns the canonical spelling: BREADTH, DEPTH, BEST, or A*.
func (a Algorithm) String() string {
	if a < Breadth || a > AStar {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}

	return algorithmNames[a]
}

// ParseAlgorithm maps a spelling (case-insensitive) to its Algorithm.
// Accepted: BREADTH, DEPTH, BEST, A* (ASTAR is tolerated for shells where
// the asterisk is awkward). Returns ErrUnknownAlgorithm otherwise.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "BREADTH":
		return Breadth, nil
	case "DEPTH":
		return Depth, nil
	case "BEST":
		return Best, nil
	case "A*", "ASTAR":
		return AStar, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
	}
}

// Entry is one frontier element as reported to trace consumers.
// Priority is the ordering key where the strategy has one (h-cost for Best,
// f-cost for AStar); GCost and HCost are populated for AStar only.
type Entry struct {
	ID       string
	Priority float64
	GCost    int64
	HCost    float64
}

// Snapshot is the frontier state after one expansion, in pop order.
// Algorithm tells the consumer which Entry fields are meaningful.
type Snapshot struct {
	Algorithm Algorithm
	Entries   []Entry
}

// Option configures search behavior via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks to customize a search run.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnExpand is called when a node is popped for expansion.
	OnExpand func(id string)

	// OnEnqueue is called when a child enters (or is updated in) the frontier.
	OnEnqueue func(id string)

	// OnFrontier receives the frontier state after each expansion.
	OnFrontier func(snap Snapshot)

	// Heuristics, if non-nil, is the prebuilt edge-weight table Best-First
	// consults. When nil, Best-First derives one from the graph per call.
	Heuristics *heuristic.Table
}

// DefaultOptions returns Options with context.Background, no-op hooks, and
// no prebuilt heuristic table.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		OnExpand:   func(string) {},
		OnEnqueue:  func(string) {},
		OnFrontier: func(Snapshot) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnExpand registers a callback invoked per expanded node.
func WithOnExpand(fn func(id string)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnEnqueue registers a callback invoked per enqueued child.
func WithOnEnqueue(fn func(id string)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnFrontier registers a callback receiving the frontier snapshot after
// each expansion.
func WithOnFrontier(fn func(snap Snapshot)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnFrontier = fn
		}
	}
}

// WithHeuristics supplies a prebuilt heuristic table, so repeated Best-First
// runs over the same graph skip rebuilding it.
func WithHeuristics(t *heuristic.Table) Option {
	return func(o *Options) {
		if t != nil {
			o.Heuristics = t
		}
	}
}

// Result is the outcome of one search invocation.
type Result struct {
	// Algorithm is the strategy that produced this result.
	Algorithm Algorithm

	// Path is the start→goal node sequence, or nil when no path was found.
	Path []string

	// Cost is the sum of edge weights along Path; zero when no path exists.
	Cost int64

	// Parent records, per discovered node, the node it was reached from.
	// The start node maps to the empty string.
	Parent map[string]string

	// Order lists expanded nodes in expansion sequence.
	Order []string

	// GCosts holds the best-known cumulative cost per node. AStar only;
	// nil for the other strategies.
	GCosts map[string]int64
}

// Found reports whether the search reached the goal.
func (r *Result) Found() bool { return len(r.Path) > 0 }
