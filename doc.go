// Package wayfind is an in-memory toolkit for loading weighted, undirected
// maps from text descriptions and finding routes across them with the four
// classic AI-search strategies.
//
// 🚀 What is wayfind?
//
//	A small, deterministic pathfinding library that brings together:
//		• Core primitives: nodes with 2D coordinates, weighted undirected edges
//		• Frontier policies: FIFO, LIFO, and an index-tracked min-heap
//		• Traversals: Breadth-First and Depth-First with alphabetical tie-breaks
//		• Informed search: greedy Best-First and A* with Euclidean heuristics
//		• A strict text loader for ('A', 'B', 3, [x1, y1], [x2, y2]) edge lines
//		• Visualization: PNG rendering and Mermaid export with path highlighting
//
// ✨ Why choose wayfind?
//
//   - Deterministic – sibling order is always alphabetical, runs are reproducible
//   - Inspectable – frontier snapshots let you watch every expansion
//   - Pure data in, pure data out – searches share an immutable graph and keep
//     all mutable state per call, so concurrent searches are safe
//
// Everything is organized under focused subpackages:
//
//	core/      — Graph store: Node, Neighbor, adjacency, coordinates
//	heuristic/ — edge-weight tables (Best-First) and straight-line distance (A*)
//	frontier/  — FIFO queue, LIFO stack, min-heap with decrease-key
//	search/    — BFS, DFS, Best-First, A*, path reconstruction, tracing
//	graphfile/ — text description loader with malformed-line recovery
//	viz/       — PNG and Mermaid renderers with highlighted paths
//	cmd/       — the wayfind command-line interface
//
// Quick ASCII example:
//
//	    A───1───B
//	     \      │
//	      5     1
//	       \    │
//	        \───C
//
//	A* from A to C follows A→B→C at cost 2; the direct A─C edge costs 5.
//
// Dive into the package docs for full examples and the exact tie-break and
// cost-accounting rules each strategy follows.
//
//	go get github.com/katalvlaran/wayfind
package wayfind
