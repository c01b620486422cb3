// Package frontier implements the container disciplines behind each search
// strategy: a FIFO queue (Breadth-First), a LIFO stack (Depth-First), and an
// index-tracked min-heap (Best-First and A*).
//
// All three hold Item values — a node identifier plus a priority whose
// meaning the caller decides (unused for FIFO/LIFO, h-cost for Best-First,
// f-cost for A*).
//
// The min-heap supports the two update styles the informed searches need:
//
//   - DecreaseKey lowers an entry's priority in place, keeping its original
//     insertion position among equal priorities (Best-First never duplicates
//     a frontier entry, it only lowers it).
//   - Remove deletes an entry outright so the caller can push a fresh one
//     (A* replaces a node's entry whenever a strictly better g-cost appears;
//     stale duplicates for the same node never coexist).
//
// Ties between equal priorities resolve by insertion sequence, matching the
// stable full-resort the behavior contract is written against.
//
// None of the containers are safe for concurrent use; every search owns its
// frontier for the duration of one call.
package frontier
