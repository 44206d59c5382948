// Package grid provides the cell-graph data model for rectangular mazes:
// cells wired into a 4-neighbor lattice, an owning Grid, and the textual
// preview renderer.
//
// What:
//
//   - Cell is a node at a fixed (row, column) with up to four lattice
//     neighbors and a set of carved links (undirected passages).
//   - Grid owns every cell, wires the lattice exactly once at
//     construction, and serves iteration, lookup, and random sampling.
//   - NewMasked builds an irregular grid: masked-off slots hold no cell.
//   - Labeler and Colorer are pluggable presentation strategies consumed
//     by String and by external renderers.
//
// Ownership:
//
//   - The Grid owns all cells; neighbor slots and link sets hold plain
//     references back into the same arena. Neighbor slots never change
//     after wiring; the link relation is the only post-construction
//     mutable state, and exactly one carver should mutate it at a time.
//
// Complexity:
//
//   - Construction: O(rows×columns) allocation + wiring.
//   - At, LinkedTo, Link, Unlink: O(1). Links: O(k log k) for k links.
//   - EachCell/EachRow: lazy row-major sequences, restartable.
//   - DeadEnds, Size (masked): O(rows×columns).
//
// Errors:
//
//   - ErrEmptyGrid: requested dimensions below 1×1.
//   - ErrNilMask: NewMasked was handed a nil mask.
//   - ErrNoNeighbors: random neighbor requested on an isolated cell.
//
// Lattice lookups themselves never error: out-of-range or masked-off
// access yields a nil cell, which carvers and renderers treat as an
// absent edge, not a fault.
package grid
