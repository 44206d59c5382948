// Package distance computes breadth-first distance maps over a grid's
// carved link graph — not the full lattice — and recovers shortest paths.
//
// What:
//
//   - From runs BFS from a root cell across links only, assigning each
//     reachable cell its minimum hop count from the root.
//   - Max reports the farthest reachable cell; PathTo restricts the map
//     to one shortest root→goal path.
//   - Labeler renders distances as base-62 cell interiors; Colorer shades
//     cells along a green gradient by relative distance.
//
// Determinism:
//
//   - Linked neighbors are always visited in row-major order, so
//     discovery order, Max tie-breaks (first strictly greater wins), and
//     the backward step chosen by PathTo are reproducible run to run.
//
// Complexity:
//
//   - From: O(cells + links). Max: O(cells). PathTo: O(path × degree).
//
// Errors:
//
//   - ErrNilRoot: From was handed a nil root cell.
//   - ErrUnreachable: PathTo goal outside the map (no link path from
//     the root reaches it).
package distance
