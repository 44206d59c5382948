// Package amaze is an in-memory engine for building, carving, and
// analyzing perfect mazes — spanning trees over a rectangular grid graph.
//
// 🚀 What is amaze?
//
//	A small, deterministic-on-demand library that brings together:
//		• Grid primitives: cells wired into a 4-neighbor lattice, carved links
//		• Masks: occupancy bitmaps with a compact run-length text codec
//		• Distances: BFS distance maps over carved passages + path recovery
//		• Carvers: six spanning-tree algorithms, from binary-tree to Wilson's
//
// ✨ Why choose amaze?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Reproducible – every stochastic step runs off an injectable seed
//   - Pure Go – no cgo, no hidden deps
//   - Composable – masks, labelers and colorers plug into one Grid type
//
// Under the hood, everything is organized under four subpackages:
//
//	mask/     — boolean occupancy bitmap + RLE text codec
//	grid/     — Cell & Grid types, lattice wiring, ASCII preview rendering
//	distance/ — link-graph BFS distance maps, farthest cell, shortest paths
//	carve/    — the six generators and their name registry
//
// Quick ASCII example:
//
//	+---+---+
//	|       |
//	+---+   +
//	|       |
//	+---+---+
//
//	a carved 2×2 maze: three links, zero cycles, every cell reachable.
//
// Next up: dive into carve's doc.go for the algorithm menagerie, or mask's
// for the codec grammar.
//
//	go get github.com/katalvlaran/amaze
package amaze
