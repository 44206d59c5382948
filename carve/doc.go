// Package carve provides six maze-generation algorithms. Each takes a
// grid with an empty link relation and carves a spanning tree over its
// present cells: exactly size−1 links, every cell reachable from every
// other, and no cycles.
//
// What:
//
//   - BinaryTree — per-cell coin flip between north and east. Fast,
//     heavily biased toward two border corridors.
//   - Sidewinder — row-local runs closed northward. Fast, north-border
//     corridor bias.
//   - AldousBroder — unbiased random walk. Uniform over spanning trees
//     but potentially very slow on large grids.
//   - Wilsons — loop-erased random walks. Uniform over spanning trees,
//     usually far faster than Aldous–Broder.
//   - HuntAndKill — random walk with row-major hunting. Few dead ends.
//   - RecursiveBacktracker — depth-first carve with an explicit stack.
//     Long winding passages.
//
// Every algorithm shares one signature, Func, and the Lookup registry
// maps the six canonical snake_case names to them for callers that
// select a strategy by string.
//
// Determinism:
//
//   - All random choices flow through one injectable source. Use
//     WithSeed or WithRand for reproducible mazes; without either, a
//     time-seeded source is created per call.
//
// Preconditions:
//
//   - The present cells must form one lattice-connected component.
//     AldousBroder, Wilsons, and HuntAndKill verify this up front and
//     return ErrDisconnectedRegion rather than walking forever; the
//     remaining algorithms terminate regardless but only span the
//     component they can reach.
//   - BinaryTree and Sidewinder additionally assume an unmasked
//     rectangle: both escape north/east, so a masked hole can strand
//     cells. Prefer the walk-based algorithms on masked grids.
//
// Errors:
//
//   - ErrGridNil: nil grid.
//   - ErrOptionViolation: invalid option value.
//   - ErrDisconnectedRegion: masked region is not lattice-connected.
//   - ErrStepLimit: a WithMaxSteps cap was exhausted mid-walk.
package carve
