// Package mask provides a boolean occupancy bitmap over a rectangular
// index space, together with its run-length text codec.
//
// What:
//
//   - Mask wraps a rows×columns boolean buffer; cells are "on" by default.
//   - Get never errors (out-of-range reads are simply off); Set is strict.
//   - RandomOn samples uniformly among on cells.
//   - Decode/Encode translate to and from the compact RLE grammar below.
//
// Why:
//
//   - Irregular mazes: a mask restricts which lattice cells exist.
//   - Stencils: carve a maze shaped like a logo or a floor plan.
//   - Persistence: the RLE text is the only serialized artifact the
//     engine defines, so external editors load and save through it.
//
// Grammar (consumed character by character, whitespace ignored):
//
//	digits — accumulate a pending repeat count (default 1)
//	w      — declare width from the pending count (once only)
//	h      — declare height from the pending count (once only)
//	o      — turn the next count cells off, row-major
//	.      — skip the next count cells, leaving them on
//	$      — jump to the first column of the next row
//	!      — stop; remaining input is ignored
//
// The buffer is allocated, fully on, as soon as both dimensions are known.
// Occupancy commands before that point are errors.
//
// Complexity:
//
//   - Get/Set: O(1). Count: O(rows×columns).
//   - Decode: O(len(text) + rows×columns). Encode: O(rows×columns).
//   - RandomOn: O(rows×columns) single scan.
//
// Errors:
//
//   - ErrEmptyMask: requested dimensions below 1×1.
//   - ErrInvalidCharacter: unexpected symbol during decode.
//   - ErrDuplicateDimension: width or height declared twice.
//   - ErrDimensionsNotSet: occupancy/skip/row command before dimensions.
//   - ErrIndexOutOfRange: a write outside the declared bounds.
//   - ErrNoOnCells: random sampling on an all-off mask.
package mask
