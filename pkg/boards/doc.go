// Package boards turns a computed layout into the physical boards of a shelf.
//
// Derive walks the rect stack once, row by row, and returns board requests
// without touching any scene:
//
//   - a backboard behind every compartment
//   - a vertical board at the left edge of the first slot of each row and at
//     the right edge of every compartment
//   - bottom boards, grouped left to right while compartments share the same
//     base elevation
//   - top boards for the topmost row, grouped by top elevation
//   - a correction board over the trailing compartments of a row when they are
//     lower than a compartment to their left
//
// Board requests are 2D: a vertical board is a line segment with a height,
// a horizontal board a segment with a width. [Dimensions.Box] converts them
// into the 3D boxes a [scene.Scene] accepts, and [Emit] does that for a whole
// slice.
//
// Adjacent rows share edges, so the same board is frequently requested twice;
// Derive returns every distinct board exactly once.
package boards
