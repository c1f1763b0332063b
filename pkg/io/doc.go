// Package io reads and writes shelf descriptions.
//
// A description lists the material dimensions and the rows of compartments,
// bottom row first. The same structure is accepted as TOML, YAML or JSON;
// the format is chosen by file extension in [Import] and [Export], or passed
// explicitly to [Decode] and [Encode].
//
// # TOML
//
//	depth = 25
//	board_thickness = 2.5
//	backboard_thickness = 0.5
//	color = [0.9, 0.9, 0.9]   # optional
//
//	[[rows]]
//	align = "top"             # "top" or "bottom", bottom row only
//	indent = 80
//	slots = [
//	  { width = 30, height = 33 },
//	  { width = 77, height = 25 },
//	]
//
//	[[rows]]
//	indent = -18
//	slots = [
//	  { width = 100, height = 25 },
//	  { gap = true },
//	  { width = 55, height = 25, span = 2 },
//	]
//
// A slot is either a compartment with width, height and an optional span
// (number of rows it occupies, default 1) or a gap. A gap takes the width of
// the spanning compartment below it, so it has no dimensions of its own.
//
// Unknown keys are rejected in every format so typos do not silently fall
// back to defaults.
//
// # Validation
//
// Decoding checks only the structure of the document. Geometric problems
// such as a negative width or a gap without a spanning compartment below are
// reported by [shelf.Shelf.Validate] and the layout.
package io
