// Package pkg provides the core libraries of stackshelf.
//
// # Overview
//
// Stackshelf turns a declarative description of a shelf (rows of
// compartments, stacked bottom to top) into the boards needed to build it,
// written as axis-aligned boxes. The data flow:
//
//	description file (TOML, YAML, JSON)
//	         ↓
//	    [io] package (decode into a shelf)
//	         ↓
//	    [shelf] package (rows, slots, validation)
//	         ↓
//	    [layout] package (interval stack → rect stack)
//	         ↓
//	    [boards] package (vertical, horizontal and back boards → boxes)
//	         ↓
//	    [scene] / [scene/sink] (COLLADA, SVG, JSON)
//
// # Quick Start
//
//	s := shelf.New(25, 2.5, 0.5)
//	s.AddRow(shelf.NewRow(shelf.AlignBottom, 0,
//	    shelf.Cell(shelf.Compartment{Width: 30, Height: 33}),
//	    shelf.Cell(shelf.Compartment{Width: 55, Height: 25}),
//	))
//
//	sc := sink.NewCollada()
//	if err := pipeline.Render(s, sc, "shelf.dae"); err != nil {
//	    return err
//	}
//
// # Main Packages
//
// [geom] - Points, intervals, rects and 3D boxes shared by everything else.
//
// [shelf] - The description model. A row holds compartments and gaps; a gap
// makes room for a compartment of the row below that spans several rows.
//
// [layout] - The two layout passes. Intervals place slots horizontally,
// rects stack each row on the tallest compartment beneath it.
//
// [boards] - Derives the board requests of a layout and converts them into
// boxes using the shelf's depth and thicknesses.
//
// [scene] - The scene interface the boards are written to, and a recorder
// that keeps materials and boxes in memory.
//
// [scene/sink] - Serializing scenes: COLLADA documents, SVG front elevations
// and JSON box lists.
//
// ## Infrastructure
//
// [pipeline] - Build and render entry points used by the CLI and the HTTP
// service, plus a [pipeline.Runner] that caches rendered artifacts.
//
// [cache] - Artifact caches: file (CLI), redis (shared service), null.
//
// [io] - Reading and writing descriptions.
//
// [errors] - Structured error codes shared by every layer.
//
// [observability] - Hooks for layout, render, cache and HTTP events.
//
// [buildinfo] - Version information set at build time.
//
// # Testing
//
//	go test ./...
package pkg
