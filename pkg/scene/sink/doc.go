// Package sink provides the file formats a shelf scene can be written in.
//
// Every sink embeds a [scene.Recorder], so materials and boxes are collected
// in memory and serialized in one go when [scene.Scene.Write] is called:
//
//   - [Collada]: a COLLADA 1.4.1 document (.dae), one triangulated cuboid
//     geometry per box, built with github.com/beevik/etree
//   - [SVG]: a front elevation of the boxes, back to front
//   - [JSON]: the raw box list for external tools
//
// Each sink also implements io.WriterTo, and [Write] writes to a file through
// a temporary file so a failed write never leaves a partial file behind.
//
// Use [New] to pick a sink by [Format]:
//
//	sc, err := sink.New(sink.FormatCollada)
//	...
//	err = pipeline.Render(s, sc, "shelf.dae")
package sink
