// Package scene defines the adapter the board deriver emits geometry into.
//
// A [Scene] accepts materials and axis-aligned boxes and serializes them to a
// file. [Recorder] is the in-memory implementation every concrete writer
// builds on; the collada, svg and json sub-packages add a file format on top
// of it. Writers serialize through [WriteFile], which never leaves a partial
// file behind.
package scene

import (
	"fmt"

	"github.com/matzehuels/stackshelf/pkg/geom"
)

// Color is a linear RGB color with components in [0, 1].
type Color struct {
	R, G, B float64
}

// Hex returns the color as #rrggbb.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", channel(c.R), channel(c.G), channel(c.B))
}

func channel(v float64) int {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	default:
		return int(v*255 + 0.5)
	}
}

// DefaultSpecular is the specular color of every material.
var DefaultSpecular = Color{R: 0.2, G: 0.8, B: 0.2}

// Material is the handle returned by [Scene.CreateMaterial].
type Material struct {
	ID       string
	Name     string
	Diffuse  Color
	Specular Color
}

// Scene is the output adapter for shelf geometry.
type Scene interface {
	// CreateMaterial registers a phong material with the given diffuse color.
	CreateMaterial(c Color) Material
	// AddBox appends one axis-aligned box with its minimum corner at origin.
	AddBox(origin, size geom.Vec3, m Material)
	// Write serializes everything added so far to path.
	Write(path string) error
}

// Node is a box placed in the scene.
type Node struct {
	ID       string
	Box      geom.Box
	Material Material
}

// Recorder keeps the scene in memory. It is the base of every file writer and
// doubles as a test scene: Calls counts every adapter call it received.
// A Recorder is not safe for concurrent use.
type Recorder struct {
	Materials []Material
	Nodes     []Node
	Written   []string

	calls int
}

// NewRecorder returns an empty in-memory scene.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// CreateMaterial implements [Scene].
func (r *Recorder) CreateMaterial(c Color) Material {
	r.calls++
	n := len(r.Materials)
	m := Material{
		ID:       fmt.Sprintf("material%d", n),
		Name:     fmt.Sprintf("shelfmaterial%d", n),
		Diffuse:  c,
		Specular: DefaultSpecular,
	}
	r.Materials = append(r.Materials, m)
	return m
}

// AddBox implements [Scene]. Node ids come from a counter owned by the
// recorder: cuboid_0, cuboid_1, ...
func (r *Recorder) AddBox(origin, size geom.Vec3, m Material) {
	r.calls++
	r.Nodes = append(r.Nodes, Node{
		ID:       fmt.Sprintf("cuboid_%d", len(r.Nodes)),
		Box:      geom.Box{Origin: origin, Size: size},
		Material: m,
	})
}

// Write implements [Scene] by recording path; nothing is written to disk.
func (r *Recorder) Write(path string) error {
	r.calls++
	r.Written = append(r.Written, path)
	return nil
}

// Calls returns the number of adapter calls received.
func (r *Recorder) Calls() int { return r.calls }

// Bounds returns the smallest box containing every node, or false for an
// empty scene.
func (r *Recorder) Bounds() (geom.Box, bool) {
	if len(r.Nodes) == 0 {
		return geom.Box{}, false
	}
	lo := r.Nodes[0].Box.Origin
	hi := r.Nodes[0].Box.Max()
	for _, n := range r.Nodes[1:] {
		o, m := n.Box.Origin, n.Box.Max()
		lo = geom.Vec3{X: min(lo.X, o.X), Y: min(lo.Y, o.Y), Z: min(lo.Z, o.Z)}
		hi = geom.Vec3{X: max(hi.X, m.X), Y: max(hi.Y, m.Y), Z: max(hi.Z, m.Z)}
	}
	return geom.Box{Origin: lo, Size: geom.Vec3{X: hi.X - lo.X, Y: hi.Y - lo.Y, Z: hi.Z - lo.Z}}, true
}

var _ Scene = (*Recorder)(nil)
