package sink

import (
	"encoding/json"
	"io"

	"github.com/matzehuels/stackshelf/pkg/geom"
	"github.com/matzehuels/stackshelf/pkg/scene"
)

// JSON writes the scene as a list of boxes.
type JSON struct {
	*scene.Recorder
}

// NewJSON returns an empty JSON scene.
func NewJSON() *JSON {
	return &JSON{Recorder: scene.NewRecorder()}
}

type jsonOutput struct {
	Materials []jsonMaterial `json:"materials"`
	Boxes     []jsonBox      `json:"boxes"`
	Bounds    *jsonBounds    `json:"bounds,omitempty"`
}

type jsonMaterial struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Diffuse  [3]float64 `json:"diffuse"`
	Specular [3]float64 `json:"specular"`
}

type jsonBox struct {
	ID       string     `json:"id"`
	Material string     `json:"material"`
	Origin   [3]float64 `json:"origin"`
	Size     [3]float64 `json:"size"`
}

type jsonBounds struct {
	Origin [3]float64 `json:"origin"`
	Size   [3]float64 `json:"size"`
}

func vec(v geom.Vec3) [3]float64    { return [3]float64{v.X, v.Y, v.Z} }
func rgb(c scene.Color) [3]float64 { return [3]float64{c.R, c.G, c.B} }

// Write implements [scene.Scene].
func (j *JSON) Write(path string) error {
	_ = j.Recorder.Write(path)
	return Write(path, j)
}

// WriteTo implements io.WriterTo.
func (j *JSON) WriteTo(w io.Writer) (int64, error) {
	data, err := j.Render()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(data)
	return int64(n), err
}

// Render returns the indented JSON document.
func (j *JSON) Render() ([]byte, error) {
	out := jsonOutput{
		Materials: make([]jsonMaterial, len(j.Materials)),
		Boxes:     make([]jsonBox, len(j.Nodes)),
	}
	for i, m := range j.Materials {
		out.Materials[i] = jsonMaterial{ID: m.ID, Name: m.Name, Diffuse: rgb(m.Diffuse), Specular: rgb(m.Specular)}
	}
	for i, n := range j.Nodes {
		out.Boxes[i] = jsonBox{ID: n.ID, Material: n.Material.ID, Origin: vec(n.Box.Origin), Size: vec(n.Box.Size)}
	}
	if b, ok := j.Bounds(); ok {
		out.Bounds = &jsonBounds{Origin: vec(b.Origin), Size: vec(b.Size)}
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

var _ Scene = (*JSON)(nil)
