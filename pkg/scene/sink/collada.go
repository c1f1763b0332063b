package sink

import (
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/beevik/etree"

	"github.com/matzehuels/stackshelf/pkg/buildinfo"
	"github.com/matzehuels/stackshelf/pkg/geom"
	"github.com/matzehuels/stackshelf/pkg/scene"
)

const colladaNamespace = "http://www.collada.org/2005/11/COLLADASchema"

// materialSymbol binds every triangle set to the material of its node.
const materialSymbol = "materialref"

// cuboidNormals are the six face normals shared by every cuboid.
var cuboidNormals = []float64{
	0, 0, 1,
	0, 1, 0,
	0, -1, 0,
	-1, 0, 0,
	1, 0, 0,
	0, 0, -1,
}

// cuboidTriangles are (vertex, normal) index pairs, two triangles per face,
// for the vertex order produced by cuboidVertices.
var cuboidTriangles = []int{
	0, 0, 2, 0, 3, 0, 0, 0, 3, 0, 1, 0,
	0, 1, 1, 1, 5, 1, 0, 1, 5, 1, 4, 1,
	6, 2, 7, 2, 3, 2, 6, 2, 3, 2, 2, 2,
	0, 3, 4, 3, 6, 3, 0, 3, 6, 3, 2, 3,
	3, 4, 7, 4, 5, 4, 3, 4, 5, 4, 1, 4,
	5, 5, 7, 5, 6, 5, 5, 5, 6, 5, 4, 5,
}

// cuboidVertices returns the eight corners of b, front face first.
func cuboidVertices(b geom.Box) []float64 {
	s, e := b.Origin, b.Max()
	return []float64{
		s.X, e.Y, e.Z,
		e.X, e.Y, e.Z,
		s.X, s.Y, e.Z,
		e.X, s.Y, e.Z,
		s.X, e.Y, s.Z,
		e.X, e.Y, s.Z,
		s.X, s.Y, s.Z,
		e.X, s.Y, s.Z,
	}
}

// ColladaOption configures a [Collada] scene.
type ColladaOption func(*Collada)

// WithTimestamp fixes the created and modified dates of the asset block.
// Without it the time of the write is used.
func WithTimestamp(t time.Time) ColladaOption { return func(c *Collada) { c.timestamp = t } }

// WithUnit sets the name and length in meters of the description's unit.
func WithUnit(name string, meter float64) ColladaOption {
	return func(c *Collada) { c.unitName, c.unitMeter = name, meter }
}

// Collada writes the scene as a COLLADA 1.4.1 document.
type Collada struct {
	*scene.Recorder

	timestamp time.Time
	unitName  string
	unitMeter float64
}

// NewCollada returns an empty COLLADA scene. Lengths default to centimeters.
func NewCollada(opts ...ColladaOption) *Collada {
	c := &Collada{Recorder: scene.NewRecorder(), unitName: "centimeter", unitMeter: 0.01}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Write implements [scene.Scene].
func (c *Collada) Write(path string) error {
	_ = c.Recorder.Write(path)
	return Write(path, c)
}

// WriteTo implements io.WriterTo.
func (c *Collada) WriteTo(w io.Writer) (int64, error) {
	return c.Document().WriteTo(w)
}

// Document builds the XML document for the current scene.
func (c *Collada) Document() *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="utf-8"`)

	root := doc.CreateElement("COLLADA")
	root.CreateAttr("xmlns", colladaNamespace)
	root.CreateAttr("version", "1.4.1")

	c.writeAsset(root)
	c.writeEffects(root.CreateElement("library_effects"))
	c.writeMaterials(root.CreateElement("library_materials"))
	c.writeGeometries(root.CreateElement("library_geometries"))
	c.writeVisualScene(root.CreateElement("library_visual_scenes"))

	root.CreateElement("scene").CreateElement("instance_visual_scene").CreateAttr("url", "#scene")

	doc.Indent(2)
	return doc
}

func (c *Collada) writeAsset(root *etree.Element) {
	ts := c.timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	stamp := ts.UTC().Format(time.RFC3339)

	asset := root.CreateElement("asset")
	contributor := asset.CreateElement("contributor")
	contributor.CreateElement("authoring_tool").SetText(buildinfo.Tool())
	asset.CreateElement("created").SetText(stamp)
	asset.CreateElement("modified").SetText(stamp)
	unit := asset.CreateElement("unit")
	unit.CreateAttr("name", c.unitName)
	unit.CreateAttr("meter", formatFloat(c.unitMeter))
	asset.CreateElement("up_axis").SetText("Y_UP")
}

func effectID(m scene.Material) string { return m.ID + "-effect" }

func (c *Collada) writeEffects(lib *etree.Element) {
	for _, m := range c.Materials {
		effect := lib.CreateElement("effect")
		effect.CreateAttr("id", effectID(m))
		phong := effect.CreateElement("profile_COMMON").CreateElement("technique")
		phong.CreateAttr("sid", "common")
		phong = phong.CreateElement("phong")
		phong.CreateElement("diffuse").CreateElement("color").SetText(formatColor(m.Diffuse))
		phong.CreateElement("specular").CreateElement("color").SetText(formatColor(m.Specular))
	}
}

func (c *Collada) writeMaterials(lib *etree.Element) {
	for _, m := range c.Materials {
		mat := lib.CreateElement("material")
		mat.CreateAttr("id", m.ID)
		mat.CreateAttr("name", m.Name)
		mat.CreateElement("instance_effect").CreateAttr("url", "#"+effectID(m))
	}
}

func (c *Collada) writeGeometries(lib *etree.Element) {
	for _, n := range c.Nodes {
		geometry := lib.CreateElement("geometry")
		geometry.CreateAttr("id", n.ID+"_geometry")
		geometry.CreateAttr("name", n.ID)
		mesh := geometry.CreateElement("mesh")

		vertices := n.ID + "_vertices"
		normals := n.ID + "_normals"
		writeSource(mesh, vertices, cuboidVertices(n.Box))
		writeSource(mesh, normals, cuboidNormals)

		v := mesh.CreateElement("vertices")
		v.CreateAttr("id", vertices+"-vertices")
		input := v.CreateElement("input")
		input.CreateAttr("semantic", "POSITION")
		input.CreateAttr("source", "#"+vertices)

		tris := mesh.CreateElement("triangles")
		tris.CreateAttr("count", strconv.Itoa(len(cuboidTriangles)/6))
		tris.CreateAttr("material", materialSymbol)
		writeInput(tris, 0, "VERTEX", "#"+vertices+"-vertices")
		writeInput(tris, 1, "NORMAL", "#"+normals)
		tris.CreateElement("p").SetText(joinInts(cuboidTriangles))
	}
}

func (c *Collada) writeVisualScene(lib *etree.Element) {
	vs := lib.CreateElement("visual_scene")
	vs.CreateAttr("id", "scene")
	for _, n := range c.Nodes {
		node := vs.CreateElement("node")
		node.CreateAttr("id", n.ID)
		node.CreateAttr("name", n.ID)
		inst := node.CreateElement("instance_geometry")
		inst.CreateAttr("url", "#"+n.ID+"_geometry")
		im := inst.CreateElement("bind_material").CreateElement("technique_common").CreateElement("instance_material")
		im.CreateAttr("symbol", materialSymbol)
		im.CreateAttr("target", "#"+n.Material.ID)
	}
}

// writeSource adds an XYZ float source.
func writeSource(mesh *etree.Element, id string, values []float64) {
	src := mesh.CreateElement("source")
	src.CreateAttr("id", id)

	arr := src.CreateElement("float_array")
	arr.CreateAttr("id", id+"-array")
	arr.CreateAttr("count", strconv.Itoa(len(values)))
	arr.SetText(joinFloats(values))

	acc := src.CreateElement("technique_common").CreateElement("accessor")
	acc.CreateAttr("source", "#"+id+"-array")
	acc.CreateAttr("count", strconv.Itoa(len(values)/3))
	acc.CreateAttr("stride", "3")
	for _, axis := range []string{"X", "Y", "Z"} {
		p := acc.CreateElement("param")
		p.CreateAttr("name", axis)
		p.CreateAttr("type", "float")
	}
}

func writeInput(parent *etree.Element, offset int, semantic, source string) {
	in := parent.CreateElement("input")
	in.CreateAttr("offset", strconv.Itoa(offset))
	in.CreateAttr("semantic", semantic)
	in.CreateAttr("source", source)
}

func formatFloat(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

func formatColor(c scene.Color) string {
	return joinFloats([]float64{c.R, c.G, c.B, 1})
}

func joinFloats(vs []float64) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = formatFloat(v)
	}
	return strings.Join(parts, " ")
}

func joinInts(vs []int) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " ")
}

var _ Scene = (*Collada)(nil)
