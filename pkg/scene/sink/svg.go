package sink

import (
	"bytes"
	"cmp"
	"fmt"
	"io"
	"math"
	"slices"
	"strconv"

	"github.com/matzehuels/stackshelf/pkg/scene"
)

// SVGOption configures an [SVG] scene.
type SVGOption func(*SVG)

// WithMargin sets the blank border around the drawing, in description units.
func WithMargin(m float64) SVGOption { return func(s *SVG) { s.margin = m } }

// WithScale sets the pixel size of one description unit.
func WithScale(px float64) SVGOption { return func(s *SVG) { s.scale = px } }

// SVG draws the front elevation of the scene: every box is projected onto
// the XY plane and painted back to front.
type SVG struct {
	*scene.Recorder

	margin float64
	scale  float64
}

// NewSVG returns an empty SVG scene.
func NewSVG(opts ...SVGOption) *SVG {
	s := &SVG{Recorder: scene.NewRecorder(), margin: 5, scale: 4}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Write implements [scene.Scene].
func (s *SVG) Write(path string) error {
	_ = s.Recorder.Write(path)
	return Write(path, s)
}

// WriteTo implements io.WriterTo.
func (s *SVG) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(s.Render())
	return int64(n), err
}

// Render returns the SVG document.
func (s *SVG) Render() []byte {
	var buf bytes.Buffer

	bounds, ok := s.Bounds()
	if !ok {
		buf.WriteString(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 0 0" width="0" height="0">` + "\n</svg>\n")
		return buf.Bytes()
	}
	minX := bounds.Origin.X - s.margin
	maxY := bounds.Max().Y + s.margin
	w := bounds.Size.X + 2*s.margin
	h := bounds.Size.Y + 2*s.margin

	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %s %s" width="%.0f" height="%.0f">`+"\n",
		num(w), num(h), w*s.scale, h*s.scale)
	fmt.Fprintf(&buf, `  <g stroke="#4a4a4a" stroke-width="%s">`+"\n", num(0.1))

	nodes := slices.Clone(s.Nodes)
	slices.SortStableFunc(nodes, func(a, b scene.Node) int {
		return cmp.Compare(a.Box.Max().Z, b.Box.Max().Z)
	})
	for _, n := range nodes {
		x := n.Box.Origin.X - minX
		y := maxY - n.Box.Max().Y
		fmt.Fprintf(&buf, `    <rect id="%s" x="%s" y="%s" width="%s" height="%s" fill="%s"/>`+"\n",
			n.ID, num(x), num(y), num(n.Box.Size.X), num(n.Box.Size.Y), n.Material.Diffuse.Hex())
	}

	buf.WriteString("  </g>\n</svg>\n")
	return buf.Bytes()
}

// num formats v with at most three decimals and no trailing zeros.
func num(v float64) string {
	r := math.Round(v*1000) / 1000
	if r == 0 {
		r = 0 // drop the sign of -0
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}

var _ Scene = (*SVG)(nil)
