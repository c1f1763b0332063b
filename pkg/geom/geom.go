// Package geom provides the value types shared by the layout, board and scene
// packages. All lengths are in the same linear unit as the shelf description.
package geom

// Point is a position in the 2D front elevation of a shelf.
// X grows to the right, Y is the elevation above the shelf base.
type Point struct {
	X, Y float64
}

// Add returns the component-wise sum of p and o.
func (p Point) Add(o Point) Point { return Point{X: p.X + o.X, Y: p.Y + o.Y} }

// Interval is a horizontal span starting at Start.
type Interval struct {
	Start, Width float64
}

// End returns the exclusive right end of the interval.
func (i Interval) End() float64 { return i.Start + i.Width }

// Overlaps reports whether i and o share any horizontal extent.
// Intervals that only touch at an edge do not overlap.
func (i Interval) Overlaps(o Interval) bool {
	return i.Start < o.End() && i.End() > o.Start
}

// Rect is an absolutely positioned rectangle in the front elevation.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Origin returns the bottom-left corner of the rect.
func (r Rect) Origin() Point { return Point{X: r.X, Y: r.Y} }

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Top returns the y coordinate of the top edge.
func (r Rect) Top() float64 { return r.Y + r.Height }

// Span returns the horizontal extent of the rect.
func (r Rect) Span() Interval { return Interval{Start: r.X, Width: r.Width} }

// Vec3 is a point or extent in 3D scene space. Z is the depth axis, with the
// back of the shelf at Z = 0.
type Vec3 struct {
	X, Y, Z float64
}

// Box is an axis-aligned cuboid with its minimum corner at Origin.
type Box struct {
	Origin Vec3
	Size   Vec3
}

// Max returns the corner opposite Origin.
func (b Box) Max() Vec3 {
	return Vec3{X: b.Origin.X + b.Size.X, Y: b.Origin.Y + b.Size.Y, Z: b.Origin.Z + b.Size.Z}
}
