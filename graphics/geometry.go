package graphics

// Point is a position in 2D space. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Point struct {
	X, Y float64
}

// Vector is a displacement in 2D space.
type Vector struct {
	X, Y float64
}

// Add returns p translated by v.
func (p Point) Add(v Vector) Point {
	return Point{p.X + v.X, p.Y + v.Y}
}

// Sub returns the vector that goes from other to p.
func (p Point) Sub(other Point) Vector {
	return Vector{p.X - other.X, p.Y - other.Y}
}

// Size is a width/height pair.
type Size struct {
	Width, Height float64
}

// Rectangle is an axis-aligned rectangle.
type Rectangle struct {
	X, Y, Width, Height float64
}

// Contains reports whether p lies inside the rectangle. The left and top
// edges are inside, the right and bottom edges are not, so touching
// rectangles never both contain the same point.
func (r Rectangle) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width &&
		p.Y >= r.Y && p.Y < r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rectangle) Intersects(other Rectangle) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Position returns the top-left corner of the rectangle.
func (r Rectangle) Position() Point {
	return Point{r.X, r.Y}
}

// Size returns the dimensions of the rectangle.
func (r Rectangle) Size() Size {
	return Size{r.Width, r.Height}
}

// Center returns the center point of the rectangle.
func (r Rectangle) Center() Point {
	return Point{r.X + r.Width/2, r.Y + r.Height/2}
}

// HorizontalAlignment positions text or content along the X axis.
type HorizontalAlignment uint8

const (
	AlignLeft   HorizontalAlignment = iota // align to the left edge (default)
	AlignCenter                            // center horizontally
	AlignRight                             // align to the right edge
)

// VerticalAlignment positions text or content along the Y axis.
type VerticalAlignment uint8

const (
	AlignTop    VerticalAlignment = iota // align to the top edge (default)
	AlignMiddle                          // center vertically
	AlignBottom                          // align to the bottom edge
)

// Align returns the X offset for content of width w placed in a box of
// width boxW.
func (a HorizontalAlignment) Align(boxW, w float64) float64 {
	switch a {
	case AlignCenter:
		return (boxW - w) / 2
	case AlignRight:
		return boxW - w
	default:
		return 0
	}
}

// Align returns the Y offset for content of height h placed in a box of
// height boxH.
func (a VerticalAlignment) Align(boxH, h float64) float64 {
	switch a {
	case AlignMiddle:
		return (boxH - h) / 2
	case AlignBottom:
		return boxH - h
	default:
		return 0
	}
}
