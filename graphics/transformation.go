package graphics

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Transformation is a 2D affine matrix.
//
//	Matrix layout: [a, b, c, d, tx, ty]
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
type Transformation [6]float64

// Identity returns the identity transformation.
func Identity() Transformation {
	return Transformation{1, 0, 0, 1, 0, 0}
}

// Translate creates a translation. Use it to pan a camera.
func Translate(v Vector) Transformation {
	return Transformation{1, 0, 0, 1, v.X, v.Y}
}

// Scale creates a uniform scale transformation.
func Scale(s float64) Transformation {
	return Transformation{s, 0, 0, s, 0, 0}
}

// NonuniformScale scales each axis independently.
func NonuniformScale(v Vector) Transformation {
	return Transformation{v.X, 0, 0, v.Y, 0, 0}
}

// Rotate creates a rotation in radians (clockwise, Y down).
func Rotate(radians float64) Transformation {
	sin, cos := math.Sincos(radians)
	return Transformation{cos, sin, -sin, cos, 0, 0}
}

// Mul returns t * other: other is applied first, then t.
func (t Transformation) Mul(other Transformation) Transformation {
	p, c := t, other
	return Transformation{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// TransformPoint applies the transformation to a point.
func (t Transformation) TransformPoint(p Point) Point {
	return Point{t[0]*p.X + t[2]*p.Y + t[4], t[1]*p.X + t[3]*p.Y + t[5]}
}

// TransformVector applies the linear part of the transformation to a vector.
func (t Transformation) TransformVector(v Vector) Vector {
	return Vector{t[0]*v.X + t[2]*v.Y, t[1]*v.X + t[3]*v.Y}
}

// IsInvertible reports whether the transformation has an inverse.
func (t Transformation) IsInvertible() bool {
	det := t[0]*t[3] - t[2]*t[1]
	return det <= -1e-12 || det >= 1e-12
}

// Inverse returns the inverse transformation.
// Panics if the matrix is singular: every transformation built from
// Translate, Scale (non-zero), and Rotate is invertible.
func (t Transformation) Inverse() Transformation {
	det := t[0]*t[3] - t[2]*t[1]
	if det > -1e-12 && det < 1e-12 {
		panic("coffee: transformation matrix should only contain invertible operations")
	}
	invDet := 1.0 / det
	a := t[3] * invDet
	b := -t[1] * invDet
	c := -t[2] * invDet
	d := t[0] * invDet
	return Transformation{
		a, b, c, d,
		-(a*t[4] + c*t[5]),
		-(b*t[4] + d*t[5]),
	}
}

// InverseTransformPoint transforms p by the inverse of t.
func (t Transformation) InverseTransformPoint(p Point) Point {
	return t.Inverse().TransformPoint(p)
}

// InverseTransformVector transforms v by the inverse of t.
func (t Transformation) InverseTransformVector(v Vector) Vector {
	return t.Inverse().TransformVector(v)
}

// GeoM converts the transformation into an ebiten.GeoM.
func (t Transformation) GeoM() ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, t[0])
	g.SetElement(1, 0, t[1])
	g.SetElement(0, 1, t[2])
	g.SetElement(1, 1, t[3])
	g.SetElement(0, 2, t[4])
	g.SetElement(1, 2, t[5])
	return g
}
