package graphics

import (
	"math"
	"strings"
	"testing"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertMatrix(t *testing.T, name string, got, want Transformation) {
	t.Helper()
	for i := range got {
		if math.Abs(got[i]-want[i]) > epsilon {
			t.Errorf("%s[%d] = %v, want %v (full: %v vs %v)", name, i, got[i], want[i], got, want)
		}
	}
}

func TestTransformationTranslate(t *testing.T) {
	p := Translate(Vector{10, 20}).TransformPoint(Point{1, 2})
	assertNear(t, "x", p.X, 11)
	assertNear(t, "y", p.Y, 22)

	v := Translate(Vector{10, 20}).TransformVector(Vector{1, 2})
	assertNear(t, "vx", v.X, 1)
	assertNear(t, "vy", v.Y, 2)
}

func TestTransformationRotation90(t *testing.T) {
	got := Rotate(math.Pi / 2)
	// cos(90)=0, sin(90)=1 → a=0, b=1, c=-1, d=0
	assertMatrix(t, "rot90", got, Transformation{0, 1, -1, 0, 0, 0})

	p := got.TransformPoint(Point{1, 0})
	assertNear(t, "x", p.X, 0)
	assertNear(t, "y", p.Y, 1)
}

func TestTransformationMulOrder(t *testing.T) {
	// Scale applied first, then translate.
	m := Translate(Vector{5, 0}).Mul(Scale(2))
	p := m.TransformPoint(Point{1, 1})
	assertNear(t, "x", p.X, 7)
	assertNear(t, "y", p.Y, 2)

	// Translate applied first, then scale.
	m = Scale(2).Mul(Translate(Vector{5, 0}))
	p = m.TransformPoint(Point{1, 1})
	assertNear(t, "x", p.X, 12)
	assertNear(t, "y", p.Y, 2)
}

func TestTransformationInverse(t *testing.T) {
	tests := []struct {
		name string
		m    Transformation
	}{
		{"identity", Identity()},
		{"translate", Translate(Vector{-3, 7})},
		{"scale", Scale(4)},
		{"nonuniform", NonuniformScale(Vector{2, 0.5})},
		{"rotate", Rotate(0.7)},
		{"composite", Translate(Vector{10, 5}).Mul(Rotate(1.1)).Mul(Scale(3))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertMatrix(t, "m*inv", tt.m.Mul(tt.m.Inverse()), Identity())
			p := Point{12.5, -4}
			back := tt.m.InverseTransformPoint(tt.m.TransformPoint(p))
			assertNear(t, "x", back.X, p.X)
			assertNear(t, "y", back.Y, p.Y)
		})
	}
}

func TestTransformationInverseSingularPanics(t *testing.T) {
	m := Scale(0)
	if m.IsInvertible() {
		t.Fatal("Scale(0) should not be invertible")
	}
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic")
		}
		if !strings.Contains(r.(string), "invertible") {
			t.Errorf("panic = %v", r)
		}
	}()
	m.Inverse()
}

func TestTransformationGeoM(t *testing.T) {
	m := Translate(Vector{3, 4}).Mul(Rotate(0.3)).Mul(Scale(2))
	g := m.GeoM()
	x, y := g.Apply(1, 2)
	p := m.TransformPoint(Point{1, 2})
	assertNear(t, "x", x, p.X)
	assertNear(t, "y", y, p.Y)
}
