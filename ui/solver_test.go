package ui

import (
	"encoding/json"
	"math"
	"reflect"
	"testing"

	"github.com/phanxgames/coffee/graphics"
)

var screen = graphics.Size{Width: 1280, Height: 1024}

func assertRect(t *testing.T, name string, got, want graphics.Rectangle) {
	t.Helper()
	const eps = 1e-9
	if math.Abs(got.X-want.X) > eps || math.Abs(got.Y-want.Y) > eps ||
		math.Abs(got.Width-want.Width) > eps || math.Abs(got.Height-want.Height) > eps {
		t.Errorf("%s = %+v, want %+v", name, got, want)
	}
}

func solve(w Widget[msg, mr], size graphics.Size) Layout {
	return Solve(w.Node(&mockRenderer{}), size)
}

func leaf(w, h float64) *Node {
	return NewLeaf(DefaultStyle(), func(_, _ float64) graphics.Size {
		return graphics.Size{Width: w, Height: h}
	})
}

func TestSolveFixedSizeIsExact(t *testing.T) {
	tests := []struct {
		w, h float64
	}{
		{0, 0},
		{1, 1},
		{120, 40},
		{300.5, 12.25},
		{2000, 3000},
	}
	for _, tt := range tests {
		s := DefaultStyle()
		s.Width, s.Height = Points(tt.w), Points(tt.h)
		l := Solve(NewNode(s), screen)
		assertRect(t, "root", l.Bounds, graphics.Rectangle{Width: tt.w, Height: tt.h})
		if len(l.Children) != 0 {
			t.Errorf("childless node has %d layout children", len(l.Children))
		}
	}
}

func TestSolveAutoRootFillsAvailable(t *testing.T) {
	l := solve(column(), screen)
	assertRect(t, "root", l.Bounds, graphics.Rectangle{Width: 1280, Height: 1024})
}

func TestRowSpacing(t *testing.T) {
	tests := []struct {
		n       int
		w, s    float64
		rowSize float64
	}{
		{1, 50, 10, 0},
		{3, 50, 10, 0},
		{5, 20, 7.5, 0},
		{4, 100, 30, 500},
	}
	for _, tt := range tests {
		r := row().Spacing(tt.s)
		if tt.rowSize > 0 {
			r.Width(tt.rowSize)
		}
		for i := 0; i < tt.n; i++ {
			r.Push(fixedBox(tt.w, 10))
		}
		l := solve(r, screen)
		if len(l.Children) != tt.n {
			t.Fatalf("children = %d", len(l.Children))
		}
		for i, c := range l.Children {
			wantX := float64(i) * (tt.w + tt.s)
			if c.Bounds.X != wantX || c.Bounds.Width != tt.w {
				t.Errorf("n=%d child %d = %+v, want x=%v w=%v", tt.n, i, c.Bounds, wantX, tt.w)
			}
		}
		last := l.Children[tt.n-1].Bounds
		want := float64(tt.n)*tt.w + float64(tt.n-1)*tt.s
		if got := last.X + last.Width; got != want {
			t.Errorf("n=%d content width = %v, want %v", tt.n, got, want)
		}
	}
}

func TestSpacingIsNotAddedAfterLastChild(t *testing.T) {
	c := row().Spacing(30).Push(fixedBox(10, 10)).Push(fixedBox(10, 10))
	n := c.Node(&mockRenderer{})
	if n.Children[0].Style.Margin.Right != 30 {
		t.Errorf("first margin = %v", n.Children[0].Style.Margin.Right)
	}
	if n.Children[1].Style.Margin.Right != 0 {
		t.Errorf("last margin = %v, want 0", n.Children[1].Style.Margin.Right)
	}
}

func TestGrowDistribution(t *testing.T) {
	tests := []struct {
		name  string
		grows []float64
		maxes []float64
		want  []float64
	}{
		{"single", []float64{1}, nil, []float64{400}},
		{"weighted", []float64{1, 3}, nil, []float64{100, 300}},
		{"none", []float64{0, 0}, nil, []float64{0, 0}},
		{"max clamp", []float64{1, 1}, []float64{50, 0}, []float64{50, 350}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rs := DefaultStyle()
			rs.Direction = DirectionRow
			rs.Width = Points(400)
			var children []*Node
			for i, g := range tt.grows {
				cs := DefaultStyle()
				cs.Grow = g
				if tt.maxes != nil && tt.maxes[i] > 0 {
					cs.MaxWidth = Points(tt.maxes[i])
				}
				children = append(children, NewNode(cs))
			}
			l := Solve(NewNode(rs, children...), screen)
			for i, want := range tt.want {
				if got := l.Children[i].Bounds.Width; math.Abs(got-want) > 1e-9 {
					t.Errorf("child %d width = %v, want %v", i, got, want)
				}
			}
		})
	}
}

func TestShrinkGrowableFirst(t *testing.T) {
	rs := DefaultStyle()
	rs.Direction = DirectionRow
	rs.Width = Points(100)

	growable := leaf(80, 10)
	growable.Style.Grow = 1
	rigid := leaf(80, 10)

	l := Solve(NewNode(rs, growable, rigid), screen)
	if got := l.Child(0).Bounds.Width; math.Abs(got-20) > 1e-9 {
		t.Errorf("growable width = %v, want 20", got)
	}
	if got := l.Child(1).Bounds.Width; got != 80 {
		t.Errorf("grow-less width = %v, want 80", got)
	}
}

func TestShrinkNeverNegative(t *testing.T) {
	rs := DefaultStyle()
	rs.Direction = DirectionRow
	rs.Width = Points(10)

	fixed := DefaultStyle()
	fixed.Width, fixed.Height = Points(50), Points(10)

	l := Solve(NewNode(rs, NewNode(fixed), leaf(30, 10), leaf(20, 10)), screen)
	if got := l.Child(0).Bounds.Width; got != 50 {
		t.Errorf("fixed width = %v, want 50", got)
	}
	for i := 1; i < 3; i++ {
		if got := l.Child(i).Bounds.Width; got != 0 {
			t.Errorf("child %d width = %v, want 0", i, got)
		}
	}
	l.Walk(func(_ int, l Layout) {
		if l.Bounds.Width < 0 || l.Bounds.Height < 0 {
			t.Errorf("negative size %+v", l.Bounds)
		}
	})
}

func TestShrinkRespectsMin(t *testing.T) {
	rs := DefaultStyle()
	rs.Direction = DirectionRow
	rs.Width = Points(100)

	a := leaf(100, 10)
	a.Style.MinWidth = Points(70)
	b := leaf(100, 10)

	l := Solve(NewNode(rs, a, b), screen)
	if got := l.Child(0).Bounds.Width; got != 70 {
		t.Errorf("min-limited width = %v, want 70", got)
	}
	if got := l.Child(1).Bounds.Width; math.Abs(got-30) > 1e-9 {
		t.Errorf("other width = %v, want 30", got)
	}
}

func TestPaddingAndStretch(t *testing.T) {
	cs := DefaultStyle()
	cs.Width, cs.Height = Points(200), Points(200)
	cs.Padding = EdgeAll(20)
	l := Solve(NewNode(cs, leaf(0, 10)), screen)
	assertRect(t, "child", l.Child(0).Bounds, graphics.Rectangle{X: 20, Y: 20, Width: 160, Height: 10})
}

func TestCrossAlignment(t *testing.T) {
	tests := []struct {
		align Align
		wantY float64
		wantH float64
	}{
		{AlignStart, 0, 20},
		{AlignCenter, 40, 20},
		{AlignEnd, 80, 20},
		{AlignStretch, 0, 100},
	}
	for _, tt := range tests {
		rs := DefaultStyle()
		rs.Direction = DirectionRow
		rs.Width, rs.Height = Points(300), Points(100)
		rs.AlignItems = tt.align
		l := Solve(NewNode(rs, leaf(50, 20)), screen)
		got := l.Child(0).Bounds
		if got.Y != tt.wantY || got.Height != tt.wantH {
			t.Errorf("align %d: child = %+v, want y=%v h=%v", tt.align, got, tt.wantY, tt.wantH)
		}
	}
}

func TestAlignSelfOverridesParent(t *testing.T) {
	end := AlignEnd
	rs := DefaultStyle()
	rs.Width, rs.Height = Points(100), Points(100)
	child := leaf(40, 10)
	child.Style.AlignSelf = &end
	l := Solve(NewNode(rs, child), screen)
	if got := l.Child(0).Bounds.X; got != 60 {
		t.Errorf("x = %v, want 60", got)
	}
}

func TestJustifyContent(t *testing.T) {
	tests := []struct {
		justify Justify
		want    []float64
	}{
		{JustifyStart, []float64{0, 100}},
		{JustifyEnd, []float64{200, 300}},
		{JustifyCenter, []float64{100, 200}},
		{JustifySpaceBetween, []float64{0, 300}},
		{JustifySpaceAround, []float64{50, 250}},
		{JustifySpaceEvenly, []float64{200.0 / 3, 100 + 400.0/3}},
	}
	for _, tt := range tests {
		rs := DefaultStyle()
		rs.Direction = DirectionRow
		rs.Width = Points(400)
		rs.JustifyContent = tt.justify
		l := Solve(NewNode(rs, leaf(100, 10), leaf(100, 10)), screen)
		for i, want := range tt.want {
			if got := l.Child(i).Bounds.X; math.Abs(got-want) > 1e-9 {
				t.Errorf("justify %d child %d x = %v, want %v", tt.justify, i, got, want)
			}
		}
	}
}

func TestPercentOfContentBox(t *testing.T) {
	c := column().Width(300).Padding(10).Push(row().FillWidth())
	l := solve(c, screen)
	if got := l.Child(0).Bounds.Width; got != 280 {
		t.Errorf("width = %v, want 280", got)
	}
}

func TestMaxWidthWrapsText(t *testing.T) {
	c := column().MaxWidth(100).AlignItems(AlignStart).Push(text("aaaa bbbb cccc"))
	l := solve(c, screen)
	txt := l.Child(0).Bounds
	if txt.Width != 90 || txt.Height != 40 {
		t.Errorf("text = %+v, want 90x40 (two lines)", txt)
	}
}

func TestEmptyContainerIsZeroSized(t *testing.T) {
	l := solve(column().AlignItems(AlignStart).Push(column()).Push(row()), screen)
	for i, c := range l.Children {
		if c.Bounds.Width != 0 || c.Bounds.Height != 0 {
			t.Errorf("child %d = %+v, want zero size", i, c.Bounds)
		}
	}
}

func TestNestedPositionsAreAbsolute(t *testing.T) {
	inner := column().Padding(5).Push(fixedBox(10, 10))
	outer := column().Padding(20).AlignItems(AlignStart).Push(fixedBox(10, 30)).Push(inner)
	l := solve(outer, screen)
	assertRect(t, "nested", l.Child(1).Child(0).Bounds, graphics.Rectangle{X: 25, Y: 55, Width: 10, Height: 10})
}

func TestSolveIsDeterministicAndRoundTrips(t *testing.T) {
	r := &mockRenderer{}
	var s1, s2 ButtonState
	build := func() Widget[msg, mr] {
		return column().Padding(20).CenterChildren().Push(
			column().Width(300).Spacing(30).
				Push(button(&s1, "Play")).
				Push(row().Spacing(10).Push(text("Volume")).Push(NewSlider[msg, mr](&SliderState{}, 0, 1, 0.5, func(float64) msg { return "" }))).
				Push(button(&s2, "Quit")),
		)
	}
	first := Solve(build().Node(r), screen)
	data, err := json.Marshal(first)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var decoded Layout
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	second := Solve(build().Node(r), screen)
	if !reflect.DeepEqual(first, second) {
		t.Error("solving the same tree twice gave different layouts")
	}
	if !reflect.DeepEqual(decoded, second) {
		t.Errorf("decoded layout differs from a fresh solve:\n%s", data)
	}
}

func TestLayoutChildOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	Layout{}.Child(0)
}
