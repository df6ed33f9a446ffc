package ui

import (
	"reflect"
	"testing"

	"github.com/phanxgames/coffee/graphics"
	"github.com/phanxgames/coffee/input"
)

func pt(x, y float64) graphics.Point { return graphics.Point{X: x, Y: y} }

func press() input.Event   { return input.MouseInputEvent(input.MouseButtonLeft, input.Pressed) }
func release() input.Event { return input.MouseInputEvent(input.MouseButtonLeft, input.Released) }
func move(x, y float64) input.Event {
	return input.CursorMovedEvent(pt(x, y))
}

func TestEndToEndMenuColumn(t *testing.T) {
	var a, b, c ButtonState
	menu := column().Width(300).Spacing(30).
		Push(button(&a, "A")).
		Push(button(&b, "B")).
		Push(button(&c, "C"))

	r := &mockRenderer{}
	node := menu.Node(r)
	if got := node.Children[2].Style.Margin.Bottom; got != 0 {
		t.Errorf("last button trailing margin = %v, want 0", got)
	}

	l := Solve(node, screen)
	for i, child := range l.Children {
		if child.Bounds.Width != 300 {
			t.Errorf("button %d width = %v, want 300", i, child.Bounds.Width)
		}
		if child.Bounds.Height != 50 {
			t.Errorf("button %d height = %v, want 50", i, child.Bounds.Height)
		}
	}
	for i := 1; i < len(l.Children); i++ {
		prev, cur := l.Children[i-1].Bounds, l.Children[i].Bounds
		if gap := cur.Y - (prev.Y + prev.Height); gap != 30 {
			t.Errorf("gap between button %d and %d = %v, want 30", i-1, i, gap)
		}
	}
}

func TestClickOnSharedEdgeHitsOneButton(t *testing.T) {
	var a, b ButtonState
	tree := column().Width(300).
		Push(button(&a, "A")).
		Push(button(&b, "B"))

	ui := Build[msg, mr](tree, &mockRenderer{}, screen, nil)
	top, bottom := ui.Layout().Child(0).Bounds, ui.Layout().Child(1).Bounds
	if edge := top.Y + top.Height; edge != bottom.Y {
		t.Fatalf("buttons do not touch: %v %v", top, bottom)
	}

	got := ui.Update(pt(100, bottom.Y), []input.Event{press(), release()}, nil)
	if !reflect.DeepEqual(got, []msg{"B"}) {
		t.Errorf("messages = %v, want [B]", got)
	}
}

func TestButtonClickSemantics(t *testing.T) {
	tests := []struct {
		name   string
		start  graphics.Point
		events []input.Event
		want   []msg
	}{
		{"press and release inside", pt(10, 10), []input.Event{press(), release()}, []msg{"A"}},
		{"release outside", pt(10, 10), []input.Event{press(), move(500, 10), release()}, nil},
		{"press outside", pt(500, 10), []input.Event{press(), move(10, 10), release()}, nil},
		{"leave and come back", pt(10, 10), []input.Event{press(), move(500, 10), move(20, 20), release()}, []msg{"A"}},
		{"release only", pt(10, 10), []input.Event{release()}, nil},
		{"two clicks", pt(10, 10), []input.Event{press(), release(), press(), release()}, []msg{"A", "A"}},
		{"right button", pt(10, 10), []input.Event{
			input.MouseInputEvent(input.MouseButtonRight, input.Pressed),
			input.MouseInputEvent(input.MouseButtonRight, input.Released),
		}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var st ButtonState
			ui := Build[msg, mr](column().Width(300).Push(button(&st, "A")), &mockRenderer{}, screen, nil)
			got := ui.Update(tt.start, tt.events, nil)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("messages = %v, want %v", got, tt.want)
			}
			if st.IsPressed {
				t.Error("state should not stay pressed after release")
			}
		})
	}
}

func TestButtonClickOnPress(t *testing.T) {
	var st ButtonState
	b := button(&st, "Go").ClickPolicy(ClickOnPress)
	ui := Build[msg, mr](column().Width(300).Push(b), &mockRenderer{}, screen, nil)
	got := ui.Update(pt(5, 5), []input.Event{press()}, nil)
	if !reflect.DeepEqual(got, []msg{"Go"}) {
		t.Errorf("messages = %v", got)
	}
	if got := ui.Update(pt(5, 5), []input.Event{release()}, nil); len(got) != 0 {
		t.Errorf("release emitted %v", got)
	}
}

func TestButtonWithoutMessageIsInert(t *testing.T) {
	var st ButtonState
	ui := Build[msg, mr](NewButton[msg, mr](&st, "Nothing"), &mockRenderer{}, screen, nil)
	if got := ui.Update(pt(1, 1), []input.Event{press(), release()}, nil); len(got) != 0 {
		t.Errorf("messages = %v", got)
	}
}

func TestMessagesFollowTreeOrder(t *testing.T) {
	var st ButtonState
	checked := false
	tree := column().Width(300).
		Push(NewCheckbox[msg, mr](checked, "first", func(bool) msg { return "first" })).
		Push(row().Push(button(&st, "second")))

	ui := Build[msg, mr](tree, &mockRenderer{}, screen, nil)
	// The checkbox and the button do not overlap; press on each in turn.
	cb := ui.Layout().Child(0).Child(0).Bounds
	btn := ui.Layout().Child(1).Child(0).Bounds
	got := ui.Update(cb.Center(), []input.Event{press(), release(), move(btn.X+1, btn.Y+1), press(), release()}, nil)
	if !reflect.DeepEqual(got, []msg{"first", "second"}) {
		t.Errorf("messages = %v", got)
	}
}

func TestCheckbox(t *testing.T) {
	var toggled []bool
	newTree := func(checked bool) *Column[msg, mr] {
		return column().AlignItems(AlignStart).Push(NewCheckbox[msg, mr](checked, "Sound", func(v bool) msg {
			toggled = append(toggled, v)
			return "toggle"
		}))
	}
	r := &mockRenderer{}
	ui := Build[msg, mr](newTree(false), r, screen, nil)

	cb := ui.Layout().Child(0)
	box, label := cb.Child(0).Bounds, cb.Child(1).Bounds
	if box.Width != 28 || box.Height != 28 {
		t.Errorf("box = %+v, want 28x28", box)
	}
	if label.X != 28+15 {
		t.Errorf("label x = %v, want 43", label.X)
	}
	if label.Y != (28-20)/2 {
		t.Errorf("label y = %v, want centered at 4", label.Y)
	}

	ui.Update(label.Center(), []input.Event{press()}, nil)
	ui.Update(pt(500, 500), []input.Event{press()}, nil)
	if !reflect.DeepEqual(toggled, []bool{true}) {
		t.Errorf("toggled = %v, want [true]", toggled)
	}

	ui = Build[msg, mr](newTree(true), r, screen, nil)
	ui.Update(box.Center(), []input.Event{press()}, nil)
	if toggled[len(toggled)-1] != false {
		t.Errorf("toggling a checked box should emit false")
	}

	r.calls = nil
	if c := ui.Draw(r, box.Center()); c != CursorPointer {
		t.Errorf("cursor = %v, want Pointer", c)
	}
	if !reflect.DeepEqual(r.calls, []string{"text:Sound", "checkbox:on"}) {
		t.Errorf("calls = %v", r.calls)
	}
}

type difficulty int

const (
	easy difficulty = iota
	hard
)

func TestRadio(t *testing.T) {
	selected := hard
	r := &mockRenderer{}
	f := func(d difficulty) msg {
		if d == easy {
			return "easy"
		}
		return "hard"
	}
	tree := column().AlignItems(AlignStart).
		Push(NewRadio[msg, mr](easy, "Easy", &selected, f)).
		Push(NewRadio[msg, mr](hard, "Hard", &selected, f))

	ui := Build[msg, mr](tree, r, screen, nil)
	ui.Draw(r, pt(-1, -1))
	if !reflect.DeepEqual(r.calls, []string{"text:Easy", "radio:off", "text:Hard", "radio:on"}) {
		t.Errorf("calls = %v", r.calls)
	}

	first := ui.Layout().Child(0).Child(0).Bounds
	got := ui.Update(first.Center(), []input.Event{press()}, nil)
	if !reflect.DeepEqual(got, []msg{"easy"}) {
		t.Errorf("messages = %v", got)
	}

	calls := 0
	counted := func(d difficulty) msg {
		calls++
		return f(d)
	}
	lazy := Build[msg, mr](column().Push(NewRadio[msg, mr](easy, "Easy", &selected, counted)), r, screen, nil)
	lazy.Update(pt(-1, -1), []input.Event{move(-5, -5)}, nil)
	if calls != 0 {
		t.Errorf("callback ran %d times without a click", calls)
	}
	lazy.Update(lazy.Layout().Child(0).Child(0).Bounds.Center(), []input.Event{press()}, nil)
	if calls != 1 {
		t.Errorf("callback ran %d times after one click, want 1", calls)
	}

	none := NewRadio[msg, mr](easy, "Easy", nil, f)
	if none.selected {
		t.Error("nil selection should not select any radio")
	}
}

func TestSliderDragging(t *testing.T) {
	var st SliderState
	var values []float64
	s := NewSlider[msg, mr](&st, 0, 10, 3, func(v float64) msg {
		values = append(values, v)
		return "slide"
	})
	ui := Build[msg, mr](column().Width(300).Push(s), &mockRenderer{}, screen, nil)
	bounds := ui.Layout().Child(0).Bounds
	if bounds.Width != 300 || bounds.Height != 25 {
		t.Fatalf("slider bounds = %+v", bounds)
	}

	ui.Update(pt(150, 10), []input.Event{press(), move(300, 10), move(-50, 10), release(), move(150, 10)}, nil)
	if !reflect.DeepEqual(values, []float64{5, 10, 0}) {
		t.Errorf("values = %v, want [5 10 0]", values)
	}
	if st.IsDragging {
		t.Error("release should stop dragging")
	}

	values = nil
	ui.Update(pt(150, 100), []input.Event{press(), move(200, 10)}, nil)
	if len(values) != 0 {
		t.Errorf("press outside should not drag, got %v", values)
	}
}

func TestCursorAggregation(t *testing.T) {
	var st ButtonState
	tree := row().
		Push(text("left")).
		Push(button(&st, "Hover")).
		Push(text("right"))
	r := &mockRenderer{}
	ui := Build[msg, mr](tree, r, screen, nil)
	btn := ui.Layout().Child(1).Bounds

	if c := ui.Draw(r, btn.Center()); c != CursorPointer {
		t.Errorf("hovering the button: cursor = %v, want Pointer", c)
	}
	if c := ui.Draw(r, pt(-10, -10)); c != CursorDefault {
		t.Errorf("hovering nothing: cursor = %v, want Default", c)
	}
}

func TestCursorFoldKeepsLastSpecific(t *testing.T) {
	tests := []struct {
		seq  []MouseCursor
		want MouseCursor
	}{
		{nil, CursorDefault},
		{[]MouseCursor{CursorDefault, CursorPointer, CursorDefault}, CursorPointer},
		{[]MouseCursor{CursorGrab, CursorPointer}, CursorPointer},
		{[]MouseCursor{CursorPointer, CursorDefault, CursorGrabbing}, CursorGrabbing},
	}
	for _, tt := range tests {
		c := CursorDefault
		for _, next := range tt.seq {
			c = c.fold(next)
		}
		if c != tt.want {
			t.Errorf("fold(%v) = %v, want %v", tt.seq, c, tt.want)
		}
	}
}

func TestDrawOrderFollowsPushOrder(t *testing.T) {
	var a, b ButtonState
	img := NewImage[msg, mr](newTestImage(4, 4))
	tree := NewPanel[msg, mr](column().
		Push(text("title")).
		Push(button(&a, "one")).
		Push(img).
		Push(button(&b, "two")))
	r := &mockRenderer{}
	Build[msg, mr](tree, r, screen, nil).Draw(r, pt(-1, -1))
	want := []string{"panel", "text:title", "button:one", "image", "button:two"}
	if !reflect.DeepEqual(r.calls, want) {
		t.Errorf("calls = %v, want %v", r.calls, want)
	}
}

type outer struct {
	inner msg
}

func TestMapConvertsMessages(t *testing.T) {
	var st ButtonState
	mapped := Map(Widget[msg, mr](button(&st, "inner")), func(m msg) outer { return outer{m} })
	tree := NewColumn[outer, mr]().Width(300).Push(mapped)

	ui := Build[outer, mr](tree, &mockRenderer{}, screen, nil)
	got := ui.Update(pt(5, 5), []input.Event{press(), release()}, nil)
	if !reflect.DeepEqual(got, []outer{{"inner"}}) {
		t.Errorf("messages = %v", got)
	}
	if Hash[outer, mr](mapped) != Hash[msg, mr](button(&st, "inner")) {
		t.Error("Map should not change the hash of the wrapped widget")
	}
}

func TestNewElementDoesNotDoubleWrap(t *testing.T) {
	e := NewElement[msg, mr](text("x"))
	again := NewElement[msg, mr](e)
	if _, ok := again.widget.(Element[msg, mr]); ok {
		t.Error("element wrapped inside element")
	}
}

func TestTreeShapeMismatchPanics(t *testing.T) {
	tree := column().Push(text("a")).Push(text("b"))
	defer func() {
		if recover() == nil {
			t.Error("expected panic on shape mismatch")
		}
	}()
	tree.Draw(&mockRenderer{}, Layout{Children: []Layout{{}}}, pt(0, 0))
}

func TestPushNilPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	column().Push(nil)
}

func TestExplain(t *testing.T) {
	r := &mockRenderer{}
	ui := Build[msg, mr](column().Push(text("a")).Push(text("b")), r, screen, nil)
	ui.Explain(r, graphics.ColorWhite)
	if !reflect.DeepEqual(r.calls, []string{"explain:###"}) {
		t.Errorf("calls = %v", r.calls)
	}
}
