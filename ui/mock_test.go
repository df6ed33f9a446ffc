package ui

import (
	"image"
	"math"
	"strings"

	"github.com/phanxgames/coffee/graphics"
	"github.com/phanxgames/coffee/input"
)

// mockRenderer implements every capability. Text is 10px per byte and one
// line of `size` pixels high; interactive widgets report Pointer on hover.
type mockRenderer struct {
	calls []string
}

func (m *mockRenderer) record(s string) {
	m.calls = append(m.calls, s)
}

func (m *mockRenderer) MeasureText(content string, size, maxWidth float64) graphics.Size {
	lines := graphics.WrapText(content, maxWidth, func(s string) float64 { return float64(len(s)) * 10 })
	w := 0.0
	for _, l := range lines {
		w = math.Max(w, float64(len(l))*10)
	}
	return graphics.Size{Width: w, Height: float64(len(lines)) * size}
}

func (m *mockRenderer) DrawText(t TextSpec) {
	m.record("text:" + t.Content)
}

func (m *mockRenderer) DrawButton(cursor graphics.Point, bounds graphics.Rectangle, state ButtonState, label string, class ButtonClass) MouseCursor {
	m.record("button:" + label)
	if bounds.Contains(cursor) {
		return CursorPointer
	}
	return CursorDefault
}

func (m *mockRenderer) DrawCheckbox(cursor graphics.Point, bounds, labelBounds graphics.Rectangle, checked bool) MouseCursor {
	if checked {
		m.record("checkbox:on")
	} else {
		m.record("checkbox:off")
	}
	if bounds.Contains(cursor) || labelBounds.Contains(cursor) {
		return CursorPointer
	}
	return CursorDefault
}

func (m *mockRenderer) DrawRadio(cursor graphics.Point, bounds, boundsWithLabel graphics.Rectangle, selected bool) MouseCursor {
	if selected {
		m.record("radio:on")
	} else {
		m.record("radio:off")
	}
	if boundsWithLabel.Contains(cursor) {
		return CursorPointer
	}
	return CursorDefault
}

func (m *mockRenderer) DrawSlider(cursor graphics.Point, bounds graphics.Rectangle, state SliderState, min, max, value float64) MouseCursor {
	m.record("slider")
	switch {
	case state.IsDragging:
		return CursorGrabbing
	case bounds.Contains(cursor):
		return CursorGrab
	}
	return CursorDefault
}

func (m *mockRenderer) DrawPanel(bounds graphics.Rectangle) {
	m.record("panel")
}

func (m *mockRenderer) DrawImage(img image.Image, bounds graphics.Rectangle) {
	m.record("image")
}

func (m *mockRenderer) Explain(layout Layout, color graphics.Color) {
	n := 0
	layout.Walk(func(int, Layout) { n++ })
	m.record("explain:" + strings.Repeat("#", n))
}

type (
	msg  string
	mr   = *mockRenderer
	elem = Element[msg, mr]
)

func column() *Column[msg, mr]     { return NewColumn[msg, mr]() }
func row() *Row[msg, mr]           { return NewRow[msg, mr]() }
func text(s string) *Text[msg, mr] { return NewText[msg, mr](s) }

func button(st *ButtonState, label string) *Button[msg, mr] {
	return NewButton[msg, mr](st, label).OnPress(msg(label))
}

// box is a fixed-size childless widget.
type box struct {
	style Style
}

func fixedBox(w, h float64) *box {
	s := DefaultStyle()
	s.Width, s.Height = Points(w), Points(h)
	return &box{style: s}
}

func (b *box) Node(mr) *Node { return NewNode(b.style) }

func (b *box) OnEvent(_ input.Event, _ Layout, _ graphics.Point, ms []msg) []msg {
	return ms
}

func (b *box) Draw(mr, Layout, graphics.Point) MouseCursor { return CursorDefault }

func (b *box) Hash(h *Hasher) { b.style.hash(h) }
