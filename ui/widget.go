package ui

import (
	"github.com/phanxgames/coffee/graphics"
	"github.com/phanxgames/coffee/input"
)

// Widget is a UI building block producing messages of type M and drawing
// through a renderer of type R.
//
// Widgets describe one position of the tree for one frame. Persistent
// interaction state lives in caller-owned values (ButtonState, SliderState)
// that widgets hold a pointer to.
type Widget[M, R any] interface {
	// Node describes the layout of the widget. It must not have side
	// effects.
	Node(r R) *Node
	// OnEvent handles an input event given the widget's resolved layout and
	// appends any produced messages.
	OnEvent(event input.Event, layout Layout, cursor graphics.Point, messages []M) []M
	// Draw draws the widget and returns a mouse cursor hint.
	Draw(r R, layout Layout, cursor graphics.Point) MouseCursor
	// Hash feeds everything that affects layout into h.
	Hash(h *Hasher)
}

// Element is a type-erased widget for a fixed message and renderer pair. It
// lets containers hold children of different concrete types.
type Element[M, R any] struct {
	widget Widget[M, R]
}

// NewElement wraps w. Wrapping an Element returns it unchanged.
func NewElement[M, R any](w Widget[M, R]) Element[M, R] {
	if e, ok := w.(Element[M, R]); ok {
		return e
	}
	return Element[M, R]{widget: w}
}

func (e Element[M, R]) Node(r R) *Node {
	return e.widget.Node(r)
}

func (e Element[M, R]) OnEvent(event input.Event, layout Layout, cursor graphics.Point, messages []M) []M {
	return e.widget.OnEvent(event, layout, cursor, messages)
}

func (e Element[M, R]) Draw(r R, layout Layout, cursor graphics.Point) MouseCursor {
	return e.widget.Draw(r, layout, cursor)
}

func (e Element[M, R]) Hash(h *Hasher) {
	e.widget.Hash(h)
}

// Map converts the messages produced by w with f. It allows composing
// components that define their own message types:
//
//	menu := ui.Map(mainMenu.Layout(), func(m menu.Message) Message { return MenuMessage{m} })
func Map[A, B, R any](w Widget[A, R], f func(A) B) Element[B, R] {
	return Element[B, R]{widget: &mapped[A, B, R]{widget: w, f: f}}
}

type mapped[A, B, R any] struct {
	widget  Widget[A, R]
	f       func(A) B
	scratch []A
}

func (m *mapped[A, B, R]) Node(r R) *Node {
	return m.widget.Node(r)
}

func (m *mapped[A, B, R]) OnEvent(event input.Event, layout Layout, cursor graphics.Point, messages []B) []B {
	m.scratch = m.widget.OnEvent(event, layout, cursor, m.scratch[:0])
	for _, msg := range m.scratch {
		messages = append(messages, m.f(msg))
	}
	return messages
}

func (m *mapped[A, B, R]) Draw(r R, layout Layout, cursor graphics.Point) MouseCursor {
	return m.widget.Draw(r, layout, cursor)
}

func (m *mapped[A, B, R]) Hash(h *Hasher) {
	m.widget.Hash(h)
}
