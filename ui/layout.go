package ui

import (
	"fmt"

	"github.com/phanxgames/coffee/graphics"
)

// Layout is the resolved geometry of a Node: absolute bounds relative to the
// root and one Layout per child, in the same order. It is read-only during
// event dispatch and drawing.
type Layout struct {
	Bounds   graphics.Rectangle `json:"bounds"`
	Children []Layout           `json:"children,omitempty"`
}

// Position returns the top-left corner of the bounds.
func (l Layout) Position() graphics.Point {
	return l.Bounds.Position()
}

// Child returns the layout of the i-th child. It panics when the tree shapes
// of the widget and the layout diverge.
func (l Layout) Child(i int) Layout {
	if i < 0 || i >= len(l.Children) {
		panic(fmt.Sprintf("ui: layout has %d children, widget asked for child %d", len(l.Children), i))
	}
	return l.Children[i]
}

// mustHaveChildren panics when a container with n children is paired with a
// layout of a different shape.
func (l Layout) mustHaveChildren(n int) {
	if len(l.Children) != n {
		panic(fmt.Sprintf("ui: widget has %d children but its layout has %d", n, len(l.Children)))
	}
}

// Walk calls fn for l and every descendant in pre-order.
func (l Layout) Walk(fn func(depth int, l Layout)) {
	l.walk(0, fn)
}

func (l Layout) walk(depth int, fn func(int, Layout)) {
	fn(depth, l)
	for _, c := range l.Children {
		c.walk(depth+1, fn)
	}
}
