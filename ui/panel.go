package ui

import (
	"github.com/phanxgames/coffee/graphics"
	"github.com/phanxgames/coffee/input"
)

// Panel draws a background behind a single child.
type Panel[M any, R PanelRenderer] struct {
	style Style
	child Element[M, R]
}

// NewPanel wraps child with 20px of padding.
func NewPanel[M any, R PanelRenderer](child Widget[M, R]) *Panel[M, R] {
	style := DefaultStyle()
	style.Padding = EdgeAll(20)
	return &Panel[M, R]{style: style, child: NewElement(child)}
}

// Width sets a fixed width in pixels.
func (p *Panel[M, R]) Width(px float64) *Panel[M, R] {
	p.style.Width = Points(px)
	return p
}

// Height sets a fixed height in pixels.
func (p *Panel[M, R]) Height(px float64) *Panel[M, R] {
	p.style.Height = Points(px)
	return p
}

// MaxWidth caps the width in pixels.
func (p *Panel[M, R]) MaxWidth(px float64) *Panel[M, R] {
	p.style.MaxWidth = Points(px)
	return p
}

// AlignSelf overrides the cross alignment of the parent for this panel.
func (p *Panel[M, R]) AlignSelf(a Align) *Panel[M, R] {
	p.style.AlignSelf = &a
	return p
}

// Padding insets the child on every side.
func (p *Panel[M, R]) Padding(px float64) *Panel[M, R] {
	p.style.Padding = EdgeAll(px)
	return p
}

func (p *Panel[M, R]) Node(r R) *Node {
	return NewNode(p.style, p.child.Node(r))
}

func (p *Panel[M, R]) OnEvent(event input.Event, layout Layout, cursor graphics.Point, messages []M) []M {
	layout.mustHaveChildren(1)
	return p.child.OnEvent(event, layout.Children[0], cursor, messages)
}

func (p *Panel[M, R]) Draw(r R, layout Layout, cursor graphics.Point) MouseCursor {
	layout.mustHaveChildren(1)
	r.DrawPanel(layout.Bounds)
	return p.child.Draw(r, layout.Children[0], cursor)
}

func (p *Panel[M, R]) Hash(h *Hasher) {
	h.WriteUint8(kindPanel)
	p.style.hash(h)
	p.child.Hash(h)
}
