package ui

import (
	"github.com/phanxgames/coffee/graphics"
	"github.com/phanxgames/coffee/input"
)

// Text displays a block of wrapped text.
type Text[M any, R TextRenderer] struct {
	content string
	size    float64
	color   graphics.Color
	halign  graphics.HorizontalAlignment
	valign  graphics.VerticalAlignment
	style   Style
}

// NewText returns white text of size 20.
func NewText[M any, R TextRenderer](content string) *Text[M, R] {
	return &Text[M, R]{
		content: content,
		size:    20,
		color:   graphics.ColorWhite,
		style:   DefaultStyle(),
	}
}

// Size sets the font size.
func (t *Text[M, R]) Size(size float64) *Text[M, R] {
	t.size = size
	return t
}

// Color sets the text color.
func (t *Text[M, R]) Color(c graphics.Color) *Text[M, R] {
	t.color = c
	return t
}

// Width sets a fixed width in pixels.
func (t *Text[M, R]) Width(px float64) *Text[M, R] {
	t.style.Width = Points(px)
	return t
}

// Height sets a fixed height in pixels.
func (t *Text[M, R]) Height(px float64) *Text[M, R] {
	t.style.Height = Points(px)
	return t
}

// FillWidth makes the text take the full width of its parent.
func (t *Text[M, R]) FillWidth() *Text[M, R] {
	t.style.Width = Percent(100)
	return t
}

// HorizontalAlignment aligns the lines inside the bounds.
func (t *Text[M, R]) HorizontalAlignment(a graphics.HorizontalAlignment) *Text[M, R] {
	t.halign = a
	return t
}

// VerticalAlignment aligns the block inside the bounds.
func (t *Text[M, R]) VerticalAlignment(a graphics.VerticalAlignment) *Text[M, R] {
	t.valign = a
	return t
}

func (t *Text[M, R]) Node(r R) *Node {
	return NewLeaf(t.style, func(maxWidth, _ float64) graphics.Size {
		return r.MeasureText(t.content, t.size, maxWidth)
	})
}

func (t *Text[M, R]) OnEvent(_ input.Event, _ Layout, _ graphics.Point, messages []M) []M {
	return messages
}

func (t *Text[M, R]) Draw(r R, layout Layout, _ graphics.Point) MouseCursor {
	r.DrawText(TextSpec{
		Content:             t.content,
		Bounds:              layout.Bounds,
		Size:                t.size,
		Color:               t.color,
		HorizontalAlignment: t.halign,
		VerticalAlignment:   t.valign,
	})
	return CursorDefault
}

func (t *Text[M, R]) Hash(h *Hasher) {
	h.WriteUint8(kindText)
	t.style.hash(h)
	h.WriteString(t.content)
	h.WriteFloat64(t.size)
}
