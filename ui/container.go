package ui

import (
	"github.com/phanxgames/coffee/graphics"
	"github.com/phanxgames/coffee/input"
)

// container is the flex algorithm shared by Row and Column; only the
// direction differs.
type container[M, R any] struct {
	style    Style
	spacing  float64
	children []Element[M, R]
	kind     uint8
}

func newContainer[M, R any](dir Direction, kind uint8) container[M, R] {
	style := DefaultStyle()
	style.Direction = dir
	return container[M, R]{style: style, kind: kind}
}

func (c *container[M, R]) push(child Widget[M, R]) {
	if child == nil {
		panic("ui: cannot push nil child")
	}
	c.children = append(c.children, NewElement(child))
}

// Node lays the children out along the main axis. Spacing becomes the
// trailing margin of every child but the last.
func (c *container[M, R]) Node(r R) *Node {
	nodes := make([]*Node, len(c.children))
	for i, child := range c.children {
		n := child.Node(r)
		if c.spacing != 0 && i < len(c.children)-1 {
			if c.style.Direction == DirectionRow {
				n.Style.Margin.Right = c.spacing
			} else {
				n.Style.Margin.Bottom = c.spacing
			}
		}
		nodes[i] = n
	}
	return NewNode(c.style, nodes...)
}

func (c *container[M, R]) OnEvent(event input.Event, layout Layout, cursor graphics.Point, messages []M) []M {
	layout.mustHaveChildren(len(c.children))
	for i, child := range c.children {
		messages = child.OnEvent(event, layout.Children[i], cursor, messages)
	}
	return messages
}

func (c *container[M, R]) Draw(r R, layout Layout, cursor graphics.Point) MouseCursor {
	layout.mustHaveChildren(len(c.children))
	mc := CursorDefault
	for i, child := range c.children {
		mc = mc.fold(child.Draw(r, layout.Children[i], cursor))
	}
	return mc
}

func (c *container[M, R]) Hash(h *Hasher) {
	h.WriteUint8(c.kind)
	c.style.hash(h)
	h.WriteFloat64(c.spacing)
	h.WriteUint64(uint64(len(c.children)))
	for _, child := range c.children {
		child.Hash(h)
	}
}

// Column lays its children out top to bottom.
//
//	ui.NewColumn[Message, *basic.Renderer]().
//		Width(300).
//		Spacing(30).
//		Push(play).
//		Push(quit)
type Column[M, R any] struct {
	container[M, R]
}

// NewColumn returns an empty column.
func NewColumn[M, R any]() *Column[M, R] {
	return &Column[M, R]{newContainer[M, R](DirectionColumn, kindColumn)}
}

// Push appends a child. Children are laid out, drawn, hashed and receive
// events in push order.
func (c *Column[M, R]) Push(child Widget[M, R]) *Column[M, R] {
	c.push(child)
	return c
}

// Width sets a fixed width in pixels.
func (c *Column[M, R]) Width(px float64) *Column[M, R] {
	c.style.Width = Points(px)
	return c
}

// Height sets a fixed height in pixels.
func (c *Column[M, R]) Height(px float64) *Column[M, R] {
	c.style.Height = Points(px)
	return c
}

// MaxWidth limits the width in pixels.
func (c *Column[M, R]) MaxWidth(px float64) *Column[M, R] {
	c.style.MaxWidth = Points(px)
	return c
}

// MaxHeight limits the height in pixels.
func (c *Column[M, R]) MaxHeight(px float64) *Column[M, R] {
	c.style.MaxHeight = Points(px)
	return c
}

// FillWidth makes the column take the full width of its parent.
func (c *Column[M, R]) FillWidth() *Column[M, R] {
	c.style.Width = Percent(100)
	return c
}

// FillHeight makes the column take the full height of its parent.
func (c *Column[M, R]) FillHeight() *Column[M, R] {
	c.style.Height = Percent(100)
	return c
}

// Grow makes the column take a share of the leftover space of its parent.
func (c *Column[M, R]) Grow(factor float64) *Column[M, R] {
	c.style.Grow = factor
	return c
}

// Padding insets the content on every side.
func (c *Column[M, R]) Padding(px float64) *Column[M, R] {
	c.style.Padding = EdgeAll(px)
	return c
}

// Spacing sets the vertical gap between children.
func (c *Column[M, R]) Spacing(px float64) *Column[M, R] {
	c.spacing = px
	return c
}

// AlignItems sets the horizontal alignment of the children.
func (c *Column[M, R]) AlignItems(a Align) *Column[M, R] {
	c.style.AlignItems = a
	return c
}

// AlignSelf overrides the alignment given by the parent.
func (c *Column[M, R]) AlignSelf(a Align) *Column[M, R] {
	c.style.AlignSelf = &a
	return c
}

// JustifyContent sets how children are distributed vertically.
func (c *Column[M, R]) JustifyContent(j Justify) *Column[M, R] {
	c.style.JustifyContent = j
	return c
}

// CenterChildren centers the children on both axes.
func (c *Column[M, R]) CenterChildren() *Column[M, R] {
	c.style.AlignItems = AlignCenter
	c.style.JustifyContent = JustifyCenter
	return c
}

// Row lays its children out left to right.
type Row[M, R any] struct {
	container[M, R]
}

// NewRow returns an empty row.
func NewRow[M, R any]() *Row[M, R] {
	return &Row[M, R]{newContainer[M, R](DirectionRow, kindRow)}
}

// Push appends a child. Children are laid out, drawn, hashed and receive
// events in push order.
func (r *Row[M, R]) Push(child Widget[M, R]) *Row[M, R] {
	r.push(child)
	return r
}

// Width sets a fixed width in pixels.
func (r *Row[M, R]) Width(px float64) *Row[M, R] {
	r.style.Width = Points(px)
	return r
}

// Height sets a fixed height in pixels.
func (r *Row[M, R]) Height(px float64) *Row[M, R] {
	r.style.Height = Points(px)
	return r
}

// MaxWidth limits the width in pixels.
func (r *Row[M, R]) MaxWidth(px float64) *Row[M, R] {
	r.style.MaxWidth = Points(px)
	return r
}

// MaxHeight limits the height in pixels.
func (r *Row[M, R]) MaxHeight(px float64) *Row[M, R] {
	r.style.MaxHeight = Points(px)
	return r
}

// FillWidth makes the row take the full width of its parent.
func (r *Row[M, R]) FillWidth() *Row[M, R] {
	r.style.Width = Percent(100)
	return r
}

// FillHeight makes the row take the full height of its parent.
func (r *Row[M, R]) FillHeight() *Row[M, R] {
	r.style.Height = Percent(100)
	return r
}

// Grow makes the row take a share of the leftover space of its parent.
func (r *Row[M, R]) Grow(factor float64) *Row[M, R] {
	r.style.Grow = factor
	return r
}

// Padding insets the content on every side.
func (r *Row[M, R]) Padding(px float64) *Row[M, R] {
	r.style.Padding = EdgeAll(px)
	return r
}

// Spacing sets the horizontal gap between children.
func (r *Row[M, R]) Spacing(px float64) *Row[M, R] {
	r.spacing = px
	return r
}

// AlignItems sets the vertical alignment of the children.
func (r *Row[M, R]) AlignItems(a Align) *Row[M, R] {
	r.style.AlignItems = a
	return r
}

// AlignSelf overrides the alignment given by the parent.
func (r *Row[M, R]) AlignSelf(a Align) *Row[M, R] {
	r.style.AlignSelf = &a
	return r
}

// JustifyContent sets how children are distributed horizontally.
func (r *Row[M, R]) JustifyContent(j Justify) *Row[M, R] {
	r.style.JustifyContent = j
	return r
}

// CenterChildren centers the children on both axes.
func (r *Row[M, R]) CenterChildren() *Row[M, R] {
	r.style.AlignItems = AlignCenter
	r.style.JustifyContent = JustifyCenter
	return r
}
