package ui

import (
	"github.com/phanxgames/coffee/graphics"
	"github.com/phanxgames/coffee/input"
)

const (
	toggleSize     = 28
	toggleSpacing  = 15
	toggleTextSize = 20
)

// toggleNode lays out a 28x28 box followed by a label, centered vertically.
// Checkbox and Radio share it.
func toggleNode[R TextRenderer](r R, label string) *Node {
	return NewRow[struct{}, R]().
		Spacing(toggleSpacing).
		AlignItems(AlignCenter).
		Push(NewColumn[struct{}, R]().Width(toggleSize).Height(toggleSize)).
		Push(NewText[struct{}, R](label).Size(toggleTextSize)).
		Node(r)
}

// overToggle reports whether the cursor is over the box or the label.
func overToggle(layout Layout, cursor graphics.Point) bool {
	for _, c := range layout.Children {
		if c.Bounds.Contains(cursor) {
			return true
		}
	}
	return false
}

// Checkbox is a labeled toggle.
type Checkbox[M any, R CheckboxRenderer] struct {
	checked    bool
	label      string
	labelColor graphics.Color
	onToggle   func(bool) M
}

// NewCheckbox returns a checkbox that emits onToggle(!checked) when clicked.
func NewCheckbox[M any, R CheckboxRenderer](checked bool, label string, onToggle func(bool) M) *Checkbox[M, R] {
	return &Checkbox[M, R]{
		checked:    checked,
		label:      label,
		labelColor: graphics.ColorWhite,
		onToggle:   onToggle,
	}
}

// LabelColor sets the color of the label.
func (c *Checkbox[M, R]) LabelColor(color graphics.Color) *Checkbox[M, R] {
	c.labelColor = color
	return c
}

func (c *Checkbox[M, R]) Node(r R) *Node {
	return toggleNode(r, c.label)
}

func (c *Checkbox[M, R]) OnEvent(event input.Event, layout Layout, cursor graphics.Point, messages []M) []M {
	if event.IsPress(input.MouseButtonLeft) && overToggle(layout, cursor) {
		messages = append(messages, c.onToggle(!c.checked))
	}
	return messages
}

func (c *Checkbox[M, R]) Draw(r R, layout Layout, cursor graphics.Point) MouseCursor {
	layout.mustHaveChildren(2)
	labelBounds := layout.Children[1].Bounds
	r.DrawText(TextSpec{
		Content:           c.label,
		Bounds:            labelBounds,
		Size:              toggleTextSize,
		Color:             c.labelColor,
		VerticalAlignment: graphics.AlignTop,
	})
	return r.DrawCheckbox(cursor, layout.Children[0].Bounds, labelBounds, c.checked)
}

// Hash only feeds the label: toggling does not change the layout.
func (c *Checkbox[M, R]) Hash(h *Hasher) {
	h.WriteUint8(kindCheckbox)
	h.WriteString(c.label)
}
