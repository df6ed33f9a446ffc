package ui

import (
	"github.com/phanxgames/coffee/graphics"
	"github.com/phanxgames/coffee/input"
)

// Radio is one option of a group of mutually exclusive choices.
type Radio[M any, R RadioRenderer] struct {
	selected   bool
	label      string
	labelColor graphics.Color
	onClick    func() M
}

// NewRadio returns a radio for value. It is selected when *selected equals
// value (a nil selected means nothing is chosen yet) and emits f(value) when
// clicked.
//
//	ui.NewRadio[Message, *basic.Renderer](Easy, "Easy", state.difficulty, DifficultyChanged)
func NewRadio[M any, R RadioRenderer, V comparable](value V, label string, selected *V, f func(V) M) *Radio[M, R] {
	return &Radio[M, R]{
		selected:   selected != nil && *selected == value,
		label:      label,
		labelColor: graphics.ColorWhite,
		onClick:    func() M { return f(value) },
	}
}

// LabelColor sets the color of the label.
func (rd *Radio[M, R]) LabelColor(color graphics.Color) *Radio[M, R] {
	rd.labelColor = color
	return rd
}

func (rd *Radio[M, R]) Node(r R) *Node {
	return toggleNode(r, rd.label)
}

func (rd *Radio[M, R]) OnEvent(event input.Event, layout Layout, cursor graphics.Point, messages []M) []M {
	if event.IsPress(input.MouseButtonLeft) && overToggle(layout, cursor) {
		messages = append(messages, rd.onClick())
	}
	return messages
}

func (rd *Radio[M, R]) Draw(r R, layout Layout, cursor graphics.Point) MouseCursor {
	layout.mustHaveChildren(2)
	r.DrawText(TextSpec{
		Content:           rd.label,
		Bounds:            layout.Children[1].Bounds,
		Size:              toggleTextSize,
		Color:             rd.labelColor,
		VerticalAlignment: graphics.AlignTop,
	})
	return r.DrawRadio(cursor, layout.Children[0].Bounds, layout.Bounds, rd.selected)
}

func (rd *Radio[M, R]) Hash(h *Hasher) {
	h.WriteUint8(kindRadio)
	h.WriteString(rd.label)
}
