package ui

import (
	"math"

	"github.com/phanxgames/coffee/graphics"
	"github.com/phanxgames/coffee/input"
)

// SliderState is the persistent state of a slider.
type SliderState struct {
	IsDragging bool
}

const sliderHeight = 25

// Slider selects a value in a range by dragging.
type Slider[M any, R SliderRenderer] struct {
	state    *SliderState
	min, max float64
	value    float64
	onChange func(float64) M
	style    Style
}

// NewSlider returns a full-width slider over [min, max] showing value.
func NewSlider[M any, R SliderRenderer](state *SliderState, min, max, value float64, onChange func(float64) M) *Slider[M, R] {
	style := DefaultStyle()
	style.Width = Percent(100)
	style.Height = Points(sliderHeight)
	return &Slider[M, R]{
		state:    state,
		min:      min,
		max:      max,
		value:    math.Max(min, math.Min(value, max)),
		onChange: onChange,
		style:    style,
	}
}

// Width sets a fixed width in pixels.
func (s *Slider[M, R]) Width(px float64) *Slider[M, R] {
	s.style.Width = Points(px)
	return s
}

func (s *Slider[M, R]) Node(R) *Node {
	return NewNode(s.style)
}

func (s *Slider[M, R]) valueAt(bounds graphics.Rectangle, x float64) float64 {
	if bounds.Width <= 0 {
		return s.min
	}
	t := math.Max(0, math.Min((x-bounds.X)/bounds.Width, 1))
	return s.min + t*(s.max-s.min)
}

func (s *Slider[M, R]) OnEvent(event input.Event, layout Layout, cursor graphics.Point, messages []M) []M {
	switch {
	case event.IsPress(input.MouseButtonLeft):
		if layout.Bounds.Contains(cursor) {
			s.state.IsDragging = true
			messages = append(messages, s.onChange(s.valueAt(layout.Bounds, cursor.X)))
		}
	case event.IsRelease(input.MouseButtonLeft):
		s.state.IsDragging = false
	case event.Type == input.EventCursorMoved:
		if s.state.IsDragging {
			messages = append(messages, s.onChange(s.valueAt(layout.Bounds, cursor.X)))
		}
	}
	return messages
}

func (s *Slider[M, R]) Draw(r R, layout Layout, cursor graphics.Point) MouseCursor {
	return r.DrawSlider(cursor, layout.Bounds, *s.state, s.min, s.max, s.value)
}

func (s *Slider[M, R]) Hash(h *Hasher) {
	h.WriteUint8(kindSlider)
	s.style.hash(h)
}
