package ui

import (
	"github.com/phanxgames/coffee/graphics"
	"github.com/phanxgames/coffee/input"
)

// ButtonState is the persistent state of a button. Keep one per button in
// your application state and pass a pointer to NewButton every frame.
type ButtonState struct {
	IsPressed bool
}

// ButtonClass selects the look of a button.
type ButtonClass uint8

const (
	ButtonPrimary ButtonClass = iota
	ButtonSecondary
	ButtonPositive
)

// ClickPolicy decides when a button emits its message.
type ClickPolicy uint8

const (
	// ClickOnRelease emits when the left button is pressed and later
	// released with the cursor inside the bounds both times. Leaving the
	// bounds before releasing cancels the click.
	ClickOnRelease ClickPolicy = iota
	// ClickOnPress emits as soon as the left button is pressed inside the
	// bounds.
	ClickOnPress
)

const (
	buttonHeight   = 50
	buttonMinWidth = 100
	buttonTextSize = 20
	buttonPadding  = 20
)

// Button is a clickable label.
type Button[M any, R ButtonRenderer] struct {
	state   *ButtonState
	label   string
	class   ButtonClass
	policy  ClickPolicy
	style   Style
	onPress M
	hasMsg  bool
}

// NewButton returns a primary button of height 50 and minimum width 100.
func NewButton[M any, R ButtonRenderer](state *ButtonState, label string) *Button[M, R] {
	style := DefaultStyle()
	style.Height = Points(buttonHeight)
	style.MinWidth = Points(buttonMinWidth)
	return &Button[M, R]{state: state, label: label, style: style}
}

// OnPress sets the message emitted when the button is clicked.
func (b *Button[M, R]) OnPress(msg M) *Button[M, R] {
	b.onPress = msg
	b.hasMsg = true
	return b
}

// Class sets the look of the button.
func (b *Button[M, R]) Class(class ButtonClass) *Button[M, R] {
	b.class = class
	return b
}

// ClickPolicy changes when the button emits its message.
func (b *Button[M, R]) ClickPolicy(p ClickPolicy) *Button[M, R] {
	b.policy = p
	return b
}

// Width sets a fixed width in pixels.
func (b *Button[M, R]) Width(px float64) *Button[M, R] {
	b.style.Width = Points(px)
	return b
}

// FillWidth makes the button take the full width of its parent.
func (b *Button[M, R]) FillWidth() *Button[M, R] {
	b.style.Width = Percent(100)
	return b
}

// AlignSelf overrides the alignment given by the parent.
func (b *Button[M, R]) AlignSelf(a Align) *Button[M, R] {
	b.style.AlignSelf = &a
	return b
}

func (b *Button[M, R]) Node(r R) *Node {
	return NewLeaf(b.style, func(_, _ float64) graphics.Size {
		size := r.MeasureText(b.label, buttonTextSize, inf)
		size.Width += 2 * buttonPadding
		return size
	})
}

func (b *Button[M, R]) OnEvent(event input.Event, layout Layout, cursor graphics.Point, messages []M) []M {
	if event.Type != input.EventMouseInput || event.Button != input.MouseButtonLeft {
		return messages
	}
	inside := layout.Bounds.Contains(cursor)
	switch event.State {
	case input.Pressed:
		b.state.IsPressed = inside
		if inside && b.hasMsg && b.policy == ClickOnPress {
			b.state.IsPressed = false
			messages = append(messages, b.onPress)
		}
	case input.Released:
		if b.state.IsPressed && inside && b.hasMsg {
			messages = append(messages, b.onPress)
		}
		b.state.IsPressed = false
	}
	return messages
}

func (b *Button[M, R]) Draw(r R, layout Layout, cursor graphics.Point) MouseCursor {
	return r.DrawButton(cursor, layout.Bounds, *b.state, b.label, b.class)
}

func (b *Button[M, R]) Hash(h *Hasher) {
	h.WriteUint8(kindButton)
	b.style.hash(h)
	h.WriteString(b.label)
}
