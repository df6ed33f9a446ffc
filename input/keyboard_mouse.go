package input

import "github.com/phanxgames/coffee/graphics"

// KeyboardAndMouse tracks the keyboard and mouse state built from a stream
// of events. Per-frame data (clicks, typed text, wheel movement) is reset by
// ClearFrame.
type KeyboardAndMouse struct {
	keys    map[Key]bool
	buttons [3]bool
	cursor  graphics.Point
	focused bool

	clicks [3][]graphics.Point
	text   []rune
	wheel  graphics.Vector
	mods   KeyModifiers
}

// NewKeyboardAndMouse returns an empty tracker.
func NewKeyboardAndMouse() *KeyboardAndMouse {
	return &KeyboardAndMouse{keys: make(map[Key]bool), focused: true}
}

// Update folds a single event into the tracked state.
func (k *KeyboardAndMouse) Update(e Event) {
	switch e.Type {
	case EventMouseInput:
		if int(e.Button) >= len(k.buttons) {
			return
		}
		pressed := e.State == Pressed
		if pressed && !k.buttons[e.Button] {
			k.clicks[e.Button] = append(k.clicks[e.Button], k.cursor)
		}
		k.buttons[e.Button] = pressed
	case EventCursorMoved:
		k.cursor = e.Position
	case EventMouseWheel:
		k.wheel.X += e.Delta.X
		k.wheel.Y += e.Delta.Y
	case EventKeyboardInput:
		if e.State == Pressed {
			k.keys[e.Key] = true
		} else {
			delete(k.keys, e.Key)
		}
		k.mods = e.Modifiers
	case EventTextInput:
		k.text = append(k.text, e.Rune)
	case EventFocused:
		k.focused = true
	case EventUnfocused:
		k.focused = false
		clear(k.keys)
		k.buttons = [3]bool{}
	}
}

// ClearFrame drops per-frame data. Pressed keys and buttons persist.
func (k *KeyboardAndMouse) ClearFrame() {
	for i := range k.clicks {
		k.clicks[i] = k.clicks[i][:0]
	}
	k.text = k.text[:0]
	k.wheel = graphics.Vector{}
}

// IsKeyPressed reports whether key is held down.
func (k *KeyboardAndMouse) IsKeyPressed(key Key) bool {
	return k.keys[key]
}

// IsMouseButtonPressed reports whether button is held down.
func (k *KeyboardAndMouse) IsMouseButtonPressed(button MouseButton) bool {
	return int(button) < len(k.buttons) && k.buttons[button]
}

// CursorPosition returns the last known cursor position.
func (k *KeyboardAndMouse) CursorPosition() graphics.Point {
	return k.cursor
}

// Clicks returns the cursor positions at which button was pressed this
// frame. The slice is only valid until the next ClearFrame.
func (k *KeyboardAndMouse) Clicks(button MouseButton) []graphics.Point {
	if int(button) >= len(k.clicks) {
		return nil
	}
	return k.clicks[button]
}

// WheelMovement returns the accumulated wheel delta this frame.
func (k *KeyboardAndMouse) WheelMovement() graphics.Vector {
	return k.wheel
}

// Text returns the characters typed this frame.
func (k *KeyboardAndMouse) Text() string {
	return string(k.text)
}

// Modifiers returns the modifier state seen with the last key event.
func (k *KeyboardAndMouse) Modifiers() KeyModifiers {
	return k.mods
}

// IsFocused reports whether the window has focus.
func (k *KeyboardAndMouse) IsFocused() bool {
	return k.focused
}
