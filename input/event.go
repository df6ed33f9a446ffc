// Package input translates Ebitengine device state into the events consumed
// by games and the ui package, and tracks keyboard and mouse state between
// frames.
package input

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/coffee/graphics"
)

// EventType identifies the kind of input event.
type EventType uint8

const (
	EventMouseInput    EventType = iota // a mouse button was pressed or released
	EventCursorMoved                    // the cursor moved to Position
	EventMouseWheel                     // the wheel scrolled by Delta
	EventKeyboardInput                  // a key was pressed or released
	EventTextInput                      // a character was typed
	EventFocused                        // the window gained focus
	EventUnfocused                      // the window lost focus
)

var eventTypeNames = [...]string{
	EventMouseInput:    "MouseInput",
	EventCursorMoved:   "CursorMoved",
	EventMouseWheel:    "MouseWheel",
	EventKeyboardInput: "KeyboardInput",
	EventTextInput:     "TextInput",
	EventFocused:       "Focused",
	EventUnfocused:     "Unfocused",
}

func (t EventType) String() string {
	if int(t) < len(eventTypeNames) {
		return eventTypeNames[t]
	}
	return fmt.Sprintf("EventType(%d)", t)
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// ButtonState is the transition carried by MouseInput and KeyboardInput
// events.
type ButtonState uint8

const (
	Pressed ButtonState = iota
	Released
)

// Key is an Ebitengine keyboard key.
type Key = ebiten.Key

// KeyModifiers is a bitmask of keyboard modifier keys.
// Values can be combined with bitwise OR (e.g. ModShift | ModCtrl).
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)

// Event is a single input event. Only the fields relevant to Type are set.
type Event struct {
	Type EventType

	Button    MouseButton  // EventMouseInput
	State     ButtonState  // EventMouseInput, EventKeyboardInput
	Key       Key          // EventKeyboardInput
	Rune      rune         // EventTextInput
	Modifiers KeyModifiers // EventKeyboardInput

	Position graphics.Point  // EventCursorMoved
	Delta    graphics.Vector // EventMouseWheel
}

// MouseInputEvent returns a mouse button transition.
func MouseInputEvent(button MouseButton, state ButtonState) Event {
	return Event{Type: EventMouseInput, Button: button, State: state}
}

// CursorMovedEvent returns a cursor motion to p.
func CursorMovedEvent(p graphics.Point) Event {
	return Event{Type: EventCursorMoved, Position: p}
}

// KeyboardInputEvent returns a key transition.
func KeyboardInputEvent(key Key, state ButtonState) Event {
	return Event{Type: EventKeyboardInput, Key: key, State: state}
}

// TextInputEvent returns a typed character.
func TextInputEvent(r rune) Event {
	return Event{Type: EventTextInput, Rune: r}
}

// MouseWheelEvent returns a wheel scroll.
func MouseWheelEvent(delta graphics.Vector) Event {
	return Event{Type: EventMouseWheel, Delta: delta}
}

// IsPress reports whether e is a press of the given mouse button.
func (e Event) IsPress(button MouseButton) bool {
	return e.Type == EventMouseInput && e.Button == button && e.State == Pressed
}

// IsRelease reports whether e is a release of the given mouse button.
func (e Event) IsRelease(button MouseButton) bool {
	return e.Type == EventMouseInput && e.Button == button && e.State == Released
}
