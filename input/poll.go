package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/coffee/graphics"
)

var mouseButtons = [...]struct {
	button MouseButton
	ebiten ebiten.MouseButton
}{
	{MouseButtonLeft, ebiten.MouseButtonLeft},
	{MouseButtonRight, ebiten.MouseButtonRight},
	{MouseButtonMiddle, ebiten.MouseButtonMiddle},
}

// Poller converts Ebitengine's polled device state into events. Call Poll
// once per tick from ebiten.Game.Update.
type Poller struct {
	cursor  graphics.Point
	focused bool

	keys  []ebiten.Key
	chars []rune

	injectQueue [][]Event
}

// NewPoller returns a Poller that assumes the window starts focused.
func NewPoller() *Poller {
	return &Poller{focused: true}
}

// Poll appends the events that happened since the previous call to buf.
// Injected events take priority: while the inject queue is non-empty, one
// queued step is consumed per call and real mouse input is skipped.
func (p *Poller) Poll(buf []Event) []Event {
	mods := readModifiers()

	if focused := ebiten.IsFocused(); focused != p.focused {
		p.focused = focused
		if focused {
			buf = append(buf, Event{Type: EventFocused})
		} else {
			buf = append(buf, Event{Type: EventUnfocused})
		}
	}

	if step, ok := p.popInjected(); ok {
		for _, e := range step {
			if e.Type == EventCursorMoved {
				p.cursor = e.Position
			}
			e.Modifiers = mods
			buf = append(buf, e)
		}
	} else {
		buf = p.pollMouse(buf, mods)
	}

	buf = p.pollKeyboard(buf, mods)
	return buf
}

func (p *Poller) pollMouse(buf []Event, mods KeyModifiers) []Event {
	mx, my := ebiten.CursorPosition()
	if cur := (graphics.Point{X: float64(mx), Y: float64(my)}); cur != p.cursor {
		p.cursor = cur
		buf = append(buf, Event{Type: EventCursorMoved, Position: cur, Modifiers: mods})
	}

	for _, b := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(b.ebiten) {
			buf = append(buf, Event{Type: EventMouseInput, Button: b.button, State: Pressed, Modifiers: mods})
		}
		if inpututil.IsMouseButtonJustReleased(b.ebiten) {
			buf = append(buf, Event{Type: EventMouseInput, Button: b.button, State: Released, Modifiers: mods})
		}
	}

	if dx, dy := ebiten.Wheel(); dx != 0 || dy != 0 {
		buf = append(buf, Event{Type: EventMouseWheel, Delta: graphics.Vector{X: dx, Y: dy}, Modifiers: mods})
	}
	return buf
}

func (p *Poller) pollKeyboard(buf []Event, mods KeyModifiers) []Event {
	p.keys = inpututil.AppendJustPressedKeys(p.keys[:0])
	for _, k := range p.keys {
		buf = append(buf, Event{Type: EventKeyboardInput, Key: k, State: Pressed, Modifiers: mods})
	}
	p.keys = inpututil.AppendJustReleasedKeys(p.keys[:0])
	for _, k := range p.keys {
		buf = append(buf, Event{Type: EventKeyboardInput, Key: k, State: Released, Modifiers: mods})
	}

	p.chars = ebiten.AppendInputChars(p.chars[:0])
	for _, r := range p.chars {
		buf = append(buf, Event{Type: EventTextInput, Rune: r, Modifiers: mods})
	}
	return buf
}

// Cursor returns the last cursor position reported by Poll.
func (p *Poller) Cursor() graphics.Point {
	return p.cursor
}

// readModifiers reads the current keyboard modifier state.
func readModifiers() KeyModifiers {
	var mods KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		mods |= ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		mods |= ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		mods |= ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		mods |= ModMeta
	}
	return mods
}
