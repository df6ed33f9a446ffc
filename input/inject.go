package input

import "github.com/phanxgames/coffee/graphics"

// InjectPress queues a left button press at the given screen coordinates.
// The step is consumed on the next Poll.
func (p *Poller) InjectPress(x, y float64) {
	p.injectQueue = append(p.injectQueue, []Event{
		CursorMovedEvent(graphics.Point{X: x, Y: y}),
		MouseInputEvent(MouseButtonLeft, Pressed),
	})
}

// InjectMove queues a cursor move to the given screen coordinates. Use it
// between InjectPress and InjectRelease to simulate a drag.
func (p *Poller) InjectMove(x, y float64) {
	p.injectQueue = append(p.injectQueue, []Event{
		CursorMovedEvent(graphics.Point{X: x, Y: y}),
	})
}

// InjectRelease queues a left button release at the given screen coordinates.
func (p *Poller) InjectRelease(x, y float64) {
	p.injectQueue = append(p.injectQueue, []Event{
		CursorMovedEvent(graphics.Point{X: x, Y: y}),
		MouseInputEvent(MouseButtonLeft, Released),
	})
}

// InjectClick queues a press followed by a release at the same screen
// coordinates. Consumes two polls.
func (p *Poller) InjectClick(x, y float64) {
	p.InjectPress(x, y)
	p.InjectRelease(x, y)
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY), linearly
// interpolated moves over frames-2 intermediate polls, and release at
// (toX, toY). Minimum frames is 2 (press + release).
func (p *Poller) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	p.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		p.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	p.InjectRelease(toX, toY)
}

// InjectKey queues a key press and release.
func (p *Poller) InjectKey(key Key) {
	p.injectQueue = append(p.injectQueue,
		[]Event{KeyboardInputEvent(key, Pressed)},
		[]Event{KeyboardInputEvent(key, Released)},
	)
}

// Pending returns the number of queued injection steps.
func (p *Poller) Pending() int {
	return len(p.injectQueue)
}

func (p *Poller) popInjected() ([]Event, bool) {
	if len(p.injectQueue) == 0 {
		return nil, false
	}
	step := p.injectQueue[0]
	copy(p.injectQueue, p.injectQueue[1:])
	p.injectQueue = p.injectQueue[:len(p.injectQueue)-1]
	return step, true
}
