package coffee

import "time"

// Timer counts ticks and tells Draw how far the next tick is.
type Timer struct {
	tickDuration time.Duration
	ticks        uint64
	ticked       bool
	lastTick     time.Time
	now          func() time.Time
}

// NewTimer returns a timer for tps ticks per second.
func NewTimer(tps int) *Timer {
	if tps <= 0 {
		tps = 60
	}
	return &Timer{
		tickDuration: time.Second / time.Duration(tps),
		now:          time.Now,
	}
}

// TickDuration returns the duration of one tick.
func (t *Timer) TickDuration() time.Duration {
	return t.tickDuration
}

// Ticks returns the number of ticks since the game started.
func (t *Timer) Ticks() uint64 {
	return t.ticks
}

// HasTicked reports whether a tick happened since the previous frame.
func (t *Timer) HasTicked() bool {
	return t.ticked
}

// NextTickProximity returns the elapsed fraction of the current tick in
// [0, 1]. Use it to interpolate positions between ticks.
func (t *Timer) NextTickProximity() float64 {
	if t.ticks == 0 {
		return 0
	}
	p := float64(t.now().Sub(t.lastTick)) / float64(t.tickDuration)
	return max(0, min(p, 1))
}

func (t *Timer) tick() {
	t.ticks++
	t.ticked = true
	t.lastTick = t.now()
}

func (t *Timer) endFrame() {
	t.ticked = false
}
