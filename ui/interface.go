package ui

import (
	"github.com/phanxgames/coffee/graphics"
	"github.com/phanxgames/coffee/input"
)

// Cache remembers the layout of the previous build. Keep one per user
// interface and pass it to every Build.
type Cache struct {
	hash   uint64
	size   graphics.Size
	layout Layout
	valid  bool

	hits, misses int
}

// Stats returns how many builds reused or recomputed the layout.
func (c *Cache) Stats() (hits, misses int) {
	return c.hits, c.misses
}

// Invalidate forces the next build to solve the layout again.
func (c *Cache) Invalidate() {
	c.valid = false
}

// UserInterface is a widget tree paired with its resolved layout for one
// frame.
type UserInterface[M, R any] struct {
	root   Element[M, R]
	layout Layout
	hash   uint64
	reused bool
}

// Build hashes root and reuses the cached layout when neither the hash nor
// the size changed. Otherwise the node tree is rebuilt and solved. cache may
// be nil.
func Build[M, R any](root Widget[M, R], r R, size graphics.Size, cache *Cache) *UserInterface[M, R] {
	ui := &UserInterface[M, R]{root: NewElement(root), hash: Hash(root)}

	if cache != nil && cache.valid && cache.hash == ui.hash && cache.size == size {
		ui.layout = cache.layout
		ui.reused = true
		cache.hits++
		return ui
	}

	ui.layout = Solve(root.Node(r), size)
	if cache != nil {
		cache.hash = ui.hash
		cache.size = size
		cache.layout = ui.layout
		cache.valid = true
		cache.misses++
	}
	return ui
}

// Layout returns the resolved layout of the root.
func (ui *UserInterface[M, R]) Layout() Layout {
	return ui.layout
}

// Hash returns the digest of the widget tree.
func (ui *UserInterface[M, R]) Hash() uint64 {
	return ui.hash
}

// Reused reports whether the layout came from the cache.
func (ui *UserInterface[M, R]) Reused() bool {
	return ui.reused
}

// Update dispatches events in order and returns the produced messages,
// appended to messages. cursor is the position before the first event;
// cursor moves in events update it for the following ones.
func (ui *UserInterface[M, R]) Update(cursor graphics.Point, events []input.Event, messages []M) []M {
	for _, e := range events {
		if e.Type == input.EventCursorMoved {
			cursor = e.Position
		}
		messages = ui.root.OnEvent(e, ui.layout, cursor, messages)
	}
	return messages
}

// Draw draws the tree and returns the aggregated cursor hint.
func (ui *UserInterface[M, R]) Draw(r R, cursor graphics.Point) MouseCursor {
	return ui.root.Draw(r, ui.layout, cursor)
}

// Explain outlines every layout box when r supports it.
func (ui *UserInterface[M, R]) Explain(r R, color graphics.Color) {
	if e, ok := any(r).(Explainer); ok {
		e.Explain(ui.layout, color)
	}
}
