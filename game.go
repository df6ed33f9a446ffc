package coffee

import (
	"github.com/phanxgames/coffee/graphics"
	"github.com/phanxgames/coffee/input"
	"github.com/phanxgames/coffee/ui"
)

// Game is driven by the run loop. Interact and Update run once per tick,
// Draw once per frame.
type Game interface {
	// Interact reads the input gathered since the previous tick.
	Interact(in *input.KeyboardAndMouse, w *graphics.Window)
	// Update advances the game by one tick. A non-nil error stops the loop
	// and is returned by Run.
	Update(w *graphics.Window) error
	// Draw renders the game. Use t to interpolate between ticks.
	Draw(f *graphics.Frame, t *Timer)
}

// Finisher is implemented by games that can end by themselves. The loop
// stops after the first tick where IsFinished returns true.
type Finisher interface {
	IsFinished() bool
}

// UIRenderer is a renderer that queues widget drawing and submits it to a
// frame.
type UIRenderer interface {
	Flush(frame *graphics.Frame)
}

// UserInterface is a Game with a widget tree. Layout is called every tick
// and every frame; React receives each message produced by input, in order,
// before Update.
type UserInterface[M any, R UIRenderer] interface {
	Game
	Layout(w *graphics.Window) ui.Widget[M, R]
	React(msg M, w *graphics.Window)
}
