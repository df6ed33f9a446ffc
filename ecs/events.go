package ecs

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"

	"github.com/phanxgames/coffee/graphics"
	"github.com/phanxgames/coffee/input"
)

// InputEventType is the Donburi event type for raw input events.
var InputEventType = events.NewEventType[input.Event]()

// PublishInput queues evs on world, in order.
func PublishInput(world donburi.World, evs []input.Event) {
	for _, e := range evs {
		InputEventType.Publish(world, e)
	}
}

// Messages publishes the messages of a user interface on a world. Its React
// method has the signature expected by coffee.UserInterface.
type Messages[M any] struct {
	Type  *events.EventType[M]
	world donburi.World
}

// NewMessages creates a new event type for M bound to world.
func NewMessages[M any](world donburi.World) *Messages[M] {
	return &Messages[M]{Type: events.NewEventType[M](), world: world}
}

// React queues msg. Subscribers see it on the next Process.
func (m *Messages[M]) React(msg M, _ *graphics.Window) {
	m.Type.Publish(m.world, msg)
}

// Subscribe registers fn for every processed message.
func (m *Messages[M]) Subscribe(fn func(donburi.World, M)) {
	m.Type.Subscribe(m.world, fn)
}

// Process delivers the queued messages to the subscribers.
func (m *Messages[M]) Process() {
	m.Type.ProcessEvents(m.world)
}
