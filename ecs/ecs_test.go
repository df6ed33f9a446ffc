package ecs

import (
	"reflect"
	"testing"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"

	"github.com/phanxgames/coffee/graphics"
	"github.com/phanxgames/coffee/input"
	"github.com/phanxgames/coffee/ui"
	"github.com/phanxgames/coffee/ui/software"
)

type message string

func TestMessagesArePublishedInOrder(t *testing.T) {
	world := donburi.NewWorld()
	msgs := NewMessages[message](world)

	var received []message
	msgs.Subscribe(func(_ donburi.World, m message) {
		received = append(received, m)
	})

	msgs.React("play", nil)
	msgs.React("quit", nil)
	if len(received) != 0 {
		t.Fatal("messages should be queued until Process")
	}
	msgs.Process()
	if !reflect.DeepEqual(received, []message{"play", "quit"}) {
		t.Errorf("received = %v", received)
	}
}

func TestMessagesMultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	msgs := NewMessages[message](world)

	var count1, count2 int
	msgs.Subscribe(func(donburi.World, message) { count1++ })
	msgs.Subscribe(func(donburi.World, message) { count2++ })

	msgs.React("play", nil)
	events.ProcessAllEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}

func TestPublishInput(t *testing.T) {
	world := donburi.NewWorld()
	var received []input.Event
	InputEventType.Subscribe(world, func(_ donburi.World, e input.Event) {
		received = append(received, e)
	})

	PublishInput(world, []input.Event{
		input.CursorMovedEvent(graphics.Point{X: 100, Y: 200}),
		input.MouseInputEvent(input.MouseButtonLeft, input.Pressed),
	})
	InputEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	if received[0].Type != input.EventCursorMoved || received[0].Position.X != 100 {
		t.Errorf("event 0: %+v", received[0])
	}
	if !received[1].IsPress(input.MouseButtonLeft) {
		t.Errorf("event 1: %+v", received[1])
	}
}

func TestWidgetStateLivesInWorld(t *testing.T) {
	world := donburi.NewWorld()
	play := NewButton(world)
	volume := NewSlider(world)
	msgs := NewMessages[message](world)

	r, err := software.New(400, 300)
	if err != nil {
		t.Fatal(err)
	}
	layout := func() ui.Widget[message, *software.Renderer] {
		return ui.NewColumn[message, *software.Renderer]().Width(300).
			Push(ui.NewButton[message, *software.Renderer](Button(world, play), "Play").OnPress("play")).
			Push(ui.NewSlider[message, *software.Renderer](Slider(world, volume), 0, 1, 0.5, func(float64) message { return "volume" }))
	}

	size := graphics.Size{Width: 400, Height: 300}
	u := ui.Build(layout(), r, size, nil)
	for _, m := range u.Update(graphics.Point{X: 10, Y: 10}, []input.Event{
		input.MouseInputEvent(input.MouseButtonLeft, input.Pressed),
	}, nil) {
		msgs.React(m, nil)
	}
	if !Button(world, play).IsPressed {
		t.Fatal("pressed state should be stored in the world")
	}

	u = ui.Build(layout(), r, size, nil)
	var got []message
	msgs.Subscribe(func(_ donburi.World, m message) { got = append(got, m) })
	for _, m := range u.Update(graphics.Point{X: 10, Y: 10}, []input.Event{
		input.MouseInputEvent(input.MouseButtonLeft, input.Released),
	}, nil) {
		msgs.React(m, nil)
	}
	msgs.Process()
	if !reflect.DeepEqual(got, []message{"play"}) {
		t.Errorf("messages = %v", got)
	}

	Slider(world, volume).IsDragging = true
	Button(world, play).IsPressed = true
	ResetWidgets(world)
	if Slider(world, volume).IsDragging || Button(world, play).IsPressed {
		t.Error("ResetWidgets should clear every state")
	}
}
