package ecs

import (
	"github.com/yohamta/donburi"

	"github.com/phanxgames/coffee/ui"
)

// Components holding the persistent state of interactive widgets.
var (
	ButtonStateComponent = donburi.NewComponentType[ui.ButtonState]()
	SliderStateComponent = donburi.NewComponentType[ui.SliderState]()
)

// NewButton creates an entity holding the state of one button.
func NewButton(world donburi.World) donburi.Entity {
	return world.Create(ButtonStateComponent)
}

// NewSlider creates an entity holding the state of one slider.
func NewSlider(world donburi.World) donburi.Entity {
	return world.Create(SliderStateComponent)
}

// Button returns the button state stored on e. Fetch it again every frame:
// the pointer is only valid until the world changes the entity.
func Button(world donburi.World, e donburi.Entity) *ui.ButtonState {
	return ButtonStateComponent.Get(world.Entry(e))
}

// Slider returns the slider state stored on e.
func Slider(world donburi.World, e donburi.Entity) *ui.SliderState {
	return SliderStateComponent.Get(world.Entry(e))
}

// ResetWidgets releases every pressed button and dragged slider, e.g. when
// the window loses focus.
func ResetWidgets(world donburi.World) {
	ButtonStateComponent.Each(world, func(entry *donburi.Entry) {
		*ButtonStateComponent.Get(entry) = ui.ButtonState{}
	})
	SliderStateComponent.Each(world, func(entry *donburi.Entry) {
		*SliderStateComponent.Get(entry) = ui.SliderState{}
	})
}
