// Package ecs connects coffee user interfaces to a [Donburi] world.
//
// UI messages and raw input events are published as typed Donburi events,
// and the persistent state of widgets (pressed buttons, dragged sliders) can
// live in components so that systems own it:
//
//	world := donburi.NewWorld()
//	msgs := ecs.NewMessages[Message](world)
//	play := ecs.NewButton(world)
//
//	func (g *Game) Layout(w *graphics.Window) ui.Widget[Message, *basic.Renderer] {
//		return basic.NewButton[Message](ecs.Button(g.world, g.play), "Play").OnPress(PlayPressed)
//	}
//
//	func (g *Game) React(m Message, w *graphics.Window) { g.msgs.React(m, w) }
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
