// Package coffee is an opinionated 2D game framework for [Ebitengine] with a
// retained-style user interface toolkit.
//
// A game implements [Game] and is started with [Run], or with [RunTask] when
// its assets are loaded through a [load.Task] while a loading screen shows
// progress:
//
//	task := load.Stage("Loading sprites", load.Map(load.Image("hero.png"), newGame))
//	bar, _ := load.NewProgressBar()
//	if err := coffee.RunTask(task, bar, coffee.RunConfig{Title: "My Game"}); err != nil {
//		log.Fatal(err)
//	}
//
// # User interfaces
//
// Games that also implement [UserInterface] describe their widgets every
// frame in Layout and receive the messages produced by user interaction in
// React. Widgets live in package ui; package ui/basic provides the
// Ebitengine renderer and type aliases bound to it:
//
//	func (m *Menu) Layout(w *graphics.Window) ui.Widget[Message, *basic.Renderer] {
//		return basic.NewColumn[Message]().Width(300).Spacing(30).
//			Push(basic.NewButton[Message](&m.play, "Play").OnPress(PlayPressed))
//	}
//
//	func (m *Menu) React(msg Message, w *graphics.Window) {
//		switch msg {
//		case PlayPressed:
//			m.playing = true
//		}
//	}
//
// Layouts are cached by hashing the widget tree: when neither the tree nor
// the window size changed, the previous layout is reused.
//
// # Debugging
//
// [RunConfig.Debug] prints per-frame timings to stderr, [RunConfig.ExplainUI]
// outlines every layout box, and [RunConfig.TestScript] replays a JSON script
// of clicks, drags, waits, and screenshots (see [LoadTestScript]).
//
// [Ebitengine]: https://ebitengine.org
package coffee
