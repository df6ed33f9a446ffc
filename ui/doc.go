// Package ui is a retained-mode widget toolkit with a flexbox layout pass.
//
// Each frame the application builds a tree of widgets describing its state:
//
//	func (g *Game) Layout(w *graphics.Window) ui.Element[Message, *basic.Renderer] {
//		return ui.NewElement(ui.NewColumn[Message, *basic.Renderer]().
//			Width(300).
//			Spacing(30).
//			Push(ui.NewButton[Message, *basic.Renderer](&g.play, "Play").OnPress(PlayPressed)).
//			Push(ui.NewButton[Message, *basic.Renderer](&g.quit, "Quit").OnPress(QuitPressed)))
//	}
//
// Build turns the tree into a UserInterface: every widget describes a Node,
// and Solve resolves the Node tree into a Layout of absolute rectangles.
// The tree is hashed first, so an unchanged tree at an unchanged size reuses
// the previous Layout. Update routes input events through the widgets in
// tree order and collects the messages they emit; Draw walks the tree again,
// drawing through the renderer and folding the mouse cursor hints.
//
// Widgets are generic over the message type M and the renderer type R. A
// widget only constrains R to the capability it needs (TextRenderer,
// ButtonRenderer, ...), so any renderer implementing those capabilities can
// draw it.
package ui
