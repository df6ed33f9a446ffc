package basic

import (
	"image"

	"github.com/phanxgames/coffee/ui"
)

// Widgets bound to *Renderer. Games that use this renderer only name the
// message type:
//
//	func (m *Menu) Layout(w *graphics.Window) basic.Element[Message] {
//		return basic.NewColumn[Message]().Push(basic.NewButton[Message](&m.play, "Play"))
//	}
type (
	Element[M any]  = ui.Element[M, *Renderer]
	Column[M any]   = ui.Column[M, *Renderer]
	Row[M any]      = ui.Row[M, *Renderer]
	Panel[M any]    = ui.Panel[M, *Renderer]
	Text[M any]     = ui.Text[M, *Renderer]
	Button[M any]   = ui.Button[M, *Renderer]
	Checkbox[M any] = ui.Checkbox[M, *Renderer]
	Radio[M any]    = ui.Radio[M, *Renderer]
	Slider[M any]   = ui.Slider[M, *Renderer]
	Image[M any]    = ui.Image[M, *Renderer]
	Space[M any]    = ui.Space[M, *Renderer]

	UserInterface[M any] = ui.UserInterface[M, *Renderer]
)

func NewElement[M any](w ui.Widget[M, *Renderer]) Element[M] {
	return ui.NewElement(w)
}

func NewColumn[M any]() *Column[M] { return ui.NewColumn[M, *Renderer]() }

func NewRow[M any]() *Row[M] { return ui.NewRow[M, *Renderer]() }

func NewPanel[M any](child ui.Widget[M, *Renderer]) *Panel[M] {
	return ui.NewPanel(child)
}

func NewText[M any](content string) *Text[M] { return ui.NewText[M, *Renderer](content) }

func NewButton[M any](state *ui.ButtonState, label string) *Button[M] {
	return ui.NewButton[M, *Renderer](state, label)
}

func NewCheckbox[M any](checked bool, label string, onToggle func(bool) M) *Checkbox[M] {
	return ui.NewCheckbox[M, *Renderer](checked, label, onToggle)
}

func NewRadio[M any, V comparable](value V, label string, selected *V, f func(V) M) *Radio[M] {
	return ui.NewRadio[M, *Renderer](value, label, selected, f)
}

func NewSlider[M any](state *ui.SliderState, min, max, value float64, onChange func(float64) M) *Slider[M] {
	return ui.NewSlider[M, *Renderer](state, min, max, value, onChange)
}

func NewImage[M any](img image.Image) *Image[M] { return ui.NewImage[M, *Renderer](img) }

func NewSpace[M any]() *Space[M] { return ui.NewSpace[M, *Renderer]() }
