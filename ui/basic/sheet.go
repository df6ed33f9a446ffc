package basic

import (
	"github.com/phanxgames/coffee/graphics"
)

// Regions of the sprite sheet. The sheet is painted once at startup so the
// renderer ships without image assets.
var (
	// buttonSprite is the first 3-slice of a button: a 6px left cap, a 1px
	// stretchable middle, and a 6px right cap. Each class is a row and each
	// interaction state a column of 13px.
	buttonSprite = graphics.Rectangle{X: 0, Y: 0, Width: 13, Height: 50}

	// checkboxSprite holds idle, hovered, and the check mark side by side.
	checkboxSprite = graphics.Rectangle{X: 98, Y: 0, Width: 28, Height: 28}

	// radioSprite holds idle, hovered, and the selection dot side by side.
	radioSprite = graphics.Rectangle{X: 98, Y: 28, Width: 28, Height: 28}

	// sliderRail is stretched over the width of the slider.
	sliderRail = graphics.Rectangle{X: 98, Y: 56, Width: 1, Height: 4}

	// sliderMarker holds idle, hovered, and dragged markers.
	sliderMarker = graphics.Rectangle{X: 98, Y: 60, Width: 9, Height: 25}

	// panelSprite is a 3x3 nine-slice with 6px borders and a 1px center.
	panelSprite = graphics.Rectangle{X: 0, Y: 150, Width: 13, Height: 13}
)

const (
	capWidth    = 6
	panelBorder = 6
	sheetWidth  = 256
	sheetHeight = 256
)

// Palette used to paint the sheet.
var (
	colorPrimary   = graphics.NewColorRGB8(0x4a, 0x78, 0xc9)
	colorSecondary = graphics.NewColorRGB8(0x6b, 0x6b, 0x75)
	colorPositive  = graphics.NewColorRGB8(0x3f, 0xa3, 0x5b)
	colorFrame     = graphics.NewColorRGB8(0xdd, 0xdd, 0xdd)
	colorHover     = graphics.NewColorRGB8(0xff, 0xff, 0xff)
	colorMark      = graphics.NewColorRGB8(0x4a, 0x78, 0xc9)
	colorRail      = graphics.NewColorRGB8(0x99, 0x99, 0x99)
	colorPanel     = graphics.NewColorRGB8(0x22, 0x24, 0x2b)
	colorBorder    = graphics.NewColorRGB8(0x55, 0x58, 0x62)
)

// newSheet paints every sprite on a fresh canvas.
func newSheet() *graphics.Canvas {
	sheet := graphics.NewCanvas(sheetWidth, sheetHeight)
	t := sheet.AsTarget()

	for class, base := range []graphics.Color{colorPrimary, colorSecondary, colorPositive} {
		for state, shade := range []float64{1, 1.15, 0.8} {
			x := buttonSprite.X + float64(state)*buttonSprite.Width
			y := buttonSprite.Y + float64(class)*buttonSprite.Height
			paintButton(t, graphics.Rectangle{X: x, Y: y, Width: buttonSprite.Width, Height: buttonSprite.Height}, shadeColor(base, shade))
		}
	}

	for i, c := range []graphics.Color{colorFrame, colorHover} {
		box := checkboxSprite
		box.X += float64(i) * box.Width
		t.FillRectangle(inset(box, 2), colorPanel)
		t.StrokeRectangle(inset(box, 2), 2, c)

		dot := radioSprite
		dot.X += float64(i) * dot.Width
		t.FillCircle(dot.Center(), 12, colorPanel)
		t.StrokeCircle(dot.Center(), 12, 2, c)
	}
	check := checkboxSprite
	check.X += 2 * check.Width
	t.FillRectangle(inset(check, 7), colorMark)
	dot := radioSprite
	dot.X += 2 * dot.Width
	t.FillCircle(dot.Center(), 6, colorMark)

	t.FillRectangle(sliderRail, colorRail)
	for i, c := range []graphics.Color{colorFrame, colorHover, colorMark} {
		m := sliderMarker
		m.X += float64(i) * m.Width
		t.FillRectangle(m, c)
	}

	t.FillRectangle(panelSprite, colorBorder)
	t.FillRectangle(inset(panelSprite, 2), colorPanel)
	return sheet
}

func paintButton(t *graphics.Target, r graphics.Rectangle, c graphics.Color) {
	t.FillRectangle(graphics.Rectangle{X: r.X, Y: r.Y + 2, Width: r.Width, Height: r.Height - 4}, c)
	t.FillRectangle(graphics.Rectangle{X: r.X + 2, Y: r.Y, Width: r.Width - 4, Height: r.Height}, c)
	t.FillRectangle(graphics.Rectangle{X: r.X, Y: r.Y + r.Height - 4, Width: r.Width, Height: 4}, shadeColor(c, 0.7))
}

func shadeColor(c graphics.Color, f float64) graphics.Color {
	return graphics.Color{R: min(c.R*f, 1), G: min(c.G*f, 1), B: min(c.B*f, 1), A: c.A}
}

func inset(r graphics.Rectangle, d float64) graphics.Rectangle {
	return graphics.Rectangle{X: r.X + d, Y: r.Y + d, Width: r.Width - 2*d, Height: r.Height - 2*d}
}
