package ui

import (
	"image"

	"github.com/phanxgames/coffee/graphics"
)

// Each widget kind names the smallest drawing capability it needs. A
// concrete renderer implements the union of the capabilities of the widgets
// it draws; widgets never name a concrete renderer.

// TextRenderer measures and draws text.
type TextRenderer interface {
	// MeasureText returns the size of content wrapped to maxWidth (which
	// may be +Inf).
	MeasureText(content string, size, maxWidth float64) graphics.Size
	DrawText(t TextSpec)
}

// TextSpec is a block of text to draw inside Bounds.
type TextSpec struct {
	Content             string
	Bounds              graphics.Rectangle
	Size                float64
	Color               graphics.Color
	HorizontalAlignment graphics.HorizontalAlignment
	VerticalAlignment   graphics.VerticalAlignment
}

// ButtonRenderer draws buttons.
type ButtonRenderer interface {
	TextRenderer
	DrawButton(cursor graphics.Point, bounds graphics.Rectangle, state ButtonState, label string, class ButtonClass) MouseCursor
}

// CheckboxRenderer draws the box of a checkbox. The label is drawn through
// TextRenderer.
type CheckboxRenderer interface {
	TextRenderer
	DrawCheckbox(cursor graphics.Point, bounds, labelBounds graphics.Rectangle, checked bool) MouseCursor
}

// RadioRenderer draws the button of a radio. boundsWithLabel covers the
// whole widget.
type RadioRenderer interface {
	TextRenderer
	DrawRadio(cursor graphics.Point, bounds, boundsWithLabel graphics.Rectangle, selected bool) MouseCursor
}

// SliderRenderer draws sliders.
type SliderRenderer interface {
	DrawSlider(cursor graphics.Point, bounds graphics.Rectangle, state SliderState, min, max, value float64) MouseCursor
}

// PanelRenderer draws the background of a panel.
type PanelRenderer interface {
	DrawPanel(bounds graphics.Rectangle)
}

// ImageRenderer draws images.
type ImageRenderer interface {
	DrawImage(img image.Image, bounds graphics.Rectangle)
}

// Explainer is implemented by renderers that can outline a layout tree for
// debugging.
type Explainer interface {
	Explain(layout Layout, color graphics.Color)
}
