// Package basic is the Ebitengine renderer for package ui. It draws every
// widget from a sprite sheet with a single batch and queues text on top.
package basic

import (
	"image"
	"math"

	"github.com/phanxgames/coffee/graphics"
	"github.com/phanxgames/coffee/ui"
)

// Renderer queues widget drawing for a frame. Call Flush once the user
// interface has been drawn.
//
// Sprites are flushed first, then images, then text, then debug outlines.
type Renderer struct {
	sheet   *graphics.Canvas
	sprites *graphics.Batch
	font    *graphics.Font

	texts    []graphics.Text
	quads    []imageQuad
	images   map[image.Image]*graphics.Image
	outlines *graphics.Batch
}

type imageQuad struct {
	image *graphics.Image
	quad  graphics.Quad
}

// New returns a renderer using font for every label. A nil font selects the
// Go Regular face.
func New(font *graphics.Font) (*Renderer, error) {
	if font == nil {
		var err error
		if font, err = graphics.DefaultFont(); err != nil {
			return nil, err
		}
	}
	sheet := newSheet()
	return &Renderer{
		sheet:    sheet,
		sprites:  graphics.NewBatch(sheet.Image()),
		font:     font,
		images:   make(map[image.Image]*graphics.Image),
		outlines: graphics.NewColorBatch(),
	}, nil
}

// Font returns the font used for labels.
func (r *Renderer) Font() *graphics.Font {
	return r.font
}

func (r *Renderer) MeasureText(content string, size, maxWidth float64) graphics.Size {
	w, h := r.font.Measure(content, size, maxWidth)
	return graphics.Size{Width: w, Height: h}
}

func (r *Renderer) DrawText(t ui.TextSpec) {
	r.texts = append(r.texts, graphics.Text{
		Content:             t.Content,
		Position:            t.Bounds.Position(),
		Bounds:              t.Bounds.Size(),
		Size:                t.Size,
		Color:               t.Color,
		HorizontalAlignment: t.HorizontalAlignment,
		VerticalAlignment:   t.VerticalAlignment,
	})
}

func (r *Renderer) DrawButton(cursor graphics.Point, bounds graphics.Rectangle, state ui.ButtonState, label string, class ui.ButtonClass) ui.MouseCursor {
	hovered := bounds.Contains(cursor)

	column := 0
	switch {
	case state.IsPressed:
		column = 2
	case hovered:
		column = 1
	}
	src := buttonSprite
	src.X += float64(column) * src.Width
	src.Y += float64(class) * src.Height

	r.threeSlice(src, bounds)
	r.DrawText(ui.TextSpec{
		Content:             label,
		Bounds:              bounds,
		Size:                20,
		Color:               graphics.ColorWhite,
		HorizontalAlignment: graphics.AlignCenter,
		VerticalAlignment:   graphics.AlignMiddle,
	})

	if hovered {
		return ui.CursorPointer
	}
	return ui.CursorDefault
}

// threeSlice stretches the middle column of src horizontally over bounds.
func (r *Renderer) threeSlice(src, bounds graphics.Rectangle) {
	sy := bounds.Height / src.Height
	r.sprites.Add(graphics.Sprite{
		Source:   graphics.Rectangle{X: src.X, Y: src.Y, Width: capWidth, Height: src.Height},
		Position: bounds.Position(),
		Scale:    graphics.Vector{X: 1, Y: sy},
	})
	r.sprites.Add(graphics.Sprite{
		Source:   graphics.Rectangle{X: src.X + capWidth, Y: src.Y, Width: 1, Height: src.Height},
		Position: graphics.Point{X: bounds.X + capWidth, Y: bounds.Y},
		Scale:    graphics.Vector{X: math.Max(bounds.Width-2*capWidth, 0), Y: sy},
	})
	r.sprites.Add(graphics.Sprite{
		Source:   graphics.Rectangle{X: src.X + src.Width - capWidth, Y: src.Y, Width: capWidth, Height: src.Height},
		Position: graphics.Point{X: bounds.X + bounds.Width - capWidth, Y: bounds.Y},
		Scale:    graphics.Vector{X: 1, Y: sy},
	})
}

// toggle draws the idle or hovered frame of a 3-cell toggle sprite and the
// mark when on.
func (r *Renderer) toggle(sprite graphics.Rectangle, hovered, on bool, at graphics.Point) {
	frame := sprite
	if hovered {
		frame.X += sprite.Width
	}
	r.sprites.Add(graphics.Sprite{Source: frame, Position: at})
	if on {
		mark := sprite
		mark.X += 2 * sprite.Width
		r.sprites.Add(graphics.Sprite{Source: mark, Position: at})
	}
}

func (r *Renderer) DrawCheckbox(cursor graphics.Point, bounds, labelBounds graphics.Rectangle, checked bool) ui.MouseCursor {
	hovered := bounds.Contains(cursor) || labelBounds.Contains(cursor)
	r.toggle(checkboxSprite, hovered, checked, bounds.Position())
	if hovered {
		return ui.CursorPointer
	}
	return ui.CursorDefault
}

func (r *Renderer) DrawRadio(cursor graphics.Point, bounds, boundsWithLabel graphics.Rectangle, selected bool) ui.MouseCursor {
	hovered := boundsWithLabel.Contains(cursor)
	r.toggle(radioSprite, hovered, selected, bounds.Position())
	if hovered {
		return ui.CursorPointer
	}
	return ui.CursorDefault
}

func (r *Renderer) DrawSlider(cursor graphics.Point, bounds graphics.Rectangle, state ui.SliderState, min, max, value float64) ui.MouseCursor {
	r.sprites.Add(graphics.Sprite{
		Source: sliderRail,
		Position: graphics.Point{
			X: bounds.X,
			Y: bounds.Y + (bounds.Height-sliderRail.Height)/2,
		},
		Scale: graphics.Vector{X: bounds.Width, Y: 1},
	})

	t := 0.0
	if max > min {
		t = (value - min) / (max - min)
	}
	marker := sliderMarker
	hovered := bounds.Contains(cursor)
	switch {
	case state.IsDragging:
		marker.X += 2 * marker.Width
	case hovered:
		marker.X += marker.Width
	}
	r.sprites.Add(graphics.Sprite{
		Source: marker,
		Position: graphics.Point{
			X: bounds.X + t*(bounds.Width-marker.Width),
			Y: bounds.Y + (bounds.Height-marker.Height)/2,
		},
	})

	switch {
	case state.IsDragging:
		return ui.CursorGrabbing
	case hovered:
		return ui.CursorGrab
	}
	return ui.CursorDefault
}

// DrawPanel nine-slices the panel sprite over bounds.
func (r *Renderer) DrawPanel(bounds graphics.Rectangle) {
	const b = panelBorder
	src := panelSprite
	xs := [3]float64{bounds.X, bounds.X + b, bounds.X + bounds.Width - b}
	ys := [3]float64{bounds.Y, bounds.Y + b, bounds.Y + bounds.Height - b}
	ws := [3]float64{b, math.Max(bounds.Width-2*b, 0), b}
	hs := [3]float64{b, math.Max(bounds.Height-2*b, 0), b}
	srcOff := [3]float64{0, b, b + 1}
	srcLen := [3]float64{b, 1, b}

	for j := range 3 {
		for i := range 3 {
			if ws[i] == 0 || hs[j] == 0 {
				continue
			}
			r.sprites.Add(graphics.Sprite{
				Source: graphics.Rectangle{
					X: src.X + srcOff[i], Y: src.Y + srcOff[j],
					Width: srcLen[i], Height: srcLen[j],
				},
				Position: graphics.Point{X: xs[i], Y: ys[j]},
				Scale:    graphics.Vector{X: ws[i] / srcLen[i], Y: hs[j] / srcLen[j]},
			})
		}
	}
}

// DrawImage uploads img on first use and stretches it over bounds.
func (r *Renderer) DrawImage(img image.Image, bounds graphics.Rectangle) {
	gi, ok := r.images[img]
	if !ok {
		gi = graphics.NewImage(img)
		r.images[img] = gi
	}
	r.quads = append(r.quads, imageQuad{
		image: gi,
		quad:  graphics.Quad{Position: bounds.Position(), Size: bounds.Size()},
	})
}

// Explain outlines every layout box with 1px borders.
func (r *Renderer) Explain(layout ui.Layout, color graphics.Color) {
	layout.Walk(func(_ int, l ui.Layout) {
		b := l.Bounds
		r.outlines.AddRectangle(graphics.Rectangle{X: b.X, Y: b.Y, Width: b.Width, Height: 1}, color)
		r.outlines.AddRectangle(graphics.Rectangle{X: b.X, Y: b.Y + b.Height - 1, Width: b.Width, Height: 1}, color)
		r.outlines.AddRectangle(graphics.Rectangle{X: b.X, Y: b.Y, Width: 1, Height: b.Height}, color)
		r.outlines.AddRectangle(graphics.Rectangle{X: b.X + b.Width - 1, Y: b.Y, Width: 1, Height: b.Height}, color)
	})
}

// Forget drops the uploaded copy of img. Call it when an image shown by an
// Image widget will not be drawn again.
func (r *Renderer) Forget(img image.Image) {
	if gi, ok := r.images[img]; ok {
		gi.Ebiten().Deallocate()
		delete(r.images, img)
	}
}

// Pending returns the number of queued sprites and text blocks.
func (r *Renderer) Pending() (sprites, texts int) {
	return r.sprites.Len(), len(r.texts)
}

// Flush draws everything queued since the last flush on frame.
func (r *Renderer) Flush(frame *graphics.Frame) {
	r.FlushTo(frame.AsTarget())
}

// FlushTo draws everything queued since the last flush on target.
func (r *Renderer) FlushTo(target *graphics.Target) {
	r.sprites.Draw(target)
	for _, q := range r.quads {
		q.image.Draw(q.quad, target)
	}
	for _, t := range r.texts {
		r.font.Draw(target, t)
	}
	r.outlines.Draw(target)

	r.sprites.Clear()
	r.outlines.Clear()
	r.quads = r.quads[:0]
	clear(r.texts)
	r.texts = r.texts[:0]
}
