// Package software renders package ui widgets into an *image.RGBA on the
// CPU. It needs no graphics device, which makes it suitable for headless
// tests, thumbnails, and golden images.
package software

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"
	"sync"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/phanxgames/coffee/graphics"
	"github.com/phanxgames/coffee/ui"
)

// Colors used by the widgets.
var (
	ButtonColors = map[ui.ButtonClass]graphics.Color{
		ui.ButtonPrimary:   graphics.NewColorRGB8(0x4a, 0x78, 0xc9),
		ui.ButtonSecondary: graphics.NewColorRGB8(0x6b, 0x6b, 0x75),
		ui.ButtonPositive:  graphics.NewColorRGB8(0x3f, 0xa3, 0x5b),
	}
	FrameColor  = graphics.NewColorRGB8(0xdd, 0xdd, 0xdd)
	HoverColor  = graphics.NewColorRGB8(0xff, 0xff, 0xff)
	MarkColor   = graphics.NewColorRGB8(0x4a, 0x78, 0xc9)
	RailColor   = graphics.NewColorRGB8(0x99, 0x99, 0x99)
	PanelColor  = graphics.NewColorRGB8(0x22, 0x24, 0x2b)
	BorderColor = graphics.NewColorRGB8(0x55, 0x58, 0x62)
)

// Renderer draws immediately into its canvas.
type Renderer struct {
	canvas *image.RGBA
	font   *sfnt.Font

	mu    sync.Mutex
	faces map[float64]font.Face
}

var (
	regularOnce sync.Once
	regular     *sfnt.Font
	regularErr  error
)

// New returns a renderer with a width x height transparent canvas using the
// Go Regular font.
func New(width, height int) (*Renderer, error) {
	regularOnce.Do(func() {
		regular, regularErr = opentype.Parse(goregular.TTF)
	})
	if regularErr != nil {
		return nil, fmt.Errorf("software: parse font: %w", regularErr)
	}
	return NewWithFont(width, height, regular), nil
}

// NewWithFont is like New with a custom font.
func NewWithFont(width, height int, f *sfnt.Font) *Renderer {
	return &Renderer{
		canvas: image.NewRGBA(image.Rect(0, 0, width, height)),
		font:   f,
		faces:  make(map[float64]font.Face),
	}
}

// Canvas returns the image drawn so far.
func (r *Renderer) Canvas() *image.RGBA {
	return r.canvas
}

// Clear fills the canvas with c.
func (r *Renderer) Clear(c graphics.Color) {
	draw.Draw(r.canvas, r.canvas.Bounds(), image.NewUniform(c.RGBA()), image.Point{}, draw.Src)
}

// Resize replaces the canvas with a transparent one of the given size.
func (r *Renderer) Resize(width, height int) {
	r.canvas = image.NewRGBA(image.Rect(0, 0, width, height))
}

// Snapshot returns a copy of the canvas scaled by factor.
func (r *Renderer) Snapshot(factor float64) *image.NRGBA {
	if factor == 1 {
		return imaging.Clone(r.canvas)
	}
	b := r.canvas.Bounds()
	w := max(int(math.Round(float64(b.Dx())*factor)), 1)
	h := max(int(math.Round(float64(b.Dy())*factor)), 1)
	return imaging.Resize(r.canvas, w, h, imaging.Lanczos)
}

// Save writes the canvas to path. The format follows the extension.
func (r *Renderer) Save(path string) error {
	if err := imaging.Save(r.canvas, path); err != nil {
		return fmt.Errorf("software: save %s: %w", path, err)
	}
	return nil
}

func (r *Renderer) face(size float64) font.Face {
	r.mu.Lock()
	defer r.mu.Unlock()
	if f, ok := r.faces[size]; ok {
		return f
	}
	f, err := opentype.NewFace(r.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		// Only invalid sizes fail; the font is already parsed.
		panic(fmt.Sprintf("software: face of size %v: %v", size, err))
	}
	r.faces[size] = f
	return f
}

func lineHeight(f font.Face) float64 {
	m := f.Metrics()
	return float64(m.Ascent+m.Descent) / 64
}

func advance(f font.Face, s string) float64 {
	return float64(font.MeasureString(f, s)) / 64
}

func (r *Renderer) MeasureText(content string, size, maxWidth float64) graphics.Size {
	f := r.face(size)
	lines := graphics.WrapText(content, maxWidth, func(s string) float64 { return advance(f, s) })
	w := 0.0
	for _, l := range lines {
		w = math.Max(w, advance(f, l))
	}
	return graphics.Size{Width: math.Ceil(w), Height: float64(len(lines)) * lineHeight(f)}
}

func (r *Renderer) DrawText(t ui.TextSpec) {
	f := r.face(t.Size)
	lines := graphics.WrapText(t.Content, t.Bounds.Width, func(s string) float64 { return advance(f, s) })
	if len(lines) == 0 {
		return
	}
	lh := lineHeight(f)
	ascent := float64(f.Metrics().Ascent) / 64
	y := t.Bounds.Y + t.VerticalAlignment.Align(t.Bounds.Height, float64(len(lines))*lh)

	d := font.Drawer{
		Dst:  r.canvas,
		Src:  image.NewUniform(t.Color.RGBA()),
		Face: f,
	}
	for i, line := range lines {
		x := t.Bounds.X + t.HorizontalAlignment.Align(t.Bounds.Width, advance(f, line))
		d.Dot = fixed.Point26_6{
			X: fixed.Int26_6(math.Round(x * 64)),
			Y: fixed.Int26_6(math.Round((y + float64(i)*lh + ascent) * 64)),
		}
		d.DrawString(line)
	}
}

func (r *Renderer) DrawButton(cursor graphics.Point, bounds graphics.Rectangle, state ui.ButtonState, label string, class ui.ButtonClass) ui.MouseCursor {
	hovered := bounds.Contains(cursor)
	c := ButtonColors[class]
	switch {
	case state.IsPressed:
		c = shade(c, 0.8)
	case hovered:
		c = shade(c, 1.15)
	}
	r.fill(bounds, c)
	r.fill(graphics.Rectangle{X: bounds.X, Y: bounds.Y + bounds.Height - 4, Width: bounds.Width, Height: 4}, shade(c, 0.7))
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

func (r *Renderer) DrawCheckbox(cursor graphics.Point, bounds, labelBounds graphics.Rectangle, checked bool) ui.MouseCursor {
	hovered := bounds.Contains(cursor) || labelBounds.Contains(cursor)
	frame := FrameColor
	if hovered {
		frame = HoverColor
	}
	box := inset(bounds, 2)
	r.fill(box, PanelColor)
	r.stroke(box, 2, frame)
	if checked {
		r.fill(inset(bounds, 7), MarkColor)
	}
	if hovered {
		return ui.CursorPointer
	}
	return ui.CursorDefault
}

func (r *Renderer) DrawRadio(cursor graphics.Point, bounds, boundsWithLabel graphics.Rectangle, selected bool) ui.MouseCursor {
	hovered := boundsWithLabel.Contains(cursor)
	frame := FrameColor
	if hovered {
		frame = HoverColor
	}
	center := bounds.Center()
	radius := math.Min(bounds.Width, bounds.Height)/2 - 1
	r.circle(center, radius, frame)
	r.circle(center, radius-2, PanelColor)
	if selected {
		r.circle(center, radius/2, MarkColor)
	}
	if hovered {
		return ui.CursorPointer
	}
	return ui.CursorDefault
}

func (r *Renderer) DrawSlider(cursor graphics.Point, bounds graphics.Rectangle, state ui.SliderState, min, max, value float64) ui.MouseCursor {
	const railHeight, markerWidth = 4, 9
	r.fill(graphics.Rectangle{
		X:      bounds.X,
		Y:      bounds.Y + (bounds.Height-railHeight)/2,
		Width:  bounds.Width,
		Height: railHeight,
	}, RailColor)

	t := 0.0
	if max > min {
		t = (value - min) / (max - min)
	}
	hovered := bounds.Contains(cursor)
	c := FrameColor
	switch {
	case state.IsDragging:
		c = MarkColor
	case hovered:
		c = HoverColor
	}
	r.fill(graphics.Rectangle{
		X:      bounds.X + t*(bounds.Width-markerWidth),
		Y:      bounds.Y,
		Width:  markerWidth,
		Height: bounds.Height,
	}, c)

	switch {
	case state.IsDragging:
		return ui.CursorGrabbing
	case hovered:
		return ui.CursorGrab
	}
	return ui.CursorDefault
}

func (r *Renderer) DrawPanel(bounds graphics.Rectangle) {
	r.fill(bounds, BorderColor)
	r.fill(inset(bounds, 2), PanelColor)
}

// DrawImage resamples img to the bounds and composites it over the canvas.
func (r *Renderer) DrawImage(img image.Image, bounds graphics.Rectangle) {
	rect := pixelRect(bounds)
	if rect.Empty() {
		return
	}
	src := img
	if sb := img.Bounds(); sb.Dx() != rect.Dx() || sb.Dy() != rect.Dy() {
		src = imaging.Resize(img, rect.Dx(), rect.Dy(), imaging.Lanczos)
	}
	draw.Draw(r.canvas, rect, src, src.Bounds().Min, draw.Over)
}

// Explain outlines every layout box with 1px borders.
func (r *Renderer) Explain(layout ui.Layout, c graphics.Color) {
	layout.Walk(func(_ int, l ui.Layout) {
		r.stroke(l.Bounds, 1, c)
	})
}

func (r *Renderer) fill(b graphics.Rectangle, c graphics.Color) {
	draw.Draw(r.canvas, pixelRect(b), image.NewUniform(c.RGBA()), image.Point{}, draw.Over)
}

func (r *Renderer) stroke(b graphics.Rectangle, w float64, c graphics.Color) {
	r.fill(graphics.Rectangle{X: b.X, Y: b.Y, Width: b.Width, Height: w}, c)
	r.fill(graphics.Rectangle{X: b.X, Y: b.Y + b.Height - w, Width: b.Width, Height: w}, c)
	r.fill(graphics.Rectangle{X: b.X, Y: b.Y + w, Width: w, Height: b.Height - 2*w}, c)
	r.fill(graphics.Rectangle{X: b.X + b.Width - w, Y: b.Y + w, Width: w, Height: b.Height - 2*w}, c)
}

// circle fills a disc, approximated with four cubic Bézier arcs.
func (r *Renderer) circle(center graphics.Point, radius float64, c graphics.Color) {
	if radius <= 0 {
		return
	}
	size := int(math.Ceil(2*radius)) + 2
	ox := int(math.Floor(center.X - radius - 1))
	oy := int(math.Floor(center.Y - radius - 1))
	cx := float32(center.X - float64(ox))
	cy := float32(center.Y - float64(oy))
	rr := float32(radius)
	k := rr * 0.5522848

	z := vector.NewRasterizer(size, size)
	z.MoveTo(cx+rr, cy)
	z.CubeTo(cx+rr, cy+k, cx+k, cy+rr, cx, cy+rr)
	z.CubeTo(cx-k, cy+rr, cx-rr, cy+k, cx-rr, cy)
	z.CubeTo(cx-rr, cy-k, cx-k, cy-rr, cx, cy-rr)
	z.CubeTo(cx+k, cy-rr, cx+rr, cy-k, cx+rr, cy)
	z.ClosePath()
	z.Draw(r.canvas, image.Rect(ox, oy, ox+size, oy+size), image.NewUniform(c.RGBA()), image.Point{})
}

func pixelRect(b graphics.Rectangle) image.Rectangle {
	return image.Rect(
		int(math.Round(b.X)), int(math.Round(b.Y)),
		int(math.Round(b.X+b.Width)), int(math.Round(b.Y+b.Height)),
	)
}

func inset(r graphics.Rectangle, d float64) graphics.Rectangle {
	return graphics.Rectangle{X: r.X + d, Y: r.Y + d, Width: r.Width - 2*d, Height: r.Height - 2*d}
}

func shade(c graphics.Color, f float64) graphics.Color {
	return graphics.Color{R: min(c.R*f, 1), G: min(c.G*f, 1), B: min(c.B*f, 1), A: c.A}
}

// At returns the color of the canvas pixel at (x, y), unpremultiplied.
func (r *Renderer) At(x, y int) color.NRGBA {
	return color.NRGBAModel.Convert(r.canvas.At(x, y)).(color.NRGBA)
}
