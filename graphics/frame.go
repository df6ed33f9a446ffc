package graphics

import "github.com/hajimehoshi/ebiten/v2"

// Frame is the screen image of the current frame.
type Frame struct {
	screen *ebiten.Image
}

// NewFrame wraps the screen image handed to ebiten.Game.Draw.
func NewFrame(screen *ebiten.Image) *Frame {
	return &Frame{screen: screen}
}

// Width returns the frame width in pixels.
func (f *Frame) Width() float64 {
	return float64(f.screen.Bounds().Dx())
}

// Height returns the frame height in pixels.
func (f *Frame) Height() float64 {
	return float64(f.screen.Bounds().Dy())
}

// Clear fills the frame with c.
func (f *Frame) Clear(c Color) {
	f.screen.Fill(c.RGBA())
}

// AsTarget returns a Target drawing on the frame with the identity
// transformation.
func (f *Frame) AsTarget() *Target {
	return newTarget(f.screen)
}

// Ebiten returns the underlying screen image.
func (f *Frame) Ebiten() *ebiten.Image {
	return f.screen
}

// Canvas is a persistent offscreen rendering target. It is owned by the
// caller and can be drawn like an Image.
type Canvas struct {
	image *Image
}

// NewCanvas creates an offscreen canvas of the given size.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{image: &Image{img: ebiten.NewImage(width, height)}}
}

// AsTarget returns a Target drawing on the canvas.
func (c *Canvas) AsTarget() *Target {
	return newTarget(c.image.img)
}

// Image returns the canvas contents as an Image.
func (c *Canvas) Image() *Image {
	return c.image
}

// Draw renders the canvas on target.
func (c *Canvas) Draw(q Quad, target *Target) {
	target.DrawQuad(c.image, q)
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int {
	return c.image.Width()
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int {
	return c.image.Height()
}
