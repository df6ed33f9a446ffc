package graphics

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Target is a rendering destination with a current transformation.
//
// Obtain one from a Frame or a Canvas. Use Transform to emulate a
// transformation stack:
//
//	target := frame.AsTarget()
//	camera := target.Transform(graphics.Scale(2).Mul(graphics.Translate(offset)))
//	// draw the scene on camera, the HUD on target
type Target struct {
	img            *ebiten.Image
	transformation Transformation
}

func newTarget(img *ebiten.Image) *Target {
	return &Target{img: img, transformation: Identity()}
}

// Transform returns a new Target whose transformation is the current one
// multiplied by t. The receiver is not modified.
func (t *Target) Transform(tr Transformation) *Target {
	return &Target{img: t.img, transformation: t.transformation.Mul(tr)}
}

// Transformation returns the current transformation.
func (t *Target) Transformation() Transformation {
	return t.transformation
}

// Clear fills the whole target with c.
func (t *Target) Clear(c Color) {
	t.img.Fill(c.RGBA())
}

// Ebiten returns the underlying destination image.
func (t *Target) Ebiten() *ebiten.Image {
	return t.img
}

// DrawQuad draws a region of img on the target.
func (t *Target) DrawQuad(img *Image, q Quad) {
	src := q.sourceRect(img)
	if src.Width <= 0 || src.Height <= 0 {
		return
	}
	sub := img.img.SubImage(image.Rect(
		int(src.X), int(src.Y),
		int(src.X+src.Width), int(src.Y+src.Height),
	)).(*ebiten.Image)

	w, h := q.Size.Width, q.Size.Height
	if w == 0 && h == 0 {
		w, h = src.Width, src.Height
	}

	var op ebiten.DrawImageOptions
	op.GeoM.Scale(w/src.Width, h/src.Height)
	op.GeoM.Translate(q.Position.X, q.Position.Y)
	op.GeoM.Concat(t.transformation.GeoM())
	applyTint(&op.ColorScale, q.Color)
	t.img.DrawImage(sub, &op)
}

// FillRectangle draws a solid rectangle.
func (t *Target) FillRectangle(r Rectangle, c Color) {
	if r.Width <= 0 || r.Height <= 0 {
		return
	}
	t.DrawQuad(whitePixel, Quad{
		Position: r.Position(),
		Size:     r.Size(),
		Color:    c,
	})
}

// StrokeRectangle draws the outline of a rectangle with the given line width.
func (t *Target) StrokeRectangle(r Rectangle, width float64, c Color) {
	t.FillRectangle(Rectangle{r.X, r.Y, r.Width, width}, c)
	t.FillRectangle(Rectangle{r.X, r.Y + r.Height - width, r.Width, width}, c)
	t.FillRectangle(Rectangle{r.X, r.Y + width, width, r.Height - 2*width}, c)
	t.FillRectangle(Rectangle{r.X + r.Width - width, r.Y + width, width, r.Height - 2*width}, c)
}

// FillCircle draws a solid circle. Only the translation and uniform scale
// of the current transformation are honored.
func (t *Target) FillCircle(center Point, radius float64, c Color) {
	p := t.transformation.TransformPoint(center)
	s := t.transformation.TransformVector(Vector{X: radius}).X
	vector.DrawFilledCircle(t.img, float32(p.X), float32(p.Y), float32(s), c.RGBA(), true)
}

// StrokeCircle draws the outline of a circle.
func (t *Target) StrokeCircle(center Point, radius, width float64, c Color) {
	p := t.transformation.TransformPoint(center)
	s := t.transformation.TransformVector(Vector{X: radius}).X
	vector.StrokeCircle(t.img, float32(p.X), float32(p.Y), float32(s), float32(width), c.RGBA(), true)
}

// applyTint writes a premultiplied color scale. The zero Color means no tint.
func applyTint(cs *ebiten.ColorScale, c Color) {
	cs.Reset()
	if c == (Color{}) {
		return
	}
	a := float32(c.A)
	cs.Scale(float32(c.R)*a, float32(c.G)*a, float32(c.B)*a, a)
}
