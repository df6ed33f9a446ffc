package graphics

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Sprite is a region of a batch image placed at a position.
type Sprite struct {
	// Source is the region of the batch image in pixels.
	Source Rectangle
	// Position is the top-left destination corner.
	Position Point
	// Scale multiplies the source size. The zero value means (1, 1).
	Scale Vector
	// Color tints the sprite. The zero value means no tint.
	Color Color
}

// Batch draws many sprites sharing one image with a single DrawTriangles32
// call.
type Batch struct {
	image *Image
	verts []ebiten.Vertex
	inds  []uint32
}

// NewBatch creates an empty batch for img.
func NewBatch(img *Image) *Batch {
	return &Batch{image: img}
}

// NewColorBatch creates a batch that draws solid rectangles. Sprites added
// to it only use Position, Scale (as width and height), and Color.
func NewColorBatch() *Batch {
	return &Batch{image: whitePixel}
}

// Len returns the number of queued sprites.
func (b *Batch) Len() int {
	return len(b.verts) / 4
}

// Clear removes all queued sprites and keeps the buffers.
func (b *Batch) Clear() {
	b.verts = b.verts[:0]
	b.inds = b.inds[:0]
}

// AddRectangle queues a solid rectangle. Only meaningful on a color batch.
func (b *Batch) AddRectangle(r Rectangle, c Color) {
	b.Add(Sprite{
		Source:   Rectangle{Width: 1, Height: 1},
		Position: r.Position(),
		Scale:    Vector{X: r.Width, Y: r.Height},
		Color:    c,
	})
}

// Add queues a sprite.
func (b *Batch) Add(s Sprite) {
	src := s.Source
	if src.Width == 0 && src.Height == 0 {
		src = Rectangle{Width: float64(b.image.Width()), Height: float64(b.image.Height())}
	}
	scale := s.Scale
	if scale == (Vector{}) {
		scale = Vector{X: 1, Y: 1}
	}
	w, h := src.Width*scale.X, src.Height*scale.Y
	if b.image == whitePixel {
		w, h = scale.X, scale.Y
	}

	lx := [4]float64{0, w, 0, w}
	ly := [4]float64{0, 0, h, h}
	sx := [4]float32{
		float32(src.X), float32(src.X + src.Width),
		float32(src.X), float32(src.X + src.Width),
	}
	sy := [4]float32{
		float32(src.Y), float32(src.Y),
		float32(src.Y + src.Height), float32(src.Y + src.Height),
	}

	// Premultiplied RGBA. Zero color means opaque white.
	cr, cg, cb, ca := float32(1), float32(1), float32(1), float32(1)
	if s.Color != (Color{}) {
		ca = float32(s.Color.A)
		cr = float32(s.Color.R) * ca
		cg = float32(s.Color.G) * ca
		cb = float32(s.Color.B) * ca
	}

	base := uint32(len(b.verts))
	for i := 0; i < 4; i++ {
		b.verts = append(b.verts, ebiten.Vertex{
			DstX:   float32(s.Position.X + lx[i]),
			DstY:   float32(s.Position.Y + ly[i]),
			SrcX:   sx[i],
			SrcY:   sy[i],
			ColorR: cr,
			ColorG: cg,
			ColorB: cb,
			ColorA: ca,
		})
	}

	// Two triangles: TL-TR-BL, TR-BR-BL
	b.inds = append(b.inds,
		base+0, base+1, base+2,
		base+1, base+3, base+2,
	)
}

// Draw submits the queued sprites to target, honoring its transformation.
// The queue is kept; call Clear to reuse the batch.
func (b *Batch) Draw(target *Target) {
	if len(b.verts) == 0 {
		return
	}
	t := target.transformation
	verts := b.verts
	if t != Identity() {
		verts = make([]ebiten.Vertex, len(b.verts))
		copy(verts, b.verts)
		for i := range verts {
			p := t.TransformPoint(Point{float64(verts[i].DstX), float64(verts[i].DstY)})
			verts[i].DstX = float32(p.X)
			verts[i].DstY = float32(p.Y)
		}
	}

	var op ebiten.DrawTrianglesOptions
	op.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	target.img.DrawTriangles32(verts, b.inds, b.image.img, &op)
}
