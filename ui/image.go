package ui

import (
	"image"

	"github.com/phanxgames/coffee/graphics"
	"github.com/phanxgames/coffee/input"
)

// Image displays a picture. Its auto size is the size of the picture.
type Image[M any, R ImageRenderer] struct {
	img   image.Image
	style Style
}

// NewImage returns a widget showing img.
func NewImage[M any, R ImageRenderer](img image.Image) *Image[M, R] {
	return &Image[M, R]{img: img, style: DefaultStyle()}
}

// Width sets a fixed width in pixels.
func (i *Image[M, R]) Width(px float64) *Image[M, R] {
	i.style.Width = Points(px)
	return i
}

// Height sets a fixed height in pixels.
func (i *Image[M, R]) Height(px float64) *Image[M, R] {
	i.style.Height = Points(px)
	return i
}

func (i *Image[M, R]) Node(R) *Node {
	b := i.img.Bounds()
	return NewLeaf(i.style, func(_, _ float64) graphics.Size {
		return graphics.Size{Width: float64(b.Dx()), Height: float64(b.Dy())}
	})
}

func (i *Image[M, R]) OnEvent(_ input.Event, _ Layout, _ graphics.Point, messages []M) []M {
	return messages
}

func (i *Image[M, R]) Draw(r R, layout Layout, _ graphics.Point) MouseCursor {
	r.DrawImage(i.img, layout.Bounds)
	return CursorDefault
}

func (i *Image[M, R]) Hash(h *Hasher) {
	h.WriteUint8(kindImage)
	i.style.hash(h)
	b := i.img.Bounds()
	h.WriteUint64(uint64(b.Dx()))
	h.WriteUint64(uint64(b.Dy()))
}

// Space is an invisible widget that takes up room. With Grow it pushes its
// siblings apart.
type Space[M, R any] struct {
	style Style
}

// NewSpace returns a spacer that grows to fill leftover space.
func NewSpace[M, R any]() *Space[M, R] {
	style := DefaultStyle()
	style.Grow = 1
	return &Space[M, R]{style: style}
}

// Width sets a fixed width in pixels.
func (s *Space[M, R]) Width(px float64) *Space[M, R] {
	s.style.Width = Points(px)
	return s
}

// Height sets a fixed height in pixels.
func (s *Space[M, R]) Height(px float64) *Space[M, R] {
	s.style.Height = Points(px)
	return s
}

func (s *Space[M, R]) Node(R) *Node {
	return NewNode(s.style)
}

func (s *Space[M, R]) OnEvent(_ input.Event, _ Layout, _ graphics.Point, messages []M) []M {
	return messages
}

func (s *Space[M, R]) Draw(R, Layout, graphics.Point) MouseCursor {
	return CursorDefault
}

func (s *Space[M, R]) Hash(h *Hasher) {
	h.WriteUint8(kindSpace)
	s.style.hash(h)
}
