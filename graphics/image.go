package graphics

import (
	"fmt"
	"image"
	_ "image/jpeg" // register JPEG decoding for DecodeImage
	_ "image/png"  // register PNG decoding for DecodeImage
	"io"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
)

// Image is a texture living on the GPU.
type Image struct {
	img *ebiten.Image
}

// whitePixel is a 1x1 white image used for solid color quads.
var whitePixel *Image

func init() {
	img := ebiten.NewImage(1, 1)
	img.Fill(ColorWhite.RGBA())
	whitePixel = &Image{img: img}
}

// NewImage uploads a decoded image to the GPU.
func NewImage(src image.Image) *Image {
	return &Image{img: ebiten.NewImageFromImage(src)}
}

// NewImageFromEbiten wraps an existing Ebitengine image.
func NewImageFromEbiten(img *ebiten.Image) *Image {
	return &Image{img: img}
}

// DecodeImage decodes a PNG or JPEG stream and uploads it.
func DecodeImage(r io.Reader) (*Image, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("coffee: failed to decode image: %w", err)
	}
	return NewImage(src), nil
}

// OpenImage decodes the image file at path and uploads it.
func OpenImage(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("coffee: open %s: %w", path, err)
	}
	defer f.Close()
	return DecodeImage(f)
}

// Width returns the image width in pixels.
func (i *Image) Width() int {
	return i.img.Bounds().Dx()
}

// Height returns the image height in pixels.
func (i *Image) Height() int {
	return i.img.Bounds().Dy()
}

// Ebiten returns the underlying *ebiten.Image.
func (i *Image) Ebiten() *ebiten.Image {
	return i.img
}

// Draw draws a quad of the image on the target.
func (i *Image) Draw(q Quad, target *Target) {
	target.DrawQuad(i, q)
}

// Quad describes a region of an image stretched over a destination rectangle.
type Quad struct {
	// Source is the region of the image in pixels. The zero value selects
	// the whole image.
	Source Rectangle
	// Position is the top-left corner of the destination.
	Position Point
	// Size is the destination size. The zero value uses the source size.
	Size Size
	// Color tints the quad. The zero value means no tint.
	Color Color
}

func (q Quad) sourceRect(img *Image) Rectangle {
	if q.Source.Width == 0 && q.Source.Height == 0 {
		return Rectangle{Width: float64(img.Width()), Height: float64(img.Height())}
	}
	return q.Source
}
