package graphics

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"strings"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// Font wraps Ebitengine's text/v2 for TrueType rendering at any size.
// Faces are created lazily per size and cached.
type Font struct {
	source *text.GoTextFaceSource

	mu    sync.Mutex
	faces map[float64]*fontFace
}

type fontFace struct {
	face *text.GoTextFace
	lh   float64 // cached line height
}

// NewFont parses raw TTF/OTF data.
func NewFont(ttfData []byte) (*Font, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("coffee: failed to parse TTF data: %w", err)
	}
	return &Font{source: source, faces: make(map[float64]*fontFace)}, nil
}

// OpenFont reads and parses the font file at path.
func OpenFont(path string) (*Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("coffee: open %s: %w", path, err)
	}
	return NewFont(data)
}

var (
	defaultFontOnce sync.Once
	defaultFont     *Font
	defaultFontErr  error
)

// DefaultFont returns the Go Regular font bundled with golang.org/x/image.
func DefaultFont() (*Font, error) {
	defaultFontOnce.Do(func() {
		defaultFont, defaultFontErr = NewFont(goregular.TTF)
	})
	return defaultFont, defaultFontErr
}

func (f *Font) face(size float64) *fontFace {
	f.mu.Lock()
	defer f.mu.Unlock()
	if ff, ok := f.faces[size]; ok {
		return ff
	}
	face := &text.GoTextFace{Source: f.source, Size: size}
	m := face.Metrics()
	ff := &fontFace{face: face, lh: m.HAscent + m.HDescent + m.HLineGap}
	f.faces[size] = ff
	return ff
}

// LineHeight returns the vertical distance between baselines at size.
func (f *Font) LineHeight(size float64) float64 {
	return f.face(size).lh
}

// Advance returns the width of a single line of text at size.
func (f *Font) Advance(s string, size float64) float64 {
	return text.Advance(s, f.face(size).face)
}

// Measure returns the bounds of content wrapped to maxWidth. A maxWidth of
// zero, negative, or +Inf disables wrapping.
func (f *Font) Measure(content string, size, maxWidth float64) (width, height float64) {
	ff := f.face(size)
	lines := WrapText(content, maxWidth, func(s string) float64 {
		return text.Advance(s, ff.face)
	})
	for _, line := range lines {
		width = math.Max(width, text.Advance(line, ff.face))
	}
	return width, float64(len(lines)) * ff.lh
}

// Text is a block of text to draw with Font.Draw.
type Text struct {
	Content string
	// Position is the top-left corner of the text box.
	Position Point
	// Bounds limits the box. Zero Width disables wrapping; alignment is
	// relative to Bounds.
	Bounds Size
	Size   float64
	Color  Color

	HorizontalAlignment HorizontalAlignment
	VerticalAlignment   VerticalAlignment
}

// Draw wraps and draws t on target.
func (f *Font) Draw(target *Target, t Text) {
	ff := f.face(t.Size)
	lines := WrapText(t.Content, t.Bounds.Width, func(s string) float64 {
		return text.Advance(s, ff.face)
	})
	if len(lines) == 0 {
		return
	}
	blockH := float64(len(lines)) * ff.lh
	y := t.Position.Y + t.VerticalAlignment.Align(t.Bounds.Height, blockH)
	geom := target.transformation.GeoM()

	for i, line := range lines {
		w := text.Advance(line, ff.face)
		x := t.Position.X + t.HorizontalAlignment.Align(t.Bounds.Width, w)

		op := &text.DrawOptions{}
		op.GeoM.Translate(x, y+float64(i)*ff.lh)
		op.GeoM.Concat(geom)
		op.ColorScale.ScaleWithColor(t.Color.RGBA())
		text.Draw(target.img, line, ff.face, op)
	}
}

// WrapText breaks content into lines no wider than maxWidth, measuring with
// advance. Explicit newlines always break. Words wider than maxWidth get a
// line of their own. A maxWidth of zero, negative, or +Inf only splits on
// newlines.
func WrapText(content string, maxWidth float64, advance func(string) float64) []string {
	if content == "" {
		return nil
	}
	paragraphs := strings.Split(content, "\n")
	if maxWidth <= 0 || math.IsInf(maxWidth, 1) {
		return paragraphs
	}

	var lines []string
	for _, p := range paragraphs {
		words := strings.Fields(p)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		current := words[0]
		for _, w := range words[1:] {
			candidate := current + " " + w
			if advance(candidate) <= maxWidth {
				current = candidate
				continue
			}
			lines = append(lines, current)
			current = w
		}
		lines = append(lines, current)
	}
	return lines
}
