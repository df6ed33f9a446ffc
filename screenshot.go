package coffee

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/disintegration/imaging"
	"github.com/hajimehoshi/ebiten/v2"
)

// screenshotQueue collects labels until the end of the next frame.
type screenshotQueue struct {
	mu     sync.Mutex
	labels []string
}

var screenshots screenshotQueue

// Screenshot queues a labeled screenshot captured at the end of the current
// frame. The PNG is written to RunConfig.ScreenshotDir with a timestamped
// name. Safe to call from any goroutine.
func Screenshot(label string) {
	screenshots.push(label)
}

func (q *screenshotQueue) push(label string) {
	q.mu.Lock()
	q.labels = append(q.labels, label)
	q.mu.Unlock()
}

func (q *screenshotQueue) take() []string {
	q.mu.Lock()
	defer q.mu.Unlock()
	labels := q.labels
	q.labels = nil
	return labels
}

// flush captures screen once for every queued label.
func (q *screenshotQueue) flush(screen *ebiten.Image, dir string) {
	labels := q.take()
	if len(labels) == 0 {
		return
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		debugf("screenshot: mkdir %s: %v", dir, err)
		return
	}

	img := readScreen(screen)
	stamp := time.Now().Format("20060102_150405")
	for _, label := range labels {
		path := filepath.Join(dir, fmt.Sprintf("%s_%s.png", stamp, sanitizeLabel(label)))
		if err := imaging.Save(img, path); err != nil {
			debugf("screenshot: save %s: %v", path, err)
		}
	}
}

// readScreen converts the premultiplied pixels of screen to straight alpha.
func readScreen(screen *ebiten.Image) *image.NRGBA {
	bounds := screen.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	pixels := make([]byte, 4*w*h)
	screen.ReadPixels(pixels)
	return unpremultiply(pixels, w, h)
}

func unpremultiply(pixels []byte, w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(pixels); i += 4 {
		r, g, b, a := pixels[i], pixels[i+1], pixels[i+2], pixels[i+3]
		if a > 0 && a < 255 {
			r = uint8(min(int(r)*255/int(a), 255))
			g = uint8(min(int(g)*255/int(a), 255))
			b = uint8(min(int(b)*255/int(a), 255))
		}
		copy(img.Pix[i:i+4], []byte{r, g, b, a})
	}
	return img
}

// sanitizeLabel keeps letters, digits, '-' and '.', replaces anything else
// with '_', and names empty labels "unlabeled".
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			return r
		}
		return '_'
	}, label)
}
