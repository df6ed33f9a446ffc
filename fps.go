package coffee

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/phanxgames/coffee/graphics"
)

// fpsOverlay shows the current FPS and TPS in the top-left corner. The text
// is refreshed every half second.
type fpsOverlay struct {
	img     *ebiten.Image
	elapsed float64
	shown   bool
}

func newFPSOverlay() *fpsOverlay {
	// 100x32 is enough for "FPS: 60.0\nTPS: 60.0"
	return &fpsOverlay{img: ebiten.NewImage(100, 32)}
}

func (o *fpsOverlay) update(dt float64) {
	o.elapsed += dt
	if o.shown && o.elapsed < 0.5 {
		return
	}
	o.elapsed = 0
	o.shown = true

	o.img.Clear()
	o.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(o.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
}

func (o *fpsOverlay) draw(frame *graphics.Frame) {
	frame.Ebiten().DrawImage(o.img, nil)
}
