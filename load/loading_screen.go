package load

import (
	"fmt"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/phanxgames/coffee/graphics"
)

// LoadingScreen gives feedback while a task runs. OnProgress is called
// every frame with the latest progress snapshot.
type LoadingScreen interface {
	OnProgress(p Progress, frame *graphics.Frame)
}

// NoLoadingScreen draws nothing.
type NoLoadingScreen struct{}

func (NoLoadingScreen) OnProgress(Progress, *graphics.Frame) {}

// ProgressBar is a simple loading screen: the current stage title above a
// bar that eases toward the reported percentage.
type ProgressBar struct {
	Background graphics.Color
	Foreground graphics.Color
	TextSize   float64
	// Duration is how long the bar takes to catch up with new progress.
	Duration float32

	font   *graphics.Font
	tween  *gween.Tween
	target float64
	shown  float64
	last   time.Time
	now    func() time.Time
}

// NewProgressBar creates a progress bar using the default font.
func NewProgressBar() (*ProgressBar, error) {
	f, err := graphics.DefaultFont()
	if err != nil {
		return nil, fmt.Errorf("load: progress bar font: %w", err)
	}
	return &ProgressBar{
		Background: graphics.ColorBlack,
		Foreground: graphics.ColorWhite,
		TextSize:   30,
		Duration:   0.3,
		font:       f,
		now:        time.Now,
	}, nil
}

// Shown returns the percentage currently displayed by the bar.
func (b *ProgressBar) Shown() float64 {
	return b.shown
}

// advance moves the displayed percentage toward p by dt seconds.
func (b *ProgressBar) advance(p Progress, dt float32) float64 {
	if target := p.Percentage(); target != b.target {
		b.target = target
		b.tween = gween.New(float32(b.shown), float32(target), b.Duration, ease.OutQuad)
	}
	if b.tween != nil {
		v, done := b.tween.Update(dt)
		b.shown = float64(v)
		if done {
			b.shown = b.target
			b.tween = nil
		}
	}
	return b.shown
}

// OnProgress draws the progress bar on frame.
func (b *ProgressBar) OnProgress(p Progress, frame *graphics.Frame) {
	now := b.now()
	var dt float32
	if !b.last.IsZero() {
		dt = float32(now.Sub(b.last).Seconds())
	}
	b.last = now
	shown := b.advance(p, dt)

	frame.Clear(b.Background)
	target := frame.AsTarget()

	w, h := frame.Width(), frame.Height()
	bar := graphics.Rectangle{X: 50, Y: h/2 - 15, Width: w - 100, Height: 30}
	target.StrokeRectangle(graphics.Rectangle{
		X: bar.X - 4, Y: bar.Y - 4, Width: bar.Width + 8, Height: bar.Height + 8,
	}, 2, b.Foreground)
	target.FillRectangle(graphics.Rectangle{
		X: bar.X, Y: bar.Y, Width: bar.Width * shown / 100, Height: bar.Height,
	}, b.Foreground)

	if stage := p.Stage(); stage != "" {
		b.font.Draw(target, graphics.Text{
			Content:           stage,
			Position:          graphics.Point{X: bar.X, Y: bar.Y - 50},
			Bounds:            graphics.Size{Width: bar.Width, Height: 40},
			Size:              b.TextSize,
			Color:             b.Foreground,
			VerticalAlignment: graphics.AlignBottom,
		})
	}
	b.font.Draw(target, graphics.Text{
		Content:             fmt.Sprintf("%.0f%%", shown),
		Position:            graphics.Point{X: bar.X, Y: bar.Y + 40},
		Bounds:              graphics.Size{Width: bar.Width, Height: 40},
		Size:                b.TextSize,
		Color:               b.Foreground,
		HorizontalAlignment: graphics.AlignRight,
	})
}
