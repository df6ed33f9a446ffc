package graphics

import "github.com/hajimehoshi/ebiten/v2"

// Window holds the current state of the game window.
type Window struct {
	title         string
	width, height float64
	fullscreen    bool
}

// NewWindow returns a Window of the given logical size.
func NewWindow(title string, width, height float64) *Window {
	return &Window{title: title, width: width, height: height}
}

// Width returns the logical window width.
func (w *Window) Width() float64 { return w.width }

// Height returns the logical window height.
func (w *Window) Height() float64 { return w.height }

// Size returns the logical window size.
func (w *Window) Size() Size { return Size{Width: w.width, Height: w.height} }

// Title returns the window title.
func (w *Window) Title() string { return w.title }

// SetTitle changes the window title.
func (w *Window) SetTitle(title string) {
	w.title = title
	ebiten.SetWindowTitle(title)
}

// IsFullscreen reports whether the window is fullscreen.
func (w *Window) IsFullscreen() bool { return w.fullscreen }

// ToggleFullscreen switches between windowed and fullscreen mode.
func (w *Window) ToggleFullscreen() {
	w.fullscreen = !w.fullscreen
	ebiten.SetFullscreen(w.fullscreen)
}

// Resize records a new logical size. The run loop calls it whenever the
// outside size changes.
func (w *Window) Resize(width, height float64) {
	w.width, w.height = width, height
}
