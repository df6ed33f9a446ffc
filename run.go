package coffee

import (
	"context"
	"errors"
	"fmt"
	"os"
	"reflect"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/coffee/graphics"
	"github.com/phanxgames/coffee/input"
	"github.com/phanxgames/coffee/load"
	"github.com/phanxgames/coffee/ui"
)

// ErrNoRenderer is returned by RunUI when the renderer is nil.
var ErrNoRenderer = errors.New("coffee: user interface renderer is nil")

// Run opens a window and runs g until it finishes, the window is closed, or
// Update returns an error.
func Run(g Game, cfg RunConfig) error {
	r, err := newRunner(cfg)
	if err != nil {
		return err
	}
	r.install(g, nil)
	return r.run()
}

// RunTask opens a window, runs task while screen shows its progress, then
// runs the loaded game.
func RunTask[G Game](task *load.Task[G], screen load.LoadingScreen, cfg RunConfig) error {
	r, err := newRunner(cfg)
	if err != nil {
		return err
	}
	startLoading(r, task, screen, func(g G) { r.install(g, nil) })
	return r.run()
}

// RunUI is Run for a game with a user interface drawn by renderer.
func RunUI[M any, R UIRenderer](g UserInterface[M, R], renderer R, cfg RunConfig) error {
	if isNil(renderer) {
		return ErrNoRenderer
	}
	r, err := newRunner(cfg)
	if err != nil {
		return err
	}
	r.install(g, newUILoop(g, renderer))
	return r.run()
}

// RunUITask is RunTask for a game with a user interface.
func RunUITask[M any, R UIRenderer, G UserInterface[M, R]](task *load.Task[G], renderer R, screen load.LoadingScreen, cfg RunConfig) error {
	if isNil(renderer) {
		return ErrNoRenderer
	}
	r, err := newRunner(cfg)
	if err != nil {
		return err
	}
	startLoading(r, task, screen, func(g G) {
		r.install(g, newUILoop[M, R](g, renderer))
	})
	return r.run()
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// uiDriver runs a user interface inside the loop. It hides the message and
// renderer types from the runner.
type uiDriver interface {
	update(w *graphics.Window, cursor graphics.Point, events []input.Event, stats *debugStats)
	draw(frame *graphics.Frame, w *graphics.Window, cursor graphics.Point, explain bool, stats *debugStats) ui.MouseCursor
}

// uiLoop builds, dispatches, and draws the widget tree of a game.
type uiLoop[M any, R UIRenderer] struct {
	game     UserInterface[M, R]
	renderer R
	cache    ui.Cache
	messages []M
}

func newUILoop[M any, R UIRenderer](g UserInterface[M, R], renderer R) *uiLoop[M, R] {
	return &uiLoop[M, R]{game: g, renderer: renderer}
}

func (l *uiLoop[M, R]) build(w *graphics.Window, stats *debugStats) *ui.UserInterface[M, R] {
	start := time.Now()
	u := ui.Build(l.game.Layout(w), l.renderer, w.Size(), &l.cache)
	if stats != nil {
		stats.buildTime += time.Since(start)
		if u.Reused() {
			stats.cacheHits++
		} else {
			stats.cacheMisses++
		}
	}
	return u
}

// update dispatches events and lets the game react to every produced
// message, in order.
func (l *uiLoop[M, R]) update(w *graphics.Window, cursor graphics.Point, events []input.Event, stats *debugStats) {
	if len(events) == 0 {
		return
	}
	u := l.build(w, stats)

	start := time.Now()
	l.messages = u.Update(cursor, events, l.messages[:0])
	for _, m := range l.messages {
		l.game.React(m, w)
	}
	if stats != nil {
		stats.dispatch += time.Since(start)
		stats.messages += len(l.messages)
	}
	clear(l.messages)
}

func (l *uiLoop[M, R]) draw(frame *graphics.Frame, w *graphics.Window, cursor graphics.Point, explain bool, stats *debugStats) ui.MouseCursor {
	u := l.build(w, stats)

	start := time.Now()
	c := u.Draw(l.renderer, cursor)
	if explain {
		u.Explain(l.renderer, graphics.Color{R: 1, G: 0.2, B: 0.6, A: 0.8})
	}
	l.renderer.Flush(frame)
	if stats != nil {
		stats.uiDrawTime += time.Since(start)
	}
	return c
}

// loading tracks a task running in the background.
type loading struct {
	mu       sync.Mutex
	progress load.Progress
	done     bool
	err      error
	finish   func()
	screen   load.LoadingScreen
	reporter *load.TerminalReporter
	cancel   context.CancelFunc
}

func startLoading[G Game](r *runner, task *load.Task[G], screen load.LoadingScreen, install func(G)) {
	if screen == nil {
		screen = load.NoLoadingScreen{}
	}
	ctx, cancel := context.WithCancel(context.Background())
	l := &loading{screen: screen, cancel: cancel}
	if r.cfg.TerminalProgress {
		l.reporter = load.NewTerminalReporter(os.Stderr)
	}
	r.loading = l

	go func() {
		g, err := task.Run(ctx, l.report)
		l.mu.Lock()
		defer l.mu.Unlock()
		l.done = true
		l.err = err
		if err == nil {
			l.finish = func() { install(g) }
		}
	}()
}

func (l *loading) report(p load.Progress) {
	l.mu.Lock()
	l.progress = p
	l.mu.Unlock()
	if l.reporter != nil {
		l.reporter.Report(p)
	}
}

// poll returns whether the task is over and, if it succeeded, the function
// installing the game.
func (l *loading) poll() (done bool, finish func(), err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.done, l.finish, l.err
}

func (l *loading) draw(frame *graphics.Frame) {
	l.mu.Lock()
	p := l.progress
	l.mu.Unlock()
	l.screen.OnProgress(p, frame)
}

// runner adapts a Game to ebiten.Game.
type runner struct {
	cfg    RunConfig
	window *graphics.Window
	poller *input.Poller
	input  *input.KeyboardAndMouse
	timer  *Timer
	events []input.Event

	game    Game
	ui      uiDriver
	loading *loading

	test   *TestRunner
	fps    *fpsOverlay
	stats  *debugStats
	cursor ui.MouseCursor
}

func newRunner(cfg RunConfig) (*runner, error) {
	cfg = cfg.withDefaults()
	r := &runner{
		cfg:    cfg,
		window: graphics.NewWindow(cfg.Title, float64(cfg.Width), float64(cfg.Height)),
		poller: input.NewPoller(),
		input:  input.NewKeyboardAndMouse(),
		timer:  NewTimer(cfg.TPS),
	}
	if cfg.TestScript != "" {
		tr, err := OpenTestScript(cfg.TestScript)
		if err != nil {
			return nil, err
		}
		r.test = tr
	}
	if cfg.ShowFPS {
		r.fps = newFPSOverlay()
	}
	if cfg.Debug {
		r.stats = &debugStats{}
	}
	return r, nil
}

func (r *runner) install(g Game, d uiDriver) {
	r.game = g
	r.ui = d
	r.loading = nil
}

func (r *runner) run() error {
	ebiten.SetWindowTitle(r.cfg.Title)
	ebiten.SetWindowSize(r.cfg.Width, r.cfg.Height)
	ebiten.SetTPS(r.cfg.TPS)
	if r.cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	err := ebiten.RunGame(r)
	if r.loading != nil {
		r.loading.cancel()
	}
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// Update implements ebiten.Game.
func (r *runner) Update() error {
	if r.test != nil {
		r.test.step(r.poller, &screenshots)
	}
	prev := r.input.CursorPosition()
	r.events = r.poller.Poll(r.events[:0])
	r.input.ClearFrame()
	for _, e := range r.events {
		r.input.Update(e)
	}
	if r.fps != nil {
		r.fps.update(1 / float64(r.cfg.TPS))
	}

	if r.loading != nil {
		done, finish, err := r.loading.poll()
		if !done {
			return nil
		}
		if err != nil {
			return fmt.Errorf("coffee: loading failed: %w", err)
		}
		finish()
	}

	r.game.Interact(r.input, r.window)
	if r.ui != nil {
		r.ui.update(r.window, prev, r.events, r.stats)
	}

	start := time.Now()
	if err := r.game.Update(r.window); err != nil {
		return err
	}
	r.timer.tick()
	if r.stats != nil {
		r.stats.updateTime += time.Since(start)
		r.stats.ticks++
	}

	if f, ok := r.game.(Finisher); ok && f.IsFinished() {
		return ebiten.Termination
	}
	return nil
}

// Draw implements ebiten.Game.
func (r *runner) Draw(screen *ebiten.Image) {
	frame := graphics.NewFrame(screen)
	if r.cfg.Background.A > 0 {
		frame.Clear(r.cfg.Background)
	}

	if r.loading != nil {
		r.loading.draw(frame)
	} else {
		start := time.Now()
		r.game.Draw(frame, r.timer)
		if r.stats != nil {
			r.stats.drawTime += time.Since(start)
		}
		if r.ui != nil {
			c := r.ui.draw(frame, r.window, r.input.CursorPosition(), r.cfg.ExplainUI, r.stats)
			if c != r.cursor {
				r.cursor = c
				ebiten.SetCursorShape(cursorShape(c))
			}
		}
	}
	r.timer.endFrame()

	if r.fps != nil {
		r.fps.draw(frame)
	}
	screenshots.flush(screen, r.cfg.ScreenshotDir)
	if r.stats != nil {
		r.stats.frames++
		r.stats.debugLog(os.Stderr)
	}
}

// Layout implements ebiten.Game. Resizable windows use the outside size as
// the logical size.
func (r *runner) Layout(outsideWidth, outsideHeight int) (int, int) {
	if !r.cfg.Resizable {
		return r.cfg.Width, r.cfg.Height
	}
	w, h := float64(outsideWidth), float64(outsideHeight)
	if w != r.window.Width() || h != r.window.Height() {
		r.window.Resize(w, h)
	}
	return outsideWidth, outsideHeight
}

// cursorShape maps a widget cursor hint to the closest OS cursor.
func cursorShape(c ui.MouseCursor) ebiten.CursorShapeType {
	switch c {
	case ui.CursorPointer:
		return ebiten.CursorShapePointer
	case ui.CursorGrab, ui.CursorGrabbing:
		return ebiten.CursorShapeMove
	case ui.CursorWorking:
		return ebiten.CursorShapeNotAllowed
	default:
		return ebiten.CursorShapeDefault
	}
}
