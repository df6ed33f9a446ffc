// Package load describes asset loading as composable, lazily run tasks that
// know their total amount of work up front, so loading screens can report
// progress consistently.
//
// A Task is a recipe; nothing happens until Run:
//
//	assets := load.Join2(
//		load.Stage("Loading player...", load.Image("player.png")),
//		load.Stage("Loading font...", load.Font("font.ttf")),
//		func(img *graphics.Image, f *graphics.Font) Assets { return Assets{img, f} },
//	)
//	a, err := assets.Run(ctx, func(p load.Progress) { fmt.Println(p.Percentage()) })
package load

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// ErrCanceled is returned by Run when the context is done before the task
// completes.
var ErrCanceled = errors.New("load: task canceled")

// Task is an operation that produces a value of type T while reporting
// TotalWork units of progress.
type Task[T any] struct {
	totalWork int
	fn        func(*Worker) (T, error)
}

// New creates a task from a single unit of work.
func New[T any](f func() (T, error)) *Task[T] {
	return Sequence(1, func(w *Worker) (T, error) {
		v, err := f()
		if err != nil {
			return v, err
		}
		w.NotifyProgress(1)
		return v, nil
	})
}

// Sequence creates a task that reports totalWork units through the Worker
// passed to f. f is expected to call NotifyProgress as work completes.
func Sequence[T any](totalWork int, f func(*Worker) (T, error)) *Task[T] {
	if totalWork < 0 {
		totalWork = 0
	}
	return &Task[T]{totalWork: totalWork, fn: f}
}

// Stage adds a title to a task. The title is reported as the current stage
// while the task runs.
func Stage[T any](title string, t *Task[T]) *Task[T] {
	return &Task[T]{
		totalWork: t.totalWork,
		fn: func(w *Worker) (T, error) {
			w.pushStage(title)
			defer w.popStage()
			return t.fn(w)
		},
	}
}

// Map transforms the output of a task.
func Map[T, U any](t *Task[T], f func(T) U) *Task[U] {
	return &Task[U]{
		totalWork: t.totalWork,
		fn: func(w *Worker) (U, error) {
			v, err := t.fn(w)
			if err != nil {
				var zero U
				return zero, err
			}
			return f(v), nil
		},
	}
}

// TotalWork returns the units of work the task reports.
func (t *Task[T]) TotalWork() int {
	return t.totalWork
}

// Run executes the task. onProgress, when non-nil, is called with 0
// completed work first and then after every notification. Calls are
// serialized even when parts of the task run concurrently.
func (t *Task[T]) Run(ctx context.Context, onProgress func(Progress)) (T, error) {
	w := &Worker{
		ctx: ctx,
		tracker: &tracker{
			total:    t.totalWork,
			listener: onProgress,
		},
	}
	w.NotifyProgress(0)

	if err := w.Err(); err != nil {
		var zero T
		return zero, err
	}
	v, err := t.fn(w)
	if err != nil {
		var zero T
		if errors.Is(err, ErrCanceled) {
			return zero, err
		}
		return zero, fmt.Errorf("load: %w", err)
	}
	return v, nil
}

// tracker is the progress state shared by every worker of a run.
type tracker struct {
	mu        sync.Mutex
	total     int
	completed int
	listener  func(Progress)
}

// Worker is handed to running tasks to report progress. A worker belongs to
// one goroutine; concurrent sub-tasks get their own worker.
type Worker struct {
	ctx     context.Context
	tracker *tracker
	stages  []string
}

// Context returns the context the task was run with.
func (w *Worker) Context() context.Context {
	return w.ctx
}

// Err returns ErrCanceled when the run's context is done.
func (w *Worker) Err() error {
	if w.ctx.Err() != nil {
		return fmt.Errorf("%w: %w", ErrCanceled, context.Cause(w.ctx))
	}
	return nil
}

// NotifyProgress records work completed units and informs the listener.
func (w *Worker) NotifyProgress(work int) {
	t := w.tracker
	t.mu.Lock()
	defer t.mu.Unlock()
	t.completed += work
	if t.listener == nil {
		return
	}
	stages := make([]string, len(w.stages))
	copy(stages, w.stages)
	t.listener(Progress{TotalWork: t.total, Completed: t.completed, Stages: stages})
}

func (w *Worker) pushStage(title string) {
	w.stages = append(w.stages, title)
	w.NotifyProgress(0)
}

func (w *Worker) popStage() {
	w.stages = w.stages[:len(w.stages)-1]
}

// fork returns a worker for a concurrent sub-task. It shares progress but
// owns a copy of the stage stack.
func (w *Worker) fork(ctx context.Context) *Worker {
	stages := make([]string, len(w.stages))
	copy(stages, w.stages)
	return &Worker{ctx: ctx, tracker: w.tracker, stages: stages}
}
