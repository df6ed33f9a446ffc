package load

import (
	"golang.org/x/sync/errgroup"
)

// Join2 runs a and b one after the other and combines their outputs.
func Join2[A, B, R any](a *Task[A], b *Task[B], f func(A, B) R) *Task[R] {
	return Sequence(a.totalWork+b.totalWork, func(w *Worker) (R, error) {
		var zero R
		va, err := a.fn(w)
		if err != nil {
			return zero, err
		}
		if err := w.Err(); err != nil {
			return zero, err
		}
		vb, err := b.fn(w)
		if err != nil {
			return zero, err
		}
		return f(va, vb), nil
	})
}

// Join3 runs a, b and c one after the other and combines their outputs.
func Join3[A, B, C, R any](a *Task[A], b *Task[B], c *Task[C], f func(A, B, C) R) *Task[R] {
	type ab struct {
		a A
		b B
	}
	first := Join2(a, b, func(va A, vb B) ab { return ab{va, vb} })
	return Join2(first, c, func(p ab, vc C) R { return f(p.a, p.b, vc) })
}

// All runs tasks concurrently and returns their outputs in order. The first
// error cancels the remaining tasks.
func All[T any](tasks ...*Task[T]) *Task[[]T] {
	total := 0
	for _, t := range tasks {
		total += t.totalWork
	}
	return Sequence(total, func(w *Worker) ([]T, error) {
		out := make([]T, len(tasks))
		g, ctx := errgroup.WithContext(w.ctx)
		for i, t := range tasks {
			sub := w.fork(ctx)
			g.Go(func() error {
				if err := sub.Err(); err != nil {
					return err
				}
				v, err := t.fn(sub)
				if err != nil {
					return err
				}
				out[i] = v
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
		return out, nil
	})
}
