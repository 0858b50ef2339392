package future

import (
	"context"
	"errors"

	"github.com/ib-77/duo/pkg/duo"
	"golang.org/x/sync/errgroup"
)

// Future is a one-shot deferred computation. It always completes: errors and
// panics inside the computation are captured into the Result, never
// re-thrown to the awaiter.
type Future[T any] struct {
	done chan struct{}
	res  duo.Result[T]
}

// Go launches fn on its own goroutine and returns the Future observing it.
func Go[T any](fn func() (T, error)) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}

	go func() {
		defer close(f.done)
		f.res = duo.SafeResult(fn)
	}()

	return f
}

// Resolved wraps an already known outcome into a completed Future.
func Resolved[T any](r duo.Result[T]) *Future[T] {
	f := &Future[T]{done: make(chan struct{}), res: r}
	close(f.done)
	return f
}

// Await blocks until the computation completes or ctx is done; cancellation
// surfaces as Err(ctx.Err()).
func (f *Future[T]) Await(ctx context.Context) duo.Result[T] {
	select {
	case <-f.done:
		return f.res
	case <-ctx.Done():
		return duo.Err[T](ctx.Err())
	}
}

// AwaitOption is the Option-producing sibling of Await: success resolves to
// Some, the failure reason is dropped.
func (f *Future[T]) AwaitOption(ctx context.Context) duo.Option[T] {
	return f.Await(ctx).Ok()
}

// All awaits every future concurrently and folds the outcomes the way
// duo.AllResults does: the first failure cancels the remaining waits and is
// returned, otherwise payloads are collected in argument order.
func All[T any](ctx context.Context, futures ...*Future[T]) duo.Result[[]T] {
	values := make([]T, len(futures))
	g, gctx := errgroup.WithContext(ctx)

	for i, f := range futures {
		i, f := i, f
		g.Go(func() error {
			r := f.Await(gctx)
			if r.IsErr() {
				return r.UnwrapErr()
			}
			values[i] = r.UnwrapUnchecked()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return duo.Err[[]T](err)
	}
	return duo.Ok(values)
}

// Any awaits the futures in argument order and returns the first success
// verbatim; when every future failed the last failure is returned.
func Any[T any](ctx context.Context, futures ...*Future[T]) duo.Result[T] {
	var last duo.Result[T]
	for _, f := range futures {
		last = f.Await(ctx)
		if last.IsOk() {
			return last
		}
	}
	if last.IsEmpty() {
		return duo.Err[T](errors.New("future: no futures"))
	}
	return last
}

// IsCancellation reports whether err came from context cancellation or
// deadline expiry rather than from the computation itself.
func IsCancellation(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}
