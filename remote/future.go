package remote

import "context"

// Future is the pending result of an asynchronous data service call.
type Future[T any] struct {
	done chan struct{}
	val  T
	err  error
}

// Go starts fn in its own goroutine and returns a Future for its result.
func Go[T any](ctx context.Context, fn func(context.Context) (T, error)) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}
	go func() {
		defer close(f.done)
		f.val, f.err = fn(ctx)
	}()
	return f
}

// Await blocks until the call finishes or ctx is done.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.val, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
