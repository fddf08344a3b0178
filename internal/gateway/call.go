package gateway

import (
	"context"
	"sync"
)

// Result is the outcome of a Call.
type Result[T any] struct {
	Value T
	Err   error
}

// IsSuccess reports whether the call completed without error.
func (r Result[T]) IsSuccess() bool {
	return r.Err == nil
}

// Call is a deferred gateway operation. It runs at most once;
// every Execute or Enqueue after the first observes the same result.
type Call[T any] struct {
	run func(ctx context.Context) (T, error)

	once   sync.Once
	done   chan struct{}
	result Result[T]
}

// NewCall wraps fn as a deferred operation.
func NewCall[T any](fn func(ctx context.Context) (T, error)) *Call[T] {
	return &Call[T]{run: fn, done: make(chan struct{})}
}

// Completed returns a call that already holds value.
func Completed[T any](value T) *Call[T] {
	return NewCall(func(context.Context) (T, error) { return value, nil })
}

// Failed returns a call that fails with err.
func Failed[T any](err error) *Call[T] {
	return NewCall(func(context.Context) (T, error) {
		var zero T
		return zero, err
	})
}

// Execute runs the call on the caller's goroutine and returns its result.
func (c *Call[T]) Execute(ctx context.Context) (T, error) {
	c.start(ctx)
	<-c.done
	return c.result.Value, c.result.Err
}

// Enqueue runs the call on a background goroutine and invokes callback
// exactly once with the result, from that goroutine.
func (c *Call[T]) Enqueue(ctx context.Context, callback func(Result[T])) {
	go func() {
		c.start(ctx)
		<-c.done
		if callback != nil {
			callback(c.result)
		}
	}()
}

func (c *Call[T]) start(ctx context.Context) {
	c.once.Do(func() {
		defer close(c.done)
		if err := ctx.Err(); err != nil {
			c.result.Err = Wrap(ErrCodeTransport, err.Error(), err)
			return
		}
		value, err := c.run(ctx)
		c.result = Result[T]{Value: value, Err: err}
	})
}
