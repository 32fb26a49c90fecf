// Package task runs a function in the background and lets callers wait for
// its result. A started task always runs to completion; waiting with a
// context only bounds how long the caller blocks.
package task

import (
	"context"
	"time"
)

type Task[T any] struct {
	done   chan struct{}
	result T
	err    error
}

// Run starts fn in its own goroutine. fn receives a context that is never
// cancelled by callers of Wait.
func Run[T any](fn func(ctx context.Context) (T, error)) *Task[T] {
	t := &Task[T]{done: make(chan struct{})}
	go func() {
		defer close(t.done)
		t.result, t.err = fn(context.Background())
	}()
	return t
}

// Done returns a value and error immediately, without a goroutine.
func Done[T any](result T, err error) *Task[T] {
	t := &Task[T]{done: make(chan struct{}), result: result, err: err}
	close(t.done)
	return t
}

func (t *Task[T]) Done() <-chan struct{} {
	return t.done
}

// Wait blocks until the task finishes or ctx ends. On ctx end it returns
// ctx.Err() and the zero value; the task itself keeps running.
func (t *Task[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-t.done:
		return t.result, t.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Sleep pauses for d. It exists so simulated latency reads the same
// everywhere; a zero or negative d returns at once.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
