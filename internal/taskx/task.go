package taskx

import (
	"errors"
	"fmt"
	"time"
)

// ErrNoResult is returned when the operation's goroutine terminated without
// producing a result.
var ErrNoResult = errors.New("task finished without a result")

// Result is the one-shot outcome of a task.
type Result[T any] struct {
	Value T
	Err   error
}

// Task is a handle on an operation dispatched by Go. A Task has a single
// consumer; it is not safe to Poll from several goroutines.
type Task[T any] struct {
	done    chan Result[T]
	started time.Time

	// fault is written by the producer before done is closed.
	fault error

	observed *Result[T]
}

// Go dispatches op on a new goroutine and returns immediately.
func Go[T any](op func() (T, error)) *Task[T] {
	t := &Task[T]{
		done:    make(chan Result[T], 1),
		started: time.Now(),
	}

	go func() {
		defer close(t.done)
		defer func() {
			if r := recover(); r != nil {
				t.fault = fmt.Errorf("%w: panic: %v", ErrNoResult, r)
			}
		}()

		v, err := op()
		t.done <- Result[T]{Value: v, Err: err}
	}()

	return t
}

// Started returns the dispatch time.
func (t *Task[T]) Started() time.Time {
	return t.started
}

// Poll reports the task's result without blocking. ok is false while the
// operation is still running. Once a result has been observed, later calls
// return the same result.
func (t *Task[T]) Poll() (res Result[T], ok bool) {
	if t.observed != nil {
		return *t.observed, true
	}

	select {
	case r, open := <-t.done:
		if !open {
			err := t.fault
			if err == nil {
				err = ErrNoResult
			}
			r = Result[T]{Err: err}
		}
		t.observed = &r
		return r, true
	default:
		return Result[T]{}, false
	}
}
