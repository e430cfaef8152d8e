// Package futures provides a Future, a one-shot handle for the value that a
// concurrent computation will eventually produce. Unlike a channel, a Future
// can be handed to any number of consumers and read repeatedly, and every
// reader observes the same outcome.
package futures

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/abevier/rsk/results"
)

var (
	// ErrCanceled is the error a future reports after being completed by Cancel.
	ErrCanceled = errors.New("future canceled")

	// ErrNilFailure is the error a future built by FromResult reports when the
	// bridged Result is failure-tagged but carries a nil error payload.
	ErrNilFailure = errors.New("result failed with a nil error")
)

// FutureFunc is the function signature accepted by FromFunc.
type FutureFunc[T any] func() (T, error)

// Future represents the pending outcome of an asynchronous computation.
// A Future is created with New, FromFunc, Resolved or FromResult. Once created
// it completes exactly once: the first call to Complete, Fail or Cancel wins
// and every later completion is silently ignored.
//
// Get blocks until the future completes or the supplied context is done. It
// can be called from any number of goroutines and all of them receive the
// same value and error.
type Future[T any] struct {
	done      uint32
	completed chan struct{}

	value T
	err   error
}

// New creates an uncompleted Future that must later be settled by calling
// Complete, Fail or Cancel.
func New[T any]() *Future[T] {
	return &Future[T]{
		completed: make(chan struct{}),
	}
}

// FromFunc runs do in its own goroutine and returns a Future that completes
// with the function's return value, or fails with its error.
func FromFunc[T any](do FutureFunc[T]) *Future[T] {
	f := New[T]()

	go func() {
		t, err := do()
		if err != nil {
			f.Fail(err)
			return
		}
		f.Complete(t)
	}()

	return f
}

// Resolved returns a Future that is already completed with the given value.
func Resolved[T any](value T) *Future[T] {
	f := New[T]()
	f.Complete(value)
	return f
}

// FromResult returns a Future that is already settled with the outcome held
// by r: completed with its success value, or failed with its failure error.
// A failure carrying a nil error is failed with ErrNilFailure, so the failure
// rail survives the bridge.
func FromResult[T any](r results.Result[T, error]) *Future[T] {
	f := New[T]()
	if r.IsFailure() {
		err := r.UnwrapFailure()
		if err == nil {
			err = ErrNilFailure
		}
		f.Fail(err)
		return f
	}
	f.Complete(r.Unwrap())
	return f
}

// Complete settles this Future with the provided value. If the future has
// already been settled this call is ignored.
func (f *Future[T]) Complete(value T) {
	f.settle(value, nil)
}

// Cancel settles this Future with ErrCanceled. If the future has already been
// settled this call is ignored.
func (f *Future[T]) Cancel() {
	f.Fail(ErrCanceled)
}

// Fail settles this Future with the provided error. If the future has already
// been settled this call is ignored.
func (f *Future[T]) Fail(err error) {
	f.settle(*new(T), err)
}

func (f *Future[T]) settle(val T, err error) {
	if atomic.CompareAndSwapUint32(&f.done, 0, 1) {
		f.value = val
		f.err = err
		close(f.completed)
	}
}

// IsDone reports whether the future has been settled.
func (f *Future[T]) IsDone() bool {
	return atomic.LoadUint32(&f.done) == 1
}

// Get retrieves the outcome of this Future, blocking until the future settles
// or ctx is done. A future that has already settled always reports its
// outcome, even when ctx has expired.
func (f *Future[T]) Get(ctx context.Context) (T, error) {
	select {
	case <-f.completed:
		return f.value, f.err
	default:
	}

	select {
	case <-f.completed:
		return f.value, f.err
	case <-ctx.Done():
		return *new(T), ctx.Err()
	}
}

// GetResult is Get with the outcome folded into a Result. A failed or
// canceled future surfaces as a failure carrying its error, and a context
// error is reported the same way.
func (f *Future[T]) GetResult(ctx context.Context) results.Result[T, error] {
	return results.Wrap(f.Get(ctx))
}
