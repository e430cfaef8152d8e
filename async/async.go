// Package async mirrors the transforms of the results package for transform
// functions that suspend. Each operation accepts a Result together with an
// asynchronous transform and hands back a Future carrying the rebuilt Result.
// The transform runs only when its rail is active; when the input rides the
// other rail the returned future is already settled with the payload
// repackaged, and the transform is never invoked.
package async

import (
	"context"

	"github.com/abevier/rsk/futures"
	"github.com/abevier/rsk/results"
)

// MapFunc is an asynchronous transform from a payload to a plain value.
type MapFunc[T, U any] func(ctx context.Context, val T) *futures.Future[U]

// FlatMapFunc is an asynchronous transform from a payload to a full Result.
type FlatMapFunc[T, U, E any] func(ctx context.Context, val T) *futures.Future[results.Result[U, E]]

// Map applies fn to the success value of r and rebuilds a success around the
// awaited value. If r is a failure the returned future is already settled
// with the failure carried over and fn is not invoked. If the suspension
// returned by fn fails, the returned future fails with that error.
func Map[S, E, S2 any](ctx context.Context, r results.Result[S, E], fn MapFunc[S, S2]) *futures.Future[results.Result[S2, E]] {
	if r.IsFailure() {
		return futures.Resolved(results.Failure[S2, E](r.UnwrapFailure()))
	}

	out := futures.New[results.Result[S2, E]]()

	go func() {
		v, err := fn(ctx, r.Unwrap()).Get(ctx)
		if err != nil {
			out.Fail(err)
			return
		}
		out.Complete(results.Success[S2, E](v))
	}()

	return out
}

// MapFailure applies fn to the failure payload of r and rebuilds a failure
// around the awaited value. If r is a success the returned future is already
// settled with the success carried over and fn is not invoked.
func MapFailure[S, E, E2 any](ctx context.Context, r results.Result[S, E], fn MapFunc[E, E2]) *futures.Future[results.Result[S, E2]] {
	if r.IsSuccess() {
		return futures.Resolved(results.Success[S, E2](r.Unwrap()))
	}

	out := futures.New[results.Result[S, E2]]()

	go func() {
		v, err := fn(ctx, r.UnwrapFailure()).Get(ctx)
		if err != nil {
			out.Fail(err)
			return
		}
		out.Complete(results.Failure[S, E2](v))
	}()

	return out
}

// FlatMap applies fn to the success value of r and adopts the awaited Result
// as is, letting the transform steer onto either rail. If r is a failure the
// returned future is already settled with the failure carried over and fn is
// not invoked. If the suspension returned by fn fails, the returned future
// fails with that error.
func FlatMap[S, E, S2 any](ctx context.Context, r results.Result[S, E], fn FlatMapFunc[S, S2, E]) *futures.Future[results.Result[S2, E]] {
	if r.IsFailure() {
		return futures.Resolved(results.Failure[S2, E](r.UnwrapFailure()))
	}

	out := futures.New[results.Result[S2, E]]()

	go func() {
		next, err := fn(ctx, r.Unwrap()).Get(ctx)
		if err != nil {
			out.Fail(err)
			return
		}
		out.Complete(next)
	}()

	return out
}

// FlatMapFailure applies fn to the failure payload of r and adopts the
// awaited Result as is, which lets a failure recover back onto the success
// rail. If r is a success the returned future is already settled with the
// success carried over and fn is not invoked.
func FlatMapFailure[S, E, E2 any](ctx context.Context, r results.Result[S, E], fn FlatMapFunc[E, S, E2]) *futures.Future[results.Result[S, E2]] {
	if r.IsSuccess() {
		return futures.Resolved(results.Success[S, E2](r.Unwrap()))
	}

	out := futures.New[results.Result[S, E2]]()

	go func() {
		next, err := fn(ctx, r.UnwrapFailure()).Get(ctx)
		if err != nil {
			out.Fail(err)
			return
		}
		out.Complete(next)
	}()

	return out
}
