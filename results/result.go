// Package results provides a Result container that holds exactly one of a
// success value or a failure value, plus the combinators to transform and
// aggregate Results without unwrapping them first.
//
// A Result is a pure value: immutable after construction and safe to share
// between goroutines without synchronization. Failures a caller's domain
// cares about travel as ordinary
// failure payloads inside a Result rather than as errors bubbling up the call
// stack; the only operations in this package that can panic are Unwrap and
// UnwrapFailure, and only when called on the wrong variant.
//
// Transformations that change a payload type (Map, FlatMap and friends) are
// package-level functions because Go methods cannot introduce new type
// parameters. Operations that keep the payload types fixed (Tap, UnwrapOr)
// are methods.
package results

import "fmt"

// Result holds either a success value of type S or a failure value of type E,
// never both and never neither. The two variants are built with Success and
// Failure; there is no usable empty state. The zero value is observably
// identical to Failure of E's zero value.
//
// A Result is comparable when S and E are comparable, so two Results built
// from equal payloads compare equal.
type Result[S, E any] struct {
	ok      bool
	val     S
	failure E
}

// Success returns a success-tagged Result holding val.
func Success[S, E any](val S) Result[S, E] {
	return Result[S, E]{ok: true, val: val}
}

// Failure returns a failure-tagged Result holding failure.
func Failure[S, E any](failure E) Result[S, E] {
	return Result[S, E]{failure: failure}
}

// Ok is a shorthand alias for Success.
func Ok[S, E any](val S) Result[S, E] {
	return Success[S, E](val)
}

// Fail is a shorthand alias for Failure.
func Fail[S, E any](failure E) Result[S, E] {
	return Failure[S, E](failure)
}

// Wrap converts a conventional (value, error) pair into a Result, failing
// when err is non-nil.
func Wrap[S any](val S, err error) Result[S, error] {
	if err != nil {
		return Failure[S, error](err)
	}
	return Success[S, error](val)
}

// IsSuccess reports whether the Result is success-tagged.
func (r Result[S, E]) IsSuccess() bool {
	return r.ok
}

// IsFailure reports whether the Result is failure-tagged. Exactly one of
// IsSuccess and IsFailure is true for every Result.
func (r Result[S, E]) IsFailure() bool {
	return !r.ok
}

// Unwrap returns the success value. It panics with ErrNoSuccessValue when
// called on a failure.
//
// Unwrap is an escape hatch. Prefer Map/FlatMap chains, Fold, or an explicit
// IsSuccess check over unwrapping blind.
func (r Result[S, E]) Unwrap() S {
	if !r.ok {
		panic(ErrNoSuccessValue)
	}
	return r.val
}

// UnwrapFailure returns the failure value. It panics with ErrNoFailureValue
// when called on a success.
//
// Like Unwrap, this is an escape hatch for call sites that have already
// checked the tag.
func (r Result[S, E]) UnwrapFailure() E {
	if r.ok {
		panic(ErrNoFailureValue)
	}
	return r.failure
}

// UnwrapOr returns the success value, or fallback when the Result is a
// failure.
func (r Result[S, E]) UnwrapOr(fallback S) S {
	if !r.ok {
		return fallback
	}
	return r.val
}

// UnwrapOrElse returns the success value, or the value computed from the
// failure payload when the Result is a failure.
func (r Result[S, E]) UnwrapOrElse(fn func(E) S) S {
	if !r.ok {
		return fn(r.failure)
	}
	return r.val
}

// Tap invokes fn with the success value and returns the Result unchanged.
// fn is not invoked on a failure.
func (r Result[S, E]) Tap(fn func(S)) Result[S, E] {
	if r.ok {
		fn(r.val)
	}
	return r
}

// TapFailure invokes fn with the failure value and returns the Result
// unchanged. fn is not invoked on a success.
func (r Result[S, E]) TapFailure(fn func(E)) Result[S, E] {
	if !r.ok {
		fn(r.failure)
	}
	return r
}

func (r Result[S, E]) String() string {
	if r.ok {
		return fmt.Sprintf("Success(%v)", r.val)
	}
	return fmt.Sprintf("Failure(%v)", r.failure)
}

// anySuccess and anyFailure let the keyed aggregation functions read payloads
// out of Results whose type parameters are unknown at the call site. Being
// unexported, they also close the anyResult interface: no type outside this
// package can satisfy it, however similar its method set looks.

func (r Result[S, E]) anySuccess() any {
	return r.val
}

func (r Result[S, E]) anyFailure() any {
	return r.failure
}
