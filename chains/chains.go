// Package chains layers a fluent builder over the results package so a
// pipeline of transforms reads top to bottom in application order. Steps that
// keep the payload types fixed are methods on Chain; steps that change a
// payload type are package functions, because Go methods cannot introduce new
// type parameters.
package chains

import "github.com/abevier/rsk/results"

// Chain carries a Result through a sequence of steps. The zero value rides
// the failure rail with a zero failure payload, matching the Result zero
// value.
type Chain[S, E any] struct {
	res results.Result[S, E]
}

// Start begins a chain from an existing Result.
func Start[S, E any](r results.Result[S, E]) Chain[S, E] {
	return Chain[S, E]{res: r}
}

// FromValue begins a chain on the success rail.
func FromValue[S, E any](val S) Chain[S, E] {
	return Chain[S, E]{res: results.Success[S, E](val)}
}

// FromFailure begins a chain on the failure rail.
func FromFailure[S, E any](failure E) Chain[S, E] {
	return Chain[S, E]{res: results.Failure[S, E](failure)}
}

// Result returns the Result the chain has accumulated so far.
func (c Chain[S, E]) Result() results.Result[S, E] {
	return c.res
}

// Then applies fn to the success value and adopts the Result it returns. On
// the failure rail fn is not invoked.
func (c Chain[S, E]) Then(fn func(S) results.Result[S, E]) Chain[S, E] {
	return Chain[S, E]{res: results.FlatMap(c.res, fn)}
}

// Map applies fn to the success value. On the failure rail fn is not invoked.
func (c Chain[S, E]) Map(fn func(S) S) Chain[S, E] {
	return Chain[S, E]{res: results.Map(c.res, fn)}
}

// MapFailure applies fn to the failure payload. On the success rail fn is not
// invoked.
func (c Chain[S, E]) MapFailure(fn func(E) E) Chain[S, E] {
	return Chain[S, E]{res: results.MapFailure(c.res, fn)}
}

// OrElse applies fn to the failure payload and adopts the Result it returns,
// giving the chain a way back onto the success rail. On the success rail fn
// is not invoked.
func (c Chain[S, E]) OrElse(fn func(E) results.Result[S, E]) Chain[S, E] {
	return Chain[S, E]{res: results.FlatMapFailure(c.res, fn)}
}

// Tee hands the success value to fn for its side effect and leaves the chain
// unchanged.
func (c Chain[S, E]) Tee(fn func(S)) Chain[S, E] {
	return Chain[S, E]{res: c.res.Tap(fn)}
}

// TeeFailure hands the failure payload to fn for its side effect and leaves
// the chain unchanged.
func (c Chain[S, E]) TeeFailure(fn func(E)) Chain[S, E] {
	return Chain[S, E]{res: c.res.TapFailure(fn)}
}

// Then applies a switching transform that moves the chain to a new success
// type.
func Then[S, E, S2 any](c Chain[S, E], fn func(S) results.Result[S2, E]) Chain[S2, E] {
	return Chain[S2, E]{res: results.FlatMap(c.res, fn)}
}

// Map applies a plain transform that moves the chain to a new success type.
func Map[S, E, S2 any](c Chain[S, E], fn func(S) S2) Chain[S2, E] {
	return Chain[S2, E]{res: results.Map(c.res, fn)}
}

// MapFailure applies a plain transform that moves the chain to a new failure
// type.
func MapFailure[S, E, E2 any](c Chain[S, E], fn func(E) E2) Chain[S, E2] {
	return Chain[S, E2]{res: results.MapFailure(c.res, fn)}
}

// Try lifts a conventional (value, error) function into a chain whose failure
// rail carries errors.
func Try[S, S2 any](c Chain[S, error], fn func(S) (S2, error)) Chain[S2, error] {
	return Chain[S2, error]{res: results.FlatMap(c.res, func(val S) results.Result[S2, error] {
		return results.Wrap(fn(val))
	})}
}

// Finally collapses the chain into a single value by applying exactly one of
// the two functions.
func Finally[S, E, U any](c Chain[S, E], onSuccess func(S) U, onFailure func(E) U) U {
	return results.Fold(c.res, onSuccess, onFailure)
}
