package results

// Map applies fn to the success value and wraps its output as a success.
// A failure passes through with fn left uninvoked; only the success rail is
// ever transformed, so the tag never changes.
func Map[S, E, S2 any](r Result[S, E], fn func(S) S2) Result[S2, E] {
	if !r.ok {
		return Failure[S2, E](r.failure)
	}
	return Success[S2, E](fn(r.val))
}

// MapFailure applies fn to the failure value and wraps its output as a
// failure. A success passes through with fn left uninvoked.
func MapFailure[S, E, E2 any](r Result[S, E], fn func(E) E2) Result[S, E2] {
	if r.ok {
		return Success[S, E2](r.val)
	}
	return Failure[S, E2](fn(r.failure))
}

// FlatMap applies fn to the success value and returns fn's Result as-is, so a
// pipeline can both transform and turn into a failure mid-chain. A failure
// passes through with fn left uninvoked.
func FlatMap[S, E, S2 any](r Result[S, E], fn func(S) Result[S2, E]) Result[S2, E] {
	if !r.ok {
		return Failure[S2, E](r.failure)
	}
	return fn(r.val)
}

// FlatMapFailure applies fn to the failure value and returns fn's Result
// as-is, which lets a chain recover from a failure by producing a success.
// A success passes through with fn left uninvoked.
func FlatMapFailure[S, E, E2 any](r Result[S, E], fn func(E) Result[S, E2]) Result[S, E2] {
	if r.ok {
		return Success[S, E2](r.val)
	}
	return fn(r.failure)
}

// Fold collapses the Result into a single value by applying onSuccess or
// onFailure to whichever payload is present.
func Fold[S, E, U any](r Result[S, E], onSuccess func(S) U, onFailure func(E) U) U {
	if r.ok {
		return onSuccess(r.val)
	}
	return onFailure(r.failure)
}
