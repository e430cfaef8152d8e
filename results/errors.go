package results

import "errors"

var (
	// ErrNoSuccessValue is the panic value raised by Unwrap on a failure.
	ErrNoSuccessValue = errors.New("result holds no success value")

	// ErrNoFailureValue is the panic value raised by UnwrapFailure on a success.
	ErrNoFailureValue = errors.New("result holds no failure value")
)
