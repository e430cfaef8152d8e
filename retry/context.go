package retry

import "context"

type runIDKey struct{}

func withRunID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, runIDKey{}, id)
}

// RunIDFromContext attempts to retrieve the retry run id string from the
// current context. The run id is added to the context by a Retrier before
// invoking the operation and matches the retry_run_id field on the Retrier's
// own log lines, so an operation can correlate its logging with the run.
func RunIDFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(runIDKey{}).(string)
	return v, ok
}
