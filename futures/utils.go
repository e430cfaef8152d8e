package futures

import (
	"context"

	"github.com/abevier/rsk/results"
)

// ResolveAll awaits every future in fs and returns one Result per future, in
// the same order. If ctx is done before every future has settled, the context
// error is returned instead of the partial slice.
func ResolveAll[T any](ctx context.Context, fs []*Future[T]) ([]results.Result[T, error], error) {
	rs := make([]results.Result[T, error], 0, len(fs))

	for _, f := range fs {
		rs = append(rs, f.GetResult(ctx))
		// the context is checked after the Get so a future that settled at the
		// same instant the context expired still reports its outcome
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
	}

	return rs, nil
}
