// Package retry reruns an operation whose outcome is a Result until it lands
// on the success rail or the attempt budget is spent. A predicate can rule a
// failure out of retrying early, and attempts can be paced with a token
// bucket shared by every goroutine using the same Retrier.
//
// The Result stays the domain outcome: a run that ends on a failure simply
// hands that failure back. Only an abandoned run, one cut short by its
// context, is reported as an error.
package retry

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/abevier/rsk/futures"
	"github.com/abevier/rsk/results"
)

// Operation produces the Result of a single attempt at task. The attempt
// counter starts at 1.
type Operation[T any, S any, E any] func(ctx context.Context, task T, attempt int) results.Result[S, E]

// Retrier reruns an Operation according to its Opts. A single Retrier can be
// shared by any number of goroutines and pacing applies across all of them.
type Retrier[T any, S any, E any] struct {
	maxAttempts int
	limiter     *rate.Limiter
	logger      *zap.Logger

	retryable func(E) bool
	op        Operation[T, S, E]
}

// New creates a Retrier that retries every failure. It panics when opts are
// malformed.
func New[T any, S any, E any](opts Opts, op Operation[T, S, E]) *Retrier[T, S, E] {
	return NewWhen(opts, nil, op)
}

// NewWhen creates a Retrier that retries only failures for which retryable
// returns true; any other failure ends the run immediately. A nil retryable
// retries every failure. It panics when opts are malformed.
func NewWhen[T any, S any, E any](opts Opts, retryable func(E) bool, op Operation[T, S, E]) *Retrier[T, S, E] {
	opts.validate()

	limit := rate.Limit(opts.Limit)
	if limit == 0 {
		limit = rate.Inf
	}

	burst := opts.Burst
	if burst == 0 {
		burst = 1
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Retrier[T, S, E]{
		maxAttempts: opts.MaxAttempts,
		limiter:     rate.NewLimiter(limit, burst),
		logger:      logger,
		retryable:   retryable,
		op:          op,
	}
}

// Do runs the operation against task until it succeeds, its failure is ruled
// out by the retryable predicate, or MaxAttempts is reached, and returns the
// final Result. The error is non-nil only when ctx ended the run before a
// final Result was reached; the accompanying Result then holds the last
// failure observed, or the zero Result when no attempt ran.
func (r *Retrier[T, S, E]) Do(ctx context.Context, task T) (results.Result[S, E], error) {
	runID := uuid.New().String()
	log := r.logger.With(zap.String("retry_run_id", runID))
	ctx = withRunID(ctx, runID)

	var last results.Result[S, E]

	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		if err := r.limiter.Wait(ctx); err != nil {
			log.Debug("retry run abandoned", zap.Int("attempts", attempt-1), zap.Error(err))
			return last, err
		}

		last = r.op(ctx, task, attempt)
		if last.IsSuccess() {
			return last, nil
		}

		failure := last.UnwrapFailure()
		if r.retryable != nil && !r.retryable(failure) {
			log.Debug("failure is not retryable", zap.Int("attempt", attempt), zap.Any("failure", failure))
			return last, nil
		}

		log.Debug("attempt failed", zap.Int("attempt", attempt), zap.Any("failure", failure))
	}

	log.Debug("attempt budget spent", zap.Int("attempts", r.maxAttempts))
	return last, nil
}

// DoF is Do running in its own goroutine. The returned future completes with
// the final Result, or fails when ctx ended the run early.
func (r *Retrier[T, S, E]) DoF(ctx context.Context, task T) *futures.Future[results.Result[S, E]] {
	return futures.FromFunc(func() (results.Result[S, E], error) {
		return r.Do(ctx, task)
	})
}
