package retry

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/abevier/rsk/results"
)

func TestDoSucceedsOnFirstAttempt(t *testing.T) {
	require := require.New(t)

	calls := 0
	rt := New(Opts{MaxAttempts: 3}, func(ctx context.Context, task string, attempt int) results.Result[int, string] {
		calls++
		return results.Success[int, string](len(task))
	})

	r, err := rt.Do(context.Background(), "abc")
	require.NoError(err)
	require.Equal(results.Success[int, string](3), r)
	require.Equal(1, calls)
}

func TestDoRetriesUntilSuccess(t *testing.T) {
	require := require.New(t)

	var seen []int
	rt := New(Opts{MaxAttempts: 5}, func(ctx context.Context, task int, attempt int) results.Result[int, string] {
		seen = append(seen, attempt)
		if attempt < 3 {
			return results.Failure[int, string]("transient")
		}
		return results.Success[int, string](task * attempt)
	})

	r, err := rt.Do(context.Background(), 7)
	require.NoError(err)
	require.Equal(results.Success[int, string](21), r)
	require.Equal([]int{1, 2, 3}, seen)
}

func TestDoReturnsLastFailureWhenBudgetSpent(t *testing.T) {
	require := require.New(t)

	rt := New(Opts{MaxAttempts: 3}, func(ctx context.Context, task int, attempt int) results.Result[int, string] {
		return results.Failure[int, string]("attempt " + strconv.Itoa(attempt))
	})

	r, err := rt.Do(context.Background(), 0)
	require.NoError(err)
	require.Equal(results.Failure[int, string]("attempt 3"), r)
}

func TestNewWhenStopsOnNonRetryableFailure(t *testing.T) {
	require := require.New(t)

	calls := 0
	retryable := func(msg string) bool { return msg == "transient" }

	rt := NewWhen(Opts{MaxAttempts: 5}, retryable, func(ctx context.Context, task int, attempt int) results.Result[int, string] {
		calls++
		if attempt == 1 {
			return results.Failure[int, string]("transient")
		}
		return results.Failure[int, string]("fatal")
	})

	r, err := rt.Do(context.Background(), 0)
	require.NoError(err)
	require.Equal(results.Failure[int, string]("fatal"), r)
	require.Equal(2, calls)
}

func TestDoAbandonedBeforeFirstAttempt(t *testing.T) {
	require := require.New(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	rt := New(Opts{MaxAttempts: 3}, func(ctx context.Context, task int, attempt int) results.Result[int, string] {
		calls++
		return results.Success[int, string](task)
	})

	r, err := rt.Do(ctx, 1)
	require.ErrorIs(err, context.Canceled)
	require.True(r.IsFailure())
	require.Equal(0, calls)
}

func TestDoAbandonedByPacing(t *testing.T) {
	require := require.New(t)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	calls := 0
	rt := New(Opts{MaxAttempts: 5, Limit: Every(time.Minute), Burst: 1}, func(ctx context.Context, task int, attempt int) results.Result[int, string] {
		calls++
		return results.Failure[int, string]("attempt " + strconv.Itoa(attempt))
	})

	r, err := rt.Do(ctx, 0)
	require.Error(err)
	require.Equal(results.Failure[int, string]("attempt 1"), r)
	require.Equal(1, calls)
}

func TestDoF(t *testing.T) {
	require := require.New(t)

	rt := New(Opts{MaxAttempts: 3}, func(ctx context.Context, task string, attempt int) results.Result[int, string] {
		if attempt < 2 {
			return results.Failure[int, string]("transient")
		}
		return results.Success[int, string](len(task) * attempt)
	})

	f := rt.DoF(context.Background(), "ab")

	r, err := f.Get(context.Background())
	require.NoError(err)
	require.Equal(results.Success[int, string](4), r)
}

func TestDoFFailsWhenAbandoned(t *testing.T) {
	require := require.New(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rt := New(Opts{MaxAttempts: 3}, func(ctx context.Context, task int, attempt int) results.Result[int, string] {
		return results.Success[int, string](task)
	})

	f := rt.DoF(ctx, 1)

	_, err := f.Get(context.Background())
	require.ErrorIs(err, context.Canceled)
}

func TestRunIDFromContext(t *testing.T) {
	require := require.New(t)

	var ids []string
	rt := New(Opts{MaxAttempts: 2}, func(ctx context.Context, task int, attempt int) results.Result[int, string] {
		id, ok := RunIDFromContext(ctx)
		require.True(ok)
		ids = append(ids, id)

		if attempt == 1 {
			return results.Failure[int, string]("transient")
		}
		return results.Success[int, string](task)
	})

	_, err := rt.Do(context.Background(), 1)
	require.NoError(err)
	require.Len(ids, 2)
	require.NotEmpty(ids[0])
	require.Equal(ids[0], ids[1])

	_, err = rt.Do(context.Background(), 1)
	require.NoError(err)
	require.Len(ids, 4)
	require.NotEqual(ids[0], ids[2])

	_, ok := RunIDFromContext(context.Background())
	require.False(ok)
}

func TestDoLogsFailedAttempts(t *testing.T) {
	require := require.New(t)

	core, logs := observer.New(zap.DebugLevel)

	rt := New(Opts{MaxAttempts: 2, Logger: zap.New(core)}, func(ctx context.Context, task int, attempt int) results.Result[int, string] {
		return results.Failure[int, string]("nope")
	})

	_, err := rt.Do(context.Background(), 0)
	require.NoError(err)

	failed := logs.FilterMessage("attempt failed").All()
	require.Len(failed, 2)
	require.Equal(int64(1), failed[0].ContextMap()["attempt"])
	require.Equal(int64(2), failed[1].ContextMap()["attempt"])
	require.NotEmpty(failed[0].ContextMap()["retry_run_id"])

	spent := logs.FilterMessage("attempt budget spent").All()
	require.Len(spent, 1)
}
