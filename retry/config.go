package retry

import (
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Limit is a rate limit expressed as attempts per second.
type Limit = rate.Limit

// Every converts the interval between attempts into a Limit.
// For instance Every(100 * time.Millisecond) yields 10 attempts per second.
func Every(interval time.Duration) Limit {
	return rate.Every(interval)
}

// Opts is used to configure a Retrier via the New function.
type Opts struct {
	// MaxAttempts is the number of times the operation is tried before its
	// last failure is handed back.
	MaxAttempts int
	// Limit paces attempts, expressed in attempts per second. Zero means
	// attempts are not paced.
	Limit Limit
	// Burst is the size of the token bucket used for pacing.
	// Zero means a bucket of one.
	Burst int
	// Logger receives a debug line per failed attempt. Nil disables logging.
	Logger *zap.Logger
}

func (o Opts) validate() {
	if o.MaxAttempts < 1 {
		panic("retry max attempts must be 1 or greater")
	}

	if o.Limit < 0 {
		panic("retry limit must be 0 or greater")
	}

	if o.Burst < 0 {
		panic("retry burst must be 0 or greater")
	}
}
