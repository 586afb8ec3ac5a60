// Package retry wraps avast/retry-go behind a small interface with
// functional options. Delays grow exponentially between attempts and are
// capped by a maximum; an optional predicate restricts which errors are
// retried.
//
//	r := retry.New(retry.WithAttempts(5), retry.WithDelay(500*time.Millisecond))
//	err := r.Execute(ctx, func() error { return fetch(ctx) })
package retry

import (
	"context"
	"time"

	retry "github.com/avast/retry-go/v4"
)

// Retry executes operations with retry semantics.
type Retry interface {
	// Execute runs operation until it returns nil, a non-retryable error is
	// returned, the attempts are exhausted, or ctx is done.
	//
	// operation must be safe to call more than once.
	Execute(ctx context.Context, operation func() error) error
}

// config holds internal settings for the retry mechanism.
type config struct {
	attempts uint             // maximum number of attempts, 0 means until ctx is done
	delay    time.Duration    // base delay between attempts
	maxDelay time.Duration    // cap for the exponential delay
	retryIf  func(error) bool // which errors are worth another attempt
}

// Option configures a Retry built by New.
type Option func(*config)

type retrier struct {
	cfg config
}

var _ Retry = (*retrier)(nil)

// New creates a Retry. Only the last attempt's error is returned. Defaults:
//   - attempts: 3
//   - delay:    1 second
//   - maxDelay: 5 seconds
//   - retryIf:  every error
func New(opts ...Option) Retry {
	cfg := config{
		attempts: 3,
		delay:    1 * time.Second,
		maxDelay: 5 * time.Second,
		retryIf:  func(error) bool { return true },
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &retrier{cfg: cfg}
}

// Execute implements Retry.
func (r *retrier) Execute(ctx context.Context, operation func() error) error {
	options := []retry.Option{
		retry.Attempts(r.cfg.attempts),
		retry.Delay(r.cfg.delay),
		retry.MaxDelay(r.cfg.maxDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(r.cfg.retryIf),
		retry.Context(ctx),
	}

	return retry.Do(operation, options...)
}

// WithAttempts sets the maximum number of attempts including the first one.
// Zero keeps retrying until the context is done.
func WithAttempts(n uint) Option {
	return func(c *config) {
		c.attempts = n
	}
}

// WithDelay sets the base delay between attempts.
func WithDelay(d time.Duration) Option {
	return func(c *config) {
		c.delay = d
	}
}

// WithMaxDelay caps the exponential delay between attempts.
func WithMaxDelay(d time.Duration) Option {
	return func(c *config) {
		c.maxDelay = d
	}
}

// WithRetryIf restricts retries to errors for which f returns true. Any other
// error ends Execute immediately.
func WithRetryIf(f func(error) bool) Option {
	return func(c *config) {
		c.retryIf = f
	}
}
