package utils

import (
	"context"
	"time"

	"github.com/sethvargo/go-retry"
)

// RetryConfig controls WithRetry. IsRetryable classifies errors: a nil
// predicate retries everything, while errors it rejects (auth failures,
// malformed IDs) fail immediately because they will not self-resolve.
type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	IsRetryable func(error) bool
}

func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		BaseDelay:   time.Second,
	}
}

// WithRetry runs fn with exponential backoff (BaseDelay doubling per
// attempt) up to MaxAttempts total attempts.
func WithRetry(ctx context.Context, cfg RetryConfig, fn func(ctx context.Context) error) error {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	if cfg.BaseDelay <= 0 {
		cfg.BaseDelay = time.Second
	}

	backoff := retry.WithMaxRetries(uint64(cfg.MaxAttempts-1), retry.NewExponential(cfg.BaseDelay))
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := fn(ctx)
		if err == nil {
			return nil
		}
		if cfg.IsRetryable != nil && !cfg.IsRetryable(err) {
			return err
		}
		return retry.RetryableError(err)
	})
}
