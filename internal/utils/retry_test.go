package utils

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWithRetryEventuallySucceeds(t *testing.T) {
	cfg := RetryConfig{MaxAttempts: 3, BaseDelay: time.Millisecond}

	attempts := 0
	err := WithRetry(context.Background(), cfg, func(ctx context.Context) error {
		attempts++
		if attempts < 3 {
			return errors.New("transient")
		}
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 3, attempts)
}

func TestWithRetryExhaustsAttempts(t *testing.T) {
	cfg := RetryConfig{MaxAttempts: 3, BaseDelay: time.Millisecond}

	attempts := 0
	wantErr := errors.New("still broken")
	err := WithRetry(context.Background(), cfg, func(ctx context.Context) error {
		attempts++
		return wantErr
	})

	assert.ErrorIs(t, err, wantErr)
	assert.Equal(t, 3, attempts)
}

func TestWithRetryStopsOnNonRetryableError(t *testing.T) {
	permanent := errors.New("bad input")
	cfg := RetryConfig{
		MaxAttempts: 3,
		BaseDelay:   time.Millisecond,
		IsRetryable: func(err error) bool { return !errors.Is(err, permanent) },
	}

	attempts := 0
	err := WithRetry(context.Background(), cfg, func(ctx context.Context) error {
		attempts++
		return permanent
	})

	assert.ErrorIs(t, err, permanent)
	assert.Equal(t, 1, attempts)
}

func TestWithRetryNormalizesConfig(t *testing.T) {
	attempts := 0
	err := WithRetry(context.Background(), RetryConfig{BaseDelay: time.Millisecond}, func(ctx context.Context) error {
		attempts++
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, attempts)
}
