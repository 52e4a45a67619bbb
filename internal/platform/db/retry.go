package db

import (
	"context"
	"time"
)

// WithRetry runs fn up to attempts times, sleeping baseDelay, 2*baseDelay,
// 4*baseDelay, ... between tries. Intended for read paths only; writes and
// transactional work stay single-shot.
func WithRetry(ctx context.Context, attempts int, baseDelay time.Duration, fn func(ctx context.Context) error) error {
	if attempts < 1 {
		attempts = 1
	}

	var err error
	delay := baseDelay
	for i := 0; i < attempts; i++ {
		err = fn(ctx)
		if err == nil {
			return nil
		}
		if i == attempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
		delay *= 2
	}
	return err
}
