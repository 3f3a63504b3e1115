package retry

import (
	"context"
	"errors"
	"time"

	ai "github.com/spetersoncode/nanobanana"
)

func retryAfterFromError(err error) time.Duration {
	var ce ai.CategorizedError
	if errors.As(err, &ce) {
		return ce.RetryAfter()
	}
	return 0
}

// effectiveDelay honors the server's Retry-After when it exceeds the backoff.
func effectiveDelay(configuredDelay time.Duration, err error) time.Duration {
	if serverDelay := retryAfterFromError(err); serverDelay > configuredDelay {
		return serverDelay
	}
	return configuredDelay
}

// Do calls fn until it succeeds, returns a non-transient error, or the
// attempt budget runs out. The last error is returned unchanged.
// Context cancellation during a backoff wait returns ctx.Err().
func Do[T any](ctx context.Context, cfg Config, fn func() (T, error)) (T, error) {
	var zero T
	var lastErr error

	attempts := cfg.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	for attempt := 0; attempt < attempts; attempt++ {
		result, err := fn()
		if err == nil {
			return result, nil
		}
		lastErr = err

		if !IsTransient(err) {
			return zero, err
		}

		if attempt < attempts-1 {
			delay := effectiveDelay(cfg.Delay(attempt), err)
			if cfg.OnRetry != nil {
				cfg.OnRetry(attempt+1, delay, err)
			}

			select {
			case <-ctx.Done():
				return zero, ctx.Err()
			case <-time.After(delay):
			}
		}
	}

	return zero, lastErr
}
