package client

import (
	"github.com/spetersoncode/nanobanana/internal/retry"
)

// RetryConfig holds retry configuration parameters.
type RetryConfig = retry.Config

// DefaultRetryConfig returns the backoff used when retries are enabled.
//   - 3 max attempts
//   - 2 second initial delay
//   - 30 second max delay
//   - 2x exponential multiplier
//   - 10% jitter
func DefaultRetryConfig() RetryConfig {
	return retry.DefaultConfig()
}

// DisabledRetryConfig returns a configuration that disables retries (single attempt).
// This is the client default.
func DisabledRetryConfig() RetryConfig {
	return retry.Disabled()
}

// RetryConfigWithAttempts returns DefaultRetryConfig with n attempts.
// n <= 1 disables retries.
func RetryConfigWithAttempts(n int) RetryConfig {
	return retry.WithMaxAttempts(n)
}

// IsTransientError determines if an error is transient and should be retried.
// It checks for rate limits, server errors, network timeouts, and connection issues.
func IsTransientError(err error) bool {
	return retry.IsTransient(err)
}
