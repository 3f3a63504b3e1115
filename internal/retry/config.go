// Package retry retries transient generateContent failures with exponential backoff.
package retry

import (
	"math"
	"math/rand"
	"time"
)

// Config holds retry configuration parameters.
type Config struct {
	// MaxAttempts is the maximum number of attempts.
	// The initial request counts as attempt 1.
	MaxAttempts int

	// InitialDelay is the base delay before the first retry.
	InitialDelay time.Duration

	// MaxDelay caps the delay between retries.
	MaxDelay time.Duration

	// Multiplier is the exponential backoff multiplier.
	Multiplier float64

	// Jitter adds randomness in the range [-Jitter, +Jitter] of the delay.
	Jitter float64

	// OnRetry, when set, is called before sleeping between attempts.
	// attempt is 1-indexed and refers to the attempt that just failed.
	OnRetry func(attempt int, delay time.Duration, err error)
}

// DefaultConfig returns the backoff used when retries are switched on:
// 3 attempts, 2s initial delay, 30s max delay, 2x multiplier, 10% jitter.
// Image generation is slow and billed per call, so the budget is small.
func DefaultConfig() Config {
	return Config{
		MaxAttempts:  3,
		InitialDelay: 2 * time.Second,
		MaxDelay:     30 * time.Second,
		Multiplier:   2.0,
		Jitter:       0.1,
	}
}

// Disabled returns a configuration that performs a single attempt.
func Disabled() Config {
	return Config{MaxAttempts: 1}
}

// WithMaxAttempts returns DefaultConfig with the attempt budget replaced.
// n <= 1 yields Disabled.
func WithMaxAttempts(n int) Config {
	if n <= 1 {
		return Disabled()
	}
	cfg := DefaultConfig()
	cfg.MaxAttempts = n
	return cfg
}

// Delay calculates the delay for a given attempt number (0-indexed).
// Formula: min(maxDelay, initialDelay * multiplier^attempt) * (1 + jitter)
func (c Config) Delay(attempt int) time.Duration {
	if attempt < 0 {
		attempt = 0
	}

	delay := float64(c.InitialDelay) * math.Pow(c.Multiplier, float64(attempt))
	if delay > float64(c.MaxDelay) {
		delay = float64(c.MaxDelay)
	}

	if c.Jitter > 0 {
		jitterFactor := 1.0 + (rand.Float64()*2-1)*c.Jitter
		delay *= jitterFactor
	}

	return time.Duration(delay)
}
