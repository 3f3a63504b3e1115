package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ai "github.com/spetersoncode/nanobanana"
)

func fastConfig(attempts int) Config {
	return Config{
		MaxAttempts:  attempts,
		InitialDelay: time.Millisecond,
		MaxDelay:     5 * time.Millisecond,
		Multiplier:   2.0,
	}
}

func TestDoSuccess(t *testing.T) {
	calls := 0
	result, err := Do(context.Background(), DefaultConfig(), func() (string, error) {
		calls++
		return "ok", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "ok", result)
	assert.Equal(t, 1, calls)
}

func TestDoRetriesTransientErrors(t *testing.T) {
	calls := 0
	var retried []int
	cfg := fastConfig(3)
	cfg.OnRetry = func(attempt int, _ time.Duration, _ error) {
		retried = append(retried, attempt)
	}

	result, err := Do(context.Background(), cfg, func() (string, error) {
		calls++
		if calls < 3 {
			return "", ai.NewStatusError(503, "busy", 0)
		}
		return "ok", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "ok", result)
	assert.Equal(t, 3, calls)
	assert.Equal(t, []int{1, 2}, retried)
}

func TestDoStopsOnNonTransientError(t *testing.T) {
	calls := 0
	want := ai.NewStatusError(400, "bad", 0)

	_, err := Do(context.Background(), fastConfig(5), func() (string, error) {
		calls++
		return "", want
	})

	assert.Same(t, want, err)
	assert.Equal(t, 1, calls)
}

func TestDoExhaustsAttempts(t *testing.T) {
	calls := 0
	want := ai.NewStatusError(500, "down", 0)

	_, err := Do(context.Background(), fastConfig(3), func() (int, error) {
		calls++
		return 0, want
	})

	assert.Same(t, want, err)
	assert.Equal(t, 3, calls)
}

func TestDoDisabledMakesOneAttempt(t *testing.T) {
	for _, cfg := range []Config{Disabled(), {}} {
		calls := 0
		_, err := Do(context.Background(), cfg, func() (int, error) {
			calls++
			return 0, ai.NewStatusError(429, "", 0)
		})
		assert.Error(t, err)
		assert.Equal(t, 1, calls)
	}
}

func TestDoRespectsContextCancellation(t *testing.T) {
	cfg := Config{MaxAttempts: 10, InitialDelay: time.Second, MaxDelay: time.Second, Multiplier: 1}
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	calls := 0
	_, err := Do(ctx, cfg, func() (int, error) {
		calls++
		return 0, ai.NewStatusError(503, "", 0)
	})

	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, 1, calls)
}

func TestEffectiveDelay(t *testing.T) {
	withHint := ai.NewStatusError(429, "", 3*time.Second)
	assert.Equal(t, 3*time.Second, effectiveDelay(time.Second, withHint))
	assert.Equal(t, 5*time.Second, effectiveDelay(5*time.Second, withHint))
	assert.Equal(t, time.Second, effectiveDelay(time.Second, errors.New("plain")))
}
