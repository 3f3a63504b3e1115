package retry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 3, cfg.MaxAttempts)
	assert.Equal(t, 2*time.Second, cfg.InitialDelay)
	assert.Equal(t, 30*time.Second, cfg.MaxDelay)
	assert.Equal(t, 2.0, cfg.Multiplier)
	assert.Equal(t, 0.1, cfg.Jitter)
}

func TestDisabled(t *testing.T) {
	assert.Equal(t, 1, Disabled().MaxAttempts)
}

func TestWithMaxAttempts(t *testing.T) {
	assert.Equal(t, Disabled(), WithMaxAttempts(0))
	assert.Equal(t, Disabled(), WithMaxAttempts(1))

	cfg := WithMaxAttempts(5)
	assert.Equal(t, 5, cfg.MaxAttempts)
	assert.Equal(t, DefaultConfig().InitialDelay, cfg.InitialDelay)
}

func TestConfigDelay(t *testing.T) {
	cfg := Config{
		InitialDelay: 100 * time.Millisecond,
		MaxDelay:     10 * time.Second,
		Multiplier:   2.0,
	}

	assert.Equal(t, 100*time.Millisecond, cfg.Delay(0))
	assert.Equal(t, 200*time.Millisecond, cfg.Delay(1))
	assert.Equal(t, 400*time.Millisecond, cfg.Delay(2))
	assert.Equal(t, 100*time.Millisecond, cfg.Delay(-3))

	capped := Config{InitialDelay: time.Second, MaxDelay: 5 * time.Second, Multiplier: 2.0}
	assert.Equal(t, 5*time.Second, capped.Delay(10))
}

func TestConfigDelayWithJitter(t *testing.T) {
	cfg := Config{
		InitialDelay: time.Second,
		MaxDelay:     60 * time.Second,
		Multiplier:   2.0,
		Jitter:       0.1,
	}

	delays := make(map[time.Duration]bool)
	for i := 0; i < 100; i++ {
		delay := cfg.Delay(0)
		delays[delay] = true
		assert.GreaterOrEqual(t, delay, 900*time.Millisecond)
		assert.LessOrEqual(t, delay, 1100*time.Millisecond)
	}
	assert.Greater(t, len(delays), 1, "jitter should produce varying delays")
}
