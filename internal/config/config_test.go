package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ai "github.com/spetersoncode/nanobanana"
	"github.com/spetersoncode/nanobanana/model"
	"github.com/spetersoncode/nanobanana/transport"
)

func envOf(values map[string]string) func(string) string {
	return func(key string) string { return values[key] }
}

func TestFromEnv(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		cfg, err := FromEnv(envOf(nil))
		require.NoError(t, err)

		assert.Empty(t, cfg.APIKey)
		assert.Equal(t, model.DefaultImageModel.String(), cfg.Model)
		assert.Equal(t, "rest", cfg.Transport)
		assert.Equal(t, "strict", cfg.ImagePolicy)
		assert.Equal(t, transport.DefaultTimeout, cfg.Timeout)
		assert.Equal(t, 1, cfg.MaxAttempts)
		assert.Equal(t, "prompts", cfg.PromptDir)
		assert.Equal(t, "info", cfg.LogLevel)
	})

	t.Run("prefers GEMINI_API_KEY", func(t *testing.T) {
		cfg, err := FromEnv(envOf(map[string]string{"GEMINI_API_KEY": "gemini", "GOOGLE_API_KEY": "google"}))
		require.NoError(t, err)
		assert.Equal(t, "gemini", cfg.APIKey)
	})

	t.Run("falls back to GOOGLE_API_KEY", func(t *testing.T) {
		cfg, err := FromEnv(envOf(map[string]string{"GOOGLE_API_KEY": "google"}))
		require.NoError(t, err)
		assert.Equal(t, "google", cfg.APIKey)
	})

	t.Run("reads overrides", func(t *testing.T) {
		cfg, err := FromEnv(envOf(map[string]string{
			"NANOBANANA_MODEL":          "gemini-3",
			"NANOBANANA_TRANSPORT":      "genai",
			"NANOBANANA_IMAGE_POLICY":   "skip",
			"NANOBANANA_TIMEOUT":        "30s",
			"NANOBANANA_MAX_ATTEMPTS":   "4",
			"NANOBANANA_STRICT_PAYLOAD": "true",
			"NANOBANANA_LOG_LEVEL":      "debug",
		}))
		require.NoError(t, err)
		assert.Equal(t, 30*time.Second, cfg.Timeout)
		assert.Equal(t, 4, cfg.MaxAttempts)
		assert.True(t, cfg.StrictPayload)
		assert.Equal(t, model.Gemini3ProImagePreview, cfg.ResolveModel())
	})

	tests := []struct {
		name string
		env  map[string]string
	}{
		{"unknown transport", map[string]string{"NANOBANANA_TRANSPORT": "grpc"}},
		{"unknown image policy", map[string]string{"NANOBANANA_IMAGE_POLICY": "lenient"}},
		{"unknown log level", map[string]string{"NANOBANANA_LOG_LEVEL": "loud"}},
		{"zero attempts", map[string]string{"NANOBANANA_MAX_ATTEMPTS": "0"}},
	}
	for _, tt := range tests {
		t.Run("rejects "+tt.name, func(t *testing.T) {
			_, err := FromEnv(envOf(tt.env))
			assert.Error(t, err)
		})
	}
}

func TestClientConfig(t *testing.T) {
	t.Run("single attempt leaves retry disabled", func(t *testing.T) {
		cfg, err := FromEnv(envOf(map[string]string{"GEMINI_API_KEY": "k"}))
		require.NoError(t, err)

		cc, err := cfg.ClientConfig(slog.Default())
		require.NoError(t, err)
		assert.Equal(t, "k", cc.APIKey)
		assert.Equal(t, transport.KindREST, cc.TransportKind)
		assert.Equal(t, ai.ImagePolicyStrict, cc.ImagePolicy)
		assert.Nil(t, cc.Retry)
	})

	t.Run("multiple attempts enable retry", func(t *testing.T) {
		cfg, err := FromEnv(envOf(map[string]string{"NANOBANANA_MAX_ATTEMPTS": "3", "NANOBANANA_IMAGE_POLICY": "skip"}))
		require.NoError(t, err)

		cc, err := cfg.ClientConfig(nil)
		require.NoError(t, err)
		require.NotNil(t, cc.Retry)
		assert.Equal(t, 3, cc.Retry.MaxAttempts)
		assert.Equal(t, ai.ImagePolicySkip, cc.ImagePolicy)
	})

	t.Run("custom model ids pass through", func(t *testing.T) {
		cfg := &Config{Model: "gemini-9-image"}
		assert.Equal(t, "gemini-9-image", cfg.ResolveModel().String())
	})
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"":        slog.LevelInfo,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	}
	for input, expected := range tests {
		level, err := ParseLevel(input)
		require.NoError(t, err, input)
		assert.Equal(t, expected, level, input)
	}
}
