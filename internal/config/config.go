// Package config loads the command-line configuration from the environment.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	ai "github.com/spetersoncode/nanobanana"
	"github.com/spetersoncode/nanobanana/client"
	"github.com/spetersoncode/nanobanana/model"
	"github.com/spetersoncode/nanobanana/transport"
)

// Config holds the settings read from environment variables.
type Config struct {
	APIKey        string
	Model         string
	Transport     string // rest or genai
	BaseURL       string
	ImagePolicy   string // strict or skip
	StrictPayload bool
	Timeout       time.Duration
	MaxAttempts   int
	PromptDir     string
	LogLevel      string // debug, info, warn, error
}

// Load reads a .env file if present, then the environment.
func Load() (*Config, error) {
	godotenv.Load() // Load .env file if present
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from getenv and validates it.
func FromEnv(getenv func(string) string) (*Config, error) {
	env := lookup(getenv)

	cfg := &Config{
		APIKey:        env.getString("GEMINI_API_KEY", getenv("GOOGLE_API_KEY")),
		Model:         env.getString("NANOBANANA_MODEL", model.DefaultImageModel.String()),
		Transport:     env.getString("NANOBANANA_TRANSPORT", string(transport.KindREST)),
		BaseURL:       getenv("NANOBANANA_BASE_URL"),
		ImagePolicy:   env.getString("NANOBANANA_IMAGE_POLICY", string(ai.ImagePolicyStrict)),
		StrictPayload: env.getBool("NANOBANANA_STRICT_PAYLOAD", false),
		Timeout:       env.getDuration("NANOBANANA_TIMEOUT", transport.DefaultTimeout),
		MaxAttempts:   env.getInt("NANOBANANA_MAX_ATTEMPTS", 1),
		PromptDir:     env.getString("NANOBANANA_PROMPT_DIR", client.DefaultPromptDir),
		LogLevel:      env.getString("NANOBANANA_LOG_LEVEL", "info"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the enumerated settings. A missing API key is reported
// when the client is built, so commands that never call the API still run.
func (c *Config) Validate() error {
	if _, err := transport.ParseKind(c.Transport); err != nil {
		return fmt.Errorf("NANOBANANA_TRANSPORT: %w", err)
	}
	if _, err := ai.ParseImagePolicy(c.ImagePolicy); err != nil {
		return fmt.Errorf("NANOBANANA_IMAGE_POLICY: %w", err)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("NANOBANANA_LOG_LEVEL: %w", err)
	}
	if c.MaxAttempts < 1 {
		return fmt.Errorf("NANOBANANA_MAX_ATTEMPTS must be at least 1, got %d", c.MaxAttempts)
	}
	return nil
}

// ResolveModel maps the configured model id or alias to an ImageModel.
// Ids outside the catalogue are passed through unchanged.
func (c *Config) ResolveModel() model.ImageModel {
	if m, ok := model.Lookup(c.Model); ok {
		return m
	}
	return model.New(strings.TrimSpace(c.Model))
}

// ClientConfig converts c into a client.Config logging to logger.
func (c *Config) ClientConfig(logger *slog.Logger) (client.Config, error) {
	kind, err := transport.ParseKind(c.Transport)
	if err != nil {
		return client.Config{}, err
	}
	policy, err := ai.ParseImagePolicy(c.ImagePolicy)
	if err != nil {
		return client.Config{}, err
	}

	cfg := client.Config{
		APIKey:        c.APIKey,
		Model:         c.ResolveModel(),
		TransportKind: kind,
		BaseURL:       c.BaseURL,
		Timeout:       c.Timeout,
		ImagePolicy:   policy,
		StrictPayload: c.StrictPayload,
		PromptDir:     c.PromptDir,
		Logger:        logger,
	}
	if c.MaxAttempts > 1 {
		rc := client.RetryConfigWithAttempts(c.MaxAttempts)
		cfg.Retry = &rc
	}
	return cfg, nil
}

// ParseLevel parses debug, info, warn or error.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

// NewLogger returns a text logger on w at the configured level.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	level, _ := ParseLevel(c.LogLevel)
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

type lookup func(string) string

func (l lookup) getString(key, defaultValue string) string {
	if value := l(key); value != "" {
		return value
	}
	return defaultValue
}

func (l lookup) getInt(key string, defaultValue int) int {
	if value := l(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func (l lookup) getDuration(key string, defaultValue time.Duration) time.Duration {
	if value := l(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func (l lookup) getBool(key string, defaultValue bool) bool {
	if value := l(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
