package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	ai "github.com/spetersoncode/nanobanana"
	"github.com/spetersoncode/nanobanana/internal/retry"
	"github.com/spetersoncode/nanobanana/model"
)

// RESTConfig configures a REST transport.
type RESTConfig struct {
	APIKey string
	// BaseURL overrides model.BaseURL.
	BaseURL string
	// HTTPClient defaults to NewHTTPClient(DefaultTimeout).
	HTTPClient *http.Client
	// Retry defaults to a single attempt.
	Retry *retry.Config
}

// REST posts JSON request bodies to the generateContent endpoint.
type REST struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	retry      retry.Config
}

// NewREST creates a REST transport. It returns ai.ErrMissingAPIKey when
// no key is configured.
func NewREST(cfg RESTConfig) (*REST, error) {
	if cfg.APIKey == "" {
		return nil, ai.ErrMissingAPIKey
	}
	t := &REST{
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
		httpClient: cfg.HTTPClient,
		retry:      retry.Disabled(),
	}
	if t.httpClient == nil {
		t.httpClient = NewHTTPClient(DefaultTimeout)
	}
	if cfg.Retry != nil {
		t.retry = *cfg.Retry
	}
	return t, nil
}

// GenerateContent sends req to m's generateContent endpoint.
func (t *REST) GenerateContent(ctx context.Context, m model.ImageModel, req *ai.Request) ([]byte, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	url := m.Endpoint(t.baseURL, model.OpGenerateContent)

	return retry.Do(ctx, t.retry, func() ([]byte, error) {
		return t.post(ctx, url, body)
	})
}

func (t *REST) post(ctx context.Context, url string, body []byte) ([]byte, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("content-type", "application/json")
	httpReq.Header.Set("x-goog-api-key", t.apiKey)

	httpResp, err := t.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("request: %w", err)
	}
	defer httpResp.Body.Close()

	raw, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if httpResp.StatusCode >= 400 {
		return nil, ai.NewStatusError(httpResp.StatusCode, string(raw), parseRetryAfter(httpResp.Header.Get("Retry-After")))
	}
	return raw, nil
}

// parseRetryAfter reads a Retry-After header given in seconds or as an HTTP date.
func parseRetryAfter(v string) time.Duration {
	if v == "" {
		return 0
	}
	if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	if at, err := http.ParseTime(v); err == nil {
		if d := time.Until(at); d > 0 {
			return d
		}
	}
	return 0
}
