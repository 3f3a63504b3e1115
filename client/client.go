package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/afero"

	ai "github.com/spetersoncode/nanobanana"
	"github.com/spetersoncode/nanobanana/model"
	"github.com/spetersoncode/nanobanana/output"
	"github.com/spetersoncode/nanobanana/transport"
)

// DefaultPrompt is sent by GenerateDefaultImage.
const DefaultPrompt = "Create a picture of a nano banana dish in a fancy restaurant with a Gemini theme"

// DefaultPromptDir is where EditImageWithPromptFile looks for prompt files.
const DefaultPromptDir = "prompts"

// maxImageFetchBytes bounds reference images downloaded from URLs.
const maxImageFetchBytes = 20 << 20

// Config holds configuration for creating a Client.
type Config struct {
	// APIKey authenticates against the Gemini API. Required unless
	// Transport is set.
	APIKey string

	// Model defaults to model.DefaultImageModel.
	Model model.ImageModel

	// Transport replaces the built-in transports when set.
	Transport transport.Transport

	// TransportKind selects the built-in transport (default REST).
	TransportKind transport.Kind

	// BaseURL overrides the API root of the built-in transport.
	BaseURL string

	// HTTPClient is used for API calls and for fetching reference images
	// given as URLs. Defaults to transport.NewHTTPClient(Timeout).
	HTTPClient *http.Client

	// Timeout bounds each API exchange when HTTPClient is not set
	// (default 120s).
	Timeout time.Duration

	// ImagePolicy decides what happens to unsupported reference images
	// (default strict).
	ImagePolicy ai.ImagePolicy

	// StrictPayload disables the raw-body scan fallback in normalization.
	StrictPayload bool

	// PromptDir is the root for prompt files (default "prompts").
	PromptDir string

	// Fs is the filesystem for images and prompt files (default OS).
	Fs afero.Fs

	// Retry configures retries of transient API failures.
	// If nil, a single attempt is made.
	Retry *RetryConfig

	// Logger receives request, warning and write logs. Defaults to a
	// discarding logger.
	Logger *slog.Logger
}

// Client generates and edits images through the Gemini API and writes the
// results to disk. A Client is safe for concurrent use.
type Client struct {
	apiKey     string
	model      model.ImageModel
	transport  transport.Transport
	httpClient *http.Client
	policy     ai.ImagePolicy
	normOpts   []ai.NormalizeOption
	promptDir  string
	store      *output.Store
	logger     *slog.Logger

	mu          sync.RWMutex
	lastRequest *ai.Request
}

var _ ai.ImageProvider = (*Client)(nil)

// New creates a client. It returns ai.ErrMissingAPIKey when neither an
// API key nor a custom transport is configured.
func New(ctx context.Context, cfg Config) (*Client, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	m := cfg.Model
	if m.String() == "" {
		m = model.DefaultImageModel
	}

	policy := cfg.ImagePolicy
	if policy == "" {
		policy = ai.ImagePolicyStrict
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = transport.NewHTTPClient(cfg.Timeout)
	}

	promptDir := cfg.PromptDir
	if promptDir == "" {
		promptDir = DefaultPromptDir
	}

	c := &Client{
		apiKey:     cfg.APIKey,
		model:      m,
		httpClient: httpClient,
		policy:     policy,
		promptDir:  promptDir,
		store:      output.New(cfg.Fs),
		logger:     logger,
	}
	if cfg.StrictPayload {
		c.normOpts = append(c.normOpts, ai.WithStrictPayload())
	}

	t, err := c.newTransport(ctx, cfg)
	if err != nil {
		return nil, err
	}
	c.transport = t
	return c, nil
}

func (c *Client) newTransport(ctx context.Context, cfg Config) (transport.Transport, error) {
	if cfg.Transport != nil {
		return cfg.Transport, nil
	}
	if cfg.APIKey == "" {
		return nil, ai.ErrMissingAPIKey
	}

	var rc *RetryConfig
	if cfg.Retry != nil {
		r := *cfg.Retry
		if r.OnRetry == nil {
			r.OnRetry = func(attempt int, delay time.Duration, err error) {
				c.logger.Warn("retrying request", "attempt", attempt, "delay", delay, "error", err)
			}
		}
		rc = &r
	}

	switch cfg.TransportKind {
	case "", transport.KindREST:
		return transport.NewREST(transport.RESTConfig{
			APIKey:     cfg.APIKey,
			BaseURL:    cfg.BaseURL,
			HTTPClient: c.httpClient,
			Retry:      rc,
		})
	case transport.KindGenAI:
		t, err := transport.NewGenAI(ctx, transport.GenAIConfig{
			APIKey:     cfg.APIKey,
			BaseURL:    cfg.BaseURL,
			HTTPClient: c.httpClient,
			Retry:      rc,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize genai client: %w", err)
		}
		return t, nil
	default:
		return nil, fmt.Errorf("unknown transport %q", cfg.TransportKind)
	}
}

// Model returns the model requests are sent to.
func (c *Client) Model() model.ImageModel { return c.model }

// MaskedAPIKey returns the API key with all but the first 8 and last 4
// characters hidden. Keys of 12 characters or fewer are fully masked.
func (c *Client) MaskedAPIKey() string {
	if len(c.apiKey) <= 12 {
		return strings.Repeat("*", len(c.apiKey))
	}
	return c.apiKey[:8] + "..." + c.apiKey[len(c.apiKey)-4:]
}

// LastRequest returns the most recent request body sent, or nil.
func (c *Client) LastRequest() *ai.Request {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastRequest
}

// GenerateImage creates an image from prompt and writes it to outputPath.
func (c *Client) GenerateImage(ctx context.Context, prompt, outputPath string, opts ...ai.ImageOption) (*ai.Response, error) {
	return c.generate(ctx, prompt, nil, outputPath, opts)
}

// GenerateDefaultImage generates the DefaultPrompt image.
func (c *Client) GenerateDefaultImage(ctx context.Context, outputPath string, opts ...ai.ImageOption) (*ai.Response, error) {
	return c.GenerateImage(ctx, DefaultPrompt, outputPath, opts...)
}

// EditImage sends prompt with the reference images and writes the result
// to outputPath. Sources are local paths or http(s) URLs.
func (c *Client) EditImage(ctx context.Context, prompt string, imageSources []string, outputPath string, opts ...ai.ImageOption) (*ai.Response, error) {
	return c.generate(ctx, prompt, imageSources, outputPath, opts)
}

// EditImageWithPromptFile reads the prompt from a file under the prompt
// directory and edits the images with it.
func (c *Client) EditImageWithPromptFile(ctx context.Context, promptFile string, imageSources []string, outputPath string, opts ...ai.ImageOption) (*ai.Response, error) {
	prompt, err := c.store.ReadPrompt(c.promptDir, promptFile)
	if err != nil {
		return nil, err
	}
	return c.EditImage(ctx, prompt, imageSources, outputPath, opts...)
}

// Send issues a prebuilt request and normalizes the response without
// writing anything.
func (c *Client) Send(ctx context.Context, req *ai.Request) (*ai.Response, error) {
	return c.send(ctx, uuid.NewString(), req)
}

func (c *Client) generate(ctx context.Context, prompt string, sources []string, outputPath string, opts []ai.ImageOption) (*ai.Response, error) {
	if strings.TrimSpace(prompt) == "" {
		return nil, ai.ErrEmptyPrompt
	}
	if outputPath == "" {
		return nil, &ai.FileError{Op: "write", Path: outputPath, Err: errors.New("output path is empty")}
	}

	requestID := uuid.NewString()
	images, err := c.loadImages(ctx, requestID, sources)
	if err != nil {
		return nil, err
	}

	resp, err := c.send(ctx, requestID, ai.NewRequest(prompt, images...).Apply(opts...))
	if err != nil {
		return nil, err
	}

	data, err := resp.Decode()
	if err != nil {
		return nil, err
	}
	if err := c.store.Write(outputPath, data); err != nil {
		return nil, err
	}

	c.logger.Info("image written",
		"request_id", requestID,
		"path", outputPath,
		"bytes", len(data),
		"prompt_tokens", resp.PromptTokenCount,
		"candidates_tokens", resp.CandidatesTokenCount,
		"total_tokens", resp.TotalTokenCount,
	)
	return resp, nil
}

func (c *Client) send(ctx context.Context, requestID string, req *ai.Request) (*ai.Response, error) {
	c.mu.Lock()
	c.lastRequest = req
	c.mu.Unlock()

	c.logger.Debug("sending request",
		"request_id", requestID,
		"model", c.model.String(),
		"prompt_length", len(req.Prompt()),
		"images", len(req.InlineImages()),
	)

	raw, err := c.transport.GenerateContent(ctx, c.model, req)
	if err != nil {
		return nil, err
	}

	resp, err := ai.Normalize(raw, c.normOpts...)
	if err != nil {
		return nil, err
	}
	resp.RequestID = requestID

	if resp.PayloadSource == ai.PayloadScan {
		c.logger.Warn("image payload recovered by body scan",
			"request_id", requestID,
			"response_id", resp.ResponseID,
		)
	}
	return resp, nil
}
