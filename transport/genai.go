package transport

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/genai"

	ai "github.com/spetersoncode/nanobanana"
	"github.com/spetersoncode/nanobanana/internal/retry"
	"github.com/spetersoncode/nanobanana/model"
)

// GenAIConfig configures an SDK transport.
type GenAIConfig struct {
	APIKey string
	// BaseURL overrides the SDK's API root (scheme and host, no model path).
	BaseURL    string
	HTTPClient *http.Client
	Retry      *retry.Config
}

// GenAI sends requests through the Google GenAI SDK.
type GenAI struct {
	client *genai.Client
	retry  retry.Config
}

// NewGenAI creates an SDK transport against the Gemini API backend.
func NewGenAI(ctx context.Context, cfg GenAIConfig) (*GenAI, error) {
	if cfg.APIKey == "" {
		return nil, ai.ErrMissingAPIKey
	}
	cc := &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: cfg.HTTPClient,
	}
	if cfg.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}
	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, err
	}
	t := &GenAI{client: client, retry: retry.Disabled()}
	if cfg.Retry != nil {
		t.retry = *cfg.Retry
	}
	return t, nil
}

// GenerateContent converts req to SDK types, calls the model and
// re-encodes the SDK response in the REST wire shape.
func (t *GenAI) GenerateContent(ctx context.Context, m model.ImageModel, req *ai.Request) ([]byte, error) {
	contents, err := toGenAIContents(req)
	if err != nil {
		return nil, err
	}
	config := toGenAIConfig(req.GenerationConfig)

	resp, err := retry.Do(ctx, t.retry, func() (*genai.GenerateContentResponse, error) {
		resp, err := t.client.Models.GenerateContent(ctx, m.String(), contents, config)
		if err != nil {
			return nil, wrapGenAIError(err)
		}
		return resp, nil
	})
	if err != nil {
		return nil, err
	}
	return encodeGenAIResponse(resp)
}

func toGenAIContents(req *ai.Request) ([]*genai.Content, error) {
	contents := make([]*genai.Content, 0, len(req.Contents))
	for _, c := range req.Contents {
		parts := make([]*genai.Part, 0, len(c.Parts))
		for _, p := range c.Parts {
			switch {
			case p.InlineData != nil:
				data, err := base64.StdEncoding.DecodeString(p.InlineData.Data)
				if err != nil {
					return nil, &ai.ImageError{Op: "decode", Source: "base64", Err: err}
				}
				parts = append(parts, &genai.Part{
					InlineData: &genai.Blob{Data: data, MIMEType: p.InlineData.MimeType},
				})
			case p.Text != "":
				parts = append(parts, &genai.Part{Text: p.Text})
			}
		}
		contents = append(contents, &genai.Content{Role: genai.RoleUser, Parts: parts})
	}
	return contents, nil
}

func toGenAIConfig(gc *ai.GenerationConfig) *genai.GenerateContentConfig {
	if gc == nil {
		return nil
	}
	config := &genai.GenerateContentConfig{ResponseModalities: gc.ResponseModalities}
	if gc.ImageConfig != nil && gc.ImageConfig.AspectRatio != "" {
		config.ImageConfig = &genai.ImageConfig{AspectRatio: gc.ImageConfig.AspectRatio}
	}
	return config
}

// wireResponse mirrors the REST response. The SDK omits zero counters,
// so usage is re-encoded without omitempty.
type wireResponse struct {
	Candidates    []*genai.Candidate `json:"candidates,omitempty"`
	UsageMetadata *wireUsage         `json:"usageMetadata,omitempty"`
	ModelVersion  string             `json:"modelVersion"`
	ResponseID    string             `json:"responseId"`
}

type wireUsage struct {
	PromptTokenCount     int32 `json:"promptTokenCount"`
	CandidatesTokenCount int32 `json:"candidatesTokenCount"`
	TotalTokenCount      int32 `json:"totalTokenCount"`
	ThoughtsTokenCount   int32 `json:"thoughtsTokenCount,omitempty"`
}

func encodeGenAIResponse(resp *genai.GenerateContentResponse) ([]byte, error) {
	if resp == nil {
		return nil, &ai.MalformedResponseError{Field: "body", Reason: "is empty"}
	}
	w := wireResponse{
		Candidates:   resp.Candidates,
		ModelVersion: resp.ModelVersion,
		ResponseID:   resp.ResponseID,
	}
	if u := resp.UsageMetadata; u != nil {
		w.UsageMetadata = &wireUsage{
			PromptTokenCount:     u.PromptTokenCount,
			CandidatesTokenCount: u.CandidatesTokenCount,
			TotalTokenCount:      u.TotalTokenCount,
			ThoughtsTokenCount:   u.ThoughtsTokenCount,
		}
	}
	raw, err := json.Marshal(w)
	if err != nil {
		return nil, fmt.Errorf("encode response: %w", err)
	}
	return raw, nil
}

// wrapGenAIError categorizes SDK API errors by status code.
// genai.APIError carries no headers, so there is no Retry-After.
func wrapGenAIError(err error) error {
	var apiErr genai.APIError
	if !errors.As(err, &apiErr) {
		return err
	}

	code := apiErr.Code
	msg := fmt.Sprintf("API request failed: %d", code)

	var wrapped *ai.Error
	switch ai.CategorizeStatus(code) {
	case ai.ErrorTransient:
		wrapped = ai.NewTransientError(msg, code, err)
	case ai.ErrorUserInput:
		wrapped = ai.NewUserInputError(msg, code, err)
	default:
		wrapped = ai.NewPermanentError(msg, code, err)
	}
	wrapped.Body = apiErr.Message
	return wrapped
}
