package nanobanana

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/tidwall/gjson"
)

// PayloadSource records where the image payload was found in a response.
type PayloadSource string

const (
	// PayloadNone means no payload was found.
	PayloadNone PayloadSource = ""
	// PayloadPartData is candidates[0].content.parts[0].data.
	PayloadPartData PayloadSource = "part_data"
	// PayloadInlineData is candidates[0].content.parts[0].inlineData.data.
	PayloadInlineData PayloadSource = "inline_data"
	// PayloadScan is a "data": "<value>" match anywhere in the raw body.
	// The scan takes the first occurrence, which is not necessarily the
	// image when a response carries several "data" members.
	PayloadScan PayloadSource = "scan"
)

// payloadPaths are tried in order; the first non-empty string wins.
var payloadPaths = []struct {
	path   string
	source PayloadSource
}{
	{"candidates.0.content.parts.0.data", PayloadPartData},
	{"candidates.0.content.parts.0.inlineData.data", PayloadInlineData},
}

// dataMemberRegex captures a non-empty JSON string literal, escapes included.
var dataMemberRegex = regexp.MustCompile(`"data"\s*:\s*("(?:[^"\\]|\\.)+")`)

// Response is the normalized result of one generateContent call.
// It is read-only after Normalize returns.
type Response struct {
	// Base64 is the image payload, empty when the response carried none.
	Base64 string
	// PayloadSource tells which extraction rule produced Base64.
	PayloadSource PayloadSource

	PromptTokenCount     int
	CandidatesTokenCount int
	TotalTokenCount      int
	ThoughtsTokenCount   int
	ModelVersion         string
	ResponseID           string

	// RequestID is the client-side id of the call that produced this response.
	RequestID string

	// Raw is the response body exactly as received.
	Raw json.RawMessage
}

// HasImage reports whether an image payload was extracted.
func (r *Response) HasImage() bool {
	return r.Base64 != ""
}

// Decode returns the decoded image bytes.
func (r *Response) Decode() ([]byte, error) {
	if !r.HasImage() {
		return nil, &NoImagePayloadError{ResponseID: r.ResponseID, ModelVersion: r.ModelVersion}
	}
	data, err := base64.StdEncoding.DecodeString(r.Base64)
	if err != nil {
		return nil, &ImageError{Op: "decode", Source: "base64", Err: err}
	}
	return data, nil
}

// RawMap returns the raw response decoded into a generic map.
func (r *Response) RawMap() map[string]any {
	var m map[string]any
	if err := json.Unmarshal(r.Raw, &m); err != nil {
		return nil
	}
	return m
}

// ToMap returns the response fields keyed by snake_case names.
func (r *Response) ToMap() map[string]any {
	return map[string]any{
		"base64":                 r.Base64,
		"payload_source":         string(r.PayloadSource),
		"prompt_token_count":     r.PromptTokenCount,
		"candidates_token_count": r.CandidatesTokenCount,
		"total_token_count":      r.TotalTokenCount,
		"thoughts_token_count":   r.ThoughtsTokenCount,
		"model_version":          r.ModelVersion,
		"response_id":            r.ResponseID,
		"request_id":             r.RequestID,
		"raw_response":           r.RawMap(),
	}
}

// NormalizeOption configures Normalize.
type NormalizeOption func(*normalizeOptions)

type normalizeOptions struct {
	strict bool
}

// WithStrictPayload disables the raw-body scan fallback, so only the two
// structured key paths can yield a payload.
func WithStrictPayload() NormalizeOption {
	return func(o *normalizeOptions) {
		o.strict = true
	}
}

// Normalize extracts the image payload and usage metadata from a raw
// generateContent response body. A missing payload is not an error here;
// missing usage counters or identifiers yield *MalformedResponseError.
// Normalize does not modify raw.
func Normalize(raw []byte, opts ...NormalizeOption) (*Response, error) {
	o := &normalizeOptions{}
	for _, opt := range opts {
		opt(o)
	}

	if !gjson.ValidBytes(raw) {
		return nil, &MalformedResponseError{Field: "body", Reason: "is not valid JSON"}
	}
	root := gjson.ParseBytes(raw)
	if !root.IsObject() {
		return nil, &MalformedResponseError{Field: "body", Reason: "is not a JSON object"}
	}

	resp := &Response{Raw: append(json.RawMessage(nil), raw...)}
	resp.Base64, resp.PayloadSource = extractPayload(root, raw, o.strict)

	var err error
	if resp.PromptTokenCount, err = requiredCount(root, "usageMetadata.promptTokenCount"); err != nil {
		return nil, err
	}
	if resp.CandidatesTokenCount, err = requiredCount(root, "usageMetadata.candidatesTokenCount"); err != nil {
		return nil, err
	}
	if resp.TotalTokenCount, err = requiredCount(root, "usageMetadata.totalTokenCount"); err != nil {
		return nil, err
	}
	if thoughts := root.Get("usageMetadata.thoughtsTokenCount"); thoughts.Type == gjson.Number {
		resp.ThoughtsTokenCount = int(thoughts.Int())
	}
	if resp.ModelVersion, err = requiredString(root, "modelVersion"); err != nil {
		return nil, err
	}
	if resp.ResponseID, err = requiredString(root, "responseId"); err != nil {
		return nil, err
	}

	return resp, nil
}

// NormalizeMap is Normalize for an already decoded response.
func NormalizeMap(m map[string]any, opts ...NormalizeOption) (*Response, error) {
	raw, err := json.Marshal(m)
	if err != nil {
		return nil, &MalformedResponseError{Field: "body", Reason: fmt.Sprintf("cannot be encoded: %v", err)}
	}
	return Normalize(raw, opts...)
}

func extractPayload(root gjson.Result, raw []byte, strict bool) (string, PayloadSource) {
	for _, p := range payloadPaths {
		if v := root.Get(p.path); v.Type == gjson.String && v.Str != "" {
			return v.Str, p.source
		}
	}
	if strict {
		return "", PayloadNone
	}
	if m := dataMemberRegex.FindSubmatch(raw); m != nil {
		var v string
		if err := json.Unmarshal(m[1], &v); err == nil && v != "" {
			return v, PayloadScan
		}
	}
	return "", PayloadNone
}

func requiredCount(root gjson.Result, path string) (int, error) {
	v := root.Get(path)
	if !v.Exists() {
		return 0, &MalformedResponseError{Field: path, Reason: "is missing"}
	}
	if v.Type != gjson.Number {
		return 0, &MalformedResponseError{Field: path, Reason: "is not a number"}
	}
	return int(v.Int()), nil
}

func requiredString(root gjson.Result, path string) (string, error) {
	v := root.Get(path)
	if !v.Exists() {
		return "", &MalformedResponseError{Field: path, Reason: "is missing"}
	}
	if v.Type != gjson.String {
		return "", &MalformedResponseError{Field: path, Reason: "is not a string"}
	}
	return v.Str, nil
}
