package nanobanana

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const usageBlock = `"usageMetadata":{"promptTokenCount":12,"candidatesTokenCount":1290,"totalTokenCount":1302},
	"modelVersion":"gemini-2.5-flash-image","responseId":"resp-1"`

func TestNormalizePayload(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected string
		source   PayloadSource
	}{
		{
			name:     "part data",
			body:     `{"candidates":[{"content":{"parts":[{"data":"ABC"}]}}],` + usageBlock + `}`,
			expected: "ABC",
			source:   PayloadPartData,
		},
		{
			name:     "inline data",
			body:     `{"candidates":[{"content":{"parts":[{"inlineData":{"mimeType":"image/png","data":"XYZ"}}]}}],` + usageBlock + `}`,
			expected: "XYZ",
			source:   PayloadInlineData,
		},
		{
			name:     "part data wins over inline data",
			body:     `{"candidates":[{"content":{"parts":[{"data":"ABC","inlineData":{"data":"XYZ"}}]}}],` + usageBlock + `}`,
			expected: "ABC",
			source:   PayloadPartData,
		},
		{
			name:     "scan finds data elsewhere",
			body:     `{"candidates":[{"content":{"parts":[{"text":"here"},{"inline_data":{"data": "SCANNED"}}]}}],` + usageBlock + `}`,
			expected: "SCANNED",
			source:   PayloadScan,
		},
		{
			name:     "scan decodes escaped slashes",
			body:     `{"candidates":[{"content":{"parts":[{"text":"here"},{"inline_data":{"data":"AB\/CD+="}}]}}],` + usageBlock + `}`,
			expected: "AB/CD+=",
			source:   PayloadScan,
		},
		{
			name:     "scan keeps escaped quotes inside the value",
			body:     `{"candidates":[{"content":{"parts":[{"text":"here"},{"blob":{"data":"a\"b"}}]}}],` + usageBlock + `}`,
			expected: `a"b`,
			source:   PayloadScan,
		},
		{
			name:     "no payload anywhere",
			body:     `{"candidates":[{"content":{"parts":[{"text":"sorry"}]}}],` + usageBlock + `}`,
			expected: "",
			source:   PayloadNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := Normalize([]byte(tt.body))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, resp.Base64)
			assert.Equal(t, tt.source, resp.PayloadSource)
			assert.Equal(t, tt.expected != "", resp.HasImage())
		})
	}
}

func TestNormalizeStrictPayload(t *testing.T) {
	body := `{"candidates":[{"content":{"parts":[{"text":"x"},{"inlineData":{"data":"SECOND"}}]}}],` + usageBlock + `}`

	resp, err := Normalize([]byte(body))
	require.NoError(t, err)
	assert.Equal(t, PayloadScan, resp.PayloadSource)

	resp, err = Normalize([]byte(body), WithStrictPayload())
	require.NoError(t, err)
	assert.False(t, resp.HasImage())
	assert.Equal(t, PayloadNone, resp.PayloadSource)
}

func TestNormalizeUsage(t *testing.T) {
	t.Run("reads counters and identifiers", func(t *testing.T) {
		body := `{"usageMetadata":{"promptTokenCount":1,"candidatesTokenCount":2,"totalTokenCount":3,"thoughtsTokenCount":4},
			"modelVersion":"m","responseId":"r"}`
		resp, err := Normalize([]byte(body))
		require.NoError(t, err)
		assert.Equal(t, 1, resp.PromptTokenCount)
		assert.Equal(t, 2, resp.CandidatesTokenCount)
		assert.Equal(t, 3, resp.TotalTokenCount)
		assert.Equal(t, 4, resp.ThoughtsTokenCount)
		assert.Equal(t, "m", resp.ModelVersion)
		assert.Equal(t, "r", resp.ResponseID)
		assert.JSONEq(t, body, string(resp.Raw))
	})

	t.Run("thoughts default to zero", func(t *testing.T) {
		resp, err := Normalize([]byte(`{` + usageBlock + `}`))
		require.NoError(t, err)
		assert.Equal(t, 0, resp.ThoughtsTokenCount)
	})

	tests := []struct {
		name  string
		body  string
		field string
	}{
		{
			name:  "missing prompt count",
			body:  `{"usageMetadata":{"candidatesTokenCount":2,"totalTokenCount":3},"modelVersion":"m","responseId":"r"}`,
			field: "usageMetadata.promptTokenCount",
		},
		{
			name:  "missing candidates count",
			body:  `{"usageMetadata":{"promptTokenCount":1,"totalTokenCount":3},"modelVersion":"m","responseId":"r"}`,
			field: "usageMetadata.candidatesTokenCount",
		},
		{
			name:  "missing total count",
			body:  `{"usageMetadata":{"promptTokenCount":1,"candidatesTokenCount":2},"modelVersion":"m","responseId":"r"}`,
			field: "usageMetadata.totalTokenCount",
		},
		{
			name:  "non-numeric count",
			body:  `{"usageMetadata":{"promptTokenCount":"1","candidatesTokenCount":2,"totalTokenCount":3},"modelVersion":"m","responseId":"r"}`,
			field: "usageMetadata.promptTokenCount",
		},
		{
			name:  "missing model version",
			body:  `{"usageMetadata":{"promptTokenCount":1,"candidatesTokenCount":2,"totalTokenCount":3},"responseId":"r"}`,
			field: "modelVersion",
		},
		{
			name:  "missing response id",
			body:  `{"usageMetadata":{"promptTokenCount":1,"candidatesTokenCount":2,"totalTokenCount":3},"modelVersion":"m"}`,
			field: "responseId",
		},
		{
			name:  "invalid json",
			body:  `{"usageMetadata":`,
			field: "body",
		},
		{
			name:  "not an object",
			body:  `[1,2,3]`,
			field: "body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Normalize([]byte(tt.body))
			var malformed *MalformedResponseError
			require.ErrorAs(t, err, &malformed)
			assert.Equal(t, tt.field, malformed.Field)
			assert.ErrorIs(t, err, ErrMalformedResponse)
		})
	}
}

func TestNormalizeIsPure(t *testing.T) {
	body := []byte(`{"candidates":[{"content":{"parts":[{"data":"ABC"}]}}],` + usageBlock + `}`)
	original := append([]byte(nil), body...)

	first, err := Normalize(body)
	require.NoError(t, err)
	second, err := Normalize(body)
	require.NoError(t, err)

	assert.Equal(t, original, body)
	assert.Equal(t, first, second)
}

func TestNormalizeMap(t *testing.T) {
	m := map[string]any{
		"candidates": []any{
			map[string]any{"content": map[string]any{"parts": []any{
				map[string]any{"inlineData": map[string]any{"data": "XYZ"}},
			}}},
		},
		"usageMetadata": map[string]any{
			"promptTokenCount": 1, "candidatesTokenCount": 2, "totalTokenCount": 3,
		},
		"modelVersion": "m",
		"responseId":   "r",
	}

	resp, err := NormalizeMap(m)
	require.NoError(t, err)
	assert.Equal(t, "XYZ", resp.Base64)
	assert.Equal(t, "r", resp.RawMap()["responseId"])
}

func TestResponseDecode(t *testing.T) {
	t.Run("decodes base64 payload", func(t *testing.T) {
		resp := &Response{Base64: base64.StdEncoding.EncodeToString([]byte("image-bytes"))}
		data, err := resp.Decode()
		require.NoError(t, err)
		assert.Equal(t, []byte("image-bytes"), data)
	})

	t.Run("absent payload", func(t *testing.T) {
		resp := &Response{ResponseID: "r"}
		_, err := resp.Decode()
		assert.ErrorIs(t, err, ErrNoImagePayload)
	})

	t.Run("invalid base64", func(t *testing.T) {
		resp := &Response{Base64: "not base64!!"}
		_, err := resp.Decode()
		var imgErr *ImageError
		require.ErrorAs(t, err, &imgErr)
		assert.Equal(t, "decode", imgErr.Op)
	})
}

func TestResponseToMap(t *testing.T) {
	resp, err := Normalize([]byte(`{"candidates":[{"content":{"parts":[{"data":"ABC"}]}}],` + usageBlock + `}`))
	require.NoError(t, err)

	m := resp.ToMap()
	assert.Equal(t, "ABC", m["base64"])
	assert.Equal(t, 12, m["prompt_token_count"])
	assert.Equal(t, 1302, m["total_token_count"])
	assert.Equal(t, "resp-1", m["response_id"])
	assert.NotNil(t, m["raw_response"])
}
