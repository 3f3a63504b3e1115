package model

import (
	"testing"

	"github.com/stretchr/testify/assert"

	ai "github.com/spetersoncode/nanobanana"
)

func TestImageModelURL(t *testing.T) {
	assert.Equal(t,
		"https://generativelanguage.googleapis.com/v1beta/models/gemini-2.5-flash-image:generateContent",
		Gemini25FlashImage.URL(OpGenerateContent))
	assert.Equal(t,
		"https://generativelanguage.googleapis.com/v1beta/models/gemini-3-pro-image-preview:batchGenerateContent",
		Gemini3ProImagePreview.URL(OpBatchGenerateContent))
}

func TestImageModelEndpoint(t *testing.T) {
	t.Run("custom base with trailing slash", func(t *testing.T) {
		assert.Equal(t, "http://127.0.0.1:8080/models/gemini-2.5-flash-image:generateContent",
			Gemini25FlashImage.Endpoint("http://127.0.0.1:8080/models/", OpGenerateContent))
	})

	t.Run("custom base without trailing slash", func(t *testing.T) {
		assert.Equal(t, "http://proxy/v1/gemini-2.5-flash-image:generateContent",
			Gemini25FlashImage.Endpoint("http://proxy/v1", OpGenerateContent))
	})

	t.Run("empty base falls back to the public API", func(t *testing.T) {
		assert.Equal(t, Gemini25FlashImage.URL(OpGenerateContent),
			Gemini25FlashImage.Endpoint("", OpGenerateContent))
	})
}

func TestLookup(t *testing.T) {
	tests := []struct {
		id       string
		expected ImageModel
		ok       bool
	}{
		{"gemini-2.5-flash-image", Gemini25FlashImage, true},
		{"gemini-2.5-flash-image-preview", Gemini25FlashImagePreview, true},
		{"gemini-3-pro-image-preview", Gemini3ProImagePreview, true},
		{"  Gemini-3-Pro-Image-Preview ", Gemini3ProImagePreview, true},
		{"gemini-2.5", Gemini25FlashImagePreview, true},
		{"gemini-3", Gemini3ProImagePreview, true},
		{"nano-banana", Gemini25FlashImage, true},
		{"imagen-4.0-generate-001", ImageModel{}, false},
		{"", ImageModel{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			m, ok := Lookup(tt.id)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, m)
		})
	}
}

func TestAllReturnsCopy(t *testing.T) {
	all := All()
	assert.Len(t, all, 3)
	assert.Equal(t, Gemini25FlashImage, all[0])

	all[0] = ImageModel{}
	assert.Equal(t, Gemini25FlashImage, All()[0])
}

func TestNew(t *testing.T) {
	m := New("gemini-4-image")
	assert.Equal(t, "gemini-4-image", m.String())
	assert.True(t, m.Pricing().IsZero())
	assert.Equal(t, 0.0, m.Cost(&ai.Response{PromptTokenCount: 100, CandidatesTokenCount: 1290}))
}

func TestCost(t *testing.T) {
	resp := &ai.Response{PromptTokenCount: 1000, CandidatesTokenCount: 1290, ThoughtsTokenCount: 210}

	// 1000/1M * $0.30 + 1500/1M * $30
	assert.InDelta(t, 0.0453, Gemini25FlashImage.Cost(resp), 0.00001)
	assert.Greater(t, Gemini3ProImagePreview.Cost(resp), Gemini25FlashImage.Cost(resp))
	assert.Equal(t, 0.0, CalculateCost(nil, Gemini25FlashImage.Pricing()))
}
