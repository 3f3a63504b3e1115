package model

import (
	"strings"

	ai "github.com/spetersoncode/nanobanana"
)

// BaseURL is the Gemini API model root. Endpoints are BaseURL + id + ":" + op.
const BaseURL = "https://generativelanguage.googleapis.com/v1beta/models/"

// Operation is the RPC suffix appended to a model endpoint.
type Operation string

const (
	// OpGenerateContent issues a single synchronous generation.
	OpGenerateContent Operation = "generateContent"
	// OpBatchGenerateContent submits a batch job.
	OpBatchGenerateContent Operation = "batchGenerateContent"
)

// ImageModel represents a Gemini image generation model.
type ImageModel struct {
	id      string
	name    string
	preview bool
	pricing ImagePricing
}

// New returns an ImageModel for an id that is not in the catalogue.
// It carries no pricing.
func New(id string) ImageModel {
	return ImageModel{id: id, name: id}
}

// String returns the API identifier for this model.
func (m ImageModel) String() string { return m.id }

// Name returns a human-readable model name.
func (m ImageModel) Name() string { return m.name }

// Preview reports whether the model is a preview release.
func (m ImageModel) Preview() bool { return m.preview }

// Pricing returns the pricing for this model.
func (m ImageModel) Pricing() ImagePricing { return m.pricing }

// Cost estimates the USD cost of a normalized response.
func (m ImageModel) Cost(resp *ai.Response) float64 {
	return CalculateCost(resp, m.pricing)
}

// URL returns the endpoint for op on the public Gemini API.
func (m ImageModel) URL(op Operation) string {
	return m.Endpoint(BaseURL, op)
}

// Endpoint returns the endpoint for op under base. An empty base means BaseURL.
func (m ImageModel) Endpoint(base string, op Operation) string {
	if base == "" {
		base = BaseURL
	}
	return strings.TrimRight(base, "/") + "/" + m.id + ":" + string(op)
}

// Gemini image models.
// Model pricing last verified: October 1, 2026
var (
	Gemini25FlashImage = ImageModel{
		id:      "gemini-2.5-flash-image",
		name:    "Gemini 2.5 Flash Image",
		pricing: ImagePricing{InputPerMillion: 0.30, OutputPerMillion: 30.00},
	}
	Gemini25FlashImagePreview = ImageModel{
		id:      "gemini-2.5-flash-image-preview",
		name:    "Gemini 2.5 Flash Image (preview)",
		preview: true,
		pricing: ImagePricing{InputPerMillion: 0.30, OutputPerMillion: 30.00},
	}
	Gemini3ProImagePreview = ImageModel{
		id:      "gemini-3-pro-image-preview",
		name:    "Gemini 3 Pro Image (preview)",
		preview: true,
		pricing: ImagePricing{InputPerMillion: 2.00, OutputPerMillion: 120.00},
	}

	// DefaultImageModel is the model used when none is configured.
	DefaultImageModel = Gemini25FlashImage
)

var catalogue = []ImageModel{
	Gemini25FlashImage,
	Gemini25FlashImagePreview,
	Gemini3ProImagePreview,
}

// Short names accepted by Lookup in addition to the full ids.
var aliases = map[string]ImageModel{
	"gemini-2.5":      Gemini25FlashImagePreview,
	"gemini-3":        Gemini3ProImagePreview,
	"nano-banana":     Gemini25FlashImage,
	"nano-banana-pro": Gemini3ProImagePreview,
}

// All returns the catalogued models in a stable order.
func All() []ImageModel {
	return append([]ImageModel(nil), catalogue...)
}

// Lookup resolves a model id or alias. Matching ignores case and
// surrounding whitespace.
func Lookup(id string) (ImageModel, bool) {
	key := strings.ToLower(strings.TrimSpace(id))
	for _, m := range catalogue {
		if m.id == key {
			return m, true
		}
	}
	m, ok := aliases[key]
	return m, ok
}
