package model

import ai "github.com/spetersoncode/nanobanana"

// ImagePricing contains token pricing per million tokens (USD).
// Gemini image models bill generated images as output tokens.
type ImagePricing struct {
	// InputPerMillion covers prompt text and reference images.
	InputPerMillion float64
	// OutputPerMillion covers generated image and text tokens.
	OutputPerMillion float64
}

// IsZero reports whether no pricing is known.
func (p ImagePricing) IsZero() bool {
	return p.InputPerMillion == 0 && p.OutputPerMillion == 0
}

// CalculateCost computes the USD cost of a response. Thinking tokens are
// billed at the output rate.
func CalculateCost(resp *ai.Response, pricing ImagePricing) float64 {
	if resp == nil {
		return 0
	}
	input := float64(resp.PromptTokenCount) / 1_000_000 * pricing.InputPerMillion
	output := float64(resp.CandidatesTokenCount+resp.ThoughtsTokenCount) / 1_000_000 * pricing.OutputPerMillion
	return input + output
}
