// Package transport sends generateContent requests to the Gemini API and
// returns the raw response body for normalization.
//
// Two implementations are provided: REST talks JSON over net/http, GenAI
// goes through the google.golang.org/genai SDK. Both report HTTP failures
// as *nanobanana.Error and retry only transient ones, according to their
// retry configuration.
package transport

import (
	"context"
	"fmt"
	"strings"

	ai "github.com/spetersoncode/nanobanana"
	"github.com/spetersoncode/nanobanana/model"
)

// Transport sends one generateContent request and returns the raw JSON body.
type Transport interface {
	GenerateContent(ctx context.Context, m model.ImageModel, req *ai.Request) ([]byte, error)
}

// Kind selects a Transport implementation.
type Kind string

const (
	KindREST  Kind = "rest"
	KindGenAI Kind = "genai"
)

// ParseKind parses a transport kind. An empty string yields KindREST.
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case "", KindREST:
		return KindREST, nil
	case KindGenAI:
		return KindGenAI, nil
	default:
		return "", fmt.Errorf("unknown transport %q (want rest or genai)", s)
	}
}

// Func adapts a function to Transport.
type Func func(ctx context.Context, m model.ImageModel, req *ai.Request) ([]byte, error)

// GenerateContent calls f.
func (f Func) GenerateContent(ctx context.Context, m model.ImageModel, req *ai.Request) ([]byte, error) {
	return f(ctx, m, req)
}
