package nanobanana

import "strings"

// Request is the body sent to the generateContent endpoint.
//
//	{"contents":[{"parts":[{"text":"..."},{"inline_data":{"mime_type":"image/png","data":"..."}}]}]}
type Request struct {
	Contents         []Content         `json:"contents"`
	GenerationConfig *GenerationConfig `json:"generationConfig,omitempty"`
}

// Content groups the parts of a single user turn.
type Content struct {
	Parts []Part `json:"parts"`
}

// Part is either a text part or an inline image part.
type Part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *InlineData `json:"inline_data,omitempty"`
}

// InlineData carries a base64-encoded reference image.
type InlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

// GenerationConfig holds the optional generation settings.
// It is omitted from the body unless an ImageOption sets a field.
type GenerationConfig struct {
	ResponseModalities []string     `json:"responseModalities,omitempty"`
	ImageConfig        *ImageConfig `json:"imageConfig,omitempty"`
}

// ImageConfig holds image-specific generation settings.
type ImageConfig struct {
	AspectRatio string `json:"aspectRatio,omitempty"`
}

// NewRequest builds a request with the prompt as the first part followed by
// one inline part per image, all in the same content entry.
func NewRequest(prompt string, images ...ImageInput) *Request {
	parts := make([]Part, 0, len(images)+1)
	parts = append(parts, Part{Text: prompt})
	for _, img := range images {
		parts = append(parts, Part{InlineData: &InlineData{
			MimeType: img.MimeType,
			Data:     img.Base64(),
		}})
	}
	return &Request{Contents: []Content{{Parts: parts}}}
}

// Apply sets the generation config from functional options.
// With no effective options the config stays nil.
func (r *Request) Apply(opts ...ImageOption) *Request {
	o := ApplyImageOptions(opts...)
	if o.AspectRatio == "" && len(o.ResponseModalities) == 0 {
		return r
	}
	cfg := &GenerationConfig{ResponseModalities: o.ResponseModalities}
	if o.AspectRatio != "" {
		cfg.ImageConfig = &ImageConfig{AspectRatio: o.AspectRatio}
	}
	r.GenerationConfig = cfg
	return r
}

// Prompt returns the concatenated text parts of the request.
func (r *Request) Prompt() string {
	var sb strings.Builder
	for _, c := range r.Contents {
		for _, p := range c.Parts {
			sb.WriteString(p.Text)
		}
	}
	return sb.String()
}

// InlineImages returns the inline image parts in request order.
func (r *Request) InlineImages() []InlineData {
	var out []InlineData
	for _, c := range r.Contents {
		for _, p := range c.Parts {
			if p.InlineData != nil {
				out = append(out, *p.InlineData)
			}
		}
	}
	return out
}
