package client

import (
	"context"

	ai "github.com/spetersoncode/nanobanana"
	"github.com/spetersoncode/nanobanana/prompt"
	"github.com/spetersoncode/nanobanana/template"
)

// GeneratePhotorealistic builds a photography prompt for subject and
// generates it.
func (c *Client) GeneratePhotorealistic(ctx context.Context, subject, outputPath string, params prompt.PhotoParams, opts ...ai.ImageOption) (*ai.Response, error) {
	return c.GenerateImage(ctx, prompt.Photo(subject, params), outputPath, opts...)
}

// GeneratePhotorealisticWithPreset is GeneratePhotorealistic with preset
// applied after the explicit params. Fields the preset defines override
// params.
func (c *Client) GeneratePhotorealisticWithPreset(ctx context.Context, subject, outputPath, preset string, params prompt.PhotoParams, opts ...ai.ImageOption) (*ai.Response, error) {
	params.Preset = preset
	return c.GeneratePhotorealistic(ctx, subject, outputPath, params, opts...)
}

// EditPhotorealistic edits the reference images with a photography prompt.
func (c *Client) EditPhotorealistic(ctx context.Context, subject string, imageSources []string, outputPath string, params prompt.PhotoParams, opts ...ai.ImageOption) (*ai.Response, error) {
	return c.EditImage(ctx, prompt.Photo(subject, params), imageSources, outputPath, opts...)
}

// GenerateSticker builds a sticker prompt for subject and generates it.
// An empty subject fails with *ai.MissingSubjectError before any request.
func (c *Client) GenerateSticker(ctx context.Context, subject, outputPath string, params prompt.StickerParams, opts ...ai.ImageOption) (*ai.Response, error) {
	text, err := prompt.StickerPrompt(subject, params)
	if err != nil {
		return nil, err
	}
	return c.GenerateImage(ctx, text, outputPath, opts...)
}

// GenerateIllustration composes an illustration prompt and generates it.
func (c *Client) GenerateIllustration(ctx context.Context, subject, outputPath string, params prompt.IllustrationParams, opts ...ai.ImageOption) (*ai.Response, error) {
	return c.GenerateImage(ctx, prompt.Illustration(subject, params), outputPath, opts...)
}

// GenerateFromTemplate renders the generator's prompt and generates it.
// Missing required variables fail with *ai.MissingVariablesError.
func (c *Client) GenerateFromTemplate(ctx context.Context, gen template.PromptGenerator, outputPath string, opts ...ai.ImageOption) (*ai.Response, error) {
	text, err := gen.Generate()
	if err != nil {
		return nil, err
	}
	return c.GenerateImage(ctx, text, outputPath, opts...)
}
