package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	ai "github.com/spetersoncode/nanobanana"
	"github.com/spetersoncode/nanobanana/prompt"
	"github.com/spetersoncode/nanobanana/template"
)

// Tool names.
const (
	ToolGenerateImage        = "generate_image"
	ToolEditImage            = "edit_image"
	ToolGeneratePhoto        = "generate_photo"
	ToolGenerateSticker      = "generate_sticker"
	ToolGenerateIllustration = "generate_illustration"
	ToolListTemplates        = "list_templates"
	ToolGenerateFromTemplate = "generate_from_template"
)

// ImageResult is the JSON body returned by the image tools.
type ImageResult struct {
	OutputPath       string `json:"output_path"`
	ResponseID       string `json:"response_id"`
	RequestID        string `json:"request_id"`
	ModelVersion     string `json:"model_version"`
	PayloadSource    string `json:"payload_source"`
	PromptTokens     int    `json:"prompt_tokens"`
	CandidatesTokens int    `json:"candidates_tokens"`
	TotalTokens      int    `json:"total_tokens"`
	ThoughtsTokens   int    `json:"thoughts_tokens"`
}

func newImageResult(outputPath string, resp *ai.Response) ImageResult {
	return ImageResult{
		OutputPath:       outputPath,
		ResponseID:       resp.ResponseID,
		RequestID:        resp.RequestID,
		ModelVersion:     resp.ModelVersion,
		PayloadSource:    string(resp.PayloadSource),
		PromptTokens:     resp.PromptTokenCount,
		CandidatesTokens: resp.CandidatesTokenCount,
		TotalTokens:      resp.TotalTokenCount,
		ThoughtsTokens:   resp.ThoughtsTokenCount,
	}
}

// TemplateSummary describes one registered template.
type TemplateSummary struct {
	Key         string              `json:"key"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Required    []string            `json:"required_variables"`
	Defaults    *template.Variables `json:"default_variables"`
}

type generateImageArgs struct {
	Prompt      string `json:"prompt"`
	OutputPath  string `json:"output_path"`
	AspectRatio string `json:"aspect_ratio"`
}

type editImageArgs struct {
	Prompt      string   `json:"prompt"`
	Images      []string `json:"images"`
	OutputPath  string   `json:"output_path"`
	AspectRatio string   `json:"aspect_ratio"`
}

type photoArgs struct {
	Subject     string `json:"subject"`
	OutputPath  string `json:"output_path"`
	AspectRatio string `json:"aspect_ratio"`
	prompt.PhotoParams
}

type stickerArgs struct {
	Subject     string `json:"subject"`
	OutputPath  string `json:"output_path"`
	AspectRatio string `json:"aspect_ratio"`
	prompt.StickerParams
}

type illustrationArgs struct {
	Subject     string `json:"subject"`
	OutputPath  string `json:"output_path"`
	AspectRatio string `json:"aspect_ratio"`
	prompt.IllustrationParams
}

type templateArgs struct {
	Template    string            `json:"template"`
	Variables   map[string]string `json:"variables"`
	OutputPath  string            `json:"output_path"`
	AspectRatio string            `json:"aspect_ratio"`
	PromptOnly  bool              `json:"prompt_only"`
}

type toolEntry struct {
	tool    mcp.Tool
	handler server.ToolHandlerFunc
}

type handlers struct {
	svc      ImageService
	registry *template.Registry
	logger   *slog.Logger
}

func (h *handlers) tools() []toolEntry {
	outputPath := mcp.WithString("output_path", mcp.Required(), mcp.Description("File path the generated image is written to"))
	aspectRatio := mcp.WithString("aspect_ratio", mcp.Description("Aspect ratio of the image, e.g. 1:1 or 16:9"))

	return []toolEntry{
		{
			tool: mcp.NewTool(ToolGenerateImage,
				mcp.WithDescription("Generate an image from a text prompt"),
				mcp.WithString("prompt", mcp.Required(), mcp.Description("Description of the image")),
				outputPath,
				aspectRatio,
			),
			handler: handle(h, ToolGenerateImage, h.generateImage),
		},
		{
			tool: mcp.NewTool(ToolEditImage,
				mcp.WithDescription("Edit or combine reference images according to a prompt"),
				mcp.WithString("prompt", mcp.Required(), mcp.Description("Editing instruction")),
				mcp.WithArray("images", mcp.Required(), mcp.Description("Local paths or http(s) URLs of reference images"), mcp.WithStringItems()),
				outputPath,
				aspectRatio,
			),
			handler: handle(h, ToolEditImage, h.editImage),
		},
		{
			tool: mcp.NewTool(ToolGeneratePhoto,
				mcp.WithDescription("Generate a photorealistic image from a subject and camera settings"),
				mcp.WithString("subject", mcp.Required(), mcp.Description("Subject of the photograph")),
				outputPath,
				aspectRatio,
				mcp.WithString("preset", mcp.Description("Photography preset applied after explicit settings"), mcp.Enum(prompt.PhotographyPresets()...)),
				mcp.WithString("camera_angle", mcp.Description("Camera angle, e.g. low-angle shot")),
				mcp.WithString("lens_type", mcp.Description("Lens, e.g. 85mm portrait lens")),
				mcp.WithString("lighting", mcp.Description("Lighting setup")),
				mcp.WithString("mood", mcp.Description("Mood of the photograph")),
				mcp.WithString("background", mcp.Description("Background description")),
				mcp.WithString("style", mcp.Description("Photographic style")),
				mcp.WithString("quality", mcp.Description("Quality descriptor")),
				mcp.WithArray("details", mcp.Description("Extra details appended to the prompt"), mcp.WithStringItems()),
			),
			handler: handle(h, ToolGeneratePhoto, h.generatePhoto),
		},
		{
			tool: mcp.NewTool(ToolGenerateSticker,
				mcp.WithDescription("Generate a sticker illustration"),
				mcp.WithString("subject", mcp.Required(), mcp.Description("Subject of the sticker")),
				outputPath,
				aspectRatio,
				mcp.WithString("preset", mcp.Description("Sticker preset applied after explicit settings"), mcp.Enum(prompt.StickerPresets()...)),
				mcp.WithString("style", mcp.Description("Art style, e.g. kawaii or minimalist")),
				mcp.WithString("background", mcp.Description("Background, e.g. transparent or white")),
				mcp.WithString("outline", mcp.Description("Outline weight, or none")),
				mcp.WithString("shading", mcp.Description("Shading technique")),
				mcp.WithString("color_palette", mcp.Description("Color palette")),
				mcp.WithString("size", mcp.Description("Sticker size")),
				mcp.WithString("mood", mcp.Description("Mood of the sticker")),
				mcp.WithArray("details", mcp.Description("Extra details"), mcp.WithStringItems()),
			),
			handler: handle(h, ToolGenerateSticker, h.generateSticker),
		},
		{
			tool: mcp.NewTool(ToolGenerateIllustration,
				mcp.WithDescription("Generate an illustration"),
				mcp.WithString("subject", mcp.Required(), mcp.Description("Subject of the illustration")),
				outputPath,
				aspectRatio,
				mcp.WithString("style", mcp.Description("anime, realistic, cartoon or watercolor")),
				mcp.WithString("background", mcp.Description("transparent, detailed or a free description")),
				mcp.WithString("quality", mcp.Description("Quality descriptor")),
				mcp.WithString("mood", mcp.Description("Mood of the illustration")),
				mcp.WithString("composition", mcp.Description("Composition descriptor")),
			),
			handler: handle(h, ToolGenerateIllustration, h.generateIllustration),
		},
		{
			tool: mcp.NewTool(ToolListTemplates,
				mcp.WithDescription("List registered prompt templates with their variables"),
			),
			handler: handle(h, ToolListTemplates, h.listTemplates),
		},
		{
			tool: mcp.NewTool(ToolGenerateFromTemplate,
				mcp.WithDescription("Render a prompt template and generate the image"),
				mcp.WithString("template", mcp.Required(), mcp.Description("Template key, see list_templates")),
				mcp.WithObject("variables", mcp.Description("Variable overrides as string values")),
				mcp.WithString("output_path", mcp.Description("File path the generated image is written to; required unless prompt_only")),
				aspectRatio,
				mcp.WithBoolean("prompt_only", mcp.Description("Return the rendered prompt without generating")),
			),
			handler: handle(h, ToolGenerateFromTemplate, h.generateFromTemplate),
		},
	}
}

// handle decodes the call arguments into A, runs fn and encodes its result
// as JSON text. Errors become tool error results.
func handle[A any](h *handlers, name string, fn func(ctx context.Context, args A) (any, error)) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()

		var args A
		if err := decodeArguments(req.Params.Arguments, &args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		out, err := fn(ctx, args)
		if err != nil {
			h.logger.Warn("tool call failed", "tool", name, "error", err, "duration", time.Since(start))
			return mcp.NewToolResultError(err.Error()), nil
		}

		data, err := json.Marshal(out)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err)), nil
		}
		h.logger.Info("tool call completed", "tool", name, "duration", time.Since(start))
		return mcp.NewToolResultText(string(data)), nil
	}
}

func decodeArguments(raw any, target any) error {
	if raw == nil {
		return nil
	}
	data, err := json.Marshal(raw)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, target)
}

func required(name, value string) error {
	if value == "" {
		return fmt.Errorf("missing required argument %q", name)
	}
	return nil
}

func imageOptions(aspectRatio string) []ai.ImageOption {
	if aspectRatio == "" {
		return nil
	}
	return []ai.ImageOption{ai.WithAspectRatio(aspectRatio)}
}

func (h *handlers) generateImage(ctx context.Context, args generateImageArgs) (any, error) {
	if err := required("prompt", args.Prompt); err != nil {
		return nil, err
	}
	if err := required("output_path", args.OutputPath); err != nil {
		return nil, err
	}
	resp, err := h.svc.GenerateImage(ctx, args.Prompt, args.OutputPath, imageOptions(args.AspectRatio)...)
	if err != nil {
		return nil, err
	}
	return newImageResult(args.OutputPath, resp), nil
}

func (h *handlers) editImage(ctx context.Context, args editImageArgs) (any, error) {
	if err := required("prompt", args.Prompt); err != nil {
		return nil, err
	}
	if err := required("output_path", args.OutputPath); err != nil {
		return nil, err
	}
	if len(args.Images) == 0 {
		return nil, fmt.Errorf("missing required argument %q", "images")
	}
	resp, err := h.svc.EditImage(ctx, args.Prompt, args.Images, args.OutputPath, imageOptions(args.AspectRatio)...)
	if err != nil {
		return nil, err
	}
	return newImageResult(args.OutputPath, resp), nil
}

func (h *handlers) generatePhoto(ctx context.Context, args photoArgs) (any, error) {
	if err := required("subject", args.Subject); err != nil {
		return nil, err
	}
	if err := required("output_path", args.OutputPath); err != nil {
		return nil, err
	}
	resp, err := h.svc.GeneratePhotorealistic(ctx, args.Subject, args.OutputPath, args.PhotoParams, imageOptions(args.AspectRatio)...)
	if err != nil {
		return nil, err
	}
	return newImageResult(args.OutputPath, resp), nil
}

func (h *handlers) generateSticker(ctx context.Context, args stickerArgs) (any, error) {
	if err := required("output_path", args.OutputPath); err != nil {
		return nil, err
	}
	resp, err := h.svc.GenerateSticker(ctx, args.Subject, args.OutputPath, args.StickerParams, imageOptions(args.AspectRatio)...)
	if err != nil {
		return nil, err
	}
	return newImageResult(args.OutputPath, resp), nil
}

func (h *handlers) generateIllustration(ctx context.Context, args illustrationArgs) (any, error) {
	if err := required("subject", args.Subject); err != nil {
		return nil, err
	}
	if err := required("output_path", args.OutputPath); err != nil {
		return nil, err
	}
	resp, err := h.svc.GenerateIllustration(ctx, args.Subject, args.OutputPath, args.IllustrationParams, imageOptions(args.AspectRatio)...)
	if err != nil {
		return nil, err
	}
	return newImageResult(args.OutputPath, resp), nil
}

func (h *handlers) listTemplates(_ context.Context, _ struct{}) (any, error) {
	keys := h.registry.Keys()
	out := make([]TemplateSummary, 0, len(keys))
	for _, key := range keys {
		t, err := h.registry.Create(key)
		if err != nil {
			return nil, err
		}
		out = append(out, TemplateSummary{
			Key:         key,
			Name:        t.Name(),
			Description: t.Description(),
			Required:    t.RequiredVariables(),
			Defaults:    t.DefaultVariables(),
		})
	}
	return out, nil
}

func (h *handlers) generateFromTemplate(ctx context.Context, args templateArgs) (any, error) {
	if err := required("template", args.Template); err != nil {
		return nil, err
	}
	gen, err := h.registry.NewGenerator(args.Template)
	if err != nil {
		return nil, err
	}
	gen.SetVariableMap(args.Variables)

	if args.PromptOnly {
		text, err := gen.Generate()
		if err != nil {
			return nil, err
		}
		return map[string]string{"template": args.Template, "prompt": text}, nil
	}

	if err := required("output_path", args.OutputPath); err != nil {
		return nil, err
	}
	resp, err := h.svc.GenerateFromTemplate(ctx, gen, args.OutputPath, imageOptions(args.AspectRatio)...)
	if err != nil {
		return nil, err
	}
	return newImageResult(args.OutputPath, resp), nil
}
