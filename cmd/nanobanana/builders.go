package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/spetersoncode/nanobanana/prompt"
)

// promptResult is printed by --prompt-only.
type promptResult struct {
	Prompt string `json:"prompt" yaml:"prompt"`
}

func (a *app) photoCmd() *cobra.Command {
	var (
		flags      imageFlags
		params     prompt.PhotoParams
		promptOnly bool
	)
	cmd := &cobra.Command{
		Use:   "photo <subject>",
		Short: "Generate a photorealistic image",
		Long: `Generate a photorealistic image from a subject and camera settings.

Presets: ` + strings.Join(prompt.PhotographyPresets(), ", ") + `.
A preset is applied after the explicit settings and wins where it sets a value.

Examples:
  nanobanana photo "an old fisherman" --preset portrait -o fisherman.png
  nanobanana photo "a dew-covered leaf" --lens "100mm macro lens" --prompt-only`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkPreset(params.Preset, prompt.PhotographyPresets()); err != nil {
				return err
			}
			subject := strings.Join(args, " ")
			if promptOnly {
				return a.print(promptResult{Prompt: prompt.Photo(subject, params)})
			}
			if err := requireOutput(flags.output); err != nil {
				return err
			}

			c, err := a.newClient(cmd.Context())
			if err != nil {
				return err
			}
			resp, err := c.GeneratePhotorealistic(cmd.Context(), subject, flags.output, params, flags.options()...)
			if err != nil {
				return err
			}
			return a.print(newImageResult(flags.output, c.Model(), resp))
		},
	}
	registerOptionalImageFlags(cmd, &flags)
	f := cmd.Flags()
	f.StringVar(&params.Preset, "preset", "", "photography preset")
	f.StringVar(&params.CameraAngle, "camera-angle", "", "camera angle")
	f.StringVar(&params.LensType, "lens", "", "lens type")
	f.StringVar(&params.Lighting, "lighting", "", "lighting setup")
	f.StringVar(&params.Mood, "mood", "", "mood")
	f.StringVar(&params.Background, "background", "", "background")
	f.StringVar(&params.Style, "style", "", "photographic style")
	f.StringVar(&params.Quality, "quality", "", "quality descriptor")
	f.StringArrayVar(&params.Details, "detail", nil, "extra detail (repeatable)")
	f.BoolVar(&promptOnly, "prompt-only", false, "print the prompt without generating")
	return cmd
}

func (a *app) stickerCmd() *cobra.Command {
	var (
		flags      imageFlags
		params     prompt.StickerParams
		promptOnly bool
	)
	cmd := &cobra.Command{
		Use:   "sticker <subject>",
		Short: "Generate a sticker",
		Long: `Generate a sticker illustration.

Presets: ` + strings.Join(prompt.StickerPresets(), ", ") + `.

Examples:
  nanobanana sticker "a red panda eating ramen" --preset kawaii -o panda.png
  nanobanana sticker "a rocket" --outline none --background white --prompt-only`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkPreset(params.Preset, prompt.StickerPresets()); err != nil {
				return err
			}
			subject := strings.Join(args, " ")
			if promptOnly {
				text, err := prompt.StickerPrompt(subject, params)
				if err != nil {
					return err
				}
				return a.print(promptResult{Prompt: text})
			}
			if err := requireOutput(flags.output); err != nil {
				return err
			}

			c, err := a.newClient(cmd.Context())
			if err != nil {
				return err
			}
			resp, err := c.GenerateSticker(cmd.Context(), subject, flags.output, params, flags.options()...)
			if err != nil {
				return err
			}
			return a.print(newImageResult(flags.output, c.Model(), resp))
		},
	}
	registerOptionalImageFlags(cmd, &flags)
	f := cmd.Flags()
	f.StringVar(&params.Preset, "preset", "", "sticker preset")
	f.StringVar(&params.Style, "style", "", "art style")
	f.StringVar(&params.Background, "background", "", "background")
	f.StringVar(&params.Outline, "outline", "", "outline weight, or none")
	f.StringVar(&params.Shading, "shading", "", "shading technique")
	f.StringVar(&params.ColorPalette, "palette", "", "color palette")
	f.StringVar(&params.Size, "size", "", "sticker size")
	f.StringVar(&params.Mood, "mood", "", "mood")
	f.StringArrayVar(&params.Details, "detail", nil, "extra detail (repeatable)")
	f.BoolVar(&promptOnly, "prompt-only", false, "print the prompt without generating")
	return cmd
}

func (a *app) illustrationCmd() *cobra.Command {
	var (
		flags      imageFlags
		params     prompt.IllustrationParams
		promptOnly bool
	)
	cmd := &cobra.Command{
		Use:   "illustration <subject>",
		Short: "Generate an illustration",
		Long: `Generate an illustration.

Styles: anime (default), realistic, cartoon, watercolor.

Examples:
  nanobanana illustration "a lighthouse in a storm" --style watercolor -o lighthouse.png`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			subject := strings.Join(args, " ")
			if promptOnly {
				return a.print(promptResult{Prompt: prompt.Illustration(subject, params)})
			}
			if err := requireOutput(flags.output); err != nil {
				return err
			}

			c, err := a.newClient(cmd.Context())
			if err != nil {
				return err
			}
			resp, err := c.GenerateIllustration(cmd.Context(), subject, flags.output, params, flags.options()...)
			if err != nil {
				return err
			}
			return a.print(newImageResult(flags.output, c.Model(), resp))
		},
	}
	registerOptionalImageFlags(cmd, &flags)
	f := cmd.Flags()
	f.StringVar(&params.Style, "style", "", "anime, realistic, cartoon or watercolor")
	f.StringVar(&params.Background, "background", "", "transparent, detailed or a description")
	f.StringVar(&params.Quality, "quality", "", "quality descriptor")
	f.StringVar(&params.Mood, "mood", "", "mood")
	f.StringVar(&params.Composition, "composition", "", "composition")
	f.BoolVar(&promptOnly, "prompt-only", false, "print the prompt without generating")
	return cmd
}

// registerOptionalImageFlags is register without marking -o required, for
// commands where --prompt-only makes it unnecessary.
func registerOptionalImageFlags(cmd *cobra.Command, f *imageFlags) {
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "output image file")
	cmd.Flags().StringVar(&f.aspectRatio, "aspect-ratio", "", "aspect ratio, e.g. 1:1, 16:9, 9:16")
	cmd.Flags().BoolVar(&f.textToo, "with-text", false, "allow the model to return text alongside the image")
}

func requireOutput(path string) error {
	if path == "" {
		return fmt.Errorf("output file is required, use -o flag")
	}
	return nil
}

func checkPreset(name string, known []string) error {
	if name == "" {
		return nil
	}
	if slices.Contains(known, name) {
		return nil
	}
	return fmt.Errorf("unknown preset %q (available: %s)", name, strings.Join(known, ", "))
}
