package main

import (
	"strings"

	"github.com/spf13/cobra"

	ai "github.com/spetersoncode/nanobanana"
	"github.com/spetersoncode/nanobanana/client"
)

// imageFlags are shared by every command that writes an image.
type imageFlags struct {
	output      string
	aspectRatio string
	textToo     bool
}

func (f *imageFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "output image file (required)")
	cmd.Flags().StringVar(&f.aspectRatio, "aspect-ratio", "", "aspect ratio, e.g. 1:1, 16:9, 9:16")
	cmd.Flags().BoolVar(&f.textToo, "with-text", false, "allow the model to return text alongside the image")
	_ = cmd.MarkFlagRequired("output")
}

func (f *imageFlags) options() []ai.ImageOption {
	var opts []ai.ImageOption
	if f.aspectRatio != "" {
		opts = append(opts, ai.WithAspectRatio(f.aspectRatio))
	}
	if f.textToo {
		opts = append(opts, ai.WithResponseModalities("TEXT", "IMAGE"))
	}
	return opts
}

func (a *app) generateCmd() *cobra.Command {
	var flags imageFlags
	cmd := &cobra.Command{
		Use:   "generate [prompt]",
		Short: "Generate an image from a text prompt",
		Long: `Generate an image from a text prompt.

Without a prompt the canned nano banana prompt is used.

Examples:
  nanobanana generate "a banana split on a neon diner counter" -o split.png
  nanobanana generate -o default.png --aspect-ratio 16:9`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.newClient(cmd.Context())
			if err != nil {
				return err
			}

			var resp *ai.Response
			if len(args) == 0 {
				resp, err = c.GenerateDefaultImage(cmd.Context(), flags.output, flags.options()...)
			} else {
				resp, err = c.GenerateImage(cmd.Context(), strings.Join(args, " "), flags.output, flags.options()...)
			}
			if err != nil {
				return err
			}
			return a.print(newImageResult(flags.output, c.Model(), resp))
		},
	}
	flags.register(cmd)
	return cmd
}

func (a *app) editCmd() *cobra.Command {
	var (
		flags  imageFlags
		images []string
	)
	cmd := &cobra.Command{
		Use:   "edit <prompt>",
		Short: "Edit reference images according to a prompt",
		Long: `Edit or combine reference images according to a prompt.

Images are local paths or http(s) URLs. Repeat -i for several images.

Examples:
  nanobanana edit "put the dog on the beach" -i dog.jpg -i beach.jpg -o dog-beach.png`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.newClient(cmd.Context())
			if err != nil {
				return err
			}
			resp, err := c.EditImage(cmd.Context(), strings.Join(args, " "), images, flags.output, flags.options()...)
			if err != nil {
				return err
			}
			return a.print(newImageResult(flags.output, c.Model(), resp))
		},
	}
	flags.register(cmd)
	cmd.Flags().StringArrayVarP(&images, "image", "i", nil, "reference image path or URL (repeatable)")
	_ = cmd.MarkFlagRequired("image")
	return cmd
}

func (a *app) editFileCmd() *cobra.Command {
	var (
		flags  imageFlags
		images []string
	)
	cmd := &cobra.Command{
		Use:   "edit-file <prompt-file>",
		Short: "Edit reference images with a prompt read from a file",
		Long: `Edit reference images with a prompt read from a file.

The file is resolved inside the prompt directory (--prompt-dir, default
"` + client.DefaultPromptDir + `"). Leading dots and slashes are ignored.

Examples:
  nanobanana edit-file figure.txt -i photo.jpg -o figure.png`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.newClient(cmd.Context())
			if err != nil {
				return err
			}
			resp, err := c.EditImageWithPromptFile(cmd.Context(), args[0], images, flags.output, flags.options()...)
			if err != nil {
				return err
			}
			return a.print(newImageResult(flags.output, c.Model(), resp))
		},
	}
	flags.register(cmd)
	cmd.Flags().StringArrayVarP(&images, "image", "i", nil, "reference image path or URL (repeatable)")
	_ = cmd.MarkFlagRequired("image")
	return cmd
}
