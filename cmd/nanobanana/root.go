package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	ai "github.com/spetersoncode/nanobanana"
	"github.com/spetersoncode/nanobanana/client"
	"github.com/spetersoncode/nanobanana/internal/config"
	"github.com/spetersoncode/nanobanana/template"
)

// app carries the global flags and the I/O of one command invocation.
type app struct {
	getenv func(string) string // nil reads .env and the process environment
	stdout io.Writer
	stderr io.Writer

	registry *template.Registry

	jsonOutput  bool
	verbose     bool
	modelID     string
	transport   string
	imagePolicy string
	promptDir   string
}

func newApp(getenv func(string) string) *app {
	return &app{
		getenv:   getenv,
		stdout:   os.Stdout,
		stderr:   os.Stderr,
		registry: template.NewDefaultRegistry(),
	}
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "nanobanana",
		Short: "Generate and edit images with Gemini image models",
		Long: `nanobanana - generate and edit images with the Gemini image models.

Results are written to the file given with -o. A summary of the response
(model, response id, token usage, estimated cost) is printed as YAML, or as
JSON with --json.

Examples:
  nanobanana generate "a banana wearing sunglasses" -o banana.png
  nanobanana edit "make the sky purple" -i photo.jpg -o purple.png
  nanobanana photo "a ceramic mug" --preset studio -o mug.png
  nanobanana sticker "a sleepy cat" --preset kawaii -o cat.png
  nanobanana template generate simple_product --var product_name=Phone -o phone.png`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	flags := root.PersistentFlags()
	flags.BoolVar(&a.jsonOutput, "json", false, "print results as JSON")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "debug logging on stderr")
	flags.StringVarP(&a.modelID, "model", "m", "", "model id or alias (overrides NANOBANANA_MODEL)")
	flags.StringVar(&a.transport, "transport", "", "rest or genai (overrides NANOBANANA_TRANSPORT)")
	flags.StringVar(&a.imagePolicy, "image-policy", "", "strict or skip for unsupported reference images")
	flags.StringVar(&a.promptDir, "prompt-dir", "", "directory of prompt files (overrides NANOBANANA_PROMPT_DIR)")

	root.AddCommand(
		a.generateCmd(),
		a.editCmd(),
		a.editFileCmd(),
		a.photoCmd(),
		a.stickerCmd(),
		a.illustrationCmd(),
		a.templateCmd(),
		a.modelsCmd(),
	)
	return root
}

// loadConfig reads the environment and applies the global flag overrides.
func (a *app) loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if a.getenv == nil {
		cfg, err = config.Load()
	} else {
		cfg, err = config.FromEnv(a.getenv)
	}
	if err != nil {
		return nil, err
	}

	if a.modelID != "" {
		cfg.Model = a.modelID
	}
	if a.transport != "" {
		cfg.Transport = a.transport
	}
	if a.imagePolicy != "" {
		cfg.ImagePolicy = a.imagePolicy
	}
	if a.promptDir != "" {
		cfg.PromptDir = a.promptDir
	}
	if a.verbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (a *app) newClient(ctx context.Context) (*client.Client, error) {
	cfg, err := a.loadConfig()
	if err != nil {
		return nil, err
	}
	clientCfg, err := cfg.ClientConfig(cfg.NewLogger(a.stderr))
	if err != nil {
		return nil, err
	}
	c, err := client.New(ctx, clientCfg)
	if err != nil {
		if errors.Is(err, ai.ErrMissingAPIKey) {
			return nil, fmt.Errorf("%w: set GEMINI_API_KEY or GOOGLE_API_KEY", err)
		}
		return nil, err
	}
	return c, nil
}

func (a *app) print(v any) error {
	return writeResult(a.stdout, v, a.jsonOutput)
}
