// Command nanobanana generates and edits images with the Gemini image models.
//
// Usage:
//
//	nanobanana [flags] <command> [args]
//
// Commands:
//
//	generate      - Generate an image from a text prompt
//	edit          - Edit reference images according to a prompt
//	edit-file     - Edit reference images with a prompt read from a file
//	photo         - Generate a photorealistic image
//	sticker       - Generate a sticker
//	illustration  - Generate an illustration
//	template      - List, inspect, render and generate prompt templates
//	models        - List the known image models
//
// Configuration:
//
//	A .env file in the working directory is loaded first, then the
//	environment: GEMINI_API_KEY (or GOOGLE_API_KEY), NANOBANANA_MODEL,
//	NANOBANANA_TRANSPORT, NANOBANANA_BASE_URL, NANOBANANA_IMAGE_POLICY,
//	NANOBANANA_TIMEOUT, NANOBANANA_MAX_ATTEMPTS, NANOBANANA_PROMPT_DIR and
//	NANOBANANA_LOG_LEVEL. Flags override the environment.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newApp(nil).rootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
