// Package client generates and edits images with the Gemini image models.
//
// A Client turns a prompt (plain text, a builder from package prompt, or a
// template generator) into one generateContent request, normalizes the
// response, decodes the image payload and writes it to a file:
//
//	c, err := client.New(ctx, client.Config{
//	    APIKey: os.Getenv("GEMINI_API_KEY"),
//	    Model:  model.Gemini25FlashImage,
//	})
//	if err != nil {
//	    return err
//	}
//	resp, err := c.GenerateImage(ctx, "A banana on a marble table", "out/banana.png")
//
// Reference images for EditImage are local paths, read through the
// configured afero filesystem, or http(s) URLs. Config.ImagePolicy decides
// whether an unsupported image fails the call or is skipped.
//
// # Retries
//
// Retries are disabled by default. Enable them with a RetryConfig:
//
//	cfg := client.DefaultRetryConfig()
//	c, _ := client.New(ctx, client.Config{APIKey: key, Retry: &cfg})
//
// Only transient failures (HTTP 429, 5xx, network timeouts) are retried.
package client
