// Package nanobanana generates and edits images with the Gemini image
// models ("Nano Banana").
//
// This root package holds the types shared by the other packages:
//
//   - [Request]: the generateContent body, built with [NewRequest]
//   - [ImageInput] and [ImagePolicy]: reference images and what happens to
//     unsupported formats
//   - [Response] and [Normalize]: the normalized result of one call
//   - [ImageOption]: functional options such as [WithAspectRatio]
//   - the fault taxonomy in errors.go
//
// Use the [github.com/spetersoncode/nanobanana/client] package as the entry
// point:
//
//	c, err := client.New(ctx, client.Config{APIKey: os.Getenv("GEMINI_API_KEY")})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	resp, err := c.GenerateImage(ctx, "A banana astronaut", "banana.png",
//	    nanobanana.WithAspectRatio("16:9"))
//
// Prompts can be written by hand or built with package prompt (photography,
// sticker and illustration builders) and package template (named prompt
// templates with variables).
//
// # Error Handling
//
// Every fault kind matches a sentinel through errors.Is:
//
//	if errors.Is(err, nanobanana.ErrNoImagePayload) {
//	    // the model answered without an image
//	}
//
// API failures are [*Error] values carrying the HTTP status and an
// [ErrorCategory]; [IsTransient] reports whether a retry may help.
package nanobanana
