// Package mcp exposes image generation as MCP (Model Context Protocol) tools.
//
// NewServer registers one tool per client operation on an mcp-go server:
//
//   - generate_image: text prompt to image file
//   - edit_image: prompt plus reference images
//   - generate_photo: photography builder with optional preset
//   - generate_sticker: sticker builder
//   - generate_illustration: illustration composer
//   - list_templates: registered prompt templates and their variables
//   - generate_from_template: render a template and generate it
//
// Image tools return a JSON object describing the written file and the
// token usage. Failures are reported as tool errors, not protocol errors.
//
//	c, _ := client.New(ctx, client.Config{APIKey: key})
//	if err := mcp.ServeStdio(c, template.NewDefaultRegistry()); err != nil {
//	    log.Fatal(err)
//	}
//
// Remote talks to such a server from the other side, over stdio or an
// existing mcp-go client.
package mcp
