package mcp

import (
	"context"
	"io"
	"log/slog"

	"github.com/mark3labs/mcp-go/server"

	ai "github.com/spetersoncode/nanobanana"
	"github.com/spetersoncode/nanobanana/prompt"
	"github.com/spetersoncode/nanobanana/template"
)

// ImageService is the part of client.Client the tools call into.
type ImageService interface {
	ai.ImageProvider
	GeneratePhotorealistic(ctx context.Context, subject, outputPath string, params prompt.PhotoParams, opts ...ai.ImageOption) (*ai.Response, error)
	GenerateSticker(ctx context.Context, subject, outputPath string, params prompt.StickerParams, opts ...ai.ImageOption) (*ai.Response, error)
	GenerateIllustration(ctx context.Context, subject, outputPath string, params prompt.IllustrationParams, opts ...ai.ImageOption) (*ai.Response, error)
	GenerateFromTemplate(ctx context.Context, gen template.PromptGenerator, outputPath string, opts ...ai.ImageOption) (*ai.Response, error)
}

// ServerOption configures a Server.
type ServerOption func(*serverConfig)

type serverConfig struct {
	name    string
	version string
	logger  *slog.Logger
}

// WithName sets the server name reported to MCP clients.
func WithName(name string) ServerOption {
	return func(c *serverConfig) {
		c.name = name
	}
}

// WithVersion sets the server version reported to MCP clients.
func WithVersion(version string) ServerOption {
	return func(c *serverConfig) {
		c.version = version
	}
}

// WithLogger logs every tool call and its outcome.
func WithLogger(logger *slog.Logger) ServerOption {
	return func(c *serverConfig) {
		c.logger = logger
	}
}

// NewServer creates an MCP server whose tools call svc. Templates are
// looked up in registry; a nil registry means template.NewDefaultRegistry().
func NewServer(svc ImageService, registry *template.Registry, opts ...ServerOption) *server.MCPServer {
	cfg := &serverConfig{
		name:    "nanobanana",
		version: "1.0.0",
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if registry == nil {
		registry = template.NewDefaultRegistry()
	}

	s := server.NewMCPServer(
		cfg.name,
		cfg.version,
		server.WithToolCapabilities(true),
	)

	h := &handlers{svc: svc, registry: registry, logger: cfg.logger}
	for _, t := range h.tools() {
		s.AddTool(t.tool, t.handler)
	}
	return s
}

// ServeStdio serves the tools over stdin/stdout, the transport MCP clients
// use for subprocess servers.
func ServeStdio(svc ImageService, registry *template.Registry, opts ...ServerOption) error {
	return server.ServeStdio(NewServer(svc, registry, opts...))
}
