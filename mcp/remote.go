package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/mcp"
)

// Remote calls the tools of a running image server.
//
// Remote is safe for concurrent use. The tool list is cached locally and
// can be refreshed with [Remote.Refresh].
type Remote struct {
	client *client.Client
	mu     sync.RWMutex
	tools  map[string]mcp.Tool
}

// NewRemote starts the server executable at command and connects to it
// over stdio.
func NewRemote(ctx context.Context, command string, env []string, args ...string) (*Remote, error) {
	c, err := client.NewStdioMCPClient(command, env, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to create MCP client: %w", err)
	}
	return NewRemoteFromClient(ctx, c)
}

// NewRemoteFromClient starts and initializes c, then fetches its tools.
func NewRemoteFromClient(ctx context.Context, c *client.Client) (*Remote, error) {
	if err := c.Start(ctx); err != nil {
		return nil, fmt.Errorf("failed to start MCP client: %w", err)
	}

	_, err := c.Initialize(ctx, mcp.InitializeRequest{
		Params: mcp.InitializeParams{
			ProtocolVersion: mcp.LATEST_PROTOCOL_VERSION,
			Capabilities:    mcp.ClientCapabilities{},
			ClientInfo: mcp.Implementation{
				Name:    "nanobanana-remote",
				Version: "1.0.0",
			},
		},
	})
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("failed to initialize MCP session: %w", err)
	}

	r := &Remote{client: c, tools: make(map[string]mcp.Tool)}
	if err := r.Refresh(ctx); err != nil {
		c.Close()
		return nil, fmt.Errorf("failed to list tools: %w", err)
	}
	return r, nil
}

// Close closes the connection to the server.
func (r *Remote) Close() error {
	return r.client.Close()
}

// Refresh re-fetches the tool list.
func (r *Remote) Refresh(ctx context.Context) error {
	result, err := r.client.ListTools(ctx, mcp.ListToolsRequest{})
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.tools = make(map[string]mcp.Tool, len(result.Tools))
	for _, t := range result.Tools {
		r.tools[t.Name] = t
	}
	return nil
}

// Has reports whether the server offers the named tool.
func (r *Remote) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.tools[name]
	return ok
}

// Len returns the number of tools.
func (r *Remote) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tools)
}

// Call invokes a tool and returns its text content. A tool error result is
// returned as an error carrying the tool's message.
func (r *Remote) Call(ctx context.Context, name string, args map[string]any) (string, error) {
	result, err := r.client.CallTool(ctx, mcp.CallToolRequest{
		Params: mcp.CallToolParams{Name: name, Arguments: args},
	})
	if err != nil {
		return "", err
	}
	text := resultText(result)
	if result.IsError {
		return "", fmt.Errorf("tool %s: %s", name, text)
	}
	return text, nil
}

// GenerateImage calls generate_image and decodes its result.
func (r *Remote) GenerateImage(ctx context.Context, prompt, outputPath string) (*ImageResult, error) {
	text, err := r.Call(ctx, ToolGenerateImage, map[string]any{
		"prompt":      prompt,
		"output_path": outputPath,
	})
	if err != nil {
		return nil, err
	}
	var out ImageResult
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		return nil, fmt.Errorf("failed to decode tool result: %w", err)
	}
	return &out, nil
}

func resultText(result *mcp.CallToolResult) string {
	if result == nil {
		return ""
	}
	var parts []string
	for _, c := range result.Content {
		switch content := c.(type) {
		case mcp.TextContent:
			parts = append(parts, content.Text)
		case *mcp.TextContent:
			parts = append(parts, content.Text)
		}
	}
	return strings.Join(parts, "\n")
}
