// Command mcp serves the image tools over MCP stdio.
//
// Configuration comes from the environment (and a .env file), the same
// variables the nanobanana command reads. Logs go to stderr so stdout stays
// reserved for the protocol.
//
// Configuration for Claude Desktop (~/Library/Application Support/Claude/claude_desktop_config.json):
//
//	{
//	    "mcpServers": {
//	        "nanobanana": {
//	            "command": "go",
//	            "args": ["run", "./cmd/mcp"],
//	            "cwd": "/path/to/nanobanana",
//	            "env": {"GEMINI_API_KEY": "..."}
//	        }
//	    }
//	}
package main

import (
	"context"
	"log"
	"os"

	"github.com/spetersoncode/nanobanana/client"
	"github.com/spetersoncode/nanobanana/internal/config"
	"github.com/spetersoncode/nanobanana/mcp"
	"github.com/spetersoncode/nanobanana/template"
)

var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	logger := cfg.NewLogger(os.Stderr)

	clientCfg, err := cfg.ClientConfig(logger)
	if err != nil {
		log.Fatal(err)
	}
	c, err := client.New(context.Background(), clientCfg)
	if err != nil {
		log.Fatal(err)
	}

	logger.Info("starting MCP server", "model", c.Model().String(), "api_key", c.MaskedAPIKey())
	if err := mcp.ServeStdio(c, template.NewDefaultRegistry(),
		mcp.WithName("nanobanana"),
		mcp.WithVersion(version),
		mcp.WithLogger(logger),
	); err != nil {
		log.Fatal(err)
	}
}
