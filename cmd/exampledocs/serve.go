package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/gorewood/exampledocs/internal/docgen"
	"github.com/gorewood/exampledocs/internal/logging"
	docsmcp "github.com/gorewood/exampledocs/internal/mcp"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run exampledocs as a Model Context Protocol (MCP) server over stdio.

This exposes the generator as MCP tools so an agent can inspect examples
and regenerate pages after editing them.

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "exampledocs": {
        "command": "exampledocs",
        "args": ["serve"]
      }
    }
  }

Available tools: list_examples, show_example, check_docs, generate_docs`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return fail(newPrinter(cmd), err)
			}
			// stdout carries the protocol, so progress is discarded.
			gen := docgen.New(docgen.OptionsFromConfig(cfg), logging.NewNullLogger())
			server := docsmcp.NewServer(buildVersion(), gen)
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}
