// Package mcp provides a Model Context Protocol server for exampledocs.
// It exposes the example scanner and page generator as MCP tools so an
// agent can inspect examples and refresh the generated docs.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/exampledocs/internal/docgen"
)

// NewServer creates an MCP server with all exampledocs tools registered.
func NewServer(version string, gen *docgen.Generator) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "exampledocs",
		Version: version,
	}, nil)
	registerTools(server, gen)
	return server
}

// boolPtr returns a pointer to a bool value.
func boolPtr(b bool) *bool {
	return &b
}

// readOnlyAnnotations returns annotations for read-only tools.
func readOnlyAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(false),
	}
}

// resetAnnotations returns annotations for tools that replace the output
// directory. Repeating the call yields the same files.
func resetAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		DestructiveHint: boolPtr(true),
		IdempotentHint:  true,
		OpenWorldHint:   boolPtr(false),
	}
}

// registerTools adds all exampledocs tools to the server.
func registerTools(server *mcp.Server, gen *docgen.Generator) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_examples",
		Description: "List every example with its index, title, usage commands and the page it generates.",
		Annotations: readOnlyAnnotations(),
	}, handleListExamples(gen))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "show_example",
		Description: "Show one example's metadata and its rendered reStructuredText page. Select it by file name, slug or display index.",
		Annotations: readOnlyAnnotations(),
	}, handleShowExample(gen))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "check_docs",
		Description: "Report generated pages that are stale, missing or no longer backed by an example. Writes nothing.",
		Annotations: readOnlyAnnotations(),
	}, handleCheckDocs(gen))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate_docs",
		Description: "Regenerate the example pages: clears the output directory and writes one page per example.",
		Annotations: resetAnnotations(),
	}, handleGenerateDocs(gen))
}
