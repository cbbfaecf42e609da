package mcp

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/exampledocs/internal/docgen"
	"github.com/gorewood/exampledocs/internal/example"
)

// --- Shared types ---

// ExampleSummary describes one example without its source.
type ExampleSummary struct {
	Index       int      `json:"index"       jsonschema:"display index"`
	Title       string   `json:"title"       jsonschema:"display title"`
	File        string   `json:"file"        jsonschema:"example file name"`
	Page        string   `json:"page"        jsonschema:"generated page file name"`
	Description string   `json:"description" jsonschema:"description from the documentation comment"`
	Usages      []string `json:"usages"      jsonschema:"usage commands as written in the example"`
}

func toSummary(page docgen.Page) ExampleSummary {
	return ExampleSummary{
		Index:       page.Example.Index,
		Title:       page.Example.Title,
		File:        filepath.Base(page.Example.Path),
		Page:        page.Name,
		Description: page.Example.Description,
		Usages:      page.Example.Usages,
	}
}

// --- List tool ---

// ListInput is the input for the list_examples tool (no parameters needed).
type ListInput struct{}

// ListOutput is the output for the list_examples tool.
type ListOutput struct {
	Count    int              `json:"count"    jsonschema:"number of examples"`
	Examples []ExampleSummary `json:"examples" jsonschema:"examples in file name order"`
}

func handleListExamples(gen *docgen.Generator) mcp.ToolHandlerFor[ListInput, ListOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ ListInput) (*mcp.CallToolResult, ListOutput, error) {
		pages, err := gen.Plan(ctx)
		if err != nil {
			return nil, ListOutput{}, fmt.Errorf("scanning examples: %w", err)
		}

		out := ListOutput{Count: len(pages), Examples: make([]ExampleSummary, 0, len(pages))}
		for _, page := range pages {
			out.Examples = append(out.Examples, toSummary(page))
		}
		return nil, out, nil
	}
}

// --- Show tool ---

// ShowInput is the input for the show_example tool.
type ShowInput struct {
	Name  string `json:"name,omitempty"  jsonschema:"example file name or slug, e.g. 02_containers.py"`
	Index *int   `json:"index,omitempty" jsonschema:"display index, e.g. 2"`
}

// ShowOutput is the output for the show_example tool.
type ShowOutput struct {
	Example *example.Metadata `json:"example" jsonschema:"full example metadata"`
	Page    string            `json:"page"    jsonschema:"generated page file name"`
	Content string            `json:"content" jsonschema:"rendered reStructuredText page"`
}

func handleShowExample(gen *docgen.Generator) mcp.ToolHandlerFor[ShowInput, ShowOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ShowInput) (*mcp.CallToolResult, ShowOutput, error) {
		var ref string
		switch {
		case input.Name != "" && input.Index != nil:
			return nil, ShowOutput{}, errors.New("pass either name or index, not both")
		case input.Name != "":
			ref = input.Name
		case input.Index != nil:
			ref = strconv.Itoa(*input.Index)
		default:
			return nil, ShowOutput{}, errors.New("name or index is required")
		}

		examples, err := gen.Load(ctx)
		if err != nil {
			return nil, ShowOutput{}, fmt.Errorf("scanning examples: %w", err)
		}
		meta, ok := example.Find(examples, ref)
		if !ok {
			return nil, ShowOutput{}, fmt.Errorf("no example matches %q", ref)
		}

		page, err := gen.Render(meta)
		if err != nil {
			return nil, ShowOutput{}, fmt.Errorf("rendering %s: %w", filepath.Base(meta.Path), err)
		}
		return nil, ShowOutput{Example: meta, Page: page.Name, Content: page.Content}, nil
	}
}

// --- Check tool ---

// CheckInput is the input for the check_docs tool (no parameters needed).
type CheckInput struct{}

// CheckOutput is the output for the check_docs tool.
type CheckOutput struct {
	UpToDate  bool     `json:"up_to_date" jsonschema:"true when the generated pages match the examples"`
	OutputDir string   `json:"output_dir" jsonschema:"directory holding the generated pages"`
	Stale     []string `json:"stale"      jsonschema:"pages whose content differs"`
	Missing   []string `json:"missing"    jsonschema:"pages not yet generated"`
	Extra     []string `json:"extra"      jsonschema:"files with no matching example"`
}

func handleCheckDocs(gen *docgen.Generator) mcp.ToolHandlerFor[CheckInput, CheckOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ CheckInput) (*mcp.CallToolResult, CheckOutput, error) {
		result, err := gen.Check(ctx)
		if err != nil {
			return nil, CheckOutput{}, fmt.Errorf("checking docs: %w", err)
		}
		return nil, CheckOutput{
			UpToDate:  result.UpToDate(),
			OutputDir: result.OutputDir,
			Stale:     result.Stale,
			Missing:   result.Missing,
			Extra:     result.Extra,
		}, nil
	}
}

// --- Generate tool ---

// GenerateInput is the input for the generate_docs tool (no parameters needed).
type GenerateInput struct{}

// GenerateOutput is the output for the generate_docs tool.
type GenerateOutput struct {
	OutputDir string   `json:"output_dir" jsonschema:"directory that was reset and filled"`
	Count     int      `json:"count"      jsonschema:"number of pages written"`
	Files     []string `json:"files"      jsonschema:"paths of the pages written"`
}

func handleGenerateDocs(gen *docgen.Generator) mcp.ToolHandlerFor[GenerateInput, GenerateOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ GenerateInput) (*mcp.CallToolResult, GenerateOutput, error) {
		result, err := gen.Run(ctx)
		if err != nil {
			return nil, GenerateOutput{}, fmt.Errorf("generating docs: %w", err)
		}
		return nil, GenerateOutput{
			OutputDir: result.OutputDir,
			Count:     len(result.Files),
			Files:     result.Files,
		}, nil
	}
}
