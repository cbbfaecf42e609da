package docgen

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gorewood/exampledocs/internal/example"
	"github.com/gorewood/exampledocs/internal/logging"
)

// ErrUnsafeOutputDir guards the recursive reset against wiping the docs
// source tree itself.
var ErrUnsafeOutputDir = errors.New("output directory must be a subdirectory of the docs source dir")

// Generator renders example pages into the documentation source tree.
// It holds no state between calls.
type Generator struct {
	opts Options
	log  logging.Logger
}

// Result summarises a completed run.
type Result struct {
	OutputDir string   `json:"output_dir"`
	Files     []string `json:"files"`
}

// New creates a Generator. A nil logger discards messages.
func New(opts Options, logger logging.Logger) *Generator {
	if logger == nil {
		logger = logging.NewNullLogger()
	}
	return &Generator{opts: opts.withDefaults(), log: logger}
}

// Options returns the effective options, defaults applied.
func (g *Generator) Options() Options {
	return g.opts
}

// Load parses every example in filename order, stopping at the first
// failure or when ctx is done.
func (g *Generator) Load(ctx context.Context) ([]*example.Metadata, error) {
	paths, err := example.Paths(g.opts.ExamplesDir, g.opts.Pattern)
	if err != nil {
		return nil, err
	}

	examples := make([]*example.Metadata, 0, len(paths))
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		meta, err := example.FromPath(path, g.opts.parseOptions())
		if err != nil {
			return nil, err
		}
		g.log.Verbose("parsed %s: %q with %d usage(s)", filepath.Base(path), meta.Title, len(meta.Usages))
		examples = append(examples, meta)
	}
	return examples, nil
}

// Render builds the page for one example without touching the disk.
func (g *Generator) Render(meta *example.Metadata) (Page, error) {
	script, err := relSlash(g.opts.SourceDir, meta.Path)
	if err != nil {
		return Page{}, err
	}
	prefix, err := relSlash(g.opts.SourceDir, g.opts.ExamplesDir)
	if err != nil {
		return Page{}, err
	}
	if prefix == "." {
		prefix = ""
	} else {
		prefix += "/"
	}

	content, err := RenderPage(meta, PageOptions{
		Generator:      g.opts.Generator,
		Language:       g.opts.Language,
		Runtime:        g.opts.Runtime,
		ScriptPath:     script,
		ExamplesPrefix: prefix,
	})
	if err != nil {
		return Page{}, err
	}

	name := OutputName(meta, g.opts.Extension)
	return Page{
		Name:    name,
		Path:    filepath.Join(g.opts.OutputDir(), name),
		Content: content,
		Example: meta,
	}, nil
}

// Plan loads and renders every example in memory. It has no side effects.
func (g *Generator) Plan(ctx context.Context) ([]Page, error) {
	examples, err := g.Load(ctx)
	if err != nil {
		return nil, err
	}

	pages := make([]Page, 0, len(examples))
	seen := make(map[string]string, len(examples))
	for _, meta := range examples {
		page, err := g.Render(meta)
		if err != nil {
			return nil, err
		}
		if prev, ok := seen[page.Name]; ok {
			return nil, fmt.Errorf("%s and %s both render to %s", prev, filepath.Base(meta.Path), page.Name)
		}
		seen[page.Name] = filepath.Base(meta.Path)
		pages = append(pages, page)
	}
	return pages, nil
}

// Run plans every page, resets the output directory once and writes the
// pages in order. Any failure aborts the run.
func (g *Generator) Run(ctx context.Context) (*Result, error) {
	outDir, err := g.outputDir()
	if err != nil {
		return nil, err
	}

	pages, err := g.Plan(ctx)
	if err != nil {
		return nil, err
	}

	g.log.Info("resetting %s", outDir)
	if err := os.RemoveAll(outDir); err != nil {
		return nil, fmt.Errorf("removing output directory: %w", err)
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	result := &Result{OutputDir: outDir, Files: make([]string, 0, len(pages))}
	for _, page := range pages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := os.WriteFile(page.Path, []byte(page.Content), 0o644); err != nil {
			return nil, fmt.Errorf("writing page: %w", err)
		}
		g.log.Verbose("wrote %s", page.Path)
		result.Files = append(result.Files, page.Path)
	}
	return result, nil
}

// outputDir returns the reset target after checking it is a strict
// subdirectory of the docs source dir.
func (g *Generator) outputDir() (string, error) {
	rel, err := filepath.Rel(g.opts.SourceDir, g.opts.OutputDir())
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %s", ErrUnsafeOutputDir, g.opts.OutputDir())
	}
	return g.opts.OutputDir(), nil
}

func relSlash(base, target string) (string, error) {
	rel, err := filepath.Rel(base, target)
	if err != nil {
		return "", fmt.Errorf("locating %s from %s: %w", target, base, err)
	}
	return filepath.ToSlash(rel), nil
}
