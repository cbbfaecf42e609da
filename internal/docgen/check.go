package docgen

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// CheckResult lists the differences between planned and written pages.
type CheckResult struct {
	OutputDir string   `json:"output_dir"`
	Stale     []string `json:"stale"`
	Missing   []string `json:"missing"`
	Extra     []string `json:"extra"`
}

// UpToDate reports whether the output directory matches the plan exactly.
func (r *CheckResult) UpToDate() bool {
	return len(r.Stale) == 0 && len(r.Missing) == 0 && len(r.Extra) == 0
}

// Check compares the planned pages with the output directory without
// writing anything.
func (g *Generator) Check(ctx context.Context) (*CheckResult, error) {
	pages, err := g.Plan(ctx)
	if err != nil {
		return nil, err
	}

	outDir := g.opts.OutputDir()
	result := &CheckResult{OutputDir: outDir, Stale: []string{}, Missing: []string{}, Extra: []string{}}

	planned := make(map[string]bool, len(pages))
	for _, page := range pages {
		planned[page.Name] = true

		data, err := os.ReadFile(page.Path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			result.Missing = append(result.Missing, page.Name)
		case err != nil:
			return nil, fmt.Errorf("reading page: %w", err)
		case string(data) != page.Content:
			result.Stale = append(result.Stale, page.Name)
		}
	}

	entries, err := os.ReadDir(outDir)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("listing output directory: %w", err)
	}
	for _, entry := range entries {
		if !planned[entry.Name()] {
			result.Extra = append(result.Extra, entry.Name())
		}
	}

	g.log.Verbose("checked %d page(s): %d stale, %d missing, %d extra",
		len(pages), len(result.Stale), len(result.Missing), len(result.Extra))
	return result, nil
}
