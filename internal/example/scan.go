package example

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Paths lists the example files in dir matching pattern, sorted by name.
// Directories and names starting with "_" are skipped.
func Paths(dir, pattern string) ([]string, error) {
	if pattern == "" {
		pattern = DefaultPattern
	}
	if _, err := filepath.Match(pattern, ""); err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("listing examples: %w", err)
	}

	// os.ReadDir returns entries sorted by filename.
	var paths []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, "_") {
			continue
		}
		if ok, _ := filepath.Match(pattern, name); ok {
			paths = append(paths, filepath.Join(dir, name))
		}
	}
	return paths, nil
}

// Load parses every example in dir, stopping at the first failure.
func Load(dir string, opts ParseOptions) ([]*Metadata, error) {
	opts = opts.withDefaults()

	paths, err := Paths(dir, opts.Pattern)
	if err != nil {
		return nil, err
	}

	examples := make([]*Metadata, 0, len(paths))
	for _, path := range paths {
		meta, err := FromPath(path, opts)
		if err != nil {
			return nil, err
		}
		examples = append(examples, meta)
	}
	return examples, nil
}

// Find returns the example whose filename, slug or display index matches
// ref. It is used by the show command and the MCP show tool.
func Find(examples []*Metadata, ref string) (*Metadata, bool) {
	ref = strings.TrimSpace(ref)
	for _, meta := range examples {
		name := filepath.Base(meta.Path)
		stem := strings.TrimSuffix(name, filepath.Ext(name))
		if ref == name || ref == stem || ref == meta.Slug() || ref == meta.IndexWithZero {
			return meta, true
		}
	}
	for _, meta := range examples {
		if ref == strconv.Itoa(meta.Index) {
			return meta, true
		}
	}
	return nil, false
}
