package config

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/gorewood/exampledocs/internal/git"
)

// File names looked up during resolution.
const (
	ProjectFileName = ".exampledocs.yaml"
	GlobalFileName  = "config.yaml"
)

// Environment variables that override file settings.
const (
	EnvExamplesDir = "EXAMPLEDOCS_EXAMPLES_DIR"
	EnvDocsDir     = "EXAMPLEDOCS_DOCS_DIR"
	EnvRuntime     = "EXAMPLEDOCS_RUNTIME"
)

// ErrConfigNotFound is returned by LoadFile when the file does not exist.
var ErrConfigNotFound = errors.New("config file not found")

// ErrInvalid marks a configuration that cannot drive a run.
var ErrInvalid = errors.New("invalid configuration")

// Config holds the settings of one invocation. It is resolved once at
// startup and passed by value afterwards.
type Config struct {
	ExamplesDir   string `yaml:"examples_dir" json:"examples_dir"`
	DocsSourceDir string `yaml:"docs_source_dir" json:"docs_source_dir"`
	OutputSubdir  string `yaml:"output_subdir" json:"output_subdir"`
	Pattern       string `yaml:"pattern" json:"pattern"`
	Runtime       string `yaml:"runtime" json:"runtime"`
	Language      string `yaml:"language" json:"language"`
	Delimiter     string `yaml:"delimiter" json:"delimiter"`
	Extension     string `yaml:"extension" json:"extension"`

	// RepoRoot anchors relative directories. Never read from files.
	RepoRoot string `yaml:"-" json:"repo_root"`
	// Sources lists the config files that contributed, in load order.
	Sources []string `yaml:"-" json:"sources"`
}

// Default returns the built-in settings: Python examples under
// examples/ documented into docs/source/examples.
func Default() Config {
	return Config{
		ExamplesDir:   "examples",
		DocsSourceDir: filepath.Join("docs", "source"),
		OutputSubdir:  "examples",
		Pattern:       "*.py",
		Runtime:       "python",
		Language:      "python",
		Delimiter:     `"""`,
		Extension:     ".rst",
	}
}

// Overrides carries command-line values. Empty fields are ignored.
// Relative directories are taken relative to the working directory.
type Overrides struct {
	RepoRoot    string
	ExamplesDir string
	DocsDir     string
}

// Resolve builds the effective configuration:
// defaults, then the global file, the project file, the environment
// (after .env.local and .env are loaded) and finally the overrides.
func Resolve(ctx context.Context, o Overrides) (Config, error) {
	cfg := Default()

	root, err := repoRoot(ctx, o.RepoRoot)
	if err != nil {
		return Config{}, err
	}
	cfg.RepoRoot = root

	if err := LoadEnvFiles(root); err != nil {
		return Config{}, err
	}

	for _, path := range []string{GlobalFile(), filepath.Join(root, ProjectFileName)} {
		if path == "" {
			continue
		}
		err := LoadFile(path, &cfg)
		if errors.Is(err, ErrConfigNotFound) {
			continue
		}
		if err != nil {
			return Config{}, err
		}
		cfg.Sources = append(cfg.Sources, path)
	}

	ApplyEnv(&cfg)

	if o.ExamplesDir != "" {
		if cfg.ExamplesDir, err = filepath.Abs(o.ExamplesDir); err != nil {
			return Config{}, fmt.Errorf("resolving examples dir: %w", err)
		}
	}
	if o.DocsDir != "" {
		if cfg.DocsSourceDir, err = filepath.Abs(o.DocsDir); err != nil {
			return Config{}, fmt.Errorf("resolving docs dir: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// repoRoot picks the explicit root, else the enclosing git repository,
// else the working directory.
func repoRoot(ctx context.Context, explicit string) (string, error) {
	if explicit != "" {
		abs, err := filepath.Abs(explicit)
		if err != nil {
			return "", fmt.Errorf("resolving repo root: %w", err)
		}
		return abs, nil
	}
	if root, err := git.RepoRoot(ctx, ""); err == nil {
		return root, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting working directory: %w", err)
	}
	return wd, nil
}

// LoadFile decodes a YAML config file over cfg. Keys absent from the
// file keep their current values; unknown keys are an error.
func LoadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return ErrConfigNotFound
		}
		return fmt.Errorf("reading %s: %w", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parsing %s: %w: %w", path, ErrInvalid, err)
	}
	return nil
}

// LoadEnvFiles loads .env.local then .env from dir into the process
// environment. Variables already set are never overwritten, so
// .env.local wins over .env. Missing files are skipped.
func LoadEnvFiles(dir string) error {
	for _, name := range []string{".env.local", ".env"} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("loading %s: %w", path, err)
		}
	}
	return nil
}

// ApplyEnv copies non-empty EXAMPLEDOCS_* variables into cfg.
func ApplyEnv(cfg *Config) {
	if v := os.Getenv(EnvExamplesDir); v != "" {
		cfg.ExamplesDir = v
	}
	if v := os.Getenv(EnvDocsDir); v != "" {
		cfg.DocsSourceDir = v
	}
	if v := os.Getenv(EnvRuntime); v != "" {
		cfg.Runtime = v
	}
}

// Validate rejects settings that would make a run misbehave. The output
// subdirectory is wiped on every run, so it must stay inside the docs tree.
func (c Config) Validate() error {
	switch {
	case c.ExamplesDir == "":
		return fmt.Errorf("%w: examples_dir is empty", ErrInvalid)
	case c.DocsSourceDir == "":
		return fmt.Errorf("%w: docs_source_dir is empty", ErrInvalid)
	case c.Runtime == "" || strings.ContainsAny(c.Runtime, " \t"):
		return fmt.Errorf("%w: runtime %q must be a single word", ErrInvalid, c.Runtime)
	case c.Delimiter == "":
		return fmt.Errorf("%w: delimiter is empty", ErrInvalid)
	case !strings.HasPrefix(c.Extension, "."):
		return fmt.Errorf("%w: extension %q must start with a dot", ErrInvalid, c.Extension)
	}

	if _, err := filepath.Match(c.Pattern, ""); err != nil || c.Pattern == "" {
		return fmt.Errorf("%w: pattern %q is not a valid glob", ErrInvalid, c.Pattern)
	}

	sub := filepath.Clean(c.OutputSubdir)
	if c.OutputSubdir == "" || sub == "." || filepath.IsAbs(sub) ||
		sub == ".." || strings.HasPrefix(sub, ".."+string(filepath.Separator)) {
		return fmt.Errorf("%w: output_subdir %q must be a subdirectory of docs_source_dir", ErrInvalid, c.OutputSubdir)
	}
	return nil
}

// ExamplesPath returns the absolute examples directory.
func (c Config) ExamplesPath() string {
	return c.abs(c.ExamplesDir)
}

// DocsSourcePath returns the absolute documentation source directory.
func (c Config) DocsSourcePath() string {
	return c.abs(c.DocsSourceDir)
}

func (c Config) abs(dir string) string {
	if filepath.IsAbs(dir) {
		return filepath.Clean(dir)
	}
	return filepath.Join(c.RepoRoot, dir)
}
