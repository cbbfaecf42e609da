package docgen

import (
	"path/filepath"

	"github.com/gorewood/exampledocs/internal/config"
	"github.com/gorewood/exampledocs/internal/example"
)

// DefaultGenerator names the command printed in the generated-file comment.
const DefaultGenerator = "exampledocs generate"

// Options configures a Generator. Directories should be absolute.
type Options struct {
	ExamplesDir  string
	SourceDir    string
	OutputSubdir string
	Pattern      string
	Runtime      string
	Language     string
	Delimiter    string
	Extension    string
	Generator    string
}

// OptionsFromConfig maps a resolved configuration onto generator options.
func OptionsFromConfig(cfg config.Config) Options {
	return Options{
		ExamplesDir:  cfg.ExamplesPath(),
		SourceDir:    cfg.DocsSourcePath(),
		OutputSubdir: cfg.OutputSubdir,
		Pattern:      cfg.Pattern,
		Runtime:      cfg.Runtime,
		Language:     cfg.Language,
		Delimiter:    cfg.Delimiter,
		Extension:    cfg.Extension,
		Generator:    DefaultGenerator,
	}
}

func (o Options) withDefaults() Options {
	d := config.Default()
	if o.OutputSubdir == "" {
		o.OutputSubdir = d.OutputSubdir
	}
	if o.Pattern == "" {
		o.Pattern = d.Pattern
	}
	if o.Runtime == "" {
		o.Runtime = d.Runtime
	}
	if o.Language == "" {
		o.Language = d.Language
	}
	if o.Delimiter == "" {
		o.Delimiter = d.Delimiter
	}
	if o.Extension == "" {
		o.Extension = d.Extension
	}
	if o.Generator == "" {
		o.Generator = DefaultGenerator
	}
	return o
}

// OutputDir is the directory that a run resets and fills.
func (o Options) OutputDir() string {
	return filepath.Join(o.SourceDir, o.OutputSubdir)
}

func (o Options) parseOptions() example.ParseOptions {
	return example.ParseOptions{Delimiter: o.Delimiter, Pattern: o.Pattern}
}
