package main

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/gorewood/exampledocs/internal/config"
	"github.com/gorewood/exampledocs/internal/docgen"
	"github.com/gorewood/exampledocs/internal/example"
	"github.com/gorewood/exampledocs/internal/logging"
	"github.com/gorewood/exampledocs/internal/output"
	"github.com/gorewood/exampledocs/internal/usage"
)

// resolveConfig resolves the configuration from files, environment and
// the persistent directory flags.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Resolve(cmd.Context(), config.Overrides{
		RepoRoot:    stringFlag(cmd, "repo-root"),
		ExamplesDir: stringFlag(cmd, "examples-dir"),
		DocsDir:     stringFlag(cmd, "docs-dir"),
	})
	if err != nil {
		return config.Config{}, classifyError(err)
	}
	return cfg, nil
}

// newLogger returns the stderr progress logger for the command.
func newLogger(cmd *cobra.Command) logging.Logger {
	return logging.NewConsoleLogger(cmd.ErrOrStderr(), isVerbose(cmd), useColor(cmd, cmd.ErrOrStderr()))
}

// newGenerator resolves the configuration and builds a generator logging
// to stderr.
func newGenerator(cmd *cobra.Command) (*docgen.Generator, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, err
	}
	return docgen.New(docgen.OptionsFromConfig(cfg), newLogger(cmd)), nil
}

// userErrors are caused by the examples, the configuration or the flags;
// the operator fixes them by editing files.
var userErrors = []error{
	example.ErrMalformedFilename,
	example.ErrMissingDocComment,
	example.ErrMissingUsage,
	usage.ErrNoRuntime,
	usage.ErrNoScript,
	usage.ErrPrefixMissing,
	config.ErrInvalid,
	docgen.ErrUnsafeOutputDir,
}

// classifyError maps domain errors onto exit-coded errors: problems in the
// examples or configuration exit 1, everything else (I/O, git) exits 2.
func classifyError(err error) error {
	if err == nil {
		return nil
	}
	var exitErr *output.ExitError
	if errors.As(err, &exitErr) {
		return err
	}
	if errors.Is(err, context.Canceled) {
		return output.NewUserErrorWithCause("interrupted", err)
	}
	for _, target := range userErrors {
		if errors.Is(err, target) {
			return output.NewUserErrorWithCause(err.Error(), err)
		}
	}
	return output.NewSystemErrorWithCause(err.Error(), err)
}

// fail prints err through the printer and returns it exit-coded.
func fail(printer *output.Printer, err error) error {
	err = classifyError(err)
	printer.Error(err)
	return err
}
