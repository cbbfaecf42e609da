package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/gorewood/exampledocs/internal/config"
	"github.com/gorewood/exampledocs/internal/docgen"
)

// newConfigCmd creates the config command.
func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Long: `Show the configuration after merging defaults, the global config file,
the project's .exampledocs.yaml, .env files, EXAMPLEDOCS_* environment
variables, and flags, in that order.

Examples:
  exampledocs config          # YAML, ready to paste into .exampledocs.yaml
  exampledocs config --json   # Include resolved paths and sources`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfig(cmd)
		},
	}
}

func runConfig(cmd *cobra.Command) error {
	printer := newPrinter(cmd)

	cfg, err := resolveConfig(cmd)
	if err != nil {
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		return printer.WriteJSON(map[string]any{
			"config":     cfg,
			"output_dir": docgen.OptionsFromConfig(cfg).OutputDir(),
			"global":     config.GlobalFile(),
		})
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fail(printer, fmt.Errorf("encoding config: %w", err))
	}

	printer.KeyValue("Repository", cfg.RepoRoot)
	printer.KeyValue("Output", docgen.OptionsFromConfig(cfg).OutputDir())
	if len(cfg.Sources) == 0 {
		printer.KeyValue("Sources", "(defaults only)")
	}
	for _, src := range cfg.Sources {
		printer.KeyValue("Source", src)
	}
	printer.Println()
	printer.Print("%s", data)
	return nil
}

