package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newGenerateCmd creates the generate command.
func newGenerateCmd() *cobra.Command {
	var checkFlag bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Reset the output directory and write one page per example",
		Long: `Scan the examples directory, parse every example, and write one
reStructuredText page per example into <docs-dir>/<output_subdir>.

The output directory is deleted and recreated on every run, so pages for
removed examples disappear. All examples are parsed and rendered before
anything is deleted: a malformed example leaves the existing pages intact.

Examples:
  exampledocs generate                      # Regenerate from the repo root
  exampledocs generate --examples-dir demos # Use a different examples dir
  exampledocs generate --check              # Verify only, exit 3 when stale
  exampledocs generate --json               # Report written files as JSON`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if checkFlag {
				return runCheck(cmd)
			}
			return runGenerate(cmd)
		},
	}

	cmd.Flags().BoolVar(&checkFlag, "check", false, "Verify the pages are current instead of writing them")

	return cmd
}

func runGenerate(cmd *cobra.Command) error {
	printer := newPrinter(cmd)

	gen, err := newGenerator(cmd)
	if err != nil {
		return fail(printer, err)
	}

	result, err := gen.Run(cmd.Context())
	if err != nil {
		return fail(printer, err)
	}

	if printer.IsJSON() {
		return printer.Success(map[string]any{
			"status":     "ok",
			"output_dir": result.OutputDir,
			"count":      len(result.Files),
			"files":      result.Files,
		})
	}

	return printer.Success(map[string]any{
		"message": fmt.Sprintf("Generated %s in %s", pluralPages(len(result.Files)), result.OutputDir),
	})
}

func pluralPages(n int) string {
	if n == 1 {
		return "1 example page"
	}
	return fmt.Sprintf("%d example pages", n)
}
