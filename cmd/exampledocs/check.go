package main

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gorewood/exampledocs/internal/output"
)

// newCheckCmd creates the check command.
func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify the generated pages match the examples",
		Long: `Render every example in memory and compare the result with the pages
already in the output directory. Nothing is written.

Exits 3 when a page is stale, missing, or has no matching example, so CI
can fail a build whose committed docs were not regenerated.

Examples:
  exampledocs check          # Human-readable report
  exampledocs check --json   # Structured report for tooling`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCheck(cmd)
		},
	}
}

func runCheck(cmd *cobra.Command) error {
	printer := newPrinter(cmd)

	gen, err := newGenerator(cmd)
	if err != nil {
		return fail(printer, err)
	}

	result, err := gen.Check(cmd.Context())
	if err != nil {
		return fail(printer, err)
	}

	if printer.IsJSON() {
		if err := printer.Success(map[string]any{
			"up_to_date": result.UpToDate(),
			"output_dir": result.OutputDir,
			"stale":      result.Stale,
			"missing":    result.Missing,
			"extra":      result.Extra,
		}); err != nil {
			return err
		}
		if !result.UpToDate() {
			return output.NewCheckFailedError("generated pages are out of date")
		}
		return nil
	}

	if result.UpToDate() {
		return printer.Success(map[string]any{
			"message": "Pages in " + result.OutputDir + " are up to date",
		})
	}

	printCheckSection(printer, "Stale", result.OutputDir, result.Stale)
	printCheckSection(printer, "Missing", result.OutputDir, result.Missing)
	printCheckSection(printer, "Extra", result.OutputDir, result.Extra)
	printer.Println()

	err = output.NewCheckFailedError("generated pages are out of date; run 'exampledocs generate'")
	printer.Error(err)
	return err
}

func printCheckSection(printer *output.Printer, title, dir string, names []string) {
	if len(names) == 0 {
		return
	}
	printer.Section(title)
	for _, name := range names {
		printer.Code(filepath.Join(dir, name))
	}
}
