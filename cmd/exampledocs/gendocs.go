package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	cobradoc "github.com/spf13/cobra/doc"
)

// newGenDocsCmd creates the hidden gen-docs command, which writes one
// Markdown reference page per command.
func newGenDocsCmd() *cobra.Command {
	return &cobra.Command{
		Use:    "gen-docs <dir>",
		Short:  "Generate Markdown reference pages for every command",
		Hidden: true,
		Args:   cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			printer := newPrinter(cmd)
			target := args[0]
			if err := os.MkdirAll(target, 0o755); err != nil {
				return fail(printer, fmt.Errorf("creating %s: %w", target, err))
			}
			root := cmd.Root()
			root.DisableAutoGenTag = true
			if err := cobradoc.GenMarkdownTree(root, target); err != nil {
				return fail(printer, fmt.Errorf("generating command docs: %w", err))
			}
			return printer.Success(map[string]any{
				"message": "Wrote command reference to " + target,
			})
		},
	}
}
