package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gorewood/exampledocs/internal/example"
	"github.com/gorewood/exampledocs/internal/output"
)

// newShowCmd creates the show command.
func newShowCmd() *cobra.Command {
	var renderFlag bool

	cmd := &cobra.Command{
		Use:   "show <example>",
		Short: "Display one example's metadata or rendered page",
		Long: `Display the metadata parsed from one example, or with --render the exact
page generate would write for it. The example may be named by file name,
file stem, page slug, or display index.

Examples:
  exampledocs show 02_containers.py   # By file name
  exampledocs show 2                  # By display index
  exampledocs show 2 --render         # Print the generated page
  exampledocs show 2 --json           # Metadata as JSON`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, args[0], renderFlag)
		},
	}

	cmd.Flags().BoolVar(&renderFlag, "render", false, "Print the rendered page instead of the metadata")

	return cmd
}

func runShow(cmd *cobra.Command, ref string, render bool) error {
	printer := newPrinter(cmd)

	gen, err := newGenerator(cmd)
	if err != nil {
		return fail(printer, err)
	}

	examples, err := gen.Load(cmd.Context())
	if err != nil {
		return fail(printer, err)
	}

	meta, ok := example.Find(examples, ref)
	if !ok {
		notFound := output.NewUserError(fmt.Sprintf("no example matches %q", ref))
		printer.Error(notFound)
		return notFound
	}

	page, err := gen.Render(meta)
	if err != nil {
		return fail(printer, err)
	}

	if printer.IsJSON() {
		return printer.WriteJSON(map[string]any{
			"example": meta,
			"page":    page.Name,
			"content": page.Content,
		})
	}

	if render {
		printer.Print("%s", page.Content)
		return nil
	}

	printExample(printer, meta, page.Name)
	return nil
}

func printExample(printer *output.Printer, meta *example.Metadata, pageName string) {
	styles := printer.Styles()
	printer.Println(styles.Title.Render(meta.Heading()))
	printer.KeyValue("File", filepath.Base(meta.Path))
	printer.KeyValue("Page", pageName)

	if meta.Description != "" {
		printer.Section("Description")
		printer.Println(meta.Description)
	}

	printer.Section("Usages")
	if len(meta.Usages) == 0 {
		printer.Println(styles.Muted.Render("(none)"))
		return
	}
	for _, u := range meta.Usages {
		printer.Code(u)
	}
}
