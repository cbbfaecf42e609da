package main

import (
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gorewood/exampledocs/internal/docgen"
)

// listItem is the JSON shape of one listed example.
type listItem struct {
	Index  int      `json:"index"`
	Title  string   `json:"title"`
	File   string   `json:"file"`
	Page   string   `json:"page"`
	Usages []string `json:"usages"`
}

// newListCmd creates the list command.
func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the examples and the pages they produce",
		Long: `Parse every example and list it in generation order without writing
any page. Fails on the first malformed example, exactly like generate.

Examples:
  exampledocs list          # Table of examples
  exampledocs list --json   # Examples with their usage commands`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd)
		},
	}
}

func runList(cmd *cobra.Command) error {
	printer := newPrinter(cmd)

	gen, err := newGenerator(cmd)
	if err != nil {
		return fail(printer, err)
	}

	pages, err := gen.Plan(cmd.Context())
	if err != nil {
		return fail(printer, err)
	}

	if printer.IsJSON() {
		return printer.WriteJSON(toListItems(pages))
	}

	if len(pages) == 0 {
		printer.Println("No examples found in " + gen.Options().ExamplesDir)
		return nil
	}

	rows := make([][]string, 0, len(pages))
	for _, page := range pages {
		rows = append(rows, []string{
			strconv.Itoa(page.Example.Index),
			page.Example.Title,
			strconv.Itoa(len(page.Example.Usages)),
			page.Name,
		})
	}
	printer.Table([]string{"#", "TITLE", "USAGES", "PAGE"}, rows)
	return nil
}

func toListItems(pages []docgen.Page) []listItem {
	items := make([]listItem, 0, len(pages))
	for _, page := range pages {
		items = append(items, listItem{
			Index:  page.Example.Index,
			Title:  page.Example.Title,
			File:   filepath.Base(page.Example.Path),
			Page:   page.Name,
			Usages: page.Example.Usages,
		})
	}
	return items
}
