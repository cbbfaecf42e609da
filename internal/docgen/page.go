package docgen

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/gorewood/exampledocs/internal/example"
	"github.com/gorewood/exampledocs/internal/rst"
	"github.com/gorewood/exampledocs/internal/usage"
)

// titleRule is the minimum length of the "=" line under a page title.
const titleRule = 42

// sourceIndent prefixes every line of the code listing.
const sourceIndent = "        "

// htmlText escapes the characters that would break the raw HTML label.
// Quotes are left alone so shell quoting reads naturally.
var htmlText = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// PageOptions carries what RenderPage needs beyond the metadata.
type PageOptions struct {
	// Generator is named in the generated-file comment.
	Generator string
	// Language tags the code listing.
	Language string
	// Runtime is the keyword located in each usage.
	Runtime string
	// ScriptPath is the example path relative to the docs source dir,
	// slash separated: "../../examples/02_containers.py".
	ScriptPath string
	// ExamplesPrefix is stripped from commands to build their labels:
	// "../../examples/". Empty keeps the command as its own label.
	ExamplesPrefix string
}

// Page is one rendered example page.
type Page struct {
	Name    string            `json:"name"`
	Path    string            `json:"path"`
	Content string            `json:"-"`
	Example *example.Metadata `json:"example"`
}

// OutputName is the file name of the page for meta: "02_containers.rst".
func OutputName(meta *example.Metadata, ext string) string {
	return meta.Slug() + ext
}

// RenderPage builds the reStructuredText page for one example.
func RenderPage(meta *example.Metadata, opts PageOptions) (string, error) {
	heading := meta.Heading()
	lines := []string{
		".. Comment: this file is automatically generated by `" + opts.Generator + "`.",
		"   It should not be modified manually.",
		"",
		heading,
		strings.Repeat("=", max(titleRule, runewidth.StringWidth(heading))),
		"",
		rst.FromMarkdown(meta.Description),
		"",
		"",
		".. code-block:: " + opts.Language,
		"        :linenos:",
		"",
		"",
		indentSource(meta.Source),
		"",
	}

	for i, u := range meta.Usages {
		command, err := usage.Rewrite(u, opts.Runtime, opts.ScriptPath)
		if err != nil {
			return "", fmt.Errorf("%s: usage %d: %w", filepath.Base(meta.Path), i+1, err)
		}
		label := command
		if opts.ExamplesPrefix != "" {
			if label, err = usage.Label(command, opts.ExamplesPrefix); err != nil {
				return "", fmt.Errorf("%s: usage %d: %w", filepath.Base(meta.Path), i+1, err)
			}
		}
		lines = append(lines,
			"------------",
			"",
			".. raw:: html",
			"",
			"        <kbd>"+htmlText.Replace(label)+"</kbd>",
			"",
			".. program-output:: "+command,
			"",
		)
	}

	return strings.Join(lines, "\n"), nil
}

func indentSource(source string) string {
	lines := strings.Split(source, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(sourceIndent+line, " \t\r")
	}
	return strings.Join(lines, "\n")
}
