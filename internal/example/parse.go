package example

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultDelimiter opens and closes a Python docstring.
const DefaultDelimiter = `"""`

// DefaultPattern selects Python examples.
const DefaultPattern = "*.py"

// UsageMarker separates the description from the usage section.
const UsageMarker = "Usage:"

// ParseOptions controls how example files are found and split.
type ParseOptions struct {
	// Delimiter brackets the leading documentation comment.
	Delimiter string
	// Pattern is the glob used by Load to select files.
	Pattern string
}

func (o ParseOptions) withDefaults() ParseOptions {
	if o.Delimiter == "" {
		o.Delimiter = DefaultDelimiter
	}
	if o.Pattern == "" {
		o.Pattern = DefaultPattern
	}
	return o
}

// Parse builds the metadata of the example at path from its content.
// The filename supplies index and title; the content supplies the rest.
func Parse(path, content string, opts ParseOptions) (*Metadata, error) {
	opts = opts.withDefaults()

	indexWithZero, index, title, err := ParseFilename(path)
	if err != nil {
		return nil, err
	}

	comment, body, err := splitDocComment(path, strings.TrimSpace(content), opts.Delimiter)
	if err != nil {
		return nil, err
	}

	description, usageText, found := strings.Cut(comment, UsageMarker)
	if !found {
		return nil, &ParseError{
			Path:    path,
			Message: "documentation comment has no " + UsageMarker + " section",
			Hint: "End the documentation comment with a usage section, for example:\n\n" +
				"  " + UsageMarker + "\n" +
				"  `python " + filepath.Base(path) + "`",
			Err: ErrMissingUsage,
		}
	}

	return &Metadata{
		Index:         index,
		IndexWithZero: indexWithZero,
		Source:        strings.TrimSpace(body),
		Title:         title,
		Usages:        ExtractUsages(usageText),
		Description:   strings.TrimSpace(description),
		Path:          path,
	}, nil
}

// splitDocComment returns the trimmed text between the leading pair of
// delimiters and everything after the closing one.
func splitDocComment(path, content, delim string) (comment, body string, err error) {
	rest, ok := strings.CutPrefix(content, delim)
	if !ok {
		return "", "", &ParseError{
			Path:    path,
			Message: "file does not start with a " + delim + " documentation comment",
			Hint:    "Start the file with a documentation comment delimited by " + delim + " before any code.",
			Err:     ErrMissingDocComment,
		}
	}

	comment, body, ok = strings.Cut(rest, delim)
	if !ok {
		return "", "", &ParseError{
			Path:    path,
			Message: "documentation comment is never closed",
			Hint:    "Close the documentation comment with " + delim + ".",
			Err:     ErrMissingDocComment,
		}
	}
	return strings.TrimSpace(comment), body, nil
}

// ExtractUsages returns the commands of a usage section: every line that
// starts and ends with a backtick and has no other backtick, with the
// backticks removed. Prose lines and empty commands are skipped.
func ExtractUsages(usageText string) []string {
	usages := []string{}
	for line := range strings.SplitSeq(usageText, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if len(line) < 2 || line[0] != '`' || line[len(line)-1] != '`' {
			continue
		}
		inner := line[1 : len(line)-1]
		if strings.Contains(inner, "`") || strings.TrimSpace(inner) == "" {
			continue
		}
		usages = append(usages, inner)
	}
	return usages
}

// FromPath reads and parses one example file.
func FromPath(path string, opts ParseOptions) (*Metadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading example: %w", err)
	}
	return Parse(path, string(data), opts)
}
