package example

import (
	"strconv"
	"strings"
)

// Metadata is everything the page renderer needs to know about one example.
type Metadata struct {
	// Index is the display index, the filename prefix parsed as decimal.
	Index int `json:"index"`
	// IndexWithZero is the prefix exactly as written, used for ordering.
	IndexWithZero string `json:"index_with_zero"`
	// Source is the example body after the documentation comment, trimmed.
	Source string `json:"source"`
	// Title is the filename suffix with underscores as spaces, title-cased.
	Title string `json:"title"`
	// Usages are the literal commands from the usage section.
	Usages []string `json:"usages"`
	// Description is the documentation comment text before "Usage:", trimmed.
	Description string `json:"description"`
	// Path is where the example was read from.
	Path string `json:"path"`
}

// Slug is the base name of the generated page: "02_containers" for
// index "02" and title "Containers".
func (m *Metadata) Slug() string {
	return m.IndexWithZero + "_" + strings.ReplaceAll(strings.ToLower(m.Title), " ", "_")
}

// Heading is the numbered page title, "2. Containers".
func (m *Metadata) Heading() string {
	return strconv.Itoa(m.Index) + ". " + m.Title
}
